package models

import "ctchen222/tictactoe-minimax/internal/game"

// BoardRequest carries a board in wire form: three rows of "X", "O" or "".
type BoardRequest struct {
	Board [][]string `json:"board" binding:"required,len=3,dive,len=3,dive,mark"`
}

// ApplyRequest asks for the board that results from playing Action on Board.
type ApplyRequest struct {
	Board  [][]string     `json:"board" binding:"required,len=3,dive,len=3,dive,mark"`
	Action *ActionRequest `json:"action" binding:"required"`
}

// ActionRequest uses pointers so that a missing coordinate is told apart from 0.
type ActionRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// BoardState describes a board and everything derived from it.
type BoardState struct {
	Board        [][]string    `json:"board"`
	Next         string        `json:"next,omitempty"`
	Outcome      string        `json:"outcome"`
	Winner       string        `json:"winner,omitempty"`
	Terminal     bool          `json:"terminal"`
	Utility      *int          `json:"utility,omitempty"`
	LegalActions []game.Action `json:"legal_actions"`
}

// MoveResponse is the engine's answer for a board. Action is null on a terminal board.
type MoveResponse struct {
	Action *game.Action `json:"action"`
	Player string       `json:"player"`
	Value  int          `json:"value"`
	Nodes  int          `json:"nodes"`
}

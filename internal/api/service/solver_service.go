package service

import (
	"context"
	"ctchen222/tictactoe-minimax/internal/api/models"
	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/game"
)

// SolverService defines the board analysis operations exposed over HTTP.
type SolverService interface {
	Analyze(ctx context.Context, board game.Board) models.BoardState
	Apply(ctx context.Context, board game.Board, action game.Action) (models.BoardState, error)
	BestMove(ctx context.Context, board game.Board) models.MoveResponse
}

type solverService struct {
	engine *bot.Engine
}

// NewSolverService creates a new SolverService backed by engine.
func NewSolverService(engine *bot.Engine) SolverService {
	return &solverService{engine: engine}
}

// Analyze derives the state of board.
func (s *solverService) Analyze(_ context.Context, board game.Board) models.BoardState {
	return describe(board)
}

// Apply plays action for the side to move and describes the resulting board.
func (s *solverService) Apply(_ context.Context, board game.Board, action game.Action) (models.BoardState, error) {
	next, err := game.Apply(board, action)
	if err != nil {
		return models.BoardState{}, err
	}
	return describe(next), nil
}

// BestMove runs the engine on board.
func (s *solverService) BestMove(ctx context.Context, board game.Board) models.MoveResponse {
	decision := s.engine.BestMove(ctx, board)

	resp := models.MoveResponse{
		Player: decision.Player.Mark(),
		Value:  decision.Value,
		Nodes:  decision.Nodes,
	}
	if decision.Found {
		action := decision.Action
		resp.Action = &action
	}
	return resp
}

func describe(board game.Board) models.BoardState {
	state := models.BoardState{
		Board:        board.Rows(),
		Outcome:      game.Result(board).String(),
		Terminal:     game.IsTerminal(board),
		LegalActions: []game.Action{},
	}

	if winner, ok := game.Winner(board); ok {
		state.Winner = winner.Mark()
	}
	if state.Terminal {
		utility := game.Utility(board)
		state.Utility = &utility
	} else {
		state.Next = game.CurrentPlayer(board).Mark()
		state.LegalActions = game.LegalActions(board)
	}

	return state
}

package bot

import (
	"ctchen222/tictactoe-minimax/internal/game"
	"fmt"
)

// searcher walks the full game tree. It carries only a node counter, so every
// call to Minimax gets its own instance.
type searcher struct {
	nodes int
}

// Minimax returns the optimal action for the player to move, or false when the
// board is already terminal. X maximizes and O minimizes the utility; among
// equally good actions the first one in row-major order wins.
func Minimax(board game.Board) (game.Action, bool) {
	var s searcher
	action, _, ok := s.minimax(board)
	return action, ok
}

// Evaluate returns the value of board under optimal play by both sides.
func Evaluate(board game.Board) int {
	var s searcher
	return s.value(board)
}

func (s *searcher) minimax(board game.Board) (best game.Action, value int, ok bool) {
	s.nodes++
	if game.IsTerminal(board) {
		return game.Action{}, game.Utility(board), false
	}

	maximizing := game.CurrentPlayer(board) == game.MarkX
	for i, action := range game.LegalActions(board) {
		var v int
		if maximizing {
			v = s.minValue(result(board, action))
		} else {
			v = s.maxValue(result(board, action))
		}

		if i == 0 || (maximizing && v > value) || (!maximizing && v < value) {
			best, value = action, v
		}
	}
	return best, value, true
}

// value picks the side of the recursion that matches the player to move.
func (s *searcher) value(board game.Board) int {
	if game.CurrentPlayer(board) == game.MarkX {
		return s.maxValue(board)
	}
	return s.minValue(board)
}

func (s *searcher) maxValue(board game.Board) int {
	s.nodes++
	if game.IsTerminal(board) {
		return game.Utility(board)
	}
	v := minUtility
	for _, action := range game.LegalActions(board) {
		v = max(v, s.minValue(result(board, action)))
	}
	return v
}

func (s *searcher) minValue(board game.Board) int {
	s.nodes++
	if game.IsTerminal(board) {
		return game.Utility(board)
	}
	v := maxUtility
	for _, action := range game.LegalActions(board) {
		v = min(v, s.maxValue(result(board, action)))
	}
	return v
}

// Utility bounds, one past each end of {-1, 0, 1}.
const (
	minUtility = -2
	maxUtility = 2
)

// result applies an action drawn from LegalActions. A failure here means the
// board broke the alternating-play precondition, so the search stops hard.
func result(board game.Board, action game.Action) game.Board {
	next, err := game.Apply(board, action)
	if err != nil {
		panic(fmt.Sprintf("bot: search applied %v: %v", action, err))
	}
	return next
}

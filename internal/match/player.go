package match

import (
	"bufio"
	"context"
	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/game"
	"errors"
	"fmt"
	"io"
	"slices"
)

// BotMover plays the engine's optimal move.
type BotMover struct {
	Engine *bot.Engine
}

// NextAction implements Mover.
func (b *BotMover) NextAction(ctx context.Context, board game.Board) (game.Action, error) {
	decision := b.Engine.BestMove(ctx, board)
	if !decision.Found {
		return game.Action{}, fmt.Errorf("%w: board is terminal", game.ErrInvalidMove)
	}
	return decision.Action, nil
}

// HumanMover reads "row col" lines from a terminal. Malformed, out-of-range and
// occupied cells are reported on the output and asked for again.
type HumanMover struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanMover creates a HumanMover reading from r and prompting on w.
func NewHumanMover(r io.Reader, w io.Writer) *HumanMover {
	return &HumanMover{in: bufio.NewScanner(r), out: w}
}

// NextAction implements Mover. It returns io.ErrUnexpectedEOF when input ends.
func (h *HumanMover) NextAction(ctx context.Context, board game.Board) (game.Action, error) {
	legal := game.LegalActions(board)
	for {
		if err := ctx.Err(); err != nil {
			return game.Action{}, err
		}

		fmt.Fprintf(h.out, "%s to move (row col): ", game.CurrentPlayer(board).Mark())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Action{}, err
			}
			return game.Action{}, io.ErrUnexpectedEOF
		}

		action, err := parseAction(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if !slices.Contains(legal, action) {
			fmt.Fprintf(h.out, "cell %v is not available\n", action)
			continue
		}
		return action, nil
	}
}

var errBadInput = errors.New("enter two numbers between 0 and 2, e.g. \"1 1\"")

func parseAction(line string) (game.Action, error) {
	var a game.Action
	if n, err := fmt.Sscan(line, &a.Row, &a.Col); err != nil || n != 2 {
		return a, errBadInput
	}
	if !a.InBounds() {
		return a, errBadInput
	}
	return a, nil
}

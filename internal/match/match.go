package match

import (
	"context"
	"ctchen222/tictactoe-minimax/internal/game"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("match")

var ErrNoMover = errors.New("no mover for player")

// Mover supplies the next action for the side to move.
type Mover interface {
	NextAction(ctx context.Context, board game.Board) (game.Action, error)
}

//go:generate mockgen -source=match.go -destination=mocks/mock_mover.go -package=mocks Mover

// Match drives a single game: it holds the current board, asks the mover of the
// side to play for an action and applies it until the board is terminal.
type Match struct {
	X, O   Mover
	Logger *slog.Logger

	// OnMove, when set, is called after every applied action with the new board.
	OnMove func(board game.Board, player game.Player, action game.Action)
}

// Run plays from start to the end of the game and returns the final board. A
// mover error, including a rejected move, stops the match and is returned.
func (m *Match) Run(ctx context.Context, start game.Board) (game.Board, error) {
	ctx, span := tracer.Start(ctx, "match.Run")
	defer span.End()

	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "match")

	board := start
	for !game.IsTerminal(board) {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "match cancelled")
			return board, err
		}

		player := game.CurrentPlayer(board)
		mover, err := m.moverFor(player)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "missing mover")
			return board, err
		}

		action, err := mover.NextAction(ctx, board)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "mover failed")
			return board, fmt.Errorf("player %s: %w", player.Mark(), err)
		}

		next, err := game.Apply(board, action)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid move")
			return board, fmt.Errorf("player %s: %w", player.Mark(), err)
		}

		span.AddEvent("move", trace.WithAttributes(
			attribute.String("game.player", player.Mark()),
			attribute.Int("game.row", action.Row),
			attribute.Int("game.col", action.Col),
		))
		logger.DebugContext(ctx, "move applied", "player", player.Mark(), "action", action.String())

		board = next
		if m.OnMove != nil {
			m.OnMove(board, player, action)
		}
	}

	outcome := game.Result(board)
	span.SetAttributes(attribute.String("game.outcome", outcome.String()))
	logger.InfoContext(ctx, "match finished", "outcome", outcome.String())

	return board, nil
}

func (m *Match) moverFor(player game.Player) (Mover, error) {
	var mover Mover
	switch player {
	case game.MarkX:
		mover = m.X
	case game.MarkO:
		mover = m.O
	}
	if mover == nil {
		return nil, fmt.Errorf("%w %s", ErrNoMover, player.Mark())
	}
	return mover, nil
}

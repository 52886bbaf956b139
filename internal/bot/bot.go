package bot

import (
	"context"
	"ctchen222/tictactoe-minimax/internal/game"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/tictactoe-minimax/internal/bot"

// Decision is the outcome of one search.
type Decision struct {
	Action  game.Action
	Found   bool // false when the board was already terminal
	Player  game.Player
	Value   int
	Nodes   int
	Elapsed time.Duration
}

// Engine runs Minimax and reports each search through tracing, metrics and logs.
type Engine struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	nodes    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewEngine creates an Engine bound to the global OpenTelemetry providers.
func NewEngine(logger *slog.Logger) (*Engine, error) {
	meter := otel.Meter(instrumentationName)

	nodes, err := meter.Int64Counter("bot.search.nodes",
		metric.WithDescription("Game-tree nodes visited by minimax"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Wall time of a full minimax search"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Engine{
		logger:   logger.With("component", "bot"),
		tracer:   otel.Tracer(instrumentationName),
		nodes:    nodes,
		duration: duration,
	}, nil
}

// BestMove searches board to the end and returns the optimal action for the side to move.
func (e *Engine) BestMove(ctx context.Context, board game.Board) Decision {
	player := game.CurrentPlayer(board)
	ctx, span := e.tracer.Start(ctx, "bot.BestMove", trace.WithAttributes(
		attribute.String("game.player", player.Mark()),
		attribute.Int("game.empty_cells", len(game.LegalActions(board))),
	))
	defer span.End()

	start := time.Now()
	var s searcher
	action, value, found := s.minimax(board)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("game.player", player.Mark()))
	e.nodes.Add(ctx, int64(s.nodes), attrs)
	e.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)

	span.SetAttributes(
		attribute.Int("bot.nodes", s.nodes),
		attribute.Int("bot.value", value),
		attribute.Bool("bot.found", found),
	)
	if found {
		span.SetAttributes(attribute.String("bot.action", action.String()))
	}

	e.logger.DebugContext(ctx, "search finished",
		"player", player.Mark(),
		"action", action.String(),
		"found", found,
		"value", value,
		"nodes", s.nodes,
		"elapsed", elapsed,
	)

	return Decision{
		Action:  action,
		Found:   found,
		Player:  player,
		Value:   value,
		Nodes:   s.nodes,
		Elapsed: elapsed,
	}
}

package match

import (
	"bytes"
	"context"
	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/match/mocks"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMatch_Run_XWinsTopRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := mocks.NewMockMover(ctrl)
	o := mocks.NewMockMover(ctrl)

	gomock.InOrder(
		x.EXPECT().NextAction(gomock.Any(), gomock.Any()).Return(game.Action{Row: 0, Col: 0}, nil),
		o.EXPECT().NextAction(gomock.Any(), gomock.Any()).Return(game.Action{Row: 1, Col: 0}, nil),
		x.EXPECT().NextAction(gomock.Any(), gomock.Any()).Return(game.Action{Row: 0, Col: 1}, nil),
		o.EXPECT().NextAction(gomock.Any(), gomock.Any()).Return(game.Action{Row: 1, Col: 1}, nil),
		x.EXPECT().NextAction(gomock.Any(), gomock.Any()).Return(game.Action{Row: 0, Col: 2}, nil),
	)

	var moves []game.Player
	m := &Match{
		X:      x,
		O:      o,
		Logger: newTestLogger(),
		OnMove: func(_ game.Board, p game.Player, _ game.Action) { moves = append(moves, p) },
	}

	final, err := m.Run(context.Background(), game.InitialState())
	require.NoError(t, err)

	assert.Equal(t, game.XWins, game.Result(final))
	assert.Equal(t, []game.Player{game.MarkX, game.MarkO, game.MarkX, game.MarkO, game.MarkX}, moves)
}

func TestMatch_Run_InvalidMoveStopsTheMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := mocks.NewMockMover(ctrl)
	o := mocks.NewMockMover(ctrl)

	gomock.InOrder(
		x.EXPECT().NextAction(gomock.Any(), gomock.Any()).Return(game.Action{Row: 1, Col: 1}, nil),
		o.EXPECT().NextAction(gomock.Any(), gomock.Any()).Return(game.Action{Row: 1, Col: 1}, nil),
	)

	m := &Match{X: x, O: o, Logger: newTestLogger()}
	final, err := m.Run(context.Background(), game.InitialState())

	require.ErrorIs(t, err, game.ErrInvalidMove)
	assert.Equal(t, game.MarkX, final[1][1])
	assert.Equal(t, game.MarkO, game.CurrentPlayer(final))
}

func TestMatch_Run_MoverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	x := mocks.NewMockMover(ctrl)
	errBoom := errors.New("boom")
	x.EXPECT().NextAction(gomock.Any(), game.InitialState()).Return(game.Action{}, errBoom)

	m := &Match{X: x, O: mocks.NewMockMover(ctrl), Logger: newTestLogger()}
	_, err := m.Run(context.Background(), game.InitialState())

	assert.ErrorIs(t, err, errBoom)
}

func TestMatch_Run_MissingMover(t *testing.T) {
	m := &Match{Logger: newTestLogger()}
	_, err := m.Run(context.Background(), game.InitialState())
	assert.ErrorIs(t, err, ErrNoMover)
}

func TestMatch_Run_TerminalStartAsksNobody(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := &Match{X: mocks.NewMockMover(ctrl), O: mocks.NewMockMover(ctrl), Logger: newTestLogger()}

	start := game.Board{
		{game.MarkO, game.MarkX, game.MarkX},
		{game.MarkX, game.MarkO, game.Empty},
		{game.Empty, game.Empty, game.MarkO},
	}
	final, err := m.Run(context.Background(), start)

	require.NoError(t, err)
	assert.Equal(t, start, final)
}

func TestMatch_Run_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &Match{X: mocks.NewMockMover(ctrl), O: mocks.NewMockMover(ctrl), Logger: newTestLogger()}
	_, err := m.Run(ctx, game.InitialState())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatch_Run_BotsDraw(t *testing.T) {
	engine, err := bot.NewEngine(newTestLogger())
	require.NoError(t, err)

	m := &Match{
		X:      &BotMover{Engine: engine},
		O:      &BotMover{Engine: engine},
		Logger: newTestLogger(),
	}
	final, err := m.Run(context.Background(), game.InitialState())

	require.NoError(t, err)
	assert.Equal(t, game.Draw, game.Result(final))
}

func TestHumanMover_NextAction(t *testing.T) {
	t.Run("Reprompts until a legal cell is entered", func(t *testing.T) {
		// Given: a board with the center taken and input full of mistakes
		board := game.Board{{}, {game.Empty, game.MarkX, game.Empty}, {}}
		in := strings.NewReader("hello\n5 5\n1 1\n0 2\n")
		var out bytes.Buffer
		h := NewHumanMover(in, &out)

		// When: asking for the next action
		action, err := h.NextAction(context.Background(), board)

		// Then: the first legal cell is returned and every mistake was reported
		require.NoError(t, err)
		assert.Equal(t, game.Action{Row: 0, Col: 2}, action)
		assert.Equal(t, 4, strings.Count(out.String(), "O to move"))
		assert.Equal(t, 2, strings.Count(out.String(), errBadInput.Error()))
		assert.Contains(t, out.String(), "cell (1, 1) is not available")
	})

	t.Run("Returns ErrUnexpectedEOF when input ends", func(t *testing.T) {
		h := NewHumanMover(strings.NewReader(""), io.Discard)

		_, err := h.NextAction(context.Background(), game.InitialState())

		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

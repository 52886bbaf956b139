package game

import (
	"errors"
	"fmt"
)

// Cell represents the content of a single board square.
type Cell uint8

// Player is the mark of the side to move. Only MarkX and MarkO are valid players.
type Player = Cell

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// Outcome describes the state of a board: won by one side, drawn, or still in progress.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

const (
	// Board boundaries
	BorderMin = 0
	BorderMax = 2

	Size = BorderMax + 1
)

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidBoard      = errors.New("invalid board")
	ErrInconsistentBoard = errors.New("inconsistent board")
)

// Board is a 3x3 grid addressed as [row][col]. It is a value type: every
// transition returns a fresh copy and never touches the receiver.
type Board [Size][Size]Cell

// Action names the cell that the player to move claims.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// lines lists every row, column and diagonal, in scan order.
var lines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// CurrentPlayer derives the side to move from the mark counts: O moves when X has
// strictly more marks, X otherwise. Boards with more than a one-mark imbalance
// cannot arise from legal play and get no meaningful answer.
func CurrentPlayer(b Board) Player {
	xCount, oCount := b.count(MarkX), b.count(MarkO)
	if xCount > oCount {
		return MarkO
	}
	return MarkX
}

// LegalActions returns every empty cell in row-major order.
func LegalActions(b Board) []Action {
	actions := make([]Action, 0, Size*Size)
	for r := range [Size]int{} {
		for c := range [Size]int{} {
			if b[r][c] == Empty {
				actions = append(actions, Action{Row: r, Col: c})
			}
		}
	}
	return actions
}

// Apply returns a copy of b with the current player's mark placed at a.
func Apply(b Board, a Action) (Board, error) {
	if !a.InBounds() {
		return b, fmt.Errorf("%w: cell (%d, %d) is out of range", ErrInvalidMove, a.Row, a.Col)
	}
	if b[a.Row][a.Col] != Empty {
		return b, fmt.Errorf("%w: cell (%d, %d) is already occupied", ErrInvalidMove, a.Row, a.Col)
	}

	next := b
	next[a.Row][a.Col] = CurrentPlayer(b)
	return next, nil
}

// Winner scans rows, then columns, then diagonals and reports the first line
// held entirely by one player.
func Winner(b Board) (Player, bool) {
	for _, ln := range lines {
		first := b[ln[0].Row][ln[0].Col]
		if first != Empty && first == b[ln[1].Row][ln[1].Col] && first == b[ln[2].Row][ln[2].Col] {
			return first, true
		}
	}
	return Empty, false
}

// IsTerminal reports whether the game is over, by a completed line or a full board.
func IsTerminal(b Board) bool {
	if _, ok := Winner(b); ok {
		return true
	}
	return b.count(Empty) == 0
}

// Utility scores a terminal board from X's point of view: 1 for an X win,
// -1 for an O win, 0 for a draw. It panics on a board that is still in play.
func Utility(b Board) int {
	if !IsTerminal(b) {
		panic(fmt.Sprintf("game: utility of non-terminal board\n%s", b))
	}
	switch w, _ := Winner(b); w {
	case MarkX:
		return 1
	case MarkO:
		return -1
	default:
		return 0
	}
}

// Result derives the outcome of b.
func Result(b Board) Outcome {
	if w, ok := Winner(b); ok {
		if w == MarkX {
			return XWins
		}
		return OWins
	}
	if b.count(Empty) == 0 {
		return Draw
	}
	return InProgress
}

// CheckConsistent rejects boards whose mark counts cannot come from alternating
// play that starts with X.
func CheckConsistent(b Board) error {
	xCount, oCount := b.count(MarkX), b.count(MarkO)
	if oCount > xCount || xCount > oCount+1 {
		return fmt.Errorf("%w: %d X marks and %d O marks", ErrInconsistentBoard, xCount, oCount)
	}
	return nil
}

// InBounds reports whether both coordinates are on the board.
func (a Action) InBounds() bool {
	return a.Row >= BorderMin && a.Row <= BorderMax && a.Col >= BorderMin && a.Col <= BorderMax
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.Row, a.Col)
}

func (b Board) count(mark Cell) int {
	n := 0
	for r := range [Size]int{} {
		for c := range [Size]int{} {
			if b[r][c] == mark {
				n++
			}
		}
	}
	return n
}

// Opponent returns the other player. Empty has no opponent and is returned as is.
func (c Cell) Opponent() Player {
	switch c {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

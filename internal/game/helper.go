package game

import (
	"fmt"
	"strings"
)

// Wire forms of the cell values, shared by the HTTP API and the terminal client.
const (
	MarkXString = "X"
	MarkOString = "O"
	EmptyString = ""
)

// ParseBoard converts rows of "X", "O" and "" into a Board.
func ParseBoard(rows [][]string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), Size)
		}
		for c, s := range row {
			cell, err := ParseCell(s)
			if err != nil {
				return b, fmt.Errorf("%w: row %d col %d: %w", ErrInvalidBoard, r, c, err)
			}
			b[r][c] = cell
		}
	}
	return b, nil
}

// ParseCell accepts "X", "O" and "" (case-insensitive for the marks).
func ParseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case MarkXString:
		return MarkX, nil
	case MarkOString:
		return MarkO, nil
	case EmptyString:
		return Empty, nil
	default:
		return Empty, fmt.Errorf("unknown mark %q", s)
	}
}

// Rows converts the board to a dynamic slice of slices of strings.
func (b Board) Rows() [][]string {
	rows := make([][]string, Size)
	for r := range [Size]int{} {
		rows[r] = make([]string, Size)
		for c := range [Size]int{} {
			rows[r][c] = b[r][c].Mark()
		}
	}
	return rows
}

// String renders the board as three lines, with '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := range [Size]int{} {
		for c := range [Size]int{} {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[r][c].String())
		}
		if r < BorderMax {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Mark returns the wire form of the cell.
func (c Cell) Mark() string {
	switch c {
	case MarkX:
		return MarkXString
	case MarkO:
		return MarkOString
	default:
		return EmptyString
	}
}

func (c Cell) String() string {
	if c == Empty {
		return "."
	}
	return c.Mark()
}

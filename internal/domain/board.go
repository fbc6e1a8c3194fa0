package domain

import (
	"strings"
)

// Board is a column-major snapshot of the grid: slots[c][r] with r == 0 at
// the bottom. fill[c] is the lowest empty row of column c, or the column
// height once the column is full. A Board is never modified after it is
// built; every placement goes through Clone and yields a new Board.
type Board struct {
	slots [][]Mark
	fill  []int
}

// NewBoard creates an empty board with the given number of columns and rows.
func NewBoard(columns, rows int) *Board {
	slots := make([][]Mark, columns)
	for c := range slots {
		slots[c] = make([]Mark, rows)
	}
	return &Board{slots: slots, fill: make([]int, columns)}
}

// NewStandardBoard creates the canonical empty 7x6 board.
func NewStandardBoard() *Board {
	return NewBoard(Columns, Rows)
}

// FromColumns builds a board from column-major values, bottom slot first.
// Ragged columns, grids beyond MaxColumns x MaxRows, values that are not
// marks and pieces floating above an empty slot are rejected with
// ErrInvalidBoard.
func FromColumns(columns [][]Mark) (*Board, error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, ErrInvalidBoard
	}
	rows := len(columns[0])
	if len(columns) > MaxColumns || rows > MaxRows {
		return nil, ErrInvalidBoard
	}

	b := NewBoard(len(columns), rows)
	for c, column := range columns {
		if len(column) != rows {
			return nil, ErrInvalidBoard
		}
		fill := 0
		for r, slot := range column {
			if slot != Empty && !slot.IsPlayer() {
				return nil, ErrInvalidBoard
			}
			if slot == Empty {
				continue
			}
			// gravity: nothing may sit above a hole
			if r != fill {
				return nil, ErrInvalidBoard
			}
			fill++
		}
		copy(b.slots[c], column)
		b.fill[c] = fill
	}
	return b, nil
}

func (b *Board) Width() int {
	return len(b.slots)
}

func (b *Board) Height() int {
	if len(b.slots) == 0 {
		return 0
	}
	return len(b.slots[0])
}

func (b *Board) inBounds(column, row int) bool {
	return column >= 0 && column < b.Width() && row >= 0 && row < b.Height()
}

// At returns the mark at (column, row), or Empty outside the grid.
func (b *Board) At(column, row int) Mark {
	if !b.inBounds(column, row) {
		return Empty
	}
	return b.slots[column][row]
}

// Top returns the highest slot of a column. A non-empty top means the column
// is full.
func (b *Board) Top(column int) Mark {
	return b.At(column, b.Height()-1)
}

// LowestEmpty returns the row a piece dropped into column would land on, or
// NoSlot if the column is full or does not exist.
func (b *Board) LowestEmpty(column int) int {
	if column < 0 || column >= b.Width() || b.fill[column] >= b.Height() {
		return NoSlot
	}
	return b.fill[column]
}

func (b *Board) IsOpen(column int) bool {
	return b.LowestEmpty(column) != NoSlot
}

// PossibleMoves flags every column that still has an empty slot.
func (b *Board) PossibleMoves() MoveMask {
	mask := make(MoveMask, b.Width())
	for c := range mask {
		mask[c] = b.IsOpen(c)
	}
	return mask
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.Width(); c++ {
		if b.IsOpen(c) {
			return false
		}
	}
	return true
}

// ToColumns returns a column-major copy of the grid.
func (b *Board) ToColumns() [][]Mark {
	out := make([][]Mark, b.Width())
	for c, column := range b.slots {
		out[c] = make([]Mark, len(column))
		copy(out[c], column)
	}
	return out
}

// Equal reports whether two boards hold the same marks. Boards have no
// identity beyond their content.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Width() != other.Width() || b.Height() != other.Height() {
		return false
	}
	for c := range b.slots {
		for r := range b.slots[c] {
			if b.slots[c][r] != other.slots[c][r] {
				return false
			}
		}
	}
	return true
}

// String renders the board top row first, the way it is seen on screen.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.Height() - 1; r >= 0; r-- {
		for c := 0; c < b.Width(); c++ {
			sb.WriteString(b.slots[c][r].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

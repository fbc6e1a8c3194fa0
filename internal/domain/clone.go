package domain

// Clone returns a copy of b with mark dropped into column. The result is nil
// when the column is full or out of range; a full column is a pruned branch,
// not a failure.
func (b *Board) Clone(column int, mark Mark) *Board {
	if b == nil {
		return nil
	}
	return b.CloneAt(column, b.LowestEmpty(column), mark)
}

// CloneAt returns a copy of b with the slot at (column, row) set to mark, or
// nil if row is NoSlot or the slot is outside the grid. b is never modified.
func (b *Board) CloneAt(column, row int, mark Mark) *Board {
	if b == nil || row == NoSlot || !b.inBounds(column, row) {
		return nil
	}

	next := &Board{
		slots: b.ToColumns(),
		fill:  make([]int, len(b.fill)),
	}
	copy(next.fill, b.fill)
	next.slots[column][row] = mark
	next.fill[column] = lowestEmptyRow(next.slots[column])

	return next
}

func lowestEmptyRow(column []Mark) int {
	for r, slot := range column {
		if slot == Empty {
			return r
		}
	}
	return len(column)
}

// Step is a placement whose target slot has already been resolved against a
// source board. Calling it with a mark yields the cloned board, or nil when
// the placement is illegal.
type Step func(mark Mark) *Board

// NilStep is the step of a column that is masked out or does not exist.
func NilStep(Mark) *Board {
	return nil
}

// StepFor resolves the lowest empty slot of column once, so the same
// placement can be replayed with either mark.
func (b *Board) StepFor(column int) Step {
	if b == nil {
		return NilStep
	}
	return b.StepAt(column, b.LowestEmpty(column))
}

// StepAt binds an explicit slot. A NoSlot row gives a step that always
// yields nil.
func (b *Board) StepAt(column, row int) Step {
	if b == nil || row == NoSlot || !b.inBounds(column, row) {
		return NilStep
	}
	return func(mark Mark) *Board {
		return b.CloneAt(column, row, mark)
	}
}

package domain

// line directions as (deltaColumn, deltaRow)
var directions = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // diagonal /
	{1, -1}, // diagonal \
}

// Winner scans the whole board and returns the mark owning a line of ToWin
// pieces, or Empty. It is pure and safe to use as the search win predicate.
func Winner(b *Board) Mark {
	if b == nil {
		return Empty
	}
	for c := 0; c < b.Width(); c++ {
		for r := 0; r < b.Height(); r++ {
			mark := b.slots[c][r]
			if mark == Empty {
				continue
			}
			for _, d := range directions {
				// only count forward; the line start owns the check
				if 1+CountDiskInDirection(b, c, r, d[0], d[1], mark) >= ToWin {
					return mark
				}
			}
		}
	}
	return Empty
}

// CountDiskInDirection counts consecutive pieces of mark starting next to
// (column, row) and walking by (deltaCol, deltaRow).
func CountDiskInDirection(b *Board, column, row, deltaCol, deltaRow int, mark Mark) int {
	count := 0
	c, r := column+deltaCol, row+deltaRow
	for b.inBounds(c, r) && b.slots[c][r] == mark {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}

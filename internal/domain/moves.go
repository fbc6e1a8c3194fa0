package domain

// MoveMask flags, per column, whether a move is legal.
type MoveMask []bool

func (m MoveMask) Count() int {
	n := 0
	for _, legal := range m {
		if legal {
			n++
		}
	}
	return n
}

// Ply holds one generated level of the tree. Index i belongs to column i of
// the mask that produced it; skipped or illegal columns stay in place as nil.
type Ply []*Board

// Count returns the number of boards actually present.
func (p Ply) Count() int {
	n := 0
	for _, b := range p {
		if b != nil {
			n++
		}
	}
	return n
}

// FirstPresent returns the index of the first non-nil board, or -1.
func (p Ply) FirstPresent() int {
	for i, b := range p {
		if b != nil {
			return i
		}
	}
	return -1
}

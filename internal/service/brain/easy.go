package brain

// EasyMove only looks for a column that wins on the spot. It pulls a single
// ply from generator and returns the first winning column in column order.
func EasyMove(generator *Generator, win WinPredicate) int {
	ply, ok := generator.AdvanceOwn()
	if !ok {
		return NoMove
	}

	if index := firstWin(ply, win); index != -1 {
		return index
	}
	return NoMove
}

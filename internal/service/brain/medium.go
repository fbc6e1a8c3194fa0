package brain

import (
	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
)

// MediumMove tries to win, or at least block the opponent. It pulls the own
// ply and the opposing ply for the same columns, scans both in that order and
// folds a hit in the second half back onto its column.
func MediumMove(generator *Generator, win WinPredicate) int {
	own, ok := generator.AdvanceOwn()
	if !ok || len(own) == 0 {
		return NoMove
	}
	opponent, _ := generator.AdvanceOpponent()

	both := make(domain.Ply, 0, len(own)+len(opponent))
	both = append(both, own...)
	both = append(both, opponent...)

	if index := firstWin(both, win); index != -1 {
		return index % len(own)
	}
	return NoMove
}

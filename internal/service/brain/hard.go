package brain

import (
	"math"

	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
	"github.com/rs/zerolog/log"
)

// HardMove looks two plies ahead for the generator's mark. It returns a
// forced column when at most one is playable, and an immediate win or block
// when one exists. Otherwise it scores every branch against the opponent's
// replies and returns NoMove together with the score vector.
//
// TODO: choose the column from scores once the ranking rule is settled; the
// search answers NoMove for every position without a forced or immediate move.
func HardMove(generator *Generator, win WinPredicate) (int, []float64) {
	mark := generator.Mark()
	possible, ok := generator.AdvanceOwn()
	if !ok {
		return NoMove, nil
	}

	// columns still open one level deeper, per branch
	nextMoves := make([]domain.MoveMask, len(possible))
	for i, board := range possible {
		if board != nil {
			nextMoves[i] = openColumns(board)
		}
	}

	if possible.Count() < 2 {
		if index := possible.FirstPresent(); index != -1 {
			return index, nil
		}
		return NoMove, nil
	}

	opponent, _ := generator.AdvanceOpponent()
	both := make(domain.Ply, 0, len(possible)+len(opponent))
	both = append(both, possible...)
	both = append(both, opponent...)
	if index := firstWin(both, win); index != -1 {
		return index % len(possible), nil
	}

	replies := make([]*Generator, len(possible))
	for i, board := range possible {
		if board != nil {
			replies[i] = NewGenerator(board, mark.Opponent(), Mask(nextMoves[i]))
		}
	}

	sign := float64(mark)
	badMoves := sumWins(replies, (*Generator).AdvanceOwn, win, math.Inf(-1)*sign)
	goodMoves := sumWins(replies, (*Generator).AdvanceOpponent, win, math.Inf(1)*sign)

	scores := make([]float64, len(possible))
	for i := range scores {
		score := badMoves[i]
		if score == 0 {
			score = goodMoves[i]
		}
		scores[i] = score * sign
	}

	log.Debug().
		Floats64("scores", scores).
		Msg("[BRAIN] hard tier scored branches without picking a column")

	return NoMove, scores
}

// openColumns flags the columns whose top slot is still empty.
func openColumns(board *domain.Board) domain.MoveMask {
	mask := make(domain.MoveMask, board.Width())
	for c := range mask {
		mask[c] = board.Top(c) == domain.Empty
	}
	return mask
}

// sumWins pulls one ply from every reply generator and sums the predicate
// over it. A missing branch scores missing.
func sumWins(replies []*Generator, advance func(*Generator) (domain.Ply, bool), win WinPredicate, missing float64) []float64 {
	sums := make([]float64, len(replies))
	for i, reply := range replies {
		if reply == nil {
			sums[i] = missing
			continue
		}
		ply, ok := advance(reply)
		if !ok {
			sums[i] = missing
			continue
		}
		for _, board := range ply {
			if board != nil {
				sums[i] += float64(win(board))
			}
		}
	}
	return sums
}

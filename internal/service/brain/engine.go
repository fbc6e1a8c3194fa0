package brain

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
	"github.com/rs/zerolog/log"
)

// NoMove is returned when no tier finds a column to play.
const NoMove = -1

// DefaultDepth is the depth hint used when the host does not give one.
const DefaultDepth = 2

// depth hints below this play the easy tier
const hardTierDepth = 2

// WinPredicate reports whether a board holds a terminal win. Any non-zero
// result counts as a win; hard-tier scoring sums the raw results. It must be
// pure and is never called with a nil board.
type WinPredicate func(board *domain.Board) int

// FourInARow is the default predicate: it returns the winning mark (+1/-1)
// or 0.
func FourInARow(board *domain.Board) int {
	return int(domain.Winner(board))
}

type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// TierForDepth maps a depth hint to the tier SelectMove plays. The medium
// tier is never chosen here; it is only reachable through MediumMove.
func TierForDepth(depth int) Tier {
	if depth < hardTierDepth {
		return TierEasy
	}
	return TierHard
}

// Analysis is the full outcome of a move search.
type Analysis struct {
	Tier   Tier
	Column int
	// Scores is the hard tier's per-column score vector, nil for other tiers
	// and for hard searches that returned before scoring.
	Scores []float64
}

func (a *Analysis) Found() bool {
	return a.Column != NoMove
}

// SelectMove picks a column for mark on board, or NoMove.
func SelectMove(depth int, board *domain.Board, mark domain.Mark, win WinPredicate) (int, error) {
	analysis, err := Analyze(depth, board, mark, win)
	if err != nil {
		return NoMove, err
	}
	return analysis.Column, nil
}

// Analyze runs the same search as SelectMove and also returns the tier
// played and, for the hard tier, the computed score vector.
func Analyze(depth int, board *domain.Board, mark domain.Mark, win WinPredicate) (*Analysis, error) {
	if win == nil {
		return nil, fmt.Errorf("%w: win predicate must be a function", domain.ErrInvalidArgument)
	}
	if board == nil {
		return nil, fmt.Errorf("%w: board is required", domain.ErrInvalidArgument)
	}
	if !mark.IsPlayer() {
		return nil, fmt.Errorf("%w: mark must be 1 or -1, got %d", domain.ErrInvalidArgument, mark)
	}

	analysis := &Analysis{Tier: TierForDepth(depth), Column: NoMove}
	if board.IsFull() {
		log.Debug().Str("tier", analysis.Tier.String()).Msg("[BRAIN] board is full, nothing to search")
		return analysis, nil
	}

	generator := NewGenerator(board, mark, Mask(board.PossibleMoves()))
	defer generator.Close()

	switch analysis.Tier {
	case TierEasy:
		analysis.Column = EasyMove(generator, win)
	default:
		analysis.Column, analysis.Scores = HardMove(generator, win)
	}

	log.Debug().
		Str("tier", analysis.Tier.String()).
		Int("depth", depth).
		Int("mark", int(mark)).
		Int("column", analysis.Column).
		Msg("[BRAIN] move search finished")

	return analysis, nil
}

// firstWin returns the index of the first present board the predicate
// accepts, or -1.
func firstWin(ply domain.Ply, win WinPredicate) int {
	for i, board := range ply {
		if board != nil && win(board) != 0 {
			return i
		}
	}
	return -1
}

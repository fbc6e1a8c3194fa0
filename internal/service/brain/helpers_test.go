package brain

import (
	"testing"

	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
	"github.com/stretchr/testify/require"
)

// drop plays mark into each column in turn.
func drop(t *testing.T, b *domain.Board, mark domain.Mark, columns ...int) *domain.Board {
	t.Helper()
	for _, c := range columns {
		b = b.Clone(c, mark)
		require.NotNil(t, b, "column %d should be open", c)
	}
	return b
}

// fullExcept builds a standard board with every column full except the
// listed ones. The fill pattern holds no line of four.
func fullExcept(t *testing.T, open ...int) *domain.Board {
	t.Helper()
	isOpen := make(map[int]bool, len(open))
	for _, c := range open {
		isOpen[c] = true
	}

	columns := make([][]domain.Mark, domain.Columns)
	for c := range columns {
		columns[c] = make([]domain.Mark, domain.Rows)
		if isOpen[c] {
			continue
		}
		for r := range columns[c] {
			if (r/2+c)%2 == 0 {
				columns[c][r] = domain.PlayerA
			} else {
				columns[c][r] = domain.PlayerB
			}
		}
	}

	b, err := domain.FromColumns(columns)
	require.NoError(t, err)
	require.Equal(t, domain.Empty, domain.Winner(b), "Fill pattern should not contain a win")
	return b
}

func alwaysWins(*domain.Board) int { return 1 }

func neverWins(*domain.Board) int { return 0 }

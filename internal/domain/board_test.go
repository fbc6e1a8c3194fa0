package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromColumns(t *testing.T) {
	t.Run("builds fill pointers from stacked pieces", func(t *testing.T) {
		b, err := FromColumns([][]Mark{
			{PlayerA, PlayerB, Empty},
			{Empty, Empty, Empty},
			{PlayerB, PlayerA, PlayerB},
		})
		require.NoError(t, err)
		require.Equal(t, 3, b.Width())
		require.Equal(t, 3, b.Height())
		require.Equal(t, 2, b.LowestEmpty(0))
		require.Equal(t, 0, b.LowestEmpty(1))
		require.Equal(t, NoSlot, b.LowestEmpty(2), "Full column has no slot")
		require.Equal(t, MoveMask{true, true, false}, b.PossibleMoves())
	})

	t.Run("rejects a floating piece", func(t *testing.T) {
		_, err := FromColumns([][]Mark{{Empty, PlayerA}})
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects ragged columns", func(t *testing.T) {
		_, err := FromColumns([][]Mark{{Empty, Empty}, {Empty}})
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects values that are not marks", func(t *testing.T) {
		_, err := FromColumns([][]Mark{{Mark(2), Empty}})
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects grids beyond the size cap", func(t *testing.T) {
		wide := make([][]Mark, MaxColumns+1)
		for c := range wide {
			wide[c] = make([]Mark, Rows)
		}
		_, err := FromColumns(wide)
		require.ErrorIs(t, err, ErrInvalidBoard)

		tall := [][]Mark{make([]Mark, MaxRows+1)}
		_, err = FromColumns(tall)
		require.ErrorIs(t, err, ErrInvalidBoard)

		b, err := FromColumns(NewBoard(MaxColumns, MaxRows).ToColumns())
		require.NoError(t, err, "Largest allowed grid should be accepted")
		require.Equal(t, MaxColumns, b.Width())
	})

	t.Run("rejects an empty grid", func(t *testing.T) {
		_, err := FromColumns(nil)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestClone(t *testing.T) {
	t.Run("drops the mark on the lowest empty slot only", func(t *testing.T) {
		b := NewStandardBoard().Clone(2, PlayerB)
		require.NotNil(t, b)

		next := b.Clone(2, PlayerA)
		require.NotNil(t, next)
		require.Equal(t, PlayerB, next.At(2, 0))
		require.Equal(t, PlayerA, next.At(2, 1))
		require.Equal(t, 2, next.LowestEmpty(2))

		for c := 0; c < next.Width(); c++ {
			for r := 0; r < next.Height(); r++ {
				if c == 2 && r == 1 {
					continue
				}
				require.Equal(t, b.At(c, r), next.At(c, r), "Slot (%d,%d) should be unchanged", c, r)
			}
		}
	})

	t.Run("never touches the source board", func(t *testing.T) {
		b := NewStandardBoard()
		_ = b.Clone(0, PlayerA)
		require.Equal(t, Empty, b.At(0, 0))
		require.Equal(t, 0, b.LowestEmpty(0))
		require.True(t, b.Equal(NewStandardBoard()))
	})

	t.Run("clones do not share storage", func(t *testing.T) {
		b := NewStandardBoard()
		first := b.Clone(3, PlayerA)
		second := b.Clone(3, PlayerB)
		require.Equal(t, PlayerA, first.At(3, 0))
		require.Equal(t, PlayerB, second.At(3, 0))

		cols := first.ToColumns()
		cols[3][0] = PlayerB
		require.Equal(t, PlayerA, first.At(3, 0), "ToColumns should return a copy")
	})

	t.Run("full column yields nil", func(t *testing.T) {
		b := NewBoard(1, 2).Clone(0, PlayerA).Clone(0, PlayerB)
		require.NotNil(t, b)
		require.Nil(t, b.Clone(0, PlayerA))
		require.Nil(t, b.CloneAt(0, NoSlot, PlayerA))
	})

	t.Run("missing column yields nil", func(t *testing.T) {
		b := NewStandardBoard()
		require.Nil(t, b.Clone(-1, PlayerA))
		require.Nil(t, b.Clone(Columns, PlayerA))
		require.Nil(t, b.CloneAt(0, Rows, PlayerA))
	})

	t.Run("nil board yields nil", func(t *testing.T) {
		var b *Board
		require.Nil(t, b.Clone(0, PlayerA))
	})

	t.Run("explicit row is used as given", func(t *testing.T) {
		b := NewStandardBoard().CloneAt(4, 0, PlayerB)
		require.Equal(t, PlayerB, b.At(4, 0))
		require.Equal(t, 1, b.LowestEmpty(4))
	})
}

func TestStep(t *testing.T) {
	t.Run("replays the same slot with either mark", func(t *testing.T) {
		b := NewStandardBoard().Clone(1, PlayerA)
		step := b.StepFor(1)

		own := step(PlayerA)
		other := step(PlayerB)
		require.Equal(t, PlayerA, own.At(1, 1))
		require.Equal(t, PlayerB, other.At(1, 1))
		require.Equal(t, Empty, b.At(1, 1))
	})

	t.Run("full column gives a nil step", func(t *testing.T) {
		b := NewBoard(1, 1).Clone(0, PlayerA)
		step := b.StepFor(0)
		require.Nil(t, step(PlayerA))
		require.Nil(t, step(PlayerB))
		require.Nil(t, b.StepAt(0, NoSlot)(PlayerA))
	})
}

func TestIsFull(t *testing.T) {
	b := NewBoard(2, 1)
	require.False(t, b.IsFull())
	b = b.Clone(0, PlayerA)
	require.False(t, b.IsFull())
	require.True(t, b.Clone(1, PlayerB).IsFull())
}

func TestMoveMaskAndPly(t *testing.T) {
	mask := MoveMask{false, true, true, false}
	require.Equal(t, 2, mask.Count())

	b := NewStandardBoard()
	ply := Ply{nil, b, nil, b}
	require.Equal(t, 2, ply.Count())
	require.Equal(t, 1, ply.FirstPresent())
	require.Equal(t, -1, Ply{nil, nil}.FirstPresent())
}

func TestBoardJSON(t *testing.T) {
	t.Run("round trips column-major", func(t *testing.T) {
		b := NewBoard(2, 3).Clone(1, PlayerA).Clone(1, PlayerB)
		data, err := json.Marshal(b)
		require.NoError(t, err)
		require.JSONEq(t, `[[0,0,0],[1,-1,0]]`, string(data))

		var decoded Board
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.True(t, b.Equal(&decoded))
		require.Equal(t, 2, decoded.LowestEmpty(1))
	})

	t.Run("rejects a board breaking gravity", func(t *testing.T) {
		var decoded Board
		err := json.Unmarshal([]byte(`[[0,1,0]]`), &decoded)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects an oversized grid", func(t *testing.T) {
		data, err := json.Marshal(NewBoard(80, 80))
		require.NoError(t, err)

		var decoded Board
		err = json.Unmarshal(data, &decoded)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects a non-grid payload", func(t *testing.T) {
		var decoded Board
		err := json.Unmarshal([]byte(`{"a":1}`), &decoded)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestMarkForPlayer(t *testing.T) {
	require.Equal(t, PlayerA, MarkForPlayer(0))
	require.Equal(t, PlayerA, MarkForPlayer(1))
	require.Equal(t, PlayerB, MarkForPlayer(2))
	require.Equal(t, PlayerB, PlayerA.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}

func TestResolveMark(t *testing.T) {
	mark, err := ResolveMark(-1, 1)
	require.NoError(t, err)
	require.Equal(t, PlayerB, mark, "Explicit mark wins over player number")

	mark, err = ResolveMark(0, 2)
	require.NoError(t, err)
	require.Equal(t, PlayerB, mark)

	mark, err = ResolveMark(0, 0)
	require.NoError(t, err)
	require.Equal(t, PlayerA, mark)

	_, err = ResolveMark(257, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

package domain

// Mark is the value held by a slot. PlayerA and PlayerB are opposites so a
// mark can be flipped by negation.
type Mark int8

const (
	Empty   Mark = 0
	PlayerA Mark = 1
	PlayerB Mark = -1
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// largest boards accepted from outside the process
const (
	MaxRows    = 12
	MaxColumns = 12
)

// NoSlot is the row sentinel for a column without an empty slot.
const NoSlot = -1

// Opponent returns the opposing mark. Empty stays Empty.
func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) IsPlayer() bool {
	return m == PlayerA || m == PlayerB
}

func (m Mark) String() string {
	switch m {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "."
	}
}

// MarkForPlayer maps a 1-based player number to the mark that player places.
// Players numbered below 2 act with PlayerA.
func MarkForPlayer(player int) Mark {
	if player < 2 {
		return PlayerA
	}
	return PlayerB
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidArgument Error = "invalid argument"
	ErrInvalidBoard    Error = "invalid board"
)

// ResolveMark picks the acting mark from an explicit mark, falling back to
// the 1-based player number when mark is zero.
func ResolveMark(mark, player int) (Mark, error) {
	switch mark {
	case 0:
		return MarkForPlayer(player), nil
	case int(PlayerA), int(PlayerB):
		return Mark(mark), nil
	default:
		return Empty, ErrInvalidArgument
	}
}

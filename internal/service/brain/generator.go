package brain

import (
	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
)

// State is the phase a Generator is in. A generator only moves forward
// through these phases; there is no way back to StateIdle.
type State int

const (
	StateIdle State = iota
	// own-mark ply has been produced
	StateOwnMark
	// opposing-mark ply has been produced for the same columns
	StateOpponentMark
	// a child generator one ply deeper answers every request
	StateDelegated
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOwnMark:
		return "own_mark"
	case StateOpponentMark:
		return "opponent_mark"
	case StateDelegated:
		return "delegated"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Moves selects what a generator expands: a single column, or every column
// flagged in a mask.
type Moves struct {
	column int
	mask   domain.MoveMask
	single bool
}

// Column expands one column. The generator yields plies of length one.
func Column(column int) Moves {
	return Moves{column: column, single: true}
}

// Mask expands every flagged column at once. Yielded plies have one entry
// per mask entry.
func Mask(mask domain.MoveMask) Moves {
	return Moves{mask: mask}
}

// Continuation seeds the child generator created by Descend. A nil Board
// keeps the parent's root and an Empty Mark keeps the parent's mark, so a
// continuation may carry only new moves.
type Continuation struct {
	Board *domain.Board
	Mark  domain.Mark
	Moves Moves
}

// Generator lazily produces plies of the game tree rooted at one board. It
// holds at most one ply of boards at a time and descends only when driven
// through Descend.
//
//	AdvanceOwn       idle -> own_mark            boards with the generator's mark
//	AdvanceOpponent  own_mark -> opponent_mark   same columns, opposing mark
//	AdvanceOpponent  opponent_mark -> exhausted  nothing left to continue on
//	Descend          own_mark|opponent_mark -> delegated
//
// While delegated every call is forwarded to the child, and the generator is
// exhausted once the child is.
type Generator struct {
	root  *domain.Board
	mark  domain.Mark
	moves Moves

	steps []domain.Step
	state State
	child *Generator
}

func NewGenerator(board *domain.Board, mark domain.Mark, moves Moves) *Generator {
	return &Generator{
		root:  board,
		mark:  mark,
		moves: moves,
		state: StateIdle,
	}
}

func (g *Generator) State() State {
	return g.state
}

func (g *Generator) Mark() domain.Mark {
	return g.mark
}

// Depth counts how many delegations sit below this generator.
func (g *Generator) Depth() int {
	if g.state == StateDelegated && g.child != nil {
		return 1 + g.child.Depth()
	}
	return 0
}

// AdvanceOwn produces the first ply: every selected column cloned with the
// generator's mark.
func (g *Generator) AdvanceOwn() (domain.Ply, bool) {
	switch g.state {
	case StateIdle:
		g.resolveSteps()
		g.state = StateOwnMark
		return g.produce(g.mark), true
	case StateDelegated:
		return g.forward(g.child.AdvanceOwn())
	default:
		return nil, false
	}
}

// AdvanceOpponent replays the columns of the last ply with the opposing
// mark. Called again without a Descend in between, it ends the generator.
func (g *Generator) AdvanceOpponent() (domain.Ply, bool) {
	switch g.state {
	case StateOwnMark:
		g.state = StateOpponentMark
		return g.produce(g.mark.Opponent()), true
	case StateOpponentMark:
		g.state = StateExhausted
		return nil, false
	case StateDelegated:
		return g.forward(g.child.AdvanceOpponent())
	default:
		return nil, false
	}
}

// Descend hands control to a fresh generator seeded by next and returns that
// generator's own-mark ply, one level deeper than before.
func (g *Generator) Descend(next Continuation) (domain.Ply, bool) {
	switch g.state {
	case StateOwnMark, StateOpponentMark:
		board, mark := next.Board, next.Mark
		if board == nil {
			board = g.root
		}
		if mark == domain.Empty {
			mark = g.mark
		}
		g.child = NewGenerator(board, mark, next.Moves)
		g.state = StateDelegated
		return g.forward(g.child.AdvanceOwn())
	case StateDelegated:
		return g.forward(g.child.Descend(next))
	default:
		return nil, false
	}
}

// Close ends the generator without producing anything further.
func (g *Generator) Close() {
	g.state = StateExhausted
	g.child = nil
	g.steps = nil
}

func (g *Generator) forward(ply domain.Ply, ok bool) (domain.Ply, bool) {
	if !ok && g.child.state == StateExhausted {
		g.state = StateExhausted
		g.child = nil
	}
	return ply, ok
}

func (g *Generator) resolveSteps() {
	if g.moves.single {
		g.steps = []domain.Step{g.root.StepFor(g.moves.column)}
		return
	}

	g.steps = make([]domain.Step, len(g.moves.mask))
	for c, legal := range g.moves.mask {
		if legal {
			g.steps[c] = g.root.StepFor(c)
		} else {
			g.steps[c] = domain.NilStep
		}
	}
}

func (g *Generator) produce(mark domain.Mark) domain.Ply {
	ply := make(domain.Ply, len(g.steps))
	for i, step := range g.steps {
		ply[i] = step(mark)
	}
	return ply
}

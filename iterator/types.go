// Package iterator: modes, stages and the Iterator type.
package iterator

import (
	"github.com/katalvlaran/exprdag/core"
)

// Mode selects the traversal order of an Iterator. It is fixed between
// calls to Init.
type Mode int

const (
	// DepthFirst walks the DAG with the four-stage state machine,
	// pausing at the stages selected via SetStopStages.
	DepthFirst Mode = iota

	// BreadthFirst yields nodes in FIFO order from the root.
	BreadthFirst

	// ReverseTopological yields every child strictly before every one of
	// its parents (post-order over the DAG).
	ReverseTopological
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	case ReverseTopological:
		return "reverse-topological"
	default:
		return "unknown"
	}
}

// Stage identifies one event of the depth-first state machine. Stages
// are bit flags so a set of stop stages is their bitwise OR.
type Stage uint8

const (
	// StageEnter: the node is first reached from its parent (or is the root).
	StageEnter Stage = 1 << iota

	// StageVisitingChild: about to descend into the child at ChildIndex.
	StageVisitingChild

	// StageVisitedChild: just returned from the child at ChildIndex.
	StageVisitedChild

	// StageLeave: all children processed; about to pop to the parent.
	StageLeave
)

// AllStages selects every depth-first stage as a stop stage.
const AllStages = StageEnter | StageVisitingChild | StageVisitedChild | StageLeave

// String returns the stage's name (single stages only).
func (s Stage) String() string {
	switch s {
	case StageEnter:
		return "enterexpr"
	case StageVisitingChild:
		return "visitingchild"
	case StageVisitedChild:
		return "visitedchild"
	case StageLeave:
		return "leaveexpr"
	default:
		return "unknown"
	}
}

// rtFrame is one reverse-topological stack entry: a node and the index
// of the next child to expand below it.
type rtFrame struct {
	node *core.Node
	next int
}

// noSlot marks an iterator that holds no slot index.
const noSlot = -1

// Iterator is a reusable cursor over one DAG in one mode. Create it
// with New, (re)configure with Init, drive with Next/Current, and pair
// every slot-acquiring Init with Deinit (or a further Init).
type Iterator struct {
	reg *core.Registry // slot/tag allocator; may be nil for slotless use

	mode         Mode
	allowRevisit bool
	slot         int    // claimed slot index, or noSlot
	tag          uint64 // visited tag for this traversal (0 if revisiting)

	root *core.Node
	cur  *core.Node // nil signifies end of traversal

	// depth-first state
	stage      Stage
	stopStages Stage

	// breadth-first state
	queue []*core.Node
	head  int

	// reverse-topological state
	stack []rtFrame
}

// New creates an Iterator bound to reg. reg may be nil only if the
// iterator will never need a slot, i.e. every Init allows revisiting
// and uses a non-depth-first mode; Init panics otherwise.
func New(reg *core.Registry) *Iterator {
	return &Iterator{reg: reg, slot: noSlot}
}

// Package core: Node, IterState, Handler and sentinel errors.
package core

import (
	"errors"

	"github.com/katalvlaran/exprdag/interval"
)

// MaxIterators bounds how many slot-holding iterators may be active at
// once. Per-node traversal scratch is a fixed array indexed by slot, so
// exceeding the pool would corrupt a live traversal; AcquireSlot panics
// instead of wrapping around.
const MaxIterators = 5

// Sentinel errors for core DAG operations.
var (
	// ErrNotVariable indicates a variable-only operation was applied to a
	// non-variable node.
	ErrNotVariable = errors.New("core: node is not a variable")

	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")
)

// Handler defines the numeric behavior of one operator kind. The
// traversal and propagation engines are generic over Handler: they never
// inspect what an operator means, only ask it for interval images.
type Handler interface {
	// Name returns the operator's short lowercase name ("sum", "log", …).
	Name() string

	// EvalInterval computes the node's activity interval from its
	// children's intervals (forward rule). Leaf handlers ignore child and
	// read the node's own payload. An empty result signals infeasibility;
	// implementations must never return NaN endpoints.
	EvalInterval(n *Node, child []interval.Interval) interval.Interval

	// ReverseProp derives candidate tightened intervals for every child,
	// given bounds on the node itself and the children's current
	// intervals (reverse rule). Candidates are already intersected with
	// the supplied child intervals; a candidate for a later child may
	// assume the candidates for earlier children, which is what lets one
	// pass over a product tighten every factor. infeasible is true when
	// some candidate came out empty.
	ReverseProp(n *Node, bounds interval.Interval, child []interval.Interval) (cand []interval.Interval, infeasible bool)
}

// IterState is one iterator slot's scratch data on a node. It belongs
// exclusively to the iterator currently holding the slot index.
type IterState struct {
	// VisitedTag stamps the node as visited under one traversal tag.
	VisitedTag uint64

	// CurChild is the child index a depth-first traversal is working on.
	CurChild int

	// Parent is the node to return to when leaving this node (DFS).
	Parent *Node

	// UserData is per-traversal caller storage (see Iterator.SetUserData).
	UserData any
}

// Node is one vertex of a shared expression DAG. Nodes are created via
// the operator constructors (NewVar, NewConst, NewSum, …) and are
// immutable in shape afterwards; only bound/scratch fields mutate.
type Node struct {
	handler  Handler
	children []*Node

	// variable payload (handler == var)
	varName      string
	varLb, varUb float64

	// constant payload (handler == const)
	constVal float64

	// forward-computed activity interval, valid iff activityEpoch matches
	// the registry's current bounds epoch
	activity      interval.Interval
	activityEpoch uint64

	// best-known reverse-propagation bounds, narrower or equal to activity
	propBounds interval.Interval
	propEpoch  uint64

	// membership flag for the reverse-propagation queue
	inQueue bool

	// per-iterator-slot traversal scratch
	iterData [MaxIterators]IterState
}

// Handler returns the node's operator handler.
func (n *Node) Handler() Handler { return n.handler }

// Children returns the node's ordered child slice. Callers must treat it
// as read-only; DAG shape is fixed at construction.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Slot returns the scratch state for iterator slot i.
// Only the iterator holding slot i may read or write it.
func (n *Node) Slot(i int) *IterState {
	if i < 0 || i >= MaxIterators {
		panic("core: iterator slot index out of range")
	}

	return &n.iterData[i]
}

// Activity returns the node's forward-computed activity interval.
// It is only meaningful when ActivityEpoch matches the current bounds
// epoch; stale activities must be recomputed, never trusted.
func (n *Node) Activity() interval.Interval { return n.activity }

// ActivityEpoch returns the freshness tag of Activity.
func (n *Node) ActivityEpoch() uint64 { return n.activityEpoch }

// SetActivity stores iv as the node's activity, stamped with epoch.
func (n *Node) SetActivity(iv interval.Interval, epoch uint64) {
	n.activity = iv
	n.activityEpoch = epoch
}

// PropBounds returns the node's current reverse-propagation bounds.
// Like Activity, they are meaningful only under the stamping epoch.
func (n *Node) PropBounds() interval.Interval { return n.propBounds }

// PropBoundsEpoch returns the freshness tag of PropBounds.
func (n *Node) PropBoundsEpoch() uint64 { return n.propEpoch }

// SetPropBounds stores iv as the node's propagation bounds under epoch.
func (n *Node) SetPropBounds(iv interval.Interval, epoch uint64) {
	n.propBounds = iv
	n.propEpoch = epoch
}

// InQueue reports whether the node currently sits in a reverse-propagation
// queue.
func (n *Node) InQueue() bool { return n.inQueue }

// SetInQueue records queue membership; owned by the propagation engine.
func (n *Node) SetInQueue(q bool) { n.inQueue = q }

// IsVar reports whether the node is a variable leaf.
func (n *Node) IsVar() bool {
	_, ok := n.handler.(*varHandler)

	return ok
}

// IsConst reports whether the node is a constant leaf.
func (n *Node) IsConst() bool {
	_, ok := n.handler.(*constHandler)

	return ok
}

// VarName returns the variable's name, or "" for non-variables.
func (n *Node) VarName() string { return n.varName }

// VarBounds returns the variable's current bound box (lb, ub).
// Returns ErrNotVariable for non-variable nodes.
func (n *Node) VarBounds() (float64, float64, error) {
	if !n.IsVar() {
		return 0, 0, ErrNotVariable
	}

	return n.varLb, n.varUb, nil
}

// ConstValue returns the constant's value (0 for non-constants).
func (n *Node) ConstValue() float64 { return n.constVal }

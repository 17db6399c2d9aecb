package widget

import "github.com/go-weft/weft/pkg/rendering"

// Flags records which pipeline phases a widget subtree has requested.
type Flags uint8

const (
	// FlagRequestUpdate marks a subtree whose widgets have pending property
	// changes to absorb in the next update phase.
	FlagRequestUpdate Flags = 1 << iota
	// FlagRequestLayout marks a subtree whose geometry is stale.
	FlagRequestLayout
	// FlagRequestPaint marks a subtree that must repaint.
	FlagRequestPaint
)

// upwardFlags propagate from a pod to its parent so that ancestors descend
// into dirty subtrees.
const upwardFlags = FlagRequestUpdate | FlagRequestLayout | FlagRequestPaint

// State is the per-pod bookkeeping recomputed each pipeline pass: requested
// phases plus cached geometry. Aggregate flags propagate bottom-up so a
// parent knows whether any descendant requested work.
type State struct {
	flags Flags

	// Origin is the pod's position in its parent's coordinate space.
	Origin rendering.Offset
	// Size is the final size assigned by the last layout pass.
	Size rendering.Size
}

// Request sets the given flags.
func (s *State) Request(f Flags) {
	s.flags |= f
}

// Has reports whether any of the given flags are set.
func (s *State) Has(f Flags) bool {
	return s.flags&f != 0
}

func (s *State) clear(f Flags) {
	s.flags &^= f
}

// mergeUp propagates this pod's requested phases into the parent state.
func (s *State) mergeUp(parent *State) {
	parent.flags |= s.flags & upwardFlags
}

// Package id provides unique identifiers for nodes in the retained tree.
//
// Every live node is named by an Id, and a node's position in the tree is
// named by a Path of ids from the root down. Paths are the correlation key
// between the declarative view tree, the retained widget tree, and in-flight
// events: two nodes in consecutive rebuild cycles are the same logical node
// exactly when their paths match.
package id

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

// Id uniquely identifies one live node. Ids are never reused while the node
// that owns them is alive.
type Id uint64

var counter atomic.Uint64

// Next allocates a fresh process-unique Id. Safe for concurrent use.
func Next() Id {
	return Id(counter.Add(1))
}

func (i Id) String() string {
	return fmt.Sprintf("#%d", uint64(i))
}

// Path is an ordered sequence of ids from the root down to one node.
type Path []Id

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Equal reports whether two paths name the same node.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, segment := range p {
		parts[i] = segment.String()
	}
	return "/" + strings.Join(parts, "/")
}

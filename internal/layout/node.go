// Package layout implements the binary split/leaf tree that tiles panes
// across a rectangular area: geometry computation, split/remove/zoom, and
// the layout-preset constructors (grid, rows, columns, main+stack).
//
// Nodes are plain pointers rather than an index arena. Go's pointer
// fields are directly addressable (unlike Rust's ownership-checked
// Box<T>), so split_leaf/remove_leaf can rewrite a child slot in place
// by taking its address — the arena-of-stable-indices technique the
// original implementation's language needed to dodge ownership errors
// buys nothing extra here.
package layout

import (
	"github.com/google/uuid"

	"github.com/claudebuildsapps/matrixmux/internal/geometry"
)

// PaneID is an opaque, stable identifier for a pane. It is never reused.
type PaneID string

// NewPaneID mints a fresh 128-bit identifier.
func NewPaneID() PaneID {
	return PaneID(uuid.New().String())
}

// Direction is the axis a Split divides its rect along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// minRatio/maxRatio clamp split ratios away from the degenerate 0/1
// extremes. ComputeLayout floors the first child's extent, so in a rect
// narrower than 1/minRatio cells a child can still end up zero-sized.
const (
	minRatio = 0.001
	maxRatio = 1 - minRatio
)

func clampRatio(r float64) float64 {
	if r < minRatio {
		return minRatio
	}
	if r > maxRatio {
		return maxRatio
	}
	return r
}

// Node is a tagged union: a Leaf holding a pane, or a Split holding two
// children. Leaf fields are meaningful only when IsLeaf is true; Split
// fields only when it is false.
type Node struct {
	IsLeaf bool

	// Leaf fields.
	PaneID PaneID

	// Split fields.
	Direction Direction
	Ratio     float64
	First     *Node
	Second    *Node

	// Rect is the last geometry ComputeLayout assigned to this node.
	Rect geometry.Rect
}

// Leaf constructs a leaf node for the given pane at rect.
func Leaf(id PaneID, rect geometry.Rect) *Node {
	return &Node{IsLeaf: true, PaneID: id, Rect: rect}
}

// NewSplit constructs a split node. ratio is clamped to [minRatio, maxRatio].
func NewSplit(dir Direction, ratio float64, first, second *Node, rect geometry.Rect) *Node {
	return &Node{
		IsLeaf:    false,
		Direction: dir,
		Ratio:     clampRatio(ratio),
		First:     first,
		Second:    second,
		Rect:      rect,
	}
}

// ComputeLayout assigns rect top-down across the subtree rooted at n,
// tiling outer exactly between a Split's two children. It is idempotent:
// calling it twice with the same outer rect leaves the tree unchanged.
func ComputeLayout(n *Node, outer geometry.Rect) {
	if n == nil {
		return
	}
	n.Rect = outer
	if n.IsLeaf {
		return
	}

	var firstRect, secondRect geometry.Rect
	switch n.Direction {
	case Horizontal:
		firstRect, secondRect = outer.SplitHorizontal(n.Ratio)
	case Vertical:
		firstRect, secondRect = outer.SplitVertical(n.Ratio)
	}
	ComputeLayout(n.First, firstRect)
	ComputeLayout(n.Second, secondRect)
}

// PaneIDs returns the pre-order collection of leaf ids in the subtree.
func PaneIDs(n *Node) []PaneID {
	if n == nil {
		return nil
	}
	if n.IsLeaf {
		return []PaneID{n.PaneID}
	}
	ids := PaneIDs(n.First)
	ids = append(ids, PaneIDs(n.Second)...)
	return ids
}

// RectOf linear-searches the tree for id's rect.
func RectOf(n *Node, id PaneID) (geometry.Rect, bool) {
	if n == nil {
		return geometry.Rect{}, false
	}
	if n.IsLeaf {
		if n.PaneID == id {
			return n.Rect, true
		}
		return geometry.Rect{}, false
	}
	if r, ok := RectOf(n.First, id); ok {
		return r, true
	}
	return RectOf(n.Second, id)
}

// FindLeaf returns the leaf node for id, or nil if absent.
func FindLeaf(n *Node, id PaneID) *Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf {
		if n.PaneID == id {
			return n
		}
		return nil
	}
	if leaf := FindLeaf(n.First, id); leaf != nil {
		return leaf
	}
	return FindLeaf(n.Second, id)
}

// Clone deep-copies the subtree, used to snapshot the pre-zoom layout.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.First = Clone(n.First)
	c.Second = Clone(n.Second)
	return &c
}

package layout

import (
	"math"

	"github.com/claudebuildsapps/matrixmux/internal/geometry"
)

// buildChain right-folds ids into a chain of Splits along dir. The split
// joining k remaining ids uses ratio 1/k, so every leaf ends up with an
// equal share of the original extent: after the first cut takes 1/k,
// the rest (k-1)/k is divided equally among the remaining k-1 ids by
// the same rule, recursively.
func buildChain(ids []PaneID, dir Direction) *Node {
	nodes := make([]*Node, len(ids))
	for i, id := range ids {
		nodes[i] = Leaf(id, emptyRect)
	}
	return buildChainNodes(nodes, dir)
}

func buildChainNodes(nodes []*Node, dir Direction) *Node {
	k := len(nodes)
	switch {
	case k == 0:
		return nil
	case k == 1:
		return nodes[0]
	default:
		ratio := 1 / float64(k)
		return NewSplit(dir, ratio, nodes[0], buildChainNodes(nodes[1:], dir), emptyRect)
	}
}

// emptyRect is the placeholder rect for freshly-built preset nodes;
// WindowManager runs ComputeLayout over the returned tree before use.
var emptyRect geometry.Rect

// HorizontalRow right-folds ids into a left-to-right chain of
// Horizontal splits, each taking an equal share of the width.
func HorizontalRow(ids []PaneID) (*Node, error) {
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	return buildChain(ids, Horizontal), nil
}

// VerticalColumn right-folds ids into a top-to-bottom chain of Vertical
// splits, each taking an equal share of the height.
func VerticalColumn(ids []PaneID) (*Node, error) {
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	return buildChain(ids, Vertical), nil
}

// Grid arranges ids into a roughly-square grid. n<=1 is a single leaf;
// n==2 is one Horizontal split; n==3 is a main-left, two-stacked-right
// shape; n>=4 computes rows = ceil(sqrt(n)), cols = ceil(n/rows), lays
// each row out as an equal-share Horizontal chain, and stacks the rows
// as an equal-share Vertical chain (the last row may be shorter than
// cols when n is not a multiple of cols).
func Grid(ids []PaneID) (*Node, error) {
	n := len(ids)
	switch {
	case n == 0:
		return nil, ErrNotFound
	case n == 1:
		return Leaf(ids[0], emptyRect), nil
	case n == 2:
		return NewSplit(Horizontal, 0.5, Leaf(ids[0], emptyRect), Leaf(ids[1], emptyRect), emptyRect), nil
	case n == 3:
		second := NewSplit(Vertical, 0.5, Leaf(ids[1], emptyRect), Leaf(ids[2], emptyRect), emptyRect)
		return NewSplit(Horizontal, 0.5, Leaf(ids[0], emptyRect), second, emptyRect), nil
	}

	rows := int(math.Ceil(math.Sqrt(float64(n))))
	cols := int(math.Ceil(float64(n) / float64(rows)))

	var rowNodes []*Node
	for i := 0; i < n; i += cols {
		end := i + cols
		if end > n {
			end = n
		}
		rowNodes = append(rowNodes, buildChain(ids[i:end], Horizontal))
	}
	return buildChainNodes(rowNodes, Vertical), nil
}

// MainStack places mainID as a 70%-width leaf on the left and stackIDs
// as an equal-share Vertical chain on the right.
func MainStack(mainID PaneID, stackIDs []PaneID) (*Node, error) {
	if mainID == "" {
		return nil, ErrNotFound
	}
	if len(stackIDs) == 0 {
		return Leaf(mainID, emptyRect), nil
	}
	stack := buildChain(stackIDs, Vertical)
	return NewSplit(Horizontal, 0.7, Leaf(mainID, emptyRect), stack, emptyRect), nil
}

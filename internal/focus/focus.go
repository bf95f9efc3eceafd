// Package focus implements compass-neighbour pane selection by rect
// proximity: given the focused pane's rect and a set of candidates,
// pick the nearest candidate that lies in the requested direction.
package focus

import (
	"math"

	"github.com/claudebuildsapps/matrixmux/internal/geometry"
	"github.com/claudebuildsapps/matrixmux/internal/layout"
)

// Direction is a compass direction for focus navigation.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Candidate pairs a pane id with its current rect.
type Candidate struct {
	ID   layout.PaneID
	Rect geometry.Rect
}

// Nearest returns the candidate id nearest current in direction dir, by
// rect-centre proximity. A candidate is eligible iff its centre offset
// (dx, dy) from current's centre satisfies the direction's axis
// dominance test; among eligible candidates the one minimising
// dx²+dy² wins. Returns ok=false if no candidate is eligible.
func Nearest(current geometry.Rect, candidates []Candidate, dir Direction) (layout.PaneID, bool) {
	cx, cy := current.Center()

	var best layout.PaneID
	bestDist := math.MaxFloat64
	found := false

	for _, cand := range candidates {
		rx, ry := cand.Rect.Center()
		dx := rx - cx
		dy := ry - cy

		if !eligible(dir, dx, dy) {
			continue
		}

		dist := dx*dx + dy*dy
		if dist < bestDist {
			bestDist = dist
			best = cand.ID
			found = true
		}
	}

	return best, found
}

func eligible(dir Direction, dx, dy float64) bool {
	switch dir {
	case Up:
		return dy < 0 && math.Abs(dy) > math.Abs(dx)
	case Down:
		return dy > 0 && math.Abs(dy) > math.Abs(dx)
	case Left:
		return dx < 0 && math.Abs(dx) > math.Abs(dy)
	case Right:
		return dx > 0 && math.Abs(dx) > math.Abs(dy)
	default:
		return false
	}
}

// Package geometry provides the rectangle type shared by the layout tree,
// the pane model, and directional focus navigation.
package geometry

// Rect is an axis-aligned rectangle in character-cell (or pixel) units.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the rectangle's center point, used by directional focus.
func (r Rect) Center() (x, y float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// SplitHorizontal divides r into a left and right rect along its width.
// first gets floor(width*ratio); second gets the remainder, so the two
// tile r exactly with no overlap and no gaps.
func (r Rect) SplitHorizontal(ratio float64) (first, second Rect) {
	firstWidth := int(float64(r.Width) * ratio)
	if firstWidth < 0 {
		firstWidth = 0
	}
	if firstWidth > r.Width {
		firstWidth = r.Width
	}
	first = Rect{X: r.X, Y: r.Y, Width: firstWidth, Height: r.Height}
	second = Rect{X: r.X + firstWidth, Y: r.Y, Width: r.Width - firstWidth, Height: r.Height}
	return first, second
}

// SplitVertical divides r into a top and bottom rect along its height.
func (r Rect) SplitVertical(ratio float64) (first, second Rect) {
	firstHeight := int(float64(r.Height) * ratio)
	if firstHeight < 0 {
		firstHeight = 0
	}
	if firstHeight > r.Height {
		firstHeight = r.Height
	}
	first = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: firstHeight}
	second = Rect{X: r.X, Y: r.Y + firstHeight, Width: r.Width, Height: r.Height - firstHeight}
	return first, second
}

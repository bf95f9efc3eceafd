package geometry

import "testing"

func TestSplitHorizontalTilesExactly(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 81, Height: 24}
	first, second := r.SplitHorizontal(0.5)

	if first.Width != 40 || second.Width != 41 {
		t.Fatalf("got first=%d second=%d, want 40/41", first.Width, second.Width)
	}
	if first.X != 0 || second.X != first.Width {
		t.Fatalf("children do not tile contiguously: first.X=%d second.X=%d", first.X, second.X)
	}
	if first.Height != r.Height || second.Height != r.Height {
		t.Fatalf("split changed height")
	}
}

func TestSplitVerticalTilesExactly(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 80, Height: 25}
	top, bottom := r.SplitVertical(0.5)

	if top.Height != 12 || bottom.Height != 13 {
		t.Fatalf("got top=%d bottom=%d, want 12/13", top.Height, bottom.Height)
	}
	if bottom.Y != top.Y+top.Height {
		t.Fatalf("gap or overlap: top.Y=%d+%d bottom.Y=%d", top.Y, top.Height, bottom.Y)
	}
}

func TestSplitRatioClampsToBounds(t *testing.T) {
	r := Rect{Width: 10, Height: 10}

	first, second := r.SplitHorizontal(-1)
	if first.Width != 0 || second.Width != 10 {
		t.Fatalf("negative ratio not clamped: first=%d second=%d", first.Width, second.Width)
	}

	first, second = r.SplitHorizontal(2)
	if first.Width != 10 || second.Width != 0 {
		t.Fatalf("over-1 ratio not clamped: first=%d second=%d", first.Width, second.Width)
	}
}

func TestCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 80, Height: 24}
	x, y := r.Center()
	if x != 40 || y != 12 {
		t.Fatalf("center = (%v, %v), want (40, 12)", x, y)
	}
}

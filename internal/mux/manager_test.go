package mux

import (
	"testing"

	"github.com/claudebuildsapps/matrixmux/internal/focus"
	"github.com/claudebuildsapps/matrixmux/internal/geometry"
	"github.com/claudebuildsapps/matrixmux/internal/layout"
)

func newTestManager(t *testing.T) *WindowManager {
	t.Helper()
	return New(geometry.Rect{Width: 80, Height: 24}, "/bin/sh")
}

func TestCreatePaneBecomesRootAndFocused(t *testing.T) {
	wm := newTestManager(t)
	id, err := wm.CreatePane("one")
	if err != nil {
		t.Fatalf("CreatePane: %v", err)
	}
	defer wm.CloseFocused()

	if focused, ok := wm.Focused(); !ok || focused != id {
		t.Fatalf("expected %v focused, got %v (ok=%v)", id, focused, ok)
	}
	if rect, ok := layout.RectOf(wm.Tree(), id); !ok || rect != wm.area {
		t.Fatalf("expected root pane to occupy full area, got %+v", rect)
	}
}

func TestSplitFocusedTilesExactly(t *testing.T) {
	wm := newTestManager(t)
	a, _ := wm.CreatePane("a")
	b, err := wm.SplitFocused("b", layout.Vertical)
	if err != nil {
		t.Fatalf("SplitFocused: %v", err)
	}
	defer wm.ClosePane(a)
	defer wm.ClosePane(b)

	if focused, _ := wm.Focused(); focused != b {
		t.Fatalf("expected new pane %v focused, got %v", b, focused)
	}

	ra, _ := layout.RectOf(wm.Tree(), a)
	rb, _ := layout.RectOf(wm.Tree(), b)
	if ra.Width != rb.Width || ra.Height+rb.Height != wm.area.Height {
		t.Fatalf("split does not tile exactly: a=%+v b=%+v", ra, rb)
	}
}

func TestCloseCollapsesWithoutOrphanSplit(t *testing.T) {
	wm := newTestManager(t)
	a, _ := wm.CreatePane("a")
	b, _ := wm.SplitFocused("b", layout.Horizontal)

	if err := wm.ClosePane(b); err != nil {
		t.Fatalf("ClosePane: %v", err)
	}

	if !wm.tree.IsLeaf || wm.tree.PaneID != a {
		t.Fatalf("expected tree to collapse to sole leaf %v, got %+v", a, wm.tree)
	}
	if focused, ok := wm.Focused(); !ok || focused != a {
		t.Fatalf("expected focus to move to remaining pane %v, got %v", a, focused)
	}
	wm.ClosePane(a)
}

func TestFocusNextPrevWrapAround(t *testing.T) {
	wm := newTestManager(t)
	a, _ := wm.CreatePane("a")
	b, _ := wm.SplitFocused("b", layout.Vertical)
	c, _ := wm.SplitFocused("c", layout.Vertical)
	defer wm.ClosePane(a)
	defer wm.ClosePane(b)
	defer wm.ClosePane(c)

	ids := wm.sortedIDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 panes, got %d", len(ids))
	}

	wm.setFocus(ids[0])
	wm.FocusNext()
	if f, _ := wm.Focused(); f != ids[1] {
		t.Fatalf("FocusNext from 0: got %v, want %v", f, ids[1])
	}
	wm.FocusNext()
	wm.FocusNext()
	if f, _ := wm.Focused(); f != ids[0] {
		t.Fatalf("FocusNext should wrap around to %v, got %v", ids[0], f)
	}

	wm.setFocus(ids[0])
	wm.FocusPrev()
	if f, _ := wm.Focused(); f != ids[2] {
		t.Fatalf("FocusPrev from 0 should wrap to last (%v), got %v", ids[2], f)
	}
}

func TestZoomToggleIsInvolution(t *testing.T) {
	wm := newTestManager(t)
	a, _ := wm.CreatePane("a")
	b, _ := wm.SplitFocused("b", layout.Vertical)
	defer wm.ClosePane(a)
	defer wm.ClosePane(b)

	before := wm.tree
	wm.ToggleZoom()
	if !wm.Zoomed() {
		t.Fatalf("expected zoomed after first toggle")
	}
	if !wm.tree.IsLeaf || wm.tree.PaneID != b {
		t.Fatalf("expected zoomed tree to be sole leaf %v, got %+v", b, wm.tree)
	}

	wm.ToggleZoom()
	if wm.Zoomed() {
		t.Fatalf("expected unzoomed after second toggle")
	}
	if !treesStructurallyEqual(before, wm.tree) {
		t.Fatalf("unzoom did not restore original layout: before=%+v after=%+v", before, wm.tree)
	}
}

func treesStructurallyEqual(a, b *layout.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsLeaf != b.IsLeaf {
		return false
	}
	if a.IsLeaf {
		return a.PaneID == b.PaneID
	}
	return a.Direction == b.Direction &&
		treesStructurallyEqual(a.First, b.First) &&
		treesStructurallyEqual(a.Second, b.Second)
}

func TestApplyGridRetilesAllPanes(t *testing.T) {
	wm := newTestManager(t)
	ids := make([]layout.PaneID, 0, 4)
	first, _ := wm.CreatePane("p0")
	ids = append(ids, first)
	for i := 1; i < 4; i++ {
		id, err := wm.SplitFocused("p", layout.Vertical)
		if err != nil {
			t.Fatalf("SplitFocused: %v", err)
		}
		ids = append(ids, id)
	}
	defer func() {
		for _, id := range ids {
			wm.ClosePane(id)
		}
	}()

	if err := wm.ApplyGrid(); err != nil {
		t.Fatalf("ApplyGrid: %v", err)
	}
	if wm.Zoomed() {
		t.Fatalf("ApplyGrid should clear zoom state")
	}
	for _, id := range ids {
		if _, ok := layout.RectOf(wm.Tree(), id); !ok {
			t.Fatalf("pane %v missing from post-grid tree", id)
		}
	}
}

func TestFocusDirectionNoopWhenZoomed(t *testing.T) {
	wm := newTestManager(t)
	a, _ := wm.CreatePane("a")
	b, _ := wm.SplitFocused("b", layout.Vertical)
	defer wm.ClosePane(a)
	defer wm.ClosePane(b)

	wm.ToggleZoom()
	focusedBefore, _ := wm.Focused()
	wm.FocusDirection(focus.Left)
	focusedAfter, _ := wm.Focused()
	if focusedBefore != focusedAfter {
		t.Fatalf("FocusDirection should be a no-op while zoomed")
	}
}

func TestClosingLastPaneClearsFocus(t *testing.T) {
	wm := newTestManager(t)
	a, _ := wm.CreatePane("a")
	if err := wm.ClosePane(a); err != nil {
		t.Fatalf("ClosePane: %v", err)
	}
	if _, ok := wm.Focused(); ok {
		t.Fatalf("expected no focused pane after closing the last one")
	}
	if wm.tree != nil {
		t.Fatalf("expected nil tree after closing the last pane, got %+v", wm.tree)
	}
}

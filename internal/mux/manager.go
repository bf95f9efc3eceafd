// Package mux implements the WindowManager (layout tree + pane
// ownership + zoom) and the Bubble Tea controller that drives it.
package mux

import (
	"os"
	"sort"

	"github.com/claudebuildsapps/matrixmux/internal/focus"
	"github.com/claudebuildsapps/matrixmux/internal/geometry"
	"github.com/claudebuildsapps/matrixmux/internal/layout"
	"github.com/claudebuildsapps/matrixmux/internal/pane"
)

// ErrNotFound mirrors layout.ErrNotFound for WindowManager-level
// operations that reference an unknown pane id.
var ErrNotFound = layout.ErrNotFound

// WindowManager owns the layout tree and the live pane set. panes.keys()
// is always a superset of the tree's leaf ids; focused, when set,
// always names a key in panes; zoomedPane and preZoomLayout are both
// set or both unset.
type WindowManager struct {
	area          geometry.Rect
	tree          *layout.Node
	panes         map[layout.PaneID]*pane.Pane
	focused       layout.PaneID
	hasFocused    bool
	zoomedPane    layout.PaneID
	zoomed        bool
	preZoomLayout *layout.Node

	defaultShell string
}

// New constructs an empty WindowManager sized to area, using shell as
// the default command for newly spawned panes.
func New(area geometry.Rect, shell string) *WindowManager {
	if shell == "" {
		shell = defaultShell()
	}
	return &WindowManager{
		area:         area,
		panes:        make(map[layout.PaneID]*pane.Pane),
		defaultShell: shell,
	}
}

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/bash"
}

// CreatePane spawns a new pane with the default shell, registers it,
// and inserts it into the tree — as the root if empty, otherwise
// splitting the focused leaf vertically.
func (wm *WindowManager) CreatePane(title string) (layout.PaneID, error) {
	id := layout.NewPaneID()

	if wm.tree == nil {
		p := pane.New(id, title, wm.area)
		wm.panes[id] = p
		wm.tree = layout.Leaf(id, wm.area)
		layout.ComputeLayout(wm.tree, wm.area)
		wm.setFocus(id)
		return id, p.Spawn(wm.defaultShell, "")
	}

	return wm.splitInto(title, id, layout.Vertical)
}

// SplitFocused splits the focused pane along dir, spawning a fresh
// default-shell pane in the new slot and focusing it.
func (wm *WindowManager) SplitFocused(title string, dir layout.Direction) (layout.PaneID, error) {
	if !wm.hasFocused {
		return "", ErrNotFound
	}
	return wm.splitInto(title, layout.NewPaneID(), dir)
}

func (wm *WindowManager) splitInto(title string, newID layout.PaneID, dir layout.Direction) (layout.PaneID, error) {
	targetID := wm.focused
	if !wm.hasFocused {
		ids := layout.PaneIDs(wm.tree)
		if len(ids) == 0 {
			return "", ErrNotFound
		}
		targetID = ids[0]
	}

	if err := layout.SplitLeaf(&wm.tree, targetID, dir, newID, 0.5); err != nil {
		return "", err
	}
	layout.ComputeLayout(wm.tree, wm.area)

	rect, _ := layout.RectOf(wm.tree, newID)
	p := pane.New(newID, title, rect)
	wm.panes[newID] = p
	wm.setFocus(newID)
	wm.reflowRects()

	return newID, p.Spawn(wm.defaultShell, "")
}

// ClosePane closes and removes the pane id: kills its session, prunes
// its leaf from the tree (collapsing orphaned splits), removes the map
// entry, and reassigns focus if it was the focused pane.
func (wm *WindowManager) ClosePane(id layout.PaneID) error {
	p, ok := wm.panes[id]
	if !ok {
		return ErrNotFound
	}

	p.Close()
	delete(wm.panes, id)

	if wm.zoomed && wm.zoomedPane == id {
		wm.tree = wm.preZoomLayout
		wm.preZoomLayout = nil
		wm.zoomed = false
	} else if wm.zoomed {
		layout.RemoveLeaf(&wm.preZoomLayout, id)
	}
	layout.RemoveLeaf(&wm.tree, id)
	layout.ComputeLayout(wm.tree, wm.area)
	wm.reflowRects()

	if wm.hasFocused && wm.focused == id {
		remaining := wm.sortedIDs()
		if len(remaining) == 0 {
			wm.hasFocused = false
			wm.focused = ""
		} else {
			wm.setFocus(remaining[0])
		}
	}

	return nil
}

// CloseFocused closes the currently focused pane, if any.
func (wm *WindowManager) CloseFocused() error {
	if !wm.hasFocused {
		return ErrNotFound
	}
	return wm.ClosePane(wm.focused)
}

func (wm *WindowManager) setFocus(id layout.PaneID) {
	if old, ok := wm.panes[wm.focused]; ok && wm.hasFocused {
		old.Focused = false
	}
	if p, ok := wm.panes[id]; ok {
		p.Focused = true
	}
	wm.focused = id
	wm.hasFocused = true
}

// sortedIDs returns pane ids in a stable order, used as the id-ordered
// sequence for FocusNext/FocusPrev.
func (wm *WindowManager) sortedIDs() []layout.PaneID {
	ids := make([]layout.PaneID, 0, len(wm.panes))
	for id := range wm.panes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FocusNext moves focus to the next pane in id order, wrapping.
func (wm *WindowManager) FocusNext() {
	wm.focusBy(1)
}

// FocusPrev moves focus to the previous pane in id order, wrapping.
func (wm *WindowManager) FocusPrev() {
	wm.focusBy(-1)
}

func (wm *WindowManager) focusBy(delta int) {
	ids := wm.sortedIDs()
	if len(ids) == 0 {
		return
	}
	idx := 0
	for i, id := range ids {
		if wm.hasFocused && id == wm.focused {
			idx = i
			break
		}
	}
	next := (idx + delta + len(ids)) % len(ids)
	wm.setFocus(ids[next])
}

// FocusDirection moves focus to the nearest pane in dir by rect
// proximity. No-op if zoomed or no eligible candidate exists.
func (wm *WindowManager) FocusDirection(dir focus.Direction) {
	if wm.zoomed || !wm.hasFocused {
		return
	}
	current, ok := layout.RectOf(wm.tree, wm.focused)
	if !ok {
		return
	}

	var candidates []focus.Candidate
	for id, p := range wm.panes {
		if id == wm.focused {
			continue
		}
		candidates = append(candidates, focus.Candidate{ID: id, Rect: p.Rect})
	}

	if id, ok := focus.Nearest(current, candidates, dir); ok {
		wm.setFocus(id)
	}
}

// ToggleZoom zooms the focused pane to fill the area, or unzooms if
// already zoomed (zoom is a toggle when called while zoomed).
func (wm *WindowManager) ToggleZoom() {
	if wm.zoomed {
		wm.tree = wm.preZoomLayout
		wm.preZoomLayout = nil
		wm.zoomed = false
		layout.ComputeLayout(wm.tree, wm.area)
		wm.reflowRects()
		return
	}

	if !wm.hasFocused {
		return
	}
	wm.preZoomLayout = wm.tree
	wm.zoomedPane = wm.focused
	wm.zoomed = true
	wm.tree = layout.Leaf(wm.focused, wm.area)
	layout.ComputeLayout(wm.tree, wm.area)
	wm.reflowRects()
}

// Zoomed reports whether a pane is currently zoomed.
func (wm *WindowManager) Zoomed() bool {
	return wm.zoomed
}

// ApplyGrid rearranges all panes into a grid preset.
func (wm *WindowManager) ApplyGrid() error {
	return wm.applyPreset(func(ids []layout.PaneID) (*layout.Node, error) {
		return layout.Grid(ids)
	})
}

// ApplyHorizontal rearranges all panes into a horizontal row.
func (wm *WindowManager) ApplyHorizontal() error {
	return wm.applyPreset(func(ids []layout.PaneID) (*layout.Node, error) {
		return layout.HorizontalRow(ids)
	})
}

// ApplyVertical rearranges all panes into a vertical column.
func (wm *WindowManager) ApplyVertical() error {
	return wm.applyPreset(func(ids []layout.PaneID) (*layout.Node, error) {
		return layout.VerticalColumn(ids)
	})
}

// ApplyMainStack rearranges all panes with the focused pane as main and
// the rest stacked to its right.
func (wm *WindowManager) ApplyMainStack() error {
	if !wm.hasFocused {
		return ErrNotFound
	}
	return wm.applyPreset(func(ids []layout.PaneID) (*layout.Node, error) {
		var stack []layout.PaneID
		for _, id := range ids {
			if id != wm.focused {
				stack = append(stack, id)
			}
		}
		return layout.MainStack(wm.focused, stack)
	})
}

func (wm *WindowManager) applyPreset(build func([]layout.PaneID) (*layout.Node, error)) error {
	ids := wm.sortedIDs()
	if len(ids) == 0 {
		return ErrNotFound
	}
	tree, err := build(ids)
	if err != nil {
		return err
	}
	wm.tree = tree
	wm.zoomed = false
	wm.preZoomLayout = nil
	layout.ComputeLayout(wm.tree, wm.area)
	wm.reflowRects()
	return nil
}

// Resize updates the manager's area and propagates the new geometry to
// the tree and every pane.
func (wm *WindowManager) Resize(area geometry.Rect) {
	wm.area = area
	layout.ComputeLayout(wm.tree, area)
	wm.reflowRects()
}

func (wm *WindowManager) reflowRects() {
	for id, p := range wm.panes {
		if rect, ok := layout.RectOf(wm.tree, id); ok {
			p.Resize(rect)
		}
	}
}

// Tick drains every pane's PTY event queue.
func (wm *WindowManager) Tick() {
	for _, p := range wm.panes {
		p.Update()
	}
}

// SendInput forwards bytes to the focused pane. No-op if none focused.
func (wm *WindowManager) SendInput(data []byte) {
	if !wm.hasFocused {
		return
	}
	if p, ok := wm.panes[wm.focused]; ok {
		p.SendInput(data)
	}
}

// Focused returns the focused pane id and whether one is set.
func (wm *WindowManager) Focused() (layout.PaneID, bool) {
	return wm.focused, wm.hasFocused
}

// Pane returns the pane for id, if present.
func (wm *WindowManager) Pane(id layout.PaneID) (*pane.Pane, bool) {
	p, ok := wm.panes[id]
	return p, ok
}

// Tree exposes the layout tree for render walks.
func (wm *WindowManager) Tree() *layout.Node {
	return wm.tree
}

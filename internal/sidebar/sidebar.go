// Package sidebar models the fixed icon column: hit-testing by y
// position and hover state. Rendering is left to the host; this package
// only exposes the model and hit map.
package sidebar

// Icon identifies one of the sidebar's fixed entries.
type Icon int

const (
	NewWindow Icon = iota
	SplitHorizontal
	SplitVertical
	GridLayout
	HorizontalLayout
	VerticalLayout
	MainLayout
	Zoom
	CloseWindow
	Help
)

// iconHeight is the number of rows each icon slot occupies.
const iconHeight = 3

// Width is the fixed column width in columns.
const Width = 3

// Info is an icon's display metadata: the symbol drawn in the sidebar
// column, plus title, description and shortcut hint for a tooltip.
type Info struct {
	Icon        Icon
	Symbol      string
	Title       string
	Description string
	Shortcut    string
}

// icons is the fixed, ordered icon table.
var icons = []Info{
	{NewWindow, "N", "New Window", "Create a new terminal window", "Ctrl+N or :new"},
	{SplitHorizontal, "H", "Split Horizontal", "Split current window horizontally", "Ctrl+H or :split h"},
	{SplitVertical, "V", "Split Vertical", "Split current window vertically", "Ctrl+V or :split"},
	{GridLayout, "G", "Grid Layout", "Arrange windows in a grid pattern", "Ctrl+G or :layout grid"},
	{HorizontalLayout, "=", "Horizontal Layout", "Arrange windows horizontally", "Ctrl+Shift+H or :layout h"},
	{VerticalLayout, "‖", "Vertical Layout", "Arrange windows vertically", "Ctrl+Shift+V or :layout v"},
	{MainLayout, "M", "Main Layout", "Show current window as main with others stacked", "Ctrl+M or :layout main"},
	{Zoom, "Z", "Zoom Window", "Toggle zoom on current window", "Ctrl+Z or :zoom"},
	{CloseWindow, "X", "Close Window", "Close the current window", "Ctrl+W or :close"},
	{Help, "?", "Help", "Show help information", ":help"},
}

// Icons returns the fixed, ordered icon table.
func Icons() []Info {
	return icons
}

// Sidebar tracks visibility and hover state over the fixed icon column.
type Sidebar struct {
	active  bool
	hovered *Icon
}

// New constructs an active sidebar with no hovered icon.
func New() *Sidebar {
	return &Sidebar{active: true}
}

// Toggle flips visibility.
func (s *Sidebar) Toggle() {
	s.active = !s.active
}

// Active reports whether the sidebar is currently shown.
func (s *Sidebar) Active() bool {
	return s.active
}

// SetHover updates the hovered icon; nil clears it.
func (s *Sidebar) SetHover(icon *Icon) {
	s.hovered = icon
}

// Hovered returns the currently hovered icon, or nil.
func (s *Sidebar) Hovered() *Icon {
	return s.hovered
}

// IconAt returns the icon whose slot contains row y, or ok=false if y
// falls past the last icon.
func IconAt(y int) (Info, bool) {
	if y < 0 {
		return Info{}, false
	}
	idx := y / iconHeight
	if idx < 0 || idx >= len(icons) {
		return Info{}, false
	}
	return icons[idx], true
}

package mux

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/claudebuildsapps/matrixmux/internal/command"
	"github.com/claudebuildsapps/matrixmux/internal/config"
	"github.com/claudebuildsapps/matrixmux/internal/focus"
	"github.com/claudebuildsapps/matrixmux/internal/geometry"
	"github.com/claudebuildsapps/matrixmux/internal/layout"
	"github.com/claudebuildsapps/matrixmux/internal/sidebar"
)

// tickInterval is the default render/drain tick rate (spec.md §6).
const tickInterval = 250 * time.Millisecond

// tickMsg drives the controller's main loop: drain every pane's event
// queue, then render.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// App is the top-level Bubble Tea model: owns the WindowManager,
// sidebar, and command interpreter, and dispatches host events per the
// shortcut table and command-mode grammar.
type App struct {
	wm       *WindowManager
	sidebar  *sidebar.Sidebar
	commands *command.Interpreter
	theme    config.Theme
	keys     keyMap
	help     help.Model

	width, height int
	running       bool
	showHelp      bool
	statusLine    string
}

// NewApp constructs a fresh App; the WindowManager is sized lazily on
// the first tea.WindowSizeMsg.
func NewApp() *App {
	return &App{
		wm:       New(geometry.Rect{Width: 80, Height: 24}, ""),
		sidebar:  sidebar.New(),
		commands: command.New(),
		theme:    config.GetTheme("catppuccin-mocha", nil),
		keys:     defaultKeyMap(),
		help:     help.New(),
		running:  true,
	}
}

// Init implements tea.Model: spawn an initial pane and start ticking.
func (a *App) Init() tea.Cmd {
	_, err := a.wm.CreatePane("shell")
	a.logErr("create initial pane", err)
	return tickCmd()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.wm.Resize(a.contentArea())
		return a, nil

	case tickMsg:
		a.wm.Tick()
		if !a.running {
			return a, tea.Quit
		}
		return a, tickCmd()

	case tea.MouseMsg:
		a.handleMouse(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// logErr reports an InvariantViolation (spec.md §7): layout/pane errors
// never abort the controller loop, they are logged and the loop
// continues.
func (a *App) logErr(op string, err error) {
	if err != nil {
		log.Printf("mux.App: %s: %v", op, err)
	}
}

func (a *App) contentArea() geometry.Rect {
	x := 0
	width := a.width
	if a.sidebar.Active() {
		x = sidebar.Width
		width -= sidebar.Width
	}
	if width < 1 {
		width = 1
	}
	return geometry.Rect{X: x, Y: 0, Width: width, Height: a.height}
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	if !a.sidebar.Active() {
		return
	}
	if msg.X >= sidebar.Width {
		a.sidebar.SetHover(nil)
		return
	}

	info, ok := sidebar.IconAt(msg.Y)
	if !ok {
		a.sidebar.SetHover(nil)
		return
	}
	icon := info.Icon
	a.sidebar.SetHover(&icon)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		a.invokeIcon(icon)
	}
}

func (a *App) invokeIcon(icon sidebar.Icon) {
	switch icon {
	case sidebar.NewWindow:
		_, err := a.wm.CreatePane("shell")
		a.logErr("create pane", err)
	case sidebar.SplitHorizontal:
		_, err := a.wm.SplitFocused("shell", layout.Horizontal)
		a.logErr("split horizontal", err)
	case sidebar.SplitVertical:
		_, err := a.wm.SplitFocused("shell", layout.Vertical)
		a.logErr("split vertical", err)
	case sidebar.GridLayout:
		a.logErr("apply grid", a.wm.ApplyGrid())
	case sidebar.HorizontalLayout:
		a.logErr("apply horizontal", a.wm.ApplyHorizontal())
	case sidebar.VerticalLayout:
		a.logErr("apply vertical", a.wm.ApplyVertical())
	case sidebar.MainLayout:
		a.logErr("apply main stack", a.wm.ApplyMainStack())
	case sidebar.Zoom:
		a.wm.ToggleZoom()
	case sidebar.CloseWindow:
		a.logErr("close focused", a.wm.CloseFocused())
	case sidebar.Help:
		a.showHelp = !a.showHelp
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.commands.Mode() == command.CommandMode {
		return a.handleCommandKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.running = false
	case key.Matches(msg, a.keys.New):
		_, err := a.wm.CreatePane("shell")
		a.logErr("create pane", err)
	case key.Matches(msg, a.keys.SplitH):
		_, err := a.wm.SplitFocused("shell", layout.Horizontal)
		a.logErr("split horizontal", err)
	case key.Matches(msg, a.keys.SplitV):
		_, err := a.wm.SplitFocused("shell", layout.Vertical)
		a.logErr("split vertical", err)
	case key.Matches(msg, a.keys.Close):
		a.logErr("close focused", a.wm.CloseFocused())
	case key.Matches(msg, a.keys.FocusNext):
		a.wm.FocusNext()
	case key.Matches(msg, a.keys.FocusPrev):
		a.wm.FocusPrev()
	case key.Matches(msg, a.keys.FocusUp):
		a.wm.FocusDirection(focus.Up)
	case key.Matches(msg, a.keys.FocusDown):
		a.wm.FocusDirection(focus.Down)
	case key.Matches(msg, a.keys.FocusLeft):
		a.wm.FocusDirection(focus.Left)
	case key.Matches(msg, a.keys.FocusRight):
		a.wm.FocusDirection(focus.Right)
	case key.Matches(msg, a.keys.Zoom):
		a.wm.ToggleZoom()
	case key.Matches(msg, a.keys.Grid):
		a.logErr("apply grid", a.wm.ApplyGrid())
	case key.Matches(msg, a.keys.Horizontal):
		a.logErr("apply horizontal", a.wm.ApplyHorizontal())
	case key.Matches(msg, a.keys.Vertical):
		a.logErr("apply vertical", a.wm.ApplyVertical())
	case key.Matches(msg, a.keys.Main):
		a.logErr("apply main stack", a.wm.ApplyMainStack())
	case key.Matches(msg, a.keys.Sidebar):
		a.sidebar.Toggle()
		a.wm.Resize(a.contentArea())
	case key.Matches(msg, a.keys.Command):
		a.commands.Enter()
	default:
		a.showHelp = false
		a.wm.SendInput(translateKey(msg))
	}
	return a, nil
}

func (a *App) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.commands.Cancel()
	case tea.KeyEnter:
		a.execute(a.commands.Execute())
	case tea.KeyBackspace:
		a.commands.Backspace()
	case tea.KeyUp:
		a.commands.HistoryPrev()
	case tea.KeyDown:
		a.commands.HistoryNext()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			a.commands.Push(r)
		}
	}
	return a, nil
}

func (a *App) execute(cmd command.Command) {
	switch cmd.Kind {
	case command.Quit:
		a.running = false
	case command.NewPane:
		_, err := a.wm.CreatePane(cmd.Title)
		a.logErr("create pane", err)
	case command.Split:
		dir := layout.Vertical
		if cmd.Horizontal {
			dir = layout.Horizontal
		}
		_, err := a.wm.SplitFocused("shell", dir)
		a.logErr("split", err)
	case command.Layout:
		switch cmd.Layout {
		case command.LayoutGrid:
			a.logErr("apply grid", a.wm.ApplyGrid())
		case command.LayoutHorizontal:
			a.logErr("apply horizontal", a.wm.ApplyHorizontal())
		case command.LayoutVertical:
			a.logErr("apply vertical", a.wm.ApplyVertical())
		case command.LayoutMain:
			a.logErr("apply main stack", a.wm.ApplyMainStack())
		}
	case command.Zoom:
		a.wm.ToggleZoom()
	case command.Close:
		a.logErr("close focused", a.wm.CloseFocused())
	case command.Sidebar:
		a.sidebar.Toggle()
		a.wm.Resize(a.contentArea())
	case command.Help:
		a.showHelp = !a.showHelp
	case command.Unknown:
		if cmd.Raw != "" {
			a.statusLine = "unknown command: " + cmd.Raw
		}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var cols []string
	if a.sidebar.Active() {
		cols = append(cols, a.renderSidebar())
	}
	cols = append(cols, a.renderPanes())

	view := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	switch {
	case a.commands.Mode() == command.CommandMode:
		view += "\n:" + a.commands.Buffer()
	case a.showHelp:
		view += "\n" + a.help.View(a.keys)
	case a.statusLine != "":
		status := lipgloss.NewStyle().Foreground(lipgloss.Color(a.theme.Colors.Yellow)).Render(a.statusLine)
		view += "\n" + status
	}
	return view
}

func (a *App) renderSidebar() string {
	var b strings.Builder
	hovered := a.sidebar.Hovered()
	hoverStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(a.theme.Colors.Blue))
	for _, info := range sidebar.Icons() {
		symbol := info.Symbol
		if hovered != nil && *hovered == info.Icon {
			symbol = hoverStyle.Render(symbol)
		}
		b.WriteString(symbol)
		b.WriteString("\n\n\n")
	}
	return lipgloss.NewStyle().Width(sidebar.Width).Height(a.height).Render(b.String())
}

// renderPanes walks the layout tree and composes each leaf's pane.View,
// joining children along the same axis ComputeLayout split them on —
// Horizontal nodes side by side, Vertical nodes stacked — so the
// rendered output matches the tiled geometry instead of flattening it.
func (a *App) renderPanes() string {
	tree := a.wm.Tree()
	if tree == nil {
		return ""
	}
	focused, _ := a.wm.Focused()
	return a.renderNode(tree, focused)
}

func (a *App) renderNode(n *layout.Node, focused layout.PaneID) string {
	if n == nil {
		return ""
	}
	if n.IsLeaf {
		p, ok := a.wm.Pane(n.PaneID)
		if !ok {
			return ""
		}
		border, title := a.theme.Colors.Subtext, a.theme.Colors.Text
		if n.PaneID == focused {
			border, title = a.theme.Colors.Green, a.theme.Colors.Green
		}
		return p.View(border, title)
	}

	first := a.renderNode(n.First, focused)
	second := a.renderNode(n.Second, focused)
	if n.Direction == layout.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, first, second)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, first, second)
}

// translateKey converts a tea.KeyMsg into the byte sequence forwarded
// to the focused pane's PTY.
func translateKey(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte("\r")
	case tea.KeyTab:
		return []byte("\t")
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeySpace:
		return []byte(" ")
	case tea.KeyUp:
		return []byte("\x1b[A")
	case tea.KeyDown:
		return []byte("\x1b[B")
	case tea.KeyRight:
		return []byte("\x1b[C")
	case tea.KeyLeft:
		return []byte("\x1b[D")
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		return []byte(msg.String())
	}
}

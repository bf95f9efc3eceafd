// Package pane couples a PTY session to a scrollback buffer, exposing
// the renderable state (title, focus, lifecycle badge, visible lines)
// the controller walks on each render tick.
package pane

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/claudebuildsapps/matrixmux/internal/geometry"
	"github.com/claudebuildsapps/matrixmux/internal/layout"
	"github.com/claudebuildsapps/matrixmux/internal/ptysession"
	"github.com/claudebuildsapps/matrixmux/internal/scrollback"
)

// closeGraceTimeout bounds how long Close waits for the child to exit
// on its own interrupt before force-killing it.
const closeGraceTimeout = 2 * time.Second

// State is a pane's lifecycle state.
type State int

const (
	Ready State = iota
	Running
	Exited
	Error
)

// borderAllowance is the number of rows/cols the square border consumes
// on each axis; spawn() and resize() size the session to rect minus this.
const borderAllowance = 2

// Pane owns a PTY session (present only while Running), a scrollback
// buffer, and the geometry/lifecycle/focus state the controller and
// render tick consult.
type Pane struct {
	ID      layout.PaneID
	Title   string
	Rect    geometry.Rect
	Focused bool

	state    State
	exitCode int32
	errMsg   string

	buffer  *scrollback.Buffer
	session *ptysession.Session
}

// New constructs a pane in Ready state with an empty scrollback buffer.
func New(id layout.PaneID, title string, rect geometry.Rect) *Pane {
	return &Pane{
		ID:     id,
		Title:  title,
		Rect:   rect,
		state:  Ready,
		buffer: scrollback.New(0),
	}
}

// Spawn opens a PTY session sized from Rect (minus border allowance)
// and transitions to Running.
func (p *Pane) Spawn(shell, cwd string) error {
	rows, cols := p.contentSize()
	s, err := ptysession.Open(shell, cwd, rows, cols)
	if err != nil {
		return fmt.Errorf("pane %s: spawn: %w", p.ID, err)
	}
	p.session = s
	p.state = Running
	return nil
}

func (p *Pane) contentSize() (rows, cols int) {
	rows = p.Rect.Height - borderAllowance
	if rows < 1 {
		rows = 1
	}
	cols = p.Rect.Width - borderAllowance
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}

// SendInput forwards bytes to the session. No-op if there is none.
func (p *Pane) SendInput(data []byte) {
	if p.session == nil {
		return
	}
	p.session.Write(data)
}

// Update drains the session's event queue: Output is piped to the
// scrollback buffer; Exit/Error transition the lifecycle state.
func (p *Pane) Update() {
	if p.session == nil {
		return
	}
	for {
		ev, ok := p.session.ReadEvent()
		if !ok {
			return
		}
		switch ev.Kind {
		case ptysession.EventOutput:
			p.buffer.Write(ev.Data)
		case ptysession.EventExit:
			p.state = Exited
			p.exitCode = int32(ev.Code)
		case ptysession.EventError:
			p.state = Error
			if ev.Err != nil {
				p.errMsg = ev.Err.Error()
			}
		}
	}
}

// Resize updates Rect and propagates the new content size to the
// scrollback viewport and, if running, the PTY session.
func (p *Pane) Resize(rect geometry.Rect) {
	p.Rect = rect
	rows, cols := p.contentSize()
	p.buffer.Resize(rows, cols)
	if p.session != nil {
		p.session.Resize(rows, cols)
	}
}

// Close gracefully shuts down the session (if any) — interrupt, bounded
// wait, force-kill fallback — clears the handle, and forces the
// lifecycle state to Exited if it was still Running.
func (p *Pane) Close() {
	if p.session != nil {
		p.session.KillGraceful(closeGraceTimeout)
		p.session = nil
	}
	if p.state == Running {
		p.state = Exited
		p.exitCode = -1
	}
}

// State returns the pane's lifecycle state.
func (p *Pane) State() State {
	return p.state
}

// StateBadge returns a short label for the current lifecycle state.
func (p *Pane) StateBadge() string {
	switch p.state {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Exited:
		return fmt.Sprintf("exited(%d)", p.exitCode)
	case Error:
		return "error: " + p.errMsg
	default:
		return "unknown"
	}
}

// Renderable is the render-tick output: visible lines, cursor point,
// focus flag, state badge, and title, wrapped in a square border (the
// terminal-aesthetic invariant forbids rounded corners).
type Renderable struct {
	Lines      []string
	CursorRow  int
	CursorCol  int
	Focused    bool
	StateBadge string
	Title      string
}

// Render produces the pane's Renderable.
func (p *Pane) Render() Renderable {
	row, col := p.buffer.CursorPosition()
	return Renderable{
		Lines:      p.buffer.VisibleLines(),
		CursorRow:  row,
		CursorCol:  col,
		Focused:    p.Focused,
		StateBadge: p.StateBadge(),
		Title:      p.Title,
	}
}

// View renders the pane as a bordered lipgloss block matching Rect.
func (p *Pane) View(borderColor, titleColor string) string {
	r := p.Render()

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(max(p.Rect.Width-borderAllowance, 1)).
		Height(max(p.Rect.Height-borderAllowance, 1))

	header := lipgloss.NewStyle().Foreground(lipgloss.Color(titleColor)).Render(
		fmt.Sprintf("%s [%s]", r.Title, r.StateBadge),
	)

	body := ""
	for i, line := range r.Lines {
		if i > 0 {
			body += "\n"
		}
		body += line
	}

	return style.Render(header + "\n" + body)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

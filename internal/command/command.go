// Package command implements the `:`-prefixed command-mode interpreter:
// buffer editing, history navigation, and parsing into a structured
// Command the controller dispatches.
package command

import "strings"

// Mode is the controller's input mode.
type Mode int

const (
	Normal Mode = iota
	CommandMode
)

// Kind tags which command was parsed.
type Kind int

const (
	Unknown Kind = iota
	Quit
	NewPane
	Split
	Layout
	Zoom
	Close
	Sidebar
	Help
)

// LayoutKind names a layout preset requested by the "layout" command.
type LayoutKind int

const (
	LayoutNone LayoutKind = iota
	LayoutGrid
	LayoutHorizontal
	LayoutVertical
	LayoutMain
)

// Command is the parsed result of executing the command buffer.
type Command struct {
	Kind       Kind
	Title      string     // NewPane: optional title argument
	Horizontal bool       // Split: true for 'h', false (default) for vertical
	Layout     LayoutKind // Layout: which preset was named
	Raw        string     // the raw command text, for "unknown command" reporting
}

// Parse splits buf on whitespace and classifies it into a Command. An
// empty buffer or unrecognised verb yields Kind == Unknown.
func Parse(buf string) Command {
	parts := strings.Fields(buf)
	if len(parts) == 0 {
		return Command{Kind: Unknown, Raw: buf}
	}

	switch parts[0] {
	case "q", "quit":
		return Command{Kind: Quit}

	case "new":
		title := "New Terminal"
		if len(parts) > 1 {
			title = parts[1]
		}
		return Command{Kind: NewPane, Title: title}

	case "split":
		horizontal := len(parts) > 1 && parts[1] == "h"
		return Command{Kind: Split, Horizontal: horizontal}

	case "layout":
		if len(parts) < 2 {
			return Command{Kind: Layout, Layout: LayoutNone}
		}
		return Command{Kind: Layout, Layout: parseLayoutKind(parts[1])}

	case "zoom":
		return Command{Kind: Zoom}

	case "close":
		return Command{Kind: Close}

	case "sidebar":
		return Command{Kind: Sidebar}

	case "help":
		return Command{Kind: Help}

	default:
		return Command{Kind: Unknown, Raw: parts[0]}
	}
}

func parseLayoutKind(name string) LayoutKind {
	switch name {
	case "grid":
		return LayoutGrid
	case "horizontal", "h":
		return LayoutHorizontal
	case "vertical", "v":
		return LayoutVertical
	case "main", "m":
		return LayoutMain
	default:
		return LayoutNone
	}
}

// Interpreter owns the command-mode buffer, mode, and history.
type Interpreter struct {
	mode    Mode
	buffer  []rune
	history []string
	histPos int // index into history while browsing; len(history) = "not browsing"
}

// New constructs an interpreter in Normal mode with empty history.
func New() *Interpreter {
	return &Interpreter{mode: Normal}
}

// Mode returns the current input mode.
func (ip *Interpreter) Mode() Mode {
	return ip.mode
}

// Buffer returns the current command-mode buffer contents.
func (ip *Interpreter) Buffer() string {
	return string(ip.buffer)
}

// Enter transitions to Command mode with an empty buffer.
func (ip *Interpreter) Enter() {
	ip.mode = CommandMode
	ip.buffer = ip.buffer[:0]
	ip.histPos = len(ip.history)
}

// Cancel discards the buffer and returns to Normal mode.
func (ip *Interpreter) Cancel() {
	ip.mode = Normal
	ip.buffer = ip.buffer[:0]
}

// Push appends a rune to the buffer.
func (ip *Interpreter) Push(r rune) {
	ip.buffer = append(ip.buffer, r)
}

// Backspace removes the last rune, if any.
func (ip *Interpreter) Backspace() {
	if len(ip.buffer) > 0 {
		ip.buffer = ip.buffer[:len(ip.buffer)-1]
	}
}

// HistoryPrev replaces the buffer with the previous history entry, if
// any remain older than the current browse position.
func (ip *Interpreter) HistoryPrev() {
	if ip.histPos <= 0 {
		return
	}
	ip.histPos--
	ip.buffer = []rune(ip.history[ip.histPos])
}

// HistoryNext replaces the buffer with the next history entry, or
// clears it once the browse position reaches the end of history.
func (ip *Interpreter) HistoryNext() {
	if ip.histPos >= len(ip.history) {
		return
	}
	ip.histPos++
	if ip.histPos == len(ip.history) {
		ip.buffer = ip.buffer[:0]
		return
	}
	ip.buffer = []rune(ip.history[ip.histPos])
}

// Execute parses the buffer, appends it to history (if non-empty), and
// returns to Normal mode. Matches app.rs's execute_command: history
// records the raw buffer regardless of whether the command was
// recognised.
func (ip *Interpreter) Execute() Command {
	text := string(ip.buffer)
	if text != "" {
		ip.history = append(ip.history, text)
	}
	ip.mode = Normal
	ip.buffer = ip.buffer[:0]
	ip.histPos = len(ip.history)
	return Parse(text)
}

// History returns the recorded command history, oldest first.
func (ip *Interpreter) History() []string {
	return ip.history
}

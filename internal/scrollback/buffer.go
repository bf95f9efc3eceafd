// Package scrollback implements a bounded terminal line buffer with a
// minimal ANSI subset: enough to track cursor position and a scroll
// viewport without pulling in a full VT100 grid emulator.
package scrollback

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

const defaultMaxLines = 10000

// Match is a single search hit: a line index and a byte-offset range
// within that line (end exclusive). For a case-insensitive search the
// offsets are into the lower-cased line.
type Match struct {
	Line  int
	Start int
	End   int
}

// Buffer stores interpreted terminal output as lines, tracks cursor and
// viewport state, and supports scrolling and search over its history.
type Buffer struct {
	mu sync.RWMutex

	lines       []string
	maxLines    int
	cursorRow   int
	cursorCol   int
	scroll      int
	viewportRow int
	viewportCol int
}

// New constructs an empty buffer with one blank line, a default viewport
// of 24x80, and the given history cap (0 or negative uses the default).
func New(maxLines int) *Buffer {
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	return &Buffer{
		lines:       []string{""},
		maxLines:    maxLines,
		viewportRow: 24,
		viewportCol: 80,
	}
}

// Write appends and interprets data, advancing cursor state. It never
// fails: unrecognised CSI sequences are consumed and dropped silently.
func (b *Buffer) Write(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
	}

	row, col := b.cursorRow, b.cursorCol

	i := 0
	for i < len(data) {
		c := data[i]
		switch c {
		case '\n':
			row++
			col = 0
			if row >= len(b.lines) {
				b.lines = append(b.lines, "")
				if len(b.lines) > b.maxLines {
					b.lines = b.lines[1:]
					row = len(b.lines) - 1
				}
			}

		case '\r':
			col = 0

		case '\t':
			spaces := 8 - (col % 8)
			for s := 0; s < spaces && col < b.viewportCol; s++ {
				b.setRune(row, col, ' ')
				col++
			}

		case 0x1b: // ESC
			if i+1 < len(data) && data[i+1] == '[' {
				i += 2
				start := i
				for i < len(data) && !isFinalByte(data[i]) {
					i++
				}
				if i < len(data) {
					seq := string(data[start:i])
					row, col = b.applyCSI(seq, data[i], row, col)
				} else {
					continue
				}
			}

		default:
			r := rune(c)
			w := runewidth.RuneWidth(r)
			if w <= 0 {
				w = 1
			}
			b.setRune(row, col, r)
			col += w
		}

		i++
	}

	b.cursorRow, b.cursorCol = row, col
}

func isFinalByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}

// applyCSI handles the supported CSI finals (J with param 2, H with two
// numeric params) and silently discards everything else.
func (b *Buffer) applyCSI(seq string, final byte, row, col int) (int, int) {
	switch final {
	case 'J':
		if seq == "2" {
			b.lines = []string{""}
			return 0, 0
		}

	case 'H':
		parts := strings.SplitN(seq, ";", 2)
		if len(parts) == 2 {
			newRow, okRow := parseUint(parts[0])
			newCol, okCol := parseUint(parts[1])
			if okRow && okCol {
				row = clampInt(newRow-1, 0, max(len(b.lines)-1, 0))
				col = clampInt(newCol-1, 0, max(b.viewportCol-1, 0))
			}
		}
	}
	return row, col
}

func parseUint(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// setRune writes r at (row, col), growing lines/padding with spaces as
// needed so the target cell always exists.
func (b *Buffer) setRune(row, col int, r rune) {
	for len(b.lines) <= row {
		b.lines = append(b.lines, "")
	}
	line := []rune(b.lines[row])
	for len(line) <= col {
		line = append(line, ' ')
	}
	line[col] = r
	b.lines[row] = string(line)
}

// VisibleLines returns the viewport window into history: the vh most
// recent lines offset by the current scroll position, where
// vh = min(viewportRow, len(lines)).
func (b *Buffer) VisibleLines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := len(b.lines)
	vh := b.viewportRow
	if vh > n {
		vh = n
	}
	maxScroll := n - vh
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := b.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	start := n - vh - scroll
	if start < 0 {
		start = 0
	}
	end := start + vh
	if end > n {
		end = n
	}

	out := make([]string, end-start)
	copy(out, b.lines[start:end])
	return out
}

// ScrollUp moves the viewport toward older content by n lines.
func (b *Buffer) ScrollUp(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maxScroll := len(b.lines) - 1
	if maxScroll < 0 {
		maxScroll = 0
	}
	b.scroll = clampInt(b.scroll+n, 0, maxScroll)
}

// ScrollDown moves the viewport toward newer content by n lines.
func (b *Buffer) ScrollDown(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scroll = clampInt(b.scroll-n, 0, len(b.lines))
}

// ScrollToBottom resets the viewport to the newest content.
func (b *Buffer) ScrollToBottom() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scroll = 0
}

// Resize updates the viewport dimensions and clamps the cursor to the
// new bounds. Existing lines are not reflowed.
func (b *Buffer) Resize(rows, cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.viewportRow, b.viewportCol = rows, cols
	b.cursorRow = clampInt(b.cursorRow, 0, max(len(b.lines)-1, 0))
	b.cursorCol = clampInt(b.cursorCol, 0, cols)
}

// CursorPosition returns the current (row, col).
func (b *Buffer) CursorPosition() (row, col int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursorRow, b.cursorCol
}

// Len returns the number of stored lines.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Search returns non-overlapping matches of query across all stored
// lines, advancing past each hit before resuming the scan.
func (b *Buffer) Search(query string, caseSensitive bool) []Match {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var results []Match
	if query == "" {
		return results
	}

	needle := query
	if !caseSensitive {
		needle = strings.ToLower(query)
	}

	for idx, line := range b.lines {
		hay := line
		if !caseSensitive {
			hay = strings.ToLower(hay)
		}
		start := 0
		for start < len(hay) {
			pos := strings.Index(hay[start:], needle)
			if pos < 0 {
				break
			}
			matchStart := start + pos
			matchEnd := matchStart + len(needle)
			results = append(results, Match{Line: idx, Start: matchStart, End: matchEnd})
			start = matchEnd
		}
	}
	return results
}

// Clear resets the buffer to a single empty line with cursor and scroll
// offset at zero.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = []string{""}
	b.cursorRow, b.cursorCol = 0, 0
	b.scroll = 0
}

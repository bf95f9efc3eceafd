package scrollback

import "testing"

func TestWriteBasicLines(t *testing.T) {
	b := New(100)
	b.Write([]byte("hello\nworld"))

	lines := b.VisibleLines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "hello" || lines[1] != "world" {
		t.Fatalf("got %q, %q", lines[0], lines[1])
	}

	row, col := b.CursorPosition()
	if row != 1 || col != 5 {
		t.Fatalf("cursor = (%d,%d), want (1,5)", row, col)
	}
}

func TestCarriageReturnOverwrites(t *testing.T) {
	b := New(100)
	b.Write([]byte("hello\rJ"))

	lines := b.VisibleLines()
	if lines[0] != "Jello" {
		t.Fatalf("got %q, want %q", lines[0], "Jello")
	}
}

func TestTabExpandsToNextStop(t *testing.T) {
	b := New(100)
	b.Write([]byte("a\tb"))

	lines := b.VisibleLines()
	want := "a       b" // col 1 -> next stop at col 8, then 'b' at col 8
	if lines[0] != want {
		t.Fatalf("got %q, want %q", lines[0], want)
	}
}

func TestANSIClearResetsBufferAndCursor(t *testing.T) {
	b := New(100)
	b.Write([]byte("line one\nline two\nline three"))
	b.Write([]byte("\x1b[2J"))

	if b.Len() != 1 {
		t.Fatalf("expected 1 line after clear, got %d", b.Len())
	}
	lines := b.VisibleLines()
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected single empty line after clear, got %v", lines)
	}
	row, col := b.CursorPosition()
	if row != 0 || col != 0 {
		t.Fatalf("cursor after clear = (%d,%d), want (0,0)", row, col)
	}
}

func TestFreshBufferMatchesClearedBuffer(t *testing.T) {
	fresh := New(100)
	fresh.Write([]byte("x"))

	cleared := New(100)
	cleared.Write([]byte("previous content\nmore"))
	cleared.Clear()
	cleared.Write([]byte("x"))

	if fresh.VisibleLines()[0] != cleared.VisibleLines()[0] {
		t.Fatalf("clear();write(x) diverged from fresh buffer write(x)")
	}
}

func TestCursorPositioningCSIH(t *testing.T) {
	b := New(100)
	b.Write([]byte("aaaa\nbbbb\ncccc"))
	b.Write([]byte("\x1b[2;3HZ"))

	lines := b.VisibleLines()
	if lines[1] != "bbZb" {
		t.Fatalf("got %q, want %q", lines[1], "bbZb")
	}
}

func TestMaxLinesNeverExceeded(t *testing.T) {
	b := New(3)
	for i := 0; i < 10; i++ {
		b.Write([]byte("x\n"))
	}
	if b.Len() > 3 {
		t.Fatalf("buffer exceeded max_lines: got %d", b.Len())
	}
}

func TestVisibleLinesWindowAndScroll(t *testing.T) {
	b := New(100)
	b.viewportRow = 2
	for i := 0; i < 5; i++ {
		b.Write([]byte("line\n"))
	}
	// 6 lines total (5 appended newlines plus trailing blank); viewport 2
	lines := b.VisibleLines()
	if len(lines) != 2 {
		t.Fatalf("expected viewport of 2 lines, got %d", len(lines))
	}

	b.ScrollUp(1)
	scrolled := b.VisibleLines()
	if len(scrolled) != 2 {
		t.Fatalf("expected 2 lines after scroll, got %d", len(scrolled))
	}

	b.ScrollToBottom()
	bottom := b.VisibleLines()
	if bottom[len(bottom)-1] != lines[len(lines)-1] {
		t.Fatalf("scroll_to_bottom did not restore original window")
	}
}

func TestSearchNonOverlapping(t *testing.T) {
	b := New(100)
	b.Write([]byte("abcabcabc"))

	matches := b.Search("abc", true)
	if len(matches) != 3 {
		t.Fatalf("expected 3 non-overlapping matches, got %d", len(matches))
	}
	if matches[0].Start != 0 || matches[1].Start != 3 || matches[2].Start != 6 {
		t.Fatalf("unexpected match offsets: %+v", matches)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	b := New(100)
	b.Write([]byte("Hello HELLO hello"))

	matches := b.Search("hello", false)
	if len(matches) != 3 {
		t.Fatalf("expected 3 case-insensitive matches, got %d", len(matches))
	}
}

func TestResizeClampsCursor(t *testing.T) {
	b := New(100)
	b.Write([]byte("0123456789"))
	b.Resize(24, 4)

	_, col := b.CursorPosition()
	if col > 4 {
		t.Fatalf("cursor col %d not clamped to viewport width 4", col)
	}
}

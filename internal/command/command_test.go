package command

import "testing"

func TestParseQuit(t *testing.T) {
	for _, s := range []string{"q", "quit"} {
		if got := Parse(s); got.Kind != Quit {
			t.Errorf("Parse(%q).Kind = %v, want Quit", s, got.Kind)
		}
	}
}

func TestParseNewWithDefaultTitle(t *testing.T) {
	got := Parse("new")
	if got.Kind != NewPane || got.Title != "New Terminal" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseNewWithTitle(t *testing.T) {
	got := Parse("new scratch")
	if got.Kind != NewPane || got.Title != "scratch" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseSplitDefaultsVertical(t *testing.T) {
	got := Parse("split")
	if got.Kind != Split || got.Horizontal {
		t.Fatalf("got %+v, want vertical split", got)
	}
}

func TestParseSplitHorizontal(t *testing.T) {
	got := Parse("split h")
	if got.Kind != Split || !got.Horizontal {
		t.Fatalf("got %+v, want horizontal split", got)
	}
}

func TestParseLayoutVariants(t *testing.T) {
	cases := map[string]LayoutKind{
		"layout grid":       LayoutGrid,
		"layout horizontal": LayoutHorizontal,
		"layout h":          LayoutHorizontal,
		"layout vertical":   LayoutVertical,
		"layout v":          LayoutVertical,
		"layout main":       LayoutMain,
		"layout m":          LayoutMain,
	}
	for input, want := range cases {
		got := Parse(input)
		if got.Kind != Layout || got.Layout != want {
			t.Errorf("Parse(%q) = %+v, want Layout=%v", input, got, want)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	got := Parse("frobnicate")
	if got.Kind != Unknown || got.Raw != "frobnicate" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseEmptyBuffer(t *testing.T) {
	if got := Parse(""); got.Kind != Unknown {
		t.Fatalf("got %+v", got)
	}
}

func TestInterpreterEnterExecuteReturnsToNormal(t *testing.T) {
	ip := New()
	ip.Enter()
	if ip.Mode() != CommandMode {
		t.Fatalf("expected CommandMode after Enter")
	}
	for _, r := range "quit" {
		ip.Push(r)
	}
	cmd := ip.Execute()
	if cmd.Kind != Quit {
		t.Fatalf("got %+v", cmd)
	}
	if ip.Mode() != Normal {
		t.Fatalf("expected Normal mode after Execute")
	}
}

func TestInterpreterBackspaceEditsBuffer(t *testing.T) {
	ip := New()
	ip.Enter()
	ip.Push('n')
	ip.Push('e')
	ip.Push('w')
	ip.Push('x')
	ip.Backspace()
	if ip.Buffer() != "new" {
		t.Fatalf("got buffer %q, want %q", ip.Buffer(), "new")
	}
}

func TestInterpreterCancelClearsBuffer(t *testing.T) {
	ip := New()
	ip.Enter()
	ip.Push('x')
	ip.Cancel()
	if ip.Mode() != Normal || ip.Buffer() != "" {
		t.Fatalf("expected clean Normal state after Cancel, got mode=%v buffer=%q", ip.Mode(), ip.Buffer())
	}
}

func TestInterpreterRecordsHistoryOnNonEmptyExecute(t *testing.T) {
	ip := New()
	ip.Enter()
	for _, r := range "help" {
		ip.Push(r)
	}
	ip.Execute()

	ip.Enter()
	ip.Execute() // empty buffer

	if len(ip.History()) != 1 || ip.History()[0] != "help" {
		t.Fatalf("got history %v, want [help]", ip.History())
	}
}

func TestInterpreterHistoryNavigation(t *testing.T) {
	ip := New()
	for _, cmd := range []string{"help", "zoom", "close"} {
		ip.Enter()
		for _, r := range cmd {
			ip.Push(r)
		}
		ip.Execute()
	}

	ip.Enter()
	ip.HistoryPrev()
	if ip.Buffer() != "close" {
		t.Fatalf("HistoryPrev() = %q, want close", ip.Buffer())
	}
	ip.HistoryPrev()
	if ip.Buffer() != "zoom" {
		t.Fatalf("HistoryPrev() = %q, want zoom", ip.Buffer())
	}
	ip.HistoryNext()
	if ip.Buffer() != "close" {
		t.Fatalf("HistoryNext() = %q, want close", ip.Buffer())
	}
	ip.HistoryNext()
	if ip.Buffer() != "" {
		t.Fatalf("HistoryNext() past end should clear buffer, got %q", ip.Buffer())
	}
}

func TestInterpreterHistoryPrevAtOldestIsNoop(t *testing.T) {
	ip := New()
	ip.Enter()
	for _, r := range "help" {
		ip.Push(r)
	}
	ip.Execute()

	ip.Enter()
	ip.HistoryPrev()
	ip.HistoryPrev() // already at oldest, should not panic or change
	if ip.Buffer() != "help" {
		t.Fatalf("got %q, want help", ip.Buffer())
	}
}

// Package ptysession owns a PTY-backed child process: spawn, resize,
// input, and a dedicated reader goroutine that pushes output onto a
// bounded event queue the controller drains on each tick.
package ptysession

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

// ErrNotRunning is returned by operations that require a live session.
var ErrNotRunning = errors.New("ptysession: not running")

// eventQueueSize bounds the reader's output queue; once full the reader
// blocks on send, applying natural backpressure to the child process.
const eventQueueSize = 64

const readBufferSize = 4096

// EventKind tags the variant of Event.
type EventKind int

const (
	EventOutput EventKind = iota
	EventExit
	EventError
)

// Event is one item drained from the session's queue by read_event().
type Event struct {
	Kind EventKind
	Data []byte // EventOutput
	Code int    // EventExit
	Err  error  // EventExit (when the wait itself errored) or EventError
}

// Session is a PTY-backed child process.
type Session struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	ptmx    *os.File
	running bool

	events chan Event
	group  *errgroup.Group
	cancel chan struct{}
}

// Open opens a PTY pair sized rows x cols, configures the environment
// (TERM defaults to xterm-256color unless the host already exports
// TERM; PATH and HOME are inherited), and spawns shell on the slave
// side. Fails if PTY allocation or spawn fails.
func Open(shell string, cwd string, rows, cols int, args ...string) (*Session, error) {
	cmd := exec.Command(shell, args...)
	cmd.Env = buildEnv()
	if cwd != "" {
		cmd.Dir = cwd
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("ptysession: spawn: %w", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		ptmx.Close()
		cmd.Process.Kill()
		return nil, fmt.Errorf("ptysession: setsize: %w", err)
	}

	s := &Session{
		cmd:     cmd,
		ptmx:    ptmx,
		running: true,
		events:  make(chan Event, eventQueueSize),
		cancel:  make(chan struct{}),
	}

	g := new(errgroup.Group)
	g.Go(s.readLoop)
	g.Go(s.waitLoop)
	s.group = g

	return s, nil
}

func buildEnv() []string {
	env := os.Environ()
	hasTerm := false
	for _, kv := range env {
		if len(kv) >= 5 && kv[:5] == "TERM=" {
			hasTerm = true
			break
		}
	}
	if !hasTerm {
		env = append(env, "TERM=xterm-256color")
	}
	return env
}

// readLoop is the dedicated reader thread: it pushes Output events onto
// the bounded queue until the PTY returns an error, at which point it
// emits an Error event and returns. The Exit event comes from waitLoop.
func (s *Session) readLoop() error {
	buf := make([]byte, readBufferSize)
	for {
		n, err := s.ptmx.Read(buf)
		if err != nil {
			select {
			case s.events <- Event{Kind: EventError, Err: err}:
			case <-s.cancel:
			}
			return nil
		}
		chunk := make([]byte, n)
		copy(chunk, buf[:n])

		select {
		case s.events <- Event{Kind: EventOutput, Data: chunk}:
		case <-s.cancel:
			return nil
		}
	}
}

func (s *Session) waitLoop() error {
	err := s.cmd.Wait()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	code := exitCode(s.cmd, err)
	select {
	case s.events <- Event{Kind: EventExit, Code: code, Err: err}:
	case <-s.cancel:
	}
	return nil
}

func exitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		return 0
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}

// Write forwards bytes to the PTY master.
func (s *Session) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || s.ptmx == nil {
		return ErrNotRunning
	}
	_, err := s.ptmx.Write(data)
	return err
}

// Resize applies new dimensions to the PTY master.
func (s *Session) Resize(rows, cols int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ptmx == nil {
		return ErrNotRunning
	}
	return pty.Setsize(s.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// ReadEvent performs a non-blocking poll of the event queue: it returns
// the next queued event and ok=true, or ok=false if none is pending.
func (s *Session) ReadEvent() (Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	default:
		return Event{}, false
	}
}

// Running reports whether the child process is still alive.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Kill signals the child and releases all handles. Idempotent.
func (s *Session) Kill() {
	s.mu.Lock()
	if !s.running && s.ptmx == nil {
		s.mu.Unlock()
		return
	}
	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.running = false
	s.mu.Unlock()

	close(s.cancel)
	s.group.Wait()

	s.mu.Lock()
	if s.ptmx != nil {
		s.ptmx.Close()
		s.ptmx = nil
	}
	s.mu.Unlock()
}

// KillGraceful sends an interrupt, waits up to timeout for the process
// to exit on its own, then force-kills.
func (s *Session) KillGraceful(timeout time.Duration) {
	s.mu.Lock()
	proc := s.cmd.Process
	running := s.running
	s.mu.Unlock()

	if !running || proc == nil {
		s.Kill()
		return
	}

	if err := proc.Signal(os.Interrupt); err != nil {
		s.Kill()
		return
	}

	done := make(chan struct{})
	go func() {
		for s.Running() {
			time.Sleep(10 * time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
	s.Kill()
}

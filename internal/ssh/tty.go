// Package ssh adapts gliderlabs/ssh sessions to tcell terminals.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty is a tcell.Tty over one SSH session. Window changes reported
// by the client are forwarded to tcell as resize notifications.
type SessionTty struct {
	sess gossh.Session

	mu     sync.Mutex
	win    gossh.Window
	notify func()

	watch sync.Once
	winCh <-chan gossh.Window
}

// NewSessionTty wraps s. pty carries the initial window; winCh delivers
// later window changes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{sess: s, win: pty.Window, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.sess.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.sess.Write(b) }
func (t *SessionTty) Close() error                { return t.sess.Close() }

// Start, Stop and Drain have nothing to do: the channel is already open
// and the session handler owns its lifetime.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last window reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.win.Width, Height: t.win.Height}, nil
}

// NotifyResize sets the callback for window changes. The first call starts
// watching the window channel until it closes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.notify = cb
	t.mu.Unlock()
	t.watch.Do(func() { go t.watchWindow() })
}

func (t *SessionTty) watchWindow() {
	for win := range t.winCh {
		t.mu.Lock()
		t.win = win
		cb := t.notify
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// emoji-tactics-server serves the game over SSH. Every connection plays its
// own independent game. Build:
//
//	go build -o emoji-tactics-server ./cmd/server
//
// Usage:
//
//	./emoji-tactics-server [--port 2222] [--key server_host_key] [--size 8]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"emoji-tactics/internal/client"
	"emoji-tactics/internal/game"
	internalssh "emoji-tactics/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	size := flag.Int("size", game.DefaultConfig().BoardSize, "Board size in cells")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := game.DefaultConfig()
	cfg.BoardSize = *size
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	h := newHub(cfg, logger)

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone may play.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// allowedTerms are the TERM values we trust to have a terminfo entry.
// Anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// maxNameBytes caps the length of a displayed username.
const maxNameBytes = 16

// sanitizeName drops non-printable runes and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── hub ────────────────────────────────────────────────────────────────────

// hub tracks connected players. Each session runs its own game.
type hub struct {
	cfg    game.Config
	log    *slog.Logger
	mu     sync.Mutex
	nextID int
	active map[int]string
}

func newHub(cfg game.Config, logger *slog.Logger) *hub {
	return &hub{cfg: cfg, log: logger, active: make(map[int]string)}
}

// join registers a player and returns its session ID and display name.
func (h *hub) join(user string) (int, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	name := sanitizeName(user)
	if name == "" {
		name = fmt.Sprintf("Player %d", h.nextID)
	}
	h.active[h.nextID] = name
	return h.nextID, name
}

func (h *hub) leave(id int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.active, id)
	return len(h.active)
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession is the gliderlabs SSH handler for one connection. It
// blocks for the duration of the game so the session stays open.
func (h *hub) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	id, name := h.join(s.User())
	log := h.log.With("session", id, "name", name, "remote", s.RemoteAddr().String())
	log.Info("connected")
	defer func() {
		log.Info("disconnected", "online", h.leave(id))
	}()

	screen, err := newSessionScreen(s, pty, winCh)
	if err != nil {
		log.Warn("terminal setup failed", "err", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	g := game.New(h.cfg)
	client.Run(s.Context(), screen, g)
	screen.Fini()

	log.Info("game over", "level", g.Player().Level)
	fmt.Fprintf(s, "Thanks for playing, %s! You reached level %d.\n", name, g.Player().Level)
}

// newSessionScreen creates and initialises a tcell screen over s.
func newSessionScreen(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	term := pty.Term
	if !allowedTerms[term] {
		term = defaultTerm
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; a fresh key is generated next run otherwise.
	if pemBlock, err := xssh.MarshalPrivateKey(key, "emoji-tactics server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("could not save host key", "path", path, "err", err)
		}
	}
	return signer, nil
}

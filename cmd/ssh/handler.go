package main

import (
	"bufio"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	"github.com/tomz197/termtris/internal/draw"
	"github.com/tomz197/termtris/internal/loop"
)

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	logger      *log.Logger
	idleWarn    time.Duration
	idleTimeout time.Duration
	maxSessions int // 0 means unlimited

	mu       sync.Mutex
	sessions map[string]string // session id -> user
}

func newGameHandler(logger *log.Logger, cfg serverConfig) *gameHandler {
	return &gameHandler{
		logger:      logger,
		idleWarn:    cfg.idleWarn,
		idleTimeout: cfg.idleTimeout,
		maxSessions: cfg.maxSessions,
		sessions:    make(map[string]string),
	}
}

func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		defer next(sess)

		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "A terminal is required. Connect with: ssh -t user@host")
			return
		}

		id := uuid.NewString()
		logger := g.logger.With("session", id, "user", sess.User())
		if !g.track(id, sess.User()) {
			logger.Warn("rejecting session, server full", "active", g.active())
			fmt.Fprintln(sess, "Server is full. Please try again later.")
			return
		}
		defer g.untrack(id)

		logger.Info("game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		win := newWindow(pty.Window.Width, pty.Window.Height)
		go win.follow(winCh)

		err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: win.size,
			Renderer:     bubbletea.MakeRenderer(sess),
			Logger:       logger,
			Username:     sess.User(),
			IdleWarn:     g.idleWarn,
			IdleTimeout:  g.idleTimeout,
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}
	}
}

// track registers a session. It reports false when the server is full.
func (g *gameHandler) track(id, user string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.maxSessions > 0 && len(g.sessions) >= g.maxSessions {
		return false
	}
	g.sessions[id] = user
	return true
}

func (g *gameHandler) untrack(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, id)
}

func (g *gameHandler) active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}

// window holds the latest PTY size reported by the client.
type window struct {
	mu   sync.Mutex
	cols int
	rows int
}

func newWindow(cols, rows int) *window {
	return &window{cols: cols, rows: rows}
}

// follow applies resize events until the channel closes.
func (w *window) follow(events <-chan ssh.Window) {
	for ev := range events {
		w.set(ev.Width, ev.Height)
	}
}

func (w *window) set(cols, rows int) {
	w.mu.Lock()
	w.cols, w.rows = cols, rows
	w.mu.Unlock()
}

func (w *window) size() (int, int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cols, w.rows, nil
}

var _ draw.TermSizeFunc = (*window)(nil).size

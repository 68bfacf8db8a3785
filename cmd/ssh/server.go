package main

import (
	"fmt"
	"net"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
)

// newServer builds the wish server. Middleware runs last to first: requests
// are logged, non-PTY sessions are rejected, then the game runs.
func newServer(logger *log.Logger, cfg serverConfig, games *gameHandler) (*ssh.Server, error) {
	opts := []ssh.Option{
		wish.WithAddress(cfg.addr),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Input latency matters more than packet count.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcp, ok := conn.(*net.TCPConn); ok {
				_ = tcp.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.hostKeyPath))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	return srv, nil
}

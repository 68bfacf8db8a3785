package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/tomz197/termtris/internal/config"
	loopconfig "github.com/tomz197/termtris/internal/loop/config"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 10 * time.Second
)

// serverConfig is read from the environment once at startup.
type serverConfig struct {
	addr        string
	hostKeyPath string
	idleWarn    time.Duration
	idleTimeout time.Duration
	maxSessions int
}

func loadConfig() serverConfig {
	idleTimeout := config.GetEnvDuration("SSH_IDLE_TIMEOUT", loopconfig.InactivityDisconnectUser)
	warnLead := loopconfig.InactivityDisconnectUser - loopconfig.InactivityWarnUser
	return serverConfig{
		addr: net.JoinHostPort(
			config.GetEnv("SSH_HOST", defaultHost),
			config.GetEnv("SSH_PORT", defaultPort),
		),
		hostKeyPath: config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath),
		idleWarn:    max(0, idleTimeout-warnLead),
		idleTimeout: idleTimeout,
		maxSessions: config.GetEnvInt("SSH_MAX_SESSIONS", 0),
	}
}

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")
	if err := run(logger, loadConfig()); err != nil {
		logger.Fatal("ssh server failed", "err", err)
	}
}

func run(logger *log.Logger, cfg serverConfig) error {
	logger.Info("ssh config",
		"addr", cfg.addr,
		"hostKeyPath", cfg.hostKeyPath,
		"idleTimeout", cfg.idleTimeout,
		"maxSessions", cfg.maxSessions,
	)

	games := newGameHandler(logger, cfg)
	srv, err := newServer(logger, cfg, games)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting ssh server", "addr", cfg.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "sessions", games.active())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/coder/quartz"

	"github.com/lox/minesweeper/cmd/minesweeper/shared"
	"github.com/lox/minesweeper/internal/randutil"
	"github.com/lox/minesweeper/internal/server"
)

// ServeCmd runs the websocket game server.
type ServeCmd struct {
	Config string `kong:"default='minesweeper.hcl',help='Path to HCL server config'"`
	Addr   string `kong:"help='Listen address host:port (overrides config)'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed for board generation (optional)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		host, portStr, err := net.SplitHostPort(c.Addr)
		if err != nil {
			return fmt.Errorf("invalid --addr %q: %w", c.Addr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid --addr port %q: %w", portStr, err)
		}
		cfg.Server.Address = host
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	logger.Info("starting server", "addr", cfg.Addr(), "seed", seed,
		"difficulties", len(cfg.Difficulties))

	s := server.NewServer(cfg, randutil.New(seed), quartz.NewReal(), logger)

	ctx := shared.SetupSignalHandler(logger)
	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

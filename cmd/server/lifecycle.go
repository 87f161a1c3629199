package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linnemanlabs/go-core/log"
)

type stopFn struct {
	name string
	fn   func(context.Context) error
}

// drain waits for in-flight requests and for the load balancer to notice
// the failing readiness probe. A second signal cuts it short.
func drain(L log.Logger, d time.Duration) {
	L.Info(context.Background(), "sleeping for drain period", "drain_seconds", d.Seconds())
	forceCh := make(chan os.Signal, 1)
	signal.Notify(forceCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(forceCh)

	select {
	case <-time.After(d):
		L.Info(context.Background(), "drain period complete")
	case <-forceCh:
		L.Warn(context.Background(), "second signal received, skipping drain")
	}
}

// shutdown stops each component in order, giving each an equal slice of
// budget.
func shutdown(L log.Logger, budget time.Duration, stops []stopFn) {
	if len(stops) == 0 {
		return
	}
	perComponent := budget / time.Duration(len(stops))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	for _, s := range stops {
		if s.fn == nil {
			continue
		}
		cctx, ccancel := context.WithTimeout(shutdownCtx, perComponent)
		if err := s.fn(cctx); err != nil {
			L.Error(context.Background(), err, s.name+" shutdown")
		}
		ccancel()
	}
}

func notifySystemd() error {
	// set by systemd for Type=notify units
	addr := os.Getenv("NOTIFY_SOCKET")
	if addr == "" {
		return fmt.Errorf("NOTIFY_SOCKET not set, skipping systemd notify")
	}
	conn, err := net.Dial("unixgram", addr) //nolint:gosec,noctx // addr comes from systemd, unixgram dial has no context variant
	if err != nil {
		return fmt.Errorf("systemd notify failed: dial failed: %w", err)
	}
	defer func() { _ = conn.Close() }()
	if _, err := conn.Write([]byte("READY=1")); err != nil {
		return fmt.Errorf("systemd notify failed: write failed: %w", err)
	}
	return nil
}

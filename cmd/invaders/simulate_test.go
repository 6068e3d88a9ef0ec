//go:build unix

package main

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestShutdownContextCatchesSIGTERM(t *testing.T) {
	ctx, stop := shutdownContext(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("SIGTERM did not cancel the simulation context")
	}
}

// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree := NewTree(testLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})

		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree := NewTree(testLogger(), TreeConfig{})

		if tree.config.FailureThreshold != 5.0 {
			t.Errorf("expected default FailureThreshold 5.0, got %f", tree.config.FailureThreshold)
		}
		if tree.config.FailureDecay != 30.0 {
			t.Errorf("expected default FailureDecay 30.0, got %f", tree.config.FailureDecay)
		}
		if tree.config.FailureBackoff != 15*time.Second {
			t.Errorf("expected default FailureBackoff 15s, got %v", tree.config.FailureBackoff)
		}
		if tree.config.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected default ShutdownTimeout 10s, got %v", tree.config.ShutdownTimeout)
		}
	})
}

func TestTreeLifecycle(t *testing.T) {
	t.Run("tree starts and stops gracefully", func(t *testing.T) {
		tree := NewTree(testLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   100 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})

		dataSvc := NewMockService("mock-data")
		apiSvc := NewMockService("mock-api")
		tree.AddDataService(dataSvc)
		tree.AddAPIService(apiSvc)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- tree.Serve(ctx)
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("expected nil or context.Canceled, got %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("tree did not stop within timeout")
		}

		if dataSvc.StartCount() == 0 {
			t.Error("data service was never started")
		}
		if apiSvc.StartCount() == 0 {
			t.Error("api service was never started")
		}
	})

	t.Run("restarts failing service", func(t *testing.T) {
		tree := NewTree(testLogger(), TreeConfig{
			FailureThreshold: 10,
			FailureBackoff:   50 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})

		svc := NewMockService("flaky")
		svc.SetFailCount(2)
		tree.AddDataService(svc)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- tree.Serve(ctx)
		}()

		deadline := time.After(3 * time.Second)
		for svc.StartCount() < 3 {
			select {
			case <-deadline:
				t.Fatalf("service restarted %d times, want at least 3", svc.StartCount())
			case <-time.After(10 * time.Millisecond):
			}
		}

		cancel()
		<-errCh
	})
}

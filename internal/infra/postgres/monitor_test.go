package postgres

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestMonitor_ReportsFailedPings(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errDown := errors.New("connection refused")
	failures := make(chan error, 1)

	done := make(chan error, 1)
	go func() {
		done <- Monitor(ctx, pingerFunc(func(context.Context) error { return errDown }), 5*time.Millisecond, func(err error) {
			select {
			case failures <- err:
			default:
			}
		})
	}()

	// Act
	var got error
	select {
	case got = <-failures:
	case <-time.After(2 * time.Second):
		t.Fatal("no failure reported")
	}
	cancel()

	// Assert
	assert.ErrorIs(t, got, errDown)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Monitor did not stop")
	}
}

func TestMonitor_HealthyDatabaseIsQuiet(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	var pings atomic.Int32

	err := Monitor(ctx, pingerFunc(func(context.Context) error {
		pings.Add(1)
		return nil
	}), 5*time.Millisecond, func(err error) {
		t.Errorf("unexpected failure: %v", err)
	})

	require.NoError(t, err)
	assert.Positive(t, pings.Load())
}

func TestMonitor_DisabledWaitsForShutdown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Monitor(ctx, pingerFunc(func(context.Context) error {
		t.Error("ping must not run")
		return nil
	}), 0, func(error) {})

	assert.NoError(t, err)
}

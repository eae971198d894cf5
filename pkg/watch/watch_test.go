package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunInvokesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pinpoint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components:\n  - name: a\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, 20*time.Millisecond, nil, func() error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to install before the write.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("components:\n  - name: b\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("onChange was never invoked")
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "cancelled run should return nil")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pinpoint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, 20*time.Millisecond, nil, func() error {
			calls.Add(1)
			return nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0o644))
	time.Sleep(300 * time.Millisecond)

	require.Zero(t, calls.Load(), "sibling file writes should not trigger onChange")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	err := Run(context.Background(), filepath.Join(t.TempDir(), "missing", "pinpoint.yaml"), time.Millisecond, nil, func() error { return nil })
	require.Error(t, err)
}

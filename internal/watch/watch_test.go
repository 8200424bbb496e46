package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWanted(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"scan.xml", true},
		{"dir/SCAN.XML", true},
		{"scan.v2.xml", true},
		{"scan_out.xml", false},
		{"scan_guard.xml", false},
		{".scan_out.xml.123.tmp", false},
		{".hidden.xml", false},
		{"scan.txt", false},
		{"scan", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Wanted(tt.path))
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 8)

	w := New(dir, func(ctx context.Context, path string) error {
		handled <- filepath.Base(path)
		return nil
	}, zerolog.Nop())
	w.Settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scan_out.xml"), []byte("<document/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scan.xml"), []byte("<document/>"), 0o644))

	select {
	case name := <-handled:
		assert.Equal(t, "scan.xml", name)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for the handler")
	}

	select {
	case name := <-handled:
		t.Errorf("unexpected second call for %s", name)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "absent"), func(context.Context, string) error { return nil }, zerolog.Nop())
	err := w.Run(context.Background())
	assert.Error(t, err)
}

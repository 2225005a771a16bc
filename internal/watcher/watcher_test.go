package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "recipients.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a@x.com,Alice\n"), 0644))

	fired := make(chan struct{}, 1)
	w, err := Start(csvPath, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	// 等 watcher goroutine 就緒
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(csvPath, []byte("a@x.com,Alice\nb@x.com,Bob\n"), 0644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire after file change")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "recipients.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a@x.com\n"), 0644))

	fired := make(chan struct{}, 1)
	w, err := Start(csvPath, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-fired:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(1 * time.Second):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := Start(filepath.Join(t.TempDir(), "nope", "recipients.csv"), func() {})
	require.Error(t, err)
}

package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reso/internal/adapters/watcher"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsProjectChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".reso"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(filepath.Join(root, ".reso", "config.yaml"), []byte("x"), 0o600))
	target := filepath.Join(root, "src", "main.py")
	require.NoError(t, os.WriteFile(target, []byte("print(1)"), 0o600))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			assert.NotContains(t, ev.Path, ".reso")
			if ev.Path == target {
				return
			}
		case <-deadline:
			t.Fatal("no event for " + target)
		}
	}
}

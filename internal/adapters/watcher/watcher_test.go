package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	addonfs "go.trai.ch/addon/internal/adapters/fs"
	"go.trai.ch/addon/internal/adapters/watcher"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/addon/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsChangesBelowRoots(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	root := t.TempDir()
	pkg := filepath.Join(root, "Foo")
	require.NoError(t, os.MkdirAll(filepath.Join(pkg, "elocal"), domain.DirPerm))

	w, err := watcher.NewWatcher(addonfs.NewWalker(), mockLogger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root, filepath.Join(root, "missing")))
	defer func() { _ = w.Stop() }()

	target := filepath.Join(pkg, "elocal", "icon.png")
	require.NoError(t, os.WriteFile(target, []byte("png"), domain.FilePerm))

	got := make(chan ports.WatchEvent, 1)
	go func() {
		for ev := range w.Events() {
			if ev.Path == target {
				got <- ev
				return
			}
		}
	}()

	select {
	case ev := <-got:
		assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the new file")
	}
}

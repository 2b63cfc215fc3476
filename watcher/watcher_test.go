package watcher_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testunit/cmd/watcher"
)

type countingListener struct {
	refreshes int32
}

func (l *countingListener) Refresh() error {
	atomic.AddInt32(&l.refreshes, 1)
	return nil
}

func (l *countingListener) count() int32 {
	return atomic.LoadInt32(&l.refreshes)
}

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return cond()
}

func TestWatcherRefreshOnChange(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "tests.conf")
	a.Nil(os.WriteFile(target, []byte("[dev]\n"), 0666))

	listener := &countingListener{}
	w := watcher.NewWatcher(50 * time.Millisecond)
	defer w.Close()
	a.Nil(w.Listen(listener, dir))

	a.Nil(os.WriteFile(target, []byte("[dev]\nsuite.s.c = true\n"), 0666))
	a.True(waitFor(t, func() bool { return listener.count() >= 1 }), "Expected a refresh after the change")
}

// A burst of writes should be debounced into few refreshes, and
// dotfiles should not trigger any.
func TestWatcherDebounceAndDotfiles(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	listener := &countingListener{}
	w := watcher.NewWatcher(200 * time.Millisecond)
	defer w.Close()
	a.Nil(w.Listen(listener, dir))

	for i := 0; i < 5; i++ {
		a.Nil(os.WriteFile(filepath.Join(dir, "case.conf"), []byte{byte('0' + i)}, 0666))
		time.Sleep(10 * time.Millisecond)
	}
	a.True(waitFor(t, func() bool { return listener.count() >= 1 }))
	a.LessOrEqual(listener.count(), int32(2), "Burst of writes should collapse")

	before := listener.count()
	a.Nil(os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0666))
	time.Sleep(400 * time.Millisecond)
	a.Equal(before, listener.count(), "Dotfile changes are ignored")
}

type excludingListener struct {
	countingListener
	excluded string
}

func (l *excludingListener) WatchDir(path string, info os.FileInfo) bool {
	return path != l.excluded
}

func (l *excludingListener) WatchFile(path string) bool {
	return !strings.HasPrefix(path, l.excluded)
}

// A listener that excludes a subtree must not be refreshed by writes
// inside it, even when the subtree is created after Listen.
func TestWatcherExcludedSubtree(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	excluded := filepath.Join(dir, "out")
	a.Nil(os.Mkdir(excluded, 0777))

	listener := &excludingListener{excluded: excluded}
	w := watcher.NewWatcher(100 * time.Millisecond)
	defer w.Close()
	a.Nil(w.Listen(listener, dir))

	a.Nil(os.WriteFile(filepath.Join(excluded, "result.txt"), []byte("x"), 0666))
	time.Sleep(400 * time.Millisecond)
	a.Equal(int32(0), listener.count(), "Writes under the excluded subtree must not refresh")

	a.Nil(os.WriteFile(filepath.Join(dir, "tests.conf"), []byte("[dev]\n"), 0666))
	a.True(waitFor(t, func() bool { return listener.count() >= 1 }), "Writes outside it still refresh")
}

func TestWatcherMissingRoot(t *testing.T) {
	a := assert.New(t)
	w := watcher.NewWatcher(time.Second)
	defer w.Close()
	a.Nil(w.Listen(&countingListener{}, filepath.Join(t.TempDir(), "missing")), "Missing roots are skipped, not fatal")
}

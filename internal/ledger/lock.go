package ledger

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// PathLocks serializes the load-mutate-save cycle per workbook file. The
// in-process mutex queues writers inside this process; the flock advisory
// lock extends the guarantee to other processes sharing the ledger
// directory. Writers for different files proceed concurrently.
type PathLocks struct {
	mu      sync.Mutex
	entries map[string]*pathEntry
}

type pathEntry struct {
	mu   sync.Mutex
	refs int
}

func NewPathLocks() *PathLocks {
	return &PathLocks{entries: make(map[string]*pathEntry)}
}

// WithLock runs fn while holding exclusive ownership of the file at path.
// The key is the case-normalized absolute path, so different spellings of
// the same file contend on the same lock.
func (l *PathLocks) WithLock(ctx context.Context, path string, fn func() error) error {
	key, err := canonicalKey(path)
	if err != nil {
		return err
	}

	entry := l.acquire(key)
	defer l.release(key)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	fl := flock.New(path + ".lock")
	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("%w: lock %s: %v", ErrStorage, path, err)
	}
	if !locked {
		return fmt.Errorf("%w: lock %s: not acquired", ErrStorage, path)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}

func (l *PathLocks) acquire(key string) *pathEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &pathEntry{}
		l.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (l *PathLocks) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := l.entries[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

func canonicalKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %v", ErrStorage, path, err)
	}
	return strings.ToLower(filepath.Clean(abs)), nil
}

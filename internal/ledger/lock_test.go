package ledger

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

func TestWithLockMutualExclusion(t *testing.T) {
	locks := NewPathLocks()
	path := filepath.Join(t.TempDir(), "ledger.xlsx")

	const writers = 16
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locks.WithLock(context.Background(), path, func() error {
				value := counter
				time.Sleep(time.Millisecond)
				counter = value + 1
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, writers, counter, "read-modify-write must not lose updates")
}

func TestWithLockDifferentPathsDoNotContend(t *testing.T) {
	locks := NewPathLocks()
	dir := t.TempDir()

	release := make(chan struct{})
	held := make(chan struct{})
	go func() {
		_ = locks.WithLock(context.Background(), filepath.Join(dir, "a.xlsx"), func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	done := make(chan struct{})
	go func() {
		_ = locks.WithLock(context.Background(), filepath.Join(dir, "b.xlsx"), func() error {
			close(done)
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("writer for a different file blocked behind an unrelated lock")
	}
}

func TestWithLockNormalizesPathSpelling(t *testing.T) {
	locks := NewPathLocks()
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.xlsx")
	alias := filepath.Join(dir, "sub", "..", "ledger.xlsx")

	const writers = 8
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		target := path
		if i%2 == 0 {
			target = alias
		}
		go func() {
			defer wg.Done()
			err := locks.WithLock(context.Background(), target, func() error {
				value := counter
				time.Sleep(time.Millisecond)
				counter = value + 1
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, writers, counter)
}

// Two back-to-back transitions on the same job must leave exactly one row
// carrying the later status.
func TestConcurrentUpsertsSameJobKeepSingleRow(t *testing.T) {
	u := newTestUpserter(t)
	id := uuid.New()

	first := testSnapshot(id)
	first.Status = model.JobStatusCompleted
	second := testSnapshot(id)
	second.Status = model.JobStatusRedo

	require.NoError(t, u.Upsert(context.Background(), first))
	require.NoError(t, u.Upsert(context.Background(), second))

	rows := findRows(t, u.FilePath(first.ScheduledDate), "Sydney", id)
	require.Len(t, rows, 1)
	assert.Equal(t, "Redo", rows[0][8])
}

func TestConcurrentUpsertsDistinctJobsAllLand(t *testing.T) {
	u := newTestUpserter(t)

	const jobs = 8
	ids := make([]uuid.UUID, jobs)
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		ids[i] = uuid.New()
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			snap := testSnapshot(id)
			assert.NoError(t, u.Upsert(context.Background(), snap))
		}(ids[i])
	}
	wg.Wait()

	for _, id := range ids {
		assert.Len(t, findRows(t, u.FilePath(testSnapshot(id).ScheduledDate), "Sydney", id), 1)
	}
}

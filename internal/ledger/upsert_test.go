package ledger

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

func newTestUpserter(t *testing.T) *Upserter {
	t.Helper()
	return NewUpserter(t.TempDir(), "PhantomLedger", NewPathLocks())
}

func testSnapshot(id uuid.UUID) JobSnapshot {
	return JobSnapshot{
		JobID:         id,
		CustomerName:  "Alice Nguyen",
		Phone:         "0400 111 222",
		Address:       "12 Harbour St",
		Region:        model.RegionSydney,
		ScheduledDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		Price:         150,
		Status:        model.JobStatusUpcoming,
		WrittenAt:     time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC),
	}
}

// findRow returns the sheet rows whose key column matches the job ID.
func findRows(t *testing.T, path, sheet string, id uuid.UUID) [][]string {
	t.Helper()
	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(sheet)
	require.NoError(t, err)

	var matched [][]string
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) > 0 && row[0] == id.String() {
			matched = append(matched, row)
		}
	}
	return matched
}

func TestUpsertDerivesMonthlyFileName(t *testing.T) {
	u := newTestUpserter(t)
	assert.Contains(t, u.FilePath(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)), "PhantomLedger_February_2026.xlsx")
	assert.Contains(t, u.FilePath(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)), "PhantomLedger_December_2025.xlsx")
}

func TestUpsertAppendsNewRow(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.New())
	snap.Status = model.JobStatusCompleted

	require.NoError(t, u.Upsert(context.Background(), snap))

	rows := findRows(t, u.FilePath(snap.ScheduledDate), "Sydney", snap.JobID)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "10-02-2026", row[1])
	assert.Equal(t, "Week 2", row[2])
	assert.Equal(t, "Alice Nguyen", row[3])
	assert.Equal(t, "0400 111 222", row[4])
	assert.Equal(t, "12 Harbour St", row[5])
	assert.Equal(t, "150", row[6])
	assert.Equal(t, UnassignedCleaner, row[7])
	assert.Equal(t, "Completed", row[8])
}

func TestUpsertIsIdempotent(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.New())

	require.NoError(t, u.Upsert(context.Background(), snap))
	require.NoError(t, u.Upsert(context.Background(), snap))

	rows := findRows(t, u.FilePath(snap.ScheduledDate), "Sydney", snap.JobID)
	assert.Len(t, rows, 1)
}

func TestUpsertOverwritesExistingRow(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.New())

	require.NoError(t, u.Upsert(context.Background(), snap))

	snap.Status = model.JobStatusRedo
	snap.CleanerName = "Sam Carter"
	require.NoError(t, u.Upsert(context.Background(), snap))

	rows := findRows(t, u.FilePath(snap.ScheduledDate), "Sydney", snap.JobID)
	require.Len(t, rows, 1)
	assert.Equal(t, "Redo", rows[0][8])
	assert.Equal(t, "Sam Carter", rows[0][7])
}

func TestUpsertProvisionsAllRegionSheets(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.New())

	require.NoError(t, u.Upsert(context.Background(), snap))

	file, err := excelize.OpenFile(u.FilePath(snap.ScheduledDate))
	require.NoError(t, err)
	defer file.Close()

	for _, name := range SheetNames() {
		idx, err := file.GetSheetIndex(name)
		require.NoError(t, err)
		assert.NotEqual(t, -1, idx, "sheet %s must exist", name)

		rows, err := file.GetRows(name)
		require.NoError(t, err)
		require.NotEmpty(t, rows, "sheet %s must carry the header", name)
		assert.Equal(t, Header, rows[0])
	}

	idx, err := file.GetSheetIndex("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, -1, idx, "default sheet must be claimed for a region")
}

func TestUpsertUnknownRegionGoesToFallback(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.New())
	snap.Region = model.Region("Hobart")

	require.NoError(t, u.Upsert(context.Background(), snap))

	rows := findRows(t, u.FilePath(snap.ScheduledDate), FallbackSheet, snap.JobID)
	assert.Len(t, rows, 1)
}

func TestUpsertSeparateMonthsSeparateFiles(t *testing.T) {
	u := newTestUpserter(t)
	feb := testSnapshot(uuid.New())
	mar := testSnapshot(uuid.New())
	mar.ScheduledDate = time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, u.Upsert(context.Background(), feb))
	require.NoError(t, u.Upsert(context.Background(), mar))

	assert.Len(t, findRows(t, u.FilePath(feb.ScheduledDate), "Sydney", feb.JobID), 1)
	assert.Len(t, findRows(t, u.FilePath(mar.ScheduledDate), "Sydney", mar.JobID), 1)
}

func TestUpsertRejectsMissingJobID(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.Nil)

	err := u.Upsert(context.Background(), snap)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestUpsertCancelledContextWritesNothing(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := u.Upsert(ctx, snap)
	require.ErrorIs(t, err, ErrStorage)

	_, statErr := os.Stat(u.FilePath(snap.ScheduledDate))
	assert.True(t, os.IsNotExist(statErr), "abandoned write must not produce a file")
}

func TestUpsertAbandonsBeforeSaveOnExpiredContext(t *testing.T) {
	u := newTestUpserter(t)
	snap := testSnapshot(uuid.New())
	path := u.FilePath(snap.ScheduledDate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := u.upsertLocked(ctx, path, snap)
	require.ErrorIs(t, err, ErrStorage)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "target file must not be replaced past the deadline")
}

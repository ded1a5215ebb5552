package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

// UnassignedCleaner is the ledger placeholder for jobs without a cleaner.
const UnassignedCleaner = "Not Assigned"

// JobSnapshot is the full job projection written into the ledger. It is
// captured after the primary transaction commits, so the row always
// reflects the job's state at its last status-affecting write.
type JobSnapshot struct {
	JobID         uuid.UUID
	CustomerName  string
	Phone         string
	Address       string
	Region        model.Region
	ScheduledDate time.Time
	Price         float64
	CleanerName   string
	Status        model.JobStatus

	// WrittenAt fills the date column; zero means the time of the write.
	WrittenAt time.Time
}

// Upserter finds-or-appends ledger rows in the monthly workbook derived
// from a job's scheduled date. All writes run under the per-file lock.
type Upserter struct {
	dir    string
	prefix string
	locks  *PathLocks
}

func NewUpserter(dir, prefix string, locks *PathLocks) *Upserter {
	return &Upserter{dir: dir, prefix: prefix, locks: locks}
}

// FilePath derives the monthly workbook path, one file per (month, year).
func (u *Upserter) FilePath(scheduled time.Time) string {
	name := fmt.Sprintf("%s_%s_%d.xlsx", u.prefix, scheduled.Month().String(), scheduled.Year())
	return filepath.Join(u.dir, name)
}

// Upsert writes the snapshot into its monthly workbook: at most one row per
// job ID per sheet, matched by the hidden key column, never by position.
func (u *Upserter) Upsert(ctx context.Context, snap JobSnapshot) error {
	if snap.JobID == uuid.Nil {
		return fmt.Errorf("%w: job id is required", ErrStorage)
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create ledger dir %s: %v", ErrStorage, u.dir, err)
	}
	path := u.FilePath(snap.ScheduledDate)
	return u.locks.WithLock(ctx, path, func() error {
		return u.upsertLocked(ctx, path, snap)
	})
}

// upsertLocked runs the load-mutate-save cycle. The context deadline is
// honored at the phase boundaries: lock contention may consume the whole
// budget, and an expired context abandons the write before the target file
// is replaced.
func (u *Upserter) upsertLocked(ctx context.Context, path string, snap JobSnapshot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: abandon %s: %v", ErrStorage, path, err)
	}

	file, err := LoadOrCreate(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := provisionSheets(file); err != nil {
		return err
	}

	sheet := SheetNameFor(snap.Region)
	if idx, err := file.GetSheetIndex(sheet); err != nil || idx == -1 {
		// Routing produced a sheet the workbook does not carry. The ledger
		// is a side channel: drop the write instead of failing the caller.
		return nil
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("%w: read sheet %s: %v", ErrStorage, sheet, err)
	}

	target := len(rows) + 1
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) > 0 && row[0] == snap.JobID.String() {
			target = i + 1
			break
		}
	}

	if err := writeRow(file, sheet, target, snap); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: abandon %s: %v", ErrStorage, path, err)
	}
	return Save(file, path)
}

// provisionSheets guarantees the fixed workbook shape: every recognized
// region plus the fallback sheet exists even with zero jobs so far.
func provisionSheets(file *excelize.File) error {
	names := SheetNames()

	// A fresh workbook opens with a default sheet; claim it for the first
	// regional sheet instead of leaving an empty "Sheet1" behind.
	if idx, err := file.GetSheetIndex(names[0]); err == nil && idx == -1 {
		if def, err := file.GetSheetIndex("Sheet1"); err == nil && def != -1 {
			if err := file.SetSheetName("Sheet1", names[0]); err != nil {
				return fmt.Errorf("%w: rename default sheet: %v", ErrStorage, err)
			}
			if err := writeHeader(file, names[0], Header); err != nil {
				return err
			}
		}
	}

	for _, name := range names {
		if err := EnsureSheet(file, name, Header); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, row int, snap JobSnapshot) error {
	writtenAt := snap.WrittenAt
	if writtenAt.IsZero() {
		writtenAt = time.Now()
	}
	cleaner := snap.CleanerName
	if cleaner == "" {
		cleaner = UnassignedCleaner
	}

	values := []interface{}{
		snap.JobID.String(),
		writtenAt.Format("02-01-2006"),
		WeekLabel(snap.ScheduledDate),
		snap.CustomerName,
		snap.Phone,
		snap.Address,
		snap.Price,
		cleaner,
		string(snap.Status),
	}
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("%w: cell name: %v", ErrStorage, err)
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("%w: write %s!%s: %v", ErrStorage, sheet, cell, err)
		}
	}
	return nil
}

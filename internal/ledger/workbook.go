package ledger

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrStorage marks ledger file failures. Callers on the job transition path
// log these and move on; the database stays the source of truth.
var ErrStorage = errors.New("ledger storage")

// Header is the canonical first row of every regional sheet. Column A holds
// the job ID used for row matching and is hidden in the rendered file.
var Header = []string{"Job ID", "Date", "Week", "Customer", "Phone", "Address", "Price", "Cleaner", "Status"}

// LoadOrCreate opens the workbook at path, or returns a fresh one when the
// file does not exist yet. An existing but unreadable file is an error, not
// a silent truncation.
func LoadOrCreate(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return excelize.NewFile(), nil
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrStorage, path, err)
	}
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorage, path, err)
	}
	return file, nil
}

// EnsureSheet creates the named sheet with the given header row if it is
// missing. Calling it again is a no-op, headers are never duplicated.
func EnsureSheet(file *excelize.File, name string, header []string) error {
	idx, err := file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("%w: sheet index %s: %v", ErrStorage, name, err)
	}
	if idx != -1 {
		return nil
	}
	if _, err := file.NewSheet(name); err != nil {
		return fmt.Errorf("%w: create sheet %s: %v", ErrStorage, name, err)
	}
	return writeHeader(file, name, header)
}

func writeHeader(file *excelize.File, sheet string, header []string) error {
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("%w: header cell: %v", ErrStorage, err)
		}
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("%w: write header %s: %v", ErrStorage, sheet, err)
		}
	}
	_ = file.SetColVisible(sheet, "A", false)
	_ = file.SetColWidth(sheet, "B", "C", 14)
	_ = file.SetColWidth(sheet, "D", "F", 28)
	_ = file.SetColWidth(sheet, "G", "I", 14)
	return nil
}

// Save serializes the workbook to path via a temporary file and rename, so
// a crash mid-write never leaves a half-written workbook behind.
func Save(file *excelize.File, path string) error {
	// SaveAs validates the target extension, so the temp name must keep a
	// workbook suffix; the rename still lands on the real path.
	tmp := fmt.Sprintf("%s.tmp-%d.xlsx", path, os.Getpid())
	if err := file.SaveAs(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %v", ErrStorage, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %v", ErrStorage, path, err)
	}
	return nil
}

package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadOrCreateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")

	file, err := LoadOrCreate(path)
	require.NoError(t, err)
	defer file.Close()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "load must not create the file")
}

func TestLoadOrCreateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := LoadOrCreate(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestEnsureSheetIdempotent(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()

	require.NoError(t, EnsureSheet(file, "Sydney", Header))
	require.NoError(t, EnsureSheet(file, "Sydney", Header))

	rows, err := file.GetRows("Sydney")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row must not be duplicated")
	assert.Equal(t, Header, rows[0])
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")

	file := excelize.NewFile()
	require.NoError(t, EnsureSheet(file, "Sydney", Header))
	require.NoError(t, file.SetCellValue("Sydney", "A2", "job-1"))
	require.NoError(t, Save(file, path))
	require.NoError(t, file.Close())

	reopened, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.GetCellValue("Sydney", "A2")
	require.NoError(t, err)
	assert.Equal(t, "job-1", value)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.xlsx")

	file := excelize.NewFile()
	require.NoError(t, Save(file, path))
	require.NoError(t, file.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ledger.xlsx", entries[0].Name())
}

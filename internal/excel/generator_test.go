package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

func TestGenerateSummaryAndRegionSheets(t *testing.T) {
	report := model.MonthlyReport{
		Year:         2026,
		Month:        time.February,
		TotalJobs:    3,
		Completed:    2,
		Cancelled:    1,
		Revenue:      450,
		ExpenseTotal: 120,
		Regions: []model.RegionJobs{
			{
				Region: model.RegionSydney,
				Jobs: []model.ReportJob{
					{
						Job: model.Job{
							CustomerName:  "Alice Wong",
							Address:       "12 Harbour St",
							ScheduledDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
							Price:         150,
							Status:        model.JobStatusCompleted,
						},
						CleanerName: "Sam Carter",
					},
				},
			},
		},
	}

	content, err := NewGenerator().Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Summary", "Sydney"}, file.GetSheetList())

	month, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "February 2026", month)

	net, err := file.GetCellValue("Summary", "B7")
	require.NoError(t, err)
	assert.Equal(t, "330", net)

	rows, err := file.GetRows("Sydney")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice Wong", rows[1][2])
	assert.Equal(t, "Sam Carter", rows[1][4])
	assert.Equal(t, "Completed", rows[1][6])
}

func TestGenerateSubstitutesUnassignedCleaner(t *testing.T) {
	report := model.MonthlyReport{
		Year:  2026,
		Month: time.March,
		Regions: []model.RegionJobs{
			{
				Region: model.RegionPerth,
				Jobs: []model.ReportJob{
					{Job: model.Job{CustomerName: "Bob", Status: model.JobStatusUpcoming}},
				},
			},
		},
	}

	content, err := NewGenerator().Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	cleaner, err := file.GetCellValue("Perth", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Not Assigned", cleaner)
}

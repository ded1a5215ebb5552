package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.MonthlyReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	for _, group := range report.Regions {
		sheetName := string(group.Region)
		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writeDetail(file, sheetName, group); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.MonthlyReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Month")
	set("B1", fmt.Sprintf("%s %d", report.Month.String(), report.Year))
	set("A2", "Total jobs")
	set("B2", report.TotalJobs)
	set("A3", "Completed")
	set("B3", report.Completed)
	set("A4", "Cancelled")
	set("B4", report.Cancelled)
	set("A5", "Revenue")
	set("B5", report.Revenue)
	set("A6", "Expenses")
	set("B6", report.ExpenseTotal)
	set("A7", "Net")
	set("B7", report.Revenue-report.ExpenseTotal)

	tableRow := 9
	set(fmt.Sprintf("A%d", tableRow), "Region")
	set(fmt.Sprintf("B%d", tableRow), "Jobs")

	for i, group := range report.Regions {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(group.Region))
		set(fmt.Sprintf("B%d", row), len(group.Jobs))
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 18)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, group model.RegionJobs) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Date",
		"Time",
		"Customer",
		"Address",
		"Cleaner",
		"Price",
		"Status",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, job := range group.Jobs {
		row := 2 + i
		cleaner := job.CleanerName
		if cleaner == "" {
			cleaner = "Not Assigned"
		}
		set(fmt.Sprintf("A%d", row), job.ScheduledDate.Format("2006-01-02"))
		set(fmt.Sprintf("B%d", row), job.ScheduledTime)
		set(fmt.Sprintf("C%d", row), job.CustomerName)
		set(fmt.Sprintf("D%d", row), job.Address)
		set(fmt.Sprintf("E%d", row), cleaner)
		set(fmt.Sprintf("F%d", row), job.Price)
		set(fmt.Sprintf("G%d", row), string(job.Status))
	}

	_ = file.SetColWidth(sheet, "A", "B", 14)
	_ = file.SetColWidth(sheet, "C", "E", 28)
	_ = file.SetColWidth(sheet, "F", "G", 12)
	return nil
}

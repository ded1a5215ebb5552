package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.MonthlyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Phantom Cleaning - Monthly Report %s %d", report.Month.String(), report.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	summary := [][2]string{
		{"Total jobs", fmt.Sprintf("%d", report.TotalJobs)},
		{"Completed", fmt.Sprintf("%d", report.Completed)},
		{"Cancelled", fmt.Sprintf("%d", report.Cancelled)},
		{"Revenue", fmt.Sprintf("$%.2f", report.Revenue)},
		{"Expenses", fmt.Sprintf("$%.2f", report.ExpenseTotal)},
		{"Net", fmt.Sprintf("$%.2f", report.Revenue-report.ExpenseTotal)},
	}
	for _, line := range summary {
		pdf.CellFormat(60, 6, line[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, line[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, group := range report.Regions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, string(group.Region), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		headers := []string{"Date", "Customer", "Cleaner", "Price", "Status"}
		widths := []float64{25, 55, 45, 25, 30}
		drawTableRow(pdf, headers, widths, true)

		for _, job := range group.Jobs {
			cleaner := job.CleanerName
			if cleaner == "" {
				cleaner = "Not Assigned"
			}
			drawTableRow(pdf, []string{
				job.ScheduledDate.Format("2006-01-02"),
				job.CustomerName,
				cleaner,
				fmt.Sprintf("%.2f", job.Price),
				string(job.Status),
			}, widths, false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 9)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type ExcelGenerator interface {
	Generate(report model.MonthlyReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.MonthlyReport) ([]byte, error)
}

// ReportService builds the on-demand monthly export. This is a read-only
// path: it queries the database directly and never opens a ledger file.
type ReportService struct {
	jobs      *repository.JobRepository
	employees *repository.EmployeeRepository
	expenses  *repository.ExpenseRepository
	excel     ExcelGenerator
	pdf       PDFGenerator
}

func NewReportService(
	jobs *repository.JobRepository,
	employees *repository.EmployeeRepository,
	expenses *repository.ExpenseRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *ReportService {
	return &ReportService{
		jobs:      jobs,
		employees: employees,
		expenses:  expenses,
		excel:     excel,
		pdf:       pdf,
	}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ReportService) ExportExcel(ctx context.Context, year int, month time.Month) (*ExportResult, error) {
	report, err := s.buildReport(ctx, year, month)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: reportFileName(*report, "xlsx"), Content: content}, nil
}

func (s *ReportService) ExportPDF(ctx context.Context, year int, month time.Month) (*ExportResult, error) {
	report, err := s.buildReport(ctx, year, month)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: reportFileName(*report, "pdf"), Content: content}, nil
}

func (s *ReportService) buildReport(ctx context.Context, year int, month time.Month) (*model.MonthlyReport, error) {
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: invalid month", ErrInvalidInput)
	}

	from, to := monthRange(year, month)
	jobs, err := s.jobs.List(ctx, repository.JobFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	var cleanerIDs []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, job := range jobs {
		if job.CleanerID != nil {
			if _, ok := seen[*job.CleanerID]; !ok {
				seen[*job.CleanerID] = struct{}{}
				cleanerIDs = append(cleanerIDs, *job.CleanerID)
			}
		}
	}
	names, err := s.employees.DisplayNames(ctx, cleanerIDs)
	if err != nil {
		return nil, err
	}

	byRegion := make(map[model.Region][]model.ReportJob)
	report := &model.MonthlyReport{Year: year, Month: month}
	for _, job := range jobs {
		report.TotalJobs++
		switch job.Status {
		case model.JobStatusCompleted:
			report.Completed++
			report.Revenue += job.Price
		case model.JobStatusCancelled:
			report.Cancelled++
		}

		region := job.Region
		if !region.Known() {
			region = "" // collected under the unrecognized bucket below
		}
		entry := model.ReportJob{Job: job}
		if job.CleanerID != nil {
			entry.CleanerName = names[*job.CleanerID]
		}
		byRegion[region] = append(byRegion[region], entry)
	}

	for _, region := range model.Regions() {
		if rows := byRegion[region]; len(rows) > 0 {
			report.Regions = append(report.Regions, model.RegionJobs{Region: region, Jobs: rows})
		}
	}
	if rows := byRegion[""]; len(rows) > 0 {
		report.Regions = append(report.Regions, model.RegionJobs{Region: "Other", Jobs: rows})
	}

	expenses, err := s.expenses.SumForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report.ExpenseTotal = expenses

	return report, nil
}

func reportFileName(report model.MonthlyReport, ext string) string {
	return fmt.Sprintf("phantom-report-%s-%d.%s", strings.ToLower(report.Month.String()), report.Year, ext)
}

package model

import "time"

// ReportJob is one job line in the monthly report, with the cleaner
// reference already resolved to a display name.
type ReportJob struct {
	Job
	CleanerName string
}

type RegionJobs struct {
	Region Region
	Jobs   []ReportJob
}

// MonthlyReport is the read-only month export. It is generated on demand
// from the database and never touches the ledger files.
type MonthlyReport struct {
	Year         int
	Month        time.Month
	TotalJobs    int64
	Completed    int64
	Cancelled    int64
	Revenue      float64
	ExpenseTotal float64
	Regions      []RegionJobs
}

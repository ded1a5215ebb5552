package ledger

import "github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"

// FallbackSheet collects rows for jobs whose stored region is not in the
// recognized set. Nothing is ever dropped for an unknown region.
const FallbackSheet = "Other"

// SheetNameFor routes a job's region to its ledger sheet. Never fails.
func SheetNameFor(region model.Region) string {
	if region.Known() {
		return string(region)
	}
	return FallbackSheet
}

// SheetNames lists every sheet a monthly workbook carries, regional sheets
// first, fallback last.
func SheetNames() []string {
	regions := model.Regions()
	names := make([]string, 0, len(regions)+1)
	for _, region := range regions {
		names = append(names, string(region))
	}
	return append(names, FallbackSheet)
}

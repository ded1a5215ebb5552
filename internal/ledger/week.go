package ledger

import (
	"fmt"
	"time"
)

// WeekLabel returns the 1-based week-of-month bucket for a date. Week
// boundaries follow the calendar layout: the weekday offset of the 1st
// shifts the count, so "Week 1" ends at the first Saturday. Pure function,
// display aid only.
func WeekLabel(date time.Time) string {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	offset := int(first.Weekday())
	week := (date.Day() + offset + 6) / 7
	return fmt.Sprintf("Week %d", week)
}

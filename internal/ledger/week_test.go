package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"first of month starting sunday", time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), "Week 1"},
		{"mid february 2026", time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC), "Week 2"},
		{"end of february 2026", time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), "Week 4"},
		{"month starting thursday, first days", time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC), "Week 1"},
		{"month starting thursday, first sunday", time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC), "Week 2"},
		{"fifth week", time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC), "Week 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekLabel(tt.date))
		})
	}
}

func TestWeekLabelDeterministic(t *testing.T) {
	date := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	first := WeekLabel(date)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, WeekLabel(date))
	}
}

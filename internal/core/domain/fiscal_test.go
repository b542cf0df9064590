package domain_test

import (
	"testing"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuarterPeriod(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		quarter   int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{name: "first quarter", year: 2024, quarter: 1, wantStart: date(2024, time.January, 1), wantEnd: date(2024, time.March, 31)},
		{name: "second quarter", year: 2024, quarter: 2, wantStart: date(2024, time.April, 1), wantEnd: date(2024, time.June, 30)},
		{name: "third quarter", year: 2024, quarter: 3, wantStart: date(2024, time.July, 1), wantEnd: date(2024, time.September, 30)},
		{name: "fourth quarter", year: 2024, quarter: 4, wantStart: date(2024, time.October, 1), wantEnd: date(2024, time.December, 31)},
		{name: "q1 in a non-leap year", year: 2023, quarter: 1, wantStart: date(2023, time.January, 1), wantEnd: date(2023, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := domain.QuarterPeriod(tt.year, tt.quarter)
			require.NoError(t, err)
			assert.True(t, period.Start.Equal(tt.wantStart), "start: got %v want %v", period.Start, tt.wantStart)
			assert.True(t, period.End.Equal(tt.wantEnd), "end: got %v want %v", period.End, tt.wantEnd)
		})
	}
}

func TestQuarterPeriod_InvalidQuarter(t *testing.T) {
	for _, quarter := range []int{0, 5, -1} {
		_, err := domain.QuarterPeriod(2024, quarter)
		assert.Error(t, err, "quarter %d", quarter)
	}
}

func TestYearPeriod(t *testing.T) {
	period := domain.YearPeriod(2023)
	assert.True(t, period.Start.Equal(date(2023, time.January, 1)))
	assert.True(t, period.End.Equal(date(2023, time.December, 31)))
}

func TestFiscalPeriod_Contains(t *testing.T) {
	period := domain.YearPeriod(2023)

	assert.True(t, period.Contains(date(2023, time.January, 1)), "first day is inside")
	assert.True(t, period.Contains(date(2023, time.December, 31)), "last day is inside")
	assert.False(t, period.Contains(date(2022, time.December, 31)), "day before is outside")
	assert.False(t, period.Contains(date(2024, time.January, 1)), "day after is outside")
}

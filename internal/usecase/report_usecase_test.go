package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	assert.NoError(t, err)
	return parsed
}

func TestBuildDailySeriesZeroFillsEmptyDays(t *testing.T) {
	start := day(t, "2024-03-01")
	end := day(t, "2024-03-03")

	groups := []repository.DayCount{
		{Day: day(t, "2024-03-02"), Count: 1},
	}

	series := BuildDailySeries(start, end, groups)

	assert.Len(t, series, 3)
	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.Equal(t, 0, series[0].Count)
	assert.Equal(t, "2024-03-02", series[1].Date)
	assert.Equal(t, 1, series[1].Count)
	assert.Equal(t, "2024-03-03", series[2].Date)
	assert.Equal(t, 0, series[2].Count)
}

func TestBuildDailySeriesIsAscendingAndDense(t *testing.T) {
	start := day(t, "2024-01-28")
	end := day(t, "2024-02-03")

	series := BuildDailySeries(start, end, nil)

	assert.Len(t, series, 7)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}
}

func TestBuildDailySeriesPreservesTotal(t *testing.T) {
	start := day(t, "2024-03-01")
	end := day(t, "2024-03-05")

	groups := []repository.DayCount{
		{Day: day(t, "2024-03-01"), Count: 2},
		{Day: day(t, "2024-03-03"), Count: 5},
		{Day: day(t, "2024-03-05"), Count: 1},
	}

	series := BuildDailySeries(start, end, groups)

	total := 0
	for _, point := range series {
		total += point.Count
	}
	assert.Equal(t, 8, total)
}

func TestBuildDailySeriesSingleDayRange(t *testing.T) {
	d := day(t, "2024-03-01")

	series := BuildDailySeries(d, d, []repository.DayCount{{Day: d, Count: 3}})

	assert.Len(t, series, 1)
	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.Equal(t, 3, series[0].Count)
}

func TestBuildDailySeriesDropsGroupsOutsideRange(t *testing.T) {
	start := day(t, "2024-03-02")
	end := day(t, "2024-03-03")

	groups := []repository.DayCount{
		{Day: day(t, "2024-03-01"), Count: 9},
		{Day: day(t, "2024-03-02"), Count: 1},
	}

	series := BuildDailySeries(start, end, groups)

	assert.Len(t, series, 2)
	assert.Equal(t, 1, series[0].Count)
	assert.Equal(t, 0, series[1].Count)
}

// Missing or malformed bounds short-circuit before the database or cache
// are touched, so nil collaborators are safe here.
func TestGetAppointmentReportBadBoundsYieldEmptySeries(t *testing.T) {
	u := NewReportUsecase(nil, logrus.New(), nil, nil, 0)
	ctx := context.Background()

	filters := map[string]*entity.ReportFilter{
		"nil filter":    nil,
		"empty filter":  {},
		"start only":    {StartDate: "2024-03-01"},
		"end only":      {EndDate: "2024-03-03"},
		"garbage start": {StartDate: "not-a-date", EndDate: "2024-03-03"},
		"garbage end":   {StartDate: "2024-03-01", EndDate: "03/05/2024"},
		"end before start": {
			StartDate: "2024-03-05",
			EndDate:   "2024-03-01",
		},
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			report, err := u.GetAppointmentReport(ctx, filter)
			assert.NoError(t, err)
			assert.Empty(t, report.Series)
			assert.Equal(t, 0, report.Total)
		})
	}
}

func TestBuildDailySeriesSpansMonthBoundary(t *testing.T) {
	start := day(t, "2024-02-28")
	end := day(t, "2024-03-01")

	series := BuildDailySeries(start, end, nil)

	// 2024 is a leap year.
	assert.Len(t, series, 3)
	assert.Equal(t, "2024-02-29", series[1].Date)
}

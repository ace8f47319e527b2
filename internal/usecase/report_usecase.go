package usecase

import (
	"context"
	"time"

	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"
	"hospital-management-service/internal/infrastructure/cache"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReportUsecase interface {
	GetAppointmentReport(ctx context.Context, filter *entity.ReportFilter) (*dto.AppointmentReportResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	listCache       cache.ListCache
	cacheTTL        time.Duration
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	listCache cache.ListCache,
	cacheTTL time.Duration,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		listCache:       listCache,
		cacheTTL:        cacheTTL,
	}
}

// GetAppointmentReport aggregates appointments per calendar day over the
// requested range. A missing or unparseable bound yields an empty series
// rather than an error, so a half-filled report form still renders.
func (u *reportUsecase) GetAppointmentReport(ctx context.Context, filter *entity.ReportFilter) (*dto.AppointmentReportResponse, error) {
	if filter == nil {
		filter = &entity.ReportFilter{}
	}

	start, startErr := time.Parse("2006-01-02", filter.StartDate)
	end, endErr := time.Parse("2006-01-02", filter.EndDate)
	if startErr != nil || endErr != nil || end.Before(start) {
		return &dto.AppointmentReportResponse{
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			Series:    []dto.SeriesPoint{},
		}, nil
	}

	key := cache.ReportKey(filter)

	series, err := cache.Fetch(ctx, u.listCache, key, u.cacheTTL, func() ([]dto.SeriesPoint, error) {
		groups, err := u.appointmentRepo.CountByDay(u.db.WithContext(ctx), filter)
		if err != nil {
			return nil, err
		}
		return BuildDailySeries(start, end, groups), nil
	})
	if err != nil {
		u.log.Warnf("Failed to build appointment report: %+v", err)
		return nil, err
	}

	total := 0
	for _, point := range series {
		total += point.Count
	}

	return &dto.AppointmentReportResponse{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Series:    series,
		Total:     total,
	}, nil
}

// BuildDailySeries expands grouped per-day counts into one point per
// calendar day from start to end inclusive, ascending, with zero counts on
// days that had no appointments. Group rows outside the range are dropped.
func BuildDailySeries(start, end time.Time, groups []repository.DayCount) []dto.SeriesPoint {
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.Day.Format("2006-01-02")] += g.Count
	}

	days := int(end.Sub(start).Hours()/24) + 1
	series := make([]dto.SeriesPoint, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		series = append(series, dto.SeriesPoint{
			Date:  date,
			Count: counts[date],
		})
	}
	return series
}

package repository

import (
	"time"

	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayCount is one grouped row of the report query: how many appointments
// were scheduled on a given calendar day.
type DayCount struct {
	Day   time.Time
	Count int
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByDay(db *gorm.DB, filter *entity.ReportFilter) ([]DayCount, error)
}

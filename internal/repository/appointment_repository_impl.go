package repository

import (
	"errors"

	"hospital-management-service/internal/domain/entity"
	domainRepo "hospital-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAll lists appointments with optional name filters on the referenced
// doctor and patient. Empty filter fields add no predicate.
func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.DoctorName != "" {
			query = query.
				Joins("JOIN users AS doctors ON doctors.id = appointments.doctor_id").
				Where("doctors.full_name ILIKE ?", "%"+filter.DoctorName+"%")
		}
		if filter.PatientName != "" {
			query = query.
				Joins("JOIN users AS patients ON patients.id = appointments.patient_id").
				Where("patients.full_name ILIKE ?", "%"+filter.PatientName+"%")
		}
	}

	err := query.
		Preload("Doctor").Preload("Patient").
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ?", doctorID).
		Preload("Patient").
		Preload("MedicalRecords").
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient", "MedicalRecords").Save(appointment).Error
}

// Delete removes the appointment; its medical records go with it via the
// ON DELETE CASCADE constraint.
func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return affected.RowsAffected, affected.Error
}

// CountByDay groups appointments by calendar day of scheduled_at. The
// result is sparse: days without appointments produce no row. Report
// filters are applied the same way as list filters, with an inclusive
// date range.
func (r *appointmentRepository) CountByDay(db *gorm.DB, filter *entity.ReportFilter) ([]domainRepo.DayCount, error) {
	query := db.Model(&entity.Appointment{}).
		Select("scheduled_at::date AS day, COUNT(*) AS count")

	if filter != nil {
		if filter.StartDate != "" {
			query = query.Where("scheduled_at::date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("scheduled_at::date <= ?", filter.EndDate)
		}
		if filter.Status != "" {
			query = query.Where("appointments.status = ?", filter.Status)
		}
		if filter.DoctorName != "" {
			query = query.
				Joins("JOIN users AS doctors ON doctors.id = appointments.doctor_id").
				Where("doctors.full_name ILIKE ?", "%"+filter.DoctorName+"%")
		}
	}

	var counts []domainRepo.DayCount
	err := query.Group("day").Order("day ASC").Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

package cache

import (
	"fmt"

	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

// Cache keys embed the resource kind and every filter value, empty values
// included. Distinct filter combinations can never collide and identical
// combinations always map to the same key.

// DoctorListKey is the cache key for a filtered doctor list.
func DoctorListKey(filter *entity.ActorFilter) string {
	if filter == nil {
		filter = &entity.ActorFilter{}
	}
	return fmt.Sprintf("doctors:search=%s:specialization=%s", filter.Search, filter.Specialization)
}

// PatientListKey is the cache key for a filtered patient list.
func PatientListKey(filter *entity.ActorFilter) string {
	if filter == nil {
		filter = &entity.ActorFilter{}
	}
	return fmt.Sprintf("patients:search=%s:gender=%s", filter.Search, filter.Gender)
}

// RecordListKey is the cache key for the medical records of one
// appointment/patient/doctor triple. Writes to a record invalidate exactly
// this key and no other.
func RecordListKey(appointmentID, patientID, doctorID uuid.UUID) string {
	return fmt.Sprintf("records:appointment=%s:patient=%s:doctor=%s", appointmentID, patientID, doctorID)
}

// ReportKey is the cache key for the admin appointment report.
func ReportKey(filter *entity.ReportFilter) string {
	if filter == nil {
		filter = &entity.ReportFilter{}
	}
	return fmt.Sprintf("report:appointments:start=%s:end=%s:status=%s:doctor=%s",
		filter.StartDate, filter.EndDate, filter.Status, filter.DoctorName)
}

package converter

import (
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO.
// Doctor and patient IDs come from the owning appointment when preloaded.
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:            record.ID,
		AppointmentID: record.AppointmentID,
		DoctorID:      record.Appointment.DoctorID,
		PatientID:     record.Appointment.PatientID,
		Diagnosis:     record.Diagnosis,
		Treatment:     record.Treatment,
		Notes:         record.Notes,
		ReportPath:    record.ReportPath,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		responses[i] = *MedicalRecordToResponse(&record)
	}
	return responses
}

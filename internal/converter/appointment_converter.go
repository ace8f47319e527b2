package converter

import (
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientID:   appointment.PatientID,
		ScheduledAt: appointment.ScheduledAt,
		Status:      string(appointment.Status),
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	// Include participant info if preloaded
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

// AppointmentsToDoctorResponses pairs each appointment with its preloaded
// medical records for the doctor dashboard.
func AppointmentsToDoctorResponses(appointments []entity.Appointment) []dto.DoctorAppointmentResponse {
	responses := make([]dto.DoctorAppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		records := make([]dto.MedicalRecordResponse, len(appointment.MedicalRecords))
		for j, record := range appointment.MedicalRecords {
			resp := MedicalRecordToResponse(&record)
			// The record's appointment relation is not preloaded on this
			// path; fill the participants from the parent row.
			resp.DoctorID = appointment.DoctorID
			resp.PatientID = appointment.PatientID
			records[j] = *resp
		}
		responses[i] = dto.DoctorAppointmentResponse{
			Appointment: *AppointmentToResponse(&appointment),
			Records:     records,
		}
	}
	return responses
}

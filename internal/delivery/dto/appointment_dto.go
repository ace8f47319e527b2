package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	ScheduledAt string    `json:"scheduled_at" validate:"required"` // RFC 3339
	Notes       string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	ScheduledAt string `json:"scheduled_at" validate:"omitempty"`
	Status      string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Notes       string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID        `json:"id"`
	DoctorID    uuid.UUID        `json:"doctor_id"`
	PatientID   uuid.UUID        `json:"patient_id"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	Status      string           `json:"status"`
	Notes       string           `json:"notes,omitempty"`
	Doctor      *DoctorResponse  `json:"doctor,omitempty"`
	Patient     *PatientResponse `json:"patient,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// DoctorAppointmentResponse is an appointment with its medical records,
// as shown on the doctor dashboard.
type DoctorAppointmentResponse struct {
	Appointment AppointmentResponse     `json:"appointment"`
	Records     []MedicalRecordResponse `json:"records"`
}

type DoctorAppointmentListResponse struct {
	Appointments []DoctorAppointmentResponse `json:"appointments"`
	Total        int                         `json:"total"`
}

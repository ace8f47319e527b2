package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs
//
// Record requests arrive as multipart forms (the report field is a file
// upload), so these carry form values rather than JSON.

type CreateMedicalRecordRequest struct {
	Diagnosis string `form:"diagnosis" validate:"required"`
	Treatment string `form:"treatment" validate:"required"`
	Notes     string `form:"notes" validate:"omitempty"`
	// Optional cross-checks: when present they must match the
	// appointment's own doctor/patient.
	DoctorID  string `form:"doctor_id" validate:"omitempty,uuid"`
	PatientID string `form:"patient_id" validate:"omitempty,uuid"`
}

type UpdateMedicalRecordRequest struct {
	Diagnosis string `form:"diagnosis" validate:"omitempty"`
	Treatment string `form:"treatment" validate:"omitempty"`
	Notes     string `form:"notes" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	Diagnosis     string    `json:"diagnosis"`
	Treatment     string    `json:"treatment"`
	Notes         string    `json:"notes,omitempty"`
	ReportPath    string    `json:"report_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord belongs to exactly one appointment. The doctor and patient
// are derived from the appointment rather than stored again, so the record
// can never disagree with its appointment about who was involved.
type MedicalRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Diagnosis     string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment     string    `gorm:"type:text;not null" json:"treatment"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	ReportPath    string    `gorm:"type:text" json:"report_path,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// DoctorID returns the doctor of the owning appointment. Requires the
// Appointment relationship to be preloaded.
func (m *MedicalRecord) DoctorID() uuid.UUID {
	return m.Appointment.DoctorID
}

// PatientID returns the patient of the owning appointment. Requires the
// Appointment relationship to be preloaded.
func (m *MedicalRecord) PatientID() uuid.UUID {
	return m.Appointment.PatientID
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account table for all roles. Specialization is only
// meaningful for doctors, DateOfBirth and Gender mainly for patients; the
// role column decides which fields the presentation layer shows.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID         int        `gorm:"not null;index" json:"role_id"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"type:text;not null" json:"-"`
	FullName       string     `gorm:"type:varchar(255);not null;index" json:"full_name"`
	PhoneNumber    string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Specialization string     `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender         string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	IsActive       *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role                Role          `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorAppointments  []Appointment `gorm:"foreignKey:DoctorID" json:"doctor_appointments,omitempty"`
	PatientAppointments []Appointment `gorm:"foreignKey:PatientID" json:"patient_appointments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

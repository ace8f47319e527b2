package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required,min=2"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Specialization string `json:"specialization" validate:"required"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female"`
}

type UpdateDoctorRequest struct {
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	FullName       string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Specialization string    `json:"specialization"`
	Gender         string    `json:"gender,omitempty"`
	IsActive       *bool     `json:"is_active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

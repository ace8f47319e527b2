package converter

import (
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	roleName := user.Role.RoleName
	if roleName == "" {
		roleName = entity.RoleNameByID(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// DoctorToResponse converts a doctor User entity to DoctorResponse DTO
func DoctorToResponse(user *entity.User) *dto.DoctorResponse {
	if user == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		PhoneNumber:    user.PhoneNumber,
		Specialization: user.Specialization,
		Gender:         user.Gender,
		IsActive:       user.IsActive,
	}
}

// DoctorsToResponses converts a slice of doctor User entities to DoctorResponse DTOs
func DoctorsToResponses(users []entity.User) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(users))
	for i, user := range users {
		responses[i] = *DoctorToResponse(&user)
	}
	return responses
}

// PatientToResponse converts a patient User entity to PatientResponse DTO
func PatientToResponse(user *entity.User) *dto.PatientResponse {
	if user == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Gender:      user.Gender,
		IsActive:    user.IsActive,
	}

	if user.DateOfBirth != nil {
		response.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// PatientsToResponses converts a slice of patient User entities to PatientResponse DTOs
func PatientsToResponses(users []entity.User) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(users))
	for i, user := range users {
		responses[i] = *PatientToResponse(&user)
	}
	return responses
}

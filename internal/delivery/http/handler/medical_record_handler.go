package handler

import (
	"io"
	"net/http"

	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/delivery/http/middleware"
	"hospital-management-service/internal/domain/scope"
	"hospital-management-service/internal/usecase"
	"hospital-management-service/pkg/response"
	"hospital-management-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Report uploads are capped well above any realistic PDF or scan.
const maxUploadSize = 10 << 20

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// actorDecision builds the access decision for medical records from the
// authenticated identity.
func actorDecision(r *http.Request) (scope.Decision, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return scope.Decision{}, uuid.Nil, false
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		return scope.Decision{}, uuid.Nil, false
	}

	actor := scope.Actor{ID: userID, RoleID: roleID}
	return scope.Decide(actor, scope.ResourceMedicalRecords), userID, true
}

// reportFile pulls the optional report upload out of the multipart form.
// A missing file is not an error.
func reportFile(r *http.Request) (string, io.ReadCloser, error) {
	file, header, err := r.FormFile("report")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil, nil
		}
		return "", nil, err
	}
	return header.Filename, file, nil
}

func (h *MedicalRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	decision, actorID, ok := actorDecision(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req := dto.CreateMedicalRecordRequest{
		Diagnosis: r.FormValue("diagnosis"),
		Treatment: r.FormValue("treatment"),
		Notes:     r.FormValue("notes"),
		DoctorID:  r.FormValue("doctor_id"),
		PatientID: r.FormValue("patient_id"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	filename, file, err := reportFile(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report file", nil)
		return
	}
	if file != nil {
		defer file.Close()
	}

	var content io.Reader
	if file != nil {
		content = file
	}

	record, err := h.recordUsecase.CreateRecord(r.Context(), decision, actorID, appointmentID, &req, filename, content)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPermissionDenied:
			response.Forbidden(w, "You don't have access to this appointment")
		case usecase.ErrRecordParticipantMismatch:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *MedicalRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	decision, _, ok := actorDecision(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.recordUsecase.GetRecord(r.Context(), decision, recordID)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrPermissionDenied:
			response.Forbidden(w, "You don't have access to this medical record")
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

func (h *MedicalRecordHandler) GetAppointmentRecords(w http.ResponseWriter, r *http.Request) {
	decision, _, ok := actorDecision(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	records, err := h.recordUsecase.ListRecords(r.Context(), decision, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPermissionDenied:
			response.Forbidden(w, "You don't have access to this appointment")
		default:
			response.InternalServerError(w, "Failed to get medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}

func (h *MedicalRecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	decision, actorID, ok := actorDecision(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req := dto.UpdateMedicalRecordRequest{
		Diagnosis: r.FormValue("diagnosis"),
		Treatment: r.FormValue("treatment"),
		Notes:     r.FormValue("notes"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	filename, file, err := reportFile(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report file", nil)
		return
	}
	if file != nil {
		defer file.Close()
	}

	var content io.Reader
	if file != nil {
		content = file
	}

	record, err := h.recordUsecase.UpdateRecord(r.Context(), decision, actorID, recordID, &req, filename, content)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrPermissionDenied:
			response.Forbidden(w, "You don't have access to this medical record")
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

func (h *MedicalRecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	decision, actorID, ok := actorDecision(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.DeleteRecord(r.Context(), decision, actorID, recordID); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrPermissionDenied:
			response.Forbidden(w, "You don't have access to this medical record")
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}

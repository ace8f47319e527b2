package handler

import (
	"net/http"

	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/usecase"
	"hospital-management-service/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// GetAppointmentReport returns per-day appointment counts over a date range.
func (h *ReportHandler) GetAppointmentReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &entity.ReportFilter{
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
		Status:     query.Get("status"),
		DoctorName: query.Get("doctor"),
	}

	report, err := h.reportUsecase.GetAppointmentReport(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to build appointment report")
		return
	}

	response.Success(w, http.StatusOK, "Appointment report retrieved successfully", report)
}

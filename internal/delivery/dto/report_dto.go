package dto

// Response DTOs

// SeriesPoint is one calendar day of the appointment report. Days with no
// appointments are present with a zero count.
type SeriesPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type AppointmentReportResponse struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Series    []SeriesPoint `json:"series"`
	Total     int           `json:"total"`
}

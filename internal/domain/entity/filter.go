package entity

// Domain-level filters used by the repository layer to avoid coupling with
// delivery DTOs. An empty field means "no predicate for that field", never
// "match the empty string".

// ActorFilter filters doctor or patient lists.
type ActorFilter struct {
	Search         string // Substring match on full_name (ILIKE)
	Specialization string // Substring match on specialization (ILIKE), doctors only
	Gender         string // Exact match, patients only
}

// AppointmentFilter filters appointment lists.
type AppointmentFilter struct {
	DoctorName  string // Substring match on doctor full_name (ILIKE)
	PatientName string // Substring match on patient full_name (ILIKE)
}

// ReportFilter filters the appointment report query.
// Dates use YYYY-MM-DD and the range is inclusive on both ends.
type ReportFilter struct {
	StartDate  string
	EndDate    string
	Status     string // Exact status match
	DoctorName string // Substring match on doctor full_name (ILIKE)
}

// Package scope holds the role-based access rules as pure functions.
// Handlers pass the decision into usecases; nothing here touches the
// database or the request, so the rules stay independently testable.
package scope

import (
	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

// Resource identifies the kind of data an actor wants to reach.
type Resource int

const (
	ResourceDoctors Resource = iota
	ResourcePatients
	ResourceAppointments
	ResourceMedicalRecords
	ResourceReport
	ResourceAuditLogs
)

// Actor is the authenticated identity a decision is made for.
type Actor struct {
	ID     uuid.UUID
	RoleID int
}

// Decision is the outcome of an access check. When Permitted is true and
// DoctorID is non-zero, every query for the resource must be restricted to
// rows whose doctor matches DoctorID.
type Decision struct {
	Permitted bool
	DoctorID  uuid.UUID
}

var deny = Decision{}

// Decide maps (actor, resource) to an access decision.
//
// Admins may reach everything, unrestricted. Doctors may reach appointments
// and medical records, restricted to their own. Patients and any account
// with an unrecognized role are denied outright; an unknown role never
// falls through to an allow.
func Decide(actor Actor, res Resource) Decision {
	switch actor.RoleID {
	case entity.RoleIDAdmin:
		return Decision{Permitted: true}
	case entity.RoleIDDoctor:
		switch res {
		case ResourceAppointments, ResourceMedicalRecords:
			return Decision{Permitted: true, DoctorID: actor.ID}
		default:
			return deny
		}
	case entity.RoleIDPatient:
		return deny
	default:
		return deny
	}
}

// Restricted reports whether the decision limits queries to a single doctor.
func (d Decision) Restricted() bool {
	return d.DoctorID != uuid.Nil
}

// AllowsDoctor reports whether rows owned by the given doctor are visible
// under this decision.
func (d Decision) AllowsDoctor(doctorID uuid.UUID) bool {
	if !d.Permitted {
		return false
	}
	if !d.Restricted() {
		return true
	}
	return d.DoctorID == doctorID
}

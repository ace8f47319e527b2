package entity

import "errors"

// ErrInvalidStatusTransition is returned when a status change is not
// allowed by the active policy.
var ErrInvalidStatusTransition = errors.New("invalid appointment status transition")

// StatusPolicy defines which appointment status transitions are allowed.
// The zero map allows nothing; build policies with the constructors below.
// Transition rules are a deployment decision, so the policy is injected
// rather than hard-coded into the entity.
type StatusPolicy map[AppointmentStatus][]AppointmentStatus

// DefaultStatusPolicy allows pending appointments to complete or cancel.
// Completed and cancelled are terminal.
func DefaultStatusPolicy() StatusPolicy {
	return StatusPolicy{
		AppointmentStatusPending: {
			AppointmentStatusCompleted,
			AppointmentStatusCancelled,
		},
	}
}

// CanTransition reports whether a change from one status to another is allowed.
// A no-op transition (same status) is always allowed.
func (p StatusPolicy) CanTransition(from, to AppointmentStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range p[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Apply validates and performs the transition on the appointment.
func (p StatusPolicy) Apply(a *Appointment, to AppointmentStatus) error {
	if !to.IsValid() {
		return ErrInvalidStatusTransition
	}
	if !p.CanTransition(a.Status, to) {
		return ErrInvalidStatusTransition
	}
	a.Status = to
	return nil
}

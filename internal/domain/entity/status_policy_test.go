package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStatusPolicy_PendingTransitions(t *testing.T) {
	policy := DefaultStatusPolicy()

	assert.True(t, policy.CanTransition(AppointmentStatusPending, AppointmentStatusCompleted))
	assert.True(t, policy.CanTransition(AppointmentStatusPending, AppointmentStatusCancelled))
}

func TestDefaultStatusPolicy_TerminalStatesImmutable(t *testing.T) {
	policy := DefaultStatusPolicy()

	assert.False(t, policy.CanTransition(AppointmentStatusCompleted, AppointmentStatusPending))
	assert.False(t, policy.CanTransition(AppointmentStatusCompleted, AppointmentStatusCancelled))
	assert.False(t, policy.CanTransition(AppointmentStatusCancelled, AppointmentStatusPending))
	assert.False(t, policy.CanTransition(AppointmentStatusCancelled, AppointmentStatusCompleted))
}

func TestStatusPolicy_NoOpAlwaysAllowed(t *testing.T) {
	policy := DefaultStatusPolicy()

	for _, s := range []AppointmentStatus{AppointmentStatusPending, AppointmentStatusCompleted, AppointmentStatusCancelled} {
		assert.True(t, policy.CanTransition(s, s))
	}
}

func TestStatusPolicy_Apply(t *testing.T) {
	policy := DefaultStatusPolicy()

	appt := &Appointment{Status: AppointmentStatusPending}
	err := policy.Apply(appt, AppointmentStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, AppointmentStatusCompleted, appt.Status)

	err = policy.Apply(appt, AppointmentStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, AppointmentStatusCompleted, appt.Status)
}

func TestStatusPolicy_ApplyRejectsUnknownStatus(t *testing.T) {
	policy := DefaultStatusPolicy()

	appt := &Appointment{Status: AppointmentStatusPending}
	err := policy.Apply(appt, AppointmentStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestStatusPolicy_Configurable(t *testing.T) {
	// A deployment may allow reopening cancelled appointments.
	policy := StatusPolicy{
		AppointmentStatusPending:   {AppointmentStatusCompleted, AppointmentStatusCancelled},
		AppointmentStatusCancelled: {AppointmentStatusPending},
	}

	assert.True(t, policy.CanTransition(AppointmentStatusCancelled, AppointmentStatusPending))
	assert.False(t, policy.CanTransition(AppointmentStatusCompleted, AppointmentStatusPending))
}

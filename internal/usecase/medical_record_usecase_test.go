package usecase

import (
	"testing"

	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateRecordParticipants(t *testing.T) {
	appointment := &entity.Appointment{
		DoctorID:  uuid.New(),
		PatientID: uuid.New(),
	}

	t.Run("empty values pass", func(t *testing.T) {
		assert.NoError(t, validateRecordParticipants(appointment, "", ""))
	})

	t.Run("matching values pass", func(t *testing.T) {
		err := validateRecordParticipants(appointment, appointment.DoctorID.String(), appointment.PatientID.String())
		assert.NoError(t, err)
	})

	t.Run("wrong doctor rejected", func(t *testing.T) {
		err := validateRecordParticipants(appointment, uuid.New().String(), "")
		assert.ErrorIs(t, err, ErrRecordParticipantMismatch)
	})

	t.Run("wrong patient rejected", func(t *testing.T) {
		err := validateRecordParticipants(appointment, "", uuid.New().String())
		assert.ErrorIs(t, err, ErrRecordParticipantMismatch)
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		err := validateRecordParticipants(appointment, "not-a-uuid", "")
		assert.ErrorIs(t, err, ErrRecordParticipantMismatch)
	})

	t.Run("swapped ids rejected", func(t *testing.T) {
		err := validateRecordParticipants(appointment, appointment.PatientID.String(), appointment.DoctorID.String())
		assert.ErrorIs(t, err, ErrRecordParticipantMismatch)
	})
}

func TestParseDateOfBirth(t *testing.T) {
	t.Run("empty means unset", func(t *testing.T) {
		parsed, err := parseDateOfBirth("")
		assert.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("valid date", func(t *testing.T) {
		parsed, err := parseDateOfBirth("1990-06-15")
		assert.NoError(t, err)
		assert.Equal(t, "1990-06-15", parsed.Format("2006-01-02"))
	})

	t.Run("wrong layout rejected", func(t *testing.T) {
		_, err := parseDateOfBirth("15/06/1990")
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}

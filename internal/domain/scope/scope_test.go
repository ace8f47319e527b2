package scope

import (
	"testing"

	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var allResources = []Resource{
	ResourceDoctors,
	ResourcePatients,
	ResourceAppointments,
	ResourceMedicalRecords,
	ResourceReport,
	ResourceAuditLogs,
}

func TestDecide_AdminUnrestrictedEverywhere(t *testing.T) {
	admin := Actor{ID: uuid.New(), RoleID: entity.RoleIDAdmin}

	for _, res := range allResources {
		d := Decide(admin, res)
		assert.True(t, d.Permitted, "admin should reach resource %d", res)
		assert.False(t, d.Restricted(), "admin must not be doctor-restricted on resource %d", res)
	}
}

func TestDecide_DoctorOwnRowsOnly(t *testing.T) {
	doctorID := uuid.New()
	doctor := Actor{ID: doctorID, RoleID: entity.RoleIDDoctor}

	for _, res := range []Resource{ResourceAppointments, ResourceMedicalRecords} {
		d := Decide(doctor, res)
		assert.True(t, d.Permitted)
		assert.True(t, d.Restricted())
		assert.Equal(t, doctorID, d.DoctorID)
	}

	for _, res := range []Resource{ResourceDoctors, ResourcePatients, ResourceReport, ResourceAuditLogs} {
		d := Decide(doctor, res)
		assert.False(t, d.Permitted, "doctor must be denied resource %d", res)
	}
}

func TestDecide_PatientDeniedEverywhere(t *testing.T) {
	patient := Actor{ID: uuid.New(), RoleID: entity.RoleIDPatient}

	for _, res := range allResources {
		d := Decide(patient, res)
		assert.False(t, d.Permitted)
	}
}

func TestDecide_UnknownRoleNeverFallsThrough(t *testing.T) {
	for _, roleID := range []int{0, -1, 99} {
		actor := Actor{ID: uuid.New(), RoleID: roleID}
		for _, res := range allResources {
			assert.False(t, Decide(actor, res).Permitted, "role %d must be denied", roleID)
		}
	}
}

func TestAllowsDoctor(t *testing.T) {
	ownID := uuid.New()
	otherID := uuid.New()

	admin := Decide(Actor{ID: uuid.New(), RoleID: entity.RoleIDAdmin}, ResourceAppointments)
	assert.True(t, admin.AllowsDoctor(ownID))
	assert.True(t, admin.AllowsDoctor(otherID))

	doctor := Decide(Actor{ID: ownID, RoleID: entity.RoleIDDoctor}, ResourceAppointments)
	assert.True(t, doctor.AllowsDoctor(ownID))
	assert.False(t, doctor.AllowsDoctor(otherID))

	denied := Decide(Actor{ID: ownID, RoleID: entity.RoleIDPatient}, ResourceAppointments)
	assert.False(t, denied.AllowsDoctor(ownID))
}

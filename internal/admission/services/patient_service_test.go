package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	billing "github.com/sanjivni/hospital-backend/internal/billing/services"
	"github.com/sanjivni/hospital-backend/internal/catalog"
	"github.com/sanjivni/hospital-backend/pkg/storage/jsonstore"
)

func newTestService(t *testing.T) (*PatientService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients_data.json")
	return NewPatientService(jsonstore.New(path)), path
}

func TestCreatePatientAssignsIncreasingIDs(t *testing.T) {
	svc, _ := newTestService(t)

	r1, err := svc.CreatePatient("Asha", 30, "Pune", "2024-01-01", "")
	require.NoError(t, err)
	r2, err := svc.CreatePatient("Ravi", 41, "Mumbai", "2024-01-02", "")
	require.NoError(t, err)

	assert.Equal(t, 1, r1.ID)
	assert.Equal(t, 2, r2.ID)
	assert.Len(t, svc.List(), 2)
}

func TestIDCounterSurvivesRestart(t *testing.T) {
	svc, path := newTestService(t)

	_, err := svc.CreatePatient("Asha", 30, "Pune", "2024-01-01", "")
	require.NoError(t, err)
	r2, err := svc.CreatePatient("Ravi", 41, "Mumbai", "2024-01-02", "")
	require.NoError(t, err)
	_, already, err := svc.Discharge(r2.ID, "")
	require.NoError(t, err)
	require.False(t, already)

	// Proses "restart": service baru dari file yang sama. Id pasien yang
	// sudah pulang tetap tidak dipakai ulang.
	svc2 := NewPatientService(jsonstore.New(path))
	r3, err := svc2.CreatePatient("Meena", 28, "Nashik", "2024-01-03", "")
	require.NoError(t, err)
	assert.Equal(t, 3, r3.ID)
}

func TestAdmissionScenario(t *testing.T) {
	svc, _ := newTestService(t)

	r, err := svc.CreatePatient("Asha", 30, "Pune", "2024-01-01", "")
	require.NoError(t, err)

	_, err = svc.AssignBed(r.ID, "ICU-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 36000.0, r.RoomCharge)

	_, err = svc.AddLineItem(r.ID, catalog.CategoryTreatment, "MinorProcedure", 2)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, r.TreatmentCharge)

	_, err = svc.AssignDoctor(r.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, r.DoctorFee)

	assert.Equal(t, 46000.0, billing.GrandTotal(r))

	_, already, err := svc.Discharge(r.ID, "2024-01-04")
	require.NoError(t, err)
	assert.False(t, already)
	assert.Zero(t, billing.GrandTotal(r))

	_, err = svc.AddLineItem(r.ID, catalog.CategoryTreatment, "Consultation", 1)
	assert.ErrorIs(t, err, models.ErrDischarged)
}

func TestDischargeIdempotentViaService(t *testing.T) {
	svc, _ := newTestService(t)
	r, err := svc.CreatePatient("Asha", 30, "Pune", "2024-01-01", "")
	require.NoError(t, err)

	_, already, err := svc.Discharge(r.ID, "2024-01-04")
	require.NoError(t, err)
	assert.False(t, already)

	_, already, err = svc.Discharge(r.ID, "2024-02-02")
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, "2024-01-04", r.DischargeDate)
}

func TestBedFreedAfterDischarge(t *testing.T) {
	svc, _ := newTestService(t)
	r, err := svc.CreatePatient("Asha", 30, "Pune", "2024-01-01", "")
	require.NoError(t, err)
	_, err = svc.AssignBed(r.ID, "Private-5", 2)
	require.NoError(t, err)

	assert.NotContains(t, svc.AvailableBeds()["Private"], "Private-5")

	_, _, err = svc.Discharge(r.ID, "")
	require.NoError(t, err)
	assert.Contains(t, svc.AvailableBeds()["Private"], "Private-5")
}

func TestFailedOperationDoesNotSave(t *testing.T) {
	svc, path := newTestService(t)
	r, err := svc.CreatePatient("Asha", 30, "Pune", "2024-01-01", "")
	require.NoError(t, err)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = svc.AddLineItem(r.ID, catalog.CategoryTreatment, "Teleportation", 1)
	require.ErrorIs(t, err, models.ErrUnknownItem)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, saved, after, "operasi yang gagal tidak boleh menulis ulang file data")
}

func TestGetUnknownPatient(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(99)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.AssignBed(99, "ICU-1", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCollectionRoundTrip(t *testing.T) {
	svc, path := newTestService(t)

	r, err := svc.CreatePatient("Asha", 30, "Pune", "2024-01-01", "2024-01-05")
	require.NoError(t, err)
	_, err = svc.AssignBed(r.ID, "Semi-Private-4", 3)
	require.NoError(t, err)
	_, err = svc.AddLineItem(r.ID, catalog.CategoryPharmacy, "MedicineKit", 1)
	require.NoError(t, err)
	_, err = svc.AssignCustomDoctor(r.ID, "Dr. Y", "ENT", 650)
	require.NoError(t, err)

	svc2 := NewPatientService(jsonstore.New(path))
	require.Len(t, svc2.List(), 1)
	assert.Equal(t, r, svc2.List()[0])
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	"github.com/sanjivni/hospital-backend/internal/catalog"
)

func sampleRecord(t *testing.T) *models.PatientRecord {
	t.Helper()
	r := models.NewPatientRecord(1)
	require.NoError(t, r.SetIdentity("Asha", 30, "Pune", "2024-01-01", "2024-01-04"))
	require.NoError(t, r.AssignBed("ICU-1", 3))
	require.NoError(t, r.AddLineItem(catalog.CategoryTreatment, "MinorProcedure", 2))
	require.NoError(t, r.AssignDoctor(2))
	return r
}

func TestGrandTotalIsSumOfChargeFields(t *testing.T) {
	r := sampleRecord(t)

	assert.Equal(t, 45500.0, Subtotal(r))
	assert.Equal(t, 46000.0, GrandTotal(r))
	assert.Equal(t,
		r.RoomCharge+r.TreatmentCharge+r.PharmacyCharge+r.LabCharge+r.DoctorFee+r.ServiceCharge,
		GrandTotal(r))
}

func TestGrandTotalAfterDischarge(t *testing.T) {
	r := sampleRecord(t)
	r.Discharge("2024-01-04")
	assert.Zero(t, GrandTotal(r))
}

func TestBillText(t *testing.T) {
	r := sampleRecord(t)
	text := BillText(r)

	assert.Contains(t, text, "******SANJIVNI HOSPITAL BILL******")
	assert.Contains(t, text, "Patient id: 1")
	assert.Contains(t, text, "Patient name: Asha")
	assert.Contains(t, text, "Bed id: ICU-1")
	assert.Contains(t, text, "Room charges: 36000")
	assert.Contains(t, text, "Treatment charges: 8000")
	assert.Contains(t, text, "Assigned doctor: Dr. P. Rao (Cardiology)")
	assert.Contains(t, text, "Doctor fee: 1500")
	assert.Contains(t, text, "Your sub total bill is: 45500")
	assert.Contains(t, text, "Additional Service Charges is 500")
	assert.Contains(t, text, "Your grandtotal bill is: 46000")
}

func TestBillTextWithoutDoctor(t *testing.T) {
	r := models.NewPatientRecord(2)
	text := BillText(r)
	assert.Contains(t, text, "Assigned doctor: None")
	assert.Contains(t, text, "Doctor fee: 0")
	assert.Contains(t, text, "Your grandtotal bill is: 500")
}

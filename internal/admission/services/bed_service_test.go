package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
)

func TestAvailableBedsEmptyCollection(t *testing.T) {
	available := AvailableBeds(nil)

	require.Len(t, available, 4)
	for _, typeName := range []string{"ICU", "Private", "Semi-Private", "General"} {
		assert.Len(t, available[typeName], 20, typeName)
	}
	// Urutan nomor naik.
	assert.Equal(t, "ICU-1", available["ICU"][0])
	assert.Equal(t, "ICU-20", available["ICU"][19])
	assert.Equal(t, "Semi-Private-1", available["Semi-Private"][0])
}

func TestAvailableBedsExcludesOccupied(t *testing.T) {
	occupied := models.NewPatientRecord(1)
	require.NoError(t, occupied.AssignBed("ICU-1", 2))

	discharged := models.NewPatientRecord(2)
	require.NoError(t, discharged.AssignBed("ICU-2", 2))
	discharged.Discharge("")

	available := AvailableBeds([]*models.PatientRecord{occupied, discharged})

	assert.NotContains(t, available["ICU"], "ICU-1")
	// Bed pasien yang sudah pulang kembali tersedia.
	assert.Contains(t, available["ICU"], "ICU-2")
	assert.Len(t, available["ICU"], 19)
	assert.Len(t, available["Private"], 20)
}

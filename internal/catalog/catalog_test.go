package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateFor(t *testing.T) {
	rate, ok := RateFor("ICU")
	assert.True(t, ok)
	assert.Equal(t, 12000.0, rate)

	rate, ok = RateFor("General")
	assert.True(t, ok)
	assert.Equal(t, 3000.0, rate)

	_, ok = RateFor("Penthouse")
	assert.False(t, ok)
}

func TestBedTypeOf(t *testing.T) {
	tests := []struct {
		bedID string
		want  string
		ok    bool
	}{
		{"ICU-1", "ICU", true},
		{"ICU-20", "ICU", true},
		{"Private-3", "Private", true},
		{"Semi-Private-7", "Semi-Private", true},
		{"General-15", "General", true},
		{"Penthouse-1", "", false},
		{"ICU", "", false},
		{"", "", false},
		{"-5", "", false},
	}
	for _, tt := range tests {
		got, ok := BedTypeOf(tt.bedID)
		assert.Equal(t, tt.ok, ok, "bed id %q", tt.bedID)
		assert.Equal(t, tt.want, got, "bed id %q", tt.bedID)
	}
}

func TestPriceFor(t *testing.T) {
	price, ok := PriceFor(CategoryTreatment, "MinorProcedure")
	assert.True(t, ok)
	assert.Equal(t, 4000.0, price)

	price, ok = PriceFor(CategoryPharmacy, "Paracetamol")
	assert.True(t, ok)
	assert.Equal(t, 10.0, price)

	price, ok = PriceFor(CategoryLab, "MRI")
	assert.True(t, ok)
	assert.Equal(t, 7000.0, price)

	_, ok = PriceFor(CategoryTreatment, "Teleportation")
	assert.False(t, ok)

	_, ok = PriceFor(Category("spa"), "Massage")
	assert.False(t, ok)
}

func TestPriceListsHaveFiveItems(t *testing.T) {
	assert.Len(t, TreatmentItems, 5)
	assert.Len(t, PharmacyItems, 5)
	assert.Len(t, LabItems, 5)
	assert.Len(t, BedTypes, 4)
}

func TestDoctorByID(t *testing.T) {
	d, ok := DoctorByID(2)
	assert.True(t, ok)
	assert.Equal(t, "Dr. P. Rao", d.Name)
	assert.Equal(t, "Cardiology", d.Specialty)
	assert.Equal(t, 1500.0, d.Fee)

	_, ok = DoctorByID(99)
	assert.False(t, ok)
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Minor Procedure", LabelFor(CategoryTreatment, "MinorProcedure"))
	// Key lama yang tidak dikenal jatuh kembali ke key itu sendiri.
	assert.Equal(t, "Mystery", LabelFor(CategoryLab, "Mystery"))
}

package models

import "github.com/sanjivni/hospital-backend/internal/catalog"

// Doctor adalah dokter yang ditugaskan ke satu pasien. ID > 0 berarti entri
// roster, ID 0 berarti dokter ad-hoc yang dimiliki oleh record pasien itu
// sendiri. Kedua varian hanya dibuat lewat RosterDoctor / CustomDoctor.
type Doctor struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Fee       float64 `json:"fee"`
}

// RosterDoctor builds the assigned-doctor value for a roster entry.
func RosterDoctor(d catalog.RosterDoctor) Doctor {
	return Doctor{ID: d.ID, Name: d.Name, Specialty: d.Specialty, Fee: d.Fee}
}

// CustomDoctor builds an ad-hoc doctor. Negative fees are coerced to 0.
func CustomDoctor(name, specialty string, fee float64) Doctor {
	if fee < 0 {
		fee = 0
	}
	return Doctor{ID: 0, Name: name, Specialty: specialty, Fee: fee}
}

// IsCustom reports whether the doctor is an ad-hoc entry rather than a
// roster reference.
func (d Doctor) IsCustom() bool {
	return d.ID == 0
}

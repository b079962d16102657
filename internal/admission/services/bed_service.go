package services

import (
	"fmt"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	"github.com/sanjivni/hospital-backend/internal/catalog"
)

// AvailableBeds menghitung bed yang masih kosong per tipe kamar. Sebuah bed
// dianggap terpakai hanya bila dipegang oleh pasien yang belum discharged;
// discharge membebaskan bed secara implisit.
//
// Fungsi ini murni dan hanya bersifat advisory: AssignBed tidak memeriksa
// ulang okupansi, jadi pemanggil wajib memilih bed dari hasil fungsi ini.
func AvailableBeds(records []*models.PatientRecord) map[string][]string {
	used := make(map[string]bool)
	for _, r := range records {
		if r.BedID != "" && !r.Discharged {
			used[r.BedID] = true
		}
	}

	available := make(map[string][]string, len(catalog.BedTypes))
	for _, bt := range catalog.BedTypes {
		free := make([]string, 0, catalog.BedsPerType)
		for n := 1; n <= catalog.BedsPerType; n++ {
			id := fmt.Sprintf("%s-%d", bt.Name, n)
			if !used[id] {
				free = append(free, id)
			}
		}
		available[bt.Name] = free
	}
	return available
}

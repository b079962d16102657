package services

import (
	"github.com/rs/zerolog/log"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	"github.com/sanjivni/hospital-backend/internal/catalog"
	"github.com/sanjivni/hospital-backend/internal/metrics"
	"github.com/sanjivni/hospital-backend/pkg/storage/jsonstore"
)

// PatientService memegang koleksi pasien yang dimuat dari store dan counter
// id berikutnya. Setiap operasi mutasi yang berhasil menulis ulang seluruh
// koleksi; operasi yang gagal tidak menyimpan apa pun.
type PatientService struct {
	store   *jsonstore.Store
	records []*models.PatientRecord
	nextID  int
}

// NewPatientService memuat koleksi dari store. Counter id diturunkan dari
// max(id) + 1 sehingga id tidak pernah dipakai ulang meski proses restart.
func NewPatientService(store *jsonstore.Store) *PatientService {
	records := store.Load()
	nextID := 1
	for _, r := range records {
		if r.ID >= nextID {
			nextID = r.ID + 1
		}
	}
	return &PatientService{store: store, records: records, nextID: nextID}
}

// List mengembalikan seluruh koleksi dalam urutan pembuatan.
func (s *PatientService) List() []*models.PatientRecord {
	return s.records
}

// Get mencari pasien berdasarkan id.
func (s *PatientService) Get(id int) (*models.PatientRecord, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, models.ErrNotFound
}

// CreatePatient membuat pasien baru dengan id berikutnya dan langsung
// menyimpan koleksi.
func (s *PatientService) CreatePatient(name string, age int, address, admitDate, dischargeDate string) (*models.PatientRecord, error) {
	r := models.NewPatientRecord(s.nextID)
	// SetIdentity pada record baru tidak mungkin gagal (belum discharged).
	_ = r.SetIdentity(name, age, address, admitDate, dischargeDate)

	s.records = append(s.records, r)
	if err := s.save(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return nil, err
	}
	s.nextID++

	metrics.PatientsCreatedTotal.Inc()
	log.Info().Int("patient_id", r.ID).Str("name", r.Name).Msg("Pasien baru terdaftar")
	return r, nil
}

// mutate menjalankan satu operasi mutasi lalu menyimpan koleksi. Bila operasi
// atau penyimpanan gagal, record dikembalikan ke keadaan semula.
func (s *PatientService) mutate(id int, op func(*models.PatientRecord) error) (*models.PatientRecord, error) {
	r, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	snapshot := r.Clone()
	if err := op(r); err != nil {
		return nil, err
	}
	if err := s.save(); err != nil {
		*r = *snapshot
		return nil, err
	}
	return r, nil
}

// SetIdentity menimpa data identitas pasien.
func (s *PatientService) SetIdentity(id int, name string, age int, address, admitDate, dischargeDate string) (*models.PatientRecord, error) {
	return s.mutate(id, func(r *models.PatientRecord) error {
		return r.SetIdentity(name, age, address, admitDate, dischargeDate)
	})
}

// AssignBed menetapkan bed untuk pasien dan menghitung biaya kamar.
func (s *PatientService) AssignBed(id int, bedID string, nights int) (*models.PatientRecord, error) {
	return s.mutate(id, func(r *models.PatientRecord) error {
		return r.AssignBed(bedID, nights)
	})
}

// AddLineItem menambah kuantitas satu item berharga pada kategori.
func (s *PatientService) AddLineItem(id int, cat catalog.Category, key string, qty int) (*models.PatientRecord, error) {
	return s.mutate(id, func(r *models.PatientRecord) error {
		return r.AddLineItem(cat, key, qty)
	})
}

// SetLineItem menimpa kuantitas satu item berharga pada kategori.
func (s *PatientService) SetLineItem(id int, cat catalog.Category, key string, qty int) (*models.PatientRecord, error) {
	return s.mutate(id, func(r *models.PatientRecord) error {
		return r.SetLineItem(cat, key, qty)
	})
}

// AssignDoctor menugaskan dokter roster berdasarkan id dokter.
func (s *PatientService) AssignDoctor(id, doctorID int) (*models.PatientRecord, error) {
	return s.mutate(id, func(r *models.PatientRecord) error {
		return r.AssignDoctor(doctorID)
	})
}

// AssignCustomDoctor menugaskan dokter ad-hoc.
func (s *PatientService) AssignCustomDoctor(id int, name, specialty string, fee float64) (*models.PatientRecord, error) {
	return s.mutate(id, func(r *models.PatientRecord) error {
		return r.AssignCustomDoctor(name, specialty, fee)
	})
}

// ClearDoctor menghapus penugasan dokter.
func (s *PatientService) ClearDoctor(id int) (*models.PatientRecord, error) {
	return s.mutate(id, func(r *models.PatientRecord) error {
		return r.ClearDoctor()
	})
}

// Discharge memulangkan pasien. Pemanggilan pada pasien yang sudah pulang
// adalah no-op dan dilaporkan lewat nilai balik already.
func (s *PatientService) Discharge(id int, dischargeDate string) (r *models.PatientRecord, already bool, err error) {
	r, err = s.Get(id)
	if err != nil {
		return nil, false, err
	}
	snapshot := r.Clone()
	if r.Discharge(dischargeDate) {
		return r, true, nil
	}
	if err := s.save(); err != nil {
		*r = *snapshot
		return nil, false, err
	}

	metrics.DischargesTotal.Inc()
	log.Info().Int("patient_id", r.ID).Str("bed_id", r.BedID).Msg("Pasien dipulangkan, bed kembali tersedia")
	return r, false, nil
}

// AvailableBeds menghitung bed kosong per tipe dari koleksi saat ini.
func (s *PatientService) AvailableBeds() map[string][]string {
	return AvailableBeds(s.records)
}

// Save menulis koleksi saat ini ke store (dipakai menu "save & exit").
func (s *PatientService) Save() error {
	return s.save()
}

func (s *PatientService) save() error {
	if err := s.store.Save(s.records); err != nil {
		metrics.StoreSaveFailuresTotal.Inc()
		log.Error().Err(err).Str("file", s.store.Path()).Msg("Gagal menyimpan koleksi pasien")
		return err
	}
	metrics.StoreSavesTotal.Inc()
	return nil
}

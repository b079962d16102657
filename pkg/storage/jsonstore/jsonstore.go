package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
)

// Store membaca dan menulis seluruh koleksi pasien ke satu file JSON.
// Tidak ada mode incremental: setiap mutasi memicu penulisan ulang seluruh
// koleksi. Tidak ada locking; penulis terakhir menang.
type Store struct {
	path string
}

// New membuat Store untuk file data yang diberikan.
func New(path string) *Store {
	return &Store{path: path}
}

// Path mengembalikan lokasi file data.
func (s *Store) Path() string {
	return s.path
}

// Load membaca seluruh koleksi. File yang tidak ada atau rusak diperlakukan
// sebagai "belum ada data": hasilnya slice kosong tanpa error.
func (s *Store) Load() []*models.PatientRecord {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", s.path).Msg("Gagal membaca file data, mulai dengan koleksi kosong")
		}
		return []*models.PatientRecord{}
	}
	var records []*models.PatientRecord
	if err := json.Unmarshal(b, &records); err != nil {
		log.Warn().Err(err).Str("file", s.path).Msg("File data rusak, mulai dengan koleksi kosong")
		return []*models.PatientRecord{}
	}
	if records == nil {
		records = []*models.PatientRecord{}
	}
	return records
}

// Save menulis seluruh koleksi secara atomik lewat file sementara + rename,
// sehingga pembaca tidak pernah melihat koleksi yang separuh tertulis.
func (s *Store) Save(records []*models.PatientRecord) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal patient collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

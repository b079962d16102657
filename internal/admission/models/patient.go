package models

import (
	"encoding/json"
	"fmt"

	"github.com/sanjivni/hospital-backend/internal/catalog"
)

// PatientRecord mewakili satu pasien beserta rincian biayanya. Ini satu-satunya
// entitas yang bisa berubah; setelah Discharged bernilai true semua operasi
// mutasi ditolak dengan ErrDischarged.
//
// Nama field JSON mengikuti format file data lama (patients_data.json) supaya
// record yang sudah ada tetap terbaca.
type PatientRecord struct {
	ID              int     `json:"patient_id"`
	RoomCharge      float64 `json:"room_charge"`
	TreatmentCharge float64 `json:"treatment_charge"`
	PharmacyCharge  float64 `json:"pharmacy_charge"`
	LabCharge       float64 `json:"lab_charge"`
	ServiceCharge   float64 `json:"service_charge"`
	Name            string  `json:"name"`
	Age             int     `json:"age"`
	Address         string  `json:"address"`
	AdmitDate       string  `json:"admit_date"`
	DischargeDate   string  `json:"discharge_date"`
	BedID           string  `json:"bed_id,omitempty"`
	Discharged      bool    `json:"discharged"`
	AssignedDoctor  *Doctor `json:"assigned_doctor"`
	DoctorFee       float64 `json:"doctor_fee"`

	// Peta kuantitas per choice key. Total kategori selalu dihitung ulang
	// dari peta ini saat diedit, sehingga koreksi kuantitas ikut menurunkan
	// total (bukan hanya akumulasi).
	TreatmentItems map[string]int `json:"treatment_items,omitempty"`
	PharmacyItems  map[string]int `json:"pharmacy_items,omitempty"`
	LabItems       map[string]int `json:"lab_items,omitempty"`
}

// NewPatientRecord membuat record baru dengan nilai default.
func NewPatientRecord(id int) *PatientRecord {
	return &PatientRecord{
		ID:             id,
		ServiceCharge:  catalog.DefaultServiceCharge,
		TreatmentItems: map[string]int{},
		PharmacyItems:  map[string]int{},
		LabItems:       map[string]int{},
	}
}

// UnmarshalJSON menerapkan default untuk field yang tidak ada di file data:
// service_charge 500, discharged false, peta kuantitas kosong.
func (p *PatientRecord) UnmarshalJSON(b []byte) error {
	type alias PatientRecord
	aux := struct {
		ServiceCharge *float64 `json:"service_charge"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.ServiceCharge != nil {
		p.ServiceCharge = *aux.ServiceCharge
	} else {
		p.ServiceCharge = catalog.DefaultServiceCharge
	}
	if p.Age < 0 {
		p.Age = 0
	}
	if p.TreatmentItems == nil {
		p.TreatmentItems = map[string]int{}
	}
	if p.PharmacyItems == nil {
		p.PharmacyItems = map[string]int{}
	}
	if p.LabItems == nil {
		p.LabItems = map[string]int{}
	}
	return nil
}

// Clone mengembalikan salinan dalam (deep copy) dari record.
func (p *PatientRecord) Clone() *PatientRecord {
	cp := *p
	if p.AssignedDoctor != nil {
		d := *p.AssignedDoctor
		cp.AssignedDoctor = &d
	}
	cp.TreatmentItems = copyItems(p.TreatmentItems)
	cp.PharmacyItems = copyItems(p.PharmacyItems)
	cp.LabItems = copyItems(p.LabItems)
	return &cp
}

func copyItems(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (p *PatientRecord) ensureNotDischarged() error {
	if p.Discharged {
		return ErrDischarged
	}
	return nil
}

// SetIdentity menimpa data identitas pasien. Umur negatif dipaksa menjadi 0,
// tidak pernah gagal selain karena record sudah discharged.
func (p *PatientRecord) SetIdentity(name string, age int, address, admitDate, dischargeDate string) error {
	if err := p.ensureNotDischarged(); err != nil {
		return err
	}
	if age < 0 {
		age = 0
	}
	p.Name = name
	p.Age = age
	p.Address = address
	p.AdmitDate = admitDate
	p.DischargeDate = dischargeDate
	return nil
}

// AssignBed menetapkan bed dan menghitung biaya kamar = tarif x malam.
// Fungsi ini tidak memeriksa okupansi; pemanggil wajib memilih bed dari hasil
// AvailableBeds terlebih dahulu.
func (p *PatientRecord) AssignBed(bedID string, nights int) error {
	if err := p.ensureNotDischarged(); err != nil {
		return err
	}
	typeName, ok := catalog.BedTypeOf(bedID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBedType, bedID)
	}
	rate, _ := catalog.RateFor(typeName)
	if nights < 0 {
		nights = 0
	}
	p.RoomCharge = rate * float64(nights)
	p.BedID = bedID
	return nil
}

func (p *PatientRecord) items(cat catalog.Category) map[string]int {
	switch cat {
	case catalog.CategoryTreatment:
		return p.TreatmentItems
	case catalog.CategoryPharmacy:
		return p.PharmacyItems
	case catalog.CategoryLab:
		return p.LabItems
	}
	return nil
}

// AddLineItem menambah kuantitas satu choice key lalu menghitung ulang total
// kategori dari peta kuantitas. Kuantitas negatif boleh dipakai sebagai
// koreksi; hasil di bawah nol dipotong ke nol.
func (p *PatientRecord) AddLineItem(cat catalog.Category, key string, qty int) error {
	if err := p.ensureNotDischarged(); err != nil {
		return err
	}
	if _, ok := catalog.PriceFor(cat, key); !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownItem, cat, key)
	}
	m := p.items(cat)
	next := m[key] + qty
	if next <= 0 {
		delete(m, key)
	} else {
		m[key] = next
	}
	p.recompute(cat)
	return nil
}

// SetLineItem menimpa kuantitas satu choice key (0 menghapusnya) lalu
// menghitung ulang total kategori.
func (p *PatientRecord) SetLineItem(cat catalog.Category, key string, qty int) error {
	if err := p.ensureNotDischarged(); err != nil {
		return err
	}
	if _, ok := catalog.PriceFor(cat, key); !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownItem, cat, key)
	}
	m := p.items(cat)
	if qty <= 0 {
		delete(m, key)
	} else {
		m[key] = qty
	}
	p.recompute(cat)
	return nil
}

// recompute menghitung ulang total satu kategori dari peta kuantitasnya.
func (p *PatientRecord) recompute(cat catalog.Category) {
	var total float64
	for key, qty := range p.items(cat) {
		if price, ok := catalog.PriceFor(cat, key); ok {
			total += price * float64(qty)
		}
	}
	switch cat {
	case catalog.CategoryTreatment:
		p.TreatmentCharge = total
	case catalog.CategoryPharmacy:
		p.PharmacyCharge = total
	case catalog.CategoryLab:
		p.LabCharge = total
	}
}

// AssignDoctor menugaskan dokter roster berdasarkan id.
func (p *PatientRecord) AssignDoctor(doctorID int) error {
	if err := p.ensureNotDischarged(); err != nil {
		return err
	}
	d, ok := catalog.DoctorByID(doctorID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownDoctor, doctorID)
	}
	doc := RosterDoctor(d)
	p.AssignedDoctor = &doc
	p.DoctorFee = doc.Fee
	return nil
}

// AssignCustomDoctor menugaskan dokter ad-hoc milik record ini.
func (p *PatientRecord) AssignCustomDoctor(name, specialty string, fee float64) error {
	if err := p.ensureNotDischarged(); err != nil {
		return err
	}
	doc := CustomDoctor(name, specialty, fee)
	p.AssignedDoctor = &doc
	p.DoctorFee = doc.Fee
	return nil
}

// ClearDoctor menghapus penugasan dokter.
func (p *PatientRecord) ClearDoctor() error {
	if err := p.ensureNotDischarged(); err != nil {
		return err
	}
	p.AssignedDoctor = nil
	p.DoctorFee = 0
	return nil
}

// Discharge memulangkan pasien: semua biaya di-nol-kan dan record dibekukan.
// Idempoten; pemanggilan kedua tidak mengubah apa pun dan mengembalikan true.
// Bed dibebaskan secara implisit karena ketersediaan dihitung dari flag
// discharged, bukan dari buku bed terpisah.
func (p *PatientRecord) Discharge(dischargeDate string) (already bool) {
	if p.Discharged {
		return true
	}
	p.Discharged = true
	if dischargeDate != "" {
		p.DischargeDate = dischargeDate
	}
	p.RoomCharge = 0
	p.TreatmentCharge = 0
	p.PharmacyCharge = 0
	p.LabCharge = 0
	p.DoctorFee = 0
	p.ServiceCharge = 0
	p.TreatmentItems = map[string]int{}
	p.PharmacyItems = map[string]int{}
	p.LabItems = map[string]int{}
	return false
}

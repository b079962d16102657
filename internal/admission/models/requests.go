package models

// PatientRequest defines payload untuk pendaftaran dan update identitas pasien.
type PatientRequest struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Address       string `json:"address"`
	AdmitDate     string `json:"admit_date"`
	DischargeDate string `json:"discharge_date"`
}

// AssignBedRequest defines payload untuk pemilihan bed.
type AssignBedRequest struct {
	BedID  string `json:"bed_id"`
	Nights int    `json:"nights"`
}

// LineItemRequest defines payload untuk penambahan atau koreksi item berharga.
type LineItemRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// AssignDoctorRequest defines payload penugasan dokter. DoctorID > 0 memilih
// dokter roster; bila 0, Name/Specialty/Fee membuat dokter ad-hoc.
type AssignDoctorRequest struct {
	DoctorID  int     `json:"doctor_id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Fee       float64 `json:"fee"`
}

// DischargeRequest defines payload discharge; tanggal boleh kosong.
type DischargeRequest struct {
	DischargeDate string `json:"discharge_date"`
}

package catalog

import "strings"

// BedsPerType is the fixed capacity of every bed type.
const BedsPerType = 20

// DefaultServiceCharge is added to every admission.
const DefaultServiceCharge = 500.0

// BedType adalah satu tipe kamar dengan tarif per malam.
type BedType struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// BedTypes in menu order.
var BedTypes = []BedType{
	{Name: "ICU", Rate: 12000},
	{Name: "Private", Rate: 8000},
	{Name: "Semi-Private", Rate: 5000},
	{Name: "General", Rate: 3000},
}

// Category memilih salah satu daftar harga.
type Category string

const (
	CategoryTreatment Category = "treatment"
	CategoryPharmacy  Category = "pharmacy"
	CategoryLab       Category = "lab"
)

// PriceItem is one priced choice in a category.
type PriceItem struct {
	Key   string
	Label string
	Price float64
}

var TreatmentItems = []PriceItem{
	{Key: "Consultation", Label: "Consultation", Price: 500},
	{Key: "MinorProcedure", Label: "Minor Procedure", Price: 4000},
	{Key: "MajorSurgery", Label: "Major Surgery", Price: 25000},
	{Key: "Physiotherapy", Label: "Physiotherapy (per session)", Price: 800},
	{Key: "ICUCare", Label: "ICU care extras", Price: 5000},
}

var PharmacyItems = []PriceItem{
	{Key: "Paracetamol", Label: "Paracetamol 500mg", Price: 10},
	{Key: "AntibioticCourse", Label: "Antibiotic (course)", Price: 400},
	{Key: "Painkiller", Label: "Painkiller", Price: 50},
	{Key: "Injection", Label: "Injection", Price: 150},
	{Key: "MedicineKit", Label: "Medicine Kit", Price: 700},
}

var LabItems = []PriceItem{
	{Key: "BloodTest", Label: "Blood Test", Price: 400},
	{Key: "XRay", Label: "X-Ray", Price: 800},
	{Key: "MRI", Label: "MRI", Price: 7000},
	{Key: "CTScan", Label: "CT Scan", Price: 5000},
	{Key: "Ultrasound", Label: "Ultrasound", Price: 1200},
}

// RosterDoctor is one fixed roster entry.
type RosterDoctor struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Fee       float64 `json:"fee"`
}

var Doctors = []RosterDoctor{
	{ID: 1, Name: "Dr. A. Sharma", Specialty: "General Medicine", Fee: 500},
	{ID: 2, Name: "Dr. P. Rao", Specialty: "Cardiology", Fee: 1500},
	{ID: 3, Name: "Dr. L. Iyer", Specialty: "Orthopedics", Fee: 1200},
	{ID: 4, Name: "Dr. S. Kulkarni", Specialty: "Pediatrics", Fee: 800},
}

// ItemsFor mengembalikan daftar harga untuk kategori tertentu.
func ItemsFor(cat Category) ([]PriceItem, bool) {
	switch cat {
	case CategoryTreatment:
		return TreatmentItems, true
	case CategoryPharmacy:
		return PharmacyItems, true
	case CategoryLab:
		return LabItems, true
	}
	return nil, false
}

// PriceFor looks up the unit price of one choice key within a category.
func PriceFor(cat Category, key string) (float64, bool) {
	items, ok := ItemsFor(cat)
	if !ok {
		return 0, false
	}
	for _, it := range items {
		if it.Key == key {
			return it.Price, true
		}
	}
	return 0, false
}

// LabelFor returns the display label of a choice key, falling back to the key
// itself for values written by older data files.
func LabelFor(cat Category, key string) string {
	items, _ := ItemsFor(cat)
	for _, it := range items {
		if it.Key == key {
			return it.Label
		}
	}
	return key
}

// RateFor looks up the nightly rate of a bed type by name.
func RateFor(typeName string) (float64, bool) {
	for _, bt := range BedTypes {
		if bt.Name == typeName {
			return bt.Rate, true
		}
	}
	return 0, false
}

// BedTypeOf derives the type name from a bed id such as "Semi-Private-7".
// The type is everything before the last dash, karena nama tipe sendiri bisa
// mengandung tanda hubung.
func BedTypeOf(bedID string) (string, bool) {
	i := strings.LastIndex(bedID, "-")
	if i <= 0 {
		return "", false
	}
	name := bedID[:i]
	if _, ok := RateFor(name); !ok {
		return "", false
	}
	return name, true
}

// DoctorByID returns the roster doctor with the given id.
func DoctorByID(id int) (RosterDoctor, bool) {
	for _, d := range Doctors {
		if d.ID == id {
			return d, true
		}
	}
	return RosterDoctor{}, false
}

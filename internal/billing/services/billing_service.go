package services

import (
	"fmt"
	"strings"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
)

// Subtotal menjumlahkan lima komponen biaya di luar biaya layanan.
func Subtotal(r *models.PatientRecord) float64 {
	return r.RoomCharge + r.TreatmentCharge + r.PharmacyCharge + r.LabCharge + r.DoctorFee
}

// GrandTotal selalu dihitung ulang dari field biaya, tidak pernah disimpan.
func GrandTotal(r *models.PatientRecord) float64 {
	return Subtotal(r) + r.ServiceCharge
}

// BillText menyusun tagihan lengkap dalam format yang sama dengan versi CLI.
// Bisa dipanggil kapan saja, termasuk untuk pasien yang sudah discharged.
func BillText(r *models.PatientRecord) string {
	var b strings.Builder
	b.WriteString("******SANJIVNI HOSPITAL BILL******\n")
	b.WriteString("Patient details:\n")
	fmt.Fprintf(&b, "Patient id: %d\n", r.ID)
	fmt.Fprintf(&b, "Patient name: %s\n", r.Name)
	fmt.Fprintf(&b, "Age: %d\n", r.Age)
	fmt.Fprintf(&b, "Patient address: %s\n", r.Address)
	fmt.Fprintf(&b, "Admission date: %s\n", r.AdmitDate)
	fmt.Fprintf(&b, "Discharge date: %s\n", r.DischargeDate)
	fmt.Fprintf(&b, "Bed id: %s\n", r.BedID)
	fmt.Fprintf(&b, "Room charges: %g\n", r.RoomCharge)
	fmt.Fprintf(&b, "Treatment charges: %g\n", r.TreatmentCharge)
	fmt.Fprintf(&b, "Pharmacy charges: %g\n", r.PharmacyCharge)
	fmt.Fprintf(&b, "Lab charges: %g\n", r.LabCharge)
	if r.AssignedDoctor != nil {
		fmt.Fprintf(&b, "Assigned doctor: %s (%s)\n", r.AssignedDoctor.Name, r.AssignedDoctor.Specialty)
		fmt.Fprintf(&b, "Doctor fee: %g\n", r.DoctorFee)
	} else {
		b.WriteString("Assigned doctor: None\n")
		b.WriteString("Doctor fee: 0\n")
	}
	fmt.Fprintf(&b, "Your sub total bill is: %g\n", Subtotal(r))
	fmt.Fprintf(&b, "Additional Service Charges is %g\n", r.ServiceCharge)
	b.WriteString("====================================\n")
	fmt.Fprintf(&b, "Your grandtotal bill is: %g", GrandTotal(r))
	return b.String()
}

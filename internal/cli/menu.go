package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	"github.com/sanjivni/hospital-backend/internal/admission/services"
	billing "github.com/sanjivni/hospital-backend/internal/billing/services"
	"github.com/sanjivni/hospital-backend/internal/catalog"
)

// Menu adalah front-end terminal bernomor. Reader/writer disuntikkan supaya
// alurnya bisa diuji dengan skrip input.
type Menu struct {
	Service *services.PatientService

	in      *bufio.Scanner
	out     io.Writer
	current *models.PatientRecord
	eof     bool
}

func NewMenu(service *services.PatientService, in io.Reader, out io.Writer) *Menu {
	return &Menu{Service: service, in: bufio.NewScanner(in), out: out}
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) readLine(prompt string) string {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		m.eof = true
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

// readInt membaca satu angka; input tidak valid dilaporkan lewat ok=false.
func (m *Menu) readInt(prompt string) (int, bool) {
	n, err := strconv.Atoi(m.readLine(prompt))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Run menjalankan loop menu sampai pilihan "Save & Exit".
func (m *Menu) Run() error {
	for {
		m.printf("\n1.Enter Patient Data\n")
		m.printf("2.Select bed / calculate bed charges\n")
		m.printf("3.Add treatment / procedure charges\n")
		m.printf("4.Add pharmacy charges\n")
		m.printf("5.Add lab tests\n")
		m.printf("6.Show total bill\n")
		m.printf("7.Patients (persisted)\n")
		m.printf("8.List doctors\n")
		m.printf("9.Assign doctor to current patient\n")
		m.printf("10.Discharge current patient\n")
		m.printf("11.Save & Exit\n")

		choice, ok := m.readInt("enter your choice:")
		if !ok {
			// Input habis (mis. stdin ditutup): simpan lalu keluar rapi.
			if m.eof {
				return m.Service.Save()
			}
			m.printf("Please enter a number from the menu\n")
			continue
		}

		switch choice {
		case 1:
			m.createPatient()
		case 2:
			m.selectBed()
		case 3:
			m.lineItemMenu(catalog.CategoryTreatment, "*****TREATMENT / PROCEDURE MENU*****")
		case 4:
			m.lineItemMenu(catalog.CategoryPharmacy, "*****PHARMACY / MEDICINES MENU*****")
		case 5:
			m.lineItemMenu(catalog.CategoryLab, "*****LAB TESTS MENU*****")
		case 6:
			if !m.requireCurrent() {
				continue
			}
			m.printf("%s\n\n", billing.BillText(m.current))
		case 7:
			for _, r := range m.Service.List() {
				b, _ := json.Marshal(r)
				m.printf("%s\n", b)
			}
		case 8:
			for _, d := range catalog.Doctors {
				m.printf("%d. %s - %s - Fee: Rs %g\n", d.ID, d.Name, d.Specialty, d.Fee)
			}
		case 9:
			m.assignDoctor()
		case 10:
			m.discharge()
		case 11:
			if err := m.Service.Save(); err != nil {
				return err
			}
			m.printf("Saved. Exiting.\n")
			return nil
		default:
			m.printf("Choose a valid menu option\n")
		}
	}
}

func (m *Menu) requireCurrent() bool {
	if m.current == nil {
		m.printf("please enter Patient data first\n")
		return false
	}
	return true
}

func (m *Menu) createPatient() {
	name := m.readLine("Enter patient name:")
	// Umur yang tidak valid dipaksa menjadi 0, tidak pernah gagal.
	age, _ := strconv.Atoi(m.readLine("Enter patient age:"))
	address := m.readLine("Enter patient address:")
	admitDate := m.readLine("Enter admission date:")
	dischargeDate := m.readLine("Enter expected discharge date:")

	r, err := m.Service.CreatePatient(name, age, address, admitDate, dischargeDate)
	if err != nil {
		m.printf("Error creating patient: %v\n", err)
		return
	}
	m.current = r
	m.printf("Patient created with id %d\n", r.ID)
}

func (m *Menu) selectBed() {
	if !m.requireCurrent() {
		return
	}
	available := m.Service.AvailableBeds()

	m.printf("We have the following bed types available (only unused beds shown):\n")
	for i, bt := range catalog.BedTypes {
		m.printf("%d. %s -----> Rs %g PN | Available: %d\n", i+1, bt.Name, bt.Rate, len(available[bt.Name]))
	}

	choice, ok := m.readInt("Enter your choice (1-4):")
	if !ok || choice < 1 || choice > len(catalog.BedTypes) {
		m.printf("Invalid input. Please enter numbers.\n")
		return
	}
	typeName := catalog.BedTypes[choice-1].Name
	free := available[typeName]
	if len(free) == 0 {
		m.printf("No beds available of this type. Choose another type.\n")
		return
	}
	m.printf("Available beds: %s\n", strings.Join(free, ", "))

	bedID := m.readLine("Enter bed id from the above list (e.g. ICU-1):")
	nights, ok := m.readInt("For how many nights will the patient stay:")
	if !ok {
		m.printf("Invalid input.\n")
		return
	}
	listed := false
	for _, id := range free {
		if id == bedID {
			listed = true
			break
		}
	}
	if !listed {
		m.printf("Invalid or already used bed id\n")
		return
	}

	if _, err := m.Service.AssignBed(m.current.ID, bedID, nights); err != nil {
		m.printf("Error assigning bed: %v\n", err)
		return
	}
	m.printf("Bed assigned: %s\n", m.current.BedID)
	m.printf("Room charges = Rs %g\n\n", m.current.RoomCharge)
}

// lineItemMenu menjalankan submenu satu kategori sampai pilihan keluar.
func (m *Menu) lineItemMenu(cat catalog.Category, header string) {
	if !m.requireCurrent() {
		return
	}
	items, _ := catalog.ItemsFor(cat)

	m.printf("%s\n", header)
	for i, it := range items {
		m.printf("%d. %s -----> Rs %g\n", i+1, it.Label, it.Price)
	}
	m.printf("%d. Exit\n", len(items)+1)

	for {
		c, ok := m.readInt("Enter your choice:")
		if !ok {
			if m.eof {
				return
			}
			m.printf("Please enter a number\n")
			continue
		}
		if c == len(items)+1 {
			break
		}
		if c < 1 || c > len(items) {
			m.printf("Invalid option\n")
			continue
		}

		// Kuantitas yang tidak valid diperlakukan sebagai 1, seperti CLI lama.
		qty, ok := m.readInt("Enter quantity (enter 1 if not applicable):")
		if !ok {
			qty = 1
		}
		if _, err := m.Service.AddLineItem(m.current.ID, cat, items[c-1].Key, qty); err != nil {
			m.printf("Error: %v\n", err)
			return
		}
	}

	switch cat {
	case catalog.CategoryTreatment:
		m.printf("Total Treatment Charges=Rs %g\n\n", m.current.TreatmentCharge)
	case catalog.CategoryPharmacy:
		m.printf("Total Pharmacy Cost=Rs %g\n\n", m.current.PharmacyCharge)
	case catalog.CategoryLab:
		m.printf("Total Lab Charges=Rs %g\n\n", m.current.LabCharge)
	}
}

func (m *Menu) assignDoctor() {
	if !m.requireCurrent() {
		return
	}
	line := m.readLine("Enter doctor id to assign (use option 8 to list doctors, leave empty for custom doctor):")
	if line == "" {
		name := m.readLine("Enter custom doctor name:")
		specialty := m.readLine("Enter custom doctor specialty:")
		fee, _ := strconv.ParseFloat(m.readLine("Enter custom doctor fee:"), 64)
		if _, err := m.Service.AssignCustomDoctor(m.current.ID, name, specialty, fee); err != nil {
			m.printf("Error assigning doctor: %v\n", err)
			return
		}
		m.printf("Assigned custom doctor: %s - Fee: Rs %g\n", name, m.current.DoctorFee)
		return
	}

	did, err := strconv.Atoi(line)
	if err != nil {
		m.printf("Error assigning doctor: invalid doctor id\n")
		return
	}
	if _, err := m.Service.AssignDoctor(m.current.ID, did); err != nil {
		m.printf("Error assigning doctor: %v\n", err)
		return
	}
	d := m.current.AssignedDoctor
	m.printf("Assigned doctor: %s (%s) - Fee: Rs %g\n", d.Name, d.Specialty, d.Fee)
}

func (m *Menu) discharge() {
	if !m.requireCurrent() {
		return
	}
	ddate := m.readLine("Enter discharge date (leave empty to keep expected date):")
	_, already, err := m.Service.Discharge(m.current.ID, ddate)
	if err != nil {
		m.printf("Error discharging patient: %v\n", err)
		return
	}
	if already {
		m.printf("Patient already discharged\n")
		return
	}
	m.printf("Patient %d discharged. Bed %s is now free.\n", m.current.ID, m.current.BedID)
}

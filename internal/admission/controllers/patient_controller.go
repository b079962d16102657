package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	"github.com/sanjivni/hospital-backend/internal/admission/services"
	"github.com/sanjivni/hospital-backend/internal/catalog"
	"github.com/sanjivni/hospital-backend/ws"
)

// PatientController menangani seluruh operasi record pasien untuk form web.
type PatientController struct {
	Service *services.PatientService
}

func NewPatientController(service *services.PatientService) *PatientController {
	return &PatientController{Service: service}
}

// patientID membaca path param :id.
func patientID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// errorJSON memetakan error domain ke HTTP status dengan envelope standar.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrDischarged):
		status = http.StatusConflict
	case errors.Is(err, models.ErrUnknownBedType),
		errors.Is(err, models.ErrUnknownItem),
		errors.Is(err, models.ErrUnknownDoctor):
		status = http.StatusBadRequest
	}
	return c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": err.Error(),
		"data":    nil,
	})
}

// RegisterPatient mendaftarkan pasien baru + broadcast WS
func (pc *PatientController) RegisterPatient(c echo.Context) error {
	var req models.PatientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	r, err := pc.Service.CreatePatient(req.Name, req.Age, req.Address, req.AdmitDate, req.DischargeDate)
	if err != nil {
		return errorJSON(c, err)
	}

	ws.HubInstance.NotifyRecordChanged("patient_created", r.ID)
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  http.StatusCreated,
		"message": "Patient registered successfully",
		"data":    r,
	})
}

// ListPatients mengembalikan seluruh koleksi untuk panel daftar pasien.
func (pc *PatientController) ListPatients(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Patients retrieved successfully",
		"data":    pc.Service.List(),
	})
}

// GetPatient mengembalikan satu record; dipakai tombol "view info" / "load
// form" dan tidak mengubah apa pun.
func (pc *PatientController) GetPatient(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}
	r, err := pc.Service.Get(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Patient retrieved successfully",
		"data":    r,
	})
}

// UpdateIdentity menimpa field identitas pasien.
func (pc *PatientController) UpdateIdentity(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}
	var req models.PatientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	r, err := pc.Service.SetIdentity(id, req.Name, req.Age, req.Address, req.AdmitDate, req.DischargeDate)
	if err != nil {
		return errorJSON(c, err)
	}

	ws.HubInstance.NotifyRecordChanged("patient_updated", r.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Patient updated successfully",
		"data":    r,
	})
}

// AssignBed menetapkan bed dan menghitung biaya kamar.
func (pc *PatientController) AssignBed(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}
	var req models.AssignBedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.BedID == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "bed_id is required",
			"data":    nil,
		})
	}

	r, err := pc.Service.AssignBed(id, req.BedID, req.Nights)
	if err != nil {
		return errorJSON(c, err)
	}

	ws.HubInstance.NotifyRecordChanged("patient_updated", r.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Bed assigned successfully",
		"data":    r,
	})
}

// lineItem menangani POST (tambah) dan PUT (timpa) item berharga.
func (pc *PatientController) lineItem(c echo.Context, overwrite bool) error {
	id, err := patientID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}
	var req models.LineItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	var r *models.PatientRecord
	if overwrite {
		r, err = pc.Service.SetLineItem(id, catalog.Category(req.Category), req.Item, req.Quantity)
	} else {
		r, err = pc.Service.AddLineItem(id, catalog.Category(req.Category), req.Item, req.Quantity)
	}
	if err != nil {
		return errorJSON(c, err)
	}

	ws.HubInstance.NotifyRecordChanged("patient_updated", r.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Line items updated successfully",
		"data":    r,
	})
}

func (pc *PatientController) AddLineItem(c echo.Context) error {
	return pc.lineItem(c, false)
}

func (pc *PatientController) SetLineItem(c echo.Context) error {
	return pc.lineItem(c, true)
}

// AssignDoctor menugaskan dokter roster (doctor_id > 0) atau dokter ad-hoc.
func (pc *PatientController) AssignDoctor(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}
	var req models.AssignDoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	var r *models.PatientRecord
	switch {
	case req.DoctorID > 0:
		r, err = pc.Service.AssignDoctor(id, req.DoctorID)
	case req.Name != "":
		r, err = pc.Service.AssignCustomDoctor(id, req.Name, req.Specialty, req.Fee)
	default:
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "doctor_id or name is required",
			"data":    nil,
		})
	}
	if err != nil {
		return errorJSON(c, err)
	}

	ws.HubInstance.NotifyRecordChanged("patient_updated", r.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Doctor assigned successfully",
		"data":    r,
	})
}

// ClearDoctor menghapus penugasan dokter.
func (pc *PatientController) ClearDoctor(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}

	r, err := pc.Service.ClearDoctor(id)
	if err != nil {
		return errorJSON(c, err)
	}

	ws.HubInstance.NotifyRecordChanged("patient_updated", r.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Doctor cleared successfully",
		"data":    r,
	})
}

// Discharge memulangkan pasien. Pasien yang sudah pulang dilaporkan sebagai
// no-op, bukan error.
func (pc *PatientController) Discharge(c echo.Context) error {
	id, err := patientID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}
	var req models.DischargeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	r, already, err := pc.Service.Discharge(id, req.DischargeDate)
	if err != nil {
		return errorJSON(c, err)
	}
	if already {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  http.StatusOK,
			"message": "Patient already discharged",
			"data":    r,
		})
	}

	ws.HubInstance.NotifyRecordChanged("patient_discharged", r.ID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Patient discharged successfully",
		"data":    r,
	})
}

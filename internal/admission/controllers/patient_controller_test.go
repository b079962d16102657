package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	"github.com/sanjivni/hospital-backend/internal/admission/services"
	"github.com/sanjivni/hospital-backend/pkg/storage/jsonstore"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestController(t *testing.T) *PatientController {
	t.Helper()
	store := jsonstore.New(filepath.Join(t.TempDir(), "patients_data.json"))
	return NewPatientController(services.NewPatientService(store))
}

// call menjalankan satu handler dengan body JSON dan path param :id opsional.
func call(t *testing.T, h echo.HandlerFunc, method, body string, id int) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != 0 {
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(id))
	}
	require.NoError(t, h(c))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func createPatient(t *testing.T, pc *PatientController) *models.PatientRecord {
	t.Helper()
	body := `{"name":"Asha","age":30,"address":"Pune","admit_date":"2024-01-01"}`
	rec, env := call(t, pc.RegisterPatient, http.MethodPost, body, 0)
	require.Equal(t, http.StatusCreated, rec.Code)

	var r models.PatientRecord
	require.NoError(t, json.Unmarshal(env.Data, &r))
	return &r
}

func TestRegisterPatient(t *testing.T) {
	pc := newTestController(t)
	r := createPatient(t, pc)

	assert.Equal(t, 1, r.ID)
	assert.Equal(t, "Asha", r.Name)
	assert.Equal(t, 500.0, r.ServiceCharge)
}

func TestGetPatientNotFound(t *testing.T) {
	pc := newTestController(t)
	rec, env := call(t, pc.GetPatient, http.MethodGet, "", 99)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestAssignBedUnknownTypeReturns400(t *testing.T) {
	pc := newTestController(t)
	r := createPatient(t, pc)

	rec, env := call(t, pc.AssignBed, http.MethodPost, `{"bed_id":"Penthouse-1","nights":2}`, r.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "unknown bed type")
}

func TestAssignBedComputesRoomCharge(t *testing.T) {
	pc := newTestController(t)
	r := createPatient(t, pc)

	rec, env := call(t, pc.AssignBed, http.MethodPost, `{"bed_id":"ICU-1","nights":3}`, r.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var back models.PatientRecord
	require.NoError(t, json.Unmarshal(env.Data, &back))
	assert.Equal(t, 36000.0, back.RoomCharge)
	assert.Equal(t, "ICU-1", back.BedID)
}

func TestAddLineItemAndCorrection(t *testing.T) {
	pc := newTestController(t)
	r := createPatient(t, pc)

	rec, env := call(t, pc.AddLineItem, http.MethodPost,
		`{"category":"treatment","item":"MinorProcedure","quantity":2}`, r.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var back models.PatientRecord
	require.NoError(t, json.Unmarshal(env.Data, &back))
	assert.Equal(t, 8000.0, back.TreatmentCharge)

	// PUT menimpa kuantitas, bukan menambah.
	rec, env = call(t, pc.SetLineItem, http.MethodPut,
		`{"category":"treatment","item":"MinorProcedure","quantity":1}`, r.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &back))
	assert.Equal(t, 4000.0, back.TreatmentCharge)
}

func TestAssignDoctorRosterAndCustom(t *testing.T) {
	pc := newTestController(t)
	r := createPatient(t, pc)

	rec, env := call(t, pc.AssignDoctor, http.MethodPost, `{"doctor_id":2}`, r.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var back models.PatientRecord
	require.NoError(t, json.Unmarshal(env.Data, &back))
	require.NotNil(t, back.AssignedDoctor)
	assert.Equal(t, "Dr. P. Rao", back.AssignedDoctor.Name)
	assert.Equal(t, 1500.0, back.DoctorFee)

	rec, env = call(t, pc.AssignDoctor, http.MethodPost,
		`{"name":"Dr. X","specialty":"Neurology","fee":900}`, r.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &back))
	require.NotNil(t, back.AssignedDoctor)
	assert.True(t, back.AssignedDoctor.IsCustom())
	assert.Equal(t, 900.0, back.DoctorFee)

	rec, _ = call(t, pc.AssignDoctor, http.MethodPost, `{}`, r.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDischargeThenMutationConflict(t *testing.T) {
	pc := newTestController(t)
	r := createPatient(t, pc)

	rec, env := call(t, pc.Discharge, http.MethodPost, `{"discharge_date":"2024-01-04"}`, r.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Patient discharged successfully", env.Message)

	// Discharge kedua adalah no-op yang dilaporkan, bukan error.
	rec, env = call(t, pc.Discharge, http.MethodPost, `{}`, r.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Patient already discharged", env.Message)

	rec, _ = call(t, pc.AddLineItem, http.MethodPost,
		`{"category":"lab","item":"MRI","quantity":1}`, r.ID)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

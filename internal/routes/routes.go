package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	admissionControllers "github.com/sanjivni/hospital-backend/internal/admission/controllers"
	admissionServices "github.com/sanjivni/hospital-backend/internal/admission/services"
	billingControllers "github.com/sanjivni/hospital-backend/internal/billing/controllers"
	"github.com/sanjivni/hospital-backend/internal/metrics"
	"github.com/sanjivni/hospital-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, svc *admissionServices.PatientService) {
	e.Use(metrics.Middleware)

	// Inisialisasi controller dengan service yang sesuai
	patientController := admissionControllers.NewPatientController(svc)
	bedController := admissionControllers.NewBedController(svc)
	catalogController := admissionControllers.NewCatalogController()
	billingController := billingControllers.NewBillingController(svc)

	api := e.Group("/api")

	api.POST("/patients", patientController.RegisterPatient)
	api.GET("/patients", patientController.ListPatients)
	api.GET("/patients/:id", patientController.GetPatient)
	api.PUT("/patients/:id", patientController.UpdateIdentity)
	api.POST("/patients/:id/bed", patientController.AssignBed)
	api.POST("/patients/:id/items", patientController.AddLineItem)
	api.PUT("/patients/:id/items", patientController.SetLineItem)
	api.POST("/patients/:id/doctor", patientController.AssignDoctor)
	api.DELETE("/patients/:id/doctor", patientController.ClearDoctor)
	api.POST("/patients/:id/discharge", patientController.Discharge)
	api.GET("/patients/:id/bill", billingController.Bill)

	api.GET("/beds/available", bedController.AvailableBeds)

	api.GET("/catalog/beds", catalogController.BedTypes)
	api.GET("/catalog/prices", catalogController.Prices)
	api.GET("/catalog/doctors", catalogController.Doctors)

	e.GET("/ws", ws.ServeWS(ws.HubInstance))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
	})
}

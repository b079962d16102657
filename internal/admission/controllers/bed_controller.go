package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanjivni/hospital-backend/internal/admission/services"
)

// BedController menangani permintaan ketersediaan bed.
type BedController struct {
	Service *services.PatientService
}

func NewBedController(service *services.PatientService) *BedController {
	return &BedController{Service: service}
}

// AvailableBeds mengembalikan bed kosong per tipe dalam urutan nomor naik.
// Hasil ini advisory: penetapan bed tidak memeriksa ulang okupansi.
func (bc *BedController) AvailableBeds(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Available beds retrieved successfully",
		"data":    bc.Service.AvailableBeds(),
	})
}

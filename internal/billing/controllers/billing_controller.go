package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanjivni/hospital-backend/internal/admission/models"
	admissionServices "github.com/sanjivni/hospital-backend/internal/admission/services"
	"github.com/sanjivni/hospital-backend/internal/billing/services"
)

// BillingController menangani permintaan tagihan. Murni baca: tagihan bisa
// diminta kapan saja, termasuk untuk pasien yang sudah discharged.
type BillingController struct {
	Service *admissionServices.PatientService
}

func NewBillingController(service *admissionServices.PatientService) *BillingController {
	return &BillingController{Service: service}
}

// Bill mengembalikan rincian biaya, subtotal, grand total, dan teks tagihan.
func (bc *BillingController) Bill(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid patient id",
			"data":    nil,
		})
	}

	r, err := bc.Service.Get(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, map[string]interface{}{
			"status":  status,
			"message": err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Bill retrieved successfully",
		"data": map[string]interface{}{
			"patient":     r,
			"subtotal":    services.Subtotal(r),
			"grand_total": services.GrandTotal(r),
			"bill_text":   services.BillText(r),
		},
	})
}

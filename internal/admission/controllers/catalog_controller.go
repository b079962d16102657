package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanjivni/hospital-backend/internal/catalog"
)

// CatalogController mengekspos data referensi statis: tipe bed, daftar harga,
// dan roster dokter. Tidak ada mutasi.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

type priceItemView struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

func priceList(items []catalog.PriceItem) []priceItemView {
	out := make([]priceItemView, 0, len(items))
	for _, it := range items {
		out = append(out, priceItemView{Key: it.Key, Label: it.Label, Price: it.Price})
	}
	return out
}

// BedTypes mengembalikan tipe kamar beserta tarif per malam dan kapasitas.
func (cc *CatalogController) BedTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Bed types retrieved successfully",
		"data": map[string]interface{}{
			"types":         catalog.BedTypes,
			"beds_per_type": catalog.BedsPerType,
		},
	})
}

// Prices mengembalikan ketiga daftar harga sekaligus untuk form.
func (cc *CatalogController) Prices(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Price lists retrieved successfully",
		"data": map[string]interface{}{
			"treatment": priceList(catalog.TreatmentItems),
			"pharmacy":  priceList(catalog.PharmacyItems),
			"lab":       priceList(catalog.LabItems),
		},
	})
}

// Doctors mengembalikan roster dokter tetap.
func (cc *CatalogController) Doctors(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Doctors retrieved successfully",
		"data":    catalog.Doctors,
	})
}

package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request counter
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration histogram
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Business metrics
	PatientsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "patients_created_total",
			Help: "Total number of patient records created",
		},
	)

	DischargesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "patient_discharges_total",
			Help: "Total number of patients discharged",
		},
	)

	StoreSavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_saves_total",
			Help: "Total number of full-collection writes to the data file",
		},
	)

	StoreSaveFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_save_failures_total",
			Help: "Total number of failed writes to the data file",
		},
	)

	WSClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_clients_connected",
			Help: "Number of websocket clients currently connected",
		},
	)
)

// Middleware mencatat counter dan durasi request per route.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}
		code := strconv.Itoa(status)
		HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, code).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request().Method, path, code).Observe(time.Since(start).Seconds())
		return err
	}
}

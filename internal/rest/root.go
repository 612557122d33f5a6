package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type RootHandler struct {
	name    string
	version string
}

func NewRootHandler(name, version string) *RootHandler {
	return &RootHandler{name: name, version: version}
}

func (h *RootHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": h.name + " is running",
		"version": h.version,
		"endpoints": map[string]string{
			"POST /api/v1/recommend":                   "Generate university recommendations",
			"GET /api/v1/recommend/explain":            "Full scored ranking for a profile",
			"POST /api/v1/review":                      "Submit counselor review",
			"GET /api/v1/analytics":                    "Get platform analytics",
			"GET /api/v1/students":                     "Get all students",
			"GET /api/v1/students/:id/recommendations": "Stored recommendations of a student",
			"GET /api/v1/universities":                 "Get all universities",
			"POST /api/v1/scrape":                      "Refresh the university catalog",
			"GET /api/v1/scrape/runs":                  "Recent catalog refreshes",
			"GET /metrics":                             "Prometheus metrics",
			"GET /healthz":                             "Liveness check",
		},
	})
}

func (h *RootHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

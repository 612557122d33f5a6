package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"eduintel/domain"
	"eduintel/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type IngestService interface {
	Run(ctx context.Context) (domain.CatalogIngestRun, error)
	RecentRuns(ctx context.Context, limit int) ([]domain.CatalogIngestRun, error)
}

type IngestHandler struct {
	service IngestService
	timeout time.Duration
}

func NewIngestHandler(service IngestService, timeout time.Duration) *IngestHandler {
	return &IngestHandler{
		service: service,
		timeout: timeout,
	}
}

type scrapeReport struct {
	ScrapedCount int                    `json:"scraped_count"`
	Upserted     int                    `json:"upserted"`
	Rejected     int                    `json:"rejected"`
	UsedSeed     bool                   `json:"used_seed"`
	Source       string                 `json:"source"`
	Rejections   map[string]interface{} `json:"rejections,omitempty"`
}

func (h *IngestHandler) Scrape(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	run, err := h.service.Run(ctx)
	if err != nil {
		logger.Error("Catalog ingest failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scrapeReport{
		ScrapedCount: run.Fetched,
		Upserted:     run.Upserted,
		Rejected:     run.Rejected,
		UsedSeed:     run.UsedSeed,
		Source:       run.Source,
		Rejections:   run.Rejections,
	}))
}

func (h *IngestHandler) ListRuns(c echo.Context) error {
	var limit int
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	runs, err := h.service.RecentRuns(ctx, limit)
	if err != nil {
		logger.Error("Failed to list ingest runs", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(runs))
}

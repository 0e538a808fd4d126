package handler

import (
	"net/http"
	"time"

	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles report-related HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary returns totals and category breakdowns for a date range.
// Defaults to the current calendar month when no range is given.
func (h *ReportHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	startDate, endDate, err := parseRange(c)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	summary, err := h.reportService.GetFinancialSummary(userID, startDate, endDate)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetTrend returns a daily income/expense series for a date range
func (h *ReportHandler) GetTrend(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	startDate, endDate, err := parseRange(c)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	series, err := h.reportService.GetTrendReport(userID, startDate, endDate)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, series)
}

func parseRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endDate = parsed
	}
	return startDate, endDate, nil
}

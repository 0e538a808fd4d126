package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReceiptHandler handles receipt image uploads for transactions
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// AttachReceipt stores a receipt image for a transaction from a multipart
// form field named "file"
func (h *ReceiptHandler) AttachReceipt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewValidationError(c, "Missing file", []ValidationError{
			{Field: "file", Message: "A receipt image file is required"},
		})
	}
	if fileHeader.Size > service.MaxReceiptSize {
		return NewValidationError(c, service.ErrReceiptTooLarge.Error(), nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return NewInternalError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxReceiptSize+1))
	if err != nil {
		return NewInternalError(c, "Failed to read uploaded file")
	}

	urls, err := h.receiptService.Attach(c.Request().Context(), userID, id, data, fileHeader.Filename)
	if err != nil {
		return respondReceiptError(c, err)
	}
	return c.JSON(http.StatusCreated, urls)
}

// GetReceiptURLs returns presigned URLs for a transaction's receipt
func (h *ReceiptHandler) GetReceiptURLs(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	urls, err := h.receiptService.URLs(c.Request().Context(), userID, id)
	if err != nil {
		return respondReceiptError(c, err)
	}
	return c.JSON(http.StatusOK, urls)
}

// DetachReceipt removes a transaction's receipt
func (h *ReceiptHandler) DetachReceipt(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	if err := h.receiptService.Detach(c.Request().Context(), userID, id); err != nil {
		return respondReceiptError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func respondReceiptError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrReceiptTooLarge),
		errors.Is(err, service.ErrReceiptInvalidFormat),
		errors.Is(err, service.ErrReceiptTooSmall),
		errors.Is(err, service.ErrReceiptInvalidData):
		return NewValidationError(c, err.Error(), nil)
	case errors.Is(err, service.ErrReceiptNotAttached):
		return NewNotFoundError(c, err.Error())
	case errors.Is(err, service.ErrReceiptStorageUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
			Type:     ErrorTypeInternal,
			Title:    "Service Unavailable",
			Status:   http.StatusServiceUnavailable,
			Detail:   err.Error(),
			Instance: c.Request().URL.Path,
		})
	default:
		return respondServiceError(c, err)
	}
}

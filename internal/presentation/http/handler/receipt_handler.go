package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alqaim/estates-api/internal/application/service"
	"github.com/alqaim/estates-api/internal/presentation/http/dto/response"
	"github.com/alqaim/estates-api/pkg/apperror"
)

// ReceiptHandler streams payment receipts as PDF downloads
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Download builds the receipt for a payment and streams it as an attachment.
// The document is fully composed before any header or body byte is written,
// so a missing payment yields a clean JSON 404 with no partial PDF output.
func (h *ReceiptHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	render, err := h.receiptService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		appErr := apperror.GetAppError(err)
		if appErr.Code == http.StatusNotFound {
			// Receipt download clients expect this exact error shape.
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename=`+render.Filename)
	c.Status(http.StatusOK)

	if err := h.receiptService.WriteReceipt(c.Request.Context(), render, c.Writer); err != nil {
		// Headers are already sent; all we can do is record the failure.
		_ = c.Error(err)
	}
}

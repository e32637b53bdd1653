package handler

import (
	"errors"
	"fmt"
	"net/http"

	"pledgestack/internal/apierrors"
	"pledgestack/internal/observability"
	"pledgestack/internal/reporting/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReportProcessor
	logger    *observability.Logger
}

func New(processor processor.ReportProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrFundraiserNotFound):
		apierrors.NotFound(c, "Fundraiser not found")
	case errors.Is(err, processor.ErrNotAuthorized):
		apierrors.Forbidden(c, "NOT_AUTHORIZED", "You are not authorized to export this fundraiser's reports")
	default:
		apierrors.InternalError(c, err)
	}
}

func (h *Handler) exportParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID := c.MustGet("User-ID")
	caller, err := uuid.Parse(userID.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
		return uuid.Nil, uuid.Nil, false
	}

	fundraiserID, err := uuid.Parse(c.Param("fundraiserID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid fundraiser ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return caller, fundraiserID, true
}

func (h *Handler) HandleExportPledges(c *gin.Context) {
	ctx := c.Request.Context()

	caller, fundraiserID, ok := h.exportParams(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("pledges-%s.csv", fundraiserID)))
	if err := h.processor.ExportPledgesCSV(ctx, caller, fundraiserID, c.Writer); err != nil {
		// Headers may already be written, so the error mapping only helps
		// when authorization failed before the first byte.
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) HandleExportCharges(c *gin.Context) {
	ctx := c.Request.Context()

	caller, fundraiserID, ok := h.exportParams(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("charges-%s.csv", fundraiserID)))
	if err := h.processor.ExportChargesCSV(ctx, caller, fundraiserID, c.Writer); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

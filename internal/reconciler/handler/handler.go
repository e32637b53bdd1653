package handler

import (
	"io"
	"net/http"

	"pledgestack/internal/apierrors"
	"pledgestack/internal/observability"
	"pledgestack/internal/reconciler/processor"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"
)

type Handler struct {
	processor *processor.WebhookProcessor
	logger    *observability.Logger
}

func New(processor *processor.WebhookProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGatewayWebhook verifies the gateway signature and hands the event to
// the reconciler. Signature verification happens here, at the boundary; the
// processor only ever sees verified events.
func (h *Handler) HandleGatewayWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "failed to read request body")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.BadRequest(c, "INVALID_INPUT", "missing Stripe-Signature header")
		return
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, h.processor.WebhookSecret)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "invalid webhook signature")
		return
	}

	if err := h.processor.HandleEvent(ctx, event); err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

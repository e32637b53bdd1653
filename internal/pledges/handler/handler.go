package handler

import (
	"errors"
	"net/http"

	"pledgestack/internal/apierrors"
	"pledgestack/internal/observability"
	"pledgestack/internal/pledges/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.PledgeProcessor
	logger    *observability.Logger
}

func New(processor processor.PledgeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateImmediatePledgeRequest represents a direct donation in HTTP request
type CreateImmediatePledgeRequest struct {
	DonorName  string  `json:"donor_name" binding:"required,min=1"`
	DonorEmail string  `json:"donor_email" binding:"required,email"`
	DonorPhone *string `json:"donor_phone,omitempty"`
	Amount     int64   `json:"amount" binding:"required,gt=0"`
	DonorTip   int64   `json:"donor_tip" binding:"gte=0"`
}

// CreateDeferredPledgeRequest represents a performance pledge in HTTP request
type CreateDeferredPledgeRequest struct {
	DonorName  string  `json:"donor_name" binding:"required,min=1"`
	DonorEmail string  `json:"donor_email" binding:"required,email"`
	DonorPhone *string `json:"donor_phone,omitempty"`
	BaseAmount int64   `json:"base_amount" binding:"required,gt=0"`
	CapAmount  *int64  `json:"cap_amount,omitempty" binding:"omitempty,gt=0"`
}

// ConfirmAuthorizationRequest represents the donor-side confirmation callback
type ConfirmAuthorizationRequest struct {
	PaymentMethodRef string `json:"payment_method_ref" binding:"required"`
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrFundraiserNotFound):
		apierrors.NotFound(c, "Fundraiser not found")
	case errors.Is(err, processor.ErrPledgeNotFound):
		apierrors.NotFound(c, "Pledge not found")
	case errors.Is(err, processor.ErrFundraiserUnavailable):
		apierrors.Conflict(c, "FUNDRAISER_UNAVAILABLE", "Fundraiser is not accepting pledges")
	case errors.Is(err, processor.ErrWrongFundraiserKind):
		apierrors.BadRequest(c, "WRONG_FUNDRAISER_KIND", "Operation not valid for this fundraiser kind")
	case errors.Is(err, processor.ErrPayoutNotConfigured):
		apierrors.Conflict(c, "PAYOUT_NOT_CONFIGURED", "Team has not completed payout onboarding")
	case errors.Is(err, processor.ErrPledgeNotConfirmable):
		apierrors.Conflict(c, "PLEDGE_NOT_CONFIRMABLE", "Pledge can no longer be confirmed")
	case errors.Is(err, processor.ErrPledgeNotRefundable):
		apierrors.Conflict(c, "PLEDGE_NOT_REFUNDABLE", "Pledge has no refundable charge")
	case errors.Is(err, processor.ErrNotAuthorized):
		apierrors.Forbidden(c, "NOT_AUTHORIZED", "You are not authorized to refund this pledge")
	default:
		apierrors.InternalError(c, err)
	}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	userID := c.MustGet("User-ID")
	parsed, err := uuid.Parse(userID.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
		return uuid.Nil, false
	}
	return parsed, true
}

func (h *Handler) fundraiserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("fundraiserID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid fundraiser ID format")
		return uuid.Nil, false
	}
	return id, true
}

// HandleCreateImmediatePledge opens a direct donation
func (h *Handler) HandleCreateImmediatePledge(c *gin.Context) {
	ctx := c.Request.Context()

	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	var req CreateImmediatePledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.CreateImmediatePledge(ctx, processor.CreateImmediatePledgeParams{
		FundraiserID: fundraiserID,
		Donor: processor.DonorInfo{
			Name:  req.DonorName,
			Email: req.DonorEmail,
			Phone: req.DonorPhone,
		},
		Amount:   req.Amount,
		DonorTip: req.DonorTip,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleCreateDeferredPledge opens a performance pledge
func (h *Handler) HandleCreateDeferredPledge(c *gin.Context) {
	ctx := c.Request.Context()

	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	var req CreateDeferredPledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.CreateDeferredPledge(ctx, processor.CreateDeferredPledgeParams{
		FundraiserID: fundraiserID,
		Donor: processor.DonorInfo{
			Name:  req.DonorName,
			Email: req.DonorEmail,
			Phone: req.DonorPhone,
		},
		BaseAmount: req.BaseAmount,
		CapAmount:  req.CapAmount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleConfirmAuthorization confirms the stored payment method on a
// deferred pledge. The donor UI calls this after the gateway reports the
// setup intent succeeded; the webhook reconciler covers the case where the
// donor closes the tab first.
func (h *Handler) HandleConfirmAuthorization(c *gin.Context) {
	ctx := c.Request.Context()

	pledgeID, err := uuid.Parse(c.Param("pledgeID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid pledge ID format")
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "pledge_id", Value: pledgeID})

	var req ConfirmAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	pledge, err := h.processor.ConfirmDeferredAuthorization(ctx, pledgeID, req.PaymentMethodRef)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pledge)
}

// HandleGetPledge fetches one pledge
func (h *Handler) HandleGetPledge(c *gin.Context) {
	ctx := c.Request.Context()

	pledgeID, err := uuid.Parse(c.Param("pledgeID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid pledge ID format")
		return
	}

	pledge, err := h.processor.GetPledge(ctx, pledgeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pledge)
}

// HandleListPledges lists all pledges for a fundraiser
func (h *Handler) HandleListPledges(c *gin.Context) {
	ctx := c.Request.Context()

	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	pledges, err := h.processor.ListPledges(ctx, fundraiserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pledges": pledges})
}

// HandleRefundPledge refunds a charged pledge in full
func (h *Handler) HandleRefundPledge(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}

	pledgeID, err := uuid.Parse(c.Param("pledgeID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid pledge ID format")
		return
	}

	pledge, err := h.processor.RefundPledge(ctx, caller, pledgeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pledge)
}

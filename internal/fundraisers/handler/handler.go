package handler

import (
	"errors"
	"net/http"

	"pledgestack/internal/apierrors"
	"pledgestack/internal/fundraisers/processor"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.FundraiserProcessor
	logger    *observability.Logger
}

func New(processor processor.FundraiserProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type PerformanceConfigRequest struct {
	MetricName     string `json:"metric_name" binding:"required,min=1"`
	MetricUnit     string `json:"metric_unit" binding:"required,min=1"`
	DefaultPerUnit int64  `json:"default_per_unit" binding:"required,gt=0"`
	DefaultCap     int64  `json:"default_cap" binding:"gte=0"`
}

type CreateFundraiserRequest struct {
	Title       string                    `json:"title" binding:"required,min=1"`
	Description *string                   `json:"description,omitempty"`
	Kind        string                    `json:"kind" binding:"required,oneof=direct_donation performance_pledge"`
	GoalAmount  *int64                    `json:"goal_amount,omitempty" binding:"omitempty,gt=0"`
	Performance *PerformanceConfigRequest `json:"performance,omitempty"`
}

type UpdateFundraiserRequest struct {
	Title       *string                   `json:"title,omitempty" binding:"omitempty,min=1"`
	Description *string                   `json:"description,omitempty"`
	GoalAmount  *int64                    `json:"goal_amount,omitempty" binding:"omitempty,gt=0"`
	Performance *PerformanceConfigRequest `json:"performance,omitempty"`
}

type RecordStatsRequest struct {
	MetricValue int64   `json:"metric_value" binding:"gte=0"`
	Notes       *string `json:"notes,omitempty"`
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrFundraiserNotFound):
		apierrors.NotFound(c, "Fundraiser not found")
	case errors.Is(err, processor.ErrTeamNotFound):
		apierrors.NotFound(c, "Team not found")
	case errors.Is(err, processor.ErrNotAuthorized):
		apierrors.Forbidden(c, "NOT_AUTHORIZED", "You are not authorized to manage this fundraiser")
	case errors.Is(err, processor.ErrInvalidConfig):
		apierrors.BadRequest(c, "INVALID_CONFIG", "Fundraiser configuration does not match its kind")
	case errors.Is(err, processor.ErrNotPublishable):
		apierrors.Conflict(c, "NOT_PUBLISHABLE", "Only draft fundraisers can be published")
	case errors.Is(err, processor.ErrPayoutNotConfigured):
		apierrors.Conflict(c, "PAYOUT_NOT_CONFIGURED", "Team has not completed payout onboarding")
	case errors.Is(err, processor.ErrFundraiserNotEditable):
		apierrors.Conflict(c, "NOT_EDITABLE", "Fundraiser can no longer be edited")
	case errors.Is(err, processor.ErrWrongFundraiserKind):
		apierrors.BadRequest(c, "WRONG_FUNDRAISER_KIND", "Operation not valid for this fundraiser kind")
	case errors.Is(err, processor.ErrFundraiserNotActive):
		apierrors.Conflict(c, "FUNDRAISER_NOT_ACTIVE", "Stats can only be recorded on active fundraisers")
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

func performanceConfig(req *PerformanceConfigRequest) *store.PerformanceConfig {
	if req == nil {
		return nil
	}
	return &store.PerformanceConfig{
		MetricName:     req.MetricName,
		MetricUnit:     req.MetricUnit,
		DefaultPerUnit: req.DefaultPerUnit,
		DefaultCap:     req.DefaultCap,
	}
}

func (h *Handler) HandleCreateFundraiser(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("teamID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid team ID format")
		return
	}

	var req CreateFundraiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	fundraiser, err := h.processor.CreateFundraiser(ctx, caller, processor.CreateFundraiserParams{
		TeamID:      teamID,
		Title:       req.Title,
		Description: req.Description,
		Kind:        store.FundraiserKind(req.Kind),
		GoalAmount:  req.GoalAmount,
		Performance: performanceConfig(req.Performance),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fundraiser)
}

func (h *Handler) HandleUpdateFundraiser(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}
	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	var req UpdateFundraiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	fundraiser, err := h.processor.UpdateFundraiser(ctx, caller, fundraiserID, processor.UpdateFundraiserParams{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		Performance: performanceConfig(req.Performance),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, fundraiser)
}

func (h *Handler) HandlePublishFundraiser(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}
	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	fundraiser, err := h.processor.PublishFundraiser(ctx, caller, fundraiserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, fundraiser)
}

func (h *Handler) HandleGetFundraiser(c *gin.Context) {
	ctx := c.Request.Context()

	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	fundraiser, err := h.processor.GetFundraiser(ctx, fundraiserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, fundraiser)
}

func (h *Handler) HandleListFundraisers(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, err := uuid.Parse(c.Param("teamID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid team ID format")
		return
	}

	fundraisers, err := h.processor.ListFundraisers(ctx, teamID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fundraisers": fundraisers})
}

func (h *Handler) HandleRecordStats(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}
	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	var req RecordStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	entry, err := h.processor.RecordStats(ctx, caller, processor.RecordStatsParams{
		FundraiserID: fundraiserID,
		MetricValue:  req.MetricValue,
		Notes:        req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) HandleListStats(c *gin.Context) {
	ctx := c.Request.Context()

	fundraiserID, ok := h.fundraiserID(c)
	if !ok {
		return
	}

	entries, err := h.processor.ListStats(ctx, fundraiserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": entries})
}

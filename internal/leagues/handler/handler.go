package handler

import (
	"errors"
	"net/http"

	"pledgestack/internal/apierrors"
	"pledgestack/internal/leagues/processor"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.LeagueProcessor
	logger    *observability.Logger
}

func New(processor processor.LeagueProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateLeagueRequest struct {
	Name              string  `json:"name" binding:"required,min=1"`
	Description       *string `json:"description,omitempty"`
	DefaultFeePercent int     `json:"default_fee_percent" binding:"gte=0,lte=100"`
}

type GrantRoleRequest struct {
	Email  string     `json:"email" binding:"required,email"`
	Role   string     `json:"role" binding:"required,oneof=league_admin team_manager"`
	TeamID *uuid.UUID `json:"team_id,omitempty"`
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrLeagueNotFound):
		apierrors.NotFound(c, "League not found")
	case errors.Is(err, processor.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, processor.ErrNotAuthorized):
		apierrors.Forbidden(c, "NOT_AUTHORIZED", "You are not authorized to manage this league")
	case errors.Is(err, processor.ErrInvalidRole):
		apierrors.BadRequest(c, "INVALID_ROLE", "Role and team assignment do not match")
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

func (h *Handler) HandleCreateLeague(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	league, err := h.processor.CreateLeague(ctx, caller, processor.CreateLeagueParams{
		Name:              req.Name,
		Description:       req.Description,
		DefaultFeePercent: req.DefaultFeePercent,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, league)
}

func (h *Handler) HandleGetLeague(c *gin.Context) {
	ctx := c.Request.Context()

	leagueID, err := uuid.Parse(c.Param("leagueID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid league ID format")
		return
	}

	detail, err := h.processor.GetLeague(ctx, leagueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) HandleListLeagues(c *gin.Context) {
	ctx := c.Request.Context()

	leagues, err := h.processor.ListLeagues(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leagues": leagues})
}

func (h *Handler) HandleGrantRole(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}

	leagueID, err := uuid.Parse(c.Param("leagueID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid league ID format")
		return
	}

	var req GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	role, err := h.processor.GrantRole(ctx, caller, processor.GrantRoleParams{
		LeagueID: leagueID,
		Email:    req.Email,
		Role:     store.RoleKind(req.Role),
		TeamID:   req.TeamID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, role)
}

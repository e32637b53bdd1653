package handler

import (
	"errors"
	"net/http"

	"pledgestack/internal/apierrors"
	"pledgestack/internal/observability"
	"pledgestack/internal/teams/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.TeamProcessor
	logger    *observability.Logger
}

func New(processor processor.TeamProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Description *string `json:"description,omitempty"`
	FeePercent  *int    `json:"fee_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrTeamNotFound):
		apierrors.NotFound(c, "Team not found")
	case errors.Is(err, processor.ErrLeagueNotFound):
		apierrors.NotFound(c, "League not found")
	case errors.Is(err, processor.ErrNotAuthorized):
		apierrors.Forbidden(c, "NOT_AUTHORIZED", "You are not authorized to manage this team")
	case errors.Is(err, processor.ErrNotOnboarded):
		apierrors.Conflict(c, "PAYOUT_NOT_CONFIGURED", "Team has not started payout onboarding")
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

func (h *Handler) teamID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("teamID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid team ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) HandleCreateTeam(c *gin.Context) {
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

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	team, err := h.processor.CreateTeam(ctx, caller, processor.CreateTeamParams{
		LeagueID:    leagueID,
		Name:        req.Name,
		Description: req.Description,
		FeePercent:  req.FeePercent,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

func (h *Handler) HandleGetTeam(c *gin.Context) {
	ctx := c.Request.Context()

	teamID, ok := h.teamID(c)
	if !ok {
		return
	}

	team, err := h.processor.GetTeam(ctx, teamID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *Handler) HandleListTeams(c *gin.Context) {
	ctx := c.Request.Context()

	leagueID, err := uuid.Parse(c.Param("leagueID"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid league ID format")
		return
	}

	teams, err := h.processor.ListTeams(ctx, leagueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// HandleStartOnboarding creates or reuses the team's connected account and
// returns an onboarding link.
func (h *Handler) HandleStartOnboarding(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}
	teamID, ok := h.teamID(c)
	if !ok {
		return
	}

	link, err := h.processor.StartOnboarding(ctx, caller, teamID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *Handler) HandleRefreshPayoutStatus(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := callerID(c)
	if !ok {
		return
	}
	teamID, ok := h.teamID(c)
	if !ok {
		return
	}

	team, err := h.processor.RefreshPayoutStatus(ctx, caller, teamID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

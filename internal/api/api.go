package api

import (
	"net/http"

	authHandler "pledgestack/internal/auth/handler"
	fundraiserHandler "pledgestack/internal/fundraisers/handler"
	leagueHandler "pledgestack/internal/leagues/handler"
	pledgeHandler "pledgestack/internal/pledges/handler"
	"pledgestack/internal/ratelimit"
	reconcilerHandler "pledgestack/internal/reconciler/handler"
	reportingHandler "pledgestack/internal/reporting/handler"
	settlementHandler "pledgestack/internal/settlement/handler"
	teamHandler "pledgestack/internal/teams/handler"

	"github.com/gin-gonic/gin"
)

// donationRateLimit is requests per minute per client IP on the public
// donation endpoints.
const donationRateLimit = 30

type API struct {
	router            *gin.RouterGroup
	authHandler       authHandler.Handler
	leagueHandler     leagueHandler.Handler
	teamHandler       teamHandler.Handler
	fundraiserHandler fundraiserHandler.Handler
	pledgeHandler     pledgeHandler.Handler
	settlementHandler settlementHandler.Handler
	reportingHandler  reportingHandler.Handler
	reconcilerHandler reconcilerHandler.Handler
	rateLimiter       *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	leagueHandler leagueHandler.Handler,
	teamHandler teamHandler.Handler,
	fundraiserHandler fundraiserHandler.Handler,
	pledgeHandler pledgeHandler.Handler,
	settlementHandler settlementHandler.Handler,
	reportingHandler reportingHandler.Handler,
	reconcilerHandler reconcilerHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:            router,
		authHandler:       authHandler,
		leagueHandler:     leagueHandler,
		teamHandler:       teamHandler,
		fundraiserHandler: fundraiserHandler,
		pledgeHandler:     pledgeHandler,
		settlementHandler: settlementHandler,
		reportingHandler:  reportingHandler,
		reconcilerHandler: reconcilerHandler,
		rateLimiter:       rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/signup", a.authHandler.HandleSignup)
		authGroup.POST("/login", a.authHandler.HandleLogin)
	}

	// Donor-facing routes. No account needed to donate, so these are public
	// and rate limited per client IP.
	donorGroup := apiGroup.Group("", a.rateLimiter.Middleware(donationRateLimit))
	{
		donorGroup.GET("/fundraisers/:fundraiserID", a.fundraiserHandler.HandleGetFundraiser)
		donorGroup.POST("/fundraisers/:fundraiserID/pledges/immediate", a.pledgeHandler.HandleCreateImmediatePledge)
		donorGroup.POST("/fundraisers/:fundraiserID/pledges/deferred", a.pledgeHandler.HandleCreateDeferredPledge)
		donorGroup.GET("/pledges/:pledgeID", a.pledgeHandler.HandleGetPledge)
		donorGroup.POST("/pledges/:pledgeID/confirm", a.pledgeHandler.HandleConfirmAuthorization)
	}

	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/user", a.authHandler.HandleGetUserInfo)

		protectedGroup.POST("/leagues", a.leagueHandler.HandleCreateLeague)
		protectedGroup.GET("/leagues", a.leagueHandler.HandleListLeagues)
		protectedGroup.GET("/leagues/:leagueID", a.leagueHandler.HandleGetLeague)
		protectedGroup.POST("/leagues/:leagueID/roles", a.leagueHandler.HandleGrantRole)

		protectedGroup.POST("/leagues/:leagueID/teams", a.teamHandler.HandleCreateTeam)
		protectedGroup.GET("/leagues/:leagueID/teams", a.teamHandler.HandleListTeams)
		protectedGroup.GET("/teams/:teamID", a.teamHandler.HandleGetTeam)
		protectedGroup.POST("/teams/:teamID/onboarding", a.teamHandler.HandleStartOnboarding)
		protectedGroup.POST("/teams/:teamID/payout-status", a.teamHandler.HandleRefreshPayoutStatus)

		protectedGroup.POST("/teams/:teamID/fundraisers", a.fundraiserHandler.HandleCreateFundraiser)
		protectedGroup.GET("/teams/:teamID/fundraisers", a.fundraiserHandler.HandleListFundraisers)
		protectedGroup.PATCH("/fundraisers/:fundraiserID", a.fundraiserHandler.HandleUpdateFundraiser)
		protectedGroup.POST("/fundraisers/:fundraiserID/publish", a.fundraiserHandler.HandlePublishFundraiser)
		protectedGroup.POST("/fundraisers/:fundraiserID/stats", a.fundraiserHandler.HandleRecordStats)
		protectedGroup.GET("/fundraisers/:fundraiserID/stats", a.fundraiserHandler.HandleListStats)
		protectedGroup.GET("/fundraisers/:fundraiserID/pledges", a.pledgeHandler.HandleListPledges)

		protectedGroup.POST("/fundraisers/:fundraiserID/settle", a.settlementHandler.HandleTriggerSettlement)
		protectedGroup.POST("/pledges/:pledgeID/refund", a.pledgeHandler.HandleRefundPledge)

		protectedGroup.GET("/fundraisers/:fundraiserID/reports/pledges", a.reportingHandler.HandleExportPledges)
		protectedGroup.GET("/fundraisers/:fundraiserID/reports/charges", a.reportingHandler.HandleExportCharges)
	}

	apiGroup.POST("/gateway/webhook", a.reconcilerHandler.HandleGatewayWebhook)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

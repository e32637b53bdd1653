package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"pledgestack/internal/clients/redis"
	"pledgestack/internal/config"
	"pledgestack/internal/events"
	"pledgestack/internal/gateway"
	"pledgestack/internal/notifications"
	"pledgestack/internal/observability"
	"pledgestack/internal/ratelimit"
	"pledgestack/internal/store"

	authHandler "pledgestack/internal/auth/handler"
	authProcessor "pledgestack/internal/auth/processor"
	fundraiserHandler "pledgestack/internal/fundraisers/handler"
	fundraiserProcessor "pledgestack/internal/fundraisers/processor"
	leagueHandler "pledgestack/internal/leagues/handler"
	leagueProcessor "pledgestack/internal/leagues/processor"
	pledgeHandler "pledgestack/internal/pledges/handler"
	pledgeProcessor "pledgestack/internal/pledges/processor"
	reconcilerHandler "pledgestack/internal/reconciler/handler"
	reconcilerProcessor "pledgestack/internal/reconciler/processor"
	reportingHandler "pledgestack/internal/reporting/handler"
	reportingProcessor "pledgestack/internal/reporting/processor"
	settlementHandler "pledgestack/internal/settlement/handler"
	settlementProcessor "pledgestack/internal/settlement/processor"
	teamHandler "pledgestack/internal/teams/handler"
	teamProcessor "pledgestack/internal/teams/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler       authHandler.Handler
	LeagueHandler     leagueHandler.Handler
	TeamHandler       teamHandler.Handler
	FundraiserHandler fundraiserHandler.Handler
	PledgeHandler     pledgeHandler.Handler
	SettlementHandler settlementHandler.Handler
	ReportingHandler  reportingHandler.Handler
	ReconcilerHandler reconcilerHandler.Handler

	// Infrastructure
	RateLimiter        *ratelimit.Service
	AuditProducer      *events.Producer
	NotificationClient *notifications.Client
	RedisClient        *redis.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	st := &deps.Store

	deps.RedisClient, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, logger)

	deps.AuditProducer = events.NewProducer(events.ProducerConfig{
		Brokers: strings.Split(cfg.Kafka.Brokers, ","),
		Topic:   cfg.Kafka.AuditTopic,
	}, logger)

	deps.NotificationClient = notifications.NewClient(cfg.Redis.Addr, logger)

	stripeGateway := gateway.New(cfg.Stripe.SecretKey, logger)

	authProc := authProcessor.New(st, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	leagueProc := leagueProcessor.New(st, deps.AuditProducer, logger)
	deps.LeagueHandler = leagueHandler.New(leagueProc, logger)

	teamProc := teamProcessor.New(st, stripeGateway, deps.AuditProducer, cfg.Platform.WebAppURI, logger)
	deps.TeamHandler = teamHandler.New(teamProc, logger)

	fundraiserProc := fundraiserProcessor.New(st, deps.AuditProducer, logger)
	deps.FundraiserHandler = fundraiserHandler.New(fundraiserProc, logger)

	pledgeProc := pledgeProcessor.New(st, stripeGateway, deps.AuditProducer, logger)
	deps.PledgeHandler = pledgeHandler.New(pledgeProc, logger)

	settlementProc := settlementProcessor.New(st, stripeGateway, deps.AuditProducer, logger)
	deps.SettlementHandler = settlementHandler.New(settlementProc, logger)

	reportingProc := reportingProcessor.New(st, logger)
	deps.ReportingHandler = reportingHandler.New(reportingProc, logger)

	reconcilerProc := reconcilerProcessor.New(st, &pledgeProc, deps.NotificationClient,
		stripeGateway, cfg.Stripe.WebhookSecret, logger)
	deps.ReconcilerHandler = reconcilerHandler.New(reconcilerProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.AuditProducer != nil {
		d.AuditProducer.Close()
	}
	if d.NotificationClient != nil {
		d.NotificationClient.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
	d.Store.Close()
}

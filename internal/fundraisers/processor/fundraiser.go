package processor

import (
	"context"
	"errors"

	"pledgestack/internal/events"
	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

type CreateFundraiserParams struct {
	TeamID      uuid.UUID
	Title       string
	Description *string
	Kind        store.FundraiserKind
	GoalAmount  *int64
	Performance *store.PerformanceConfig
}

// CreateFundraiser creates a draft fundraiser. Performance fundraisers must
// carry a metric configuration; direct donation fundraisers must not.
func (p *FundraiserProcessor) CreateFundraiser(ctx context.Context, callerID uuid.UUID,
	params CreateFundraiserParams) (store.Fundraiser, error) {
	if err := p.authorizeTeam(ctx, callerID, params.TeamID); err != nil {
		return store.Fundraiser{}, err
	}

	switch params.Kind {
	case store.FundraiserKindPerformancePledge:
		if params.Performance == nil || params.Performance.MetricName == "" ||
			params.Performance.DefaultPerUnit <= 0 {
			return store.Fundraiser{}, ErrInvalidConfig
		}
	case store.FundraiserKindDirectDonation:
		if params.Performance != nil {
			return store.Fundraiser{}, ErrInvalidConfig
		}
	default:
		return store.Fundraiser{}, ErrInvalidConfig
	}

	fundraiser, err := p.store.CreateFundraiser(ctx, store.CreateFundraiserParams{
		TeamID:      params.TeamID,
		Title:       params.Title,
		Description: params.Description,
		Kind:        params.Kind,
		GoalAmount:  params.GoalAmount,
		Performance: params.Performance,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create fundraiser", err)
		return store.Fundraiser{}, err
	}

	p.audit(ctx, events.NewAuditEvent(&callerID, "fundraiser.created", "fundraiser", fundraiser.ID,
		map[string]any{"title": fundraiser.Title, "kind": string(fundraiser.Kind)}))
	return fundraiser, nil
}

type UpdateFundraiserParams struct {
	Title       *string
	Description *string
	GoalAmount  *int64
	Performance *store.PerformanceConfig
}

// UpdateFundraiser edits a fundraiser. Performance configuration is frozen
// once the fundraiser is published; a completed or cancelled fundraiser is
// not editable at all.
func (p *FundraiserProcessor) UpdateFundraiser(ctx context.Context, callerID, id uuid.UUID,
	params UpdateFundraiserParams) (store.Fundraiser, error) {
	fundraiser, err := p.loadManaged(ctx, callerID, id)
	if err != nil {
		return store.Fundraiser{}, err
	}

	if fundraiser.Status == store.FundraiserStatusCompleted ||
		fundraiser.Status == store.FundraiserStatusCancelled {
		return store.Fundraiser{}, ErrFundraiserNotEditable
	}
	if params.Performance != nil && fundraiser.Status != store.FundraiserStatusDraft {
		return store.Fundraiser{}, ErrFundraiserNotEditable
	}

	updated, err := p.store.UpdateFundraiser(ctx, id, store.UpdateFundraiserParams{
		Title:       params.Title,
		Description: params.Description,
		GoalAmount:  params.GoalAmount,
		Performance: params.Performance,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Fundraiser{}, ErrFundraiserNotFound
		}
		return store.Fundraiser{}, err
	}

	p.audit(ctx, events.NewAuditEvent(&callerID, "fundraiser.updated", "fundraiser", id, nil))
	return updated, nil
}

// PublishFundraiser moves a draft fundraiser to active. Publishing requires
// the team's payout destination to be able to take charges, so donors never
// pledge into a fundraiser that cannot settle.
func (p *FundraiserProcessor) PublishFundraiser(ctx context.Context, callerID, id uuid.UUID) (store.Fundraiser, error) {
	fundraiser, err := p.loadManaged(ctx, callerID, id)
	if err != nil {
		return store.Fundraiser{}, err
	}

	team, err := p.store.GetTeamByID(ctx, fundraiser.TeamID)
	if err != nil {
		return store.Fundraiser{}, err
	}
	if team.StripeAccountID == nil || !team.StripeChargesEnabled {
		return store.Fundraiser{}, ErrPayoutNotConfigured
	}

	published, err := p.store.PublishFundraiser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The draft-only predicate did not match.
			return store.Fundraiser{}, ErrNotPublishable
		}
		return store.Fundraiser{}, err
	}

	p.audit(ctx, events.NewAuditEvent(&callerID, "fundraiser.published", "fundraiser", id,
		map[string]any{"title": published.Title}))
	return published, nil
}

func (p *FundraiserProcessor) GetFundraiser(ctx context.Context, id uuid.UUID) (store.Fundraiser, error) {
	fundraiser, err := p.store.GetFundraiserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Fundraiser{}, ErrFundraiserNotFound
		}
		return store.Fundraiser{}, err
	}
	return fundraiser, nil
}

func (p *FundraiserProcessor) ListFundraisers(ctx context.Context, teamID uuid.UUID) ([]store.Fundraiser, error) {
	return p.store.GetFundraisersByTeam(ctx, teamID)
}

type RecordStatsParams struct {
	FundraiserID uuid.UUID
	MetricValue  int64
	Notes        *string
}

// RecordStats enters a performance result for an active performance
// fundraiser. The newest entry becomes the default settlement multiplier.
func (p *FundraiserProcessor) RecordStats(ctx context.Context, callerID uuid.UUID,
	params RecordStatsParams) (store.StatsEntry, error) {
	fundraiser, err := p.loadManaged(ctx, callerID, params.FundraiserID)
	if err != nil {
		return store.StatsEntry{}, err
	}
	if fundraiser.Kind != store.FundraiserKindPerformancePledge {
		return store.StatsEntry{}, ErrWrongFundraiserKind
	}
	if fundraiser.Status != store.FundraiserStatusActive {
		return store.StatsEntry{}, ErrFundraiserNotActive
	}

	metricName := ""
	if fundraiser.Performance != nil {
		metricName = fundraiser.Performance.MetricName
	}

	entry, err := p.store.CreateStatsEntry(ctx, store.CreateStatsEntryParams{
		FundraiserID: params.FundraiserID,
		MetricName:   metricName,
		MetricValue:  params.MetricValue,
		EnteredBy:    callerID,
		Notes:        params.Notes,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create stats entry", err)
		return store.StatsEntry{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "stats_entry_id", Value: entry.ID})
	p.audit(ctx, events.NewAuditEvent(&callerID, "fundraiser.stats_recorded", "stats_entry", entry.ID,
		map[string]any{"fundraiser_id": params.FundraiserID.String(), "metric_value": params.MetricValue}))
	return entry, nil
}

func (p *FundraiserProcessor) ListStats(ctx context.Context, fundraiserID uuid.UUID) ([]store.StatsEntry, error) {
	return p.store.GetStatsByFundraiser(ctx, fundraiserID)
}

func (p *FundraiserProcessor) authorizeTeam(ctx context.Context, callerID, teamID uuid.UUID) error {
	if _, err := p.store.GetTeamByID(ctx, teamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	allowed, err := p.store.CanManageTeam(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrNotAuthorized
	}
	return nil
}

func (p *FundraiserProcessor) loadManaged(ctx context.Context, callerID, id uuid.UUID) (store.Fundraiser, error) {
	fundraiser, err := p.store.GetFundraiserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Fundraiser{}, ErrFundraiserNotFound
		}
		return store.Fundraiser{}, err
	}

	allowed, err := p.store.CanManageTeam(ctx, callerID, fundraiser.TeamID)
	if err != nil {
		return store.Fundraiser{}, err
	}
	if !allowed {
		return store.Fundraiser{}, ErrNotAuthorized
	}
	return fundraiser, nil
}

package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
)

// ReportStore is the read surface the report processor needs.
type ReportStore interface {
	GetFundraiserByID(ctx context.Context, id uuid.UUID) (store.Fundraiser, error)
	CanManageTeam(ctx context.Context, userID, teamID uuid.UUID) (bool, error)
	GetPledgesByFundraiser(ctx context.Context, fundraiserID uuid.UUID) ([]store.Pledge, error)
	GetChargesByFundraiser(ctx context.Context, fundraiserID uuid.UUID) ([]store.Charge, error)
}

var (
	ErrFundraiserNotFound = errors.New("fundraiser not found")
	ErrNotAuthorized      = errors.New("not authorized to export fundraiser reports")
)

type ReportProcessor struct {
	store  ReportStore
	logger *observability.Logger
}

func New(store ReportStore, logger *observability.Logger) ReportProcessor {
	return ReportProcessor{
		store:  store,
		logger: logger,
	}
}

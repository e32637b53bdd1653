package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// FundraiserKind distinguishes immediate-donation campaigns from
// performance-based pledge campaigns.
type FundraiserKind string

const (
	FundraiserKindDirectDonation    FundraiserKind = "direct_donation"
	FundraiserKindPerformancePledge FundraiserKind = "performance_pledge"
)

// FundraiserStatus is the campaign lifecycle status.
type FundraiserStatus string

const (
	FundraiserStatusDraft     FundraiserStatus = "draft"
	FundraiserStatusActive    FundraiserStatus = "active"
	FundraiserStatusPaused    FundraiserStatus = "paused"
	FundraiserStatusCompleted FundraiserStatus = "completed"
	FundraiserStatusCancelled FundraiserStatus = "cancelled"
)

// PledgeKind distinguishes fully-specified donations from deferred pledges.
type PledgeKind string

const (
	PledgeKindImmediate PledgeKind = "immediate"
	PledgeKindDeferred  PledgeKind = "deferred"
)

// PledgeStatus is the pledge state machine. Transitions are forward-only:
// pending_authorization -> authorized -> charged -> refunded, with
// pending_authorization|authorized -> failed on gateway rejection.
type PledgeStatus string

const (
	PledgeStatusPendingAuthorization PledgeStatus = "pending_authorization"
	PledgeStatusAuthorized           PledgeStatus = "authorized"
	PledgeStatusCharged              PledgeStatus = "charged"
	PledgeStatusFailed               PledgeStatus = "failed"
	PledgeStatusRefunded             PledgeStatus = "refunded"
)

// ChargeStatus is the outcome of one settlement attempt.
type ChargeStatus string

const (
	ChargeStatusSucceeded ChargeStatus = "succeeded"
	ChargeStatusFailed    ChargeStatus = "failed"
	ChargeStatusRefunded  ChargeStatus = "refunded"
)

// RoleKind is a user's role within a league or team.
type RoleKind string

const (
	RoleLeagueAdmin RoleKind = "league_admin"
	RoleTeamManager RoleKind = "team_manager"
)

// PerformanceConfig holds the typed configuration of a performance-pledge
// fundraiser. Stored as JSONB but always marshalled through this struct.
type PerformanceConfig struct {
	MetricName     string     `json:"metric_name"`
	MetricUnit     string     `json:"metric_unit"`
	DefaultPerUnit int64      `json:"default_per_unit"` // cents pledged per metric unit
	DefaultCap     int64      `json:"default_cap"`      // cents
	EventTime      *time.Time `json:"event_time,omitempty"`
}

// Value implements driver.Valuer for PerformanceConfig
func (c PerformanceConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for PerformanceConfig
func (c *PerformanceConfig) Scan(value interface{}) error {
	if value == nil {
		*c = PerformanceConfig{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for PerformanceConfig")
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*c = PerformanceConfig{}
		return nil
	}
	return json.Unmarshal(bytes, c)
}

// League is a top-level organization containing teams.
type League struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Description       *string   `db:"description" json:"description,omitempty"`
	DefaultFeePercent int       `db:"default_fee_percent" json:"default_fee_percent"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Team belongs to a league and runs fundraisers. The stripe_* columns track
// the team's connected merchant account (the payout destination).
type Team struct {
	ID                        uuid.UUID `db:"id" json:"id"`
	LeagueID                  uuid.UUID `db:"league_id" json:"league_id"`
	Name                      string    `db:"name" json:"name"`
	Description               *string   `db:"description" json:"description,omitempty"`
	StripeAccountID           *string   `db:"stripe_account_id" json:"stripe_account_id,omitempty"`
	StripeOnboardingCompleted bool      `db:"stripe_onboarding_completed" json:"stripe_onboarding_completed"`
	StripeChargesEnabled      bool      `db:"stripe_charges_enabled" json:"stripe_charges_enabled"`
	StripePayoutsEnabled      bool      `db:"stripe_payouts_enabled" json:"stripe_payouts_enabled"`
	FeePercent                *int      `db:"fee_percent" json:"fee_percent,omitempty"` // overrides the league default when set
	CreatedAt                 time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                 time.Time `db:"updated_at" json:"updated_at"`
}

// User is a platform account (league admins, team managers).
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserRole grants a user a role on a league or a team.
type UserRole struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	LeagueID  *uuid.UUID `db:"league_id" json:"league_id,omitempty"`
	TeamID    *uuid.UUID `db:"team_id" json:"team_id,omitempty"`
	Role      RoleKind   `db:"role" json:"role"`
	GrantedBy *uuid.UUID `db:"granted_by" json:"granted_by,omitempty"`
	GrantedAt time.Time  `db:"granted_at" json:"granted_at"`
	RevokedAt *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
}

// Fundraiser is one campaign. TotalPledged and TotalCharged are denormalized
// aggregates in cents; TotalCharged is recomputed from pledge rows at the end
// of every settlement batch.
type Fundraiser struct {
	ID           uuid.UUID          `db:"id" json:"id"`
	TeamID       uuid.UUID          `db:"team_id" json:"team_id"`
	Title        string             `db:"title" json:"title"`
	Description  *string            `db:"description" json:"description,omitempty"`
	Kind         FundraiserKind     `db:"kind" json:"kind"`
	Status       FundraiserStatus   `db:"status" json:"status"`
	GoalAmount   *int64             `db:"goal_amount" json:"goal_amount,omitempty"`
	Performance  *PerformanceConfig `db:"performance_config" json:"performance_config,omitempty"`
	TotalPledged int64              `db:"total_pledged" json:"total_pledged"`
	TotalCharged int64              `db:"total_charged" json:"total_charged"`
	PublishedAt  *time.Time         `db:"published_at" json:"published_at,omitempty"`
	CompletedAt  *time.Time         `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at" json:"updated_at"`
}

// Pledge is one donor's commitment. For immediate pledges BaseAmount is the
// donation amount; for deferred pledges it is the per-unit amount and the
// final amount is computed at settlement.
type Pledge struct {
	ID               uuid.UUID    `db:"id" json:"id"`
	FundraiserID     uuid.UUID    `db:"fundraiser_id" json:"fundraiser_id"`
	DonorName        string       `db:"donor_name" json:"donor_name"`
	DonorEmail       string       `db:"donor_email" json:"donor_email"`
	DonorPhone       *string      `db:"donor_phone" json:"donor_phone,omitempty"`
	Kind             PledgeKind   `db:"kind" json:"kind"`
	BaseAmount       int64        `db:"base_amount" json:"base_amount"`
	CapAmount        *int64       `db:"cap_amount" json:"cap_amount,omitempty"`
	Multiplier       *int64       `db:"multiplier" json:"multiplier,omitempty"`
	CalculatedAmount *int64       `db:"calculated_amount" json:"calculated_amount,omitempty"`
	FinalAmount      int64        `db:"final_amount" json:"final_amount"`
	PlatformFee      int64        `db:"platform_fee" json:"platform_fee"`
	DonorTip         int64        `db:"donor_tip" json:"donor_tip"`
	CustomerRef      *string      `db:"customer_ref" json:"customer_ref,omitempty"`
	SetupIntentRef   *string      `db:"setup_intent_ref" json:"setup_intent_ref,omitempty"`
	PaymentMethodRef *string      `db:"payment_method_ref" json:"payment_method_ref,omitempty"`
	ChargeRef        *string      `db:"charge_ref" json:"charge_ref,omitempty"` // set exactly once; the at-most-once gate
	Status           PledgeStatus `db:"status" json:"status"`
	AuthorizedAt     *time.Time   `db:"authorized_at" json:"authorized_at,omitempty"`
	ChargedAt        *time.Time   `db:"charged_at" json:"charged_at,omitempty"`
	RefundedAt       *time.Time   `db:"refunded_at" json:"refunded_at,omitempty"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at" json:"updated_at"`
}

// Charge is an immutable record of one settlement attempt outcome.
// A succeeded charge is never mutated except to append a refund.
type Charge struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	PledgeID       uuid.UUID    `db:"pledge_id" json:"pledge_id"`
	FundraiserID   uuid.UUID    `db:"fundraiser_id" json:"fundraiser_id"`
	GrossAmount    int64        `db:"gross_amount" json:"gross_amount"`
	PlatformFee    int64        `db:"platform_fee" json:"platform_fee"`
	DonorTip       int64        `db:"donor_tip" json:"donor_tip"`
	NetAmount      int64        `db:"net_amount" json:"net_amount"`
	ChargeRef      *string      `db:"charge_ref" json:"charge_ref,omitempty"`
	Status         ChargeStatus `db:"status" json:"status"`
	FailureCode    *string      `db:"failure_code" json:"failure_code,omitempty"`
	FailureMessage *string      `db:"failure_message" json:"failure_message,omitempty"`
	RefundAmount   *int64       `db:"refund_amount" json:"refund_amount,omitempty"`
	SucceededAt    *time.Time   `db:"succeeded_at" json:"succeeded_at,omitempty"`
	FailedAt       *time.Time   `db:"failed_at" json:"failed_at,omitempty"`
	RefundedAt     *time.Time   `db:"refunded_at" json:"refunded_at,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}

// StatsEntry is one recorded value of a fundraiser's outcome metric.
// Multiple entries may exist as corrections; settlement resolves which one
// is authoritative.
type StatsEntry struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FundraiserID uuid.UUID `db:"fundraiser_id" json:"fundraiser_id"`
	MetricName   string    `db:"metric_name" json:"metric_name"`
	MetricValue  int64     `db:"metric_value" json:"metric_value"`
	EnteredBy    uuid.UUID `db:"entered_by" json:"entered_by"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// WebhookEvent records a gateway event already processed. The unique
// event_ref column is what makes webhook handling idempotent under provider
// redelivery.
type WebhookEvent struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EventRef    string    `db:"event_ref" json:"event_ref"`
	EventType   string    `db:"event_type" json:"event_type"`
	ProcessedAt time.Time `db:"processed_at" json:"processed_at"`
}

// AuditLog records one mutating action, persisted by the audit worker.
type AuditLog struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	Action     string     `db:"action" json:"action"`
	EntityType *string    `db:"entity_type" json:"entity_type,omitempty"`
	EntityID   *string    `db:"entity_id" json:"entity_id,omitempty"`
	Metadata   []byte     `db:"metadata" json:"metadata,omitempty"` // raw JSON
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

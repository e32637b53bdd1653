package notifications

//go:generate go run go.uber.org/mock/mockgen@latest -source=worker.go -destination=mocks_test.go -package=notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"pledgestack/internal/observability"
	"pledgestack/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// NotificationStore is the read surface workers need to render emails.
type NotificationStore interface {
	GetPledgeByID(ctx context.Context, id uuid.UUID) (store.Pledge, error)
	GetFundraiserByID(ctx context.Context, id uuid.UUID) (store.Fundraiser, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (store.Team, error)
}

// MailClient sends a single email and returns the provider message ID.
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// TemplateData is the data available to notification templates.
type TemplateData struct {
	DonorName      string
	TeamName       string
	FundraiserName string
	Amount         string
	Tip            string
}

// Worker renders and sends donor notification emails.
type Worker struct {
	store         NotificationStore
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// NewWorker creates a notification worker.
func NewWorker(store NotificationStore, mailClient MailClient, defaultSender string,
	logger *observability.Logger) *Worker {
	return &Worker{
		store:         store,
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"donor_receipt": `
			<html>
				<body>
					<h1>Thank you, {{.DonorName}}!</h1>
					<p>Your donation of <strong>{{.Amount}}</strong> to {{.FundraiserName}} has been processed.</p>
					{{if .Tip}}<p>Your {{.Tip}} tip helps keep the platform free for {{.TeamName}}.</p>{{end}}
					<p>Every dollar goes toward supporting {{.TeamName}}. Thank you for backing the team!</p>
				</body>
			</html>
			`,
			"decline_notice": `
			<html>
				<body>
					<h1>We couldn't process your donation</h1>
					<p>Hi {{.DonorName}},</p>
					<p>Your card was declined for your <strong>{{.Amount}}</strong> pledge to {{.FundraiserName}}.</p>
					<p>The team will retry the charge, or you can update your payment method from the link in your original pledge confirmation.</p>
					<p>{{.TeamName}} appreciates your support!</p>
				</body>
			</html>
			`,
		},
	}
}

// ProcessDonorReceiptTask sends a receipt for a charged pledge.
func (w *Worker) ProcessDonorReceiptTask(ctx context.Context, task *asynq.Task) error {
	var payload DonorReceiptPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal donor receipt payload", err)
		return fmt.Errorf("failed to unmarshal donor receipt payload: %w", err)
	}

	data, email, err := w.loadTemplateData(ctx, payload.PledgeID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your donation to %s", data.FundraiserName)
	return w.send(ctx, "donor_receipt", email, subject, data)
}

// ProcessDeclineNoticeTask tells a donor their charge was declined.
func (w *Worker) ProcessDeclineNoticeTask(ctx context.Context, task *asynq.Task) error {
	var payload DeclineNoticePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal decline notice payload", err)
		return fmt.Errorf("failed to unmarshal decline notice payload: %w", err)
	}

	data, email, err := w.loadTemplateData(ctx, payload.PledgeID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Problem with your donation to %s", data.FundraiserName)
	return w.send(ctx, "decline_notice", email, subject, data)
}

func (w *Worker) loadTemplateData(ctx context.Context, pledgeID uuid.UUID) (TemplateData, string, error) {
	pledge, err := w.store.GetPledgeByID(ctx, pledgeID)
	if err != nil {
		w.logger.Error(ctx, "failed to get pledge", err)
		return TemplateData{}, "", fmt.Errorf("failed to get pledge: %w", err)
	}

	fundraiser, err := w.store.GetFundraiserByID(ctx, pledge.FundraiserID)
	if err != nil {
		w.logger.Error(ctx, "failed to get fundraiser", err)
		return TemplateData{}, "", fmt.Errorf("failed to get fundraiser: %w", err)
	}

	team, err := w.store.GetTeamByID(ctx, fundraiser.TeamID)
	if err != nil {
		w.logger.Error(ctx, "failed to get team", err)
		return TemplateData{}, "", fmt.Errorf("failed to get team: %w", err)
	}

	data := TemplateData{
		DonorName:      pledge.DonorName,
		TeamName:       team.Name,
		FundraiserName: fundraiser.Title,
		Amount:         FormatCents(pledge.FinalAmount + pledge.DonorTip),
	}
	if pledge.DonorTip > 0 {
		data.Tip = FormatCents(pledge.DonorTip)
	}
	return data, pledge.DonorEmail, nil
}

func (w *Worker) send(ctx context.Context, templateName, to, subject string, data TemplateData) error {
	tmpl, ok := w.templates[templateName]
	if !ok {
		return fmt.Errorf("unknown notification template: %s", templateName)
	}

	t, err := template.New(templateName).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "notification_type", Value: templateName})
	if _, err := w.mailClient.SendEmail(ctx, w.defaultSender, to, subject, body.String()); err != nil {
		w.logger.Error(ctx, "failed to send notification email", err)
		return err
	}
	return nil
}

// FormatCents renders a cent amount as a dollar string for email copy.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

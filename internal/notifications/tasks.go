package notifications

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type constants
const (
	TypeDonorReceipt  = "email:donor_receipt"
	TypeDeclineNotice = "email:decline_notice"
)

// Queue names
const (
	QueueHigh = "high"
	QueueLow  = "low"
)

// DonorReceiptPayload identifies the pledge whose donor gets a receipt.
type DonorReceiptPayload struct {
	PledgeID uuid.UUID `json:"pledge_id"`
}

// DeclineNoticePayload identifies the pledge whose charge was declined.
type DeclineNoticePayload struct {
	PledgeID uuid.UUID `json:"pledge_id"`
}

// NewDonorReceiptTask creates a donor receipt task.
func NewDonorReceiptTask(payload DonorReceiptPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDonorReceipt, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}

// NewDeclineNoticeTask creates a decline notice task.
func NewDeclineNoticeTask(payload DeclineNoticePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeclineNotice, data, asynq.Queue(QueueLow), asynq.MaxRetry(5)), nil
}

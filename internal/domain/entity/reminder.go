package entity

import "github.com/google/uuid"

// ReminderChannel identifies how a reminder was delivered.
type ReminderChannel string

const (
	ReminderChannelEmail ReminderChannel = "email"
	ReminderChannelSMS   ReminderChannel = "sms"
)

// ReminderDelivery records one reminder attempt.
type ReminderDelivery struct {
	MemberID      uuid.UUID       `json:"memberId"`
	InstanceID    uuid.UUID       `json:"instanceId"`
	DaysRemaining int             `json:"daysRemaining"`
	Channel       ReminderChannel `json:"channel"`
	Error         string          `json:"error,omitempty"`
}

// ReminderReport summarises one reminder run.
type ReminderReport struct {
	Checked    int                 `json:"checked"`
	Sent       int                 `json:"sent"`
	Failed     int                 `json:"failed"`
	Deliveries []*ReminderDelivery `json:"deliveries"`
}

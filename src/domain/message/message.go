package message

import (
	"errors"
	"strings"
	"time"

	domainErrors "go-scheduler-api/src/domain/errors"
)

type Status string

const (
	StatusSent      Status = "sent"
	StatusScheduled Status = "scheduled"
)

// DefaultType is the delivery channel used when the client does not name one.
const DefaultType = "sms"

// TimestampLayout renders server local time without a zone suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Message is one stored record. It is never modified once the store has accepted it.
type Message struct {
	ID      int
	Contact string
	Content string
	Type    string
	Status  Status
	// ScheduleTime is kept verbatim. Nothing parses it or fires on it.
	ScheduleTime string
	CreatedAt    time.Time
}

// Timestamp formats CreatedAt the way every response exposes it.
func (m Message) Timestamp() string {
	return m.CreatedAt.Format(TimestampLayout)
}

// NewMessage trims the caller input and enforces the required fields.
// ID and CreatedAt are assigned by the store on insert.
func NewMessage(contact, content, msgType string, status Status, scheduleTime string) (*Message, error) {
	contact = strings.TrimSpace(contact)
	content = strings.TrimSpace(content)
	msgType = strings.TrimSpace(msgType)
	scheduleTime = strings.TrimSpace(scheduleTime)

	if contact == "" {
		return nil, domainErrors.NewAppError(errors.New("contact must not be empty"), domainErrors.ValidationError)
	}
	if content == "" {
		return nil, domainErrors.NewAppError(errors.New("message must not be empty"), domainErrors.ValidationError)
	}
	if status == StatusScheduled && scheduleTime == "" {
		return nil, domainErrors.NewAppError(errors.New("schedule_time must not be empty"), domainErrors.ValidationError)
	}
	if msgType == "" {
		msgType = DefaultType
	}

	return &Message{
		Contact:      contact,
		Content:      content,
		Type:         msgType,
		Status:       status,
		ScheduleTime: scheduleTime,
	}, nil
}

package memory

import (
	"fmt"
	"sync"
	"time"

	domainErrors "go-scheduler-api/src/domain/errors"
	domainMessage "go-scheduler-api/src/domain/message"
	logger "go-scheduler-api/src/infrastructure/logger"

	"go.uber.org/zap"
)

// MessageRepositoryInterface defines the operations on the in-memory message store
type MessageRepositoryInterface interface {
	Create(messageDomain *domainMessage.Message) (*domainMessage.Message, error)
	GetAll() (*[]domainMessage.Message, error)
	GetByStatus(status domainMessage.Status) (*[]domainMessage.Message, error)
	GetByID(id int) (*domainMessage.Message, error)
	DeleteAll() (int, error)
	Count() int
}

// MessageRepository keeps every record of the process in insertion order.
// A single lock covers the length-then-append and length-then-clear sequences
// so concurrent writers can never hand out the same id.
type MessageRepository struct {
	mu       sync.RWMutex
	messages []domainMessage.Message
	Clock    func() time.Time
	Logger   *logger.Logger
}

func NewMessageRepository(loggerInstance *logger.Logger) MessageRepositoryInterface {
	return &MessageRepository{
		messages: make([]domainMessage.Message, 0),
		Clock:    time.Now,
		Logger:   loggerInstance,
	}
}

// Create assigns id = count+1 and the insertion timestamp, then appends a copy.
func (r *MessageRepository) Create(messageDomain *domainMessage.Message) (*domainMessage.Message, error) {
	r.mu.Lock()
	record := *messageDomain
	record.ID = len(r.messages) + 1
	record.CreatedAt = r.Clock()
	r.messages = append(r.messages, record)
	r.mu.Unlock()

	r.Logger.Debug("Stored message", zap.Int("id", record.ID), zap.String("status", string(record.Status)))
	return &record, nil
}

func (r *MessageRepository) GetAll() (*[]domainMessage.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domainMessage.Message, len(r.messages))
	copy(out, r.messages)
	return &out, nil
}

func (r *MessageRepository) GetByStatus(status domainMessage.Status) (*[]domainMessage.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domainMessage.Message, 0)
	for _, m := range r.messages {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return &out, nil
}

func (r *MessageRepository) GetByID(id int) (*domainMessage.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.messages {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	r.Logger.Warn("Message not found", zap.Int("id", id))
	return nil, domainErrors.NewAppError(fmt.Errorf("message %d not found", id), domainErrors.NotFound)
}

// DeleteAll empties the store and returns how many records were dropped.
func (r *MessageRepository) DeleteAll() (int, error) {
	r.mu.Lock()
	count := len(r.messages)
	r.messages = make([]domainMessage.Message, 0)
	r.mu.Unlock()

	r.Logger.Info("Cleared message store", zap.Int("deleted", count))
	return count, nil
}

func (r *MessageRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}

package message

import (
	"fmt"
	"time"

	domainMessage "go-scheduler-api/src/domain/message"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/repository/memory"

	"go.uber.org/zap"
)

// Enqueuer accepts texts for best-effort relaying. The relay dispatcher implements it.
type Enqueuer interface {
	Enqueue(text string) bool
}

// StoreStatus is the snapshot reported by the status and health endpoints.
type StoreStatus struct {
	Total int
	Time  time.Time
}

type IMessageUseCase interface {
	Submit(contact, content string) (*domainMessage.Message, error)
	Schedule(content, recipient, scheduleTime, msgType string) (*domainMessage.Message, error)
	SendImmediate(content, recipient, msgType string) (*domainMessage.Message, error)
	GetAll() (*[]domainMessage.Message, error)
	GetByStatus(status domainMessage.Status) (*[]domainMessage.Message, error)
	GetByID(id int) (*domainMessage.Message, error)
	DeleteAll() (int, error)
	Status() StoreStatus
}

type MessageUseCase struct {
	messageRepository memory.MessageRepositoryInterface
	relay             Enqueuer
	clock             func() time.Time
	Logger            *logger.Logger
}

func NewMessageUseCase(
	messageRepository memory.MessageRepositoryInterface,
	relay Enqueuer,
	loggerInstance *logger.Logger,
) IMessageUseCase {
	return &MessageUseCase{
		messageRepository: messageRepository,
		relay:             relay,
		clock:             time.Now,
		Logger:            loggerInstance,
	}
}

// Submit stores an immediately-sent sms and relays it.
func (s *MessageUseCase) Submit(contact, content string) (*domainMessage.Message, error) {
	return s.store(contact, content, domainMessage.DefaultType, domainMessage.StatusSent, "")
}

// Schedule stores a record for later. Nothing delivers it.
func (s *MessageUseCase) Schedule(content, recipient, scheduleTime, msgType string) (*domainMessage.Message, error) {
	return s.store(recipient, content, msgType, domainMessage.StatusScheduled, scheduleTime)
}

func (s *MessageUseCase) SendImmediate(content, recipient, msgType string) (*domainMessage.Message, error) {
	return s.store(recipient, content, msgType, domainMessage.StatusSent, "")
}

func (s *MessageUseCase) store(contact, content, msgType string, status domainMessage.Status, scheduleTime string) (*domainMessage.Message, error) {
	newMessage, err := domainMessage.NewMessage(contact, content, msgType, status, scheduleTime)
	if err != nil {
		s.Logger.Warn("Rejected message", zap.Error(err), zap.String("status", string(status)))
		return nil, err
	}

	created, err := s.messageRepository.Create(newMessage)
	if err != nil {
		s.Logger.Error("Error storing message", zap.Error(err))
		return nil, err
	}

	s.Logger.Info("Message stored",
		zap.Int("id", created.ID),
		zap.String("contact", created.Contact),
		zap.String("type", created.Type),
		zap.String("status", string(created.Status)),
	)

	if created.Status == domainMessage.StatusSent && s.relay != nil {
		s.relay.Enqueue(RelayText(created))
	}
	return created, nil
}

// RelayText is the notification body forwarded for a sent message.
func RelayText(m *domainMessage.Message) string {
	return fmt.Sprintf("Message to %s: %s", m.Contact, m.Content)
}

func (s *MessageUseCase) GetAll() (*[]domainMessage.Message, error) {
	return s.messageRepository.GetAll()
}

func (s *MessageUseCase) GetByStatus(status domainMessage.Status) (*[]domainMessage.Message, error) {
	return s.messageRepository.GetByStatus(status)
}

func (s *MessageUseCase) GetByID(id int) (*domainMessage.Message, error) {
	return s.messageRepository.GetByID(id)
}

func (s *MessageUseCase) DeleteAll() (int, error) {
	deleted, err := s.messageRepository.DeleteAll()
	if err != nil {
		s.Logger.Error("Error clearing messages", zap.Error(err))
		return 0, err
	}
	return deleted, nil
}

func (s *MessageUseCase) Status() StoreStatus {
	return StoreStatus{Total: s.messageRepository.Count(), Time: s.clock()}
}

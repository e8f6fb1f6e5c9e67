package message

import (
	"sync"
	"testing"

	domainErrors "go-scheduler-api/src/domain/errors"
	domainMessage "go-scheduler-api/src/domain/message"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	mu    sync.Mutex
	texts []string
}

func (r *recordingEnqueuer) Enqueue(text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return true
}

func setupUseCase(t *testing.T) (IMessageUseCase, *recordingEnqueuer) {
	loggerInstance, err := logger.NewLogger()
	require.NoError(t, err)
	enqueuer := &recordingEnqueuer{}
	return NewMessageUseCase(memory.NewMessageRepository(loggerInstance), enqueuer, loggerInstance), enqueuer
}

func TestSubmit(t *testing.T) {
	useCase, enqueuer := setupUseCase(t)

	created, err := useCase.Submit(" Alice ", "Hi")
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Alice", created.Contact)
	assert.Equal(t, domainMessage.DefaultType, created.Type)
	assert.Equal(t, domainMessage.StatusSent, created.Status)
	assert.Equal(t, []string{"Message to Alice: Hi"}, enqueuer.texts)
	assert.Equal(t, 1, useCase.Status().Total)
}

func TestSubmit_RejectsBlankFields(t *testing.T) {
	useCase, enqueuer := setupUseCase(t)

	_, err := useCase.Submit("", "Hi")
	assert.True(t, domainErrors.IsType(err, domainErrors.ValidationError))
	_, err = useCase.Submit("Alice", "   ")
	assert.True(t, domainErrors.IsType(err, domainErrors.ValidationError))

	assert.Equal(t, 0, useCase.Status().Total)
	assert.Empty(t, enqueuer.texts)
}

func TestSchedule_DoesNotRelay(t *testing.T) {
	useCase, enqueuer := setupUseCase(t)

	created, err := useCase.Schedule("Meeting", "Bob", "2026-10-16 09:00", "")
	require.NoError(t, err)
	assert.Equal(t, domainMessage.StatusScheduled, created.Status)
	assert.Equal(t, "2026-10-16 09:00", created.ScheduleTime)
	assert.Equal(t, domainMessage.DefaultType, created.Type)
	assert.Empty(t, enqueuer.texts)

	_, err = useCase.Schedule("Meeting", "Bob", " ", "sms")
	assert.True(t, domainErrors.IsType(err, domainErrors.ValidationError))
}

func TestSendImmediate(t *testing.T) {
	useCase, enqueuer := setupUseCase(t)

	created, err := useCase.SendImmediate("Ping", "Carol", "whatsapp")
	require.NoError(t, err)
	assert.Equal(t, domainMessage.StatusSent, created.Status)
	assert.Equal(t, "whatsapp", created.Type)
	assert.Equal(t, []string{"Message to Carol: Ping"}, enqueuer.texts)
}

func TestSharedStoreAndBuckets(t *testing.T) {
	useCase, _ := setupUseCase(t)

	_, _ = useCase.Submit("Alice", "one")
	scheduled, _ := useCase.Schedule("two", "Bob", "10:00", "sms")
	_, _ = useCase.SendImmediate("three", "Carol", "")

	assert.Equal(t, 2, scheduled.ID)

	all, err := useCase.GetAll()
	require.NoError(t, err)
	assert.Len(t, *all, 3)

	sent, _ := useCase.GetByStatus(domainMessage.StatusSent)
	assert.Len(t, *sent, 2)

	found, err := useCase.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "two", found.Content)
}

func TestDeleteAll(t *testing.T) {
	useCase, _ := setupUseCase(t)
	_, _ = useCase.Submit("Alice", "one")
	_, _ = useCase.Submit("Alice", "two")

	deleted, err := useCase.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = useCase.GetByID(1)
	assert.True(t, domainErrors.IsType(err, domainErrors.NotFound))

	created, _ := useCase.Submit("Alice", "three")
	assert.Equal(t, 1, created.ID)
}

func TestNilRelayIsAllowed(t *testing.T) {
	loggerInstance, err := logger.NewLogger()
	require.NoError(t, err)
	useCase := NewMessageUseCase(memory.NewMessageRepository(loggerInstance), nil, loggerInstance)

	_, err = useCase.Submit("Alice", "Hi")
	assert.NoError(t, err)
}

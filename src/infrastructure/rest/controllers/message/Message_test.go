package message

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	useCaseMessage "go-scheduler-api/src/application/usecases/message"
	"go-scheduler-api/src/domain/common"
	domainErrors "go-scheduler-api/src/domain/errors"
	"go-scheduler-api/src/infrastructure/helper"
	logger "go-scheduler-api/src/infrastructure/logger"
	"go-scheduler-api/src/infrastructure/repository/memory"
	"go-scheduler-api/src/infrastructure/rest/controllers"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func setupLogger(t *testing.T) *logger.Logger {
	loggerInstance, err := logger.NewLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	return loggerInstance
}

func setupController(t *testing.T) (IMessageController, useCaseMessage.IMessageUseCase) {
	loggerInstance := setupLogger(t)
	useCase := useCaseMessage.NewMessageUseCase(memory.NewMessageRepository(loggerInstance), nil, loggerInstance)
	commonService := common.NewCommonService(helper.NewValidator(loggerInstance))
	return NewMessageController(commonService, useCase, loggerInstance), useCase
}

func newContext(method, path, body, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.Request = req
	return c, w
}

func TestMessageController_SendMessage_Success(t *testing.T) {
	controller, useCase := setupController(t)

	c, w := newContext(http.MethodPost, "/send-message", `{"contact":"Alice","message":"Hi"}`, binding.MIMEJSON)
	controller.SendMessage(c)

	require.Equal(t, http.StatusCreated, w.Code)
	body := w.Body.String()
	assert.Equal(t, int64(1), gjson.Get(body, "message_id").Int())
	assert.NotEmpty(t, gjson.Get(body, "status").String())
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}$`, gjson.Get(body, "timestamp").String())
	assert.Equal(t, 1, useCase.Status().Total)
}

func TestMessageController_SendMessage_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing message", `{"contact":"Alice"}`, "message"},
		{"missing contact", `{"message":"Hi"}`, "contact"},
		{"blank contact", `{"contact":"   ","message":"Hi"}`, "contact"},
		{"blank message", `{"contact":"Alice","message":"\t"}`, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, useCase := setupController(t)
			c, w := newContext(http.MethodPost, "/send-message", tt.body, binding.MIMEJSON)
			controller.SendMessage(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, gjson.Get(w.Body.String(), "success").Bool())
			assert.Equal(t, tt.wantField, gjson.Get(w.Body.String(), "errors.0.field").String())
			assert.Equal(t, 0, useCase.Status().Total)
		})
	}
}

func TestMessageController_SendMessage_WrongContentType(t *testing.T) {
	controller, useCase := setupController(t)

	c, _ := newContext(http.MethodPost, "/send-message", `{"contact":"Alice","message":"Hi"}`, "text/plain")
	controller.SendMessage(c)

	require.Len(t, c.Errors, 1)
	assert.True(t, domainErrors.IsType(c.Errors.Last().Err, domainErrors.ValidationError))
	assert.True(t, errors.Is(c.Errors.Last().Err, controllers.ErrContentType))
	assert.Equal(t, 0, useCase.Status().Total)
}

func TestMessageController_GetMessages(t *testing.T) {
	controller, useCase := setupController(t)
	_, _ = useCase.Submit("Alice", "one")
	_, _ = useCase.Submit("Bob", "two")

	c, w := newContext(http.MethodGet, "/messages", "", "")
	controller.GetMessages(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, int64(2), gjson.Get(body, "total").Int())
	assert.Equal(t, "Bob", gjson.Get(body, "messages.1.contact").String())
	assert.Equal(t, "two", gjson.Get(body, "messages.1.message").String())
	assert.Equal(t, "sent", gjson.Get(body, "messages.1.status").String())
	assert.False(t, gjson.Get(body, "messages.1.schedule_time").Exists())
}

func TestMessageController_GetMessages_EmptyIsArray(t *testing.T) {
	controller, _ := setupController(t)

	c, w := newContext(http.MethodGet, "/messages", "", "")
	controller.GetMessages(c)

	assert.True(t, gjson.Get(w.Body.String(), "messages").IsArray())
	assert.Equal(t, int64(0), gjson.Get(w.Body.String(), "total").Int())
}

func TestMessageController_GetMessage(t *testing.T) {
	controller, useCase := setupController(t)
	_, _ = useCase.Submit("Alice", "Hi")

	c, w := newContext(http.MethodGet, "/messages/1", "", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	controller.GetMessage(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", gjson.Get(w.Body.String(), "contact").String())

	c, _ = newContext(http.MethodGet, "/messages/9", "", "")
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	controller.GetMessage(c)
	require.Len(t, c.Errors, 1)
	assert.True(t, domainErrors.IsType(c.Errors.Last().Err, domainErrors.NotFound))

	c, _ = newContext(http.MethodGet, "/messages/abc", "", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	controller.GetMessage(c)
	require.Len(t, c.Errors, 1)
	assert.True(t, domainErrors.IsType(c.Errors.Last().Err, domainErrors.ValidationError))
}

func TestMessageController_DeleteMessages(t *testing.T) {
	controller, useCase := setupController(t)
	_, _ = useCase.Submit("Alice", "one")
	_, _ = useCase.Submit("Alice", "two")

	c, w := newContext(http.MethodDelete, "/messages", "", "")
	controller.DeleteMessages(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), gjson.Get(w.Body.String(), "total_deleted").Int())
	assert.Equal(t, 0, useCase.Status().Total)
}

func TestMessageController_Status(t *testing.T) {
	controller, useCase := setupController(t)
	_, _ = useCase.Submit("Alice", "Hi")

	c, w := newContext(http.MethodGet, "/status", "", "")
	controller.Status(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "total_messages").Int())
	assert.NotEmpty(t, gjson.Get(w.Body.String(), "time").String())
}

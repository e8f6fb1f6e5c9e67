package relay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestTelegramConfig_Enabled(t *testing.T) {
	assert.True(t, TelegramConfig{BotToken: "t", ChatID: "1"}.Enabled())
	assert.False(t, TelegramConfig{BotToken: "t"}.Enabled())
	assert.False(t, TelegramConfig{BotToken: " ", ChatID: "1"}.Enabled())
}

func TestTelegramRelay_PostsMessage(t *testing.T) {
	var gotPath, gotBody, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	r := NewTelegramRelay(TelegramConfig{APIURL: server.URL, BotToken: "abc", ChatID: "42"})
	require.NoError(t, r.Relay(context.Background(), `Message to Alice: "hi"`))

	assert.Equal(t, "/botabc/sendMessage", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "42", gjson.Get(gotBody, "chat_id").String())
	assert.Equal(t, `Message to Alice: "hi"`, gjson.Get(gotBody, "text").String())
}

func TestTelegramRelay_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	r := NewTelegramRelay(TelegramConfig{APIURL: server.URL, BotToken: "abc", ChatID: "42"})
	err := r.Relay(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestTelegramRelay_TimeoutDoesNotLeakToken(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	r := NewTelegramRelay(TelegramConfig{APIURL: server.URL, BotToken: "secret-token", ChatID: "42", Timeout: 50 * time.Millisecond})
	err := r.Relay(context.Background(), "hi")
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "secret-token"))
}

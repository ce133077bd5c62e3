package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/internal/config"
	"dashboard/internal/models"
)

// fakeTokens is a minimal TokenSource for exercising the 401 path
type fakeTokens struct {
	mu          sync.Mutex
	token       string
	invalidated bool
}

func (f *fakeTokens) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeTokens) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.invalidated = true
}

func (f *fakeTokens) wasInvalidated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalidated
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.Timeout = 5 * time.Second

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return New(cfg, tokens, logger), server
}

func TestGetItems_SendsCommaSeparatedIDs(t *testing.T) {
	var gotIDs string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		json.NewEncoder(w).Encode([]*models.Item{
			{ID: 5, Name: "Item Five"},
			{ID: 7, Name: "Item Seven"},
		})
	})

	c, _ := newTestClient(t, handler, &fakeTokens{})

	items, err := c.GetItems(context.Background(), []int{5, 7})
	require.NoError(t, err)
	assert.Equal(t, "5,7", gotIDs)
	require.Len(t, items, 2)
	assert.Equal(t, "Item Five", items[0].Name)
}

func TestGetItems_EmptySetSkipsRequest(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty id set")
	})

	c, _ := newTestClient(t, handler, &fakeTokens{})

	items, err := c.GetItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItem_NotFoundMapsToTypedError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	c, _ := newTestClient(t, handler, &fakeTokens{})

	_, err := c.GetItem(context.Background(), 99999)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestLogin_SendsFormEncodedBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "nefretta", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "token-123",
			User:        &models.User{Username: "nefretta"},
		})
	})

	c, _ := newTestClient(t, handler, &fakeTokens{})

	resp, err := c.Login(context.Background(), "nefretta", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-123", resp.AccessToken)
}

func TestLogin_BadCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	tokens := &fakeTokens{token: "existing"}
	c, _ := newTestClient(t, handler, tokens)

	_, err := c.Login(context.Background(), "nefretta", "wrong")
	assert.ErrorIs(t, err, models.ErrLoginFailed)
	assert.False(t, tokens.wasInvalidated(), "a failed login must not drop the current session")
}

func TestAuthedCall_RejectedTokenInvalidatesSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stale-token", r.Header.Get("Authorization"))
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	tokens := &fakeTokens{token: "stale-token"}
	c, _ := newTestClient(t, handler, tokens)

	_, err := c.GetLotteryStats(context.Background())
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.True(t, tokens.wasInvalidated())
}

func TestAuthedCall_WithoutToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a session token")
	})

	c, _ := newTestClient(t, handler, &fakeTokens{})

	_, err := c.GetLotteryStats(context.Background())
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}

func TestDo_BackendDown(t *testing.T) {
	c, server := newTestClient(t, http.NotFoundHandler(), &fakeTokens{})
	server.Close()

	_, err := c.GetItems(context.Background(), []int{1})
	assert.ErrorIs(t, err, models.ErrBackendUnavailable)
}

func TestValidateAPIKey_InvalidKey(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		http.Error(w, "invalid key", http.StatusBadRequest)
	})

	c, _ := newTestClient(t, handler, &fakeTokens{})

	_, err := c.ValidateAPIKey(context.Background(), "not-a-real-key")
	assert.ErrorIs(t, err, models.ErrInvalidAPIKey)
}

package pointnow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokens is a minimal TokenSource for client tests.
type fakeTokens struct {
	mu          sync.Mutex
	access      string
	refresh     string
	invalidated bool
}

func (f *fakeTokens) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.access
}

func (f *fakeTokens) RefreshToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refresh
}

func (f *fakeTokens) UpdateTokens(access, refresh string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = access
	f.refresh = refresh
	return nil
}

func (f *fakeTokens) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = true
}

func TestClientStatusHandling(t *testing.T) {
	t.Run("Created201IsSuccess", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"created","data":{"id":"c1","name":"Amy"}}`))
		}))
		defer server.Close()

		customer, err := New(server.URL).CreateCustomer(context.Background(), CreateCustomerParams{Name: "Amy", BusinessID: "b1"})
		require.NoError(t, err)
		assert.Equal(t, "c1", customer.ID)
	})

	t.Run("OKWithInvalidJSONFails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		defer server.Close()

		_, err := New(server.URL).GetCustomer(context.Background(), "c1")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusOK, apiErr.Status)
		assert.Equal(t, "invalid response format", apiErr.Message)
	})

	t.Run("NotFoundCarriesServerMessage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}))
		defer server.Close()

		_, err := New(server.URL).GetCustomer(context.Background(), "missing")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "not found", apiErr.Message)
	})

	t.Run("FieldErrorsSurface", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"validation failed","errors":{"email":["taken"]}}`))
		}))
		defer server.Close()

		_, err := New(server.URL).Login(context.Background(), "a@b.co", "pw")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, []string{"taken"}, apiErr.Errors["email"])
	})

	t.Run("ErrorBodyWithoutMessageGetsGeneric", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := New(server.URL).GetCustomer(context.Background(), "c1")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "request failed", apiErr.Message)
	})

	t.Run("ConnectionFailureIsStatusZero", func(t *testing.T) {
		// Reserved port with nothing listening.
		_, err := New("http://127.0.0.1:1").GetCustomer(context.Background(), "c1")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 0, apiErr.Status)
		assert.Equal(t, "network error", apiErr.Message)
	})
}

func TestClientBearerInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	t.Run("NoTokenSourceNoHeader", func(t *testing.T) {
		_, err := New(server.URL).GetCustomer(context.Background(), "c1")
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("TokenAttachedAsBearer", func(t *testing.T) {
		client := New(server.URL).WithTokens(&fakeTokens{access: "tok-123"})
		_, err := client.GetCustomer(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})
}

func TestClientRefreshRetry(t *testing.T) {
	t.Run("RetriesOnceAfterRefresh", func(t *testing.T) {
		var refreshCalls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/auth/refresh":
				refreshCalls++
				var body map[string]string
				_ = json.NewDecoder(r.Body).Decode(&body)
				if body["refresh_token"] != "old-refresh" {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"message":"bad refresh token"}`))
					return
				}
				_, _ = w.Write([]byte(`{"data":{"access_token":"new-access","refresh_token":"new-refresh","expires_in":3600}}`))
			default:
				if r.Header.Get("Authorization") != "Bearer new-access" {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"message":"token expired"}`))
					return
				}
				_, _ = w.Write([]byte(`{"data":{"id":"c1","name":"Amy"}}`))
			}
		}))
		defer server.Close()

		tokens := &fakeTokens{access: "stale", refresh: "old-refresh"}
		customer, err := New(server.URL).WithTokens(tokens).GetCustomer(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", customer.ID)
		assert.Equal(t, 1, refreshCalls)
		assert.Equal(t, "new-access", tokens.AccessToken())
		assert.Equal(t, "new-refresh", tokens.RefreshToken())
		assert.False(t, tokens.invalidated)
	})

	t.Run("SecondUnauthorizedInvalidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/refresh" {
				_, _ = w.Write([]byte(`{"data":{"access_token":"still-bad","refresh_token":"r2","expires_in":60}}`))
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
		}))
		defer server.Close()

		tokens := &fakeTokens{access: "stale", refresh: "r1"}
		_, err := New(server.URL).WithTokens(tokens).GetCustomer(context.Background(), "c1")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.True(t, tokens.invalidated)
	})

	t.Run("NoRefreshTokenNoRetry", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
		}))
		defer server.Close()

		tokens := &fakeTokens{access: "stale"}
		_, err := New(server.URL).WithTokens(tokens).GetCustomer(context.Background(), "c1")
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, tokens.invalidated)
	})
}

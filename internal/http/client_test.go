package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/account", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			username, password, ok := request.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "skey_test_4xs8breq3htbkj03d2x", username)
			assert.Empty(t, password)

			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Contains(t, request.Header.Get("User-Agent"), "SiamPayGo/")
			assert.Contains(t, request.Header.Get("User-Agent"), "SiamPayAPI/")

			_ = json.NewEncoder(writer).Encode(map[string]string{
				"object": "account",
				"id":     "acct_4xs8bre8a8vhrgijcjg",
			})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "skey_test_4xs8breq3htbkj03d2x")

		resp, err := client.Get(context.Background(), "account")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "acct_4xs8bre8a8vhrgijcjg", result["id"])
	})

	t.Run("baseline headers are not overridable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Contains(t, request.Header.Get("User-Agent"), "SiamPayGo/")
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"object": "account"})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "skey_test")

		resp, err := client.Do(context.Background(), &internalhttp.Request{
			Method: "GET",
			Path:   "account",
			Headers: map[string]string{
				"Accept":          "text/html",
				"User-Agent":      "OverrideAttempt/1.0",
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("form-encoded payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))

			require.NoError(t, request.ParseForm())
			assert.Equal(t, "100000", request.PostForm.Get("amount"))
			assert.Equal(t, "thb", request.PostForm.Get("currency"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"object": "charge", "id": "chrg_1"})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "skey_test")

		payload := url.Values{}
		payload.Set("amount", "100000")
		payload.Set("currency", "thb")

		resp, err := client.Post(context.Background(), "charges", payload)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error payload is translated", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"object":  "error",
				"code":    "invalid_card",
				"message": "card number invalid",
			})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "skey_test")

		resp, err := client.Post(context.Background(), "charges", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		apiErr := &siampay.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid_card", apiErr.Code)
		assert.Equal(t, "card number invalid", apiErr.Message)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.True(t, siampay.IsInvalidCard(err))
	})

	t.Run("error payload wins regardless of HTTP status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"object":  "error",
				"code":    "not_found",
				"message": "charge chrg_9 was not found",
			})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "skey_test")

		_, err := client.Get(context.Background(), "charges/chrg_9")
		require.Error(t, err)
		assert.True(t, siampay.IsNotFound(err))
	})

	t.Run("missing key fails before any network call", func(t *testing.T) {
		t.Parallel()

		calls := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls++

			_ = json.NewEncoder(writer).Encode(map[string]string{"object": "account"})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		_, err := client.Get(context.Background(), "account")
		require.ErrorIs(t, err, siampay.ErrSecretKeyRequired)
		assert.Equal(t, 0, calls)
	})

	t.Run("missing key error is configurable", func(t *testing.T) {
		t.Parallel()

		client := internalhttp.NewClient("https://vault.example.com", "",
			internalhttp.WithMissingKeyError(siampay.ErrPublicKeyRequired))

		_, err := client.Post(context.Background(), "tokens", nil)
		require.ErrorIs(t, err, siampay.ErrPublicKeyRequired)
	})
}

func TestClient_Logging(t *testing.T) {
	t.Parallel()
	t.Run("two records per call", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"object": "balance"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := internalhttp.NewClient(server.URL, "skey_test", internalhttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "balance")
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "info", logger.logs[0]["level"])
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "debug", logger.logs[1]["level"])
		assert.Equal(t, "HTTP Request Details", logger.logs[1]["msg"])

		fields, ok := logger.logs[1]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "skey_test", fields["authorization"])
	})

	t.Run("debug adds a response record", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"object": "balance"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := internalhttp.NewClient(server.URL, "skey_test",
			internalhttp.WithLogger(logger), internalhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "balance")
		require.NoError(t, err)

		require.Len(t, logger.logs, 3)
		assert.Equal(t, "HTTP Response", logger.logs[2]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*internalhttp.Client, *testing.T) (*internalhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *internalhttp.Client, t *testing.T) (*internalhttp.Response, error) {
				return c.Get(context.Background(), "test")
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *internalhttp.Client, t *testing.T) (*internalhttp.Response, error) {
				return c.Post(context.Background(), "test", url.Values{"key": []string{"value"}})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *internalhttp.Client, t *testing.T) (*internalhttp.Response, error) {
				return c.Patch(context.Background(), "test", url.Values{"key": []string{"value"}})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *internalhttp.Client, t *testing.T) (*internalhttp.Response, error) {
				return c.Delete(context.Background(), "test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)

				_ = json.NewEncoder(writer).Encode(map[string]string{"object": "account"})
			}))
			defer server.Close()

			client := internalhttp.NewClient(server.URL, "skey_test")
			resp, err := testCase.fn(client, t)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{
			name:     "multiple segments",
			base:     "https://api.example.com/",
			segments: []string{"charges", "chrg_1", "capture"},
			want:     "https://api.example.com/charges/chrg_1/capture",
		},
		{
			name:     "base without trailing slash",
			base:     "https://api.example.com",
			segments: []string{"charges"},
			want:     "https://api.example.com/charges",
		},
		{
			name:     "segment with surrounding slashes",
			base:     "https://api.example.com",
			segments: []string{"/customers/cust_1/cards/card_1/"},
			want:     "https://api.example.com/customers/cust_1/cards/card_1",
		},
		{
			name:     "pre-joined path",
			base:     "https://api.example.com/",
			segments: []string{"charges/chrg_1/refunds"},
			want:     "https://api.example.com/charges/chrg_1/refunds",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, internalhttp.JoinURL(testCase.base, testCase.segments...))
		})
	}
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siampay/siampay-go/pkg/siampay"
)

func writeJSON(t *testing.T, writer http.ResponseWriter, body map[string]any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(writer).Encode(body))
}

func TestChargesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/charges", request.URL.Path)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "100000", request.PostForm.Get("amount"))
		assert.Equal(t, "thb", request.PostForm.Get("currency"))
		assert.Equal(t, "tokn_test_4xs9408a642a1htto8z", request.PostForm.Get("card"))

		writeJSON(t, writer, map[string]any{
			"object":   "charge",
			"id":       "chrg_test_4xso2s8ivdej29pqnhz",
			"amount":   100000,
			"currency": "thb",
			"captured": true,
		})
	}))
	defer server.Close()

	charge, err := NewTestClient(server.URL).Charges().Create(context.Background(), map[string]any{
		"amount":   100000,
		"currency": "thb",
		"card":     "tokn_test_4xs9408a642a1htto8z",
	})
	require.NoError(t, err)
	assert.Equal(t, "chrg_test_4xso2s8ivdej29pqnhz", charge.ID())
	assert.Equal(t, int64(100000), charge.GetInt64("amount"))
	assert.Empty(t, charge.Changes())
}

func TestChargesClient_Retrieve(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/charges/chrg_1", request.URL.Path)

		writeJSON(t, writer, map[string]any{"object": "charge", "id": "chrg_1"})
	}))
	defer server.Close()

	charge, err := NewTestClient(server.URL).Charges().Retrieve(context.Background(), "chrg_1")
	require.NoError(t, err)
	assert.Equal(t, "chrg_1", charge.ID())
}

func TestChargesClient_RetrieveNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		writeJSON(t, writer, map[string]any{
			"object":  "error",
			"code":    "not_found",
			"message": "charge chrg_9 was not found",
		})
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).Charges().Retrieve(context.Background(), "chrg_9")
	require.Error(t, err)
	assert.True(t, siampay.IsNotFound(err))
}

func TestChargesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/charges", request.URL.Path)

		writeJSON(t, writer, map[string]any{
			"object": "list",
			"data": []any{
				map[string]any{"object": "charge", "id": "chrg_1"},
				map[string]any{"object": "charge", "id": "chrg_2"},
			},
		})
	}))
	defer server.Close()

	charges, err := NewTestClient(server.URL).Charges().List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, charges.Len())
	assert.Equal(t, "chrg_2", charges.Retrieve("chrg_2").ID())
}

func TestChargesClient_UpdateMergesDirtyAndExplicitFields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "/charges/chrg_1", request.URL.Path)

		require.NoError(t, request.ParseForm())
		// Dirty field carried over; explicit field wins the conflict.
		assert.Equal(t, "Order-384", request.PostForm.Get("reference"))
		assert.Equal(t, "explicit description", request.PostForm.Get("description"))

		writeJSON(t, writer, map[string]any{
			"object":      "charge",
			"id":          "chrg_1",
			"reference":   "Order-384",
			"description": "explicit description",
		})
	}))
	defer server.Close()

	charge := &siampay.Charge{}
	charge.Load(map[string]any{"object": "charge", "id": "chrg_1"})
	charge.Set("reference", "Order-384")
	charge.Set("description", "local description")

	updated, err := NewTestClient(server.URL).Charges().Update(context.Background(), charge, map[string]any{
		"description": "explicit description",
	})
	require.NoError(t, err)
	assert.Same(t, charge, updated)
	assert.Empty(t, charge.Changes())
	assert.Equal(t, "explicit description", charge.GetString("description"))
}

func TestChargesClient_UpdateWithoutID(t *testing.T) {
	t.Parallel()

	_, err := NewTestClient("http://127.0.0.1:0").Charges().Update(context.Background(), &siampay.Charge{}, nil)
	require.ErrorIs(t, err, siampay.ErrIDRequired)
}

func TestChargesClient_Capture(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/charges/chrg_1/capture", request.URL.Path)

		writeJSON(t, writer, map[string]any{
			"object":   "charge",
			"id":       "chrg_1",
			"captured": true,
		})
	}))
	defer server.Close()

	charge := &siampay.Charge{}
	charge.Load(map[string]any{"object": "charge", "id": "chrg_1", "captured": false})

	require.NoError(t, NewTestClient(server.URL).Charges().Capture(context.Background(), charge))
	assert.True(t, charge.GetBool("captured"))
}

func TestChargesClient_RefundReloadsCharge(t *testing.T) {
	t.Parallel()

	reloads := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/charges/chrg_1/refunds", func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodPost, request.Method)
		require.NoError(t, request.ParseForm())
		assert.Equal(t, "20000", request.PostForm.Get("amount"))

		writeJSON(t, writer, map[string]any{
			"object": "refund",
			"id":     "rfnd_test_4ypcvo03ktuw0uki7un",
			"amount": 20000,
		})
	})
	mux.HandleFunc("/charges/chrg_1", func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodGet, request.Method)
		reloads++

		writeJSON(t, writer, map[string]any{
			"object":          "charge",
			"id":              "chrg_1",
			"refunded_amount": 20000,
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	charge := &siampay.Charge{}
	charge.Load(map[string]any{"object": "charge", "id": "chrg_1", "refunded_amount": 0})

	refund, err := NewTestClient(server.URL).Charges().Refund(context.Background(), charge, map[string]any{
		"amount": 20000,
	})
	require.NoError(t, err)
	assert.Equal(t, "rfnd_test_4ypcvo03ktuw0uki7un", refund.ID())

	// Refunding mutates charge-level fields, so the charge is reloaded.
	assert.Equal(t, 1, reloads)
	assert.Equal(t, int64(20000), charge.GetInt64("refunded_amount"))
}

func TestChargesClient_Reload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/charges/chrg_1", request.URL.Path)

		writeJSON(t, writer, map[string]any{"object": "charge", "id": "chrg_1", "paid": true})
	}))
	defer server.Close()

	charge := &siampay.Charge{}
	charge.Load(map[string]any{"object": "charge", "id": "chrg_1"})
	charge.Set("description", "pending change")

	require.NoError(t, NewTestClient(server.URL).Charges().Reload(context.Background(), charge))
	assert.True(t, charge.GetBool("paid"))
	assert.Empty(t, charge.Changes(), "reload discards pending changes")
}

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

func TestEncodeFields(t *testing.T) {
	t.Parallel()

	values := encodeFields(map[string]any{
		"description":  "July sales",
		"capture":      false,
		"amount":       float64(100000),
		"installments": 3,
	})

	assert.Equal(t, "July sales", values.Get("description"))
	assert.Equal(t, "false", values.Get("capture"))
	assert.Equal(t, "100000", values.Get("amount"))
	assert.Equal(t, "3", values.Get("installments"))
}

func TestMergeChanges(t *testing.T) {
	t.Parallel()

	charge := &siampay.Charge{}
	charge.Load(map[string]any{"object": "charge", "id": "chrg_1"})
	charge.Set("description", "dirty")
	charge.Set("reference", "Order-1")

	values := mergeChanges(charge, map[string]any{"description": "explicit"})

	assert.Equal(t, "explicit", values.Get("description"))
	assert.Equal(t, "Order-1", values.Get("reference"))
}

func TestMaterializeResource_UnexpectedObject(t *testing.T) {
	t.Parallel()

	resp := &internalhttp.Response{
		StatusCode: 200,
		Body:       []byte(`{"object": "token", "id": "tokn_1"}`),
	}

	_, err := materializeResource[*siampay.Charge](resp)
	require.ErrorIs(t, err, siampay.ErrUnexpectedObject)
}

func TestInstanceLocation(t *testing.T) {
	t.Parallel()

	card := &siampay.Card{}
	card.Load(map[string]any{"object": "card", "id": "card_1", "location": "/customers/cust_1/cards/card_1"})

	location, err := instanceLocation(card)
	require.NoError(t, err)
	assert.Equal(t, "/customers/cust_1/cards/card_1", location)

	bare := &siampay.Card{}
	bare.Load(map[string]any{"object": "card", "id": "card_1"})

	_, err = instanceLocation(bare)
	require.ErrorIs(t, err, siampay.ErrLocationRequired)
}

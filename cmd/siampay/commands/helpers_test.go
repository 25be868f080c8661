package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	t.Parallel()

	fields, err := parseFields([]string{
		"description=July sales",
		"amount=100000",
		"capture=false",
		"reference=Order-384",
	})
	require.NoError(t, err)

	assert.Equal(t, "July sales", fields["description"])
	assert.Equal(t, int64(100000), fields["amount"])
	assert.Equal(t, false, fields["capture"])
	assert.Equal(t, "Order-384", fields["reference"])
}

func TestParseFields_Invalid(t *testing.T) {
	t.Parallel()

	_, err := parseFields([]string{"no-separator"})
	require.ErrorIs(t, err, ErrInvalidFieldFormat)

	_, err = parseFields([]string{"=value"})
	require.ErrorIs(t, err, ErrInvalidFieldFormat)
}

func TestFormatFieldValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", formatFieldValue(nil))
	assert.Equal(t, "thb", formatFieldValue("thb"))
	assert.Equal(t, "true", formatFieldValue(true))
	assert.Equal(t, "100000", formatFieldValue(float64(100000)))
	assert.Equal(t, "<card>", formatFieldValue(map[string]any{"object": "card"}))
	assert.Equal(t, "<3 items>", formatFieldValue([]any{1, 2, 3}))
}

func TestMaskKey(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskKey(""))
	assert.Equal(t, "***", maskKey("short"))
	assert.Equal(t, "skey_...3d2x", maskKey("skey_test_4xs8breq3htbkj03d2x"))
}

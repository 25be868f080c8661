package siampay_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siampay/siampay-go/pkg/siampay"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &siampay.APIError{
		Code:       "invalid_card",
		Message:    "card number invalid",
		StatusCode: 400,
	}

	assert.Equal(t, "invalid_card: card number invalid (status: 400)", err.Error())
}

func TestAPIError_ErrorWithoutStatus(t *testing.T) {
	t.Parallel()

	err := &siampay.APIError{Code: "not_found", Message: "customer missing was not found"}

	assert.Equal(t, "not_found: customer missing was not found", err.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code      string
		predicate func(error) bool
	}{
		{code: siampay.ErrorCodeNotFound, predicate: siampay.IsNotFound},
		{code: siampay.ErrorCodeAuthenticationFailure, predicate: siampay.IsAuthenticationFailure},
		{code: siampay.ErrorCodeInvalidCard, predicate: siampay.IsInvalidCard},
		{code: siampay.ErrorCodeUsedToken, predicate: siampay.IsUsedToken},
		{code: siampay.ErrorCodeBadRequest, predicate: siampay.IsBadRequest},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.code, func(t *testing.T) {
			t.Parallel()

			err := &siampay.APIError{Code: testCase.code, Message: "m"}
			assert.True(t, testCase.predicate(err))
			assert.False(t, testCase.predicate(&siampay.APIError{Code: "something_else"}))
			assert.False(t, testCase.predicate(siampay.ErrConfigRequired))
		})
	}
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("retrieving charge: %w", &siampay.APIError{
		Code:       siampay.ErrorCodeNotFound,
		Message:    "charge chrg_9 was not found",
		StatusCode: 404,
	})

	assert.True(t, siampay.IsNotFound(err))
	assert.False(t, siampay.IsBadRequest(err))
}

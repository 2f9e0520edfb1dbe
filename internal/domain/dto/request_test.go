package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request QuoteRequest
		wantErr error
	}{
		{
			name:    "items present",
			request: QuoteRequest{Items: map[string]int{"camisa": 3}},
		},
		{
			name:    "empty items object is valid",
			request: QuoteRequest{Items: map[string]int{}},
		},
		{
			name:    "nil items",
			request: QuoteRequest{DeliveryLocation: "lisboa"},
			wantErr: ErrMissingItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteRequest_ValidateAfterDecode(t *testing.T) {
	t.Run("null items", func(t *testing.T) {
		var req QuoteRequest
		require.NoError(t, json.Unmarshal([]byte(`{"items": null}`), &req))
		assert.ErrorIs(t, req.Validate(), ErrMissingItems)
	})

	t.Run("missing items field", func(t *testing.T) {
		var req QuoteRequest
		require.NoError(t, json.Unmarshal([]byte(`{"delivery_location": "porto"}`), &req))
		assert.ErrorIs(t, req.Validate(), ErrMissingItems)
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "items", Message: "must be an object of item quantities"}
	assert.Equal(t, "items: must be an object of item quantities", err.Error())
}

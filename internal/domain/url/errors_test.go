package url

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		want  string
	}{
		{input: "   ", kind: KindHTTP, want: "blank"},
		{input: "http://exa mple.com", kind: KindHTTP, want: "malformed"},
		{input: "https:///path", kind: KindHTTP, want: "missing_host"},
		{input: "ftp://example.com", kind: KindHTTP, want: "unsupported_scheme"},
		{input: "https://example.com", kind: KindWebSocket, want: "unsupported_scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, err := New(tt.kind, tt.input)
			assert.Equal(t, tt.want, Reason(fmt.Errorf("wrapped: %w", err)))
			assert.True(t, IsValidation(err))
		})
	}

	_, err := NewFromPtr(KindHTTP, nil)
	assert.Equal(t, "null", Reason(err))

	assert.Equal(t, "other", Reason(errors.New("boom")))
	assert.False(t, IsValidation(errors.New("boom")))
}

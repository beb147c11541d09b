package responses

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NewInvalidInputError("partial_images", "must be between 0 and 3, got 4"), "invalid input: partial_images: must be between 0 and 3, got 4"},
		{NewUnknownValueError("Role", "admin"), `invalid input: unknown Role value: "admin"`},
		{NewWrongVariantError("Content", "input_text", "input_image"), "wrong variant: Content is input_image, not input_text"},
		{NewWrongVariantError("Content", "input_text", ""), "wrong variant: Content is empty, not input_text"},
		{NewStatusCodeError(429, "rate limited"), "status error: rate limited (status 429)"},
		{NewInvariantError("duplicate response.created event"), "invariant: duplicate response.created event"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Fatalf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewTransportError(cause)

	if !errors.Is(err, cause) {
		t.Fatal("Unwrap must expose the cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("Error() = %q", err.Error())
	}
}

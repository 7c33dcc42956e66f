package dynamo

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTypedErrorsUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"separation", &SeparationError{I: 0, J: 1, NameI: "a", NameJ: "b"}, ErrDegenerateSeparation},
		{"camera", &CameraError{Requested: -1, Applied: 0.1}, ErrNonPositiveDistance},
		{"body", &BodyError{Name: "x", Mass: 0, Radius: 1}, ErrInvalidBody},
		{"sim", SimError{Step: 3, Message: "nan", Wrapped: ErrUnstable}, ErrUnstable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
		})
	}
}

func TestSeparationErrorMessage(t *testing.T) {
	err := &SeparationError{I: 2, J: 5, NameI: "earth", NameJ: "moon"}
	msg := err.Error()
	for _, want := range []string{"earth", "moon", "2", "5"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}

	var se *SeparationError
	if !errors.As(fmt.Errorf("wrap: %w", err), &se) || se.NameJ != "moon" {
		t.Error("errors.As should recover the pair")
	}
}

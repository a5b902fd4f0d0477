package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation(CodeMalformedRequest, "bad input"), fiber.StatusBadRequest},
		{"authorization", Authorization(CodeRoleNotPermitted, "no"), fiber.StatusForbidden},
		{"conflict", Conflict(CodeConcurrentModification, "raced"), fiber.StatusConflict},
		{"not found", NotFound("missing"), fiber.StatusNotFound},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := Conflict(CodeAlreadyTerminal, "application is done")

	if !IsCode(err, CodeAlreadyTerminal) {
		t.Error("expected IsCode to match")
	}
	if IsCode(err, CodeStageMismatch) {
		t.Error("IsCode must not match a different code")
	}
	if IsCode(errors.New("plain"), CodeAlreadyTerminal) {
		t.Error("IsCode must not match a plain error")
	}

	// matching survives wrapping
	wrapped := fmt.Errorf("context: %w", err)
	if !IsCode(wrapped, CodeAlreadyTerminal) {
		t.Error("IsCode must unwrap")
	}
}

func TestErrorMessageFormat(t *testing.T) {
	err := Validation(CodeUnknownService, "unknown service %q", "Moon Lease")
	want := `UnknownService: unknown service "Moon Lease"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

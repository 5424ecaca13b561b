package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
		body := e.ToHTTPError()
		if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("db down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		if body := e.ToHTTPError(); body.Message != "An internal error occurred" {
			t.Fatalf("cause must not leak: %+v", body)
		}
	})
}

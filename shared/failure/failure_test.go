package failure_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gakiokevin/myhotel/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad input")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("no token"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("not allowed"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("room not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("room number already exists"), code: http.StatusConflict},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "Unimplemented", err: failure.Unimplemented("Export"), code: http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected an error")
			}

			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestNilErrorsProduceNilFailures(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestRoomUnavailable(t *testing.T) {
	err := failure.RoomUnavailable("101", "Occupied")

	if failure.GetCode(err) != http.StatusConflict {
		t.Errorf("expected code %d, got %d", http.StatusConflict, failure.GetCode(err))
	}

	if !strings.Contains(err.Error(), "101") || !strings.Contains(err.Error(), "Occupied") {
		t.Errorf("expected message to carry room number and status, got %s", err.Error())
	}
}

func TestGetCode(t *testing.T) {
	t.Run("plain error maps to internal server error", func(t *testing.T) {
		if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
			t.Errorf("expected code %d, got %d", http.StatusInternalServerError, got)
		}
	})

	t.Run("wrapped failure keeps its code", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), failure.NotFound("booking not found"))

		if got := failure.GetCode(wrapped); got != http.StatusNotFound {
			t.Errorf("expected code %d, got %d", http.StatusNotFound, got)
		}
	})
}

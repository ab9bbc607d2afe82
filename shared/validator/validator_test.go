package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gakiokevin/myhotel/shared/failure"
	"github.com/gakiokevin/myhotel/shared/validator"
)

type checkInPayload struct {
	RoomID        int64  `json:"room_id"        validate:"required"`
	PaymentType   string `json:"payment_type"   validate:"required,oneof=now later"`
	PaymentMethod string `json:"payment_method" validate:"required_if=PaymentType now,omitempty,oneof=cash mpesa"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        checkInPayload
		expectError bool
	}{
		{
			name:        "valid pay-now payload",
			data:        checkInPayload{RoomID: 2, PaymentType: "now", PaymentMethod: "cash"},
			expectError: false,
		},
		{
			name:        "valid pay-later payload without method",
			data:        checkInPayload{RoomID: 2, PaymentType: "later"},
			expectError: false,
		},
		{
			name:        "missing room id",
			data:        checkInPayload{PaymentType: "later"},
			expectError: true,
		},
		{
			name:        "unknown payment type",
			data:        checkInPayload{RoomID: 2, PaymentType: "credit"},
			expectError: true,
		},
		{
			name:        "pay now without method",
			data:        checkInPayload{RoomID: 2, PaymentType: "now"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected a validation error")
				}

				if failure.GetCode(err) != http.StatusBadRequest {
					t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates a body", func(t *testing.T) {
		body := strings.NewReader(`{"room_id": 2, "payment_type": "now", "payment_method": "mpesa"}`)

		var payload checkInPayload
		if err := validator.Validate(body, &payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if payload.RoomID != 2 || payload.PaymentMethod != "mpesa" {
			t.Errorf("unexpected payload: %+v", payload)
		}
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		body := strings.NewReader(`{"room_id": `)

		var payload checkInPayload
		err := validator.Validate(body, &payload)

		if err == nil {
			t.Fatal("expected an error")
		}

		if failure.GetCode(err) != http.StatusBadRequest {
			t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("grace@example.com", "email"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "email"); err == nil {
		t.Error("expected a validation error")
	}
}

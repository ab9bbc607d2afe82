package dto_test

import (
	"testing"

	"github.com/gakiokevin/myhotel/internal/domains/frontdesk/model/dto"
)

func TestCheckInRequest_PaysNow(t *testing.T) {
	tests := []struct {
		name        string
		paymentType string
		expected    bool
	}{
		{name: "now", paymentType: dto.PaymentTypeNow, expected: true},
		{name: "later", paymentType: dto.PaymentTypeLater, expected: false},
		{name: "empty", paymentType: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CheckInRequest{PaymentType: tt.paymentType}
			if req.PaysNow() != tt.expected {
				t.Errorf("expected PaysNow() to be %v for %q", tt.expected, tt.paymentType)
			}
		})
	}
}

func TestGuestPayload_ToModel(t *testing.T) {
	payload := dto.GuestPayload{
		FirstName: "Jane",
		LastName:  "Mwangi",
		Phone:     "+254700000001",
		Email:     "jane@example.com",
		IDType:    "national_id",
		IDNumber:  "12345678",
	}

	guest := payload.ToModel("test-user-id")

	if guest.FirstName != "Jane" || guest.LastName != "Mwangi" {
		t.Errorf("unexpected name: %s %s", guest.FirstName, guest.LastName)
	}

	if guest.IDNumber != "12345678" {
		t.Errorf("unexpected id number: %s", guest.IDNumber)
	}

	if guest.CreatedBy != "test-user-id" || guest.ModifiedBy != "test-user-id" {
		t.Errorf("unexpected actors: %s / %s", guest.CreatedBy, guest.ModifiedBy)
	}

	if guest.CreatedAt.IsZero() || guest.ModifiedAt.IsZero() {
		t.Error("expected creation timestamps to be stamped")
	}
}

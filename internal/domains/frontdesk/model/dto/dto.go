package dto

import (
	"time"

	guestModel "github.com/gakiokevin/myhotel/internal/domains/guest/model"
	gModel "github.com/gakiokevin/myhotel/shared/model"
	"github.com/gakiokevin/myhotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type GuestPayload struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Phone     string `json:"phone"      validate:"required,max=20"`
	Email     string `json:"email"      validate:"omitempty,email,max=100"`
	IDType    string `json:"id_type"    validate:"required,max=50"`
	IDNumber  string `json:"id_number"  validate:"required,max=50"`
}

func (g *GuestPayload) ToModel(user string) guestModel.Guest {
	return guestModel.Guest{
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Phone:     g.Phone,
		Email:     g.Email,
		IDType:    g.IDType,
		IDNumber:  g.IDNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

const (
	PaymentTypeNow   = "now"
	PaymentTypeLater = "later"
)

type CheckInRequest struct {
	Guest         GuestPayload    `json:"guest"          validate:"required"`
	RoomID        int64           `json:"room_id"        validate:"required"`
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	PaymentType   string          `json:"payment_type"   validate:"required,oneof=now later"`
	PaymentMethod string          `json:"payment_method" validate:"required_if=PaymentType now,omitempty,oneof=cash mpesa"`
	TransactionID string          `json:"transaction_id" validate:"omitempty,max=100"`
}

func (c *CheckInRequest) PaysNow() bool {
	return c.PaymentType == PaymentTypeNow
}

// CheckInResponse is the wire contract of the check-in endpoint. The receipt
// number is present only when payment was collected during check-in.
type CheckInResponse struct {
	Success       bool   `json:"success"`
	ReceiptNumber string `json:"receiptNumber,omitempty"`
}

type CheckOutPayment struct {
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	Method        string          `json:"method"         validate:"required,oneof=cash mpesa"`
	TransactionID string          `json:"transaction_id" validate:"omitempty,max=100"`
}

type CheckOutDamageReport struct {
	Description string           `json:"description" validate:"required"`
	Severity    string           `json:"severity"    validate:"required,oneof=low medium high"`
	RepairCost  *decimal.Decimal `json:"repair_cost" validate:"omitempty"`
}

type CheckOutRequest struct {
	BookingID    int64                 `json:"booking_id"    validate:"required"`
	Payment      *CheckOutPayment      `json:"payment"       validate:"omitempty"`
	DamageReport *CheckOutDamageReport `json:"damage_report" validate:"omitempty"`
}

type CheckOutResponse struct {
	Success       bool   `json:"success"`
	ReceiptNumber string `json:"receiptNumber,omitempty"`
}

type CheckedInEvent struct {
	BookingID     int64     `json:"booking_id"`
	GuestID       int64     `json:"guest_id"`
	RoomID        int64     `json:"room_id"`
	PaymentStatus string    `json:"payment_status"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	CheckedInBy   string    `json:"checked_in_by"`
	CheckedInAt   time.Time `json:"checked_in_at"`
}

type CheckedOutEvent struct {
	BookingID     int64     `json:"booking_id"`
	RoomID        int64     `json:"room_id"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	CheckedOutBy  string    `json:"checked_out_by"`
	CheckedOutAt  time.Time `json:"checked_out_at"`
}

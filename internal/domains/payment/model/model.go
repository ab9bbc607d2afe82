package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldMethod        = "method"
	FieldTransactionID = "transaction_id"
	FieldReceiptNumber = "receipt_number"
	FieldCollectedBy   = "collected_by"
	FieldPaidAt        = "paid_at"

	MethodCash  = "cash"
	MethodMpesa = "mpesa"
)

// Payment rows are append-only. Each row records one collection event against
// a booking, tagged with the receipt number handed to the guest.
type Payment struct {
	ID            int64           `db:"id"`
	BookingID     int64           `db:"booking_id"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	TransactionID string          `db:"transaction_id"`
	ReceiptNumber string          `db:"receipt_number"`
	CollectedBy   string          `db:"collected_by"`
	PaidAt        time.Time       `db:"paid_at"`
}

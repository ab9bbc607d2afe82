package model

import (
	"database/sql"
	"time"

	"github.com/gakiokevin/myhotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldRoomID        = "room_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldTotalAmount   = "total_amount"
	FieldPaymentStatus = "payment_status"
	FieldStatus        = "status"

	StatusPending    = "Pending"
	StatusCheckedIn  = "Checked-in"
	StatusCheckedOut = "Checked-out"

	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Unpaid"
)

// Booking links one guest to one room for a single stay. check_out_date
// stays NULL until the stay reaches Checked-out.
type Booking struct {
	ID            int64           `db:"id"`
	GuestID       int64           `db:"guest_id"`
	RoomID        int64           `db:"room_id"`
	CheckInDate   time.Time       `db:"check_in_date"`
	CheckOutDate  sql.NullTime    `db:"check_out_date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentStatus string          `db:"payment_status"`
	Status        string          `db:"status"`

	GuestFirstName string `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  string `db:"guest_last_name"  table:"guests" column:"last_name"`
	GuestPhone     string `db:"guest_phone"      table:"guests" column:"phone"`
	RoomNumber     string `db:"room_number"      table:"rooms"  column:"room_number"`
	RoomType       string `db:"room_type"        table:"rooms"  column:"type"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN guests ON guests.id = bookings.guest_id JOIN rooms ON rooms.id = bookings.room_id"
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "dashboard"
)

// RoomStatusCount is one row of the per-status room breakdown. Percentage is
// pre-rendered relative to the total room count, e.g. "57%".
type RoomStatusCount struct {
	Status     string `db:"status"     json:"status"`
	Count      int    `db:"count"      json:"count"`
	Percentage string `db:"percentage" json:"percentage"`
}

// RecentBooking is a booking joined with its guest and room for the
// dashboard's recent-activity list.
type RecentBooking struct {
	ID          int64     `db:"id"            json:"id"`
	CheckInDate time.Time `db:"check_in_date" json:"check_in_date"`
	Status      string    `db:"status"        json:"status"`
	GuestName   string    `db:"guest_name"    json:"guest_name"`
	RoomNumber  string    `db:"room_number"   json:"room_number"`
	RoomType    string    `db:"room_type"     json:"room_type"`
}

// Stats is a read-only aggregation snapshot across rooms, bookings,
// payments and guests.
type Stats struct {
	TotalRooms       int             `db:"total_rooms"       json:"total_rooms"`
	AvailableRooms   int             `db:"available_rooms"   json:"available_rooms"`
	OccupiedRooms    int             `db:"occupied_rooms"    json:"occupied_rooms"`
	MaintenanceRooms int             `db:"maintenance_rooms" json:"maintenance_rooms"`
	ActiveBookings   int             `db:"active_bookings"   json:"active_bookings"`
	ActiveGuests     int             `db:"active_guests"     json:"active_guests"`
	UnpaidBookings   int             `db:"unpaid_bookings"   json:"unpaid_bookings"`
	TodaysCheckIns   int             `db:"todays_check_ins"  json:"todays_check_ins"`
	TodaysCheckOuts  int             `db:"todays_check_outs" json:"todays_check_outs"`
	RevenueToday     decimal.Decimal `db:"revenue_today"     json:"revenue_today"`
	TotalGuests      int             `db:"total_guests"      json:"total_guests"`

	RoomStatusBreakdown []RoomStatusCount `db:"-" json:"room_status_breakdown"`
	RecentBookings      []RecentBooking   `db:"-" json:"recent_bookings"`
}

package model

import (
	"github.com/gakiokevin/myhotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "damage_reports"
	EntityName = "damage_report"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldDescription = "description"
	FieldSeverity    = "severity"
	FieldRepairCost  = "repair_cost"
	FieldPhotoURL    = "photo_url"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// DamageReport rows are append-only incident records tied to a booking,
// normally written by the check-out flow.
type DamageReport struct {
	ID          int64               `db:"id"`
	BookingID   int64               `db:"booking_id"`
	Description string              `db:"description"`
	Severity    string              `db:"severity"`
	RepairCost  decimal.NullDecimal `db:"repair_cost"`
	PhotoURL    string              `db:"photo_url"`
	model.Metadata
}

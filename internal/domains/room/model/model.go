package model

import (
	"github.com/gakiokevin/myhotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldType          = "type"
	FieldStatus        = "status"
	FieldPricePerNight = "price_per_night"
	FieldMaxOccupancy  = "max_occupancy"
	FieldFloor         = "floor"

	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
)

type Room struct {
	ID            int64           `db:"id"`
	RoomNumber    string          `db:"room_number"`
	Type          string          `db:"type"`
	Status        string          `db:"status"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	MaxOccupancy  int             `db:"max_occupancy"`
	Floor         int             `db:"floor"`
	model.Metadata
}

package dto

import (
	"github.com/gakiokevin/myhotel/internal/domains/room/model"
	"github.com/gakiokevin/myhotel/shared"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	gModel "github.com/gakiokevin/myhotel/shared/model"
	"github.com/gakiokevin/myhotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber    string          `json:"room_number"     validate:"required,max=20"`
	Type          string          `json:"type"            validate:"required,max=50"`
	PricePerNight decimal.Decimal `json:"price_per_night" validate:"required"`
	MaxOccupancy  int             `json:"max_occupancy"   validate:"omitempty,min=1"`
	Floor         int             `json:"floor"           validate:"omitempty,min=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	maxOccupancy := c.MaxOccupancy
	if maxOccupancy == 0 {
		maxOccupancy = 1
	}

	return model.Room{
		RoomNumber:    c.RoomNumber,
		Type:          c.Type,
		Status:        model.StatusAvailable,
		PricePerNight: c.PricePerNight,
		MaxOccupancy:  maxOccupancy,
		Floor:         c.Floor,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string           `db:"room_number"     json:"room_number"     validate:"omitempty,max=20"`
	Type          string           `db:"type"            json:"type"            validate:"omitempty,max=50"`
	Status        string           `db:"status"          json:"status"          validate:"omitempty,oneof=Available Occupied Maintenance"`
	PricePerNight *decimal.Decimal `db:"price_per_night" json:"price_per_night" validate:"omitempty"`
	MaxOccupancy  *int             `db:"max_occupancy"   json:"max_occupancy"   validate:"omitempty,min=1"`
	Floor         *int             `db:"floor"           json:"floor"           validate:"omitempty,min=0"`
}

type RoomResponse struct {
	ID            int64           `json:"id"`
	RoomNumber    string          `json:"room_number"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	MaxOccupancy  int             `json:"max_occupancy"`
	Floor         int             `json:"floor"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Status = model.Status
	r.PricePerNight = model.PricePerNight
	r.MaxOccupancy = model.MaxOccupancy
	r.Floor = model.Floor
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

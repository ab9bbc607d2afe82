package dto

import (
	"github.com/gakiokevin/myhotel/internal/domains/booking/model"
	"github.com/gakiokevin/myhotel/shared"
	"github.com/gakiokevin/myhotel/shared/constant"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	"github.com/gakiokevin/myhotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID             int64           `json:"id"`
	GuestID        int64           `json:"guest_id"`
	RoomID         int64           `json:"room_id"`
	GuestFirstName string          `json:"guest_first_name"`
	GuestLastName  string          `json:"guest_last_name"`
	GuestPhone     string          `json:"guest_phone"`
	RoomNumber     string          `json:"room_number"`
	RoomType       string          `json:"room_type"`
	CheckInDate    string          `json:"check_in_date"`
	CheckOutDate   string          `json:"check_out_date,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentStatus  string          `json:"payment_status"`
	Status         string          `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.GuestFirstName = model.GuestFirstName
	r.GuestLastName = model.GuestLastName
	r.GuestPhone = model.GuestPhone
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.DateFormat)
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = model.PaymentStatus
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)

	if model.CheckOutDate.Valid {
		r.CheckOutDate = timezone.Format(model.CheckOutDate.Time, constant.DateFormat)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

package dto

import (
	"github.com/gakiokevin/myhotel/internal/domains/payment/model"
	"github.com/gakiokevin/myhotel/shared"
	"github.com/gakiokevin/myhotel/shared/constant"
	"github.com/gakiokevin/myhotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID            int64           `json:"id"`
	BookingID     int64           `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	ReceiptNumber string          `json:"receipt_number"`
	CollectedBy   string          `json:"collected_by"`
	PaidAt        string          `json:"paid_at"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.TransactionID = model.TransactionID
	r.ReceiptNumber = model.ReceiptNumber
	r.CollectedBy = model.CollectedBy
	r.PaidAt = timezone.Format(model.PaidAt, constant.DateFormat)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

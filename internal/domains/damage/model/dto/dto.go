package dto

import (
	"mime/multipart"

	"github.com/gakiokevin/myhotel/internal/domains/damage/model"
	"github.com/gakiokevin/myhotel/shared"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	gModel "github.com/gakiokevin/myhotel/shared/model"
	"github.com/gakiokevin/myhotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateDamageRequest struct {
	BookingID   int64            `json:"booking_id"  validate:"required"`
	Description string           `json:"description" validate:"required"`
	Severity    string           `json:"severity"    validate:"required,oneof=low medium high"`
	RepairCost  *decimal.Decimal `json:"repair_cost" validate:"omitempty"`
}

func (c *CreateDamageRequest) ToModel(user string) model.DamageReport {
	repairCost := decimal.NullDecimal{}
	if c.RepairCost != nil {
		repairCost = decimal.NewNullDecimal(*c.RepairCost)
	}

	return model.DamageReport{
		BookingID:   c.BookingID,
		Description: c.Description,
		Severity:    c.Severity,
		RepairCost:  repairCost,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DamageResponse struct {
	ID          int64            `json:"id"`
	BookingID   int64            `json:"booking_id"`
	Description string           `json:"description"`
	Severity    string           `json:"severity"`
	RepairCost  *decimal.Decimal `json:"repair_cost,omitempty"`
	PhotoURL    string           `json:"photo_url,omitempty"`
	gDto.Metadata
}

func (r *DamageResponse) FromModel(model model.DamageReport) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Description = model.Description
	r.Severity = model.Severity
	r.PhotoURL = model.PhotoURL
	r.Metadata.FromModel(model.Metadata)

	if model.RepairCost.Valid {
		cost := model.RepairCost.Decimal
		r.RepairCost = &cost
	}
}

type GetDamagesResponse struct {
	DamageReports []DamageResponse `json:"damage_reports"`
	TotalPage     int              `json:"total_page"`
	TotalData     int              `json:"total_data"`
}

func (r *GetDamagesResponse) FromModels(models []model.DamageReport, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.DamageReports = make([]DamageResponse, len(models))
	for i, mod := range models {
		r.DamageReports[i].FromModel(mod)
	}
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

package damage

import (
	"net/http"
	"strconv"

	"github.com/gakiokevin/myhotel/infras/otel"
	"github.com/gakiokevin/myhotel/internal/domains/damage/model"
	"github.com/gakiokevin/myhotel/internal/domains/damage/model/dto"
	"github.com/gakiokevin/myhotel/internal/domains/damage/service"
	"github.com/gakiokevin/myhotel/shared/constant"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	"github.com/gakiokevin/myhotel/shared/failure"
	"github.com/gakiokevin/myhotel/shared/validator"
	"github.com/gakiokevin/myhotel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DamageReport
	otel    otel.Otel
}

func New(service service.DamageReport, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/damages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDamageReport)
		routerGroup.Get("/", handler.GetDamageReports)
		routerGroup.Post("/{id}/photo", handler.UploadPhoto)
	})
}

// CreateDamageReport records damage against a booking outside of check-out.
// @Summary Create a damage report
// @Description Record damage found in a room against its booking.
// @Tags Damage
// @Accept json
// @Produce json
// @Param request body dto.CreateDamageRequest true "Damage details"
// @Success 201 {object} response.Message "Damage report created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/damages [post]
// @Security BearerAuth
func (handler *Handler) CreateDamageReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDamageReport")
	defer scope.End()

	var req dto.CreateDamageRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate damage report request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create damage report")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Damage report created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Damage report created successfully")
}

// GetDamageReports retrieves damage reports based on query parameters.
// @Summary Get all damage reports
// @Description Retrieve damage reports with optional filtering and pagination.
// @Tags Damage
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param severity query string false "Filter by severity"
// @Param booking_id query integer false "Filter by booking"
// @Success 200 {object} response.Data[dto.GetDamagesResponse] "List of damage reports"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/damages [get]
// @Security BearerAuth
func (handler *Handler) GetDamageReports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDamageReports")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSeverity,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldSeverity),
				Table:    model.TableName,
			},
		},
	}

	if bookingID, err := strconv.ParseInt(r.URL.Query().Get(model.FieldBookingID), 10, 64); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	damages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get damage reports")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Damage reports retrieved successfully")

	response.WithJSON(w, http.StatusOK, damages)
}

// UploadPhoto attaches a photo to a damage report.
// @Summary Upload a damage photo
// @Description Upload a photo for an existing damage report. Replaces the previous photo if one exists.
// @Tags Damage
// @Accept multipart/form-data
// @Produce json
// @Param id path integer true "Damage report ID"
// @Param photo formData file true "Damage photo (png or jpeg, max 5 MB)"
// @Success 200 {object} response.Data[dto.UploadPhotoResponse] "Uploaded photo details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/damages/{id}/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequestFromString("invalid damage report id"))

		return
	}

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.UploadPhotoRequest{}

	file, fileHeader, err := request.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UploadPhoto(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload damage photo")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Damage photo uploaded successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

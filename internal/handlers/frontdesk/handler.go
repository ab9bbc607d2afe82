package frontdesk

import (
	"net/http"

	"github.com/gakiokevin/myhotel/infras/otel"
	"github.com/gakiokevin/myhotel/internal/domains/frontdesk/model/dto"
	"github.com/gakiokevin/myhotel/internal/domains/frontdesk/service"
	"github.com/gakiokevin/myhotel/shared/constant"
	"github.com/gakiokevin/myhotel/shared/validator"
	"github.com/gakiokevin/myhotel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FrontDesk
	otel    otel.Otel
}

func New(service service.FrontDesk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/frontdesk", func(routerGroup chi.Router) {
		routerGroup.Post("/check-in", handler.CheckIn)
		routerGroup.Post("/check-out", handler.CheckOut)
	})
}

// CheckIn registers a guest into a room in a single atomic operation.
// @Summary Check a guest into a room
// @Description Creates the guest if needed, opens a booking, optionally records an immediate payment and marks the room occupied. All steps succeed or none do.
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in details"
// @Success 200 {object} dto.CheckInResponse "Check-in completed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/frontdesk/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	var req dto.CheckInRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate check-in request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", req.RoomID).Msg("check-in failed")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked in by user " + user)

	response.WithRaw(writer, http.StatusOK, res)
}

// CheckOut settles a booking and releases the room in a single atomic operation.
// @Summary Check a guest out of a room
// @Description Optionally records a final payment and a damage report, closes the booking and marks the room available. All steps succeed or none do.
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Param request body dto.CheckOutRequest true "Check-out details"
// @Success 200 {object} dto.CheckOutResponse "Check-out completed"
// @Failure 400 {object} response.ErrorDetails
// @Failure 404 {object} response.ErrorDetails
// @Failure 409 {object} response.ErrorDetails
// @Failure 500 {object} response.ErrorDetails
// @Router /v1/frontdesk/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	var req dto.CheckOutRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate check-out request")

		response.WithErrorDetails(writer, "Check-out failed", err)

		return
	}

	res, err := handler.service.CheckOut(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", req.BookingID).Msg("check-out failed")

		response.WithErrorDetails(writer, "Check-out failed", err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked out by user " + user)

	response.WithRaw(writer, http.StatusOK, res)
}

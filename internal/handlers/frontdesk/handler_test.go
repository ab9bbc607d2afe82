package frontdesk_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gakiokevin/myhotel/infras/otel/mocks"
	frontdeskMocks "github.com/gakiokevin/myhotel/internal/domains/frontdesk/mocks"
	"github.com/gakiokevin/myhotel/internal/domains/frontdesk/model/dto"
	"github.com/gakiokevin/myhotel/internal/handlers/frontdesk"
	"github.com/gakiokevin/myhotel/shared/failure"
)

const checkInBody = `{
	"guest": {
		"first_name": "Jane",
		"last_name": "Mwangi",
		"phone": "+254700000001",
		"id_type": "national_id",
		"id_number": "12345678"
	},
	"room_id": 2,
	"amount": "4500",
	"payment_type": "now",
	"payment_method": "cash"
}`

func newRouter(service *frontdeskMocks.MockFrontDesk) *chi.Mux {
	handler := frontdesk.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_CheckIn(t *testing.T) {
	t.Run("successful check-in responds 200 with the receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := frontdeskMocks.NewMockFrontDesk(ctrl)
		service.EXPECT().
			CheckIn(gomock.Any(), gomock.Any()).
			Return(dto.CheckInResponse{Success: true, ReceiptNumber: "RCT-20240115-42"}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/frontdesk/check-in", strings.NewReader(checkInBody))

		newRouter(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var res dto.CheckInResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, "RCT-20240115-42", res.ReceiptNumber)
	})

	t.Run("unavailable room maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := frontdeskMocks.NewMockFrontDesk(ctrl)
		service.EXPECT().
			CheckIn(gomock.Any(), gomock.Any()).
			Return(dto.CheckInResponse{}, failure.RoomUnavailable("101", "Occupied"))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/frontdesk/check-in", strings.NewReader(checkInBody))

		newRouter(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("invalid body never reaches the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := frontdeskMocks.NewMockFrontDesk(ctrl)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/frontdesk/check-in", strings.NewReader(`{"room_id": 2}`))

		newRouter(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_CheckOut(t *testing.T) {
	t.Run("successful check-out responds 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := frontdeskMocks.NewMockFrontDesk(ctrl)
		service.EXPECT().
			CheckOut(gomock.Any(), gomock.Any()).
			Return(dto.CheckOutResponse{Success: true}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/frontdesk/check-out", strings.NewReader(`{"booking_id": 42}`))

		newRouter(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var res dto.CheckOutResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.True(t, res.Success)
	})
}

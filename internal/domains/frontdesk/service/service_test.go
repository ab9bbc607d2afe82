package service_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gakiokevin/myhotel/config"
	kafkaMocks "github.com/gakiokevin/myhotel/infras/kafka/mocks"
	"github.com/gakiokevin/myhotel/infras/otel/mocks"
	postgresMocks "github.com/gakiokevin/myhotel/infras/postgres/mocks"
	bookingMocks "github.com/gakiokevin/myhotel/internal/domains/booking/mocks"
	bookingModel "github.com/gakiokevin/myhotel/internal/domains/booking/model"
	damageMocks "github.com/gakiokevin/myhotel/internal/domains/damage/mocks"
	damageModel "github.com/gakiokevin/myhotel/internal/domains/damage/model"
	"github.com/gakiokevin/myhotel/internal/domains/frontdesk/model/dto"
	"github.com/gakiokevin/myhotel/internal/domains/frontdesk/service"
	guestMocks "github.com/gakiokevin/myhotel/internal/domains/guest/mocks"
	guestModel "github.com/gakiokevin/myhotel/internal/domains/guest/model"
	paymentMocks "github.com/gakiokevin/myhotel/internal/domains/payment/mocks"
	paymentModel "github.com/gakiokevin/myhotel/internal/domains/payment/model"
	roomMocks "github.com/gakiokevin/myhotel/internal/domains/room/mocks"
	roomModel "github.com/gakiokevin/myhotel/internal/domains/room/model"
	cacheMocks "github.com/gakiokevin/myhotel/shared/cache/mocks"
	"github.com/gakiokevin/myhotel/shared/constant"
	sharedDto "github.com/gakiokevin/myhotel/shared/dto"
	"github.com/gakiokevin/myhotel/shared/failure"
)

var receiptPattern = regexp.MustCompile(`^RCT-\d{8}-\d+$`)

type serviceMocks struct {
	tx       *postgresMocks.MockTransactor
	guests   *guestMocks.MockGuest
	rooms    *roomMocks.MockRoom
	bookings *bookingMocks.MockBooking
	payments *paymentMocks.MockPayment
	damages  *damageMocks.MockDamageReport
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newService(ctrl *gomock.Controller) (service.FrontDesk, serviceMocks) {
	m := serviceMocks{
		tx:       postgresMocks.NewMockTransactor(ctrl),
		guests:   guestMocks.NewMockGuest(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		payments: paymentMocks.NewMockPayment(ctrl),
		damages:  damageMocks.NewMockDamageReport(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.tx, m.guests, m.rooms, m.bookings, m.payments, m.damages, cfg, m.cache, m.kafka, mocks.NewOtel())

	return svc, m
}

func passthroughTx(m serviceMocks) {
	m.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func checkInRequest(paymentType string) dto.CheckInRequest {
	return dto.CheckInRequest{
		Guest: dto.GuestPayload{
			FirstName: "Jane",
			LastName:  "Mwangi",
			Phone:     "+254700000001",
			IDType:    "national_id",
			IDNumber:  "12345678",
		},
		RoomID:        2,
		Amount:        decimal.NewFromInt(4500),
		PaymentType:   paymentType,
		PaymentMethod: "cash",
	}
}

func TestFrontDeskService_CheckIn(t *testing.T) {
	availableRoom := roomModel.Room{
		ID:            2,
		RoomNumber:    "101",
		Type:          "double",
		Status:        roomModel.StatusAvailable,
		PricePerNight: decimal.NewFromInt(5000),
	}

	t.Run("pay now creates booking, payment and receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.guests.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{}, nil)

		m.guests.EXPECT().
			InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(7), nil)

		m.rooms.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(availableRoom, true, nil)

		m.bookings.EXPECT().
			InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking bookingModel.Booking) (int64, error) {
				assert.Equal(t, int64(7), booking.GuestID)
				assert.Equal(t, int64(2), booking.RoomID)
				assert.Equal(t, bookingModel.StatusCheckedIn, booking.Status)
				assert.Equal(t, bookingModel.PaymentStatusPaid, booking.PaymentStatus)
				assert.True(t, booking.TotalAmount.Equal(decimal.NewFromInt(4500)))

				return 42, nil
			})

		m.payments.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment paymentModel.Payment) error {
				assert.Equal(t, int64(42), payment.BookingID)
				assert.True(t, payment.Amount.Equal(availableRoom.PricePerNight))
				assert.Equal(t, paymentModel.MethodCash, payment.Method)
				assert.Regexp(t, receiptPattern, payment.ReceiptNumber)

				return nil
			})

		m.rooms.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ sharedDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])

				return nil
			})

		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckIn(ctx, checkInRequest(dto.PaymentTypeNow))

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Regexp(t, receiptPattern, res.ReceiptNumber)
	})

	t.Run("pay later records no payment and leaves booking unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		// Guest already known: no insert happens.
		m.guests.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: 7, IDNumber: "12345678"}, nil)

		m.rooms.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(availableRoom, true, nil)

		m.bookings.EXPECT().
			InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking bookingModel.Booking) (int64, error) {
				assert.Equal(t, bookingModel.PaymentStatusUnpaid, booking.PaymentStatus)

				return 43, nil
			})

		m.rooms.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckIn(ctx, checkInRequest(dto.PaymentTypeLater))

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Empty(t, res.ReceiptNumber)
	})

	t.Run("occupied room is rejected with conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.guests.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: 7}, nil)

		m.rooms.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: 2, RoomNumber: "101", Status: roomModel.StatusOccupied}, true, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckIn(ctx, checkInRequest(dto.PaymentTypeNow))

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.False(t, res.Success)
	})

	t.Run("unknown room is rejected with not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.guests.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: 7}, nil)

		m.rooms.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, false, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		_, err := svc.CheckIn(ctx, checkInRequest(dto.PaymentTypeNow))

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("room status update failure aborts the whole check-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.guests.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: 7, IDNumber: "12345678"}, nil)

		m.rooms.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(availableRoom, true, nil)

		m.bookings.EXPECT().
			InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(42), nil)

		m.payments.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		// Booking and payment already went through inside the transaction;
		// the failed room update must roll everything back.
		m.rooms.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("update rooms: connection reset"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckIn(ctx, checkInRequest(dto.PaymentTypeNow))

		assert.Error(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, res.ReceiptNumber)
	})

	t.Run("guest lookup failure aborts the workflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.guests.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{}, errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckIn(ctx, checkInRequest(dto.PaymentTypeNow))

		assert.Error(t, err)
		assert.False(t, res.Success)
	})
}

func TestFrontDeskService_CheckOut(t *testing.T) {
	activeBooking := bookingModel.Booking{
		ID:            42,
		GuestID:       7,
		RoomID:        2,
		Status:        bookingModel.StatusCheckedIn,
		PaymentStatus: bookingModel.PaymentStatusUnpaid,
	}

	t.Run("payment and damage report settle the stay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.bookings.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activeBooking, true, nil)

		m.payments.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment paymentModel.Payment) error {
				assert.Equal(t, int64(42), payment.BookingID)
				assert.True(t, payment.Amount.Equal(decimal.NewFromInt(9000)))
				assert.Regexp(t, receiptPattern, payment.ReceiptNumber)

				return nil
			})

		m.damages.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, damage damageModel.DamageReport) error {
				assert.Equal(t, int64(42), damage.BookingID)
				assert.Equal(t, "high", damage.Severity)

				return nil
			})

		m.bookings.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ sharedDto.FilterGroup) error {
				assert.Equal(t, bookingModel.StatusCheckedOut, fields[bookingModel.FieldStatus])
				assert.Equal(t, bookingModel.PaymentStatusPaid, fields[bookingModel.FieldPaymentStatus])
				assert.Contains(t, fields, bookingModel.FieldCheckOutDate)

				return nil
			})

		m.rooms.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ sharedDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

				return nil
			})

		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		repairCost := decimal.NewFromInt(1500)
		req := dto.CheckOutRequest{
			BookingID: 42,
			Payment: &dto.CheckOutPayment{
				Amount: decimal.NewFromInt(9000),
				Method: "mpesa",
			},
			DamageReport: &dto.CheckOutDamageReport{
				Description: "broken mirror",
				Severity:    "high",
				RepairCost:  &repairCost,
			},
		}

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckOut(ctx, req)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Regexp(t, receiptPattern, res.ReceiptNumber)
	})

	t.Run("check-out without payment keeps payment status untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.bookings.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(activeBooking, true, nil)

		m.bookings.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ sharedDto.FilterGroup) error {
				assert.Equal(t, bookingModel.StatusCheckedOut, fields[bookingModel.FieldStatus])
				assert.NotContains(t, fields, bookingModel.FieldPaymentStatus)

				return nil
			})

		m.rooms.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckOut(ctx, dto.CheckOutRequest{BookingID: 42})

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Empty(t, res.ReceiptNumber)
	})

	t.Run("unknown booking is rejected with not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		m.bookings.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, false, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		_, err := svc.CheckOut(ctx, dto.CheckOutRequest{BookingID: 99})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("already checked-out booking is rejected with conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)
		passthroughTx(m)

		settled := activeBooking
		settled.Status = bookingModel.StatusCheckedOut

		m.bookings.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(settled, true, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		_, err := svc.CheckOut(ctx, dto.CheckOutRequest{BookingID: 42})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Contains(t, err.Error(), bookingModel.StatusCheckedOut)
	})

	t.Run("transaction error leaves no success flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newService(ctrl)

		m.tx.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			Return(errors.New("begin transaction: connection refused"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "1")
		res, err := svc.CheckOut(ctx, dto.CheckOutRequest{BookingID: 42})

		assert.Error(t, err)
		assert.False(t, res.Success)
	})
}

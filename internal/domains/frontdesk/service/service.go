package service

import (
	"context"
	"fmt"

	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/infras/kafka"
	"github.com/gakiokevin/myhotel/infras/otel"
	"github.com/gakiokevin/myhotel/infras/postgres"
	bookingModel "github.com/gakiokevin/myhotel/internal/domains/booking/model"
	bookingRepo "github.com/gakiokevin/myhotel/internal/domains/booking/repository"
	damageModel "github.com/gakiokevin/myhotel/internal/domains/damage/model"
	damageRepo "github.com/gakiokevin/myhotel/internal/domains/damage/repository"
	"github.com/gakiokevin/myhotel/internal/domains/frontdesk/model/dto"
	guestModel "github.com/gakiokevin/myhotel/internal/domains/guest/model"
	guestRepo "github.com/gakiokevin/myhotel/internal/domains/guest/repository"
	paymentModel "github.com/gakiokevin/myhotel/internal/domains/payment/model"
	paymentRepo "github.com/gakiokevin/myhotel/internal/domains/payment/repository"
	roomModel "github.com/gakiokevin/myhotel/internal/domains/room/model"
	roomRepo "github.com/gakiokevin/myhotel/internal/domains/room/repository"
	"github.com/gakiokevin/myhotel/shared"
	"github.com/gakiokevin/myhotel/shared/cache"
	"github.com/gakiokevin/myhotel/shared/constant"
	"github.com/gakiokevin/myhotel/shared/failure"
	gModel "github.com/gakiokevin/myhotel/shared/model"
	"github.com/gakiokevin/myhotel/shared/receipt"
	"github.com/gakiokevin/myhotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cachePrefixRoom      = "room"
	cachePrefixBooking   = "booking"
	cachePrefixGuest     = "guest"
	cachePrefixDashboard = "dashboard"
)

// FrontDesk runs the check-in and check-out workflows. Every invocation
// performs its reads and writes inside one database transaction, so a failure
// at any step leaves no partial state behind.
type FrontDesk interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
	CheckOut(ctx context.Context, req dto.CheckOutRequest) (dto.CheckOutResponse, error)
}

type serviceImpl struct {
	tx       postgres.Transactor
	guests   guestRepo.Guest
	rooms    roomRepo.Room
	bookings bookingRepo.Booking
	payments paymentRepo.Payment
	damages  damageRepo.DamageReport
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(
	tx postgres.Transactor,
	guests guestRepo.Guest,
	rooms roomRepo.Room,
	bookings bookingRepo.Booking,
	payments paymentRepo.Payment,
	damages damageRepo.DamageReport,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) FrontDesk {
	return &serviceImpl{
		tx:       tx,
		guests:   guests,
		rooms:    rooms,
		bookings: bookings,
		payments: payments,
		damages:  damages,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafkaClient,
		otel:     otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	var event dto.CheckedInEvent

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		guestID, err := s.resolveGuest(ctx, sqltx, req.Guest, user)
		if err != nil {
			return err
		}

		room, err := s.assertRoomAvailable(ctx, sqltx, req.RoomID)
		if err != nil {
			return err
		}

		paymentStatus := bookingModel.PaymentStatusUnpaid
		if req.PaysNow() {
			paymentStatus = bookingModel.PaymentStatusPaid
		}

		bookingID, err := s.bookings.InsertReturningTx(ctx, sqltx, bookingModel.Booking{
			GuestID:       guestID,
			RoomID:        room.ID,
			CheckInDate:   now,
			TotalAmount:   req.Amount,
			PaymentStatus: paymentStatus,
			Status:        bookingModel.StatusCheckedIn,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
		if err != nil {
			return err
		}

		receiptNumber := receipt.Number(bookingID, now)

		if req.PaysNow() {
			// The charge is the room's nightly rate read inside this
			// transaction, not the caller-supplied amount.
			err = s.payments.InsertTx(ctx, sqltx, paymentModel.Payment{
				BookingID:     bookingID,
				Amount:        room.PricePerNight,
				Method:        req.PaymentMethod,
				TransactionID: req.TransactionID,
				ReceiptNumber: receiptNumber,
				CollectedBy:   user,
				PaidAt:        now,
			})
			if err != nil {
				return err
			}

			res.ReceiptNumber = receiptNumber
		}

		err = s.rooms.UpdateTx(ctx, sqltx, map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return err
		}

		event = dto.CheckedInEvent{
			BookingID:     bookingID,
			GuestID:       guestID,
			RoomID:        room.ID,
			PaymentStatus: paymentStatus,
			ReceiptNumber: res.ReceiptNumber,
			CheckedInBy:   user,
			CheckedInAt:   now,
		}

		return nil
	})

	if err != nil {
		log.Error().Err(err).Int64("room_id", req.RoomID).Msg("check-in failed")

		return dto.CheckInResponse{}, err
	}

	res.Success = true

	s.afterCommit(ctx, constant.KafkaTopicCheckedIn, fmt.Sprintf("%d", event.BookingID), event)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	var event dto.CheckedOutEvent

	err = s.tx.WithinTx(ctx, func(sqltx *sqlx.Tx) error {
		bookingFilter := shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName)

		booking, found, err := s.bookings.GetForUpdateTx(ctx, sqltx, bookingFilter)
		if err != nil {
			return err
		}

		if !found {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.Status != bookingModel.StatusCheckedIn {
			return failure.Conflict(fmt.Sprintf("booking is not checked in (current status: %s)", booking.Status)) // nolint:wrapcheck
		}

		if req.Payment != nil {
			receiptNumber := receipt.Number(booking.ID, now)

			err = s.payments.InsertTx(ctx, sqltx, paymentModel.Payment{
				BookingID:     booking.ID,
				Amount:        req.Payment.Amount,
				Method:        req.Payment.Method,
				TransactionID: req.Payment.TransactionID,
				ReceiptNumber: receiptNumber,
				CollectedBy:   user,
				PaidAt:        now,
			})
			if err != nil {
				return err
			}

			res.ReceiptNumber = receiptNumber
		}

		if req.DamageReport != nil {
			repairCost := decimal.NullDecimal{}
			if req.DamageReport.RepairCost != nil {
				repairCost = decimal.NewNullDecimal(*req.DamageReport.RepairCost)
			}

			err = s.damages.InsertTx(ctx, sqltx, damageModel.DamageReport{
				BookingID:   booking.ID,
				Description: req.DamageReport.Description,
				Severity:    req.DamageReport.Severity,
				RepairCost:  repairCost,
				Metadata: gModel.Metadata{
					CreatedAt:  now,
					ModifiedAt: now,
					CreatedBy:  user,
					ModifiedBy: user,
				},
			})
			if err != nil {
				return err
			}
		}

		bookingFields := map[string]any{
			bookingModel.FieldStatus:       bookingModel.StatusCheckedOut,
			bookingModel.FieldCheckOutDate: now,
			constant.FieldModifiedAt:       now,
			constant.FieldModifiedBy:       user,
		}
		if req.Payment != nil {
			bookingFields[bookingModel.FieldPaymentStatus] = bookingModel.PaymentStatusPaid
		}

		if err = s.bookings.UpdateTx(ctx, sqltx, bookingFields, bookingFilter); err != nil {
			return err
		}

		err = s.rooms.UpdateTx(ctx, sqltx, map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return err
		}

		event = dto.CheckedOutEvent{
			BookingID:     booking.ID,
			RoomID:        booking.RoomID,
			ReceiptNumber: res.ReceiptNumber,
			CheckedOutBy:  user,
			CheckedOutAt:  now,
		}

		return nil
	})

	if err != nil {
		log.Error().Err(err).Int64("booking_id", req.BookingID).Msg("check-out failed")

		return dto.CheckOutResponse{}, err
	}

	res.Success = true

	s.afterCommit(ctx, constant.KafkaTopicCheckedOut, fmt.Sprintf("%d", event.BookingID), event)

	return res, nil
}

// resolveGuest implements the insert-or-find upsert as an explicit two-step
// lookup inside the transaction, keyed on id_number. Existing guest fields
// are never overwritten.
func (s *serviceImpl) resolveGuest(ctx context.Context, sqltx *sqlx.Tx, payload dto.GuestPayload, user string) (int64, error) {
	existing, err := s.guests.GetTx(ctx, sqltx, shared.FilterByID(payload.IDNumber, guestModel.FieldIDNumber, guestModel.TableName))
	if err != nil {
		return 0, err
	}

	if existing.ID != 0 {
		return existing.ID, nil
	}

	return s.guests.InsertReturningTx(ctx, sqltx, payload.ToModel(user))
}

// assertRoomAvailable re-reads the room with a locking read so a concurrent
// check-in on the same room blocks until this transaction finishes.
func (s *serviceImpl) assertRoomAvailable(ctx context.Context, sqltx *sqlx.Tx, roomID int64) (roomModel.Room, error) {
	room, found, err := s.rooms.GetForUpdateTx(ctx, sqltx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, err
	}

	if !found {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != roomModel.StatusAvailable {
		return room, failure.RoomUnavailable(room.RoomNumber, room.Status) // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) afterCommit(ctx context.Context, topic, key string, event any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if s.cfg.Kafka.Enable {
			if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: key, Value: event}); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("failed to publish front desk event")
			}
		}

		shared.InvalidateCaches(c, s.cache, cachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, cachePrefixBooking)
		shared.InvalidateCaches(c, s.cache, cachePrefixGuest)
		shared.InvalidateCaches(c, s.cache, cachePrefixDashboard)
	}()
}

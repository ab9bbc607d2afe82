package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/gakiokevin/myhotel/infras/otel"
	"github.com/gakiokevin/myhotel/infras/postgres"
	"github.com/gakiokevin/myhotel/internal/domains/dashboard/model"
	"github.com/gakiokevin/myhotel/shared/constant"
	"github.com/gakiokevin/myhotel/shared/logger"
)

const statsQuery = `
SELECT
	(SELECT COUNT(id) FROM rooms)                                                            AS total_rooms,
	(SELECT COUNT(id) FROM rooms WHERE status = 'Available')                                 AS available_rooms,
	(SELECT COUNT(id) FROM rooms WHERE status = 'Occupied')                                  AS occupied_rooms,
	(SELECT COUNT(id) FROM rooms WHERE status = 'Maintenance')                               AS maintenance_rooms,
	(SELECT COUNT(id) FROM bookings WHERE status = 'Checked-in')                             AS active_bookings,
	(SELECT COUNT(DISTINCT guest_id) FROM bookings WHERE status = 'Checked-in')              AS active_guests,
	(SELECT COUNT(id) FROM bookings WHERE payment_status = 'Unpaid')                         AS unpaid_bookings,
	(SELECT COUNT(id) FROM bookings WHERE check_in_date::date = CURRENT_DATE)                AS todays_check_ins,
	(SELECT COUNT(id) FROM bookings WHERE check_out_date::date = CURRENT_DATE)               AS todays_check_outs,
	(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE paid_at::date = CURRENT_DATE)       AS revenue_today,
	(SELECT COUNT(id) FROM guests)                                                           AS total_guests
`

const roomStatusQuery = `
SELECT
	status,
	COUNT(id) AS count,
	ROUND(COUNT(id) * 100.0 / NULLIF((SELECT COUNT(id) FROM rooms), 0))::text || '%' AS percentage
FROM rooms
GROUP BY status
ORDER BY status
`

const recentBookingsQuery = `
SELECT
	bookings.id,
	bookings.check_in_date,
	bookings.status,
	guests.first_name || ' ' || guests.last_name AS guest_name,
	rooms.room_number,
	rooms.type AS room_type
FROM bookings
JOIN guests ON guests.id = bookings.guest_id
JOIN rooms ON rooms.id = bookings.room_id
ORDER BY bookings.created_at DESC
LIMIT 5
`

type Dashboard interface {
	GetStats(ctx context.Context) (model.Stats, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetStats(ctx context.Context) (model.Stats, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetStats", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, statsQuery)

	var stats model.Stats

	err := repo.db.Read.GetContext(ctx, &stats, statsQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	err = repo.db.Read.SelectContext(ctx, &stats.RoomStatusBreakdown, roomStatusQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get room status breakdown: %w", err)
	}

	err = repo.db.Read.SelectContext(ctx, &stats.RecentBookings, recentBookingsQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return stats, nil
}

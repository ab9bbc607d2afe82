package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/infras/otel/mocks"
	dashboardMocks "github.com/gakiokevin/myhotel/internal/domains/dashboard/mocks"
	"github.com/gakiokevin/myhotel/internal/domains/dashboard/model"
	"github.com/gakiokevin/myhotel/internal/domains/dashboard/service"
	"github.com/gakiokevin/myhotel/shared/cache"
	cacheMocks "github.com/gakiokevin/myhotel/shared/cache/mocks"
)

func newDashboardService(ctrl *gomock.Controller) (service.Dashboard, *dashboardMocks.MockDashboard, *cacheMocks.MockRedisCache) {
	repo := dashboardMocks.NewMockDashboard(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, redisCache, mocks.NewOtel()), repo, redisCache
}

func sampleStats() model.Stats {
	return model.Stats{
		TotalRooms:       7,
		AvailableRooms:   4,
		OccupiedRooms:    2,
		MaintenanceRooms: 1,
		ActiveBookings:   2,
		ActiveGuests:     2,
		UnpaidBookings:   1,
		TodaysCheckIns:   2,
		TodaysCheckOuts:  1,
		RevenueToday:     decimal.NewFromInt(9000),
		TotalGuests:      12,
		RoomStatusBreakdown: []model.RoomStatusCount{
			{Status: "Available", Count: 4, Percentage: "57%"},
			{Status: "Maintenance", Count: 1, Percentage: "14%"},
			{Status: "Occupied", Count: 2, Percentage: "29%"},
		},
		RecentBookings: []model.RecentBooking{
			{ID: 42, Status: "Checked-in", GuestName: "Jane Mwangi", RoomNumber: "101", RoomType: "Deluxe"},
		},
	}
}

func TestDashboardService_GetStats(t *testing.T) {
	t.Run("cache miss aggregates and returns the full snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newDashboardService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().GetStats(gomock.Any()).Return(sampleStats(), nil)
		redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.GetStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 7, res.TotalRooms)
		assert.Equal(t, 1, res.UnpaidBookings)
		assert.Equal(t, 2, res.ActiveGuests)
		assert.Len(t, res.RoomStatusBreakdown, 3)
		assert.Equal(t, "57%", res.RoomStatusBreakdown[0].Percentage)
		assert.Len(t, res.RecentBookings, 1)
		assert.Equal(t, "Jane Mwangi", res.RecentBookings[0].GuestName)
		assert.Equal(t, "101", res.RecentBookings[0].RoomNumber)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, redisCache := newDashboardService(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				stats, ok := dest.(*model.Stats)
				assert.True(t, ok)
				*stats = sampleStats()

				return nil
			})

		res, err := svc.GetStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, res.UnpaidBookings)
		assert.Len(t, res.RecentBookings, 1)
	})

	t.Run("aggregation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newDashboardService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().GetStats(gomock.Any()).Return(model.Stats{}, errors.New("connection refused"))

		_, err := svc.GetStats(context.Background())

		assert.Error(t, err)
	})
}

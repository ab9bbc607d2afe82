package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/infras/otel/mocks"
	bookingMocks "github.com/gakiokevin/myhotel/internal/domains/booking/mocks"
	"github.com/gakiokevin/myhotel/internal/domains/booking/model"
	"github.com/gakiokevin/myhotel/internal/domains/booking/model/dto"
	"github.com/gakiokevin/myhotel/internal/domains/booking/service"
	"github.com/gakiokevin/myhotel/shared/cache"
	cacheMocks "github.com/gakiokevin/myhotel/shared/cache/mocks"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	"github.com/gakiokevin/myhotel/shared/failure"
)

func newBookingService(ctrl *gomock.Controller) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	repo := bookingMocks.NewMockBooking(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, redisCache, mocks.NewOtel()), repo, redisCache
}

func TestBookingService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Limit: 10, Page: 1}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, redisCache := newBookingService(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GetBookingsResponse)
				assert.True(t, ok)
				res.TotalData = 3

				return nil
			})

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
	})

	t.Run("cache miss loads from the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newBookingService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{ID: 41, Status: model.StatusCheckedOut},
				{ID: 42, Status: model.StatusCheckedIn},
			}, nil)
		redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("count error aborts the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newBookingService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestBookingService_GetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, redisCache := newBookingService(ctrl)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Len(t, filter.Filters, 1)

			statusFilter, ok := filter.Filters[0].(gDto.Filter)
			assert.True(t, ok)
			assert.Equal(t, model.FieldStatus, statusFilter.Field)
			assert.Equal(t, model.StatusCheckedIn, statusFilter.Value)

			return []model.Booking{{ID: 42, Status: model.StatusCheckedIn}}, nil
		})
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetActive(context.Background(), gDto.QueryParams{Limit: 10, Page: 1})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
}

func TestBookingService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newBookingService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: 42, Status: model.StatusCheckedIn, RoomNumber: "101"}, nil)
		redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
		assert.Equal(t, "101", res.RoomNumber)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newBookingService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), 99)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

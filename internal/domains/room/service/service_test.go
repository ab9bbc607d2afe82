package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/infras/otel/mocks"
	roomMocks "github.com/gakiokevin/myhotel/internal/domains/room/mocks"
	"github.com/gakiokevin/myhotel/internal/domains/room/model"
	"github.com/gakiokevin/myhotel/internal/domains/room/model/dto"
	"github.com/gakiokevin/myhotel/internal/domains/room/service"
	"github.com/gakiokevin/myhotel/shared/cache"
	cacheMocks "github.com/gakiokevin/myhotel/shared/cache/mocks"
	"github.com/gakiokevin/myhotel/shared/constant"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	"github.com/gakiokevin/myhotel/shared/failure"
)

func newRoomService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	repo := roomMocks.NewMockRoom(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, redisCache, mocks.NewOtel()), repo, redisCache
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber:    "204",
		Type:          "double",
		PricePerNight: decimal.NewFromInt(5000),
		MaxOccupancy:  2,
		Floor:         2,
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newRoomService(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "204", room.RoomNumber)
				assert.Equal(t, model.StatusAvailable, room.Status)
				assert.Equal(t, "test-user-id", room.CreatedBy)

				return nil
			})
		redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newRoomService(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, redisCache := newRoomService(ctrl)

		redisCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.RoomResponse)
				assert.True(t, ok)
				res.ID = 2
				res.RoomNumber = "101"

				return nil
			})

		res, err := svc.Get(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, "101", res.RoomNumber)
	})

	t.Run("cache miss loads from the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newRoomService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: 2, RoomNumber: "101", Status: model.StatusAvailable}, nil)
		redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), res.ID)
		assert.Equal(t, "101", res.RoomNumber)
	})

	t.Run("unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newRoomService(ctrl)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), 99)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_GetAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, redisCache := newRoomService(ctrl)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Len(t, filter.Filters, 1)

			statusFilter, ok := filter.Filters[0].(gDto.Filter)
			assert.True(t, ok)
			assert.Equal(t, model.FieldStatus, statusFilter.Field)
			assert.Equal(t, model.StatusAvailable, statusFilter.Value)

			return []model.Room{{ID: 2, RoomNumber: "101", Status: model.StatusAvailable}}, nil
		})
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAvailable(context.Background(), gDto.QueryParams{Limit: 10, Page: 1})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestRoomService_Delete(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newRoomService(ctrl)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: 2, Status: model.StatusAvailable}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(ctx, 2)

		assert.NoError(t, err)
	})

	t.Run("occupied room cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newRoomService(ctrl)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: 2, Status: model.StatusOccupied}, nil)

		err := svc.Delete(ctx, 2)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newRoomService(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := svc.Delete(ctx, 99)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newRoomService(ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("database error"))

		err := svc.Delete(ctx, 2)

		assert.Error(t, err)
	})
}

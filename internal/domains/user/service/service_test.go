package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/infras/otel/mocks"
	userMocks "github.com/gakiokevin/myhotel/internal/domains/user/mocks"
	"github.com/gakiokevin/myhotel/internal/domains/user/model"
	"github.com/gakiokevin/myhotel/internal/domains/user/model/dto"
	"github.com/gakiokevin/myhotel/internal/domains/user/service"
	"github.com/gakiokevin/myhotel/shared/cache"
	cacheMocks "github.com/gakiokevin/myhotel/shared/cache/mocks"
	"github.com/gakiokevin/myhotel/shared/constant"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	"github.com/gakiokevin/myhotel/shared/failure"
	"github.com/gakiokevin/myhotel/shared/password"
)

func newUserService(ctrl *gomock.Controller) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	repo := userMocks.NewMockUser(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(repo, cfg, redisCache, mocks.NewOtel()), repo, redisCache
}

func TestUserService_CreateEmployee(t *testing.T) {
	req := dto.CreateUserRequest{
		Name:     "Grace Otieno",
		Email:    "grace@example.com",
		Password: "correct-horse-battery",
		Role:     "receptionist",
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("success stores a hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, redisCache := newUserService(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, "grace@example.com", user.Email)
				assert.Equal(t, "receptionist", user.Role)
				assert.True(t, user.Active)
				assert.NotEqual(t, req.Password, user.Password)
				assert.NoError(t, password.Verify(req.Password, user.Password))
				assert.Equal(t, "test-user-id", user.CreatedBy)

				return nil
			})
		redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.CreateEmployee(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo, _ := newUserService(ctrl)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.CreateEmployee(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestUserService_GetEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, redisCache := newUserService(ctrl)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.User{{ID: 1, Email: "grace@example.com", Role: "receptionist", Active: true}}, nil)
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetEmployees(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Users, 1)
	assert.Equal(t, 1, res.TotalData)
}

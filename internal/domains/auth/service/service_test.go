package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/infras/jwt"
	jwtMocks "github.com/gakiokevin/myhotel/infras/jwt/mocks"
	"github.com/gakiokevin/myhotel/infras/otel/mocks"
	"github.com/gakiokevin/myhotel/internal/domains/auth/model/dto"
	"github.com/gakiokevin/myhotel/internal/domains/auth/service"
	userModel "github.com/gakiokevin/myhotel/internal/domains/user/model"
	userMocks "github.com/gakiokevin/myhotel/internal/domains/user/mocks"
	"github.com/gakiokevin/myhotel/shared/failure"
	"github.com/gakiokevin/myhotel/shared/password"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := password.Hash("correct-horse-battery")
	assert.NoError(t, err)

	activeUser := userModel.User{
		ID:       1,
		Name:     "Grace Otieno",
		Email:    "grace@example.com",
		Password: hash,
		Role:     "receptionist",
		Active:   true,
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	type testCase struct {
		name       string
		req        dto.LoginRequest
		setupMock  func(userRepo *userMocks.MockUser, jwtService *jwtMocks.MockJWT)
		wantErr    bool
		wantCode   int
		wantTokens bool
	}

	testCases := []testCase{
		{
			name: "success",
			req:  dto.LoginRequest{Email: "grace@example.com", Password: "correct-horse-battery"},
			setupMock: func(userRepo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeUser, nil)
				jwtService.EXPECT().
					GenerateTokenPair(gomock.Any(), "1", "grace@example.com", "receptionist").
					Return(tokenPair, nil)
				userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantTokens: true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "grace@example.com", Password: "not-the-password"},
			setupMock: func(userRepo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeUser, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse-battery"},
			setupMock: func(userRepo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "grace@example.com", Password: "correct-horse-battery"},
			setupMock: func(userRepo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				inactive := activeUser
				inactive.Active = false
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error does not reveal whether the email exists",
			req:  dto.LoginRequest{Email: "grace@example.com", Password: "correct-horse-battery"},
			setupMock: func(userRepo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := userMocks.NewMockUser(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tc.setupMock(userRepo, jwtService)

			svc := service.New(userRepo, &config.Config{}, mocks.NewOtel(), jwtService)

			res, err := svc.Login(context.Background(), tc.req)

			if tc.wantErr {
				assert.Error(t, err)
				if tc.wantCode != 0 {
					assert.Equal(t, tc.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			if tc.wantTokens {
				assert.Equal(t, tokenPair.AccessToken, res.AccessToken)
				assert.Equal(t, tokenPair.RefreshToken, res.RefreshToken)
				assert.Equal(t, tokenPair.TokenType, res.TokenType)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := userMocks.NewMockUser(ctrl)
		jwtService := jwtMocks.NewMockJWT(ctrl)

		jwtService.EXPECT().
			RefreshTokens(gomock.Any(), "old-refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", TokenType: "Bearer", ExpiresIn: 900}, nil)

		svc := service.New(userRepo, &config.Config{}, mocks.NewOtel(), jwtService)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := userMocks.NewMockUser(ctrl)
		jwtService := jwtMocks.NewMockJWT(ctrl)

		jwtService.EXPECT().
			RefreshTokens(gomock.Any(), "tampered").
			Return(nil, jwt.ErrInvalidToken)

		svc := service.New(userRepo, &config.Config{}, mocks.NewOtel(), jwtService)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "tampered"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

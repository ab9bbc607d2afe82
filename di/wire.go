//go:build wireinject
// +build wireinject

package di

import (
	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/infras/jwt"
	"github.com/gakiokevin/myhotel/infras/kafka"
	"github.com/gakiokevin/myhotel/infras/otel"
	"github.com/gakiokevin/myhotel/infras/postgres"
	"github.com/gakiokevin/myhotel/infras/redis"
	"github.com/gakiokevin/myhotel/infras/s3"
	"github.com/gakiokevin/myhotel/permissions"
	"github.com/gakiokevin/myhotel/shared/cache"
	"github.com/gakiokevin/myhotel/transport/http"
	"github.com/gakiokevin/myhotel/transport/http/middleware"
	"github.com/gakiokevin/myhotel/transport/http/router"

	authService "github.com/gakiokevin/myhotel/internal/domains/auth/service"
	bookingRepository "github.com/gakiokevin/myhotel/internal/domains/booking/repository"
	bookingService "github.com/gakiokevin/myhotel/internal/domains/booking/service"
	damageRepository "github.com/gakiokevin/myhotel/internal/domains/damage/repository"
	damageService "github.com/gakiokevin/myhotel/internal/domains/damage/service"
	dashboardRepository "github.com/gakiokevin/myhotel/internal/domains/dashboard/repository"
	dashboardService "github.com/gakiokevin/myhotel/internal/domains/dashboard/service"
	frontdeskService "github.com/gakiokevin/myhotel/internal/domains/frontdesk/service"
	guestRepository "github.com/gakiokevin/myhotel/internal/domains/guest/repository"
	guestService "github.com/gakiokevin/myhotel/internal/domains/guest/service"
	paymentRepository "github.com/gakiokevin/myhotel/internal/domains/payment/repository"
	paymentService "github.com/gakiokevin/myhotel/internal/domains/payment/service"
	roomRepository "github.com/gakiokevin/myhotel/internal/domains/room/repository"
	roomService "github.com/gakiokevin/myhotel/internal/domains/room/service"
	userRepository "github.com/gakiokevin/myhotel/internal/domains/user/repository"
	userService "github.com/gakiokevin/myhotel/internal/domains/user/service"

	authHandler "github.com/gakiokevin/myhotel/internal/handlers/auth"
	bookingHandler "github.com/gakiokevin/myhotel/internal/handlers/booking"
	dashboardHandler "github.com/gakiokevin/myhotel/internal/handlers/dashboard"
	damageHandler "github.com/gakiokevin/myhotel/internal/handlers/damage"
	frontdeskHandler "github.com/gakiokevin/myhotel/internal/handlers/frontdesk"
	guestHandler "github.com/gakiokevin/myhotel/internal/handlers/guest"
	roomHandler "github.com/gakiokevin/myhotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var damageDomain = wire.NewSet(
	damageRepository.New,
	damageService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var frontDeskDomain = wire.NewSet(
	frontdeskService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	guestDomain,
	bookingDomain,
	paymentDomain,
	damageDomain,
	dashboardDomain,
	frontDeskDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	frontdeskHandler.New,
	dashboardHandler.New,
	damageHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

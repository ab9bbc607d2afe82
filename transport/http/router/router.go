package router

import (
	"github.com/gakiokevin/myhotel/internal/handlers/auth"
	"github.com/gakiokevin/myhotel/internal/handlers/booking"
	"github.com/gakiokevin/myhotel/internal/handlers/dashboard"
	"github.com/gakiokevin/myhotel/internal/handlers/damage"
	"github.com/gakiokevin/myhotel/internal/handlers/frontdesk"
	"github.com/gakiokevin/myhotel/internal/handlers/guest"
	"github.com/gakiokevin/myhotel/internal/handlers/room"
	"github.com/gakiokevin/myhotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Room      room.Handler
	Guest     guest.Handler
	Booking   booking.Handler
	FrontDesk frontdesk.Handler
	Dashboard dashboard.Handler
	Damage    damage.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
	App            middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.FrontDesk.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Damage.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole, app middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
		App:            app,
	}
}

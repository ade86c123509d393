package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-event-checkin/internal/handlers"
	"github.com/sbilibin2017/gw-event-checkin/internal/middlewares"
)

// routerDeps are the services mounted by newRouter.
type routerDeps struct {
	Auth    handlers.Authenticator
	Users   handlers.UserManager
	Events  handlers.EventManager
	Guests  handlers.GuestManager
	Tokener middlewares.Tokener

	// Tx wraps event writes in a transaction. Nil leaves them unwrapped.
	Tx func(http.Handler) http.Handler

	SwaggerURL string
}

func newRouter(d routerDeps) chi.Router {
	tx := d.Tx
	if tx == nil {
		tx = func(next http.Handler) http.Handler { return next }
	}
	auth := middlewares.AuthMiddleware(d.Tokener)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/users/", handlers.NewSignupHandler(d.Auth))
		r.Post("/jwt/create/", handlers.NewLoginHandler(d.Auth))
		r.Post("/jwt/refresh/", handlers.NewRefreshHandler(d.Auth))
		r.Post("/logout/", handlers.NewLogoutHandler(d.Auth))
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", handlers.NewCreateUserHandler(d.Users))
		r.Get("/", handlers.NewListUsersHandler(d.Users))
		r.Get("/{id}/", handlers.NewGetUserHandler(d.Users))
		r.Delete("/{id}/", handlers.NewDeleteUserHandler(d.Users))
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", handlers.NewListEventsHandler(d.Events))
		r.With(auth).Post("/", handlers.NewCreateEventHandler(d.Events))
		r.With(auth).Get("/my_events/", handlers.NewListMyEventsHandler(d.Events))
		r.Get("/{id}/", handlers.NewGetEventHandler(d.Events))
		r.With(auth, tx).Put("/{id}/", handlers.NewUpdateEventHandler(d.Events))
		r.With(auth, tx).Delete("/{id}/", handlers.NewDeleteEventHandler(d.Events))
	})

	r.Route("/guests", func(r chi.Router) {
		r.Post("/", handlers.NewRegisterGuestHandler(d.Guests))
		r.Post("/check-in/", handlers.NewCheckInHandler(d.Guests))
		r.Get("/by-event/{event_id}/", handlers.NewListGuestsByEventHandler(d.Guests))
		r.Get("/{id}/", handlers.NewGetGuestHandler(d.Guests))
		r.Put("/{id}/", handlers.NewUpdateGuestHandler(d.Guests))
		r.Patch("/{id}/", handlers.NewPatchGuestHandler(d.Guests))
		r.With(auth).Delete("/{id}/", handlers.NewDeleteGuestHandler(d.Guests))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	return r
}

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/mealdesk/admin-gateway/internal/api/schema"
	"github.com/mealdesk/admin-gateway/internal/config"
	"github.com/mealdesk/admin-gateway/internal/mutation"
	"github.com/mealdesk/admin-gateway/internal/notification"
	"github.com/mealdesk/admin-gateway/internal/resource"
	"github.com/mealdesk/admin-gateway/internal/session"
	"github.com/mealdesk/admin-gateway/internal/storage"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Service represents the admin API service
type Service struct {
	server *http.Server

	Config *config.Config

	Storage storage.Driver

	Upstream *upstream.Client

	Sessions session.Storage

	tracker  *mutation.Tracker
	notifier *notification.Hub

	writer *schema.Writer
}

// Startup starts up the admin API
func (service *Service) Startup() error {
	server := &http.Server{
		Addr:    service.Config.AdminAPIListenAddress,
		Handler: service.buildRouter(),
	}
	service.server = server
	return server.ListenAndServe()
}

func (service *Service) buildRouter() http.Handler {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the admin API experienced an unexpected error")
		},
	}

	service.tracker = mutation.NewTracker()
	service.notifier = notification.NewHub()

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{service.Config.AdminAPIAllowedOrigin},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the authentication endpoints
	router.Post("/v1/auth/login", service.EndpointLogin)
	router.Post("/v1/auth/logout", service.secured(service.EndpointLogout))
	router.Get("/v1/me", service.secured(service.EndpointSelf))

	// Register the resource controllers
	registerResource(service, router, resource.Contacts())
	registerResource(service, router, resource.Users())
	registerResource(service, router, resource.Products())
	registerResource(service, router, resource.Restaurants())
	registerResource(service, router, resource.Programs())
	registerResource(service, router, resource.Rewards())
	registerResource(service, router, resource.Subscriptions())
	registerResource(service, router, resource.Carts())
	registerResource(service, router, resource.WalletHistories())
	registerResource(service, router, resource.PrivacyPolicies())
	registerResource(service, router, resource.Languages())
	registerResource(service, router, resource.Freezes())
	registerResource(service, router, resource.SuccessStories())

	// The carousel controller additionally exposes the active slide set
	registerResource(service, router, resource.Carousels())
	router.Get("/v1/carousels/active", service.secured(service.EndpointActiveCarousels))

	// The order controller additionally exposes aggregated totals
	orders := registerResource(service, router, resource.Orders())
	router.Get("/v1/orders/stats", service.secured(service.endpointOrderStats(orders)))

	// Register the notification stream and the audit log endpoints
	router.Get("/v1/notifications", service.secured(service.EndpointNotificationStream))
	router.Get("/v1/audit", service.secured(service.EndpointGetAuditLog))

	return router
}

// Shutdown shuts down the admin API
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

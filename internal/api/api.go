package api

import (
	"errors"
	"net/http"

	"github.com/mealdesk/admin-gateway/internal/api/admin"
	"github.com/mealdesk/admin-gateway/internal/config"
	"github.com/mealdesk/admin-gateway/internal/session"
	"github.com/mealdesk/admin-gateway/internal/storage"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

// Service represents the admin API service
type Service struct {
	Config   *config.Config
	Storage  storage.Driver
	Upstream *upstream.Client
	Sessions session.Storage
	admin    *admin.Service
}

// Startup starts up the admin API
func (service *Service) Startup(errs chan<- error) {
	adminService := &admin.Service{
		Config:   service.Config,
		Storage:  service.Storage,
		Upstream: service.Upstream,
		Sessions: service.Sessions,
	}
	service.admin = adminService
	go func() {
		if err := adminService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
}

// Shutdown shuts down the admin API
func (service *Service) Shutdown() {
	if service.admin != nil {
		service.admin.Shutdown()
		service.admin = nil
	}
}

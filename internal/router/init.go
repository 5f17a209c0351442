package router

import (
	"github.com/skillfolio/skillfolio-api/internal/application"
	"github.com/skillfolio/skillfolio-api/internal/container"
	pginfra "github.com/skillfolio/skillfolio-api/internal/infrastructure/postgres"
	handlers "github.com/skillfolio/skillfolio-api/internal/interface/http"
	"github.com/skillfolio/skillfolio-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	users := pginfra.NewUserRepository(container.GetPGPool())
	profiles := pginfra.NewProfileRepository(container.GetPGPool())

	authSvc := application.NewAuthService(users, container.GetHasher(), container.GetJWT(), container.GetLogger())
	profileSvc := application.NewProfileService(profiles)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger())
	userHandler := handlers.NewUserHandler(profileSvc, container.GetLogger())
	dashHandler := handlers.NewDashboardHandler()

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, users, container.GetJWT()))
	r.Add(modules.NewDashboardModule(dashHandler, users, container.GetJWT()))
	if container.GetConfig() != nil && container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

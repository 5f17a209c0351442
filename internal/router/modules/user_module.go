package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillfolio/skillfolio-api/internal/container"
	repo "github.com/skillfolio/skillfolio-api/internal/domain/repository"
	handlers "github.com/skillfolio/skillfolio-api/internal/interface/http"
	"github.com/skillfolio/skillfolio-api/internal/interface/middleware"
	"github.com/skillfolio/skillfolio-api/pkg/helpers"
)

// UserModule wires the authenticated self-service endpoints.
// Protected: GET /api/users/me, GET /api/users/profile, PUT /api/users/profile

type UserModule struct {
	Handler *handlers.UserHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, users repo.UserRepository, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, Users: users, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/me", m.Handler.Me)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
	}
}

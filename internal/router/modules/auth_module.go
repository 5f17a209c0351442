package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillfolio/skillfolio-api/internal/container"
	handlers "github.com/skillfolio/skillfolio-api/internal/interface/http"
	"github.com/skillfolio/skillfolio-api/internal/interface/middleware"
)

// AuthModule wires the public registration and login endpoints.
// Public: POST /api/users/register, POST /api/users/login

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// IP-based rate limits on the public endpoints
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users/register", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)
}

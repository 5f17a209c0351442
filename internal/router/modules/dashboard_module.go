package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	repo "github.com/skillfolio/skillfolio-api/internal/domain/repository"
	handlers "github.com/skillfolio/skillfolio-api/internal/interface/http"
	"github.com/skillfolio/skillfolio-api/internal/interface/middleware"
	"github.com/skillfolio/skillfolio-api/pkg/helpers"
)

// DashboardModule wires the role-gated dashboard endpoints. Identity is
// resolved first; the role guard layers on top so an invalid token is
// always a 401 and only a wrong role is a 403.

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewDashboardModule(h *handlers.DashboardHandler, users repo.UserRepository, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, Users: users, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	students := rg.Group("/students")
	students.Use(middleware.Auth(m.Users, m.JWT), middleware.RequireRole(entity.RoleStudent))
	{
		students.GET("/dashboard", m.Handler.StudentDashboard)
	}

	faculty := rg.Group("/faculty")
	faculty.Use(middleware.Auth(m.Users, m.JWT), middleware.RequireRole(entity.RoleFaculty))
	{
		faculty.GET("/dashboard", m.Handler.FacultyDashboard)
	}
}

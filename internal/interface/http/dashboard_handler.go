package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillfolio/skillfolio-api/internal/interface/middleware"
	"github.com/skillfolio/skillfolio-api/pkg/response"
)

// DashboardHandler serves the role-gated dashboard endpoints. The role
// check itself lives in middleware; by the time a request lands here the
// principal is resolved and has the right role.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// StudentDashboard GET /api/students/dashboard
func (h *DashboardHandler) StudentDashboard(c *gin.Context) {
	h.dashboard(c, "student")
}

// FacultyDashboard GET /api/faculty/dashboard
func (h *DashboardHandler) FacultyDashboard(c *gin.Context) {
	h.dashboard(c, "faculty")
}

func (h *DashboardHandler) dashboard(c *gin.Context, kind string) {
	u := middleware.CurrentUser(c)
	if u == nil {
		resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		c.JSON(resp.Status, resp)
		return
	}
	name := u.FullName
	if name == "" {
		name = u.Username
	}
	resp := response.Success(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s dashboard, %s!", kind, name),
		"user": gin.H{
			"id":       u.ID,
			"username": u.Username,
			"email":    u.Email,
			"role":     u.Role,
		},
	}, kind+" dashboard", nil)
	c.JSON(resp.Status, resp)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skillfolio/skillfolio-api/internal/application"
	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	"github.com/skillfolio/skillfolio-api/internal/interface/middleware"
	"github.com/skillfolio/skillfolio-api/pkg/response"
	"github.com/skillfolio/skillfolio-api/pkg/validation"
)

// UserHandler serves the authenticated user's own record and profile.
type UserHandler struct {
	Profiles *application.ProfileService
	Logger   *logrus.Logger
}

func NewUserHandler(profiles *application.ProfileService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Profiles: profiles, Logger: logger}
}

type updateStudentProfileRequest struct {
	StudentID   *string `json:"student_id"`
	Major       *string `json:"major"`
	YearOfStudy *string `json:"year_of_study"`
	GPA         *string `json:"gpa"`
	University  *string `json:"university"`
	Bio         *string `json:"bio"`
}

type updateFacultyProfileRequest struct {
	EmployeeID *string `json:"employee_id"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	University *string `json:"university"`
}

// Me GET /api/users/me — current user with role-appropriate profile.
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		c.JSON(resp.Status, resp)
		return
	}
	body := userJSON(u)
	if profile, err := h.Profiles.ProfileFor(c.Request.Context(), u); err == nil {
		body["profile"] = profile
	}
	resp := response.Success(c, http.StatusOK, body, "current user", nil)
	c.JSON(resp.Status, resp)
}

// GetProfile GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		c.JSON(resp.Status, resp)
		return
	}
	profile, err := h.Profiles.ProfileFor(c.Request.Context(), u)
	if err != nil {
		resp := response.Error[any](c, http.StatusNotFound, "profile not found", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, profile, "profile", nil)
	c.JSON(resp.Status, resp)
}

// UpdateProfile PUT /api/users/profile — the request shape depends on
// the caller's role, each with its own fixed field set.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		c.JSON(resp.Status, resp)
		return
	}

	var (
		profile any
		err     error
	)
	switch u.Role {
	case entity.RoleStudent:
		var req updateStudentProfileRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(bindErr))
			c.JSON(resp.Status, resp)
			return
		}
		profile, err = h.Profiles.UpdateStudentProfile(c.Request.Context(), u.ID, entity.StudentProfileUpdate{
			StudentID:   req.StudentID,
			Major:       req.Major,
			YearOfStudy: req.YearOfStudy,
			GPA:         req.GPA,
			University:  req.University,
			Bio:         req.Bio,
		})
	case entity.RoleFaculty:
		var req updateFacultyProfileRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(bindErr))
			c.JSON(resp.Status, resp)
			return
		}
		profile, err = h.Profiles.UpdateFacultyProfile(c.Request.Context(), u.ID, entity.FacultyProfileUpdate{
			EmployeeID: req.EmployeeID,
			Department: req.Department,
			Position:   req.Position,
			University: req.University,
		})
	default:
		resp := response.Error[any](c, http.StatusBadRequest, "invalid user role", nil)
		c.JSON(resp.Status, resp)
		return
	}

	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "profile not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Error("profile update failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to update profile", nil)
		c.JSON(resp.Status, resp)
		return
	}

	resp := response.Success(c, http.StatusOK, profile, "profile updated", nil)
	c.JSON(resp.Status, resp)
}

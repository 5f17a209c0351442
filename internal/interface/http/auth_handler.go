package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skillfolio/skillfolio-api/internal/application"
	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	repo "github.com/skillfolio/skillfolio-api/internal/domain/repository"
	"github.com/skillfolio/skillfolio-api/pkg/response"
	"github.com/skillfolio/skillfolio-api/pkg/validation"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,uname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		FullName: req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateUsername),
			errors.Is(err, repo.ErrDuplicateEmail),
			errors.Is(err, application.ErrInvalidRole):
			resp := response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			c.JSON(resp.Status, resp)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("registration failed")
			}
			resp := response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
			c.JSON(resp.Status, resp)
		}
		return
	}

	resp := response.Success(c, http.StatusCreated, userJSON(u), "user registered", nil)
	c.JSON(resp.Status, resp)
}

// Login POST /api/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	tok, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials),
			errors.Is(err, application.ErrInactiveAccount):
			resp := response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(resp.Status, resp)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("login failed")
			}
			resp := response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
			c.JSON(resp.Status, resp)
		}
		return
	}

	resp := response.Success(c, http.StatusOK, gin.H{
		"access_token": tok.AccessToken,
		"token_type":   tok.TokenType,
	}, "login successful", map[string]any{"expires_at": tok.ExpiresAt})
	c.JSON(resp.Status, resp)
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
		"full_name":  u.FullName,
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt,
	}
}

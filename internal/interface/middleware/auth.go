package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillfolio/skillfolio-api/internal/domain/entity"
	repo "github.com/skillfolio/skillfolio-api/internal/domain/repository"
	"github.com/skillfolio/skillfolio-api/pkg/helpers"
	"github.com/skillfolio/skillfolio-api/pkg/response"
)

// CtxUserKey holds the resolved principal for the current request.
const CtxUserKey = "currentUser"

// Auth extracts the bearer token from the Authorization header, verifies
// it, and resolves the subject to an active user. Every failure here is a
// 401: missing/malformed header, bad signature, expiry, unknown subject,
// inactive account. Role checks belong to RequireRole and never run
// before identity is established.
func Auth(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		subject, err := jwt.Verify(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", err.Error())
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		u, err := users.GetByUsername(c.Request.Context(), subject)
		if err != nil || u == nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "could not validate credentials", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		if !u.IsActive {
			resp := response.Error[any](c, http.StatusUnauthorized, "user account is inactive", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set("userID", strconv.FormatInt(u.ID, 10)) // used by rate-limit keying
		c.Next()
	}
}

// RequireRole gates a route group to one role. It assumes Auth already
// ran: no principal is a 401, a principal with the wrong role is a 403.
// The two statuses are never conflated.
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		if u.Role != role {
			resp := response.Error[any](c, http.StatusForbidden, "access restricted to "+string(role)+" accounts", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal set by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

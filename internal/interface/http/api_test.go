package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillfolio/skillfolio-api/internal/application"
	"github.com/skillfolio/skillfolio-api/internal/infrastructure/memory"
	handlers "github.com/skillfolio/skillfolio-api/internal/interface/http"
	"github.com/skillfolio/skillfolio-api/internal/router"
	"github.com/skillfolio/skillfolio-api/internal/router/modules"
	"github.com/skillfolio/skillfolio-api/pkg/helpers"
	"github.com/skillfolio/skillfolio-api/pkg/validation"
)

type envelope struct {
	Status  int            `json:"status"`
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	store := memory.NewStore()
	hasher := helpers.NewPasswordHasher(bcrypt.MinCost)
	jwt := helpers.NewJWTManager("api-secret", 30*time.Minute)

	authSvc := application.NewAuthService(store, hasher, jwt, nil)
	profileSvc := application.NewProfileService(store)

	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, nil)))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(profileSvc, nil), store, jwt))
	reg.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(), store, jwt))
	reg.RegisterAll()
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func registerJohn(t *testing.T, r *gin.Engine) envelope {
	t.Helper()
	w, env := doJSON(r, http.MethodPost, "/api/users/register", "", gin.H{
		"username":  "john_student",
		"email":     "john@student.edu",
		"password":  "password123",
		"role":      "student",
		"full_name": "John Student",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return env
}

func loginJohn(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, env := doJSON(r, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "john_student",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "bearer", env.Data["token_type"])
	token, _ := env.Data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAPI_Register(t *testing.T) {
	r := setupAPI(t)

	env := registerJohn(t, r)
	assert.Equal(t, "john_student", env.Data["username"])
	assert.Equal(t, "student", env.Data["role"])
	assert.Equal(t, true, env.Data["is_active"])

	// same username, different email
	w, env := doJSON(r, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "john_student",
		"email":    "other@student.edu",
		"password": "password123",
		"role":     "student",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username already registered", env.Message)

	// same email, different username
	w, env = doJSON(r, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "other_student",
		"email":    "john@student.edu",
		"password": "password123",
		"role":     "student",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", env.Message)

	// unknown role
	w, env = doJSON(r, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "admin_user",
		"email":    "admin@school.edu",
		"password": "password123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "role must be either 'student' or 'faculty'", env.Message)
}

func TestAPI_Login(t *testing.T) {
	r := setupAPI(t)
	registerJohn(t, r)

	loginJohn(t, r)

	w, _ := doJSON(r, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "john_student",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPassBody := w.Body.String()

	w, _ = doJSON(r, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "nonexistent",
		"password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// unknown-user and wrong-password responses carry the same message
	var a, b envelope
	require.NoError(t, json.Unmarshal([]byte(wrongPassBody), &a))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, a.Message, b.Message)
}

func TestAPI_RoleGatedDashboards(t *testing.T) {
	r := setupAPI(t)
	registerJohn(t, r)
	token := loginJohn(t, r)

	// student token on the student dashboard
	w, env := doJSON(r, http.MethodGet, "/api/students/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.Data["message"], "John Student")

	// same token on the faculty dashboard: authenticated but forbidden
	w, _ = doJSON(r, http.MethodGet, "/api/faculty/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// no token at all: unauthorized, not forbidden
	w, _ = doJSON(r, http.MethodGet, "/api/faculty/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_ProfileFlow(t *testing.T) {
	r := setupAPI(t)
	registerJohn(t, r)
	token := loginJohn(t, r)

	// empty profile created at registration
	w, env := doJSON(r, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", env.Data["major"])

	w, env = doJSON(r, http.MethodPut, "/api/users/profile", token, gin.H{
		"major":      "Computer Science",
		"university": "State University",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Computer Science", env.Data["major"])

	// partial update leaves other fields alone
	w, env = doJSON(r, http.MethodPut, "/api/users/profile", token, gin.H{
		"gpa": "3.8",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Computer Science", env.Data["major"])
	assert.Equal(t, "3.8", env.Data["gpa"])
}

func TestAPI_Me(t *testing.T) {
	r := setupAPI(t)
	registerJohn(t, r)
	token := loginJohn(t, r)

	w, env := doJSON(r, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "john_student", env.Data["username"])
	assert.NotNil(t, env.Data["profile"])

	w, _ = doJSON(r, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

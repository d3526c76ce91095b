package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gavel/internal/auth"
	"gavel/internal/middleware"
	"gavel/internal/repository"
	"gavel/internal/service"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour, clockwork.NewFakeClock())
	svc := service.NewAuthService(
		repository.NewMemClientRepository(),
		repository.NewMemCandidateRepository(),
		repository.NewMemAdminRepository(),
		tokens,
	)
	h := NewAuthHandler(svc, 3600)

	r := gin.New()
	r.POST("/api/signup/client", h.SignupClient)
	r.POST("/api/signup/candidate", h.SignupCandidate)
	r.POST("/api/login/client", h.LoginClient)
	r.POST("/api/login/candidate", h.LoginCandidate)
	r.POST("/api/logout", h.Logout)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validSignup = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phone":"555-0100","password":"s3cret"}`

func TestSignup_Validation(t *testing.T) {
	r := newAuthRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"malformed json", `{`, http.StatusBadRequest, "All fields are required."},
		{"blank field", `{"firstName":"Ada","lastName":"","email":"a@b.com","phone":"1","password":"x"}`, http.StatusBadRequest, "All fields are required."},
		{"bad email", `{"firstName":"Ada","lastName":"L","email":"not-an-email","phone":"1","password":"x"}`, http.StatusBadRequest, "Invalid email format."},
		{"ok", validSignup, http.StatusCreated, "Client registered successfully."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/signup/client", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/signup/client", validSignup)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same email again, case-folded, still conflicts.
	w = postJSON(r, "/api/signup/client", strings.Replace(validSignup, "ada@example.com", "ADA@Example.com", 1))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Email already exists. Please use a different email."}`, w.Body.String())
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/signup/candidate", validSignup)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/login/candidate", `{"email":"ada@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Login successful","redirect":"/candidate"}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.CookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
}

func TestLogin_Failures(t *testing.T) {
	r := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/signup/client", validSignup).Code)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"missing fields", "/api/login/client", `{"email":"ada@example.com"}`, http.StatusBadRequest, "Email and password are required."},
		{"wrong password", "/api/login/client", `{"email":"ada@example.com","password":"nope"}`, http.StatusUnauthorized, "Invalid email or password."},
		{"unknown email", "/api/login/client", `{"email":"ghost@example.com","password":"s3cret"}`, http.StatusUnauthorized, "Invalid email or password."},
		{"wrong role", "/api/login/candidate", `{"email":"ada@example.com","password":"s3cret"}`, http.StatusUnauthorized, "Invalid email or password."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"gavel/internal/middleware"
	"gavel/internal/model"
	"gavel/internal/service"
)

const maxEmailLength = 254

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Role-specific redirect hints returned on login.
var loginRedirects = map[model.Role]string{
	model.RoleClient:    "/dashboard",
	model.RoleCandidate: "/candidate",
	model.RoleAdmin:     "/admin",
}

// AuthHandler handles signup, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	cookieMaxAge int
}

func NewAuthHandler(auth *service.AuthService, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieMaxAge: cookieMaxAge}
}

// SignupClient handles POST /api/signup/client
func (h *AuthHandler) SignupClient(c *gin.Context) {
	h.signup(c, model.RoleClient, "Client registered successfully.")
}

// SignupCandidate handles POST /api/signup/candidate
func (h *AuthHandler) SignupCandidate(c *gin.Context) {
	h.signup(c, model.RoleCandidate, "Candidate registered successfully.")
}

func (h *AuthHandler) signup(c *gin.Context, role model.Role, successMessage string) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if len(req.Email) > maxEmailLength || !emailRegex.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email format.", ""))
		return
	}

	if err := h.auth.Register(c.Request.Context(), role, &req); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, model.NewErrorResponse("Email already exists. Please use a different email.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.MessageResponse{Message: successMessage})
}

// LoginClient handles POST /api/login/client
func (h *AuthHandler) LoginClient(c *gin.Context) {
	h.login(c, model.RoleClient, "Login successful")
}

// LoginCandidate handles POST /api/login/candidate
func (h *AuthHandler) LoginCandidate(c *gin.Context) {
	h.login(c, model.RoleCandidate, "Login successful")
}

// LoginAdmin handles POST /api/login/admin
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, model.RoleAdmin, "Admin login successful")
}

func (h *AuthHandler) login(c *gin.Context, role model.Role, successMessage string) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email and password are required.", ""))
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email and password are required.", ""))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), role, strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Invalid email or password.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.SetCookie(middleware.CookieName, token, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, model.LoginResponse{Message: successMessage, Redirect: loginRedirects[role]})
}

// Logout handles POST /api/logout. Clearing the cookie is all it does; the
// token itself stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Logged out successfully"})
}

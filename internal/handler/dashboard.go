package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/middleware"
	"gavel/internal/model"
	"gavel/internal/service"
)

// DashboardHandler serves the per-role protected echo routes.
type DashboardHandler struct {
	auth *service.AuthService
}

func NewDashboardHandler(auth *service.AuthService) *DashboardHandler {
	return &DashboardHandler{auth: auth}
}

// Client handles GET /api/protected/client
func (h *DashboardHandler) Client(c *gin.Context) {
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Welcome to the client dashboard!"})
}

// Candidate handles GET /api/protected/candidate
func (h *DashboardHandler) Candidate(c *gin.Context) {
	principalID, _ := middleware.PrincipalFromContext(c)
	candidate, err := h.auth.CandidateByID(c.Request.Context(), principalID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Candidate not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        candidate.ID.Hex(),
		"email":     candidate.Email,
		"firstName": candidate.FirstName,
	})
}

// Admin handles GET /api/protected/admin
func (h *DashboardHandler) Admin(c *gin.Context) {
	principalID, _ := middleware.PrincipalFromContext(c)
	admin, err := h.auth.AdminByID(c.Request.Context(), principalID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Admin not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    admin.ID.Hex(),
		"email": admin.Email,
	})
}

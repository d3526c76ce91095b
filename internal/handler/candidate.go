package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/model"
	"gavel/internal/service"
)

// CandidateHandler handles the admin-facing candidate directory.
type CandidateHandler struct {
	candidates *service.CandidateService
}

func NewCandidateHandler(candidates *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// List handles GET /api/candidates
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidates.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// Create handles POST /api/candidates
func (h *CandidateHandler) Create(c *gin.Context) {
	var req model.CandidateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}

	candidate, err := h.candidates.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, model.NewErrorResponse("Email already exists.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, candidateBody(candidate))
}

// Update handles PUT /api/candidates/:id
func (h *CandidateHandler) Update(c *gin.Context) {
	var req model.CandidateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}

	candidate, err := h.candidates.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Candidate not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, candidateBody(candidate))
}

// Delete handles DELETE /api/candidates/:id (soft delete)
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Candidate not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Candidate deleted."})
}

func candidateBody(cd *model.Candidate) gin.H {
	return gin.H{
		"id":        cd.ID.Hex(),
		"firstName": cd.FirstName,
		"lastName":  cd.LastName,
		"email":     cd.Email,
		"phone":     cd.Phone,
	}
}

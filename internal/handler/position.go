package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/model"
	"gavel/internal/service"
)

// PositionHandler handles position CRUD.
type PositionHandler struct {
	positions *service.PositionService
}

func NewPositionHandler(positions *service.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// List handles GET /api/positions
func (h *PositionHandler) List(c *gin.Context) {
	positions, err := h.positions.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, positions)
}

// Create handles POST /api/positions
func (h *PositionHandler) Create(c *gin.Context) {
	var req model.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Position name is required.", ""))
		return
	}

	position, err := h.positions.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, positionBody(position))
}

// Update handles PUT /api/positions/:id. The stored document is rebuilt from
// the payload: omitting company or redFlag clears them.
func (h *PositionHandler) Update(c *gin.Context) {
	var req model.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Position name is required.", ""))
		return
	}

	position, err := h.positions.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Position not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, positionBody(position))
}

// Delete handles DELETE /api/positions/:id
func (h *PositionHandler) Delete(c *gin.Context) {
	if err := h.positions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Position not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Position deleted."})
}

func positionBody(p *model.Position) gin.H {
	company := ""
	if !p.Company.IsZero() {
		company = p.Company.Hex()
	}
	return gin.H{
		"id":                 p.ID.Hex(),
		"name":               p.Name,
		"projectDescription": p.ProjectDescription,
		"company":            company,
		"redFlag":            p.RedFlag,
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/model"
	"gavel/internal/service"
)

// ClientHandler handles the admin-facing client directory.
type ClientHandler struct {
	clients *service.ClientService
}

func NewClientHandler(clients *service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req model.ClientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}

	client, err := h.clients.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, model.NewErrorResponse("Email already exists.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, clientBody(client))
}

// Update handles PUT /api/clients/:id. The editable fields are replaced
// wholesale; the stored password hash survives.
func (h *ClientHandler) Update(c *gin.Context) {
	var req model.ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
		return
	}

	client, err := h.clients.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Client not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, clientBody(client))
}

// Delete handles DELETE /api/clients/:id (soft delete)
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Client not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Client deleted."})
}

func clientBody(cl *model.Client) gin.H {
	company := ""
	if !cl.Company.IsZero() {
		company = cl.Company.Hex()
	}
	return gin.H{
		"id":        cl.ID.Hex(),
		"firstName": cl.FirstName,
		"lastName":  cl.LastName,
		"email":     cl.Email,
		"phone":     cl.Phone,
		"company":   company,
		"redFlag":   cl.RedFlag,
	}
}

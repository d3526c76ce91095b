package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gavel/internal/model"
	"gavel/internal/service"
)

// CompanyHandler handles company CRUD.
type CompanyHandler struct {
	companies *service.CompanyService
}

func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// List handles GET /api/companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Create handles POST /api/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req model.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Company name is required.", ""))
		return
	}

	company, err := h.companies.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCompanyExists) {
			c.JSON(http.StatusConflict, model.NewErrorResponse("Company already exists.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.CompanyResponse{ID: company.ID.Hex(), Name: company.Name})
}

// Update handles PUT /api/companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	var req model.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Company name is required.", ""))
		return
	}

	company, err := h.companies.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Company not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.CompanyResponse{ID: company.ID.Hex(), Name: company.Name})
}

// Delete handles DELETE /api/companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Company not found.", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Company deleted."})
}

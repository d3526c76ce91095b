package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gavel/internal/middleware"
	"gavel/internal/model"
	"gavel/internal/service"
)

// InterviewHandler handles intake, candidate-facing listings, and the admin
// review workflow.
type InterviewHandler struct {
	interviews *service.InterviewService
}

func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// Submit handles POST /api/interviews — the public intake webhook used by the
// external interviewing service.
func (h *InterviewHandler) Submit(c *gin.Context) {
	var sub model.InterviewSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Missing required fields.", ""))
		return
	}
	if sub.PositionName == "" || sub.CandidateID == "" || sub.Email == "" || sub.InterviewID == "" || sub.PositionID == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Missing required fields.", ""))
		return
	}

	slog.Info("interview intake",
		"requestID", middleware.RequestIDFromContext(c),
		"candidateId", sub.CandidateID,
		"positionId", sub.PositionID,
		"interviewID", sub.InterviewID,
	)

	if _, err := h.interviews.Submit(c.Request.Context(), &sub); err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.MessageResponse{Message: "Interview saved successfully."})
}

// CheckApplied handles GET /api/interviews/check?candidateId=&positionId= —
// public existence probe, no content disclosure.
func (h *InterviewHandler) CheckApplied(c *gin.Context) {
	candidateID := c.Query("candidateId")
	positionID := c.Query("positionId")
	if candidateID == "" || positionID == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Missing candidateId or positionId", ""))
		return
	}

	applied, err := h.interviews.CheckApplied(c.Request.Context(), candidateID, positionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

// ListMine handles GET /api/interviews — the logged-in candidate's own
// records, newest first, paginated.
func (h *InterviewHandler) ListMine(c *gin.Context) {
	principalID, _ := middleware.PrincipalFromContext(c)
	page := intQuery(c, "page")
	limit := intQuery(c, "limit")

	result, err := h.interviews.ListForCandidate(c.Request.Context(), principalID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMine handles GET /api/interviews/:id. Records owned by someone else are
// indistinguishable from missing ones.
func (h *InterviewHandler) GetMine(c *gin.Context) {
	principalID, _ := middleware.PrincipalFromContext(c)

	interview, err := h.interviews.GetForCandidate(c.Request.Context(), c.Param("id"), principalID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Interview not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, interview)
}

// AdminList handles GET /api/admin/interviews — every record, unfiltered.
func (h *InterviewHandler) AdminList(c *gin.Context) {
	interviews, err := h.interviews.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, interviews)
}

// Approve handles PUT /api/admin/interviews/:id/approve
func (h *InterviewHandler) Approve(c *gin.Context) {
	h.review(c, model.ReviewApproved)
}

// Reject handles PUT /api/admin/interviews/:id/reject
func (h *InterviewHandler) Reject(c *gin.Context) {
	h.review(c, model.ReviewRejected)
}

func (h *InterviewHandler) review(c *gin.Context, status model.ReviewStatus) {
	interview, err := h.interviews.Review(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Interview not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, interview)
}

// intQuery returns 0 when the parameter is absent or not a number; the
// service substitutes its defaults.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

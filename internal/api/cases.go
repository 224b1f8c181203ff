package api

import (
	"fmt"
	"net/http"

	"github.com/courtcms/courtcms/internal/query"
	"github.com/courtcms/courtcms/internal/store"
	"github.com/gin-gonic/gin"
)

type createCaseRequest struct {
	CaseNumber      string `json:"caseNumber" binding:"required"`
	Title           string `json:"title" binding:"required"`
	AssignedJudgeID *int   `json:"assignedJudgeId"`
}

type updateCaseRequest struct {
	CaseNumber      string `json:"caseNumber" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Status          string `json:"status" binding:"required"`
	AssignedJudgeID *int   `json:"assignedJudgeId"`
}

// ListCases returns the flattened case list, newest first.
func (h *Handlers) ListCases(c *gin.Context) {
	cases, err := h.store.ListCases(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, query.ToCaseListItems(cases))
}

// GetCase returns the case detail view with hearings and parties.
func (h *Handlers) GetCase(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	courtCase, err := h.store.GetCase(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, query.ToCaseDetail(courtCase))
}

// CreateCase files a new case.
func (h *Handlers) CreateCase(c *gin.Context) {
	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	courtCase, err := h.store.CreateCase(c.Request.Context(), store.CreateCaseInput{
		CaseNumber:      req.CaseNumber,
		Title:           req.Title,
		AssignedJudgeID: req.AssignedJudgeID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/cases/%d", courtCase.ID))
	c.JSON(http.StatusCreated, query.ToCaseListItem(courtCase))
}

// UpdateCase persists case fields; an unchanged payload is a silent no-op.
func (h *Handlers) UpdateCase(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req updateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.store.UpdateCase(c.Request.Context(), id, store.UpdateCaseInput{
		CaseNumber:      req.CaseNumber,
		Title:           req.Title,
		Status:          req.Status,
		AssignedJudgeID: req.AssignedJudgeID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCase soft-deletes a case.
func (h *Handlers) DeleteCase(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteCase(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

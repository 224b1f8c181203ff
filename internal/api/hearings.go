package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/courtcms/courtcms/internal/query"
	"github.com/courtcms/courtcms/internal/store"
	"github.com/gin-gonic/gin"
)

type hearingRequest struct {
	Description string    `json:"description" binding:"required"`
	HearingDate time.Time `json:"hearingDate" binding:"required"`
	Location    string    `json:"location" binding:"required"`
}

func (r hearingRequest) toInput() store.HearingInput {
	return store.HearingInput{
		Description: r.Description,
		HearingDate: r.HearingDate,
		Location:    r.Location,
	}
}

// CreateHearing schedules a hearing under the case in the path.
func (h *Handlers) CreateHearing(c *gin.Context) {
	caseID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req hearingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hearing, err := h.store.CreateHearing(c.Request.Context(), caseID, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/cases/%d/hearings/%d", caseID, hearing.ID))
	c.JSON(http.StatusCreated, query.ToHearingView(hearing))
}

// UpdateHearing persists hearing fields. The hearing must belong to the
// case in the path; a mismatch is rejected before anything is written.
func (h *Handlers) UpdateHearing(c *gin.Context) {
	caseID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	hearingID, ok := h.pathID(c, "hearingId")
	if !ok {
		return
	}

	var req hearingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.UpdateHearing(c.Request.Context(), caseID, hearingID, req.toInput()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteHearing soft-deletes a hearing, ownership-checked like update.
func (h *Handlers) DeleteHearing(c *gin.Context) {
	caseID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	hearingID, ok := h.pathID(c, "hearingId")
	if !ok {
		return
	}

	if err := h.store.DeleteHearing(c.Request.Context(), caseID, hearingID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

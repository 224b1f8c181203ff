package api

import (
	"fmt"
	"net/http"

	"github.com/courtcms/courtcms/internal/query"
	"github.com/courtcms/courtcms/internal/store"
	"github.com/gin-gonic/gin"
)

type judgeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	CourtRoom string `json:"courtRoom"`
	IsActive  *bool  `json:"isActive"`
}

func (r judgeRequest) toInput() store.JudgeInput {
	// Judges default to active unless the payload says otherwise.
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return store.JudgeInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		CourtRoom: r.CourtRoom,
		IsActive:  active,
	}
}

// ListJudges is the lookup endpoint backing the assignment dropdown: active
// judges only, minimal shape, served from cache between judge mutations.
func (h *Handlers) ListJudges(c *gin.Context) {
	if options, found := h.judges.Get(); found {
		c.JSON(http.StatusOK, options)
		return
	}

	judges, err := h.store.ListActiveJudges(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	options := query.ToJudgeOptions(judges)
	h.judges.Set(options)
	c.JSON(http.StatusOK, options)
}

// GetJudge returns a single judge in full shape for the admin form.
func (h *Handlers) GetJudge(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	judge, err := h.store.GetJudge(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, query.ToJudgeView(judge))
}

// CreateJudge registers a judge and invalidates the lookup cache.
func (h *Handlers) CreateJudge(c *gin.Context) {
	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	judge, err := h.store.CreateJudge(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.judges.Invalidate()
	c.Header("Location", fmt.Sprintf("/api/judges/%d", judge.ID))
	c.JSON(http.StatusCreated, query.ToJudgeView(judge))
}

// UpdateJudge persists judge fields; the cache is only invalidated when a
// write actually happened.
func (h *Handlers) UpdateJudge(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changed, err := h.store.UpdateJudge(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if changed {
		h.judges.Invalidate()
	}
	c.Status(http.StatusNoContent)
}

// DeleteJudge soft-deletes a judge. Assigned cases keep the reference and
// render "Unassigned" from then on.
func (h *Handlers) DeleteJudge(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteJudge(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	h.judges.Invalidate()
	c.Status(http.StatusNoContent)
}

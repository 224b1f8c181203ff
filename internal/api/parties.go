package api

import (
	"fmt"
	"net/http"

	"github.com/courtcms/courtcms/internal/query"
	"github.com/courtcms/courtcms/internal/store"
	"github.com/gin-gonic/gin"
)

type partyRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

func (r partyRequest) toInput() store.PartyInput {
	return store.PartyInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// ListParties returns all parties ordered by last then first name.
func (h *Handlers) ListParties(c *gin.Context) {
	parties, err := h.store.ListParties(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, query.ToPartyViews(parties))
}

// GetParty returns a single party.
func (h *Handlers) GetParty(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	party, err := h.store.GetParty(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, query.ToPartyView(party))
}

// CreateParty registers a new party.
func (h *Handlers) CreateParty(c *gin.Context) {
	var req partyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	party, err := h.store.CreateParty(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/parties/%d", party.ID))
	c.JSON(http.StatusCreated, query.ToPartyView(party))
}

// UpdateParty persists party fields; an unchanged payload is a no-op.
func (h *Handlers) UpdateParty(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req partyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.UpdateParty(c.Request.Context(), id, req.toInput()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteParty soft-deletes a party; its case links keep their rows.
func (h *Handlers) DeleteParty(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteParty(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

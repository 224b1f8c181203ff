package api

import (
	"fmt"
	"net/http"

	"github.com/courtcms/courtcms/internal/query"
	"github.com/gin-gonic/gin"
)

type addCasePartyRequest struct {
	PartyID int    `json:"partyId" binding:"required"`
	Role    string `json:"role" binding:"required"`
}

// AddPartyToCase links an existing party to the case with a role. Linking
// the same party twice is a conflict, reported as 400.
func (h *Handlers) AddPartyToCase(c *gin.Context) {
	caseID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req addCasePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.store.AddPartyToCase(c.Request.Context(), caseID, req.PartyID, req.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/cases/%d/parties", caseID))
	c.JSON(http.StatusCreated, query.ToCasePartyView(link))
}

// RemovePartyFromCase deletes only the link row; the party and the case
// both survive.
func (h *Handlers) RemovePartyFromCase(c *gin.Context) {
	caseID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	partyID, ok := h.pathID(c, "partyId")
	if !ok {
		return
	}

	if err := h.store.RemovePartyFromCase(c.Request.Context(), caseID, partyID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

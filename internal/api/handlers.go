package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/courtcms/courtcms/internal/cache"
	"github.com/courtcms/courtcms/internal/store"
	"github.com/courtcms/courtcms/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	store  *store.Store
	judges cache.JudgeCache
	logger *logger.Logger
}

// NewHandlers creates a new handlers instance
func NewHandlers(s *store.Store, judges cache.JudgeCache, log *logger.Logger) *Handlers {
	return &Handlers{
		store:  s,
		judges: judges,
		logger: log,
	}
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	dbHealthy := h.store.Ping(c.Request.Context()) == nil

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealthy,
		"cache":    h.judges.Stats(),
		"time":     time.Now().Unix(),
	})
}

// pathID parses an integer path parameter. A non-numeric value reports
// (0, false) after writing the 400 response.
func (h *Handlers) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// respondError maps store errors onto status codes: not-found to 404,
// validation and conflicts to 400, anything else to 500. Storage faults are
// the only errors logged here; the rest are ordinary request outcomes.
func (h *Handlers) respondError(c *gin.Context, err error) {
	var notFound *store.NotFoundError
	var validation *store.ValidationError
	var conflict *store.ConflictError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Error()})
	default:
		h.logger.Error("Storage failure",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmateos/amigo/internal/models"
	sessionService "github.com/dmateos/amigo/internal/services/session"
)

// APIHandler maps HTTP requests onto the session service and service errors
// onto status codes. Backend faults become a generic 500; no storage
// internals leak to callers.
type APIHandler struct {
	service sessionService.Service
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(service sessionService.Service) *APIHandler {
	return &APIHandler{service: service}
}

type createSessionRequest struct {
	Houses []*models.House  `json:"houses"`
	People []*models.Person `json:"people"`
}

type publicSessionResponse struct {
	ID             string           `json:"id"`
	Houses         []*models.House  `json:"houses"`
	People         []*models.Person `json:"people"`
	IsDrawComplete bool             `json:"isDrawComplete"`
}

type claimRequest struct {
	PersonID string `json:"personId"`
}

type createConfigRequest struct {
	Name   string                 `json:"name"`
	Houses []*models.House        `json:"houses"`
	People []*models.ConfigPerson `json:"people"`
}

// CreateSession handles POST /api/sessions
func (h *APIHandler) CreateSession(c *gin.Context) {
	var payload createSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.Houses == nil || payload.People == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	out, err := h.service.CreateSession(c.Request.Context(), &sessionService.CreateSessionInput{
		Houses: payload.Houses,
		People: payload.People,
	})
	if err != nil {
		if errors.Is(err, sessionService.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if !out.IsDrawComplete {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not generate a valid draw for the given houses"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": out.SessionID})
}

// GetSession handles GET /api/sessions/:id
func (h *APIHandler) GetSession(c *gin.Context) {
	out, err := h.service.GetSession(c.Request.Context(), &sessionService.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, publicSessionResponse{
		ID:             out.SessionID,
		Houses:         out.Houses,
		People:         out.People,
		IsDrawComplete: out.IsDrawComplete,
	})
}

// ClaimPerson handles POST /api/sessions/:id/claim
func (h *APIHandler) ClaimPerson(c *gin.Context) {
	var payload claimRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.PersonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "personId required"})
		return
	}

	_, err := h.service.ClaimPerson(c.Request.Context(), &sessionService.ClaimPersonInput{
		SessionID: c.Param("id"),
		PersonID:  payload.PersonID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
		case errors.Is(err, sessionService.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "PERSON_NOT_FOUND"})
		case errors.Is(err, sessionService.ErrAlreadyClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "ALREADY_CLAIMED"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetReceiver handles GET /api/sessions/:id/receiver
func (h *APIHandler) GetReceiver(c *gin.Context) {
	personID := c.Query("personId")
	if personID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "personId required"})
		return
	}

	out, err := h.service.GetReceiver(c.Request.Context(), &sessionService.GetReceiverInput{
		SessionID: c.Param("id"),
		PersonID:  personID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
		case errors.Is(err, sessionService.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "PERSON_NOT_FOUND"})
		case errors.Is(err, sessionService.ErrNotClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "NOT_CLAIMED"})
		case errors.Is(err, sessionService.ErrDrawPending):
			// Transient: the caller should retry once the draw completes.
			c.JSON(http.StatusAccepted, gin.H{"status": "pending"})
		case errors.Is(err, sessionService.ErrNoAssignment):
			c.JSON(http.StatusNotFound, gin.H{"error": "NO_ASSIGNMENT"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"receiver": out.Receiver})
}

// CreateConfig handles POST /api/configs
func (h *APIHandler) CreateConfig(c *gin.Context) {
	var payload createConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.Houses == nil || payload.People == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	out, err := h.service.CreateConfig(c.Request.Context(), &sessionService.CreateConfigInput{
		Name:   payload.Name,
		Houses: payload.Houses,
		People: payload.People,
	})
	if err != nil {
		if errors.Is(err, sessionService.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": out.ConfigID})
}

// GetConfig handles GET /api/configs/:id
func (h *APIHandler) GetConfig(c *gin.Context) {
	out, err := h.service.GetConfig(c.Request.Context(), &sessionService.GetConfigInput{
		ConfigID: c.Param("id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
		case errors.Is(err, sessionService.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, out.Config)
}

// KVStatus handles GET /api/kv-status
func (h *APIHandler) KVStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"enabled": h.service.StorageEnabled()})
}

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

// InterestService defines interest listing.
type InterestService interface {
	List(ctx context.Context) ([]model.Interest, error)
	ForVolunteer(ctx context.Context, volunteerID int64) ([]model.Interest, error)
	ForEvent(ctx context.Context, eventID int64) ([]model.Interest, error)
}

// Interest handles interest catalogue requests.
type Interest struct {
	interests InterestService
	guard     Authorizer
	logger    *logger.Logger
}

// NewInterest creates a new Interest handler.
func NewInterest(interests InterestService, guard Authorizer, logger *logger.Logger) *Interest {
	return &Interest{
		interests: interests,
		guard:     guard,
		logger:    logger,
	}
}

// List returns every interest.
func (h *Interest) List(c *gin.Context) {
	interests, err := h.interests.List(c.Request.Context())
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Interests", gin.H{"data": interests})
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 1, "No interests found")
	default:
		h.logger.Error("Interest handler: list failed",
			"error", err.Error())
		internalError(c, 1)
	}
}

// ForVolunteer returns the interests of the volunteer in the userEmail query parameter.
func (h *Interest) ForVolunteer(c *gin.Context) {
	principal, ok := authorize(c, h.guard, c.Query("userEmail"), model.RoleVolunteer)
	if !ok {
		return
	}

	interests, err := h.interests.ForVolunteer(c.Request.Context(), principal.ID)
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Interests", gin.H{"interests": interests})
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 3, "No interests found")
	default:
		h.logger.Error("Interest handler: volunteer interests failed",
			"volunteer_id", principal.ID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// ForEvent returns the interests of idEvent.
func (h *Interest) ForEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	if _, ok := authorize(c, h.guard, req.UserEmail, model.RoleUnset); !ok {
		return
	}

	if !req.IDEvent.Valid() {
		reply(c, http.StatusBadRequest, 3, "Invalid idEvent")
		return
	}

	interests, err := h.interests.ForEvent(c.Request.Context(), req.IDEvent.Int64())
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Interests", gin.H{"interests": interests})
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 4, "No interests found")
	default:
		h.logger.Error("Interest handler: event interests failed",
			"event_id", req.IDEvent.Int64(),
			"error", err.Error())
		internalError(c, 1)
	}
}

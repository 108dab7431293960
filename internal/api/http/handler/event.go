package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
	"github.com/dtroode/volunteer-server/internal/service"
)

// EventService defines event publication, participation and listing.
type EventService interface {
	Publish(ctx context.Context, associationID int64, params service.PublishEventParams) (model.Event, error)
	Update(ctx context.Context, associationID, eventID int64, patch model.EventPatch) error
	Join(ctx context.Context, volunteerID, eventID int64) error
	RemoveParticipant(ctx context.Context, principal model.Principal, eventID, volunteerID int64) error
	Participants(ctx context.Context, associationID, eventID int64) ([]model.Volunteer, error)
	ParticipantCount(ctx context.Context, eventID int64) (int64, error)
	Associations(ctx context.Context, eventID int64) ([]model.Association, error)
	CreatedBy(ctx context.Context, associationID int64) ([]model.Event, error)
	JoinedByVolunteer(ctx context.Context, volunteerID int64) ([]model.Event, error)
	AvailableForVolunteer(ctx context.Context, volunteerID int64) ([]model.Event, error)
	JoinedByAssociation(ctx context.Context, associationID int64) ([]model.Event, error)
	NotJoinedByAssociation(ctx context.Context, associationID int64) ([]model.Event, error)
}

type eventRequest struct {
	UserEmail string  `json:"userEmail"`
	IDEvent   flexInt `json:"idEvent"`
}

type removeParticipantRequest struct {
	UserEmail   string  `json:"userEmail"`
	IDEvent     flexInt `json:"idEvent"`
	IDVolunteer flexInt `json:"idVolunteer"`
}

type publishEventRequest struct {
	UserEmail      string  `json:"userEmail"`
	Name           string  `json:"eventName"`
	Description    string  `json:"eventDescription"`
	Location       string  `json:"eventLocation"`
	Date           string  `json:"eventDate"`
	MaxCapacity    flexInt `json:"eventMaxCapacity"`
	ApproxLocation *string `json:"eventApproxLocation"`
	IsPrivate      *bool   `json:"eventIsPrivate"`
	PosterImage    *string `json:"eventPosterImage"`
}

type updateEventRequest struct {
	UserEmail      string                     `json:"userEmail"`
	EventID        flexInt                    `json:"eventId"`
	FieldsToUpdate map[string]json.RawMessage `json:"fieldsToUpdate"`
}

type associationEventsRequest struct {
	UserEmail     string  `json:"userEmail"`
	IDAssociation flexInt `json:"idAssociation"`
}

type sessionRequest struct {
	UserEmail string `json:"userEmail"`
}

// Event handles events and their participants.
type Event struct {
	events EventService
	guard  Authorizer
	logger *logger.Logger
}

// NewEvent creates a new Event handler.
func NewEvent(events EventService, guard Authorizer, logger *logger.Logger) *Event {
	return &Event{
		events: events,
		guard:  guard,
		logger: logger,
	}
}

// Publish creates an event owned by the logged association.
func (h *Event) Publish(c *gin.Context) {
	var req publishEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	params := service.PublishEventParams{
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		Location:       strings.TrimSpace(req.Location),
		Date:           strings.TrimSpace(req.Date),
		ApproxLocation: req.ApproxLocation,
		PosterImage:    req.PosterImage,
		IsPrivate:      req.IsPrivate,
	}
	if !req.MaxCapacity.Missing() {
		capacity, ok := req.MaxCapacity.NonNegativeInt32()
		if !ok {
			reply(c, http.StatusBadRequest, 4, "Invalid eventMaxCapacity")
			return
		}
		params.MaxCapacity = &capacity
	}
	if strings.TrimSpace(req.UserEmail) == "" || params.Validate() != nil {
		reply(c, http.StatusBadRequest, 4, "Missing required fields")
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleAssociation)
	if !ok {
		return
	}

	created, err := h.events.Publish(c.Request.Context(), principal.ID, params)
	switch {
	case err == nil:
		reply(c, http.StatusCreated, 0, "Event published", gin.H{"eventId": created.ID})
	case errors.Is(err, service.ErrMissingFields):
		reply(c, http.StatusBadRequest, 4, "Missing required fields")
	default:
		h.logger.Error("Event handler: publish failed",
			"association_id", principal.ID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// Update applies fieldsToUpdate to an event of the logged association.
func (h *Event) Update(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	if strings.TrimSpace(req.UserEmail) == "" || !req.EventID.Valid() {
		reply(c, http.StatusBadRequest, 3, "Invalid userEmail or eventId")
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleAssociation)
	if !ok {
		return
	}

	if len(req.FieldsToUpdate) == 0 {
		reply(c, http.StatusBadRequest, 5, "No fields to update")
		return
	}

	patch, err := service.ParseEventPatch(req.FieldsToUpdate)
	if err != nil {
		reply(c, http.StatusBadRequest, 6, "Unsupported field in update")
		return
	}

	eventID := req.EventID.Int64()
	err = h.events.Update(c.Request.Context(), principal.ID, eventID, patch)
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Event updated")
	case errors.Is(err, model.ErrNoChanges):
		reply(c, http.StatusBadRequest, 5, "No fields to update")
	case errors.Is(err, service.ErrUnknownEvent):
		reply(c, http.StatusBadRequest, 3, "Event does not exist")
	case errors.Is(err, model.ErrNotOwner):
		reply(c, http.StatusForbidden, 4, "Event does not belong to the association")
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 5, "No event updated")
	default:
		h.logger.Error("Event handler: update failed",
			"event_id", eventID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// Join registers the logged volunteer as a participant of idEvent.
func (h *Event) Join(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleVolunteer)
	if !ok {
		return
	}

	if req.IDEvent.Missing() {
		reply(c, http.StatusBadRequest, 4, "Missing idEvent")
		return
	}
	if !req.IDEvent.Valid() {
		reply(c, http.StatusBadRequest, 5, "Invalid idEvent")
		return
	}

	eventID := req.IDEvent.Int64()
	err := h.events.Join(c.Request.Context(), principal.ID, eventID)
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Joined event")
	case errors.Is(err, model.ErrAlreadyJoined):
		reply(c, http.StatusBadRequest, 6, "Volunteer already joined this event")
	case errors.Is(err, service.ErrUnknownEvent):
		reply(c, http.StatusNotFound, 7, "Event does not exist")
	case errors.Is(err, model.ErrEventFull):
		reply(c, http.StatusConflict, 8, "Event is full")
	default:
		h.logger.Error("Event handler: join failed",
			"event_id", eventID,
			"volunteer_id", principal.ID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// RemoveParticipant lets a volunteer leave idEvent, or an association remove idVolunteer
// from one of its events.
func (h *Event) RemoveParticipant(c *gin.Context) {
	var req removeParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	if strings.TrimSpace(req.UserEmail) == "" || !req.IDEvent.Valid() {
		reply(c, http.StatusBadRequest, 3, "Invalid input")
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleUnset)
	if !ok {
		return
	}

	eventID := req.IDEvent.Int64()
	volunteerID := int64(0)
	if req.IDVolunteer.Valid() {
		volunteerID = req.IDVolunteer.Int64()
	}

	err := h.events.RemoveParticipant(c.Request.Context(), principal, eventID, volunteerID)
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Volunteer removed from event")
	case errors.Is(err, service.ErrInvalidInput):
		reply(c, http.StatusBadRequest, 3, "Missing or invalid idVolunteer")
	case errors.Is(err, service.ErrUnknownEvent):
		reply(c, http.StatusBadRequest, 3, "Event does not exist")
	case errors.Is(err, model.ErrNotJoined):
		reply(c, http.StatusBadRequest, 3, "Volunteer is not registered for this event")
	case errors.Is(err, model.ErrNotOwner):
		reply(c, http.StatusForbidden, 4, "Event does not belong to the association")
	case errors.Is(err, model.ErrForbiddenRole):
		reply(c, http.StatusForbidden, 5, "Invalid user role")
	default:
		h.logger.Error("Event handler: remove participant failed",
			"event_id", eventID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// Participants lists the volunteers of an event the logged association created or joined.
func (h *Event) Participants(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleAssociation)
	if !ok {
		return
	}

	if !req.IDEvent.Valid() {
		reply(c, http.StatusBadRequest, 3, "Invalid idEvent")
		return
	}

	eventID := req.IDEvent.Int64()
	participants, err := h.events.Participants(c.Request.Context(), principal.ID, eventID)
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Participants", gin.H{"participants": participants})
	case errors.Is(err, service.ErrUnknownEvent):
		reply(c, http.StatusBadRequest, 3, "Event does not exist")
	case errors.Is(err, model.ErrNotOwner):
		reply(c, http.StatusForbidden, 4, "Association is not part of this event")
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 5, "No participants")
	default:
		h.logger.Error("Event handler: participants failed",
			"event_id", eventID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// ParticipantCount returns how many volunteers joined idEvent.
func (h *Event) ParticipantCount(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 3)
		return
	}

	if req.IDEvent.Missing() {
		reply(c, http.StatusBadRequest, 1, "Missing idEvent")
		return
	}
	if !req.IDEvent.Valid() {
		reply(c, http.StatusBadRequest, 2, "Invalid idEvent")
		return
	}

	eventID := req.IDEvent.Int64()
	n, err := h.events.ParticipantCount(c.Request.Context(), eventID)
	if err != nil {
		h.logger.Error("Event handler: participant count failed",
			"event_id", eventID,
			"error", err.Error())
		internalError(c, 3)
		return
	}

	reply(c, http.StatusOK, 0, "Number of participants", gin.H{"numParticipants": n})
}

// Associations lists the associations taking part in idEvent.
func (h *Event) Associations(c *gin.Context) {
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

	eventID := req.IDEvent.Int64()
	associations, err := h.events.Associations(c.Request.Context(), eventID)
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Associations", gin.H{"associations": associations})
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 4, "No associations for this event")
	default:
		h.logger.Error("Event handler: associations failed",
			"event_id", eventID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// CreatedByAssociation lists the events of idAssociation, which must be the logged association.
func (h *Event) CreatedByAssociation(c *gin.Context) {
	var req associationEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	if req.IDAssociation.Missing() {
		reply(c, http.StatusBadRequest, 3, "Missing idAssociation")
		return
	}
	if !req.IDAssociation.Valid() {
		reply(c, http.StatusBadRequest, 4, "Invalid idAssociation")
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleAssociation)
	if !ok {
		return
	}

	if principal.ID != req.IDAssociation.Int64() {
		reply(c, http.StatusBadRequest, 4, "idAssociation does not match the logged association")
		return
	}

	h.listEvents(c, "events", 5, func(ctx context.Context) ([]model.Event, error) {
		return h.events.CreatedBy(ctx, principal.ID)
	})
}

// JoinedByAssociation lists events the logged association takes part in without owning them.
func (h *Event) JoinedByAssociation(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleAssociation)
	if !ok {
		return
	}

	h.listEvents(c, "events", 4, func(ctx context.Context) ([]model.Event, error) {
		return h.events.JoinedByAssociation(ctx, principal.ID)
	})
}

// NotJoinedByAssociation lists upcoming events of other associations for the userEmail query parameter.
func (h *Event) NotJoinedByAssociation(c *gin.Context) {
	principal, ok := authorize(c, h.guard, c.Query("userEmail"), model.RoleAssociation)
	if !ok {
		return
	}

	h.listEvents(c, "data", 3, func(ctx context.Context) ([]model.Event, error) {
		return h.events.NotJoinedByAssociation(ctx, principal.ID)
	})
}

// JoinedByVolunteer lists the events of the volunteer in the userEmail query parameter.
func (h *Event) JoinedByVolunteer(c *gin.Context) {
	principal, ok := authorize(c, h.guard, c.Query("userEmail"), model.RoleVolunteer)
	if !ok {
		return
	}

	h.listEvents(c, "events", 4, func(ctx context.Context) ([]model.Event, error) {
		return h.events.JoinedByVolunteer(ctx, principal.ID)
	})
}

// AvailableForVolunteer lists events the volunteer in the userEmail query parameter can still join.
func (h *Event) AvailableForVolunteer(c *gin.Context) {
	principal, ok := authorize(c, h.guard, c.Query("userEmail"), model.RoleVolunteer)
	if !ok {
		return
	}

	h.listEvents(c, "data", 3, func(ctx context.Context) ([]model.Event, error) {
		return h.events.AvailableForVolunteer(ctx, principal.ID)
	})
}

// listEvents replies with the fetched events under key, or notFoundState when there are none.
func (h *Event) listEvents(c *gin.Context, key string, notFoundState int, fetch func(context.Context) ([]model.Event, error)) {
	events, err := fetch(c.Request.Context())
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Events", gin.H{key: events})
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, notFoundState, "No events found")
	default:
		h.logger.Error("Event handler: listing failed",
			"route", c.FullPath(),
			"error", err.Error())
		internalError(c, 1)
	}
}

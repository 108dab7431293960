package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
	"github.com/dtroode/volunteer-server/internal/service"
)

// VolunteerService defines volunteer account operations.
type VolunteerService interface {
	Register(ctx context.Context, params service.RegisterVolunteerParams) (model.Volunteer, error)
	UpdateProfile(ctx context.Context, volunteerID int64, update service.VolunteerProfileUpdate) error
	Details(ctx context.Context, volunteerID int64) (model.Volunteer, error)
}

type registerVolunteerRequest struct {
	FirstName   string `json:"volunteerFirstName"`
	LastName    string `json:"volunteerLastName"`
	Email       string `json:"volunteerEmail"`
	Phone       string `json:"volunteerPhone"`
	Password    string `json:"volunteerPassword"`
	DateOfBirth string `json:"volunteerDateOfBirth"`
}

type updateVolunteerRequest struct {
	UserEmail    string  `json:"userEmail"`
	Photo        *string `json:"volunteerPhoto"`
	Availability *string `json:"volunteerAvailability"`
	Password     *string `json:"volunteerPassword"`
}

type volunteerDetailsRequest struct {
	UserEmail   string  `json:"userEmail"`
	VolunteerID flexInt `json:"volunteerId"`
}

// Volunteer handles volunteer accounts.
type Volunteer struct {
	volunteers VolunteerService
	guard      Authorizer
	logger     *logger.Logger
}

// NewVolunteer creates a new Volunteer handler.
func NewVolunteer(volunteers VolunteerService, guard Authorizer, logger *logger.Logger) *Volunteer {
	return &Volunteer{
		volunteers: volunteers,
		guard:      guard,
		logger:     logger,
	}
}

// Register creates a volunteer account.
func (h *Volunteer) Register(c *gin.Context) {
	var req registerVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 4)
		return
	}

	created, err := h.volunteers.Register(c.Request.Context(), service.RegisterVolunteerParams{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Password:    req.Password,
		DateOfBirth: strings.TrimSpace(req.DateOfBirth),
	})
	switch {
	case err == nil:
		reply(c, http.StatusCreated, 0, "Volunteer registration successful",
			gin.H{"volunteerId": created.ID})
	case errors.Is(err, service.ErrMissingFields):
		reply(c, http.StatusBadRequest, 1, "Missing parameters")
	case errors.Is(err, service.ErrWeakPassword):
		reply(c, http.StatusBadRequest, 2, err.Error())
	case errors.Is(err, service.ErrUnderage):
		reply(c, http.StatusBadRequest, 3, err.Error())
	case errors.Is(err, model.ErrAlreadyExists):
		reply(c, http.StatusBadRequest, 5, "Email already registered")
	default:
		h.logger.Error("Volunteer handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		internalError(c, 4)
	}
}

// UpdateProfile changes the photo, availability or password of the logged volunteer.
func (h *Volunteer) UpdateProfile(c *gin.Context) {
	var req updateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleVolunteer)
	if !ok {
		return
	}

	err := h.volunteers.UpdateProfile(c.Request.Context(), principal.ID, service.VolunteerProfileUpdate{
		Photo:        req.Photo,
		Availability: req.Availability,
		Password:     req.Password,
	})
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Profile updated")
	case errors.Is(err, model.ErrNoChanges):
		reply(c, http.StatusBadRequest, 3, "No fields to update")
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 4, "Volunteer not found")
	default:
		h.logger.Error("Volunteer handler: profile update failed",
			"volunteer_id", principal.ID,
			"error", err.Error())
		internalError(c, 1)
	}
}

// Details returns the profile of volunteerId to a logged volunteer.
func (h *Volunteer) Details(c *gin.Context) {
	var req volunteerDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	if _, ok := authorize(c, h.guard, req.UserEmail, model.RoleVolunteer); !ok {
		return
	}

	if !req.VolunteerID.Valid() {
		reply(c, http.StatusBadRequest, 3, "Invalid volunteerId")
		return
	}

	volunteer, err := h.volunteers.Details(c.Request.Context(), req.VolunteerID.Int64())
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Volunteer details", gin.H{"data": volunteer})
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 3, "Volunteer not found")
	default:
		h.logger.Error("Volunteer handler: details failed",
			"volunteer_id", req.VolunteerID.Int64(),
			"error", err.Error())
		internalError(c, 1)
	}
}

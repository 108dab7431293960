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

// AssociationService defines association account operations.
type AssociationService interface {
	Register(ctx context.Context, params service.RegisterAssociationParams) (model.Association, error)
	UpdateProfile(ctx context.Context, associationID int64, update service.AssociationProfileUpdate) error
}

type registerAssociationRequest struct {
	Name     string  `json:"associationName"`
	Email    string  `json:"associationEmail"`
	Password string  `json:"associationPassword"`
	Website  *string `json:"associationWebsite"`
	Logo     *string `json:"associationLogo"`
	Location *string `json:"associationLocation"`
}

type updateAssociationRequest struct {
	UserEmail string  `json:"userEmail"`
	Website   *string `json:"associationWebsite"`
	Logo      *string `json:"associationLogo"`
	Location  *string `json:"associationLocation"`
	Password  *string `json:"associationPassword"`
}

// Association handles association accounts.
type Association struct {
	associations AssociationService
	guard        Authorizer
	logger       *logger.Logger
}

// NewAssociation creates a new Association handler.
func NewAssociation(associations AssociationService, guard Authorizer, logger *logger.Logger) *Association {
	return &Association{
		associations: associations,
		guard:        guard,
		logger:       logger,
	}
}

// Register creates an association account.
func (h *Association) Register(c *gin.Context) {
	var req registerAssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 4)
		return
	}

	created, err := h.associations.Register(c.Request.Context(), service.RegisterAssociationParams{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Website:  req.Website,
		Logo:     req.Logo,
		Location: req.Location,
	})
	switch {
	case err == nil:
		reply(c, http.StatusCreated, 0, "Association registration successful",
			gin.H{"associationId": created.ID})
	case errors.Is(err, service.ErrMissingFields):
		reply(c, http.StatusBadRequest, 1, "Missing parameters")
	case errors.Is(err, service.ErrWeakPassword):
		reply(c, http.StatusBadRequest, 2, err.Error())
	case errors.Is(err, model.ErrAlreadyExists):
		reply(c, http.StatusBadRequest, 5, "Email already registered")
	default:
		h.logger.Error("Association handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		internalError(c, 4)
	}
}

// UpdateProfile changes the website, logo, location or password of the logged association.
func (h *Association) UpdateProfile(c *gin.Context) {
	var req updateAssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, 1)
		return
	}

	principal, ok := authorize(c, h.guard, req.UserEmail, model.RoleAssociation)
	if !ok {
		return
	}

	err := h.associations.UpdateProfile(c.Request.Context(), principal.ID, service.AssociationProfileUpdate{
		Website:  req.Website,
		Logo:     req.Logo,
		Location: req.Location,
		Password: req.Password,
	})
	switch {
	case err == nil:
		reply(c, http.StatusOK, 0, "Profile updated")
	case errors.Is(err, model.ErrNoChanges):
		reply(c, http.StatusBadRequest, 3, "No fields to update")
	case errors.Is(err, model.ErrNotFound):
		reply(c, http.StatusNotFound, 4, "Association not found")
	default:
		h.logger.Error("Association handler: profile update failed",
			"association_id", principal.ID,
			"error", err.Error())
		internalError(c, 1)
	}
}

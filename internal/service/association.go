package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

// RegisterAssociationParams carries an association sign-up form.
type RegisterAssociationParams struct {
	Name     string
	Email    string
	Password string
	Website  *string
	Logo     *string
	Location *string
}

// AssociationProfileUpdate carries the optional fields of a profile change.
type AssociationProfileUpdate struct {
	Website  *string
	Logo     *string
	Location *string
	Password *string
}

type Association struct {
	associations model.AssociationStore
	media        *Media
	hasher       PasswordHasher
	logger       *logger.Logger
}

func NewAssociation(associations model.AssociationStore, media *Media, hasher PasswordHasher, logger *logger.Logger) *Association {
	return &Association{
		associations: associations,
		media:        media,
		hasher:       hasher,
		logger:       logger,
	}
}

// Register validates the form and creates the association account.
func (s *Association) Register(ctx context.Context, params RegisterAssociationParams) (model.Association, error) {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return model.Association{}, ErrMissingFields
	}
	if !ValidPassword(params.Password) {
		return model.Association{}, ErrWeakPassword
	}

	logo, err := s.media.storeOptional(ctx, MediaAssociationLogo, params.Logo)
	if err != nil {
		return model.Association{}, err
	}

	created, err := s.associations.Create(ctx, model.Association{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: s.hasher.Hash(params.Password),
		Website:      params.Website,
		Logo:         logo,
		Location:     params.Location,
	})
	if err != nil {
		s.media.Release(ctx, logo)
		if errors.Is(err, model.ErrAlreadyExists) {
			s.logger.Info("Association service: email already registered",
				"email", params.Email)
			return model.Association{}, err
		}
		s.logger.Error("Association service: failed to create association",
			"email", params.Email,
			"error", err.Error())
		return model.Association{}, fmt.Errorf("failed to create association: %w", err)
	}

	s.logger.Info("Association service: association registered",
		"association_id", created.ID)

	return created, nil
}

// UpdateProfile applies a profile change for associationID.
func (s *Association) UpdateProfile(ctx context.Context, associationID int64, update AssociationProfileUpdate) error {
	if update.Website == nil && update.Logo == nil && update.Location == nil && update.Password == nil {
		return model.ErrNoChanges
	}

	current, err := s.associations.GetByID(ctx, associationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get association: %w", err)
	}

	logo, err := s.media.storeOptional(ctx, MediaAssociationLogo, update.Logo)
	if err != nil {
		return err
	}

	patch := model.AssociationPatch{
		Website:  update.Website,
		Logo:     logo,
		Location: update.Location,
	}
	if update.Password != nil {
		hash := s.hasher.Hash(*update.Password)
		patch.PasswordHash = &hash
	}

	if err := s.associations.Update(ctx, associationID, patch); err != nil {
		s.media.Release(ctx, logo)
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Association service: failed to update profile",
			"association_id", associationID,
			"error", err.Error())
		return fmt.Errorf("failed to update association: %w", err)
	}

	if logo != nil {
		s.media.Release(ctx, current.Logo)
	}

	s.logger.Info("Association service: profile updated",
		"association_id", associationID)

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

const minVolunteerAge = 18

// RegisterVolunteerParams carries a volunteer sign-up form.
type RegisterVolunteerParams struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Password    string
	DateOfBirth string
}

// VolunteerProfileUpdate carries the optional fields of a profile change.
type VolunteerProfileUpdate struct {
	Photo        *string
	Availability *string
	Password     *string
}

type Volunteer struct {
	volunteers model.VolunteerStore
	media      *Media
	hasher     PasswordHasher
	logger     *logger.Logger
	now        func() time.Time
}

func NewVolunteer(volunteers model.VolunteerStore, media *Media, hasher PasswordHasher, logger *logger.Logger) *Volunteer {
	return &Volunteer{
		volunteers: volunteers,
		media:      media,
		hasher:     hasher,
		logger:     logger,
		now:        time.Now,
	}
}

// Register validates the form and creates the volunteer account.
func (s *Volunteer) Register(ctx context.Context, params RegisterVolunteerParams) (model.Volunteer, error) {
	if params.FirstName == "" || params.LastName == "" || params.Email == "" ||
		params.Phone == "" || params.Password == "" || params.DateOfBirth == "" {
		return model.Volunteer{}, ErrMissingFields
	}

	dob, err := ParseDate(params.DateOfBirth)
	if err != nil {
		return model.Volunteer{}, ErrMissingFields
	}

	if !ValidPassword(params.Password) {
		return model.Volunteer{}, ErrWeakPassword
	}

	// Age is the calendar year difference, the birthday itself is not considered.
	if s.now().Year()-dob.Year() < minVolunteerAge {
		return model.Volunteer{}, ErrUnderage
	}

	created, err := s.volunteers.Create(ctx, model.Volunteer{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		Phone:        params.Phone,
		PasswordHash: s.hasher.Hash(params.Password),
		DateOfBirth:  dob,
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			s.logger.Info("Volunteer service: email already registered",
				"email", params.Email)
			return model.Volunteer{}, err
		}
		s.logger.Error("Volunteer service: failed to create volunteer",
			"email", params.Email,
			"error", err.Error())
		return model.Volunteer{}, fmt.Errorf("failed to create volunteer: %w", err)
	}

	s.logger.Info("Volunteer service: volunteer registered",
		"volunteer_id", created.ID)

	return created, nil
}

// UpdateProfile applies a profile change for volunteerID.
func (s *Volunteer) UpdateProfile(ctx context.Context, volunteerID int64, update VolunteerProfileUpdate) error {
	if update.Photo == nil && update.Availability == nil && update.Password == nil {
		return model.ErrNoChanges
	}

	current, err := s.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get volunteer: %w", err)
	}

	photo, err := s.media.storeOptional(ctx, MediaVolunteerPhoto, update.Photo)
	if err != nil {
		return err
	}

	patch := model.VolunteerPatch{
		Photo:        photo,
		Availability: update.Availability,
	}
	if update.Password != nil {
		hash := s.hasher.Hash(*update.Password)
		patch.PasswordHash = &hash
	}

	if err := s.volunteers.Update(ctx, volunteerID, patch); err != nil {
		s.media.Release(ctx, photo)
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Volunteer service: failed to update profile",
			"volunteer_id", volunteerID,
			"error", err.Error())
		return fmt.Errorf("failed to update volunteer: %w", err)
	}

	if photo != nil {
		s.media.Release(ctx, current.Photo)
	}

	s.logger.Info("Volunteer service: profile updated",
		"volunteer_id", volunteerID)

	return nil
}

// Details returns the volunteer with the given id.
func (s *Volunteer) Details(ctx context.Context, volunteerID int64) (model.Volunteer, error) {
	v, err := s.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Volunteer{}, err
		}
		return model.Volunteer{}, fmt.Errorf("failed to get volunteer: %w", err)
	}

	return v, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/dtroode/volunteer-server/internal/model"
)

type Interest struct {
	interests model.InterestStore
}

func NewInterest(interests model.InterestStore) *Interest {
	return &Interest{interests: interests}
}

// List returns the interest catalogue.
func (s *Interest) List(ctx context.Context) ([]model.Interest, error) {
	interests, err := s.interests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	return nonEmpty(interests)
}

func (s *Interest) ForVolunteer(ctx context.Context, volunteerID int64) ([]model.Interest, error) {
	interests, err := s.interests.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteer interests: %w", err)
	}
	return nonEmpty(interests)
}

func (s *Interest) ForEvent(ctx context.Context, eventID int64) ([]model.Interest, error) {
	interests, err := s.interests.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event interests: %w", err)
	}
	return nonEmpty(interests)
}

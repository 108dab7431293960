package model

import (
	"context"
	"time"
)

// EventStore defines persistence operations for events.
type EventStore interface {
	Create(ctx context.Context, event Event) (Event, error)
	GetByID(ctx context.Context, id int64) (Event, error)
	Update(ctx context.Context, id int64, patch EventPatch) error
	ListByCreator(ctx context.Context, associationID int64) ([]Event, error)
	ListByVolunteer(ctx context.Context, volunteerID int64) ([]Event, error)
	ListAvailableForVolunteer(ctx context.Context, volunteerID int64) ([]Event, error)
	ListJoinedByAssociation(ctx context.Context, associationID int64) ([]Event, error)
	ListNotJoinedByAssociation(ctx context.Context, associationID int64) ([]Event, error)
}

// ParticipationStore defines persistence operations for event participation.
type ParticipationStore interface {
	Join(ctx context.Context, eventID, volunteerID int64) error
	Leave(ctx context.Context, eventID, volunteerID int64) error
	IsParticipant(ctx context.Context, eventID, volunteerID int64) (bool, error)
	IsPartner(ctx context.Context, eventID, associationID int64) (bool, error)
	CountParticipants(ctx context.Context, eventID int64) (int64, error)
}

// Event represents a published event.
type Event struct {
	ID             int64     `json:"event_id"`
	Name           string    `json:"event_name"`
	Description    string    `json:"event_description"`
	Location       string    `json:"event_location"`
	ApproxLocation *string   `json:"event_approx_location"`
	Date           time.Time `json:"event_date"`
	MaxCapacity    *int32    `json:"event_max_capacity"`
	PosterImage    *string   `json:"event_poster_image"`
	IsPrivate      bool      `json:"event_is_private"`
	CreatorID      int64     `json:"creator_id"`
}

// EventPatch lists the event fields an owner may change.
type EventPatch struct {
	Name           *string
	Description    *string
	Location       *string
	ApproxLocation *string
	Date           *time.Time
	MaxCapacity    *int32
	PosterImage    *string
	IsPrivate      *bool
}

// Empty reports whether the patch changes nothing.
func (p EventPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Location == nil &&
		p.ApproxLocation == nil && p.Date == nil && p.MaxCapacity == nil &&
		p.PosterImage == nil && p.IsPrivate == nil
}

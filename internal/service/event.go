package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

// PublishEventParams carries a new event form.
type PublishEventParams struct {
	Name           string
	Description    string
	Location       string
	Date           string
	ApproxLocation *string
	MaxCapacity    *int32
	PosterImage    *string
	IsPrivate      *bool
}

// Validate reports ErrMissingFields when a required field is empty.
func (p PublishEventParams) Validate() error {
	if p.Name == "" || p.Description == "" || p.Location == "" || p.Date == "" || p.IsPrivate == nil {
		return ErrMissingFields
	}
	return nil
}

type Event struct {
	events        model.EventStore
	participation model.ParticipationStore
	volunteers    model.VolunteerStore
	associations  model.AssociationStore
	media         *Media
	logger        *logger.Logger
}

func NewEvent(
	events model.EventStore,
	participation model.ParticipationStore,
	volunteers model.VolunteerStore,
	associations model.AssociationStore,
	media *Media,
	logger *logger.Logger,
) *Event {
	return &Event{
		events:        events,
		participation: participation,
		volunteers:    volunteers,
		associations:  associations,
		media:         media,
		logger:        logger,
	}
}

// Publish creates an event owned by associationID.
func (s *Event) Publish(ctx context.Context, associationID int64, params PublishEventParams) (model.Event, error) {
	if err := params.Validate(); err != nil {
		return model.Event{}, err
	}

	date, err := ParseDate(params.Date)
	if err != nil {
		return model.Event{}, ErrMissingFields
	}

	poster, err := s.media.storeOptional(ctx, MediaEventPosterImage, params.PosterImage)
	if err != nil {
		return model.Event{}, err
	}

	// Zero capacity means unlimited.
	capacity := params.MaxCapacity
	if capacity != nil && *capacity <= 0 {
		capacity = nil
	}

	created, err := s.events.Create(ctx, model.Event{
		Name:           params.Name,
		Description:    params.Description,
		Location:       params.Location,
		ApproxLocation: emptyToNil(params.ApproxLocation),
		Date:           date,
		MaxCapacity:    capacity,
		PosterImage:    poster,
		IsPrivate:      *params.IsPrivate,
		CreatorID:      associationID,
	})
	if err != nil {
		s.media.Release(ctx, poster)
		s.logger.Error("Event service: failed to create event",
			"association_id", associationID,
			"error", err.Error())
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("Event service: event published",
		"event_id", created.ID,
		"association_id", associationID)

	return created, nil
}

// Update applies patch to an event owned by associationID.
func (s *Event) Update(ctx context.Context, associationID, eventID int64, patch model.EventPatch) error {
	if patch.Empty() {
		return model.ErrNoChanges
	}

	event, err := s.ownedEvent(ctx, associationID, eventID)
	if err != nil {
		return err
	}

	if patch.PosterImage != nil {
		poster, err := s.media.Store(ctx, MediaEventPosterImage, *patch.PosterImage)
		if err != nil {
			return err
		}
		patch.PosterImage = &poster
	}

	if err := s.events.Update(ctx, eventID, patch); err != nil {
		if patch.PosterImage != nil {
			s.media.Release(ctx, patch.PosterImage)
		}
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Event service: failed to update event",
			"event_id", eventID,
			"error", err.Error())
		return fmt.Errorf("failed to update event: %w", err)
	}

	if patch.PosterImage != nil {
		s.media.Release(ctx, event.PosterImage)
	}

	s.logger.Info("Event service: event updated",
		"event_id", eventID,
		"association_id", associationID)

	return nil
}

// Join registers volunteerID as a participant of eventID.
func (s *Event) Join(ctx context.Context, volunteerID, eventID int64) error {
	if _, err := s.event(ctx, eventID); err != nil {
		return err
	}

	joined, err := s.participation.IsParticipant(ctx, eventID, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to check participation: %w", err)
	}
	if joined {
		return model.ErrAlreadyJoined
	}

	if err := s.participation.Join(ctx, eventID, volunteerID); err != nil {
		if errors.Is(err, model.ErrAlreadyJoined) || errors.Is(err, model.ErrEventFull) {
			return err
		}
		if errors.Is(err, model.ErrNotFound) {
			return ErrUnknownEvent
		}
		return fmt.Errorf("failed to join event: %w", err)
	}

	s.logger.Info("Event service: volunteer joined event",
		"event_id", eventID,
		"volunteer_id", volunteerID)

	return nil
}

// RemoveParticipant removes a volunteer from an event. A volunteer principal leaves the
// event itself; an association principal removes volunteerID from an event it created.
func (s *Event) RemoveParticipant(ctx context.Context, principal model.Principal, eventID, volunteerID int64) error {
	switch principal.Role {
	case model.RoleVolunteer:
		volunteerID = principal.ID
	case model.RoleAssociation:
		if volunteerID <= 0 {
			return ErrInvalidInput
		}
		if _, err := s.ownedEvent(ctx, principal.ID, eventID); err != nil {
			return err
		}
	default:
		return model.ErrForbiddenRole
	}

	if err := s.participation.Leave(ctx, eventID, volunteerID); err != nil {
		if errors.Is(err, model.ErrNotJoined) {
			return err
		}
		return fmt.Errorf("failed to leave event: %w", err)
	}

	s.logger.Info("Event service: participant removed",
		"event_id", eventID,
		"volunteer_id", volunteerID,
		"by", principal.Role.String())

	return nil
}

// Participants lists the volunteers of an event created or joined by associationID.
func (s *Event) Participants(ctx context.Context, associationID, eventID int64) ([]model.Volunteer, error) {
	event, err := s.event(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatorID != associationID {
		partner, err := s.participation.IsPartner(ctx, eventID, associationID)
		if err != nil {
			return nil, fmt.Errorf("failed to check partnership: %w", err)
		}
		if !partner {
			return nil, model.ErrNotOwner
		}
	}

	volunteers, err := s.volunteers.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return nonEmpty(volunteers)
}

// ParticipantCount returns how many volunteers joined eventID.
func (s *Event) ParticipantCount(ctx context.Context, eventID int64) (int64, error) {
	n, err := s.participation.CountParticipants(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return n, nil
}

// Associations lists the associations taking part in eventID.
func (s *Event) Associations(ctx context.Context, eventID int64) ([]model.Association, error) {
	associations, err := s.associations.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list associations: %w", err)
	}
	return nonEmpty(associations)
}

// CreatedBy lists the events created by associationID.
func (s *Event) CreatedBy(ctx context.Context, associationID int64) ([]model.Event, error) {
	return s.list(ctx, "created", associationID, s.events.ListByCreator)
}

// JoinedByVolunteer lists the events volunteerID joined.
func (s *Event) JoinedByVolunteer(ctx context.Context, volunteerID int64) ([]model.Event, error) {
	return s.list(ctx, "joined_by_volunteer", volunteerID, s.events.ListByVolunteer)
}

// AvailableForVolunteer lists upcoming events with free places that volunteerID has not joined.
func (s *Event) AvailableForVolunteer(ctx context.Context, volunteerID int64) ([]model.Event, error) {
	return s.list(ctx, "available_for_volunteer", volunteerID, s.events.ListAvailableForVolunteer)
}

// JoinedByAssociation lists events associationID takes part in without having created them.
func (s *Event) JoinedByAssociation(ctx context.Context, associationID int64) ([]model.Event, error) {
	return s.list(ctx, "joined_by_association", associationID, s.events.ListJoinedByAssociation)
}

// NotJoinedByAssociation lists upcoming events of other associations that associationID has not joined.
func (s *Event) NotJoinedByAssociation(ctx context.Context, associationID int64) ([]model.Event, error) {
	return s.list(ctx, "not_joined_by_association", associationID, s.events.ListNotJoinedByAssociation)
}

func (s *Event) list(ctx context.Context, kind string, id int64, fetch func(context.Context, int64) ([]model.Event, error)) ([]model.Event, error) {
	events, err := fetch(ctx, id)
	if err != nil {
		s.logger.Error("Event service: failed to list events",
			"kind", kind,
			"id", id,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return nonEmpty(events)
}

func (s *Event) event(ctx context.Context, eventID int64) (model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Event{}, ErrUnknownEvent
		}
		return model.Event{}, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *Event) ownedEvent(ctx context.Context, associationID, eventID int64) (model.Event, error) {
	event, err := s.event(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}
	if event.CreatorID != associationID {
		return model.Event{}, model.ErrNotOwner
	}
	return event, nil
}

// ParseEventPatch maps client supplied column names onto the updatable event fields.
// Unknown names and values of the wrong type are rejected with ErrUnsupportedField.
func ParseEventPatch(fields map[string]json.RawMessage) (model.EventPatch, error) {
	var patch model.EventPatch
	for name, raw := range fields {
		var err error
		switch name {
		case "event_name":
			patch.Name, err = decodeField[string](raw)
		case "event_description":
			patch.Description, err = decodeField[string](raw)
		case "event_location":
			patch.Location, err = decodeField[string](raw)
		case "event_approx_location":
			patch.ApproxLocation, err = decodeField[string](raw)
		case "event_poster_image":
			patch.PosterImage, err = decodeField[string](raw)
		case "event_max_capacity":
			patch.MaxCapacity, err = decodeField[int32](raw)
			if err == nil && *patch.MaxCapacity < 0 {
				err = ErrInvalidInput
			}
		case "event_is_private":
			patch.IsPrivate, err = decodeField[bool](raw)
		case "event_date":
			var value *string
			if value, err = decodeField[string](raw); err == nil {
				date, perr := ParseDate(*value)
				if perr != nil {
					err = perr
				}
				patch.Date = &date
			}
		default:
			return model.EventPatch{}, fmt.Errorf("%w: %s", model.ErrUnsupportedField, name)
		}
		if err != nil {
			return model.EventPatch{}, fmt.Errorf("%w: %s", model.ErrUnsupportedField, name)
		}
	}

	return patch, nil
}

func decodeField[T any](raw json.RawMessage) (*T, error) {
	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.New("null value")
	}
	return v, nil
}

func nonEmpty[T any](items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, model.ErrNotFound
	}
	return items, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

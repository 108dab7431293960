package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.EventStore = (*EventRepository)(nil)

const eventColumns = `e.event_id, e.event_name, e.event_description, e.event_location,
			  e.event_approx_location, e.event_date, e.event_max_capacity,
			  e.event_poster_image, e.event_is_private, e.creator_id`

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func scanEvent(row pgx.Row) (model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Location,
		&e.ApproxLocation, &e.Date, &e.MaxCapacity,
		&e.PosterImage, &e.IsPrivate, &e.CreatorID,
	)
	return e, err
}

func (r *EventRepository) Create(ctx context.Context, event model.Event) (model.Event, error) {
	query := `INSERT INTO events (event_name, event_description, event_location, event_approx_location,
			  event_date, event_max_capacity, event_poster_image, event_is_private, creator_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING event_id`

	err := r.db.QueryRow(ctx, query,
		event.Name, event.Description, event.Location, event.ApproxLocation,
		event.Date, event.MaxCapacity, event.PosterImage, event.IsPrivate, event.CreatorID,
	).Scan(&event.ID)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (model.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e WHERE e.event_id = $1`

	e, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, model.ErrNotFound
		}
		return model.Event{}, fmt.Errorf("failed to get event by id: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, patch model.EventPatch) error {
	var set setClause
	if patch.Name != nil {
		set.add("event_name", *patch.Name)
	}
	if patch.Description != nil {
		set.add("event_description", *patch.Description)
	}
	if patch.Location != nil {
		set.add("event_location", *patch.Location)
	}
	if patch.ApproxLocation != nil {
		set.add("event_approx_location", *patch.ApproxLocation)
	}
	if patch.Date != nil {
		set.add("event_date", *patch.Date)
	}
	if patch.MaxCapacity != nil {
		// Non-positive capacity lifts the limit.
		var capacity *int32
		if *patch.MaxCapacity > 0 {
			capacity = patch.MaxCapacity
		}
		set.add("event_max_capacity", capacity)
	}
	if patch.PosterImage != nil {
		set.add("event_poster_image", *patch.PosterImage)
	}
	if patch.IsPrivate != nil {
		set.add("event_is_private", *patch.IsPrivate)
	}
	if set.empty() {
		return model.ErrNoChanges
	}

	query, args := set.update("events", "event_id", id)
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *EventRepository) ListByCreator(ctx context.Context, associationID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.creator_id = $1
			  ORDER BY e.event_date`

	return r.list(ctx, query, associationID)
}

func (r *EventRepository) ListByVolunteer(ctx context.Context, volunteerID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  JOIN volunteer_events ve ON ve.event_id = e.event_id
			  WHERE ve.volunteer_id = $1
			  ORDER BY e.event_date`

	return r.list(ctx, query, volunteerID)
}

// ListAvailableForVolunteer returns upcoming events the volunteer has not joined and that still have room.
func (r *EventRepository) ListAvailableForVolunteer(ctx context.Context, volunteerID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.event_date > NOW()
			    AND NOT EXISTS (
			      SELECT 1 FROM volunteer_events ve
			      WHERE ve.event_id = e.event_id AND ve.volunteer_id = $1
			    )
			    AND (e.event_max_capacity IS NULL OR (
			      SELECT COUNT(*) FROM volunteer_events ve WHERE ve.event_id = e.event_id
			    ) < e.event_max_capacity)
			  ORDER BY e.event_date`

	return r.list(ctx, query, volunteerID)
}

// ListJoinedByAssociation returns events the association partners on but did not create.
func (r *EventRepository) ListJoinedByAssociation(ctx context.Context, associationID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  JOIN event_associations ea ON ea.event_id = e.event_id
			  WHERE ea.association_id = $1 AND e.creator_id <> $1
			  ORDER BY e.event_date`

	return r.list(ctx, query, associationID)
}

// ListNotJoinedByAssociation returns upcoming events of other associations the association is not partnering on.
func (r *EventRepository) ListNotJoinedByAssociation(ctx context.Context, associationID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.event_date > NOW()
			    AND e.creator_id <> $1
			    AND NOT EXISTS (
			      SELECT 1 FROM event_associations ea
			      WHERE ea.event_id = e.event_id AND ea.association_id = $1
			    )
			  ORDER BY e.event_date`

	return r.list(ctx, query, associationID)
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

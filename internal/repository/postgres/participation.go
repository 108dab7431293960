package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.ParticipationStore = (*ParticipationRepository)(nil)

type ParticipationRepository struct {
	db DB
}

func NewParticipationRepository(db DB) *ParticipationRepository {
	return &ParticipationRepository{
		db: db,
	}
}

// Join inserts the participation only while the event has room. The event row stays locked
// until commit so concurrent joins are counted one after another.
func (r *ParticipationRepository) Join(ctx context.Context, eventID, volunteerID int64) error {
	lock := `SELECT event_max_capacity FROM events WHERE event_id = $1 FOR UPDATE`

	insert := `INSERT INTO volunteer_events (volunteer_id, event_id)
			   SELECT $1, e.event_id FROM events e
			   WHERE e.event_id = $2
			     AND (e.event_max_capacity IS NULL OR (
			       SELECT COUNT(*) FROM volunteer_events ve WHERE ve.event_id = e.event_id
			     ) < e.event_max_capacity)`

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var capacity *int32
		if err := tx.QueryRow(ctx, lock, eventID).Scan(&capacity); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrNotFound
			}
			return fmt.Errorf("failed to lock event: %w", err)
		}

		cmd, err := tx.Exec(ctx, insert, volunteerID, eventID)
		if err != nil {
			if isUniqueViolation(err) {
				return model.ErrAlreadyJoined
			}
			return fmt.Errorf("failed to join event: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return model.ErrEventFull
		}

		return nil
	})
}

func (r *ParticipationRepository) Leave(ctx context.Context, eventID, volunteerID int64) error {
	query := `DELETE FROM volunteer_events WHERE event_id = $1 AND volunteer_id = $2`

	cmd, err := r.db.Exec(ctx, query, eventID, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to leave event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotJoined
	}

	return nil
}

func (r *ParticipationRepository) IsParticipant(ctx context.Context, eventID, volunteerID int64) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM volunteer_events WHERE event_id = $1 AND volunteer_id = $2
			  )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, eventID, volunteerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check participation: %w", err)
	}

	return exists, nil
}

func (r *ParticipationRepository) IsPartner(ctx context.Context, eventID, associationID int64) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM event_associations WHERE event_id = $1 AND association_id = $2
			  )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, eventID, associationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check partnership: %w", err)
	}

	return exists, nil
}

func (r *ParticipationRepository) CountParticipants(ctx context.Context, eventID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM volunteer_events WHERE event_id = $1`

	var n int64
	if err := r.db.QueryRow(ctx, query, eventID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	return n, nil
}

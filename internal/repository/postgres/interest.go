package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.InterestStore = (*InterestRepository)(nil)

type InterestRepository struct {
	db DB
}

func NewInterestRepository(db DB) *InterestRepository {
	return &InterestRepository{
		db: db,
	}
}

func (r *InterestRepository) List(ctx context.Context) ([]model.Interest, error) {
	query := `SELECT i.interest_id, i.interest_name FROM interests i ORDER BY i.interest_id`

	return r.list(ctx, query)
}

func (r *InterestRepository) ListByVolunteer(ctx context.Context, volunteerID int64) ([]model.Interest, error) {
	query := `SELECT i.interest_id, i.interest_name
			  FROM interests i
			  JOIN volunteer_interests vi ON vi.interest_id = i.interest_id
			  WHERE vi.volunteer_id = $1
			  ORDER BY i.interest_id`

	return r.list(ctx, query, volunteerID)
}

func (r *InterestRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Interest, error) {
	query := `SELECT i.interest_id, i.interest_name
			  FROM interests i
			  JOIN event_interests ei ON ei.interest_id = i.interest_id
			  WHERE ei.event_id = $1
			  ORDER BY i.interest_id`

	return r.list(ctx, query, eventID)
}

func (r *InterestRepository) list(ctx context.Context, query string, args ...any) ([]model.Interest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interests: %w", err)
	}
	defer rows.Close()

	var interests []model.Interest
	for rows.Next() {
		var i model.Interest
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, fmt.Errorf("failed to scan interest: %w", err)
		}
		interests = append(interests, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate interests: %w", err)
	}

	return interests, nil
}

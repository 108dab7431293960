package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.VolunteerStore = (*VolunteerRepository)(nil)

const volunteerColumns = `v.volunteer_id, v.first_name, v.last_name, v.email, v.phone,
			  v.date_of_birth, v.volunteer_photo, v.volunteer_availability`

type VolunteerRepository struct {
	db DB
}

func NewVolunteerRepository(db DB) *VolunteerRepository {
	return &VolunteerRepository{
		db: db,
	}
}

func scanVolunteer(row pgx.Row) (model.Volunteer, error) {
	var v model.Volunteer
	err := row.Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
		&v.DateOfBirth, &v.Photo, &v.Availability,
	)
	return v, err
}

func (r *VolunteerRepository) Create(ctx context.Context, volunteer model.Volunteer) (model.Volunteer, error) {
	query := `INSERT INTO volunteers (first_name, last_name, email, phone, password_hash, date_of_birth)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING volunteer_id`

	err := r.db.QueryRow(ctx, query,
		volunteer.FirstName, volunteer.LastName, volunteer.Email, volunteer.Phone,
		volunteer.PasswordHash, volunteer.DateOfBirth,
	).Scan(&volunteer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Volunteer{}, model.ErrAlreadyExists
		}
		return model.Volunteer{}, fmt.Errorf("failed to create volunteer: %w", err)
	}

	return volunteer, nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (model.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + `
			  FROM volunteers v WHERE v.volunteer_id = $1`

	v, err := scanVolunteer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Volunteer{}, model.ErrNotFound
		}
		return model.Volunteer{}, fmt.Errorf("failed to get volunteer by id: %w", err)
	}

	return v, nil
}

func (r *VolunteerRepository) Update(ctx context.Context, id int64, patch model.VolunteerPatch) error {
	var set setClause
	if patch.Photo != nil {
		set.add("volunteer_photo", *patch.Photo)
	}
	if patch.Availability != nil {
		set.add("volunteer_availability", *patch.Availability)
	}
	if patch.PasswordHash != nil {
		set.add("password_hash", *patch.PasswordHash)
	}
	if set.empty() {
		return model.ErrNoChanges
	}

	query, args := set.update("volunteers", "volunteer_id", id)
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *VolunteerRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + `
			  FROM volunteers v
			  JOIN volunteer_events ve ON ve.volunteer_id = v.volunteer_id
			  WHERE ve.event_id = $1
			  ORDER BY v.last_name, v.first_name`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []model.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate volunteers: %w", err)
	}

	return volunteers, nil
}

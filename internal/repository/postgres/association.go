package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.AssociationStore = (*AssociationRepository)(nil)

const associationColumns = `a.association_id, a.association_name, a.email,
			  a.association_website, a.association_logo, a.association_location`

type AssociationRepository struct {
	db DB
}

func NewAssociationRepository(db DB) *AssociationRepository {
	return &AssociationRepository{
		db: db,
	}
}

func scanAssociation(row pgx.Row) (model.Association, error) {
	var a model.Association
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Website, &a.Logo, &a.Location)
	return a, err
}

func (r *AssociationRepository) Create(ctx context.Context, association model.Association) (model.Association, error) {
	query := `INSERT INTO associations (association_name, email, password_hash,
			  association_website, association_logo, association_location)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING association_id`

	err := r.db.QueryRow(ctx, query,
		association.Name, association.Email, association.PasswordHash,
		association.Website, association.Logo, association.Location,
	).Scan(&association.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Association{}, model.ErrAlreadyExists
		}
		return model.Association{}, fmt.Errorf("failed to create association: %w", err)
	}

	return association, nil
}

func (r *AssociationRepository) GetByID(ctx context.Context, id int64) (model.Association, error) {
	query := `SELECT ` + associationColumns + `
			  FROM associations a WHERE a.association_id = $1`

	a, err := scanAssociation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Association{}, model.ErrNotFound
		}
		return model.Association{}, fmt.Errorf("failed to get association by id: %w", err)
	}

	return a, nil
}

func (r *AssociationRepository) Update(ctx context.Context, id int64, patch model.AssociationPatch) error {
	var set setClause
	if patch.Website != nil {
		set.add("association_website", *patch.Website)
	}
	if patch.Logo != nil {
		set.add("association_logo", *patch.Logo)
	}
	if patch.Location != nil {
		set.add("association_location", *patch.Location)
	}
	if patch.PasswordHash != nil {
		set.add("password_hash", *patch.PasswordHash)
	}
	if set.empty() {
		return model.ErrNoChanges
	}

	query, args := set.update("associations", "association_id", id)
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update association: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// ListByEvent returns the partner associations of an event.
func (r *AssociationRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Association, error) {
	query := `SELECT ` + associationColumns + `
			  FROM associations a
			  JOIN event_associations ea ON ea.association_id = a.association_id
			  WHERE ea.event_id = $1
			  ORDER BY a.association_name`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event associations: %w", err)
	}
	defer rows.Close()

	var associations []model.Association
	for rows.Next() {
		a, err := scanAssociation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}
		associations = append(associations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate associations: %w", err)
	}

	return associations, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.CredentialStore = (*CredentialRepository)(nil)

// CredentialRepository resolves an email across volunteers and associations.
type CredentialRepository struct {
	db DB
}

func NewCredentialRepository(db DB) *CredentialRepository {
	return &CredentialRepository{
		db: db,
	}
}

// GetByEmail prefers the volunteer account when both tables hold the email.
func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (model.Credentials, error) {
	query := `SELECT role, id, password_hash FROM (
				SELECT 1 AS role, volunteer_id AS id, password_hash FROM volunteers WHERE email = $1
				UNION ALL
				SELECT 2 AS role, association_id AS id, password_hash FROM associations WHERE email = $1
			  ) accounts
			  ORDER BY role
			  LIMIT 1`

	var (
		role  int
		creds model.Credentials
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&role, &creds.ID, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Credentials{}, model.ErrNotFound
		}
		return model.Credentials{}, fmt.Errorf("failed to get credentials by email: %w", err)
	}
	creds.Role = model.Role(role)

	return creds, nil
}

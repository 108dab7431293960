package model

import (
	"context"
	"time"
)

// CredentialStore resolves login credentials across both account kinds.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (Credentials, error)
}

// VolunteerStore defines persistence operations for volunteers.
type VolunteerStore interface {
	Create(ctx context.Context, volunteer Volunteer) (Volunteer, error)
	GetByID(ctx context.Context, id int64) (Volunteer, error)
	Update(ctx context.Context, id int64, patch VolunteerPatch) error
	ListByEvent(ctx context.Context, eventID int64) ([]Volunteer, error)
}

// AssociationStore defines persistence operations for associations.
type AssociationStore interface {
	Create(ctx context.Context, association Association) (Association, error)
	GetByID(ctx context.Context, id int64) (Association, error)
	Update(ctx context.Context, id int64, patch AssociationPatch) error
	ListByEvent(ctx context.Context, eventID int64) ([]Association, error)
}

// Credentials is the stored secret of an account resolved by email.
type Credentials struct {
	Role         Role
	ID           int64
	PasswordHash string
}

// Volunteer represents a registered volunteer.
type Volunteer struct {
	ID           int64     `json:"volunteer_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Photo        *string   `json:"volunteer_photo"`
	Availability *string   `json:"volunteer_availability"`
}

// VolunteerPatch lists the volunteer profile fields a volunteer may change.
type VolunteerPatch struct {
	Photo        *string
	Availability *string
	PasswordHash *string
}

// Empty reports whether the patch changes nothing.
func (p VolunteerPatch) Empty() bool {
	return p.Photo == nil && p.Availability == nil && p.PasswordHash == nil
}

// Association represents a registered association.
type Association struct {
	ID           int64   `json:"association_id"`
	Name         string  `json:"association_name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Website      *string `json:"association_website"`
	Logo         *string `json:"association_logo"`
	Location     *string `json:"association_location"`
}

// AssociationPatch lists the association profile fields an association may change.
type AssociationPatch struct {
	Website      *string
	Logo         *string
	Location     *string
	PasswordHash *string
}

// Empty reports whether the patch changes nothing.
func (p AssociationPatch) Empty() bool {
	return p.Website == nil && p.Logo == nil && p.Location == nil && p.PasswordHash == nil
}

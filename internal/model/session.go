package model

import "time"

// DefaultSessionTTL is the lifetime of a session record since its last write.
const DefaultSessionTTL = time.Hour

// DefaultSweepInterval is the period of the expired session sweep.
const DefaultSweepInterval = 30 * time.Minute

// DefaultConfirmationWindow is how long an issued confirmation code stays valid.
const DefaultConfirmationWindow = 2 * time.Minute

// Role identifies the kind of account a session belongs to.
type Role int

const (
	// RoleUnset is a session without a resolved account.
	RoleUnset Role = iota
	// RoleVolunteer is a volunteer session.
	RoleVolunteer
	// RoleAssociation is an association session.
	RoleAssociation
)

func (r Role) String() string {
	switch r {
	case RoleVolunteer:
		return "volunteer"
	case RoleAssociation:
		return "association"
	default:
		return "unset"
	}
}

// SessionStore holds sessions keyed by user identifier.
type SessionStore interface {
	Set(key string, record SessionRecord)
	Get(key string) (SessionRecord, bool)
	Update(key string, patch SessionPatch) (SessionRecord, bool)
	Delete(key string)
}

// SessionRecord describes a pending or authenticated session.
type SessionRecord struct {
	LoggedIn         bool
	VolunteerID      int64
	AssociationID    int64
	ConfirmationCode string
	UpdatedAt        time.Time
}

// Role derives the principal role from the populated id field.
func (s SessionRecord) Role() Role {
	switch {
	case s.VolunteerID != 0:
		return RoleVolunteer
	case s.AssociationID != 0:
		return RoleAssociation
	default:
		return RoleUnset
	}
}

// PrincipalID returns the id matching the session role.
func (s SessionRecord) PrincipalID() int64 {
	switch s.Role() {
	case RoleVolunteer:
		return s.VolunteerID
	case RoleAssociation:
		return s.AssociationID
	default:
		return 0
	}
}

// SessionPatch is merged over an existing record. Nil fields are kept.
type SessionPatch struct {
	LoggedIn         *bool
	VolunteerID      *int64
	AssociationID    *int64
	ConfirmationCode *string
}

// Principal is the authenticated identity behind a live session.
type Principal struct {
	Identifier string
	Role       Role
	ID         int64
}

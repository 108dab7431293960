package service

import "github.com/dtroode/volunteer-server/internal/model"

// Guard decides whether an identifier holds an authenticated session with the required role.
// Every protected handler calls it before touching the database.
type Guard struct {
	sessions model.SessionStore
}

func NewGuard(sessions model.SessionStore) *Guard {
	return &Guard{sessions: sessions}
}

// Authorize returns the principal behind identifier. RoleUnset accepts any authenticated role.
func (g *Guard) Authorize(identifier string, required model.Role) (model.Principal, error) {
	if identifier == "" {
		return model.Principal{}, model.ErrUnauthenticated
	}

	record, ok := g.sessions.Get(identifier)
	if !ok || !record.LoggedIn {
		return model.Principal{}, model.ErrUnauthenticated
	}

	role := record.Role()
	if required != model.RoleUnset && role != required {
		return model.Principal{}, model.ErrForbiddenRole
	}

	return model.Principal{
		Identifier: identifier,
		Role:       role,
		ID:         record.PrincipalID(),
	}, nil
}

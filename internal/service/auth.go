package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

// LoginOutcome is the result of a login attempt that did not fail internally.
type LoginOutcome int

const (
	LoginUnknown LoginOutcome = iota
	// LoginCodeSent means credentials matched and a confirmation code was issued.
	LoginCodeSent
	// LoginConfirmed means the confirmation code matched and the session is authenticated.
	LoginConfirmed
	LoginMissingCredentials
	LoginAlreadyLoggedIn
	LoginInvalidCredentials
	// LoginMissingConfirmation means a code was supplied but there is no pending login for it.
	LoginMissingConfirmation
	LoginInvalidCode
	LoginCodeExpired
)

func (o LoginOutcome) String() string {
	switch o {
	case LoginCodeSent:
		return "code_sent"
	case LoginConfirmed:
		return "confirmed"
	case LoginMissingCredentials:
		return "missing_credentials"
	case LoginAlreadyLoggedIn:
		return "already_logged_in"
	case LoginInvalidCredentials:
		return "invalid_credentials"
	case LoginMissingConfirmation:
		return "missing_confirmation"
	case LoginInvalidCode:
		return "invalid_code"
	case LoginCodeExpired:
		return "code_expired"
	default:
		return "unknown"
	}
}

// LoginRequest carries either credentials or a confirmation code for an identifier.
type LoginRequest struct {
	Identifier string
	Password   string
	Code       string
}

// PasswordHasher computes and checks one-way password digests.
type PasswordHasher interface {
	Hash(password string) string
	Verify(hash, password string) bool
}

// Auth runs the two-phase login: password check issues a code, the code completes the login.
type Auth struct {
	sessions           model.SessionStore
	credentials        model.CredentialStore
	notifier           model.CodeNotifier
	hasher             PasswordHasher
	logger             *logger.Logger
	confirmationWindow time.Duration
	now                func() time.Time
	generateCode       func() (string, error)
}

func NewAuth(
	sessions model.SessionStore,
	credentials model.CredentialStore,
	notifier model.CodeNotifier,
	hasher PasswordHasher,
	logger *logger.Logger,
	confirmationWindow time.Duration,
) *Auth {
	return &Auth{
		sessions:           sessions,
		credentials:        credentials,
		notifier:           notifier,
		hasher:             hasher,
		logger:             logger,
		confirmationWindow: confirmationWindow,
		now:                time.Now,
		generateCode:       generateConfirmationCode,
	}
}

// Login advances the login of req.Identifier by one phase.
// Rejections are reported as outcomes; the error is set only when a collaborator fails.
func (a *Auth) Login(ctx context.Context, req LoginRequest) (LoginOutcome, error) {
	if req.Identifier != "" {
		if record, ok := a.sessions.Get(req.Identifier); ok && record.LoggedIn {
			a.logger.Info("Auth service: login rejected, already logged in",
				"identifier", req.Identifier)
			return LoginAlreadyLoggedIn, nil
		}
	}

	if req.Code != "" {
		return a.confirm(req), nil
	}

	return a.issueCode(ctx, req)
}

func (a *Auth) issueCode(ctx context.Context, req LoginRequest) (LoginOutcome, error) {
	if req.Identifier == "" || req.Password == "" {
		return LoginMissingCredentials, nil
	}

	creds, err := a.credentials.GetByEmail(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: unknown account",
				"identifier", req.Identifier)
			return LoginInvalidCredentials, nil
		}
		a.logger.Error("Auth service: failed to get credentials",
			"identifier", req.Identifier,
			"error", err.Error())
		return LoginUnknown, fmt.Errorf("failed to get credentials: %w", err)
	}

	if !a.hasher.Verify(creds.PasswordHash, req.Password) {
		a.logger.Info("Auth service: password mismatch",
			"identifier", req.Identifier)
		return LoginInvalidCredentials, nil
	}

	code, err := a.generateCode()
	if err != nil {
		return LoginUnknown, fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	record := model.SessionRecord{ConfirmationCode: code}
	switch creds.Role {
	case model.RoleVolunteer:
		record.VolunteerID = creds.ID
	case model.RoleAssociation:
		record.AssociationID = creds.ID
	}
	a.sessions.Set(req.Identifier, record)

	if err := a.notifier.DeliverCode(ctx, req.Identifier, code); err != nil {
		a.sessions.Delete(req.Identifier)
		a.logger.Error("Auth service: failed to deliver confirmation code",
			"identifier", req.Identifier,
			"error", err.Error())
		return LoginUnknown, fmt.Errorf("failed to deliver confirmation code: %w", err)
	}

	a.logger.Info("Auth service: confirmation code issued",
		"identifier", req.Identifier,
		"role", creds.Role.String())

	return LoginCodeSent, nil
}

func (a *Auth) confirm(req LoginRequest) LoginOutcome {
	if req.Identifier == "" {
		return LoginMissingConfirmation
	}

	record, ok := a.sessions.Get(req.Identifier)
	if !ok {
		return LoginMissingConfirmation
	}

	if subtle.ConstantTimeCompare([]byte(record.ConfirmationCode), []byte(req.Code)) != 1 {
		a.logger.Info("Auth service: invalid confirmation code",
			"identifier", req.Identifier)
		return LoginInvalidCode
	}

	if a.now().Sub(record.UpdatedAt) > a.confirmationWindow {
		a.sessions.Delete(req.Identifier)
		a.logger.Info("Auth service: confirmation code expired",
			"identifier", req.Identifier)
		return LoginCodeExpired
	}

	loggedIn, cleared := true, ""
	if _, ok := a.sessions.Update(req.Identifier, model.SessionPatch{
		LoggedIn:         &loggedIn,
		ConfirmationCode: &cleared,
	}); !ok {
		return LoginMissingConfirmation
	}

	a.logger.Info("Auth service: login confirmed",
		"identifier", req.Identifier,
		"role", record.Role().String())

	return LoginConfirmed
}

// Logout drops the session of identifier. It is a no-op when there is none.
func (a *Auth) Logout(identifier string) {
	a.sessions.Delete(identifier)
	a.logger.Info("Auth service: logged out",
		"identifier", identifier)
}

// generateConfirmationCode returns a uniform 6-digit code in [100000, 999999].
func generateConfirmationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

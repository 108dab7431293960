package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/service"
)

// AuthService defines the two-phase login and logout.
type AuthService interface {
	Login(ctx context.Context, req service.LoginRequest) (service.LoginOutcome, error)
	Logout(identifier string)
}

// LoginObserver records login outcomes.
type LoginObserver interface {
	ObserveLogin(outcome string)
}

type loginReply struct {
	status  int
	state   int
	message string
}

var loginReplies = map[service.LoginOutcome]loginReply{
	service.LoginCodeSent:            {http.StatusOK, 0, "Confirmation code sent"},
	service.LoginConfirmed:           {http.StatusOK, -1, "Login successful"},
	service.LoginMissingCredentials:  {http.StatusBadRequest, 1, "Missing parameters"},
	service.LoginInvalidCredentials:  {http.StatusBadRequest, 3, "Invalid email or password"},
	service.LoginAlreadyLoggedIn:     {http.StatusBadRequest, 5, "User already logged in"},
	service.LoginMissingConfirmation: {http.StatusBadRequest, 7, "No pending confirmation for this user"},
	service.LoginInvalidCode:         {http.StatusBadRequest, 10, "Invalid confirmation code"},
	service.LoginCodeExpired:         {http.StatusBadRequest, 11, "Confirmation code expired"},
}

type loginRequest struct {
	UserEmail        string     `json:"userEmail"`
	UserPassword     string     `json:"userPassword"`
	ConfirmationCode flexString `json:"confirmationCode"`
}

// Auth handles login and logout.
type Auth struct {
	auth     AuthService
	observer LoginObserver
	logger   *logger.Logger
}

// NewAuth creates a new Auth handler. observer may be nil.
func NewAuth(auth AuthService, observer LoginObserver, logger *logger.Logger) *Auth {
	return &Auth{
		auth:     auth,
		observer: observer,
		logger:   logger,
	}
}

// Login runs one phase of the login: credentials issue a code, the code completes the login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.observe("malformed")
		badRequestBody(c, 4)
		return
	}

	identifier := strings.TrimSpace(req.UserEmail)
	outcome, err := h.auth.Login(c.Request.Context(), service.LoginRequest{
		Identifier: identifier,
		Password:   req.UserPassword,
		Code:       string(req.ConfirmationCode),
	})
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"identifier", identifier,
			"error", err.Error())
		h.observe("error")
		internalError(c, 4)
		return
	}

	h.observe(outcome.String())

	r, ok := loginReplies[outcome]
	if !ok {
		h.logger.Error("Auth handler: unexpected login outcome",
			"identifier", identifier,
			"outcome", outcome.String())
		internalError(c, 4)
		return
	}

	reply(c, r.status, r.state, r.message)
}

// Logout drops the session of the userEmail query parameter.
func (h *Auth) Logout(c *gin.Context) {
	identifier := strings.TrimSpace(c.Query("userEmail"))
	if identifier == "" {
		reply(c, http.StatusBadRequest, 1, "Missing userEmail")
		return
	}

	h.auth.Logout(identifier)

	h.logger.Info("Auth handler: logged out",
		"identifier", identifier)

	reply(c, http.StatusOK, 0, "Logout successful")
}

func (h *Auth) observe(outcome string) {
	if h.observer != nil {
		h.observer.ObserveLogin(outcome)
	}
}

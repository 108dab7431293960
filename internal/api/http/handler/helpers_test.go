package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/volunteer-server/internal/api/http/handler/mocks"
	"github.com/dtroode/volunteer-server/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testEmail = "user@x.com"

type envelope struct {
	State   int    `json:"state"`
	Message string `json:"message"`
}

type response struct {
	code    int
	body    envelope
	payload map[string]json.RawMessage
	raw     *httptest.ResponseRecorder
}

// serve routes one request through a bare engine holding only h.
func serve(t *testing.T, method, route, target, body string, h gin.HandlerFunc) response {
	t.Helper()

	r := gin.New()
	r.Handle(method, route, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	res := response{code: w.Code, raw: w}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res.body))
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res.payload))
	}
	return res
}

func post(t *testing.T, route, body string, h gin.HandlerFunc) response {
	t.Helper()
	return serve(t, http.MethodPost, route, route, body, h)
}

func get(t *testing.T, route, target string, h gin.HandlerFunc) response {
	t.Helper()
	return serve(t, http.MethodGet, route, target, "", h)
}

// loggedIn returns a guard that accepts testEmail for role as principal id.
func loggedIn(t *testing.T, role model.Role, id int64) *mocks.Authorizer {
	t.Helper()

	guard := mocks.NewAuthorizer(t)
	guard.On("Authorize", testEmail, role).
		Return(model.Principal{Identifier: testEmail, Role: role, ID: id}, nil).Once()
	return guard
}

// rejected returns a guard that refuses testEmail for role.
func rejected(t *testing.T, role model.Role) *mocks.Authorizer {
	t.Helper()

	guard := mocks.NewAuthorizer(t)
	guard.On("Authorize", testEmail, role).Return(model.Principal{}, model.ErrUnauthenticated).Once()
	return guard
}

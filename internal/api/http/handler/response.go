package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/model"
)

// Authorizer resolves the principal behind a session identifier.
type Authorizer interface {
	Authorize(identifier string, required model.Role) (model.Principal, error)
}

// reply writes the {state, message} envelope shared by every endpoint, merged with payload.
func reply(c *gin.Context, status, state int, message string, payload ...gin.H) {
	body := gin.H{"state": state, "message": message}
	for _, p := range payload {
		for k, v := range p {
			body[k] = v
		}
	}
	c.JSON(status, body)
}

// authorize answers 401 with state 2 when identifier has no live session of the required role.
func authorize(c *gin.Context, guard Authorizer, identifier string, required model.Role) (model.Principal, bool) {
	principal, err := guard.Authorize(strings.TrimSpace(identifier), required)
	if err != nil {
		reply(c, http.StatusUnauthorized, 2, "Unauthorized")
		return model.Principal{}, false
	}
	return principal, true
}

// badRequestBody answers an undecodable body with the endpoint's internal-error state.
func badRequestBody(c *gin.Context, state int) {
	reply(c, http.StatusBadRequest, state, "Invalid request body")
}

func internalError(c *gin.Context, state int) {
	reply(c, http.StatusInternalServerError, state, "Internal server error")
}

// flexInt decodes an integer sent either as a JSON number or as a numeric string.
// Absent, null and blank values are missing; anything else that is not a positive
// integer is invalid.
type flexInt struct {
	present bool
	parsed  bool
	value   int64
}

func (n *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if s, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(s)
	}
	if raw == "" {
		return nil
	}

	n.present = true
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		n.value, n.parsed = v, true
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		n.value, n.parsed = int64(f), true
	}
	return nil
}

// Missing reports whether no value was sent.
func (n flexInt) Missing() bool { return !n.present }

// Valid reports whether a positive integer was sent.
func (n flexInt) Valid() bool { return n.parsed && n.value > 0 }

func (n flexInt) Int64() int64 { return n.value }

// NonNegativeInt32 returns the value when it is an integer in [0, MaxInt32].
func (n flexInt) NonNegativeInt32() (int32, bool) {
	if !n.parsed || n.value < 0 || n.value > math.MaxInt32 {
		return 0, false
	}
	return int32(n.value), true
}

// flexString decodes a string sent either as a JSON string or as a number.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = flexString(num.String())
	}
	return nil
}

package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/volunteer-server/internal/api/http/handler/mocks"
	"github.com/dtroode/volunteer-server/internal/model"
	"github.com/dtroode/volunteer-server/internal/service"
	"github.com/dtroode/volunteer-server/internal/testutil"
)

func TestAssociation_Register(t *testing.T) {
	t.Parallel()

	body := `{"associationName":"Green","associationEmail":"g@x.com","associationPassword":"Secret1!",
		"associationLocation":"Madrid"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantState  int
	}{
		{name: "registered", wantStatus: http.StatusCreated, wantState: 0},
		{name: "missing fields", err: service.ErrMissingFields, wantStatus: http.StatusBadRequest, wantState: 1},
		{name: "weak password", err: service.ErrWeakPassword, wantStatus: http.StatusBadRequest, wantState: 2},
		{name: "email taken", err: model.ErrAlreadyExists, wantStatus: http.StatusBadRequest, wantState: 5},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantState: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAssociationService(t)
			svc.On("Register", mock.Anything, mock.MatchedBy(func(p service.RegisterAssociationParams) bool {
				return p.Name == "Green" && p.Email == "g@x.com" &&
					p.Location != nil && *p.Location == "Madrid" && p.Website == nil
			})).Return(model.Association{ID: 3}, tt.err).Once()

			h := NewAssociation(svc, mocks.NewAuthorizer(t), testutil.MakeNoopLogger())
			res := post(t, "/API/registerAssociation", body, h.Register)

			assert.Equal(t, tt.wantStatus, res.code)
			assert.Equal(t, tt.wantState, res.body.State)
		})
	}
}

func TestAssociation_UpdateProfile(t *testing.T) {
	t.Parallel()

	body := `{"userEmail":"user@x.com","associationWebsite":"https://green.example.org"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantState  int
	}{
		{name: "updated", wantStatus: http.StatusOK, wantState: 0},
		{name: "no fields", err: model.ErrNoChanges, wantStatus: http.StatusBadRequest, wantState: 3},
		{name: "unknown association", err: model.ErrNotFound, wantStatus: http.StatusNotFound, wantState: 4},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantState: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			website := "https://green.example.org"
			svc := mocks.NewAssociationService(t)
			svc.On("UpdateProfile", mock.Anything, int64(3), service.AssociationProfileUpdate{Website: &website}).
				Return(tt.err).Once()

			h := NewAssociation(svc, loggedIn(t, model.RoleAssociation, 3), testutil.MakeNoopLogger())
			res := post(t, "/API/updateAssociationProfile", body, h.UpdateProfile)

			assert.Equal(t, tt.wantStatus, res.code)
			assert.Equal(t, tt.wantState, res.body.State)
		})
	}

	t.Run("volunteer session is rejected", func(t *testing.T) {
		t.Parallel()

		h := NewAssociation(mocks.NewAssociationService(t), rejected(t, model.RoleAssociation), testutil.MakeNoopLogger())
		res := post(t, "/API/updateAssociationProfile", body, h.UpdateProfile)

		assert.Equal(t, http.StatusUnauthorized, res.code)
		assert.Equal(t, 2, res.body.State)
	})
}

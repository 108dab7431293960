package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/volunteer-server/internal/mocks"
	"github.com/dtroode/volunteer-server/internal/model"
)

func TestInterestService(t *testing.T) {
	t.Parallel()

	interests := []model.Interest{{ID: 1, Name: "Environment"}}

	store := mocks.NewInterestStore(t)
	store.On("List", mock.Anything).Return(interests, nil).Once()
	store.On("ListByVolunteer", mock.Anything, int64(42)).Return(nil, nil).Once()
	store.On("ListByEvent", mock.Anything, int64(5)).Return(nil, errors.New("db down")).Once()

	svc := NewInterest(store)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, interests, got)

	_, err = svc.ForVolunteer(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.ForEvent(context.Background(), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

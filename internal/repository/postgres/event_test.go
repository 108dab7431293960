package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/volunteer-server/internal/model"
)

var eventCols = []string{
	"event_id", "event_name", "event_description", "event_location",
	"event_approx_location", "event_date", "event_max_capacity",
	"event_poster_image", "event_is_private", "creator_id",
}

func TestEventRepository_Create(t *testing.T) {
	date := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	capacity := ptr(int32(20))

	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO events`).
		WithArgs("Cleanup", "Bring gloves", "Beach", (*string)(nil), date, capacity, (*string)(nil), false, int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"event_id"}).AddRow(int64(11)))

	got, err := NewEventRepository(mock).Create(context.Background(), model.Event{
		Name:        "Cleanup",
		Description: "Bring gloves",
		Location:    "Beach",
		Date:        date,
		MaxCapacity: capacity,
		CreatorID:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, int64(7), got.CreatorID)
}

func TestEventRepository_GetByID(t *testing.T) {
	date := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
		wantAny   bool
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM events e WHERE e.event_id`).
					WithArgs(int64(11)).
					WillReturnRows(pgxmock.NewRows(eventCols).
						AddRow(int64(11), "Cleanup", "Bring gloves", "Beach", nil, date, ptr(int32(20)), nil, true, int64(7)))
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM events e WHERE e.event_id`).
					WithArgs(int64(11)).
					WillReturnRows(pgxmock.NewRows(eventCols))
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM events e WHERE e.event_id`).
					WithArgs(int64(11)).
					WillReturnError(errors.New("connection refused"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			got, err := NewEventRepository(mock).GetByID(context.Background(), 11)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAny:
				require.Error(t, err)
				assert.NotErrorIs(t, err, model.ErrNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(7), got.CreatorID)
				assert.True(t, got.IsPrivate)
				require.NotNil(t, got.MaxCapacity)
				assert.Equal(t, int32(20), *got.MaxCapacity)
				assert.Nil(t, got.ApproxLocation)
			}
		})
	}
}

func TestEventRepository_Update(t *testing.T) {
	date := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		patch     model.EventPatch
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name:  "name and date",
			patch: model.EventPatch{Name: ptr("Renamed"), Date: &date},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE events SET event_name = \$1, event_date = \$2 WHERE event_id = \$3`).
					WithArgs("Renamed", date, int64(11)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "zero capacity clears limit",
			patch: model.EventPatch{MaxCapacity: ptr(int32(0))},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE events SET event_max_capacity = \$1 WHERE event_id = \$2`).
					WithArgs((*int32)(nil), int64(11)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "privacy flag",
			patch: model.EventPatch{IsPrivate: ptr(false)},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE events SET event_is_private = \$1 WHERE event_id = \$2`).
					WithArgs(false, int64(11)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "no row",
			patch: model.EventPatch{Name: ptr("Renamed")},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE events`).
					WithArgs("Renamed", int64(11)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:      "empty",
			setupMock: func(pgxmock.PgxPoolIface) {},
			wantErr:   model.ErrNoChanges,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			err := NewEventRepository(mock).Update(context.Background(), 11, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEventRepository_Lists(t *testing.T) {
	date := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pattern string
		call    func(*EventRepository) ([]model.Event, error)
	}{
		{name: "by creator", pattern: `WHERE e.creator_id = \$1`, call: func(r *EventRepository) ([]model.Event, error) { return r.ListByCreator(context.Background(), 9) }},
		{name: "by volunteer", pattern: `JOIN volunteer_events ve`, call: func(r *EventRepository) ([]model.Event, error) { return r.ListByVolunteer(context.Background(), 9) }},
		{name: "available for volunteer", pattern: `e.event_max_capacity IS NULL`, call: func(r *EventRepository) ([]model.Event, error) {
			return r.ListAvailableForVolunteer(context.Background(), 9)
		}},
		{name: "joined by association", pattern: `JOIN event_associations ea`, call: func(r *EventRepository) ([]model.Event, error) {
			return r.ListJoinedByAssociation(context.Background(), 9)
		}},
		{name: "not joined by association", pattern: `AND e.creator_id <> \$1`, call: func(r *EventRepository) ([]model.Event, error) {
			return r.ListNotJoinedByAssociation(context.Background(), 9)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(tt.pattern).
				WithArgs(int64(9)).
				WillReturnRows(pgxmock.NewRows(eventCols).
					AddRow(int64(1), "A", "d", "l", nil, date, nil, nil, false, int64(3)).
					AddRow(int64(2), "B", "d", "l", ptr("near"), date, ptr(int32(5)), nil, false, int64(4)))

			got, err := tt.call(NewEventRepository(mock))
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "B", got[1].Name)
		})
	}

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM events e`).
			WithArgs(int64(9)).
			WillReturnError(errors.New("connection refused"))

		_, err := NewEventRepository(mock).ListByCreator(context.Background(), 9)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestParticipationRepository_Join(t *testing.T) {
	lockEvent := func(mock pgxmock.PgxPoolIface) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT event_max_capacity FROM events WHERE event_id = \$1 FOR UPDATE`).
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"event_max_capacity"}).AddRow(ptr(int32(1))))
	}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
		wantAny   bool
	}{
		{
			name: "joined",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				lockEvent(mock)
				mock.ExpectExec(`INSERT INTO volunteer_events`).
					WithArgs(int64(42), int64(5)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "full",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				lockEvent(mock)
				mock.ExpectExec(`INSERT INTO volunteer_events`).
					WithArgs(int64(42), int64(5)).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectRollback()
			},
			wantErr: model.ErrEventFull,
		},
		{
			name: "duplicate",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				lockEvent(mock)
				mock.ExpectExec(`INSERT INTO volunteer_events`).
					WithArgs(int64(42), int64(5)).
					WillReturnError(uniqueViolation)
				mock.ExpectRollback()
			},
			wantErr: model.ErrAlreadyJoined,
		},
		{
			name: "event gone",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(`FOR UPDATE`).
					WithArgs(int64(5)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				lockEvent(mock)
				mock.ExpectExec(`INSERT INTO volunteer_events`).
					WithArgs(int64(42), int64(5)).
					WillReturnError(errors.New("connection refused"))
				mock.ExpectRollback()
			},
			wantAny: true,
		},
		{
			name: "begin fails",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			err := NewParticipationRepository(mock).Join(context.Background(), 5, 42)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAny:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestParticipationRepository_Leave(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM volunteer_events`).
		WithArgs(int64(5), int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM volunteer_events`).
		WithArgs(int64(5), int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewParticipationRepository(mock)
	require.NoError(t, repo.Leave(context.Background(), 5, 42))
	assert.ErrorIs(t, repo.Leave(context.Background(), 5, 42), model.ErrNotJoined)
}

func TestParticipationRepository_Checks(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM volunteer_events WHERE event_id`).
		WithArgs(int64(5), int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`FROM event_associations WHERE event_id`).
		WithArgs(int64(5), int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := NewParticipationRepository(mock)

	joined, err := repo.IsParticipant(context.Background(), 5, 42)
	require.NoError(t, err)
	assert.True(t, joined)

	partner, err := repo.IsPartner(context.Background(), 5, 7)
	require.NoError(t, err)
	assert.False(t, partner)

	n, err := repo.CountParticipants(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestInterestRepository(t *testing.T) {
	cols := []string{"interest_id", "interest_name"}

	mock := newMock(t)
	mock.ExpectQuery(`FROM interests i ORDER BY`).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(1), "Environment").AddRow(int64(2), "Education"))
	mock.ExpectQuery(`JOIN volunteer_interests vi`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(1), "Environment"))
	mock.ExpectQuery(`JOIN event_interests ei`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(cols))

	repo := NewInterestRepository(mock)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.ListByVolunteer(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []model.Interest{{ID: 1, Name: "Environment"}}, mine)

	none, err := repo.ListByEvent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/volunteer-server/internal/mocks"
	"github.com/dtroode/volunteer-server/internal/model"
	"github.com/dtroode/volunteer-server/internal/testutil"
)

type eventMocks struct {
	events        *mocks.EventStore
	participation *mocks.ParticipationStore
	volunteers    *mocks.VolunteerStore
	associations  *mocks.AssociationStore
	storage       *mocks.Storage
}

func newEventService(t *testing.T) (*Event, eventMocks) {
	t.Helper()

	m := eventMocks{
		events:        mocks.NewEventStore(t),
		participation: mocks.NewParticipationStore(t),
		volunteers:    mocks.NewVolunteerStore(t),
		associations:  mocks.NewAssociationStore(t),
		storage:       mocks.NewStorage(t),
	}
	log := testutil.MakeNoopLogger()
	svc := NewEvent(m.events, m.participation, m.volunteers, m.associations, NewMedia(m.storage, log), log)

	return svc, m
}

func ptr[T any](v T) *T { return &v }

func TestPublishEventParams_Validate(t *testing.T) {
	t.Parallel()

	valid := PublishEventParams{
		Name:        "Beach cleanup",
		Description: "Bring gloves",
		Location:    "North beach",
		Date:        "2030-06-01T09:00:00Z",
		IsPrivate:   ptr(false),
	}

	tests := []struct {
		name   string
		mutate func(*PublishEventParams)
		want   error
	}{
		{name: "complete", mutate: func(*PublishEventParams) {}},
		{name: "no name", mutate: func(p *PublishEventParams) { p.Name = "" }, want: ErrMissingFields},
		{name: "no description", mutate: func(p *PublishEventParams) { p.Description = "" }, want: ErrMissingFields},
		{name: "no location", mutate: func(p *PublishEventParams) { p.Location = "" }, want: ErrMissingFields},
		{name: "no date", mutate: func(p *PublishEventParams) { p.Date = "" }, want: ErrMissingFields},
		{name: "privacy undefined", mutate: func(p *PublishEventParams) { p.IsPrivate = nil }, want: ErrMissingFields},
		{name: "privacy false is defined", mutate: func(p *PublishEventParams) { p.IsPrivate = ptr(false) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), tt.want)
		})
	}
}

func TestEventService_Publish(t *testing.T) {
	t.Parallel()

	params := PublishEventParams{
		Name:        "Beach cleanup",
		Description: "Bring gloves",
		Location:    "North beach",
		Date:        "2030-06-01 09:00",
		MaxCapacity: ptr(int32(0)),
		IsPrivate:   ptr(true),
	}

	t.Run("creates event owned by association", func(t *testing.T) {
		t.Parallel()
		svc, m := newEventService(t)

		m.events.On("Create", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
			return e.CreatorID == 7 && e.Name == "Beach cleanup" && e.IsPrivate &&
				e.MaxCapacity == nil && e.Date.Equal(time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC))
		})).Return(model.Event{ID: 11, CreatorID: 7, Name: "Beach cleanup"}, nil).Once()

		created, err := svc.Publish(context.Background(), 7, params)
		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
	})

	t.Run("unparsable date counts as missing", func(t *testing.T) {
		t.Parallel()
		svc, _ := newEventService(t)

		p := params
		p.Date = "next tuesday"
		_, err := svc.Publish(context.Background(), 7, p)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("store failure releases uploaded poster", func(t *testing.T) {
		t.Parallel()
		svc, m := newEventService(t)

		var key string
		m.storage.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, int64(len(pngBytes)), "image/png").
			Return(nil).
			Run(func(args mock.Arguments) { key = args.String(1) }).
			Once()
		m.events.On("Create", mock.Anything, mock.Anything).Return(model.Event{}, errors.New("db down")).Once()
		m.storage.On("Delete", mock.Anything, mock.MatchedBy(func(k string) bool { return k == key })).Return(nil).Once()

		p := params
		p.PosterImage = ptr(pngBase64)
		_, err := svc.Publish(context.Background(), 7, p)
		require.Error(t, err)
	})
}

func TestEventService_Update(t *testing.T) {
	t.Parallel()

	name := ptr("Renamed")

	tests := []struct {
		name      string
		patch     model.EventPatch
		mockSetup func(eventMocks)
		want      error
		wantErr   bool
	}{
		{
			name:      "empty patch rejected before lookup",
			patch:     model.EventPatch{},
			mockSetup: func(eventMocks) {},
			want:      model.ErrNoChanges,
		},
		{
			name:  "unknown event",
			patch: model.EventPatch{Name: name},
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(3)).Return(model.Event{}, model.ErrNotFound).Once()
			},
			want: ErrUnknownEvent,
		},
		{
			name:  "other association's event",
			patch: model.EventPatch{Name: name},
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(3)).Return(model.Event{ID: 3, CreatorID: 99}, nil).Once()
			},
			want: model.ErrNotOwner,
		},
		{
			name:  "no rows updated",
			patch: model.EventPatch{Name: name},
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(3)).Return(model.Event{ID: 3, CreatorID: 7}, nil).Once()
				m.events.On("Update", mock.Anything, int64(3), model.EventPatch{Name: name}).Return(model.ErrNotFound).Once()
			},
			want: model.ErrNotFound,
		},
		{
			name:  "store failure",
			patch: model.EventPatch{Name: name},
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(3)).Return(model.Event{ID: 3, CreatorID: 7}, nil).Once()
				m.events.On("Update", mock.Anything, int64(3), mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
		},
		{
			name:  "updated",
			patch: model.EventPatch{Name: name},
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(3)).Return(model.Event{ID: 3, CreatorID: 7}, nil).Once()
				m.events.On("Update", mock.Anything, int64(3), model.EventPatch{Name: name}).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newEventService(t)
			tt.mockSetup(m)

			err := svc.Update(context.Background(), 7, 3, tt.patch)
			switch {
			case tt.want != nil:
				assert.ErrorIs(t, err, tt.want)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Update_ReplacesPoster(t *testing.T) {
	t.Parallel()
	svc, m := newEventService(t)

	old := MediaURLPrefix + "events/old.png"
	m.events.On("GetByID", mock.Anything, int64(3)).Return(model.Event{ID: 3, CreatorID: 7, PosterImage: &old}, nil).Once()
	m.storage.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything, "image/png").Return(nil).Once()
	m.events.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(p model.EventPatch) bool {
		return p.PosterImage != nil && *p.PosterImage != pngBase64 && len(*p.PosterImage) > len(MediaURLPrefix)
	})).Return(nil).Once()
	m.storage.On("Delete", mock.Anything, "events/old.png").Return(nil).Once()

	err := svc.Update(context.Background(), 7, 3, model.EventPatch{PosterImage: ptr(pngBase64)})
	require.NoError(t, err)
}

func TestEventService_Join(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mockSetup func(eventMocks)
		want      error
		wantErr   bool
	}{
		{
			name: "unknown event",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{}, model.ErrNotFound).Once()
			},
			want: ErrUnknownEvent,
		},
		{
			name: "already joined",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5}, nil).Once()
				m.participation.On("IsParticipant", mock.Anything, int64(5), int64(42)).Return(true, nil).Once()
			},
			want: model.ErrAlreadyJoined,
		},
		{
			name: "event full",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5}, nil).Once()
				m.participation.On("IsParticipant", mock.Anything, int64(5), int64(42)).Return(false, nil).Once()
				m.participation.On("Join", mock.Anything, int64(5), int64(42)).Return(model.ErrEventFull).Once()
			},
			want: model.ErrEventFull,
		},
		{
			name: "event deleted while joining",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5}, nil).Once()
				m.participation.On("IsParticipant", mock.Anything, int64(5), int64(42)).Return(false, nil).Once()
				m.participation.On("Join", mock.Anything, int64(5), int64(42)).Return(model.ErrNotFound).Once()
			},
			want: ErrUnknownEvent,
		},
		{
			name: "store failure",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5}, nil).Once()
				m.participation.On("IsParticipant", mock.Anything, int64(5), int64(42)).Return(false, errors.New("db down")).Once()
			},
			wantErr: true,
		},
		{
			name: "joined",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5}, nil).Once()
				m.participation.On("IsParticipant", mock.Anything, int64(5), int64(42)).Return(false, nil).Once()
				m.participation.On("Join", mock.Anything, int64(5), int64(42)).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newEventService(t)
			tt.mockSetup(m)

			err := svc.Join(context.Background(), 42, 5)
			switch {
			case tt.want != nil:
				assert.ErrorIs(t, err, tt.want)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_RemoveParticipant(t *testing.T) {
	t.Parallel()

	volunteer := model.Principal{Identifier: "v@x.com", Role: model.RoleVolunteer, ID: 42}
	association := model.Principal{Identifier: "a@x.com", Role: model.RoleAssociation, ID: 7}

	tests := []struct {
		name        string
		principal   model.Principal
		volunteerID int64
		mockSetup   func(eventMocks)
		want        error
	}{
		{
			name:        "volunteer leaves using own id",
			principal:   volunteer,
			volunteerID: 999,
			mockSetup: func(m eventMocks) {
				m.participation.On("Leave", mock.Anything, int64(5), int64(42)).Return(nil).Once()
			},
		},
		{
			name:      "volunteer not joined",
			principal: volunteer,
			mockSetup: func(m eventMocks) {
				m.participation.On("Leave", mock.Anything, int64(5), int64(42)).Return(model.ErrNotJoined).Once()
			},
			want: model.ErrNotJoined,
		},
		{
			name:      "association without volunteer id",
			principal: association,
			mockSetup: func(eventMocks) {},
			want:      ErrInvalidInput,
		},
		{
			name:        "association on unknown event",
			principal:   association,
			volunteerID: 42,
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{}, model.ErrNotFound).Once()
			},
			want: ErrUnknownEvent,
		},
		{
			name:        "association not creator",
			principal:   association,
			volunteerID: 42,
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5, CreatorID: 8}, nil).Once()
			},
			want: model.ErrNotOwner,
		},
		{
			name:        "association removes participant",
			principal:   association,
			volunteerID: 42,
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5, CreatorID: 7}, nil).Once()
				m.participation.On("Leave", mock.Anything, int64(5), int64(42)).Return(nil).Once()
			},
		},
		{
			name:      "unset role",
			principal: model.Principal{Identifier: "x@x.com"},
			mockSetup: func(eventMocks) {},
			want:      model.ErrForbiddenRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newEventService(t)
			tt.mockSetup(m)

			err := svc.RemoveParticipant(context.Background(), tt.principal, 5, tt.volunteerID)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEventService_Participants(t *testing.T) {
	t.Parallel()

	participants := []model.Volunteer{{ID: 42, FirstName: "Ana"}}

	tests := []struct {
		name      string
		mockSetup func(eventMocks)
		want      error
		wantLen   int
	}{
		{
			name: "creator",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5, CreatorID: 7}, nil).Once()
				m.volunteers.On("ListByEvent", mock.Anything, int64(5)).Return(participants, nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "partner",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5, CreatorID: 8}, nil).Once()
				m.participation.On("IsPartner", mock.Anything, int64(5), int64(7)).Return(true, nil).Once()
				m.volunteers.On("ListByEvent", mock.Anything, int64(5)).Return(participants, nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "unrelated association",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5, CreatorID: 8}, nil).Once()
				m.participation.On("IsPartner", mock.Anything, int64(5), int64(7)).Return(false, nil).Once()
			},
			want: model.ErrNotOwner,
		},
		{
			name: "no participants",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{ID: 5, CreatorID: 7}, nil).Once()
				m.volunteers.On("ListByEvent", mock.Anything, int64(5)).Return(nil, nil).Once()
			},
			want: model.ErrNotFound,
		},
		{
			name: "unknown event",
			mockSetup: func(m eventMocks) {
				m.events.On("GetByID", mock.Anything, int64(5)).Return(model.Event{}, model.ErrNotFound).Once()
			},
			want: ErrUnknownEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newEventService(t)
			tt.mockSetup(m)

			got, err := svc.Participants(context.Background(), 7, 5)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestEventService_Lists(t *testing.T) {
	t.Parallel()

	events := []model.Event{{ID: 1}, {ID: 2}}

	tests := []struct {
		name   string
		method string
		call   func(*Event) ([]model.Event, error)
	}{
		{name: "created by", method: "ListByCreator", call: func(s *Event) ([]model.Event, error) { return s.CreatedBy(context.Background(), 9) }},
		{name: "joined by volunteer", method: "ListByVolunteer", call: func(s *Event) ([]model.Event, error) { return s.JoinedByVolunteer(context.Background(), 9) }},
		{name: "available for volunteer", method: "ListAvailableForVolunteer", call: func(s *Event) ([]model.Event, error) { return s.AvailableForVolunteer(context.Background(), 9) }},
		{name: "joined by association", method: "ListJoinedByAssociation", call: func(s *Event) ([]model.Event, error) { return s.JoinedByAssociation(context.Background(), 9) }},
		{name: "not joined by association", method: "ListNotJoinedByAssociation", call: func(s *Event) ([]model.Event, error) { return s.NotJoinedByAssociation(context.Background(), 9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, m := newEventService(t)
			m.events.On(tt.method, mock.Anything, int64(9)).Return(events, nil).Once()
			got, err := tt.call(svc)
			require.NoError(t, err)
			assert.Equal(t, events, got)

			svc, m = newEventService(t)
			m.events.On(tt.method, mock.Anything, int64(9)).Return([]model.Event{}, nil).Once()
			_, err = tt.call(svc)
			assert.ErrorIs(t, err, model.ErrNotFound)

			svc, m = newEventService(t)
			m.events.On(tt.method, mock.Anything, int64(9)).Return(nil, errors.New("db down")).Once()
			_, err = tt.call(svc)
			require.Error(t, err)
			assert.NotErrorIs(t, err, model.ErrNotFound)
		})
	}
}

func TestEventService_ParticipantCountAndAssociations(t *testing.T) {
	t.Parallel()
	svc, m := newEventService(t)

	m.participation.On("CountParticipants", mock.Anything, int64(5)).Return(int64(3), nil).Once()
	m.associations.On("ListByEvent", mock.Anything, int64(5)).Return([]model.Association{{ID: 7}}, nil).Once()
	m.associations.On("ListByEvent", mock.Anything, int64(6)).Return(nil, nil).Once()

	n, err := svc.ParticipantCount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	got, err := svc.Associations(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.Associations(context.Background(), 6)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestParseEventPatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(*testing.T, model.EventPatch)
	}{
		{
			name: "known fields",
			body: `{"event_name":"Cleanup","event_max_capacity":20,"event_is_private":false,"event_date":"2030-01-02"}`,
			check: func(t *testing.T, p model.EventPatch) {
				require.NotNil(t, p.Name)
				assert.Equal(t, "Cleanup", *p.Name)
				require.NotNil(t, p.MaxCapacity)
				assert.Equal(t, int32(20), *p.MaxCapacity)
				require.NotNil(t, p.IsPrivate)
				assert.False(t, *p.IsPrivate)
				require.NotNil(t, p.Date)
				assert.Equal(t, 2030, p.Date.Year())
				assert.Nil(t, p.Description)
			},
		},
		{
			name: "empty object",
			body: `{}`,
			check: func(t *testing.T, p model.EventPatch) {
				assert.True(t, p.Empty())
			},
		},
		{name: "unknown column", body: `{"creator_id":1}`, wantErr: true},
		{name: "sql in column name", body: `{"event_name = 'x'; --":"y"}`, wantErr: true},
		{name: "wrong type", body: `{"event_max_capacity":"many"}`, wantErr: true},
		{name: "capacity overflow", body: `{"event_max_capacity":4294967297}`, wantErr: true},
		{name: "negative capacity", body: `{"event_max_capacity":-1}`, wantErr: true},
		{
			name: "zero capacity clears the limit",
			body: `{"event_max_capacity":0}`,
			check: func(t *testing.T, p model.EventPatch) {
				require.NotNil(t, p.MaxCapacity)
				assert.Equal(t, int32(0), *p.MaxCapacity)
			},
		},
		{name: "null value", body: `{"event_name":null}`, wantErr: true},
		{name: "bad date", body: `{"event_date":"soon"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tt.body), &fields))

			patch, err := ParseEventPatch(fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrUnsupportedField)
				return
			}
			require.NoError(t, err)
			tt.check(t, patch)
		})
	}
}

//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/volunteer-server/internal/model"
	repo "github.com/dtroode/volunteer-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "volunteer_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/volunteer_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_Flow(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	volunteers := repo.NewVolunteerRepository(conn)
	associations := repo.NewAssociationRepository(conn)
	events := repo.NewEventRepository(conn)
	participation := repo.NewParticipationRepository(conn)
	credentials := repo.NewCredentialRepository(conn)
	interests := repo.NewInterestRepository(conn)

	v, err := volunteers.Create(ctx, model.Volunteer{
		FirstName:    "Ana",
		LastName:     "Lopez",
		Email:        "ana@example.com",
		Phone:        "600000000",
		PasswordHash: "vhash",
		DateOfBirth:  time.Date(1990, 5, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = volunteers.Create(ctx, model.Volunteer{Email: "ana@example.com", DateOfBirth: time.Now()})
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	a, err := associations.Create(ctx, model.Association{Name: "Green", Email: "green@example.com", PasswordHash: "ahash"})
	require.NoError(t, err)

	t.Run("credentials", func(t *testing.T) {
		creds, err := credentials.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.Equal(t, model.Credentials{Role: model.RoleVolunteer, ID: v.ID, PasswordHash: "vhash"}, creds)

		creds, err = credentials.GetByEmail(ctx, "green@example.com")
		require.NoError(t, err)
		require.Equal(t, model.RoleAssociation, creds.Role)

		_, err = credentials.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	capacity := int32(1)
	e, err := events.Create(ctx, model.Event{
		Name:        "Cleanup",
		Description: "Bring gloves",
		Location:    "Beach",
		Date:        time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second),
		MaxCapacity: &capacity,
		CreatorID:   a.ID,
	})
	require.NoError(t, err)

	t.Run("participation", func(t *testing.T) {
		available, err := events.ListAvailableForVolunteer(ctx, v.ID)
		require.NoError(t, err)
		require.Len(t, available, 1)

		require.NoError(t, participation.Join(ctx, e.ID, v.ID))
		require.ErrorIs(t, participation.Join(ctx, e.ID, v.ID), model.ErrAlreadyJoined)

		other, err := volunteers.Create(ctx, model.Volunteer{
			FirstName: "Luis", LastName: "Perez", Email: "luis@example.com", Phone: "601",
			PasswordHash: "h", DateOfBirth: time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.ErrorIs(t, participation.Join(ctx, e.ID, other.ID), model.ErrEventFull)

		n, err := participation.CountParticipants(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		list, err := volunteers.ListByEvent(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, participation.Leave(ctx, e.ID, v.ID))
		require.ErrorIs(t, participation.Leave(ctx, e.ID, v.ID), model.ErrNotJoined)
	})

	t.Run("event update", func(t *testing.T) {
		name := "Renamed"
		require.NoError(t, events.Update(ctx, e.ID, model.EventPatch{Name: &name}))
		require.ErrorIs(t, events.Update(ctx, e.ID+1000, model.EventPatch{Name: &name}), model.ErrNotFound)

		got, err := events.GetByID(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, "Renamed", got.Name)

		created, err := events.ListByCreator(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, created, 1)
	})

	t.Run("interests", func(t *testing.T) {
		all, err := interests.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)
	})
}

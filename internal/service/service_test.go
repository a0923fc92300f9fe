package service

import (
	"context"
	"testing"

	"fitstudio/internal/domain"
	"fitstudio/internal/state"
	"fitstudio/internal/store"

	"github.com/stretchr/testify/require"
)

// Low cost keeps the credential hashing cheap in tests.
const testIterations = 16

type testEnv struct {
	store    store.Store
	state    *state.Container
	auth     AuthService
	trainers TrainerService
	clients  ClientService
	library  ExerciseService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemoryStore()
	container := state.New(st)
	require.NoError(t, container.Load(context.Background()))

	return &testEnv{
		store:    st,
		state:    container,
		auth:     NewAuthService(container, testIterations),
		trainers: NewTrainerService(container),
		clients:  NewClientService(container),
		library:  NewExerciseService(container),
	}
}

// registerUser creates an account and returns it.
func (e *testEnv) registerUser(t *testing.T, username string, role domain.Role) *domain.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), username, "secret123", role)
	require.NoError(t, err)
	return user
}

// loginAs registers (if needed) and authenticates the given user.
func (e *testEnv) loginAs(t *testing.T, username string) *domain.User {
	t.Helper()
	if e.state.UserByUsername(username) == nil {
		e.registerUser(t, username, domain.RoleClient)
	}
	user, err := e.auth.Login(context.Background(), username, "secret123")
	require.NoError(t, err)
	return user
}

package seed

import (
	"context"
	"regexp"
	"testing"

	"fitstudio/internal/domain"
	"fitstudio/internal/state"
	"fitstudio/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIterations = 16

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func newSeededState(t *testing.T) (store.Store, *state.Container) {
	t.Helper()
	ctx := context.Background()

	st := store.NewMemoryStore()
	container := state.New(st)
	require.NoError(t, container.Load(ctx))
	require.NoError(t, New(st, container, testIterations, nil).Run(ctx))
	return st, container
}

func TestSeeder_FirstRunDefaults(t *testing.T) {
	_, container := newSeededState(t)

	users := container.Users()
	require.Len(t, users, 2)
	roles := map[string]bool{}
	for _, u := range users {
		roles[string(u.Role)] = true
		// Uniform credential scheme, no plaintext anywhere.
		assert.Regexp(t, hexDigest, u.Credential.Digest)
		assert.NotEmpty(t, u.Credential.Salt)
	}
	assert.True(t, roles["trainer"])
	assert.True(t, roles["client"])

	programs := container.Programs()
	require.Len(t, programs, 1)
	assert.Len(t, programs[0].Exercises, 2)

	exercises := container.Exercises()
	require.Len(t, exercises, 6)
	groups := map[string]bool{}
	for _, ex := range exercises {
		groups[ex.MuscleGroup] = true
	}
	assert.Len(t, groups, 6, "library should span distinct muscle groups")

	// Empty collections are written out explicitly.
	assert.Empty(t, container.Sessions())
	assert.Empty(t, container.Products())
}

func TestSeeder_SecondRunIsNoOp(t *testing.T) {
	ctx := context.Background()
	st, container := newSeededState(t)

	require.NoError(t, New(st, container, testIterations, nil).Run(ctx))
	assert.Len(t, container.Users(), 2)
	assert.Len(t, container.Programs(), 1)
}

func TestSeeder_BackfillsMarkerOverExistingData(t *testing.T) {
	ctx := context.Background()

	// A store carrying users but no marker (hand-copied data directory) must
	// not get the defaults appended on top.
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(ctx, store.KeyUsers, []domain.User{
		{ID: "u1", Username: "existing"},
	}))

	container := state.New(st)
	require.NoError(t, container.Load(ctx))
	require.NoError(t, New(st, container, testIterations, nil).Run(ctx))

	users := container.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "existing", users[0].Username)
	assert.Empty(t, container.Programs())

	// The marker was backfilled, so a later run stays a no-op too.
	require.NoError(t, New(st, container, testIterations, nil).Run(ctx))
	assert.Len(t, container.Users(), 1)
}

func TestSeeder_DoesNotReseedEmptiedCollections(t *testing.T) {
	ctx := context.Background()
	st, container := newSeededState(t)

	// A trainer wipes every program; the next start must not resurrect the
	// default one.
	require.NoError(t, container.Update(ctx, func(tx *state.Tx) error {
		tx.Programs = nil
		tx.Mark(store.KeyPrograms)
		return nil
	}))

	reloaded := state.New(st)
	require.NoError(t, reloaded.Load(ctx))
	require.NoError(t, New(st, reloaded, testIterations, nil).Run(ctx))

	assert.Empty(t, reloaded.Programs())
	assert.Len(t, reloaded.Users(), 2)
}

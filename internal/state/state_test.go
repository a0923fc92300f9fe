package state

import (
	"context"
	"errors"
	"testing"

	"fitstudio/internal/domain"
	"fitstudio/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore wraps a real store and fails saves on demand.
type failingStore struct {
	store.Store
	failSaves bool
}

func (f *failingStore) Save(ctx context.Context, key string, value any) error {
	if f.failSaves {
		return errors.New("disk full")
	}
	return f.Store.Save(ctx, key, value)
}

func TestContainer_UpdateWritesThrough(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	c := New(st)
	require.NoError(t, c.Load(ctx))

	err := c.Update(ctx, func(tx *Tx) error {
		tx.Users = append(tx.Users, domain.User{ID: "u1", Username: "alice"})
		tx.Mark(store.KeyUsers)
		return nil
	})
	require.NoError(t, err)

	// A fresh container over the same store sees the change.
	c2 := New(st)
	require.NoError(t, c2.Load(ctx))
	users := c2.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestContainer_UnmarkedCollectionsAreNotPersisted(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	c := New(st)
	require.NoError(t, c.Load(ctx))

	err := c.Update(ctx, func(tx *Tx) error {
		tx.Users = append(tx.Users, domain.User{ID: "u1"})
		tx.Programs = append(tx.Programs, domain.Program{ID: "p1"})
		tx.Mark(store.KeyUsers) // programs deliberately unmarked
		return nil
	})
	require.NoError(t, err)

	c2 := New(st)
	require.NoError(t, c2.Load(ctx))
	assert.Len(t, c2.Users(), 1)
	assert.Empty(t, c2.Programs())
}

func TestContainer_FailedSaveLeavesMemoryUntouched(t *testing.T) {
	ctx := context.Background()
	fs := &failingStore{Store: store.NewMemoryStore()}

	c := New(fs)
	require.NoError(t, c.Load(ctx))

	fs.failSaves = true
	err := c.Update(ctx, func(tx *Tx) error {
		tx.Users = append(tx.Users, domain.User{ID: "u1"})
		tx.Mark(store.KeyUsers)
		return nil
	})
	require.Error(t, err)
	assert.Empty(t, c.Users())
}

func TestContainer_CallbackErrorAborts(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	c := New(st)
	require.NoError(t, c.Load(ctx))

	boom := errors.New("boom")
	err := c.Update(ctx, func(tx *Tx) error {
		tx.Users = append(tx.Users, domain.User{ID: "u1"})
		tx.Mark(store.KeyUsers)
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, c.Users())

	c2 := New(st)
	require.NoError(t, c2.Load(ctx))
	assert.Empty(t, c2.Users())
}

func TestContainer_AccessorsReturnDetachedCopies(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemoryStore())
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.Update(ctx, func(tx *Tx) error {
		tx.Users = append(tx.Users, domain.User{
			ID:      "u1",
			Metrics: []domain.MetricEntry{{Weight: 80}},
		})
		tx.Mark(store.KeyUsers)
		return nil
	}))

	users := c.Users()
	users[0].Metrics[0].Weight = 999
	users[0].Username = "hacked"

	fresh := c.Users()
	assert.Equal(t, float64(80), fresh[0].Metrics[0].Weight)
	assert.Empty(t, fresh[0].Username)
}

func TestContainer_CurrentUserTracksMutations(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemoryStore())
	require.NoError(t, c.Load(ctx))

	require.NoError(t, c.Update(ctx, func(tx *Tx) error {
		tx.Users = append(tx.Users, domain.User{ID: "u1", Username: "alice"})
		tx.Mark(store.KeyUsers)
		return nil
	}))

	require.True(t, c.SetCurrentUser("u1"))
	require.NoError(t, c.Update(ctx, func(tx *Tx) error {
		tx.Users[0].Profile.FullName = "Alice A."
		tx.Mark(store.KeyUsers)
		return nil
	}))

	current := c.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "Alice A.", current.Profile.FullName)

	c.ClearCurrentUser()
	assert.Nil(t, c.CurrentUser())
}

func TestContainer_SetCurrentUserUnknownID(t *testing.T) {
	c := New(store.NewMemoryStore())
	require.NoError(t, c.Load(context.Background()))

	assert.False(t, c.SetCurrentUser("nope"))
	assert.Nil(t, c.CurrentUser())
}

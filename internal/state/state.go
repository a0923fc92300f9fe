// Package state holds the in-memory application state and mirrors every
// change to the persistent store (write-through).
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fitstudio/internal/domain"
	"fitstudio/internal/store"
)

// Collections is the full set of in-memory entity collections.
type Collections struct {
	Users     []domain.User
	Programs  []domain.Program
	Sessions  []domain.Session
	Groups    []domain.Group
	Products  []domain.Product
	Exercises []domain.Exercise
	Workouts  []domain.WorkoutLog
}

// Tx is a mutable copy of the collections handed to an Update callback.
// Callbacks mutate the fields directly and Mark every collection they touch;
// only marked collections are persisted and swapped in.
type Tx struct {
	Collections

	changed map[string]bool
}

// Mark flags the given store keys as modified by this transaction.
func (tx *Tx) Mark(keys ...string) {
	for _, k := range keys {
		tx.changed[k] = true
	}
}

// Container owns the collections and the authenticated-user pointer.
// All access is serialized behind one mutex, which makes every Update
// transaction atomic with respect to the others, including multi-collection
// operations like session booking.
type Container struct {
	mu      sync.Mutex
	store   store.Store
	cols    Collections
	current *domain.User
}

// New creates an empty container backed by st. Call Load before use.
func New(st store.Store) *Container {
	return &Container{store: st}
}

// Load populates every collection from the store. Missing or corrupt
// documents come back as empty collections per the store contract.
func (c *Container) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var cols Collections
	for key, target := range collectionTargets(&cols) {
		if err := c.store.Load(ctx, key, target); err != nil {
			return fmt.Errorf("failed to load collection %s: %w", key, err)
		}
	}
	c.cols = cols
	return nil
}

// Update runs fn against a deep copy of the collections, persists every
// marked collection, and only then swaps the copy in as the live state.
// If fn returns an error, or any save fails, the in-memory state is left
// untouched.
func (c *Container) Update(ctx context.Context, fn func(tx *Tx) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx := &Tx{changed: make(map[string]bool)}
	if err := deepCopy(&tx.Collections, &c.cols); err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		return err
	}

	// Persist before swapping: a failed save must not leave memory ahead of
	// disk. If a later save fails after an earlier one landed, disk may be
	// partially updated but the in-memory view stays consistent.
	for key, target := range collectionTargets(&tx.Collections) {
		if !tx.changed[key] {
			continue
		}
		if err := c.store.Save(ctx, key, target); err != nil {
			return err
		}
	}

	c.cols = tx.Collections

	// The authenticated pointer tracks its user record across mutations.
	if c.current != nil {
		if u, ok := findUser(c.cols.Users, c.current.ID); ok {
			c.current = u
		}
	}
	return nil
}

// --- Read accessors (all return copies; callers never see live state) ---

func (c *Container) Users() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlice(c.cols.Users)
}

func (c *Container) Programs() []domain.Program {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlice(c.cols.Programs)
}

func (c *Container) Sessions() []domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlice(c.cols.Sessions)
}

func (c *Container) Groups() []domain.Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlice(c.cols.Groups)
}

func (c *Container) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlice(c.cols.Products)
}

func (c *Container) Exercises() []domain.Exercise {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlice(c.cols.Exercises)
}

func (c *Container) Workouts() []domain.WorkoutLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlice(c.cols.Workouts)
}

// UserByUsername returns a copy of the user with the exact (case-sensitive)
// username, or nil.
func (c *Container) UserByUsername(username string) *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cols.Users {
		if c.cols.Users[i].Username == username {
			return copyUser(&c.cols.Users[i])
		}
	}
	return nil
}

// UserByID returns a copy of the user with the given ID, or nil.
func (c *Container) UserByID(id string) *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	if u, ok := findUser(c.cols.Users, id); ok {
		return copyUser(u)
	}
	return nil
}

// --- Authenticated-user pointer ---

// CurrentUser returns a copy of the authenticated user, or nil when nobody
// is logged in.
func (c *Container) CurrentUser() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	return copyUser(c.current)
}

// SetCurrentUser marks the user with the given ID as authenticated.
// Returns false if no such user exists.
func (c *Container) SetCurrentUser(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := findUser(c.cols.Users, userID)
	if !ok {
		return false
	}
	c.current = u
	return true
}

// ClearCurrentUser logs the current user out.
func (c *Container) ClearCurrentUser() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// --- Helpers ---

// collectionTargets maps each persisted key to the matching field of cols.
func collectionTargets(cols *Collections) map[string]any {
	return map[string]any{
		store.KeyUsers:     &cols.Users,
		store.KeyPrograms:  &cols.Programs,
		store.KeySessions:  &cols.Sessions,
		store.KeyGroups:    &cols.Groups,
		store.KeyProducts:  &cols.Products,
		store.KeyExercises: &cols.Exercises,
		store.KeyWorkouts:  &cols.Workouts,
	}
}

func copyUser(u *domain.User) *domain.User {
	var cp domain.User
	if err := deepCopy(&cp, u); err != nil {
		panic(err)
	}
	return &cp
}

func findUser(users []domain.User, id string) (*domain.User, bool) {
	for i := range users {
		if users[i].ID == id {
			return &users[i], true
		}
	}
	return nil, false
}

// deepCopy clones src into dst through the JSON codec. The whole model is
// plain JSON-serializable data, so this is exact, and it keeps nested slices
// (metrics, participant lists, embedded exercises) fully detached.
func deepCopy(dst, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("state: failed to copy collections: %w", err)
	}
	return json.Unmarshal(raw, dst)
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	var out []T
	if err := deepCopy(&out, in); err != nil {
		// The model round-trips by construction; a failure here is a bug.
		panic(err)
	}
	return out
}

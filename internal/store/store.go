// Package store implements the persistent key-value adapter. Each collection
// is one JSON document under one fixed key in a durable local namespace.
package store

import (
	"context"
	"encoding/json"
	"reflect"
)

// Fixed keys for the persisted collections.
const (
	KeyUsers     = "studio.users"
	KeyPrograms  = "studio.programs"
	KeySessions  = "studio.sessions"
	KeyGroups    = "studio.groups"
	KeyProducts  = "studio.products"
	KeyExercises = "studio.exercises"
	KeyWorkouts  = "studio.workouts"

	// KeyMeta holds the seed marker; KeyAuth holds the CLI's persisted login
	// pointer. Neither is a collection.
	KeyMeta = "studio.meta"
	KeyAuth = "studio.auth"
)

// Error constants for the store layer
var (
	ErrEncodeFailed = StoreError("failed to encode value")
	ErrWriteFailed  = StoreError("failed to write value")
)

// StoreError helps distinguish store errors
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// Store defines the key-value contract the state container persists through.
//
// Load decodes the document stored under key into out. A missing key or a
// corrupt (non-decodable) document leaves out at its zero value and returns
// nil: corrupt data is treated as absent data, logged by the implementation,
// never surfaced as an error to the caller.
//
// Save encodes value and writes it synchronously. Unlike the load path, a
// write failure (disk full, permissions) IS returned so callers can refuse
// the mutation instead of silently losing it.
type Store interface {
	Load(ctx context.Context, key string, out any) error
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// decode unmarshals raw into out all-or-nothing. json.Unmarshal populates the
// target up to the point of a type mismatch, which would leave a half-decoded
// collection behind the corrupt-means-absent contract. Decoding into a fresh
// value and copying only on success keeps out at its zero value on any
// failure.
func decode(raw []byte, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return json.Unmarshal(raw, out)
	}
	tmp := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}

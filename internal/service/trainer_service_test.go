package service

import (
	"context"
	"testing"

	"fitstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainerService_AddProgram(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	program, err := env.trainers.AddProgram(ctx, "Hypertrophy Block", "phase one")
	require.NoError(t, err)
	assert.NotEmpty(t, program.ID)
	assert.Empty(t, program.Exercises)

	_, err = env.trainers.AddProgram(ctx, "", "no name")
	assert.ErrorIs(t, err, ErrEmptyName)

	programs, err := env.trainers.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Len(t, programs, 1)
}

func TestTrainerService_UpdateProgram(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	program, err := env.trainers.AddProgram(ctx, "Old Name", "old")
	require.NoError(t, err)

	replacement := *program
	replacement.Name = "New Name"
	replacement.ID = "ignored" // stored identity wins
	require.NoError(t, env.trainers.UpdateProgram(ctx, program.ID, replacement))

	got, err := env.trainers.GetProgramByID(ctx, program.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, program.ID, got.ID)
	assert.Equal(t, program.CreatedAt, got.CreatedAt)

	// Unknown program ID is a silent no-op.
	require.NoError(t, env.trainers.UpdateProgram(ctx, "missing", replacement))
	programs, _ := env.trainers.ListPrograms(ctx)
	assert.Len(t, programs, 1)
}

func TestTrainerService_AssignProgram(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerUser(t, "carol", domain.RoleClient)

	// Assigning a program that does not exist is allowed: dangling references
	// render as "no program" on read.
	require.NoError(t, env.trainers.AssignProgram(ctx, "carol", "dangling-id"))
	user := env.state.UserByUsername("carol")
	require.NotNil(t, user.AssignedProgramID)
	assert.Equal(t, "dangling-id", *user.AssignedProgramID)
	assert.Nil(t, env.clients.AssignedProgram(ctx, user))

	// Unknown username is a silent no-op.
	require.NoError(t, env.trainers.AssignProgram(ctx, "nobody", "whatever"))
}

func TestTrainerService_AddExerciseToProgram(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	program, err := env.trainers.AddProgram(ctx, "Push Day", "")
	require.NoError(t, err)
	bench, err := env.library.CreateExercise(ctx, "Bench Press", "Chest", "Barbell")
	require.NoError(t, err)

	require.NoError(t, env.trainers.AddExerciseToProgram(ctx, program.ID, bench.ID))

	got, err := env.trainers.GetProgramByID(ctx, program.ID)
	require.NoError(t, err)
	require.Len(t, got.Exercises, 1)

	embedded := got.Exercises[0]
	assert.Equal(t, "Bench Press", embedded.Name)
	assert.Equal(t, "Chest", embedded.MuscleGroup)
	assert.Equal(t, domain.DefaultSets, embedded.Sets)
	assert.Equal(t, domain.DefaultReps, embedded.Reps)
	assert.Equal(t, float64(domain.DefaultWeight), embedded.Weight)
	assert.Equal(t, domain.DefaultRestSeconds, embedded.RestSeconds)
	assert.NotEqual(t, bench.ID, embedded.ID, "embedded exercise gets its own identity")

	// Unresolved IDs are silent no-ops.
	require.NoError(t, env.trainers.AddExerciseToProgram(ctx, program.ID, "missing"))
	require.NoError(t, env.trainers.AddExerciseToProgram(ctx, "missing", bench.ID))
	got, _ = env.trainers.GetProgramByID(ctx, program.ID)
	assert.Len(t, got.Exercises, 1)
}

func TestTrainerService_RemoveExerciseFromProgram(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	program, _ := env.trainers.AddProgram(ctx, "Legs", "")
	squat, _ := env.library.CreateExercise(ctx, "Squat", "Legs", "Barbell")
	require.NoError(t, env.trainers.AddExerciseToProgram(ctx, program.ID, squat.ID))

	got, _ := env.trainers.GetProgramByID(ctx, program.ID)
	embeddedID := got.Exercises[0].ID

	require.NoError(t, env.trainers.RemoveExerciseFromProgram(ctx, program.ID, embeddedID))
	got, _ = env.trainers.GetProgramByID(ctx, program.ID)
	assert.Empty(t, got.Exercises)

	// Removing again is a no-op.
	require.NoError(t, env.trainers.RemoveExerciseFromProgram(ctx, program.ID, embeddedID))
}

func TestTrainerService_UpdateExerciseInProgram(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	program, _ := env.trainers.AddProgram(ctx, "Pull Day", "")
	row, _ := env.library.CreateExercise(ctx, "Barbell Row", "Back", "Barbell")
	require.NoError(t, env.trainers.AddExerciseToProgram(ctx, program.ID, row.ID))
	got, _ := env.trainers.GetProgramByID(ctx, program.ID)
	embeddedID := got.Exercises[0].ID

	require.NoError(t, env.trainers.UpdateExerciseInProgram(ctx, program.ID, embeddedID, "sets", "5"))
	require.NoError(t, env.trainers.UpdateExerciseInProgram(ctx, program.ID, embeddedID, "weight", "62.5"))
	require.NoError(t, env.trainers.UpdateExerciseInProgram(ctx, program.ID, embeddedID, "notes", "pause at chest"))
	require.NoError(t, env.trainers.UpdateExerciseInProgram(ctx, program.ID, embeddedID, "completed", "true"))

	got, _ = env.trainers.GetProgramByID(ctx, program.ID)
	embedded := got.Exercises[0]
	assert.Equal(t, 5, embedded.Sets)
	assert.Equal(t, 62.5, embedded.Weight)
	assert.Equal(t, "pause at chest", embedded.Notes)
	assert.True(t, embedded.Completed)

	// Unparsable numeric value is a validation error, not a silent patch.
	err := env.trainers.UpdateExerciseInProgram(ctx, program.ID, embeddedID, "reps", "lots")
	assert.ErrorIs(t, err, ErrValidationFailed)

	// Unknown field name is a no-op patch.
	require.NoError(t, env.trainers.UpdateExerciseInProgram(ctx, program.ID, embeddedID, "tempo", "3-1-1"))

	// Unknown IDs are silent no-ops.
	require.NoError(t, env.trainers.UpdateExerciseInProgram(ctx, "missing", embeddedID, "sets", "2"))
	require.NoError(t, env.trainers.UpdateExerciseInProgram(ctx, program.ID, "missing", "sets", "2"))
}

func TestTrainerService_CreateSessionCapacityParsing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	session, err := env.trainers.CreateSession(ctx, "Morning Yoga", "2026-09-14", "08:00", "12", "mats provided")
	require.NoError(t, err)
	assert.Equal(t, 12, session.Capacity)
	assert.Empty(t, session.ParticipantIDs)

	for _, bad := range []string{"lots", "", "-3", "2.5"} {
		_, err := env.trainers.CreateSession(ctx, "Broken", "", "", bad, "")
		assert.ErrorIs(t, err, ErrInvalidCapacity, "capacity %q", bad)
	}

	_, err = env.trainers.CreateSession(ctx, "", "", "", "5", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestTrainerService_CreateGroupAndProduct(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	group, err := env.trainers.CreateGroup(ctx, "Running Club", "2026-09-20", "07:00", "0", "")
	require.NoError(t, err)
	assert.Equal(t, 0, group.Capacity)

	product, err := env.trainers.CreateProduct(ctx, "Shaker Bottle", 9.90, "700ml")
	require.NoError(t, err)
	assert.Equal(t, 9.90, product.Price)

	_, err = env.trainers.CreateProduct(ctx, "Freebie", -1, "")
	assert.ErrorIs(t, err, ErrNegativePrice)

	free, err := env.trainers.CreateProduct(ctx, "Sticker", 0, "")
	require.NoError(t, err)
	assert.Equal(t, float64(0), free.Price)
}

package service

import (
	"context"
	"errors"
	"time"

	"fitstudio/internal/domain"
	"fitstudio/internal/state"
	"fitstudio/internal/store"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("validation failed")
)

// --- Service Interface ---
type ExerciseService interface {
	CreateExercise(ctx context.Context, name, muscleGroup, equipment string) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID string) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	state *state.Container
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(st *state.Container) ExerciseService {
	return &exerciseService{state: st}
}

// CreateExercise adds a new entry to the exercise library.
func (s *exerciseService) CreateExercise(ctx context.Context, name, muscleGroup, equipment string) (*domain.Exercise, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	now := time.Now().UTC()
	exercise := domain.Exercise{
		ID:          uuid.New().String(),
		Name:        name,
		MuscleGroup: muscleGroup,
		Equipment:   equipment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.state.Update(ctx, func(tx *state.Tx) error {
		tx.Exercises = append(tx.Exercises, exercise)
		tx.Mark(store.KeyExercises)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// GetExerciseByID retrieves a single library entry.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	for _, ex := range s.state.Exercises() {
		if ex.ID == exerciseID {
			return &ex, nil
		}
	}
	return nil, ErrExerciseNotFound
}

// ListExercises returns the whole library in insertion order.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.state.Exercises(), nil
}

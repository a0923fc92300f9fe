package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"fitstudio/internal/domain"
	"fitstudio/internal/state"
	"fitstudio/internal/store"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must be a non-negative integer")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

// --- Service Interface ---
//
// Operations on unknown program/user/exercise IDs are deliberately silent
// no-ops (nil error, nothing changed): the UI may dispatch against stale
// state, and resilience there beats strictness. Validation failures on the
// caller's own input are real errors.
type TrainerService interface {
	// Program management
	AddProgram(ctx context.Context, name, description string) (*domain.Program, error)
	UpdateProgram(ctx context.Context, programID string, updated domain.Program) error
	AssignProgram(ctx context.Context, username, programID string) error
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	GetProgramByID(ctx context.Context, programID string) (*domain.Program, error)

	// Embedded program-exercise management
	AddExerciseToProgram(ctx context.Context, programID, exerciseID string) error
	RemoveExerciseFromProgram(ctx context.Context, programID, exerciseID string) error
	UpdateExerciseInProgram(ctx context.Context, programID, exerciseID, field, value string) error

	// Schedule and store management
	CreateSession(ctx context.Context, title, date, timeOfDay, capacity, description string) (*domain.Session, error)
	CreateGroup(ctx context.Context, title, date, timeOfDay, capacity, description string) (*domain.Group, error)
	CreateProduct(ctx context.Context, name string, price float64, description string) (*domain.Product, error)
}

// --- Service Implementation ---

// trainerService implements the TrainerService interface.
type trainerService struct {
	state *state.Container
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(st *state.Container) TrainerService {
	return &trainerService{state: st}
}

// === Program Management ===

// AddProgram creates a program with an empty exercise list.
func (s *trainerService) AddProgram(ctx context.Context, name, description string) (*domain.Program, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now().UTC()
	program := domain.Program{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Exercises:   []domain.ProgramExercise{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.state.Update(ctx, func(tx *state.Tx) error {
		tx.Programs = append(tx.Programs, program)
		tx.Mark(store.KeyPrograms)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// UpdateProgram replaces the program record matching programID wholesale.
// Unknown ID is a silent no-op. The ID and CreatedAt of the stored record
// are preserved regardless of what the replacement carries.
func (s *trainerService) UpdateProgram(ctx context.Context, programID string, updated domain.Program) error {
	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Programs {
			if tx.Programs[i].ID != programID {
				continue
			}
			updated.ID = programID
			updated.CreatedAt = tx.Programs[i].CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			tx.Programs[i] = updated
			tx.Mark(store.KeyPrograms)
			return nil
		}
		return nil // Unknown program: no-op
	})
}

// AssignProgram sets the user's assigned program. Unknown username is a
// silent no-op. The program ID is intentionally NOT validated: a dangling
// assignment renders as "no program" on read.
func (s *trainerService) AssignProgram(ctx context.Context, username, programID string) error {
	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Users {
			if tx.Users[i].Username != username {
				continue
			}
			tx.Users[i].AssignedProgramID = &programID
			tx.Users[i].UpdatedAt = time.Now().UTC()
			tx.Mark(store.KeyUsers)
			return nil
		}
		return nil // Unknown user: no-op
	})
}

// ListPrograms returns all programs in insertion order.
func (s *trainerService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.state.Programs(), nil
}

// GetProgramByID retrieves one program, or nil when the ID is unknown.
func (s *trainerService) GetProgramByID(ctx context.Context, programID string) (*domain.Program, error) {
	for _, p := range s.state.Programs() {
		if p.ID == programID {
			return &p, nil
		}
	}
	return nil, nil
}

// === Embedded Program-Exercise Management ===

// AddExerciseToProgram clones the library exercise's name and muscle group
// into a new embedded exercise with the standard prescription defaults
// (3 sets, 10 reps, 0 weight, 60s rest). Unknown program or library ID is a
// silent no-op.
func (s *trainerService) AddExerciseToProgram(ctx context.Context, programID, exerciseID string) error {
	return s.state.Update(ctx, func(tx *state.Tx) error {
		var library *domain.Exercise
		for i := range tx.Exercises {
			if tx.Exercises[i].ID == exerciseID {
				library = &tx.Exercises[i]
				break
			}
		}
		if library == nil {
			return nil
		}

		for i := range tx.Programs {
			if tx.Programs[i].ID != programID {
				continue
			}
			tx.Programs[i].Exercises = append(tx.Programs[i].Exercises, domain.ProgramExercise{
				ID:          uuid.New().String(),
				Name:        library.Name,
				MuscleGroup: library.MuscleGroup,
				Sets:        domain.DefaultSets,
				Reps:        domain.DefaultReps,
				Weight:      domain.DefaultWeight,
				RestSeconds: domain.DefaultRestSeconds,
			})
			tx.Programs[i].UpdatedAt = time.Now().UTC()
			tx.Mark(store.KeyPrograms)
			return nil
		}
		return nil
	})
}

// RemoveExerciseFromProgram filters the embedded exercise out of the program.
// Unknown IDs are silent no-ops.
func (s *trainerService) RemoveExerciseFromProgram(ctx context.Context, programID, exerciseID string) error {
	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Programs {
			if tx.Programs[i].ID != programID {
				continue
			}
			idx := tx.Programs[i].ExerciseByID(exerciseID)
			if idx < 0 {
				return nil
			}
			tx.Programs[i].Exercises = append(tx.Programs[i].Exercises[:idx], tx.Programs[i].Exercises[idx+1:]...)
			tx.Programs[i].UpdatedAt = time.Now().UTC()
			tx.Mark(store.KeyPrograms)
			return nil
		}
		return nil
	})
}

// UpdateExerciseInProgram patches one field of an embedded exercise.
// Recognized fields: name, sets, reps, weight, rest, notes, completed.
// Unknown IDs and unknown field names are silent no-ops; an unparsable value
// for a numeric field is a validation error.
func (s *trainerService) UpdateExerciseInProgram(ctx context.Context, programID, exerciseID, field, value string) error {
	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Programs {
			if tx.Programs[i].ID != programID {
				continue
			}
			idx := tx.Programs[i].ExerciseByID(exerciseID)
			if idx < 0 {
				return nil
			}
			ex := &tx.Programs[i].Exercises[idx]
			if err := patchProgramExercise(ex, field, value); err != nil {
				return err
			}
			tx.Programs[i].UpdatedAt = time.Now().UTC()
			tx.Mark(store.KeyPrograms)
			return nil
		}
		return nil
	})
}

func patchProgramExercise(ex *domain.ProgramExercise, field, value string) error {
	switch strings.ToLower(field) {
	case "name":
		ex.Name = value
	case "notes":
		ex.Notes = value
	case "sets":
		n, err := strconv.Atoi(value)
		if err != nil {
			return ErrValidationFailed
		}
		ex.Sets = n
	case "reps":
		n, err := strconv.Atoi(value)
		if err != nil {
			return ErrValidationFailed
		}
		ex.Reps = n
	case "weight":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return ErrValidationFailed
		}
		ex.Weight = w
	case "rest":
		n, err := strconv.Atoi(value)
		if err != nil {
			return ErrValidationFailed
		}
		ex.RestSeconds = n
	case "completed":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return ErrValidationFailed
		}
		ex.Completed = b
	default:
		// Unknown field: no-op patch
	}
	return nil
}

// === Schedule and Store Management ===

// CreateSession appends a session with an empty participant list. Capacity
// arrives as free-form input; anything that does not parse to a non-negative
// integer is rejected up front instead of poisoning later comparisons.
func (s *trainerService) CreateSession(ctx context.Context, title, date, timeOfDay, capacity, description string) (*domain.Session, error) {
	if title == "" {
		return nil, ErrEmptyName
	}
	seats, err := parseCapacity(capacity)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:             uuid.New().String(),
		Title:          title,
		Date:           date,
		Time:           timeOfDay,
		Capacity:       seats,
		Description:    description,
		ParticipantIDs: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.state.Update(ctx, func(tx *state.Tx) error {
		tx.Sessions = append(tx.Sessions, session)
		tx.Mark(store.KeySessions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateGroup appends a group with an empty member list.
func (s *trainerService) CreateGroup(ctx context.Context, title, date, timeOfDay, capacity, description string) (*domain.Group, error) {
	if title == "" {
		return nil, ErrEmptyName
	}
	seats, err := parseCapacity(capacity)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	group := domain.Group{
		ID:          uuid.New().String(),
		Title:       title,
		Date:        date,
		Time:        timeOfDay,
		Capacity:    seats,
		Description: description,
		MemberIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.state.Update(ctx, func(tx *state.Tx) error {
		tx.Groups = append(tx.Groups, group)
		tx.Mark(store.KeyGroups)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// CreateProduct appends a store product.
func (s *trainerService) CreateProduct(ctx context.Context, name string, price float64, description string) (*domain.Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Price:       price,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.state.Update(ctx, func(tx *state.Tx) error {
		tx.Products = append(tx.Products, product)
		tx.Mark(store.KeyProducts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func parseCapacity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, ErrInvalidCapacity
	}
	return n, nil
}

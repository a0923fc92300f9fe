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
	ErrSessionFull   = errors.New("session is fully booked")
	ErrGroupFull     = errors.New("group is fully booked")
	ErrMissingWeight = errors.New("weight is required for a metric entry")
)

// --- Service Interface ---
type ClientService interface {
	// Enrollment and purchases (all act on the authenticated user)
	BookSession(ctx context.Context, sessionID string) error
	JoinGroup(ctx context.Context, groupID string) error
	PurchaseProduct(ctx context.Context, productID string) error

	// Metrics and profile
	AddMetric(ctx context.Context, userID string, entry domain.MetricEntry) error
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// Workout tracking
	CompleteWorkout(ctx context.Context, programID string, results []domain.ExerciseResult, notes string) (*domain.WorkoutLog, error)
	WorkoutHistory(ctx context.Context, userID string) ([]domain.WorkoutLog, error)

	// Reads for the client views
	ListSessions(ctx context.Context) ([]domain.Session, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	AssignedProgram(ctx context.Context, user *domain.User) *domain.Program
}

// --- Service Implementation ---

// clientService implements the ClientService interface.
type clientService struct {
	state *state.Container
}

// NewClientService creates a new instance of clientService.
func NewClientService(st *state.Container) ClientService {
	return &clientService{state: st}
}

// === Enrollment ===

// BookSession adds the authenticated user to the session's participant list
// and the session to the user's joined list, in one transaction. Booking is
// idempotent: a repeat booking changes nothing and is not an error. At
// capacity the booking is refused and both collections stay untouched.
// Unknown session IDs are silent no-ops.
func (s *clientService) BookSession(ctx context.Context, sessionID string) error {
	current := s.state.CurrentUser()
	if current == nil {
		return ErrNotAuthenticated
	}

	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Sessions {
			if tx.Sessions[i].ID != sessionID {
				continue
			}
			if tx.Sessions[i].HasParticipant(current.ID) {
				return nil // Already booked: no-op
			}
			if tx.Sessions[i].IsFull() {
				return ErrSessionFull
			}

			tx.Sessions[i].ParticipantIDs = append(tx.Sessions[i].ParticipantIDs, current.ID)
			tx.Sessions[i].UpdatedAt = time.Now().UTC()
			appendUserRef(tx, current.ID, func(u *domain.User) {
				u.JoinedSessionIDs = append(u.JoinedSessionIDs, sessionID)
			})
			tx.Mark(store.KeySessions, store.KeyUsers)
			return nil
		}
		return nil // Unknown session: no-op
	})
}

// JoinGroup is the group-side twin of BookSession.
func (s *clientService) JoinGroup(ctx context.Context, groupID string) error {
	current := s.state.CurrentUser()
	if current == nil {
		return ErrNotAuthenticated
	}

	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Groups {
			if tx.Groups[i].ID != groupID {
				continue
			}
			if tx.Groups[i].HasMember(current.ID) {
				return nil
			}
			if tx.Groups[i].IsFull() {
				return ErrGroupFull
			}

			tx.Groups[i].MemberIDs = append(tx.Groups[i].MemberIDs, current.ID)
			tx.Groups[i].UpdatedAt = time.Now().UTC()
			appendUserRef(tx, current.ID, func(u *domain.User) {
				u.JoinedGroupIDs = append(u.JoinedGroupIDs, groupID)
			})
			tx.Mark(store.KeyGroups, store.KeyUsers)
			return nil
		}
		return nil
	})
}

// PurchaseProduct appends the product to the authenticated user's purchased
// list. A repeat purchase is a no-op; there is no stock gate. Unknown product
// IDs are silent no-ops.
func (s *clientService) PurchaseProduct(ctx context.Context, productID string) error {
	current := s.state.CurrentUser()
	if current == nil {
		return ErrNotAuthenticated
	}

	return s.state.Update(ctx, func(tx *state.Tx) error {
		exists := false
		for i := range tx.Products {
			if tx.Products[i].ID == productID {
				exists = true
				break
			}
		}
		if !exists {
			return nil
		}

		for i := range tx.Users {
			if tx.Users[i].ID != current.ID {
				continue
			}
			if tx.Users[i].HasPurchased(productID) {
				return nil // Already purchased: no-op
			}
			tx.Users[i].PurchasedProductIDs = append(tx.Users[i].PurchasedProductIDs, productID)
			tx.Users[i].UpdatedAt = time.Now().UTC()
			tx.Mark(store.KeyUsers)
			return nil
		}
		return nil
	})
}

// === Metrics and Profile ===

// AddMetric appends a measurement snapshot to the user's history. Weight is
// required; the remaining measurements default to 0. History is append-only
// and no range validation is applied. Unknown user IDs are silent no-ops.
func (s *clientService) AddMetric(ctx context.Context, userID string, entry domain.MetricEntry) error {
	if entry.Weight == 0 {
		return ErrMissingWeight
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Users {
			if tx.Users[i].ID != userID {
				continue
			}
			tx.Users[i].Metrics = append(tx.Users[i].Metrics, entry)
			tx.Users[i].UpdatedAt = time.Now().UTC()
			tx.Mark(store.KeyUsers)
			return nil
		}
		return nil // Unknown user: no-op
	})
}

// SaveProfile shallow-merges the given profile fields into the authenticated
// user's record. Zero-valued fields are left as they are, mirroring a form
// that only submits what was filled in.
func (s *clientService) SaveProfile(ctx context.Context, profile domain.Profile) error {
	current := s.state.CurrentUser()
	if current == nil {
		return ErrNotAuthenticated
	}

	return s.state.Update(ctx, func(tx *state.Tx) error {
		for i := range tx.Users {
			if tx.Users[i].ID != current.ID {
				continue
			}
			mergeProfile(&tx.Users[i].Profile, profile)
			tx.Users[i].UpdatedAt = time.Now().UTC()
			tx.Mark(store.KeyUsers)
			return nil
		}
		return nil
	})
}

func mergeProfile(dst *domain.Profile, src domain.Profile) {
	if src.FullName != "" {
		dst.FullName = src.FullName
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.WaterGoalLiters != 0 {
		dst.WaterGoalLiters = src.WaterGoalLiters
	}
	if src.Goals.Weight != 0 {
		dst.Goals.Weight = src.Goals.Weight
	}
	if src.Goals.BodyFat != 0 {
		dst.Goals.BodyFat = src.Goals.BodyFat
	}
	if src.Goals.Chest != 0 {
		dst.Goals.Chest = src.Goals.Chest
	}
	if src.Goals.Waist != 0 {
		dst.Goals.Waist = src.Goals.Waist
	}
}

// === Workout Tracking ===

// CompleteWorkout appends a workout log stamped with the authenticated user
// and the current time, and records the log's ID on the user, atomically.
// Completing without a login is an explicit error, never a fault.
func (s *clientService) CompleteWorkout(ctx context.Context, programID string, results []domain.ExerciseResult, notes string) (*domain.WorkoutLog, error) {
	current := s.state.CurrentUser()
	if current == nil {
		return nil, ErrNotAuthenticated
	}

	entry := domain.WorkoutLog{
		ID:          uuid.New().String(),
		UserID:      current.ID,
		ProgramID:   programID,
		PerformedAt: time.Now().UTC(),
		Results:     results,
		Notes:       notes,
	}

	err := s.state.Update(ctx, func(tx *state.Tx) error {
		tx.Workouts = append(tx.Workouts, entry)
		appendUserRef(tx, current.ID, func(u *domain.User) {
			u.CompletedWorkoutIDs = append(u.CompletedWorkoutIDs, entry.ID)
		})
		tx.Mark(store.KeyWorkouts, store.KeyUsers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// WorkoutHistory returns the user's workout logs in insertion order.
func (s *clientService) WorkoutHistory(ctx context.Context, userID string) ([]domain.WorkoutLog, error) {
	var history []domain.WorkoutLog
	for _, w := range s.state.Workouts() {
		if w.UserID == userID {
			history = append(history, w)
		}
	}
	return history, nil
}

// === Reads ===

func (s *clientService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	return s.state.Sessions(), nil
}

func (s *clientService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return s.state.Groups(), nil
}

func (s *clientService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.state.Products(), nil
}

// AssignedProgram resolves the user's assigned program. A nil result means
// "no program", including when the assignment dangles.
func (s *clientService) AssignedProgram(ctx context.Context, user *domain.User) *domain.Program {
	if user == nil || user.AssignedProgramID == nil {
		return nil
	}
	for _, p := range s.state.Programs() {
		if p.ID == *user.AssignedProgramID {
			return &p
		}
	}
	return nil
}

// appendUserRef applies mutate to the user with the given ID inside tx.
func appendUserRef(tx *state.Tx, userID string, mutate func(u *domain.User)) {
	for i := range tx.Users {
		if tx.Users[i].ID == userID {
			mutate(&tx.Users[i])
			tx.Users[i].UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// Package seed populates a brand-new store with the default accounts,
// program, and exercise library.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"fitstudio/internal/domain"
	"fitstudio/internal/service"
	"fitstudio/internal/state"
	"fitstudio/internal/store"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:embed defaults.toml
var defaultsTOML string

// meta is the persisted first-run marker. Seeding is gated on this document,
// not on "collection currently empty": a trainer who deletes every program
// must not find the default program resurrected on the next start.
type meta struct {
	Initialized bool      `json:"initialized"`
	SeededAt    time.Time `json:"seededAt"`
}

// Fixture shapes for the embedded TOML document.

type fixture struct {
	Users     []userFixture     `toml:"user"`
	Program   programFixture    `toml:"program"`
	Exercises []exerciseFixture `toml:"exercise"`
}

type userFixture struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	Role     string `toml:"role"`
	FullName string `toml:"full_name"`
	Email    string `toml:"email"`
}

type programFixture struct {
	Name        string                   `toml:"name"`
	Description string                   `toml:"description"`
	Difficulty  string                   `toml:"difficulty"`
	Duration    string                   `toml:"duration"`
	Exercises   []programExerciseFixture `toml:"exercise"`
}

type programExerciseFixture struct {
	Name        string  `toml:"name"`
	MuscleGroup string  `toml:"muscle_group"`
	Sets        int     `toml:"sets"`
	Reps        int     `toml:"reps"`
	Weight      float64 `toml:"weight"`
	RestSeconds int     `toml:"rest_seconds"`
}

type exerciseFixture struct {
	Name        string `toml:"name"`
	MuscleGroup string `toml:"muscle_group"`
	Equipment   string `toml:"equipment"`
}

// Seeder runs the first-run initialization.
type Seeder struct {
	store      store.Store
	state      *state.Container
	iterations int
	log        *logrus.Logger
}

// New creates a Seeder. iterations is the credential hash cost applied to the
// seeded accounts; a nil logger falls back to the standard logrus logger.
func New(st store.Store, container *state.Container, iterations int, log *logrus.Logger) *Seeder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Seeder{store: st, state: container, iterations: iterations, log: log}
}

// Run seeds the defaults exactly once per store lifetime. On every later
// call it returns immediately.
func (s *Seeder) Run(ctx context.Context) error {
	var marker meta
	if err := s.store.Load(ctx, store.KeyMeta, &marker); err != nil {
		return err
	}
	if marker.Initialized {
		return nil
	}

	// A data directory can carry collections without the marker (hand-copied
	// data, or data written before the marker existed). Seeding on top of it
	// would duplicate accounts; backfill the marker instead.
	var existing []domain.User
	if err := s.store.Load(ctx, store.KeyUsers, &existing); err != nil {
		return err
	}
	if len(existing) > 0 {
		return s.store.Save(ctx, store.KeyMeta, meta{Initialized: true, SeededAt: time.Now().UTC()})
	}

	var fx fixture
	if _, err := toml.Decode(defaultsTOML, &fx); err != nil {
		return fmt.Errorf("seed: invalid defaults fixture: %w", err)
	}

	err := s.state.Update(ctx, func(tx *state.Tx) error {
		now := time.Now().UTC()

		for _, uf := range fx.Users {
			cred, err := service.HashCredential(uf.Password, s.iterations)
			if err != nil {
				return err
			}
			tx.Users = append(tx.Users, domain.User{
				ID:         uuid.New().String(),
				Username:   uf.Username,
				Credential: cred,
				Role:       domain.Role(uf.Role),
				Profile: domain.Profile{
					FullName: uf.FullName,
					Email:    uf.Email,
				},
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		program := domain.Program{
			ID:          uuid.New().String(),
			Name:        fx.Program.Name,
			Description: fx.Program.Description,
			Difficulty:  fx.Program.Difficulty,
			Duration:    fx.Program.Duration,
			Exercises:   []domain.ProgramExercise{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		for _, ef := range fx.Program.Exercises {
			program.Exercises = append(program.Exercises, domain.ProgramExercise{
				ID:          uuid.New().String(),
				Name:        ef.Name,
				MuscleGroup: ef.MuscleGroup,
				Sets:        ef.Sets,
				Reps:        ef.Reps,
				Weight:      ef.Weight,
				RestSeconds: ef.RestSeconds,
			})
		}
		tx.Programs = append(tx.Programs, program)

		for _, ef := range fx.Exercises {
			tx.Exercises = append(tx.Exercises, domain.Exercise{
				ID:          uuid.New().String(),
				Name:        ef.Name,
				MuscleGroup: ef.MuscleGroup,
				Equipment:   ef.Equipment,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}

		// Sessions, groups, products, and the workout log start empty; writing
		// them out makes the first-run layout explicit on disk.
		tx.Sessions = []domain.Session{}
		tx.Groups = []domain.Group{}
		tx.Products = []domain.Product{}
		tx.Workouts = []domain.WorkoutLog{}
		tx.Mark(store.KeyUsers, store.KeyPrograms, store.KeyExercises,
			store.KeySessions, store.KeyGroups, store.KeyProducts, store.KeyWorkouts)
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.store.Save(ctx, store.KeyMeta, meta{Initialized: true, SeededAt: time.Now().UTC()}); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"users":     len(fx.Users),
		"exercises": len(fx.Exercises),
	}).Info("seed: first-run defaults written")
	return nil
}

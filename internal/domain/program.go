// internal/domain/program.go
package domain

import (
	"time"
)

// Defaults applied when a library exercise is cloned into a program.
const (
	DefaultSets        = 3
	DefaultReps        = 10
	DefaultWeight      = 0
	DefaultRestSeconds = 60
)

// ProgramExercise is an exercise embedded in a Program. It is a copy of a
// library Exercise's name and muscle group plus the program-specific
// prescription; editing it never touches the library entry.
type ProgramExercise struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscleGroup,omitempty"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	RestSeconds int     `json:"restSeconds"`
	Notes       string  `json:"notes,omitempty"`
	Completed   bool    `json:"completed"`
}

// Program represents a structured workout program built by a trainer.
type Program struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"` // e.g., "Phase 1: Hypertrophy"
	Description string            `json:"description,omitempty"`
	Difficulty  string            `json:"difficulty,omitempty"` // e.g., "Beginner", "Advanced"
	Duration    string            `json:"duration,omitempty"`   // e.g., "4 weeks"
	Exercises   []ProgramExercise `json:"exercises"`            // Ordered
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ExerciseByID returns the index of the embedded exercise, or -1.
func (p *Program) ExerciseByID(exerciseID string) int {
	for i := range p.Exercises {
		if p.Exercises[i].ID == exerciseID {
			return i
		}
	}
	return -1
}

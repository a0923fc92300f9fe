// internal/domain/exercise.go
package domain

import (
	"time"
)

// Exercise represents a single exercise definition in the library.
// Library entries are independent of any Program; adding one to a program
// clones its name and muscle group into an embedded ProgramExercise.
type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup,omitempty"` // e.g., "Chest", "Legs", "Back"
	Equipment   string    `json:"equipment,omitempty"`   // e.g., "Barbell", "Bodyweight"
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

package domain

import (
	"time"
)

// SetResult records one completed set.
type SetResult struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// ExerciseResult records the completed sets for one exercise of a workout.
type ExerciseResult struct {
	ExerciseID string      `json:"exerciseId,omitempty"` // Embedded program-exercise ID, if known
	Name       string      `json:"name"`
	Sets       []SetResult `json:"sets"`
}

// WorkoutLog represents one finished workout. Logs are only written when a
// workout is completed; an abandoned workout-in-progress is never persisted.
type WorkoutLog struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	ProgramID   string           `json:"programId"`
	PerformedAt time.Time        `json:"performedAt"`
	Results     []ExerciseResult `json:"results"`
	Notes       string           `json:"notes,omitempty"`
}

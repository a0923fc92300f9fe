package domain

import (
	"time"
)

// Session represents a scheduled class with a fixed capacity.
// Membership in ParticipantIDs implies "booked".
type Session struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"` // e.g., "2026-09-14"
	Time           string    `json:"time"` // e.g., "18:30"
	Capacity       int       `json:"capacity"`
	Description    string    `json:"description,omitempty"`
	ParticipantIDs []string  `json:"participantIds,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// IsFull reports whether the session has reached capacity.
func (s *Session) IsFull() bool {
	return len(s.ParticipantIDs) >= s.Capacity
}

// HasParticipant reports whether the user already booked this session.
func (s *Session) HasParticipant(userID string) bool {
	return containsID(s.ParticipantIDs, userID)
}

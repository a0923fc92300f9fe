package domain

import (
	"time"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// Credential is the salted password digest stored at rest.
// Every account, seeded or registered, uses the same scheme; there is no
// plaintext fallback and no format sniffing on login.
type Credential struct {
	Salt       string `json:"salt"`       // hex-encoded random salt
	Digest     string `json:"digest"`     // 64-character hex PBKDF2-SHA256 digest
	Iterations int    `json:"iterations"` // PBKDF2 iteration count used for this digest
}

// Goals holds the per-metric numeric targets a user is working towards.
type Goals struct {
	Weight  float64 `json:"weight,omitempty"`
	BodyFat float64 `json:"bodyFat,omitempty"`
	Chest   float64 `json:"chest,omitempty"`
	Waist   float64 `json:"waist,omitempty"`
}

// Profile holds the editable, non-credential user fields.
type Profile struct {
	FullName        string  `json:"fullName,omitempty"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	Goals           Goals   `json:"goals"`
	WaterGoalLiters float64 `json:"waterGoalLiters,omitempty"` // daily water-intake target
}

// MetricEntry is one body-measurement snapshot. Entries are append-only:
// once recorded they are never mutated or deleted.
type MetricEntry struct {
	Date    time.Time `json:"date"`
	Weight  float64   `json:"weight"`
	BodyFat float64   `json:"bodyFat"`
	Chest   float64   `json:"chest"`
	Waist   float64   `json:"waist"`
}

// User represents a user in the system (either a Trainer or a Client).
type User struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"` // Unique, case-sensitive, immutable after registration
	Credential Credential `json:"credential"`
	Role       Role       `json:"role"`
	Profile    Profile    `json:"profile"`

	// AssignedProgramID references a Program. It may dangle (the program was
	// removed after assignment); readers render that as "no program" rather
	// than failing.
	AssignedProgramID *string `json:"assignedProgramId,omitempty"`

	JoinedSessionIDs    []string `json:"joinedSessionIds,omitempty"`
	JoinedGroupIDs      []string `json:"joinedGroupIds,omitempty"`
	PurchasedProductIDs []string `json:"purchasedProductIds,omitempty"`
	CompletedWorkoutIDs []string `json:"completedWorkoutIds,omitempty"`

	Metrics []MetricEntry `json:"metrics,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Helper methods
func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// LatestMetric returns the most recently appended metric entry, or nil if
// the user has no metric history yet. Entries are kept in insertion order.
func (u *User) LatestMetric() *MetricEntry {
	if len(u.Metrics) == 0 {
		return nil
	}
	return &u.Metrics[len(u.Metrics)-1]
}

// HasJoinedSession reports whether the user already booked the session.
func (u *User) HasJoinedSession(sessionID string) bool {
	return containsID(u.JoinedSessionIDs, sessionID)
}

// HasJoinedGroup reports whether the user is already a member of the group.
func (u *User) HasJoinedGroup(groupID string) bool {
	return containsID(u.JoinedGroupIDs, groupID)
}

// HasPurchased reports whether the user already bought the product.
func (u *User) HasPurchased(productID string) bool {
	return containsID(u.PurchasedProductIDs, productID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

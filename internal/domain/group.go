package domain

import (
	"time"
)

// Group represents a standing training group. Same shape as a Session but
// with members instead of participants and no single scheduled occurrence
// semantics attached to the date.
type Group struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	MemberIDs   []string  `json:"memberIds,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsFull reports whether the group has reached capacity.
func (g *Group) IsFull() bool {
	return len(g.MemberIDs) >= g.Capacity
}

// HasMember reports whether the user already joined this group.
func (g *Group) HasMember(userID string) bool {
	return containsID(g.MemberIDs, userID)
}

package entities

import "time"

// UserFollow represents a directed follow edge (follow_from -> follow_to).
// The pair is the primary key, so at most one edge exists per direction.
type UserFollow struct {
	FollowFrom int64     `json:"follow_from"`
	FollowTo   int64     `json:"follow_to"`
	CreatedAt  time.Time `json:"created_at"`
}

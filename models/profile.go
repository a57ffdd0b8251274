package models

import "time"

// Profile holds optional public details of a user. Each user has at most one profile.
type Profile struct {
	ID        string
	UserID    string
	Bio       *string
	City      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileStatus is a short status line attached to a profile.
// A non-nil ClearInterval (seconds) makes the status expire that long after its last update.
type ProfileStatus struct {
	ID            string
	ProfileID     string
	Content       *string
	Emoji         *string
	ClearInterval *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileFields is the mutable part of a profile.
type ProfileFields struct {
	Bio  *string
	City *string
}

// ProfileStatusFields is the mutable part of a profile status.
type ProfileStatusFields struct {
	Content       *string
	Emoji         *string
	ClearInterval *int
}

package models

import "time"

// Post is a short article owned by its author.
type Post struct {
	ID        string
	Title     string
	Content   *string
	Published bool
	AuthorID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostUpdate carries a partial update of a post. Nil fields are left untouched.
type PostUpdate struct {
	Title     *string
	Content   *string
	Published *bool
}

// IsEmpty reports whether the update changes nothing.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Published == nil
}

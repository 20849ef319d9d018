package domain

import "errors"

var ErrPostNotFound = errors.New("post not found")

// Post is an article record owned by a user via UserID. The reference is
// relational only: it is not validated at write time and deleting the user
// leaves the post in place.
type Post struct {
	ID      int64  `db:"id"`
	Title   string `db:"title"`
	Content string `db:"content"`
	UserID  int64  `db:"user_id"`
}

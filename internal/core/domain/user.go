package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidInput = errors.New("invalid input")

// User is a managed account record. Password holds a bcrypt hash, never the
// plaintext value, and is set once at creation; the edit flow only touches
// username and email.
type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

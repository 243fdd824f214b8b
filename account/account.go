// Package account models a minimal user record.
package account

// User is an account holder.
type User struct {
	ID     int
	Email  string
	Active bool
}

// New returns an active user.
func New(id int, email string) *User {
	return &User{ID: id, Email: email, Active: true}
}

// Deactivate marks u inactive. It is idempotent.
func (u *User) Deactivate() {
	u.Active = false
}

var usernames = map[int]string{
	1: "Alice",
	5: "Eshmat",
}

// Username looks up the display name for id.
func Username(id int) (string, bool) {
	name, ok := usernames[id]
	return name, ok
}

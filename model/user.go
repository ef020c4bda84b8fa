package model

// User is an admin account as stored in the users file. Password holds a
// bcrypt hash, never plaintext; the JSON field name is kept for
// compatibility with existing data files.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

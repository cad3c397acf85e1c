package models

// User is an account record. Passwords are kept in plaintext because the
// demo stubs authentication entirely; do not reuse this model anywhere real.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InsertUser is the accepted shape for creating a user.
type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

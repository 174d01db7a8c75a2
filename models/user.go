package models

import "time"

// User represents a server-side account used for authentication.
// The vault contents are never tied to the account password; the e-mail
// doubles as the account identifier for client-side key derivation.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the display name chosen at signup.
	Username string `json:"username"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// Password is the plaintext account password as received from the client.
	// It is only populated on signup/login requests and is never persisted
	// or serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Account is the client-side view of an authenticated user.
type Account struct {
	// AccountID is the stable identifier used as key-derivation input.
	// It is the e-mail the account was registered with.
	AccountID string

	// Username is the display name returned by the server.
	Username string
}

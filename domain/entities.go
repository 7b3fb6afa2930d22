package domain

import "time"

// User represents a registered account
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string `gorm:"column:password"`
	IsVerified   bool
	Verification *Verification
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Verification is the pending email-verification state attached to an
// unverified account. Both fields are set and cleared together; a verified
// account carries nil.
type Verification struct {
	Code      int
	ExpiresAt time.Time
}

// Expired reports whether the code is past its validity window.
func (v *Verification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims represents the claims embedded in a session token
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

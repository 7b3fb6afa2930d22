package domain

import "context"

// UserRepository defines account data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByVerificationCode(ctx context.Context, code int) (*User, error)
	// MarkVerified flips the account to verified and clears the pending
	// code in a single conditional update. It fails with ErrOTPInvalid
	// when the code has already been consumed by a concurrent attempt.
	MarkVerified(ctx context.Context, userID uint, code int) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyOTP(ctx context.Context, code int) (*User, error)
	ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error
}

// OTPService defines one-time-code operations
type OTPService interface {
	Issue() (*Verification, error)
	Validate(code int, verification *Verification) bool
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(user *User) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendVerificationEmail(to string, code int) error
}

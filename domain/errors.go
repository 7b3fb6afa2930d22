package domain

import "errors"

// Validation errors
var (
	ErrFieldsRequired   = errors.New("please provide all the fields")
	ErrPasswordMismatch = errors.New("password and confirm password should be same")
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotRegistered  = errors.New("user is not registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// OTP errors
var (
	ErrOTPRequired = errors.New("please provide the otp")
	ErrOTPInvalid  = errors.New("invalid otp")
)

// Token errors
var (
	ErrTokenMissing   = errors.New("authentication token is not found")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

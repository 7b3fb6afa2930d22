package mocks

import (
	"context"
	"time"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*domain.AuthResult, error)
	LoginFunc         func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	VerifyOTPFunc     func(ctx context.Context, code int) (*domain.User, error)
	ResetPasswordFunc func(ctx context.Context, email, oldPassword, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func defaultAuthResult() *domain.AuthResult {
	return &domain.AuthResult{
		User: &domain.User{
			ID:        1,
			FirstName: "Test",
			LastName:  "User",
			Email:     "test@example.com",
		},
		Token:     "mock_token",
		ExpiresIn: int64((24 * time.Hour).Seconds()),
	}
}

// Register registers a new account
func (m *MockAuthService) Register(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, firstName, lastName, email, password, confirmPassword)
	}
	return defaultAuthResult(), nil
}

// Login authenticates an account
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return defaultAuthResult(), nil
}

// VerifyOTP consumes a pending verification code
func (m *MockAuthService) VerifyOTP(ctx context.Context, code int) (*domain.User, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, code)
	}
	return defaultAuthResult().User, nil
}

// ResetPassword rotates the account credential
func (m *MockAuthService) ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, oldPassword, newPassword)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)

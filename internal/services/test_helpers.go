package services

import (
	"testing"
	"time"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/logging"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	notificationSvc domain.NotificationService) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if otpSvc == nil {
		otpSvc = mocks.NewMockOTPService()
	}
	if notificationSvc == nil {
		notificationSvc = mocks.NewMockNotificationService()
	}

	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, notificationSvc, 24*time.Hour, logging.Discard())
}

// createValidUser creates a verified user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		FirstName:    "Test",
		LastName:     "User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password123",
		IsVerified:   true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// createPendingUser creates an unverified user with a live OTP attached
func createPendingUser(t *testing.T, code int) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.IsVerified = false
	user.Verification = &domain.Verification{
		Code:      code,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return user
}

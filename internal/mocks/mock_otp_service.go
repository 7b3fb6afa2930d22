package mocks

import (
	"time"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc    func() (*domain.Verification, error)
	ValidateFunc func(code int, verification *domain.Verification) bool
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates a verification code with expiry
func (m *MockOTPService) Issue() (*domain.Verification, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc()
	}
	return &domain.Verification{
		Code:      4821,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

// Validate checks a submitted code against the stored verification
func (m *MockOTPService) Validate(code int, verification *domain.Verification) bool {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(code, verification)
	}
	return verification != nil && verification.Code == code && !verification.Expired(time.Now())
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)

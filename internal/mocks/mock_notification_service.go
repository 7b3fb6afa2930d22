package mocks

import "github.com/TusharMishra1811/writo-education-assessment-backend/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendVerificationEmailFunc func(to string, code int) error

	// SentEmails records every dispatch for assertions
	SentEmails []SentEmail
}

// SentEmail captures a dispatched verification email
type SentEmail struct {
	To   string
	Code int
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendVerificationEmail delivers a verification code
func (m *MockNotificationService) SendVerificationEmail(to string, code int) error {
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Code: code})
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(to, code)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)

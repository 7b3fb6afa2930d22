package mocks

import (
	"context"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc                 func(ctx context.Context, user *domain.User) error
	FindByEmailFunc            func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.User, error)
	FindByVerificationCodeFunc func(ctx context.Context, code int) (*domain.User, error)
	MarkVerifiedFunc           func(ctx context.Context, userID uint, code int) error
	UpdatePasswordFunc         func(ctx context.Context, userID uint, passwordHash string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// FindByVerificationCode finds a user by pending OTP code
func (m *MockUserRepository) FindByVerificationCode(ctx context.Context, code int) (*domain.User, error) {
	if m.FindByVerificationCodeFunc != nil {
		return m.FindByVerificationCodeFunc(ctx, code)
	}
	return nil, domain.ErrUserNotFound
}

// MarkVerified consumes a pending OTP and flips the account to verified
func (m *MockUserRepository) MarkVerified(ctx context.Context, userID uint, code int) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, userID, code)
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, passwordHash)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	otpSvc          domain.OTPService
	notificationSvc domain.NotificationService
	tokenTTL        time.Duration
	logger          *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	notificationSvc domain.NotificationService,
	tokenTTL time.Duration,
	logger *slog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		otpSvc:          otpSvc,
		notificationSvc: notificationSvc,
		tokenTTL:        tokenTTL,
		logger:          logger,
	}
}

// Register implements domain.AuthService. The account is created
// unverified with the one-time code attached in the same write, so a
// freshly registered account always carries a pending verification.
func (s *AuthServiceImpl) Register(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*domain.AuthResult, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, domain.ErrFieldsRequired
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	if password != confirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verification, err := s.otpSvc.Issue()
	if err != nil {
		return nil, fmt.Errorf("failed to issue otp: %w", err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hashedPassword,
		IsVerified:   false,
		Verification: verification,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// The account is durable at this point; a failed dispatch must not
	// undo the registration.
	if err := s.notificationSvc.SendVerificationEmail(email, verification.Code); err != nil {
		s.logger.Warn("otp dispatch failed", "email", email, "error", err)
	}

	token, err := s.tokenSvc.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// Login implements domain.AuthService. Verification status is not
// required to log in; an unverified account authenticates normally.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrFieldsRequired
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotRegistered
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// VerifyOTP implements domain.AuthService. The account is looked up by
// code value alone; MarkVerified consumes the code conditionally so only
// one of two racing attempts can succeed.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, code int) (*domain.User, error) {
	if code == 0 {
		return nil, domain.ErrOTPRequired
	}

	user, err := s.userRepo.FindByVerificationCode(ctx, code)
	if err != nil {
		return nil, domain.ErrOTPInvalid
	}

	if !s.otpSvc.Validate(code, user.Verification) {
		return nil, domain.ErrOTPInvalid
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID, code); err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.Verification = nil
	return user, nil
}

// ResetPassword implements domain.AuthService. The email comes from the
// caller's verified session claims, not from the request body. Existing
// session tokens stay valid until their natural expiry.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return domain.ErrFieldsRequired
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if !s.passwordSvc.Verify(user.PasswordHash, oldPassword) {
		return domain.ErrInvalidCredentials
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

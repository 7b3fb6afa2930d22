package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// Verification codes are drawn from the fixed 4-digit range [1000, 9999].
// The small code space is an accepted property of the system, not a knob.
const (
	otpMin = 1000
	otpMax = 9999
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	ttl time.Duration
}

// NewOTPService creates a new OTP service. The TTL is the validity window
// attached to every issued code.
func NewOTPService(ttl time.Duration) domain.OTPService {
	return &OTPServiceImpl{ttl: ttl}
}

// Issue implements domain.OTPService
func (s *OTPServiceImpl) Issue() (*domain.Verification, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	return &domain.Verification{
		Code:      otpMin + int(n.Int64()),
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

// Validate implements domain.OTPService. It is a pure check: the stored
// verification must be present, match the submitted code, and be unexpired.
// Consuming the code is the caller's responsibility.
func (s *OTPServiceImpl) Validate(code int, verification *domain.Verification) bool {
	if verification == nil {
		return false
	}
	if verification.Code != code {
		return false
	}
	return !verification.Expired(time.Now())
}

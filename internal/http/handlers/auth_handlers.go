package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// sessionCookie is the client-held session credential. There is no
// server-side session table; logout only instructs the client to drop it.
const sessionCookie = "authToken"

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	tokenSvc     domain.TokenService
	cookieMaxAge int
}

// NewAuthHandlers creates new auth handlers. cookieMaxAge is the session
// cookie lifetime in seconds and matches the token TTL.
func NewAuthHandlers(authSvc domain.AuthService, tokenSvc domain.TokenService, cookieMaxAge int) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		tokenSvc:     tokenSvc,
		cookieMaxAge: cookieMaxAge,
	}
}

// SignupRequest represents registration request
type SignupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	VerifyOTP int `json:"verifyOtp"`
}

// ResetPasswordRequest represents password reset request
type ResetPasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Signup handles user registration
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide all the fields")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "Please provide all the fields")
		case errors.Is(err, domain.ErrUserAlreadyExists):
			fail(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, domain.ErrPasswordMismatch):
			fail(c, http.StatusUnauthorized, "Password and confirm password should be same")
		default:
			fail(c, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user is created successfully",
		"user":    userPayload(result.User),
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnauthorized, "Please provide all the fields")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFieldsRequired):
			fail(c, http.StatusUnauthorized, "Please provide all the fields")
		case errors.Is(err, domain.ErrUserNotRegistered):
			fail(c, http.StatusBadRequest, "User is not registered")
		case errors.Is(err, domain.ErrInvalidCredentials):
			fail(c, http.StatusNotFound, "Invalid email or password")
		default:
			fail(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user is logged in successfully",
		"user":    userPayload(result.User),
	})
}

// VerifyOTP handles email verification
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnauthorized, "Please provide the otp")
		return
	}

	if _, err := h.authSvc.VerifyOTP(c.Request.Context(), req.VerifyOTP); err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPRequired):
			fail(c, http.StatusUnauthorized, "Please provide the otp")
		case errors.Is(err, domain.ErrOTPInvalid):
			fail(c, http.StatusUnauthorized, "Invalid OTP")
		default:
			fail(c, http.StatusInternalServerError, "OTP verification failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email is verified successfully.",
	})
}

// ResetPassword handles credential rotation for the logged-in account
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OldPassword == "" || req.NewPassword == "" {
		fail(c, http.StatusBadRequest, "Please provide all the fields")
		return
	}

	claims, ok := h.sessionClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), claims.Email, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "Please provide all the fields")
		case errors.Is(err, domain.ErrUserNotFound):
			fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, "Invalid Password")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
	})
}

// Logout instructs the client to discard its session credential. Tokens
// stay cryptographically valid until natural expiry.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User logged out successfully",
	})
}

// Me returns the first name of the logged-in account from its claims
func (h *AuthHandlers) Me(c *gin.Context) {
	claims, ok := h.sessionClaims(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"firstName": claims.FirstName,
		"message":   "User is fetched successfully",
	})
}

// CheckAuth reports whether the caller holds a valid session. Unlike Me,
// a failed verification is not an error here: the endpoint answers the
// question with isAuthenticated=false.
func (h *AuthHandlers) CheckAuth(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		fail(c, http.StatusNotFound, "authentication token is missing")
		return
	}

	claims, err := h.tokenSvc.Validate(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            claims,
	})
}

// sessionClaims reads and verifies the session cookie, writing the
// failure response itself when the credential is missing or invalid.
func (h *AuthHandlers) sessionClaims(c *gin.Context) (*domain.TokenClaims, bool) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		fail(c, http.StatusNotFound, "Authentication token is not found")
		return nil, false
	}

	claims, err := h.tokenSvc.Validate(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			fail(c, http.StatusUnauthorized, "Token has expired")
		} else {
			fail(c, http.StatusUnauthorized, "Invalid token")
		}
		return nil, false
	}

	return claims, true
}

func (h *AuthHandlers) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, token, h.cookieMaxAge, "/", "", false, true)
}

func (h *AuthHandlers) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// userPayload shapes the client-facing account record. The password hash
// never leaves the server.
func userPayload(user *domain.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"firstName":  user.FirstName,
		"lastName":   user.LastName,
		"email":      user.Email,
		"isVerified": user.IsVerified,
	}
}

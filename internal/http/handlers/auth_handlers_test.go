package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/mocks"
)

func setupHandlers(t *testing.T, authSvc *mocks.MockAuthService, tokenSvc *mocks.MockTokenService) *AuthHandlers {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if authSvc == nil {
		authSvc = mocks.NewMockAuthService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	return NewAuthHandlers(authSvc, tokenSvc, int((24 * time.Hour).Seconds()))
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, path string, body interface{}, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: cookie})
	}

	w := httptest.NewRecorder()
	r := gin.New()
	r.Handle(method, path, handler)
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sessionCookieFrom(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Signup(t *testing.T) {
	t.Run("success sets session cookie and omits password hash", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.Signup, http.MethodPost, "/signup", SignupRequest{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
			Password: "p1", ConfirmPassword: "p1",
		}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "user is created successfully", body["message"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "Test", user["firstName"])
		assert.NotContains(t, user, "password")
		assert.NotContains(t, user, "passwordHash")

		cookie := sessionCookieFrom(w)
		require.NotNil(t, cookie)
		assert.Equal(t, "mock_token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	})

	t.Run("missing fields", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RegisterFunc = func(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*domain.AuthResult, error) {
			return nil, domain.ErrFieldsRequired
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.Signup, http.MethodPost, "/signup", SignupRequest{Email: "jane@example.com"}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["success"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RegisterFunc = func(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*domain.AuthResult, error) {
			return nil, domain.ErrUserAlreadyExists
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.Signup, http.MethodPost, "/signup", SignupRequest{
			FirstName: "Jane", LastName: "Doe", Email: "taken@example.com",
			Password: "p1", ConfirmPassword: "p1",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User already exists", decodeBody(t, w)["message"])
	})

	t.Run("password mismatch", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RegisterFunc = func(ctx context.Context, firstName, lastName, email, password, confirmPassword string) (*domain.AuthResult, error) {
			return nil, domain.ErrPasswordMismatch
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.Signup, http.MethodPost, "/signup", SignupRequest{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
			Password: "p1", ConfirmPassword: "p2",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, sessionCookieFrom(w))
	})
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("success sets session cookie", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.Login, http.MethodPost, "/login", LoginRequest{
			Email: "test@example.com", Password: "password123",
		}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "user is logged in successfully", body["message"])
		require.NotNil(t, sessionCookieFrom(w))
	})

	t.Run("unknown email", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrUserNotRegistered
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.Login, http.MethodPost, "/login", LoginRequest{
			Email: "nobody@example.com", Password: "password123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User is not registered", decodeBody(t, w)["message"])
		assert.Nil(t, sessionCookieFrom(w))
	})

	t.Run("wrong password", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.Login, http.MethodPost, "/login", LoginRequest{
			Email: "test@example.com", Password: "wrong",
		}, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Nil(t, sessionCookieFrom(w))
	})

	t.Run("missing fields", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrFieldsRequired
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.Login, http.MethodPost, "/login", LoginRequest{Email: "test@example.com"}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var received int
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyOTPFunc = func(ctx context.Context, code int) (*domain.User, error) {
			received = code
			return &domain.User{ID: 1, IsVerified: true}, nil
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.VerifyOTP, http.MethodPost, "/otp-verification", VerifyOTPRequest{VerifyOTP: 4821}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 4821, received)
		assert.Equal(t, "Email is verified successfully.", decodeBody(t, w)["message"])
	})

	t.Run("invalid or consumed code", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyOTPFunc = func(ctx context.Context, code int) (*domain.User, error) {
			return nil, domain.ErrOTPInvalid
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.VerifyOTP, http.MethodPost, "/otp-verification", VerifyOTPRequest{VerifyOTP: 4821}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid OTP", decodeBody(t, w)["message"])
	})

	t.Run("missing code", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyOTPFunc = func(ctx context.Context, code int) (*domain.User, error) {
			return nil, domain.ErrOTPRequired
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.VerifyOTP, http.MethodPost, "/otp-verification", VerifyOTPRequest{}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandlers_ResetPassword(t *testing.T) {
	body := ResetPasswordRequest{OldPassword: "old", NewPassword: "new"}

	t.Run("missing session cookie", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.ResetPassword, http.MethodPost, "/reset-password", body, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Authentication token is not found", decodeBody(t, w)["message"])
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrTokenInvalid
		}
		h := setupHandlers(t, nil, tokenSvc)
		w := performJSON(t, h.ResetPassword, http.MethodPost, "/reset-password", body, "bad-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrTokenExpired
		}
		h := setupHandlers(t, nil, tokenSvc)
		w := performJSON(t, h.ResetPassword, http.MethodPost, "/reset-password", body, "stale-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.ResetPassword, http.MethodPost, "/reset-password", ResetPasswordRequest{OldPassword: "old"}, "token")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong old password", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.ResetPasswordFunc = func(ctx context.Context, email, oldPassword, newPassword string) error {
			return domain.ErrInvalidCredentials
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.ResetPassword, http.MethodPost, "/reset-password", body, "token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid Password", decodeBody(t, w)["message"])
	})

	t.Run("success resolves account from token claims", func(t *testing.T) {
		var resolvedEmail string
		authSvc := mocks.NewMockAuthService()
		authSvc.ResetPasswordFunc = func(ctx context.Context, email, oldPassword, newPassword string) error {
			resolvedEmail = email
			return nil
		}
		h := setupHandlers(t, authSvc, nil)
		w := performJSON(t, h.ResetPassword, http.MethodPost, "/reset-password", body, "token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "test@example.com", resolvedEmail)
		assert.Equal(t, "Password updated successfully", decodeBody(t, w)["message"])
	})
}

func TestAuthHandlers_Logout(t *testing.T) {
	h := setupHandlers(t, nil, nil)
	w := performJSON(t, h.Logout, http.MethodPost, "/logout", nil, "token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User logged out successfully", decodeBody(t, w)["message"])

	cookie := sessionCookieFrom(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandlers_Me(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.Me, http.MethodGet, "/me", nil, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid token returns unauthenticated instead of crashing", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrTokenInvalid
		}
		h := setupHandlers(t, nil, tokenSvc)
		w := performJSON(t, h.Me, http.MethodGet, "/me", nil, "bad-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["success"])
	})

	t.Run("success returns first name from claims", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.Me, http.MethodGet, "/me", nil, "token")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Test", body["firstName"])
		assert.Equal(t, "User is fetched successfully", body["message"])
	})
}

func TestAuthHandlers_CheckAuth(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.CheckAuth, http.MethodGet, "/auth-check", nil, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("verification failure reports isAuthenticated false", func(t *testing.T) {
		tokenSvc := mocks.NewMockTokenService()
		tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrTokenExpired
		}
		h := setupHandlers(t, nil, tokenSvc)
		w := performJSON(t, h.CheckAuth, http.MethodGet, "/auth-check", nil, "stale-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["isAuthenticated"])
	})

	t.Run("valid session returns claims", func(t *testing.T) {
		h := setupHandlers(t, nil, nil)
		w := performJSON(t, h.CheckAuth, http.MethodGet, "/auth-check", nil, "token")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["isAuthenticated"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "test@example.com", user["email"])
	})
}

func TestAuthHandlers_Signup_MalformedBody(t *testing.T) {
	h := setupHandlers(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

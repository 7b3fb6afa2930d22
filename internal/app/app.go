package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/config"
	httpx "github.com/TusharMishra1811/writo-education-assessment-backend/internal/http"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/http/handlers"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/infrastructure/auth"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/infrastructure/database"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/infrastructure/notifications"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/infrastructure/repositories"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/logging"
	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/services"
)

func Run(cfg *config.Config) error {
	logger := logging.New(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	notificationSvc := notifications.NewSMTPService(notifications.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, logger)

	userRepo := repositories.NewUserRepository(gdb)
	otpSvc := services.NewOTPService(cfg.OTP_TTL)
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, notificationSvc, cfg.TokenTTL, logger)

	authH := handlers.NewAuthHandlers(authSvc, tokenSvc, int(cfg.TokenTTL.Seconds()))
	r := httpx.BuildRouter(authH)

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, r)
}

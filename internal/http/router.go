package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/TusharMishra1811/writo-education-assessment-backend/internal/http/handlers"
)

func BuildRouter(ah *handlers.AuthHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	user := r.Group("/api/v1/user")
	user.POST("/signup", ah.Signup)
	user.POST("/login", ah.Login)
	user.POST("/otp-verification", ah.VerifyOTP)
	user.POST("/reset-password", ah.ResetPassword)
	user.POST("/logout", ah.Logout)
	user.GET("/me", ah.Me)
	user.GET("/auth-check", ah.CheckAuth)

	return r
}

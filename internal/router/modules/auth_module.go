package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/shopcart-api/internal/interface/http"
	"github.com/oksasatya/shopcart-api/internal/interface/middleware"
)

// AuthModule registers the public account endpoints under /auth.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := limiter(10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := limiter(10, time.Minute, middleware.KeyByIPAndPath(), nil)
	forgotLimiter := limiter(5, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetLimiter := limiter(30, time.Minute, middleware.KeyByIPAndPath(), nil)

	auth := rg.Group("/auth")
	auth.POST("/signup", signupLimiter, m.Handler.Signup)
	auth.POST("/login", loginLimiter, m.Handler.Login)
	auth.POST("/forgot-password", forgotLimiter, m.Handler.ForgotPassword)
	auth.POST("/reset-password", resetLimiter, m.Handler.ResetPassword)
}

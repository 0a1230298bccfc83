package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/application"
	"github.com/oksasatya/shopcart-api/pkg/response"
)

type AuthHandler struct {
	Service *application.AuthService
	Logger  *logrus.Logger
}

func NewAuthHandler(service *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: service, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// Signup POST /api/auth/signup {email, password}
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	token, err := h.Service.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Token(c, http.StatusCreated, application.MsgSignupOK, token)
}

// Login POST /api/auth/login {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Token(c, http.StatusOK, application.MsgLoginOK, token)
}

// ForgotPassword POST /api/auth/forgot-password {email}
// The answer does not reveal whether the email is registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	msg, err := h.Service.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, msg)
}

// ResetPassword POST /api/auth/reset-password {token, newPassword}
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	msg, err := h.Service.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, msg)
}

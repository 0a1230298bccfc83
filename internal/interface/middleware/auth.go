package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/shopcart-api/internal/application"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
	"github.com/oksasatya/shopcart-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// TokenVerifier is satisfied by application.AuthService.
type TokenVerifier interface {
	Authenticate(token string) (*helpers.Claims, error)
}

// BearerAuth validates the "Authorization: Bearer <token>" header.
// A missing token answers 401, a bad or expired one 403.
// On success it sets userID (int) and userEmail in the Gin context.
func BearerAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Authenticate(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			status := http.StatusForbidden
			msg := application.ErrUnauthorized.Message
			if application.KindOf(err) == application.KindUnauthenticated {
				status = http.StatusUnauthorized
				msg = application.ErrUnauthenticated.Message
			}
			response.Error(c, status, msg)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

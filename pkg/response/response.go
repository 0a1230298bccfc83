package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body of every non-list response.
type Message struct {
	Message string `json:"message"`
}

// WithToken is returned by signup and login.
type WithToken struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func OK(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Message{Message: message})
}

func Token(c *gin.Context, status int, message, token string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, WithToken{Message: message, Token: token})
}

// Error writes {message} and aborts the handler chain.
func Error(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, Message{Message: message})
}

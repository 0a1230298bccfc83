package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestError(t *testing.T) {
	c, w := testContext()
	Error(c, 0, "bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"bad"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestToken(t *testing.T) {
	c, w := testContext()
	Token(c, http.StatusCreated, "hi", "tok")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"hi","token":"tok"}`, w.Body.String())
}

func TestOK(t *testing.T) {
	c, w := testContext()
	OK(c, 0, "fine")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"fine"}`, w.Body.String())
}

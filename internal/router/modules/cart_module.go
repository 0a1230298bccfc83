package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/shopcart-api/internal/interface/http"
	"github.com/oksasatya/shopcart-api/internal/interface/middleware"
)

// CartModule wires the cart endpoints behind bearer authentication.
// Protected: GET /api/cart, POST /api/cart/add, PUT /api/cart/update
type CartModule struct {
	Handler  *handlers.CartHandler
	Verifier middleware.TokenVerifier
}

func NewCartModule(h *handlers.CartHandler, v middleware.TokenVerifier) *CartModule {
	return &CartModule{Handler: h, Verifier: v}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(middleware.BearerAuth(m.Verifier))
	cart.Use(limiter(120, time.Minute, middleware.KeyByUserID(), nil))
	{
		cart.GET("", m.Handler.Get)
		cart.POST("/add", m.Handler.Add)
		cart.PUT("/update", m.Handler.Update)
	}
}

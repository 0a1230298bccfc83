package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/application"
	"github.com/oksasatya/shopcart-api/internal/interface/middleware"
	"github.com/oksasatya/shopcart-api/pkg/response"
)

type CartHandler struct {
	Service *application.CartService
	Logger  *logrus.Logger
}

func NewCartHandler(service *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Service: service, Logger: logger}
}

type addToCartRequest struct {
	ItemID int `json:"itemId"`
	Qty    int `json:"qty"`
}

// qty is a pointer so a missing value can be told apart from 0, which removes the row.
type updateCartRequest struct {
	ItemID int  `json:"itemId"`
	Qty    *int `json:"qty"`
}

// Get GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	rows, err := h.Service.GetCart(c.Request.Context(), c.GetInt(middleware.CtxUserIDKey))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Add POST /api/cart/add {itemId, qty}
func (h *CartHandler) Add(c *gin.Context) {
	var req addToCartRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	if err := h.Service.AddToCart(c.Request.Context(), c.GetInt(middleware.CtxUserIDKey), req.ItemID, req.Qty); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, application.MsgCartAdded)
}

// Update PUT /api/cart/update {itemId, qty}
func (h *CartHandler) Update(c *gin.Context) {
	var req updateCartRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	if err := h.Service.UpdateCart(c.Request.Context(), c.GetInt(middleware.CtxUserIDKey), req.ItemID, req.Qty); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, application.MsgCartUpdated)
}

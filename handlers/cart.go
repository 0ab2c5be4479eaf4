package handlers

import (
	"net/http"

	"bluerobins/middleware"
	"bluerobins/models"
	"bluerobins/services/cart"
	"bluerobins/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the pending-purchase cart and checkout.
type CartHandler struct {
	carts cart.CartService
}

func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{carts: svc}
}

func (h *CartHandler) Get(c *gin.Context) {
	id, _ := middleware.Identity(c)

	found, err := h.carts.Get(id)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.carts.AddItem(id, item)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, _ := middleware.Identity(c)

	updated, err := h.carts.RemoveItem(id, c.Param("itemId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Checkout charges the cart and books its items. A partial result is
// still 200; the Failed field carries the reason.
func (h *CartHandler) Checkout(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.carts.Checkout(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

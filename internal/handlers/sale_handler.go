package handlers

import (
	"errors"
	"net/http"

	"boutique-pos/internal/cart"
	"boutique-pos/internal/middleware"
	"boutique-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// cartError maps the engine's validation failures onto status codes. These
// are all "toast and move on" conditions for the till operator.
func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	case errors.Is(err, cart.ErrSaleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case errors.Is(err, cart.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
	case errors.Is(err, cart.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, cart.ErrInsufficientCash):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient amount received"})
	case errors.Is(err, cart.ErrInvalidPayment):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// --- GET: Current cart contents ---
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.Cart.Items(),
		"total": h.Cart.Total(),
	})
}

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// --- POST: Add a product to the cart ---
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1 // same default as the sales screen
	}

	item, err := h.Cart.AddItem(req.ProductID, req.Quantity)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// --- PUT: Change a line's quantity ---
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := h.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// --- DELETE: Remove a line ---
func (h *Handler) RemoveCartItem(c *gin.Context) {
	if err := h.Cart.RemoveItem(c.Param("id")); err != nil {
		cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// --- DELETE: Empty the cart ---
func (h *Handler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

type CheckoutRequest struct {
	PaymentMethod  models.PaymentMethod `json:"paymentMethod" binding:"required"`
	AmountReceived *float64             `json:"amountReceived"`
}

// --- POST: Finalize the sale ---
func (h *Handler) ProcessSale(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// The cashier credited with the sale comes from the token, not the body
	cashier := middleware.CurrentUser(c)

	var amount float64
	if req.AmountReceived != nil {
		amount = *req.AmountReceived
	}

	tx, err := h.Cart.Checkout(req.PaymentMethod, amount, cashier)
	if err != nil {
		cartError(c, err)
		return
	}

	// Stubbed printer: render the receipt and hand it off
	if h.Printer != nil {
		_ = h.Printer.Print(h.Settings.RenderReceipt(tx))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Sale successful!",
		"transaction": tx,
	})
}

// --- GET: The append-only sale log ---
func (h *Handler) GetSales(c *gin.Context) {
	c.JSON(http.StatusOK, h.Cart.Transactions())
}

// --- GET: Plain-text receipt for a past sale ---
func (h *Handler) GetReceipt(c *gin.Context) {
	tx, err := h.Cart.GetTransaction(c.Param("id"))
	if err != nil {
		cartError(c, err)
		return
	}
	c.String(http.StatusOK, h.Settings.RenderReceipt(tx))
}

package handlers

import (
	"errors"
	"net/http"

	"boutique-pos/internal/catalog"

	"github.com/gin-gonic/gin"
)

// --- GET: List all products ---
func (h *Handler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Products())
}

// --- POST: Add a new product ---
func (h *Handler) AddProduct(c *gin.Context) {
	var input catalog.ProductInput

	// 1. Parse JSON Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if input.Price < 0 || input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price and stock must not be negative"})
		return
	}

	// 2. Save to the catalog
	product, err := h.Catalog.AddProduct(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// --- PUT: Update product fields ---
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	// Partial update: only the fields present in the JSON are touched
	var update catalog.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if update.Price != nil && *update.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}
	if update.Stock != nil && *update.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
		return
	}

	product, err := h.Catalog.UpdateProduct(id, update)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// --- DELETE: Remove a product ---
// Past sales keep their own name/price snapshots, so this never cascades.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.Catalog.DeleteProduct(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// --- GET: Look a product up by scan code ---
func (h *Handler) ScanProduct(c *gin.Context) {
	product, err := h.Catalog.GetProductByBarcode(c.Param("barcode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

type StockAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// --- POST: Adjust stock by a delta ---
// Stock is clamped at zero; over-decrementing is not an error.
func (h *Handler) AdjustStock(c *gin.Context) {
	var req StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id := c.Param("id")
	if err := h.Catalog.UpdateStock(id, req.Delta); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}

	product, _ := h.Catalog.GetProductByID(id)
	c.JSON(http.StatusOK, product)
}

// --- Categories: CRUD minus stock ---

func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Categories())
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) AddCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	category, err := h.Catalog.AddCategory(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.Catalog.DeleteCategory(c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

package handlers

import (
	"net/http"

	"boutique-pos/internal/middleware"
	"boutique-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route. Extra middlewares (CORS, request logging) are
// installed ahead of the routes so main and tests share the same wiring.
func NewRouter(h *Handler, mws ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mws...)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/logout", h.Logout)

		// PUBLIC TO ALL STAFF
		api.GET("/products", h.GetProducts)
		api.GET("/products/scan/:barcode", h.ScanProduct)
		api.GET("/categories", h.GetCategories)
		api.GET("/dashboard", h.GetDashboard)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.PUT("/cart/items/:id", h.UpdateCartItem)
		api.DELETE("/cart/items/:id", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)
		api.POST("/checkout", h.ProcessSale)
		api.GET("/sales", h.GetSales)
		api.GET("/sales/:id/receipt", h.GetReceipt)

		// ADMIN ONLY: catalog management
		admin := api.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/products", h.AddProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.POST("/products/:id/stock", h.AdjustStock)
			admin.POST("/categories", h.AddCategory)
			admin.DELETE("/categories/:id", h.DeleteCategory)
		}

		// ADMIN & MANAGER: reports and settings (cashiers never see these)
		managers := api.Group("/")
		managers.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))
		{
			managers.GET("/reports", h.GetSalesReport)
			managers.GET("/reports/export", h.ExportSalesReport)
			managers.GET("/settings", h.GetSettings)
			managers.PUT("/settings", h.UpdateSettings)
		}
	}

	return r
}

package routes

import (
	"oficina_xyz/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders       = "/orders"
	PathStock        = "/stock"
	PathMechanics    = "/mechanics"
	PathTransactions = "/transactions"
	PathDashboard    = "/dashboard"
	PathAI           = "/ai"
	PathProfile      = "/profile"
)

type workshopHandlers struct {
	stock     *handlers.StockHandler
	orders    *handlers.OrderHandler
	mechanics *handlers.MechanicHandler
	finance   *handlers.FinanceHandler
	dashboard *handlers.DashboardHandler
	ai        *handlers.AIHandler
	profile   *handlers.ProfileHandler
}

func addWorkshopRoutes(rg *gin.RouterGroup, h workshopHandlers) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.orders.CreateOrder)
		orders.GET("", h.orders.ListOrders)
		orders.GET("/:id", h.orders.GetOrder)
		orders.PUT("/:id", h.orders.UpdateOrder)
		orders.DELETE("/:id", h.orders.DeleteOrder)
		orders.POST("/:id/payment", h.orders.RecordPayment)
	}

	stock := rg.Group(PathStock)
	{
		stock.POST("", h.stock.CreateItem)
		stock.GET("", h.stock.ListItems)
		stock.GET("/low", h.stock.ListLowStock)
		stock.GET("/:id", h.stock.GetItem)
		stock.PUT("/:id", h.stock.UpdateItem)
		stock.DELETE("/:id", h.stock.DeleteItem)
		stock.POST("/:id/movements", h.stock.MoveStock)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("", h.mechanics.Create)
		mechanics.GET("", h.mechanics.List)
		mechanics.GET("/:id", h.mechanics.Get)
		mechanics.PUT("/:id", h.mechanics.Update)
		mechanics.DELETE("/:id", h.mechanics.Delete)
	}

	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("", h.finance.Create)
		transactions.GET("", h.finance.List)
		transactions.PUT("/:id", h.finance.Update)
		transactions.DELETE("/:id", h.finance.Delete)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", h.dashboard.Summary)
		dashboard.GET("/series", h.dashboard.Series)
	}

	aiGroup := rg.Group(PathAI)
	{
		aiGroup.POST("/diagnose", h.ai.Diagnose)
		aiGroup.POST("/order-summary", h.ai.SummarizeOrder)
		aiGroup.POST("/vehicle-history", h.ai.AnalyzeVehicleHistory)
	}

	rg.GET(PathProfile, h.profile.GetProfile)
}

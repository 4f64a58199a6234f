package routes

import (
	"swapcred/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathExchanges  = "/exchanges"
	PathAdmin      = "/admin"
	PathWarehouses = "/warehouses"
)

func addExchangeRoutes(rg *gin.RouterGroup, exchangeHandler *handlers.ExchangeHandler, creditHandler *handlers.CreditHandler) {
	exchanges := rg.Group(PathExchanges)
	{
		exchanges.POST("", exchangeHandler.Create)
		exchanges.GET("", exchangeHandler.ListMine)
		exchanges.GET("/:id", exchangeHandler.GetByID)
		exchanges.PATCH("/:id/shipping", exchangeHandler.SubmitShipping)
		exchanges.DELETE("/:id", exchangeHandler.Cancel)
	}

	rg.GET("/credits/balance", creditHandler.Balance)
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminExchangeHandler, warehouseHandler *handlers.WarehouseHandler, creditHandler *handlers.CreditHandler) {
	admin := rg.Group(PathAdmin)

	exchanges := admin.Group(PathExchanges)
	{
		exchanges.GET("", adminHandler.List)
		exchanges.GET("/:id", adminHandler.Get)
		exchanges.PATCH("/:id/status", adminHandler.PatchStatus)
		exchanges.PATCH("/:id/transit", adminHandler.PatchTransit)
		exchanges.PATCH("/:id/credit", adminHandler.AssignCredit)
		exchanges.DELETE("/:id", adminHandler.Delete)
	}

	warehouses := admin.Group(PathWarehouses)
	{
		warehouses.POST("", warehouseHandler.Create)
		warehouses.GET("", warehouseHandler.List)
		warehouses.GET("/:id", warehouseHandler.GetByID)
		warehouses.PUT("/:id", warehouseHandler.Update)
		warehouses.DELETE("/:id", warehouseHandler.Delete)
	}

	admin.GET("/credit-history", creditHandler.History)
}

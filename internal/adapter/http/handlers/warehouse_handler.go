package handlers

import (
	"net/http"
	"strconv"

	request "swapcred/internal/adapter/http/dto/request"
	response "swapcred/internal/adapter/http/dto/response"
	"swapcred/internal/adapter/http/middleware"
	"swapcred/internal/usecase"
	"swapcred/pkg"

	"github.com/gin-gonic/gin"
)

// WarehouseHandler handles the admin warehouse reference-data endpoints.
type WarehouseHandler struct {
	usecase usecase.IWarehouseUseCase
}

func NewWarehouseHandler(uc usecase.IWarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{usecase: uc}
}

func (h *WarehouseHandler) Create(c *gin.Context) {
	var payload request.WarehouseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid warehouse payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.CallerID(c), warehouseInput(payload))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWarehouse(created))
}

// List returns warehouses; ?active=true narrows to active ones, which is what
// the approval screen uses to populate its destination picker.
func (h *WarehouseHandler) List(c *gin.Context) {
	onlyActive := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "active must be a boolean", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		onlyActive = v
	}

	items, err := h.usecase.List(c.Request.Context(), middleware.CallerID(c), onlyActive)
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarehouses(items))
}

func (h *WarehouseHandler) GetByID(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarehouse(rec))
}

func (h *WarehouseHandler) Update(c *gin.Context) {
	var payload request.WarehouseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid warehouse payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), middleware.CallerID(c), c.Param("id"), warehouseInput(payload))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarehouse(updated))
}

func (h *WarehouseHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func warehouseInput(p request.WarehouseRequest) usecase.WarehouseInput {
	return usecase.WarehouseInput{
		Name:          p.Name,
		AddressLine1:  p.AddressLine1,
		AddressLine2:  p.AddressLine2,
		City:          p.City,
		State:         p.State,
		PostalCode:    p.PostalCode,
		Country:       p.Country,
		ContactPerson: p.ContactPerson,
		ContactPhone:  p.ContactPhone,
		IsActive:      p.IsActive,
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "swapcred/internal/adapter/http/dto/request"
	response "swapcred/internal/adapter/http/dto/response"
	"swapcred/internal/adapter/http/middleware"
	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase"
	"swapcred/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExchangePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid exchange payload", http.StatusBadRequest)

// ExchangeHandler handles the customer-facing exchange endpoints.
type ExchangeHandler struct {
	usecase usecase.IExchangeUseCase
}

func NewExchangeHandler(uc usecase.IExchangeUseCase) *ExchangeHandler {
	return &ExchangeHandler{usecase: uc}
}

// Create submits a new exchange request for the authenticated customer.
//
// @Summary  Submit an exchange request
// @Tags     exchange
// @Accept   json
// @Produce  json
// @Security Bearer
// @Success  201 {object} response.ExchangeResponse
// @Router   /exchanges [post]
func (h *ExchangeHandler) Create(c *gin.Context) {
	var payload request.CreateExchangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExchangePayload.HTTPStatus, errInvalidExchangePayload.ToHTTPError())
		return
	}

	images := make([]entities.ExchangeImage, 0, len(payload.Images))
	for _, img := range payload.Images {
		images = append(images, entities.ExchangeImage{URL: img.URL, ExternalID: img.ExternalID})
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.CallerID(c), usecase.CreateExchangeInput{
		ProductName: payload.ProductName,
		Brand:       payload.Brand,
		Condition:   payload.Condition,
		Description: payload.Description,
		Images:      images,
	})
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExchange(created))
}

// ListMine returns the caller's exchange requests.
func (h *ExchangeHandler) ListMine(c *gin.Context) {
	items, err := h.usecase.ListByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchanges(items))
}

// GetByID returns one exchange request; owners see their own, admins see any.
func (h *ExchangeHandler) GetByID(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchange(rec))
}

// SubmitShipping records the owner's one-time shipment submission.
func (h *ExchangeHandler) SubmitShipping(c *gin.Context) {
	var payload request.ShippingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExchangePayload.HTTPStatus, errInvalidExchangePayload.ToHTTPError())
		return
	}
	shippingDate, err := payload.ResolveShippingDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "shippingDate must be a YYYY-MM-DD date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.SubmitShipping(c.Request.Context(), middleware.CallerID(c), c.Param("id"), usecase.ShippingInput{
		CarrierName:    payload.CarrierName,
		TrackingNumber: payload.TrackingNumber,
		ShippingDate:   shippingDate,
		Notes:          payload.Notes,
	})
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchange(updated))
}

// Cancel deletes the caller's own exchange request while still pending.
func (h *ExchangeHandler) Cancel(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// mapExchangeError translates domain errors into the HTTP envelope. The three
// rejection families stay distinguishable: invalid input (400), not allowed at
// all (403), not allowed yet (409).
func mapExchangeError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	var sErr *usecase.StateError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExchangeID),
		errors.Is(err, usecase.ErrInvalidWarehouseID),
		errors.Is(err, usecase.ErrInvalidCallerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotOwner), errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple("FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrExchangeNotFound):
		return pkg.NewDomainErrorSimple("EXCHANGE_NOT_FOUND", "Exchange request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWarehouseNotFound):
		return pkg.NewDomainErrorSimple("WAREHOUSE_NOT_FOUND", "Warehouse not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.As(err, &sErr):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATE", sErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONFLICT", "Exchange request was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("LEDGER_UNAVAILABLE", "Credit ledger unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

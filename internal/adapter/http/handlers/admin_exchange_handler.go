package handlers

import (
	"net/http"

	request "swapcred/internal/adapter/http/dto/request"
	response "swapcred/internal/adapter/http/dto/response"
	"swapcred/internal/adapter/http/middleware"
	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase"
	"swapcred/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AdminExchangeHandler handles the administrator side of the exchange
// lifecycle: triage, receipt confirmation, credit assignment and closure.
type AdminExchangeHandler struct {
	usecase usecase.IExchangeUseCase
}

func NewAdminExchangeHandler(uc usecase.IExchangeUseCase) *AdminExchangeHandler {
	return &AdminExchangeHandler{usecase: uc}
}

// List returns every exchange request, optionally filtered by ?status=.
func (h *AdminExchangeHandler) List(c *gin.Context) {
	status, ok := resolveStatusFilter(c.Query("status"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "status must be one of pending, approved, declined, completed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.usecase.ListAll(c.Request.Context(), middleware.CallerID(c), status)
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchanges(items))
}

// Get returns one exchange request for admin review.
func (h *AdminExchangeHandler) Get(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchange(rec))
}

// PatchStatus applies an approve/decline decision or closes an exchange.
//
// approved and declined route to the pending-state decision; completed routes
// to the closing transition, which has its own credited-and-received guard.
func (h *AdminExchangeHandler) PatchStatus(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExchangePayload.HTTPStatus, errInvalidExchangePayload.ToHTTPError())
		return
	}

	adminID := middleware.CallerID(c)
	id := c.Param("id")

	var rec entities.ExchangeRequest
	var err error
	switch payload.ResolveStatus() {
	case string(entities.ExchangeStatusApproved):
		rec, err = h.usecase.Decide(c.Request.Context(), adminID, id, usecase.DecisionInput{
			Decision:    entities.ExchangeStatusApproved,
			Feedback:    payload.AdminFeedback,
			WarehouseID: payload.WarehouseID,
		})
	case string(entities.ExchangeStatusDeclined):
		rec, err = h.usecase.Decide(c.Request.Context(), adminID, id, usecase.DecisionInput{
			Decision: entities.ExchangeStatusDeclined,
			Feedback: payload.AdminFeedback,
		})
	case string(entities.ExchangeStatusCompleted):
		rec, err = h.usecase.Complete(c.Request.Context(), adminID, id, payload.AdminFeedback)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "status must be one of approved, declined, completed", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchange(rec))
}

// PatchTransit confirms warehouse receipt of the shipped item.
func (h *AdminExchangeHandler) PatchTransit(c *gin.Context) {
	var payload request.TransitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExchangePayload.HTTPStatus, errInvalidExchangePayload.ToHTTPError())
		return
	}
	if err := payload.ResolveReceived(); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "transitStatus must be received", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rec, err := h.usecase.MarkReceived(c.Request.Context(), middleware.CallerID(c), c.Param("id"), payload.Note)
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExchange(rec))
}

// AssignCredit sets the loyalty-point amount and posts it to the external
// ledger. A gateway failure after the local assignment still answers 200, with
// the warning carried in the body so the operator can retry the posting.
func (h *AdminExchangeHandler) AssignCredit(c *gin.Context) {
	var payload request.AssignCreditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExchangePayload.HTTPStatus, errInvalidExchangePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.AssignCredit(c.Request.Context(), middleware.CallerID(c), c.Param("id"), *payload.CreditAmount, payload.Note)
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if res.Outcome == usecase.CreditAppliedWithWarning {
		log.Warn().Str("exchange_id", res.Exchange.ID).Str("warning", res.GatewayWarning).Msg("credit assigned with gateway warning")
	}
	c.JSON(http.StatusOK, response.FromCreditAssignment(res.Exchange, string(res.Outcome), res.GatewayWarning))
}

// Delete removes an exchange request from the admin console.
func (h *AdminExchangeHandler) Delete(c *gin.Context) {
	if err := h.usecase.AdminDelete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func resolveStatusFilter(raw string) (entities.ExchangeStatus, bool) {
	switch entities.ExchangeStatus(raw) {
	case "", entities.ExchangeStatusPending, entities.ExchangeStatusApproved,
		entities.ExchangeStatusDeclined, entities.ExchangeStatusCompleted:
		return entities.ExchangeStatus(raw), true
	default:
		return "", false
	}
}

package handlers

import (
	"net/http"

	response "swapcred/internal/adapter/http/dto/response"
	"swapcred/internal/adapter/http/middleware"
	"swapcred/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CreditHandler handles the credit-ledger read endpoints.
type CreditHandler struct {
	usecase usecase.ICreditUseCase
}

func NewCreditHandler(uc usecase.ICreditUseCase) *CreditHandler {
	return &CreditHandler{usecase: uc}
}

// History returns the admin audit trail; ?userId= narrows to one customer.
func (h *CreditHandler) History(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), middleware.CallerID(c), c.Query("userId"))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditLedgerEntries(entries))
}

// Balance returns the caller's store-credit balance from the external ledger.
func (h *CreditHandler) Balance(c *gin.Context) {
	bal, err := h.usecase.Balance(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		appErr := mapExchangeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditBalance(bal))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/pagination"
	"stockdex/internal/services"
)

// ExchangeHandler handles exchange reads.
type ExchangeHandler struct {
	exchanges services.ExchangeServicer
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(exchanges services.ExchangeServicer) *ExchangeHandler {
	return &ExchangeHandler{exchanges: exchanges}
}

// ListExchanges lists all exchanges.
// @Summary     List exchanges
// @Tags        exchanges
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} pagination.PageResponse[models.Exchange]
// @Router      /exchanges [get]
func (h *ExchangeHandler) ListExchanges(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	result, err := h.exchanges.ListExchanges(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExchange retrieves one exchange.
// @Summary     Get an exchange
// @Tags        exchanges
// @Produce     json
// @Param       id path string true "Exchange ID"
// @Security    BearerAuth
// @Success     200 {object} models.Exchange
// @Failure     404 {object} apperrors.AppError
// @Router      /exchanges/{id} [get]
func (h *ExchangeHandler) GetExchange(c *gin.Context) {
	exchangeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	exchange, err := h.exchanges.GetExchangeByID(exchangeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, exchange)
}

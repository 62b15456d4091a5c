package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/pagination"
	"stockdex/internal/services"
)

// StockHandler handles stock reads and per-stock activity reports.
type StockHandler struct {
	stocks  services.StockServicer
	queries services.QueryServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stocks services.StockServicer, queries services.QueryServicer) *StockHandler {
	return &StockHandler{stocks: stocks, queries: queries}
}

// ListStocks lists the stocks in the caller's exchange.
// @Summary     List stocks
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} pagination.PageResponse[models.Stock]
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	result, err := h.stocks.ListStocks(user.ExchangeID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStock retrieves one stock with its lifetime counters.
// @Summary     Get a stock
// @Tags        stocks
// @Produce     json
// @Param       id path string true "Stock ID"
// @Security    BearerAuth
// @Success     200 {object} models.Stock
// @Failure     404 {object} apperrors.AppError
// @Router      /stocks/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	stock, err := h.stocks.GetStockByID(stockID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// A stock in another exchange does not exist as far as this caller
	// is concerned.
	if stock.ExchangeID != user.ExchangeID {
		respondWithError(c, apperrors.ErrStockNotFound)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// GetStockActivity lists a stock's day buckets within a window.
// @Summary     Get a stock's daily activity
// @Tags        stocks
// @Produce     json
// @Param       id     path  string true  "Stock ID"
// @Param       window query string false "today, week, month, year, or lifetime"
// @Security    BearerAuth
// @Success     200 {object} pagination.PageResponse[models.StockDayActivity]
// @Router      /stocks/{id}/activity [get]
func (h *StockHandler) GetStockActivity(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	w, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	result, err := h.queries.ListDayActivity(user.ExchangeID, stockID, w, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/middleware"
	"stockdex/internal/pagination"
	"stockdex/internal/services"
)

// VoteHandler handles vote casting and vote log queries.
type VoteHandler struct {
	ledger  services.LedgerServicer
	queries services.QueryServicer
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(ledger services.LedgerServicer, queries services.QueryServicer) *VoteHandler {
	return &VoteHandler{ledger: ledger, queries: queries}
}

// CastVoteRequest represents the request payload for casting a vote.
// Direction is optional when the rating's sign already implies it. The
// rating is a hint: out-of-range magnitudes are clamped by the ledger, so
// no bounds are enforced here.
type CastVoteRequest struct {
	Direction string   `json:"direction" binding:"omitempty,vote_direction"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment" binding:"max=2000"`
	Labels    []string `json:"labels" binding:"omitempty,dive,min=1,max=64"`
}

// CastVote casts a vote for a stock.
// The token is handed to the ledger rather than resolved by middleware so
// the engine controls the validation order and the cross-tenant signal.
// @Summary     Cast a vote
// @Description Cast an up or down vote with an optional rating, comment, and labels
// @Tags        votes
// @Accept      json
// @Produce     json
// @Param       id      path     string          true "Stock ID"
// @Param       request body     CastVoteRequest true "Vote"
// @Security    BearerAuth
// @Success     201 {object} models.Vote
// @Failure     400 {object} apperrors.AppError
// @Failure     404 {object} apperrors.AppError
// @Router      /stocks/{id}/votes [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	vote, err := h.ledger.CastVote(services.VoteRequest{
		StockID:   stockID,
		Token:     middleware.BearerToken(c),
		Comment:   req.Comment,
		Direction: req.Direction,
		Rating:    req.Rating,
		Labels:    req.Labels,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vote)
}

// ListVotes lists votes in the caller's exchange within a window.
// @Summary     List votes
// @Tags        votes
// @Produce     json
// @Param       window query string false "today, week, month, year, or lifetime"
// @Security    BearerAuth
// @Success     200 {object} pagination.PageResponse[models.Vote]
// @Router      /votes [get]
func (h *VoteHandler) ListVotes(c *gin.Context) {
	h.listVotes(c, "")
}

// ListStockVotes lists votes for one stock within a window.
// @Summary     List votes for a stock
// @Tags        votes
// @Produce     json
// @Param       id     path  string true  "Stock ID"
// @Param       window query string false "today, week, month, year, or lifetime"
// @Security    BearerAuth
// @Success     200 {object} pagination.PageResponse[models.Vote]
// @Router      /stocks/{id}/votes [get]
func (h *VoteHandler) ListStockVotes(c *gin.Context) {
	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.listVotes(c, stockID)
}

func (h *VoteHandler) listVotes(c *gin.Context, stockID string) {
	user, err := getUser(c)
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

	result, err := h.queries.ListVotes(user.ExchangeID, stockID, w, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

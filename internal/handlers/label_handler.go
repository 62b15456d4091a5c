package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/pagination"
	"stockdex/internal/services"
)

// LabelHandler handles vote label reads.
type LabelHandler struct {
	labels services.LabelServicer
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labels services.LabelServicer) *LabelHandler {
	return &LabelHandler{labels: labels}
}

// ListVoteLabels lists the global vote label taxonomy.
// @Summary     List vote labels
// @Tags        labels
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} pagination.PageResponse[models.VoteLabel]
// @Router      /vote-labels [get]
func (h *LabelHandler) ListVoteLabels(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	result, err := h.labels.ListVoteLabels(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user-facing identity requests.
type UserHandler struct{}

// NewUserHandler creates a new UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile returns the authenticated user.
// @Summary     Get the authenticated user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.User
// @Router      /profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

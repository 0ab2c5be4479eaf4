package handlers

import (
	"net/http"

	"bluerobins/middleware"
	"bluerobins/models"
	"bluerobins/services/user"
	"bluerobins/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account profile access.
type UserHandler struct {
	users user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{users: svc}
}

// Me returns the authenticated caller's own account.
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	profile, err := h.users.GetProfile(id.UserID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var updates models.User
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	profile, err := h.users.UpdateProfile(id, updates)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

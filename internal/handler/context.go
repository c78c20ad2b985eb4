package handler

import (
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUser loads the authenticated user's profile from the id the auth
// middleware put in the context. Aborts the request on failure.
func currentUser(c *gin.Context, users repository.UserRepository) (*model.User, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return nil, false
	}

	idStr, ok := userID.(string)
	if !ok || idStr == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid User ID format"))
		return nil, false
	}

	user, err := users.GetByID(c.Request.Context(), idStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User not found"))
		return nil, false
	}
	return user, true
}

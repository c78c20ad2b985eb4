package handler

import (
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PresenceHandler struct {
	presence *service.PresenceTracker
}

// NewPresenceHandler sets up the routing dependencies for presence endpoints
func NewPresenceHandler(presence *service.PresenceTracker) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *PresenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	presence := router.Group("/presence", middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		presence.POST("/heartbeat", h.Heartbeat)
		presence.GET("", h.OnlineUsers)
	}
}

// Heartbeat handles POST /presence/heartbeat refreshing the caller's liveness stamp
// @Summary      Heartbeat
// @Description  Refreshes the caller's last_active stamp. Clients send this every 30 seconds.
// @Tags         presence
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /presence/heartbeat [post]
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	userID, _ := c.Get("userID")
	idStr, ok := userID.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	if err := h.presence.Heartbeat(c.Request.Context(), idStr); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to record heartbeat"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"status": "alive"}))
}

// OnlineUsers handles GET /presence returning the derived id -> online map
// @Summary      Online users
// @Description  Derived presence per user: online iff flagged online and the last heartbeat is under the threshold.
// @Tags         presence
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /presence [get]
func (h *PresenceHandler) OnlineUsers(c *gin.Context) {
	online, err := h.presence.OnlineUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, online))
}

package handler

import (
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService service.NotificationService
	userRepo            repository.UserRepository
}

// NewNotificationHandler sets up the routing dependencies for notification endpoints
func NewNotificationHandler(notificationService service.NotificationService, userRepo repository.UserRepository) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, userRepo: userRepo}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.POST("", middleware.RequireRole(model.RoleAdmin), h.Send)
		notifications.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleUser), h.Inbox)
		notifications.POST("/read-all", middleware.RequireRole(model.RoleAdmin, model.RoleUser), h.MarkAllRead)
	}
}

// Send handles POST /notifications (admin only)
// @Summary      Send a notification
// @Description  Writes a message into one recipient's inbox and pushes it to their live subscription.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SendNotificationRequest  true  "Message Payload"
// @Success      201      {object}  response.Response{data=model.NotificationMessage}
// @Failure      400      {object}  response.Response
// @Router       /notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	sender, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	var req service.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	msg, err := h.notificationService.Send(c.Request.Context(), sender, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, msg))
}

// Inbox handles GET /notifications for the caller
// @Summary      List notifications
// @Description  The caller's inbox, newest first, with the unread count.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.InboxResponse}
// @Failure      500  {object}  response.Response
// @Router       /notifications [get]
func (h *NotificationHandler) Inbox(c *gin.Context) {
	user, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	inbox, err := h.notificationService.Inbox(c.Request.Context(), user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, inbox))
}

// MarkAllRead handles POST /notifications/read-all for the caller's inbox
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	user, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), user.ID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "inbox marked read"}))
}

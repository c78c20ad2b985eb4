package handler

import (
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
	userRepo         repository.UserRepository
}

// NewInventoryHandler sets up the routing dependencies for inventory endpoints
func NewInventoryHandler(inventoryService service.InventoryService, userRepo repository.UserRepository) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, userRepo: userRepo}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory", middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		inventory.POST("", h.Create)
		inventory.GET("", h.List)
	}
}

// Create handles POST /inventory appending a stock count
// @Summary      Register inventory
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateInventoryRequest  true  "Inventory Payload"
// @Success      201      {object}  response.Response{data=model.InventoryRecord}
// @Failure      400      {object}  response.Response
// @Router       /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	author, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	var req service.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rec, err := h.inventoryService.CreateRecord(c.Request.Context(), author, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rec))
}

// List handles GET /inventory
// @Summary      List inventory records
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page"
// @Param        limit  query     int  false  "Limit"
// @Success      200    {object}  response.Response{data=response.Paginated}
// @Failure      500    {object}  response.Response
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	viewer, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	params := pagination.Parse(c)
	records, total, err := h.inventoryService.ListRecords(c.Request.Context(), viewer, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessPage(http.StatusOK, records, total, params.Page, params.Limit))
}

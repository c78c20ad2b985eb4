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

type SalesHandler struct {
	salesService service.SalesService
	userRepo     repository.UserRepository
}

// NewSalesHandler sets up the routing dependencies for sales endpoints
func NewSalesHandler(salesService service.SalesService, userRepo repository.UserRepository) *SalesHandler {
	return &SalesHandler{salesService: salesService, userRepo: userRepo}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales", middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
	}
}

// Create handles POST /sales appending a new ledger entry
// @Summary      Record daily sales
// @Description  Appends a sale with its line items; the total is computed server-side. No update or delete exists.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateSaleRequest  true  "Sale Payload"
// @Success      201      {object}  response.Response{data=model.SaleRecord}
// @Failure      400      {object}  response.Response
// @Router       /sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	author, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	sale, err := h.salesService.CreateSale(c.Request.Context(), author, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, sale))
}

// List handles GET /sales
// @Summary      List sales
// @Description  Own records, or everyone's for admins and holders of show_all_sales. Newest first.
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page"
// @Param        limit  query     int  false  "Limit"
// @Success      200    {object}  response.Response{data=response.Paginated}
// @Failure      500    {object}  response.Response
// @Router       /sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	viewer, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	params := pagination.Parse(c)
	sales, total, err := h.salesService.ListSales(c.Request.Context(), viewer, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessPage(http.StatusOK, sales, total, params.Page, params.Limit))
}

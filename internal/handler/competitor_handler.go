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

type CompetitorHandler struct {
	competitorService service.CompetitorService
	userRepo          repository.UserRepository
}

// NewCompetitorHandler sets up the routing dependencies for competitor price endpoints
func NewCompetitorHandler(competitorService service.CompetitorService, userRepo repository.UserRepository) *CompetitorHandler {
	return &CompetitorHandler{competitorService: competitorService, userRepo: userRepo}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *CompetitorHandler) RegisterRoutes(router *gin.RouterGroup) {
	prices := router.Group("/competitor-prices", middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		prices.POST("", h.Create)
		prices.GET("", h.List)
	}
}

// Create handles POST /competitor-prices appending an observation
// @Summary      Record competitor prices
// @Tags         competitor-prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateCompetitorRequest  true  "Competitor Price Payload"
// @Success      201      {object}  response.Response{data=model.CompetitorPriceRecord}
// @Failure      400      {object}  response.Response
// @Router       /competitor-prices [post]
func (h *CompetitorHandler) Create(c *gin.Context) {
	author, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	var req service.CreateCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rec, err := h.competitorService.CreateRecord(c.Request.Context(), author, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rec))
}

// List handles GET /competitor-prices
// @Summary      List competitor price reports
// @Tags         competitor-prices
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page"
// @Param        limit  query     int  false  "Limit"
// @Success      200    {object}  response.Response{data=response.Paginated}
// @Failure      500    {object}  response.Response
// @Router       /competitor-prices [get]
func (h *CompetitorHandler) List(c *gin.Context) {
	viewer, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	params := pagination.Parse(c)
	records, total, err := h.competitorService.ListRecords(c.Request.Context(), viewer, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessPage(http.StatusOK, records, total, params.Page, params.Limit))
}

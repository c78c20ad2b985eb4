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

type ReferenceHandler struct {
	referenceService service.ReferenceService
	userRepo         repository.UserRepository
}

// NewReferenceHandler sets up the routing dependencies for market/company endpoints
func NewReferenceHandler(referenceService service.ReferenceService, userRepo repository.UserRepository) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService, userRepo: userRepo}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.RequireRole(model.RoleAdmin, model.RoleUser)

	markets := router.Group("/markets", authed)
	{
		markets.GET("", h.ListMarkets)
		markets.POST("", h.AddMarket)
	}

	companies := router.Group("/companies", authed)
	{
		companies.GET("", h.ListCompanies)
		companies.POST("", h.AddCompany)
	}
}

// ListMarkets handles GET /markets with per-user visibility filtering
// @Summary      List markets
// @Description  Defaults plus the caller's own contributions; admins see everything.
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Market}
// @Failure      500  {object}  response.Response
// @Router       /markets [get]
func (h *ReferenceHandler) ListMarkets(c *gin.Context) {
	viewer, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	markets, err := h.referenceService.ListMarkets(c.Request.Context(), viewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, markets))
}

// AddMarket handles POST /markets
// @Summary      Add a market
// @Tags         reference
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AddReferenceRequest  true  "Market Payload"
// @Success      201      {object}  response.Response{data=model.Market}
// @Failure      400      {object}  response.Response
// @Router       /markets [post]
func (h *ReferenceHandler) AddMarket(c *gin.Context) {
	caller, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	var req service.AddReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	market, err := h.referenceService.AddMarket(c.Request.Context(), caller, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, market))
}

// ListCompanies handles GET /companies with per-user visibility filtering
// @Summary      List companies
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Company}
// @Failure      500  {object}  response.Response
// @Router       /companies [get]
func (h *ReferenceHandler) ListCompanies(c *gin.Context) {
	viewer, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	companies, err := h.referenceService.ListCompanies(c.Request.Context(), viewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, companies))
}

// AddCompany handles POST /companies
// @Summary      Add a company
// @Tags         reference
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.AddReferenceRequest  true  "Company Payload"
// @Success      201      {object}  response.Response{data=model.Company}
// @Failure      400      {object}  response.Response
// @Router       /companies [post]
func (h *ReferenceHandler) AddCompany(c *gin.Context) {
	caller, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	var req service.AddReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	company, err := h.referenceService.AddCompany(c.Request.Context(), caller, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, company))
}

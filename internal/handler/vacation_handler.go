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

type VacationHandler struct {
	vacationService service.VacationService
	userRepo        repository.UserRepository
}

// NewVacationHandler sets up the routing dependencies for vacation endpoints
func NewVacationHandler(vacationService service.VacationService, userRepo repository.UserRepository) *VacationHandler {
	return &VacationHandler{vacationService: vacationService, userRepo: userRepo}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *VacationHandler) RegisterRoutes(router *gin.RouterGroup) {
	vacations := router.Group("/vacations", middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		vacations.POST("", h.Create)
		vacations.GET("", h.List)
		vacations.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), h.Delete)
	}
}

// Create handles POST /vacations logging a leave entry
// @Summary      Log a vacation
// @Description  Files a leave request. Admins may file for any user. The profile balance is not deducted automatically.
// @Tags         vacations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateVacationRequest  true  "Vacation Payload"
// @Success      201      {object}  response.Response{data=model.VacationRequest}
// @Failure      400      {object}  response.Response
// @Router       /vacations [post]
func (h *VacationHandler) Create(c *gin.Context) {
	caller, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	var req service.CreateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	vacation, err := h.vacationService.Create(c.Request.Context(), caller, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, vacation))
}

// List handles GET /vacations for the running pay period
// @Summary      List vacations
// @Description  Entries inside the current 21st-to-20th pay period. Non-admins see only their own.
// @Tags         vacations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.VacationListResponse}
// @Failure      500  {object}  response.Response
// @Router       /vacations [get]
func (h *VacationHandler) List(c *gin.Context) {
	viewer, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	list, err := h.vacationService.ListCurrentPeriod(c.Request.Context(), viewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}

// Delete handles DELETE /vacations/:id (admin only)
// @Summary      Delete a vacation
// @Tags         vacations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vacation ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacations/{id} [delete]
func (h *VacationHandler) Delete(c *gin.Context) {
	caller, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}

	if err := h.vacationService.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "vacation deleted"}))
}

package handler

import (
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	backupService service.BackupService
}

// NewAdminHandler sets up the routing dependencies for admin endpoints
func NewAdminHandler(backupService service.BackupService) *AdminHandler {
	return &AdminHandler{backupService: backupService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/backup", h.Backup)
		admin.POST("/restore", h.Restore)
	}
}

// Backup handles GET /admin/backup, streaming the full-store snapshot as a download
// @Summary      Download backup
// @Description  Serializes the whole store into a single JSON document. Blocking read, no incremental export.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.Response
// @Router       /admin/backup [get]
func (h *AdminHandler) Backup(c *gin.Context) {
	snapshot, err := h.backupService.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	filename := fmt.Sprintf("softrose_backup_%d.json", time.Now().UnixMilli())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, snapshot)
}

// Restore is a stub: the restore path was never specified and is not
// implemented. The endpoint exists so the UI affordance has somewhere to go.
// @Summary      Restore backup (not implemented)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Failure      501  {object}  response.Response
// @Router       /admin/restore [post]
func (h *AdminHandler) Restore(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, response.Error(http.StatusNotImplemented, "restore is not implemented"))
}

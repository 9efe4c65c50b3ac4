package handlers

import (
	"net/http"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
	authMW       gin.HandlerFunc
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, authMW gin.HandlerFunc) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
		authMW:       authMW,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(h.authMW, middleware.RequireRoles(models.ActorRoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)
	}

	// Sub admin management is the super admin's alone.
	super := r.Group("/admin/sub-admins")
	super.Use(h.authMW, middleware.RequireSuperAdmin())
	{
		super.GET("", h.ListSubAdmins)
		super.POST("", h.CreateSubAdmin)
		super.PUT("/:id", h.UpdateSubAdmin)
		super.DELETE("/:id", h.DeleteSubAdmin)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.adminService.DashboardCounts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *AdminHandler) ListSubAdmins(c *gin.Context) {
	admins, err := h.adminService.ListSubAdmins()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sub_admins": admins})
}

func (h *AdminHandler) CreateSubAdmin(c *gin.Context) {
	var req dto.CreateSubAdminRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	admin, err := h.adminService.CreateSubAdmin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func (h *AdminHandler) UpdateSubAdmin(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateSubAdminRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	admin, err := h.adminService.UpdateSubAdmin(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *AdminHandler) DeleteSubAdmin(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.DeleteSubAdmin(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

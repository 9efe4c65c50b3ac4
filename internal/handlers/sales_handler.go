package handlers

import (
	"net/http"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	*BaseHandler
	salesService services.SalesExecutiveService
	authMW       gin.HandlerFunc
}

func NewSalesHandler(base *BaseHandler, salesService services.SalesExecutiveService, authMW gin.HandlerFunc) *SalesHandler {
	return &SalesHandler{
		BaseHandler:  base,
		salesService: salesService,
		authMW:       authMW,
	}
}

func (h *SalesHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sales/register", h.Register)

	self := r.Group("/sales")
	self.Use(h.authMW, middleware.RequireRoles(models.ActorRoleSales))
	{
		self.GET("/me", h.GetProfile)
	}

	admin := r.Group("/admin/sales")
	admin.Use(h.authMW, middleware.RequireRoles(models.ActorRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.GET("/:id", h.Get)
		admin.GET("/:id/vendors", h.VendorsRegisteredBy)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id/verify", h.Verify)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *SalesHandler) Register(c *gin.Context) {
	var req dto.RegisterSalesExecutiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	executive, err := h.salesService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, executive)
}

func (h *SalesHandler) GetProfile(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	executive, err := h.salesService.GetByID(principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, executive)
}

func (h *SalesHandler) ListAll(c *gin.Context) {
	executives, err := h.salesService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales_executives": executives})
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	executive, err := h.salesService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, executive)
}

func (h *SalesHandler) VendorsRegisteredBy(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	vendors, err := h.salesService.VendorsRegisteredBy(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *SalesHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateSalesExecutiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	executive, err := h.salesService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, executive)
}

func (h *SalesHandler) Verify(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req struct {
		Verified bool `json:"verified"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.salesService.SetVerified(id, req.Verified); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *SalesHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.salesService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

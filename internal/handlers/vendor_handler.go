package handlers

import (
	"net/http"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	*BaseHandler
	vendorService services.VendorService
	ratingService services.RatingService
	authMW        gin.HandlerFunc
}

func NewVendorHandler(base *BaseHandler, vendorService services.VendorService, ratingService services.RatingService, authMW gin.HandlerFunc) *VendorHandler {
	return &VendorHandler{
		BaseHandler:   base,
		vendorService: vendorService,
		ratingService: ratingService,
		authMW:        authMW,
	}
}

func (h *VendorHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public directory browsing: only verified vendors are visible.
	public := r.Group("/vendors")
	{
		public.GET("", h.SearchPublic)
		public.GET("/:id", h.Get)
		public.GET("/:id/ratings", h.ListRatings)
		public.POST("/register", h.RegisterPublicSignup)
	}

	// Vendor self-service.
	self := r.Group("/vendors")
	self.Use(h.authMW, middleware.RequireRoles(models.ActorRoleVendor))
	{
		self.PUT("/me", h.UpdateSelf)
	}

	// Sales executives register vendors in the field.
	sales := r.Group("/sales/vendors")
	sales.Use(h.authMW, middleware.RequireRoles(models.ActorRoleSales))
	{
		sales.POST("", h.CreateBySales)
		sales.GET("", h.ListBySales)
	}

	// Admin management.
	admin := r.Group("/admin/vendors")
	admin.Use(h.authMW, middleware.RequireRoles(models.ActorRoleAdmin))
	{
		admin.GET("", h.SearchAdmin)
		admin.POST("", h.CreateByAdmin)
		admin.PUT("/:id", h.UpdateByAdmin)
		admin.PATCH("/:id/verify", h.Verify)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *VendorHandler) SearchPublic(c *gin.Context) {
	var req dto.VendorSearchRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	vendors, err := h.vendorService.Search(&req, true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *VendorHandler) SearchAdmin(c *gin.Context) {
	var req dto.VendorSearchRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	vendors, err := h.vendorService.Search(&req, false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *VendorHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var viewerID *uint
	if principal := middleware.GetPrincipal(c); principal != nil && principal.Role == models.ActorRoleUser {
		viewerID = &principal.ID
	}

	resp, err := h.vendorService.GetByID(id, viewerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorHandler) ListRatings(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	ratings, err := h.ratingService.ListForVendor(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (h *VendorHandler) RegisterPublicSignup(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.Create(&req, models.VendorOriginSelf, nil)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) CreateByAdmin(c *gin.Context) {
	var req dto.CreateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.Create(&req, models.VendorOriginAdmin, nil)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) CreateBySales(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.Create(&req, models.VendorOriginSales, &principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) ListBySales(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	req := dto.VendorSearchRequest{
		Source:  string(models.VendorOriginSales),
		SalesID: &principal.ID,
	}
	vendors, err := h.vendorService.Search(&req, false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *VendorHandler) UpdateSelf(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.UpdatePublic(principal.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) UpdateByAdmin(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.UpdateAdmin(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) Verify(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.VerifyVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.vendorService.SetVerified(id, req.Verified); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.vendorService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

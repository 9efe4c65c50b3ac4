package handlers

import (
	"net/http"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
	authMW         gin.HandlerFunc
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService, authMW gin.HandlerFunc) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		authMW:         authMW,
	}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("")
	{
		public.GET("/categories", h.ListCategories)
		public.GET("/categories/:id/subcategories", h.ListSubcategories)
		public.GET("/states", h.ListStates)
		public.GET("/states/:state/cities", h.ListCities)
	}

	admin := r.Group("/admin")
	admin.Use(h.authMW, middleware.RequireRoles(models.ActorRoleAdmin))
	{
		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.POST("/subcategories", h.CreateSubcategory)
		admin.PUT("/subcategories/:id", h.UpdateSubcategory)
		admin.DELETE("/subcategories/:id", h.DeleteSubcategory)
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) ListSubcategories(c *gin.Context) {
	categoryID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	subcategories, err := h.catalogService.ListSubcategories(categoryID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": subcategories})
}

func (h *CatalogHandler) ListStates(c *gin.Context) {
	states, err := h.catalogService.ListStates()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": states})
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	state := c.Param("state")
	cities, err := h.catalogService.ListCities(state)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalogService.UpdateCategory(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.DeleteCategory(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *CatalogHandler) CreateSubcategory(c *gin.Context) {
	var req dto.CreateSubcategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	subcategory, err := h.catalogService.CreateSubcategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subcategory)
}

func (h *CatalogHandler) UpdateSubcategory(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateSubcategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	subcategory, err := h.catalogService.UpdateSubcategory(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (h *CatalogHandler) DeleteSubcategory(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.catalogService.DeleteSubcategory(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

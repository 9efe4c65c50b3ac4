package handlers

import (
	"net/http"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
	authMW         gin.HandlerFunc
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService, authMW gin.HandlerFunc) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
		authMW:         authMW,
	}
}

func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("")
	{
		public.GET("/pages/:key", h.GetPage)
		public.GET("/sliders", h.ListSliders)
		public.POST("/feedback", h.SubmitFeedback)
	}

	admin := r.Group("/admin")
	admin.Use(h.authMW, middleware.RequireRoles(models.ActorRoleAdmin))
	{
		admin.GET("/pages", h.ListPages)
		admin.GET("/pages/:key", h.GetPageAdmin)
		admin.PUT("/pages", h.UpsertPage)

		admin.POST("/sliders", h.AddSlider)
		admin.PUT("/sliders/:id", h.UpdateSlider)
		admin.DELETE("/sliders/:id", h.DeleteSlider)

		admin.GET("/feedback", h.ListFeedback)
		admin.PATCH("/feedback/:id", h.UpdateFeedback)
	}
}

func (h *ContentHandler) GetPage(c *gin.Context) {
	page, err := h.contentService.GetPage(c.Param("key"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetPageAdmin opens a page in the editor, creating an empty row on the
// first visit to a new key.
func (h *ContentHandler) GetPageAdmin(c *gin.Context) {
	page, err := h.contentService.GetOrCreatePage(c.Param("key"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ContentHandler) ListPages(c *gin.Context) {
	pages, err := h.contentService.ListPages()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *ContentHandler) UpsertPage(c *gin.Context) {
	var req dto.UpsertPageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	page, err := h.contentService.UpsertPage(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ContentHandler) ListSliders(c *gin.Context) {
	sliders, err := h.contentService.ListSliders()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sliders": sliders})
}

func (h *ContentHandler) AddSlider(c *gin.Context) {
	var req struct {
		ImagePath string `json:"image_path" validate:"required,max=255"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	slider, err := h.contentService.AddSlider(req.ImagePath)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slider)
}

func (h *ContentHandler) UpdateSlider(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req struct {
		ImagePath string `json:"image_path" validate:"required,max=255"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	slider, err := h.contentService.UpdateSlider(id, req.ImagePath)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slider)
}

func (h *ContentHandler) DeleteSlider(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.contentService.DeleteSlider(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *ContentHandler) SubmitFeedback(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	// Logged-in users get linked to their submission; anonymous is fine.
	var userID *uint
	if principal := middleware.GetPrincipal(c); principal != nil && principal.Role == models.ActorRoleUser {
		userID = &principal.ID
	}

	feedback, err := h.contentService.SubmitFeedback(&req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func (h *ContentHandler) ListFeedback(c *gin.Context) {
	var req dto.FeedbackListRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	feedback, total, err := h.contentService.ListFeedback(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback, "total": total})
}

func (h *ContentHandler) UpdateFeedback(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contentService.UpdateFeedback(id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

package handlers

import (
	"net/http"

	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"
	"cityinbox_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
	authMW        gin.HandlerFunc
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, authMW gin.HandlerFunc) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		authMW:        authMW,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(h.authMW, middleware.RequireRoles(
		models.ActorRoleAdmin,
		models.ActorRoleVendor,
		models.ActorRoleSales,
	))
	{
		uploads.POST("/:kind", h.Upload)
	}
}

// Upload accepts one multipart file under the "file" field and stores
// it in the folder for the given kind.
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing multipart field 'file'"))
		return
	}

	result, err := h.uploadService.UploadFile(c.Request.Context(), kind, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

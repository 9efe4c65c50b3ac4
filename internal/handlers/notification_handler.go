package handlers

import (
	"net/http"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
	authMW              gin.HandlerFunc
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService, authMW gin.HandlerFunc) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		authMW:              authMW,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// User inbox.
	inbox := r.Group("/notifications")
	inbox.Use(h.authMW, middleware.RequireRoles(models.ActorRoleUser))
	{
		inbox.GET("", h.Feed)
		inbox.GET("/count", h.UnseenCount)
		inbox.POST("/seen", h.MarkSeen)
	}

	// Admin broadcast management.
	admin := r.Group("/admin/notifications")
	admin.Use(h.authMW, middleware.RequireRoles(models.ActorRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Edit)
		admin.DELETE("/:id", h.Delete)
	}
}

// Create stores the broadcast and fans it out; pushes go out in the
// background after the response.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	notification, err := h.notificationService.CreateAndFanOut(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// Edit updates the broadcast and waits for the push round, returning
// the per-token outcome.
func (h *NotificationHandler) Edit(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateNotificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	summary, err := h.notificationService.EditAndRedispatch(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *NotificationHandler) ListAll(c *gin.Context) {
	notifications, err := h.notificationService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *NotificationHandler) Feed(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	feed, err := h.notificationService.FeedForUser(principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (h *NotificationHandler) UnseenCount(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnseenCount(principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *NotificationHandler) MarkSeen(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.MarkSeenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	marked, err := h.notificationService.MarkSeen(principal.ID, req.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MarkSeenResponse{Marked: marked})
}

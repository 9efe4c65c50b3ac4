package handlers

import (
	"net/http"

	"cityinbox_backend/internal/dto"
	"cityinbox_backend/internal/middleware"
	"cityinbox_backend/internal/models"
	"cityinbox_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService     services.UserService
	authService     services.AuthService
	bookmarkService services.BookmarkService
	ratingService   services.RatingService
	authMW          gin.HandlerFunc
}

func NewUserHandler(
	base *BaseHandler,
	userService services.UserService,
	authService services.AuthService,
	bookmarkService services.BookmarkService,
	ratingService services.RatingService,
	authMW gin.HandlerFunc,
) *UserHandler {
	return &UserHandler{
		BaseHandler:     base,
		userService:     userService,
		authService:     authService,
		bookmarkService: bookmarkService,
		ratingService:   ratingService,
		authMW:          authMW,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(h.authMW, middleware.RequireRoles(models.ActorRoleUser))
	{
		users.GET("/me", h.GetProfile)
		users.PUT("/me", h.UpdateProfile)
		users.PUT("/me/password", h.ChangePassword)
		users.PUT("/me/device-token", h.RegisterDeviceToken)

		users.GET("/me/bookmarks", h.ListBookmarks)
		users.POST("/me/bookmarks", h.AddBookmark)
		users.DELETE("/me/bookmarks/:vendorId", h.RemoveBookmark)

		users.POST("/me/ratings", h.RateVendor)
		users.DELETE("/me/ratings/:vendorId", h.DeleteRating)
	}

	admin := r.Group("/admin/users")
	admin.Use(h.authMW, middleware.RequireRoles(models.ActorRoleAdmin))
	{
		admin.GET("", h.ListAll)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(principal.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ChangeUserPassword(principal.ID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *UserHandler) RegisterDeviceToken(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.DeviceTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.RegisterDeviceToken(principal.ID, req.DeviceToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *UserHandler) ListBookmarks(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	vendors, err := h.bookmarkService.List(principal.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *UserHandler) AddBookmark(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.BookmarkRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.bookmarkService.Add(principal.ID, req.VendorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *UserHandler) RemoveBookmark(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	vendorID, err := ParseParamID(c, "vendorId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.bookmarkService.Remove(principal.ID, vendorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *UserHandler) RateVendor(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.RateVendorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rating, err := h.ratingService.Rate(principal.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *UserHandler) DeleteRating(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	vendorID, err := ParseParamID(c, "vendorId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.ratingService.Delete(principal.ID, vendorID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.userService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

package handlers

// AppHandlers bundles every handler the router mounts.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	VendorHandler       *VendorHandler
	NotificationHandler *NotificationHandler
	CatalogHandler      *CatalogHandler
	ContentHandler      *ContentHandler
	SalesHandler        *SalesHandler
	AdminHandler        *AdminHandler
	UploadHandler       *UploadHandler
}

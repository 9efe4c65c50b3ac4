package models

// AdminRole distinguishes the super admin from section-scoped sub admins.
type AdminRole string

const (
	AdminRoleSuper AdminRole = "super_admin"
	AdminRoleSub   AdminRole = "sub_admin"
)

// ActorRole is the principal type carried in auth tokens.
type ActorRole string

const (
	ActorRoleAdmin  ActorRole = "admin"
	ActorRoleUser   ActorRole = "user"
	ActorRoleVendor ActorRole = "vendor"
	ActorRoleSales  ActorRole = "sales_executive"
)

// VendorOrigin records which path created a vendor row.
type VendorOrigin string

const (
	VendorOriginAdmin VendorOrigin = "admin"
	VendorOriginSales VendorOrigin = "sales_executive"
	VendorOriginSelf  VendorOrigin = "self"
)

// FeedbackStatus tracks help/feedback triage.
const (
	FeedbackStatusNew        = "new"
	FeedbackStatusInProgress = "in_progress"
	FeedbackStatusResolved   = "resolved"
)

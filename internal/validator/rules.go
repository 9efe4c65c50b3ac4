package validator

import (
	"log"
	"regexp"
	"time"

	"cityinbox_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// registerCustomRules registers the project's validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-vendor-origin", validateVendorOrigin)
	mustRegister("is-admin-role", validateAdminRole)
	mustRegister("is-feedback-status", validateFeedbackStatus)
	mustRegister("is-date", validateDate)
	mustRegister("is-mobile", validateMobile)
}

func validateVendorOrigin(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is for 'required' to catch
	}
	switch models.VendorOrigin(value) {
	case models.VendorOriginAdmin, models.VendorOriginSales, models.VendorOriginSelf:
		return true
	default:
		return false
	}
}

func validateAdminRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.AdminRole(value) {
	case models.AdminRoleSuper, models.AdminRoleSub:
		return true
	default:
		return false
	}
}

func validateFeedbackStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.FeedbackStatusNew, models.FeedbackStatusInProgress, models.FeedbackStatusResolved:
		return true
	default:
		return false
	}
}

// validateDate accepts calendar dates in YYYY-MM-DD form. Values like
// 2024-02-30 do not parse and are rejected.
func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func validateMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return mobilePattern.MatchString(value)
}

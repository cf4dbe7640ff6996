// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailInUse         = "auth.email_in_use"
	KeyAuthEmailPasswordReq   = "auth.email_password_required"
	KeyAuthLoginFailed        = "auth.login_failed"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterFailed     = "auth.register_failed"
	KeyAuthNotAuthenticated   = "auth.not_authenticated"

	// User
	KeyUserNotFound = "user.not_found"

	// Products
	KeyProductNotFound   = "product.not_found"
	KeyProductIDRequired = "product.id_required"

	// Wishlist
	KeyWishlistAdded     = "wishlist.added"
	KeyWishlistRemoved   = "wishlist.removed"
	KeyWishlistDuplicate = "wishlist.duplicate"
	KeyWishlistNotFound  = "wishlist.not_found"

	// Alerts
	KeyAlertCreated  = "alert.created"
	KeyAlertDeleted  = "alert.deleted"
	KeyAlertNotFound = "alert.not_found"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)

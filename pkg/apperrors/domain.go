package apperrors

import (
	"net/http"
)

// Predefined errors for the authentication and screening domain.

// ErrInvalidCredentials is returned for unknown email, wrong password and
// password attempts against federated-only accounts alike. One message for
// all three so responses never reveal whether the email exists.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers malformed, badly signed and expired session tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrFederatedAuthFailed covers every Google credential verification
// failure: bad signature, wrong audience, expired token, verifier timeout.
var ErrFederatedAuthFailed = New(
	CodeFederatedAuthFailed,
	"auth",
	"Google authentication failed",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists maps the users.email unique constraint to 409.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters",
	http.StatusBadRequest,
)

var ErrUserInactive = New(
	CodeForbidden,
	"auth",
	"Account is inactive",
	http.StatusForbidden,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not completed yet",
	http.StatusNotFound,
)

var ErrCategoryNotFound = New(
	CodeNotFound,
	"category",
	"Category not found",
	http.StatusNotFound,
)

var ErrCategoryNameTaken = New(
	CodeAlreadyExists,
	"category",
	"Category name already in use",
	http.StatusConflict,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

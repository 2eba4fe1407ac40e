package apperrors

import "net/http"

// Predefined domain errors. Services return these directly;
// handlers map them to responses via HandleError.

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with this email already exists",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Role must be job_seeker, business or freelancer",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions for this operation",
	http.StatusForbidden,
)

// --- Verification ---

// ErrVerificationDecided guards the pending -> decided transition:
// approve/reject on an already decided request must not re-stamp it.
var ErrVerificationDecided = New(
	CodeConflict,
	"verification",
	"Verification request has already been reviewed",
	http.StatusConflict,
)

var ErrVerificationPendingExists = New(
	CodeConflict,
	"verification",
	"A pending verification request already exists for this user",
	http.StatusConflict,
)

// --- Jobs & applications ---

var ErrJobClosed = New(
	CodeInvalidStatus,
	"job",
	"Job listing is closed",
	http.StatusConflict,
)

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

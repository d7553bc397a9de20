package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/awash-hr/job-portal/internal/domain/account"
	"github.com/awash-hr/job-portal/internal/domain/application"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/domain/promotion"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/jwt"
	"github.com/awash-hr/job-portal/internal/pkg/storage"
	"github.com/awash-hr/job-portal/internal/pkg/validator"
	"github.com/awash-hr/job-portal/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, jwt.ErrWrongTokenType):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAuthenticationRequired):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrStaffAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		NotFound(w, err.Error())
	case errors.Is(err, auth.ErrGoogleEmailNotVerified),
		errors.Is(err, auth.ErrGoogleAccountNotLinked):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrInvalidOAuthState):
		BadRequest(w, err.Error(), nil)

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrUsernameExists):
		Conflict(w, err.Error())
	case errors.Is(err, account.ErrCannotDeleteSelf):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAlreadyRegistered):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrRegisteredEmployeeOnly):
		Forbidden(w, err.Error())

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrVacancyNumberExists),
		errors.Is(err, job.ErrVacancyNumberFinalized):
		Conflict(w, err.Error())
	case errors.Is(err, job.ErrJobNotAcceptingApplicants):
		BadRequest(w, err.Error(), nil)

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrLetterNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, application.ErrAlreadyApplied):
		Conflict(w, err.Error())
	case errors.Is(err, application.ErrNotEligible):
		Forbidden(w, err.Error())

	// Promotion domain errors
	case errors.Is(err, promotion.ErrPromotionCooldown):
		Forbidden(w, err.Error())
	case errors.Is(err, promotion.ErrPromotionInFuture),
		errors.Is(err, promotion.ErrPromotionBeforeLast):
		ValidationError(w, map[string]string{"promoted_at": err.Error()})

	// Roster import errors
	case errors.Is(err, roster.ErrRecordNotFound):
		NotFound(w, "Employee ID not found in the roster")
	case errors.Is(err, roster.ErrUnsupportedFormat),
		errors.Is(err, roster.ErrEmptyRosterFile),
		errors.Is(err, roster.ErrMissingEmployeeID),
		errors.Is(err, roster.ErrMissingFullName),
		errors.Is(err, roster.ErrInvalidRow):
		BadRequest(w, err.Error(), nil)

	// Upload errors
	case errors.Is(err, file.ErrInvalidFileType):
		ValidationError(w, map[string]string{"recommendation_letter": err.Error()})
	case errors.Is(err, file.ErrFileTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "FILE_TOO_LARGE",
				Message: err.Error(),
			},
		})
	case errors.Is(err, storage.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, storage.ErrInvalidPath):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

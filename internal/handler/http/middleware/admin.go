package middleware

import (
	"net/http"

	"github.com/awash-hr/job-portal/internal/handler/http/response"
)

// StaffOnly requires an HR staff identity; mount it after AuthRequired.
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := IdentityFrom(r.Context()).RequireStaff(); err != nil {
			response.HandleError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

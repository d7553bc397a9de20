package http

import (
	"log/slog"
	"net/http"

	"github.com/awash-hr/job-portal/internal/handler/http/middleware"
	"github.com/awash-hr/job-portal/internal/handler/http/response"
	"github.com/awash-hr/job-portal/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Job         JobHandler
	Application ApplicationHandler
	Promotion   PromotionHandler
	Dashboard   DashboardHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Public registration flow
		r.Route("/registration", func(r chi.Router) {
			r.Get("/lookup", h.Employee.LookupForRegistration)
			r.Post("/", h.Employee.Register)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.Employee.GetMyProfile)
				r.Put("/", h.Employee.UpdateMyProfile)
				r.Get("/applications", h.Application.ListMyApplications)
				r.Get("/promotions", h.Promotion.ListMyPromotions)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", h.Job.ListJobs)

				// Staff only
				r.With(middleware.StaffOnly).Post("/", h.Job.CreateJob)

				r.Route("/{jobID}", func(r chi.Router) {
					r.Get("/", h.Job.GetJob)
					r.Post("/apply", h.Application.Apply)

					// Staff only
					r.Group(func(r chi.Router) {
						r.Use(middleware.StaffOnly)
						r.Put("/", h.Job.UpdateJob)
						r.Delete("/", h.Job.DeleteJob)
						r.Post("/deactivate", h.Job.DeactivateJob)
						r.Get("/applications", h.Application.ListApplicationsForJob)
					})
				})
			})

			r.Route("/applications", func(r chi.Router) {
				r.With(middleware.StaffOnly).Get("/", h.Application.ListApplications)
				r.Get("/{applicationID}/recommendation-letter", h.Application.DownloadRecommendationLetter)
			})

			r.Get("/promotions", h.Promotion.ListPromotions)

			// Staff only
			r.Group(func(r chi.Router) {
				r.Use(middleware.StaffOnly)

				r.Post("/promotions", h.Promotion.RecordPromotion)
				r.Get("/dashboard", h.Dashboard.GetDashboard)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/detail", h.Employee.GetEmployee)
					r.Put("/detail", h.Employee.UpdateEmployee)
				})

				r.Delete("/accounts/{accountID}", h.Employee.DeleteAccount)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}

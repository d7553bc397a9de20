package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/awash-hr/job-portal/internal/config"
	appHTTP "github.com/awash-hr/job-portal/internal/handler/http"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/awash-hr/job-portal/internal/pkg/email"
	"github.com/awash-hr/job-portal/internal/pkg/jwt"
	"github.com/awash-hr/job-portal/internal/pkg/oauth"
	"github.com/awash-hr/job-portal/internal/pkg/storage"
	"github.com/awash-hr/job-portal/internal/repository/postgresql"
	applicationService "github.com/awash-hr/job-portal/internal/service/application"
	serviceAuth "github.com/awash-hr/job-portal/internal/service/auth"
	dashboardService "github.com/awash-hr/job-portal/internal/service/dashboard"
	employeeService "github.com/awash-hr/job-portal/internal/service/employee"
	"github.com/awash-hr/job-portal/internal/service/file"
	jobService "github.com/awash-hr/job-portal/internal/service/job"
	promotionService "github.com/awash-hr/job-portal/internal/service/promotion"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "awash-job-portal"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	systemClock := clock.Real()
	secureCookie := cfg.App.Env == "production"

	tx := postgresql.NewTransactor(db)
	accountRepo := postgresql.NewAccountRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	promotionRepo := postgresql.NewPromotionRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, systemClock, secureCookie)
	if err != nil {
		return fmt.Errorf("invalid JWT expiration: %w", err)
	}

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		return fmt.Errorf("initialize local storage: %w", err)
	}
	fileService := file.NewFileService(fileStorage, cfg.Storage.MaxUploadSize)

	mailer, err := email.NewMailer(cfg.SMTP)
	if err != nil {
		return err
	}

	authSvc := serviceAuth.NewAuthService(tx, accountRepo, employeeRepo, refreshTokenRepo, JWTService, cfg.OAuth2Google.Enabled())
	employeeSvc := employeeService.NewEmployeeService(tx, employeeRepo, rosterRepo, accountRepo, systemClock)
	jobSvc := jobService.NewJobService(tx, jobRepo, systemClock)
	applicationSvc := applicationService.NewApplicationService(tx, applicationRepo, jobRepo, employeeSvc, fileService, mailer, systemClock)
	promotionSvc := promotionService.NewPromotionService(tx, promotionRepo, employeeRepo, employeeSvc, mailer, systemClock)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, systemClock)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(JWTService, authSvc, googleService, cfg.App.FrontendURL, secureCookie, systemClock),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Job:         appHTTP.NewJobHandler(jobSvc),
		Application: appHTTP.NewApplicationHandler(applicationSvc, cfg.Storage.MaxUploadSize),
		Promotion:   appHTTP.NewPromotionHandler(promotionSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "google_sign_in", cfg.OAuth2Google.Enabled())
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

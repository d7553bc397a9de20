// Command portalctl is the operator tool for the job portal: roster and
// directory imports, staff provisioning and schema migration.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/awash-hr/job-portal/internal/config"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/database"
	"github.com/awash-hr/job-portal/internal/repository/postgresql"
	serviceAuth "github.com/awash-hr/job-portal/internal/service/auth"
	rosterService "github.com/awash-hr/job-portal/internal/service/roster"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "portalctl",
		Short:        "Operator commands for the HR job portal",
		SilenceUsage: true,
	}
	root.AddCommand(
		newImportCommand("import-roster", "Get-or-create roster records from a .csv or .xlsx file", roster.ImportService.ImportRoster),
		newImportCommand("import-employees", "Upsert directory employees from a .csv or .xlsx file", roster.ImportService.ImportEmployees),
		newCreateStaffCommand(),
		newMigrateCommand(),
	)
	return root
}

// connect loads configuration and opens the database pool.
func connect() (*database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

type importFunc func(svc roster.ImportService, ctx context.Context, filename string, r io.Reader) (roster.ImportResult, error)

func newImportCommand(use, short string, run importFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			svc := rosterService.NewImportService(postgresql.NewTransactor(db), postgresql.NewRosterRepository(db), postgresql.NewEmployeeRepository(db))
			result, err := run(svc, cmd.Context(), args[0], f)
			if err != nil {
				return err
			}

			cmd.Printf("rows: %d, created: %d, updated: %d, skipped: %d\n", result.Rows, result.Created, result.Updated, result.Skipped)
			return nil
		},
	}
}

func newCreateStaffCommand() *cobra.Command {
	var fullName string
	cmd := &cobra.Command{
		Use:   "create-staff EMPLOYEE_ID PASSWORD",
		Short: "Create an HR staff account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			// Token issuing is unused here; the service only needs the account store
			svc := serviceAuth.NewAuthService(postgresql.NewTransactor(db), postgresql.NewAccountRepository(db), postgresql.NewEmployeeRepository(db), postgresql.NewRefreshTokenRepository(db), nil, false)
			if err := svc.CreateStaff(cmd.Context(), auth.CreateStaffRequest{
				Username: args[0],
				Password: args[1],
				FullName: fullName,
			}); err != nil {
				return err
			}

			cmd.Printf("staff account %s created\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "name", "", "full name of the staff member")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			return db.Migrate(cmd.Context())
		},
	}
}

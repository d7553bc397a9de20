package postgresql_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/awash-hr/job-portal/internal/domain/account"
	"github.com/awash-hr/job-portal/internal/domain/application"
	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/job"
	"github.com/awash-hr/job-portal/internal/domain/promotion"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func createTestAccount(t *testing.T, ctx context.Context, repo account.AccountRepository, username string) account.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	created, err := repo.Create(ctx, account.Account{Username: username, PasswordHash: string(hash), FirstName: "Test"})
	require.NoError(t, err)
	return created
}

func TestAccountRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAccountRepository(setup.DB)

	created := createTestAccount(t, ctx, repo, "AIB/001/2020")
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsStaff)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.Create(ctx, account.Account{Username: "AIB/001/2020", PasswordHash: "x"})
		assert.ErrorIs(t, err, account.ErrUsernameExists)
	})

	t.Run("lookups", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "AIB/001/2020")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		exists, err := repo.ExistsByUsername(ctx, "AIB/001/2020")
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = repo.GetByUsername(ctx, "missing")
		assert.ErrorIs(t, err, account.ErrAccountNotFound)
	})

	t.Run("last login and delete", func(t *testing.T) {
		require.NoError(t, repo.UpdateLastLogin(ctx, created.ID))
		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, found.LastLoginAt)

		require.NoError(t, repo.Delete(ctx, created.ID))
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), account.ErrAccountNotFound)
	})
}

func TestRefreshTokenRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	acct := createTestAccount(t, ctx, postgresql.NewAccountRepository(setup.DB), "E-100")
	repo := postgresql.NewRefreshTokenRepository(setup.DB)

	expires := time.Now().Add(time.Hour).Unix()
	require.NoError(t, repo.CreateRefreshToken(ctx, acct.ID, "refresh-1", expires, auth.SessionTrackingRequest{IPAddress: "127.0.0.1"}))

	accountID, revoked, err := repo.IsRefreshTokenRevoked(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, acct.ID, accountID)
	assert.False(t, revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, "refresh-1"))
	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "refresh-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "never-issued")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRosterRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewRosterRepository(setup.DB)

	created, err := repo.CreateIfAbsent(ctx, roster.Record{EmployeeID: "X", FullName: "Abebe Kebede", Department: strPtr("Finance")})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, roster.Record{EmployeeID: "X", FullName: "Someone Else"})
	require.NoError(t, err)
	assert.False(t, created, "existing roster rows are skipped")

	rec, err := repo.GetByEmployeeID(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, "Abebe Kebede", rec.FullName)

	_, err = repo.GetByEmployeeID(ctx, "Y")
	assert.ErrorIs(t, err, roster.ErrRecordNotFound)
}

func TestEmployeeRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	created, err := repo.Upsert(ctx, employee.ImportRow{EmployeeID: "E-1", FullName: "Hana Girma", Email: strPtr("hana@example.com")})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Upsert(ctx, employee.ImportRow{EmployeeID: "E-1", FullName: "Hana T. Girma", Department: strPtr("Audit")})
	require.NoError(t, err)
	assert.False(t, created)

	emp, err := repo.GetByEmployeeID(ctx, "E-1")
	require.NoError(t, err)
	assert.Equal(t, "Hana T. Girma", emp.FullName)
	assert.False(t, emp.IsRegistered)

	acct := createTestAccount(t, ctx, postgresql.NewAccountRepository(setup.DB), "E-1")
	emp.AccountID = &acct.ID
	emp.IsRegistered = true
	promoted := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	emp.LastPromotionDate = &promoted
	emp, err = repo.Update(ctx, emp)
	require.NoError(t, err)
	assert.True(t, emp.IsRegistered)

	byAccount, err := repo.GetByAccountID(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, byAccount.ID)
	require.NotNil(t, byAccount.LastPromotionDate)
	assert.True(t, promoted.Equal(*byAccount.LastPromotionDate))

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "E-1", FullName: "Dup"})
	assert.ErrorIs(t, err, employee.ErrAlreadyRegistered)

	registered := true
	list, total, err := repo.List(ctx, employee.EmployeeFilter{Search: "girma", Registered: &registered, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)

	// Deleting the account unlinks the employee
	require.NoError(t, postgresql.NewAccountRepository(setup.DB).Delete(ctx, acct.ID))
	emp, err = repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, emp.AccountID)

	require.NoError(t, repo.Delete(ctx, emp.ID))
	_, err = repo.GetByID(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestJobRepositoryVacancyNumber(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewJobRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)

	posted := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	var created job.Job
	err := tx.WithinTx(ctx, func(ctx context.Context) error {
		j, err := repo.Create(ctx, job.Job{
			Title: "Branch Manager", PostedDate: posted, Deadline: posted.AddDate(0, 1, 0),
			IsActive: true, VacancyType: job.VacancyTypeInternal,
		})
		if err != nil {
			return err
		}
		if err := repo.FinalizeVacancyNumber(ctx, j.ID, job.VacancyNumber(posted.Year(), j.ID)); err != nil {
			return err
		}
		created, err = repo.GetByID(ctx, j.ID)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("VAC-2026-%06d", created.ID), created.VacancyNumber)

	err = repo.FinalizeVacancyNumber(ctx, created.ID, "VAC-2026-999999")
	assert.ErrorIs(t, err, job.ErrVacancyNumberFinalized)

	assert.ErrorIs(t, repo.FinalizeVacancyNumber(ctx, created.ID+1000, "VAC-2026-000000"), job.ErrJobNotFound)

	created.Title = "Senior Branch Manager"
	created.VacancyNumber = "ignored"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Senior Branch Manager", updated.Title)
	assert.Equal(t, fmt.Sprintf("VAC-2026-%06d", created.ID), updated.VacancyNumber)
}

func TestTransactorRollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewRosterRepository(setup.DB)

	boom := errors.New("boom")
	err := postgresql.NewTransactor(setup.DB).WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.CreateIfAbsent(ctx, roster.Record{EmployeeID: "R-1", FullName: "Rolled Back"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByEmployeeID(ctx, "R-1")
	assert.ErrorIs(t, err, roster.ErrRecordNotFound)
}

func TestApplicationAndPromotionRepositories(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	employees := postgresql.NewEmployeeRepository(setup.DB)
	jobs := postgresql.NewJobRepository(setup.DB)
	apps := postgresql.NewApplicationRepository(setup.DB)
	promos := postgresql.NewPromotionRepository(setup.DB)

	emp, err := employees.Create(ctx, employee.Employee{EmployeeID: "E-7", FullName: "Sara Tesfaye", Grade: strPtr("VII")})
	require.NoError(t, err)

	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	j, err := jobs.Create(ctx, job.Job{Title: "Auditor", PostedDate: now, Deadline: now.AddDate(0, 0, 7), IsActive: true, VacancyType: job.VacancyTypeExternal})
	require.NoError(t, err)

	created, err := apps.Create(ctx, application.Application{EmployeeID: emp.ID, JobID: j.ID, AppliedAt: now})
	require.NoError(t, err)

	_, err = apps.Create(ctx, application.Application{EmployeeID: emp.ID, JobID: j.ID, AppliedAt: now})
	assert.ErrorIs(t, err, application.ErrAlreadyApplied)

	found, err := apps.GetByEmployeeAndJob(ctx, emp.ID, j.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	list, err := apps.ListByJob(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sara Tesfaye", list[0].EmployeeName)
	assert.Equal(t, "Auditor", list[0].JobTitle)

	_, err = promos.Create(ctx, promotion.Promotion{EmployeeID: emp.ID, OldGrade: strPtr("VI"), NewGrade: "VII", PromotedAt: now.AddDate(-2, 0, 0)})
	require.NoError(t, err)
	_, err = promos.Create(ctx, promotion.Promotion{EmployeeID: emp.ID, OldGrade: strPtr("VII"), NewGrade: "VIII", PromotedAt: now})
	require.NoError(t, err)

	entries, err := promos.List(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "VIII", entries[0].NewGrade, "newest promotion first")

	dash := postgresql.NewDashboardRepository(setup.DB)
	counts, err := dash.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Total)
	total, err := dash.CountApplications(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Deleting the job cascades to its applications
	require.NoError(t, jobs.Delete(ctx, j.ID))
	_, err = apps.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}

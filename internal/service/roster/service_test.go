package roster

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/repository/memory"
	employeeservice "github.com/awash-hr/job-portal/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportFixture(t *testing.T) (*memory.Store, roster.ImportService) {
	t.Helper()
	store := memory.NewStore(&clock.Fixed{T: time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)})
	return store, NewImportService(store.Transactor(), store.Roster(), store.Employees())
}

const rosterCSV = "employee_id,full_name,department\nE-1,Abebe Kebede,Finance\nE-2,Sara Alemu,IT\n"

func TestImportRosterIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, svc := newImportFixture(t)

	result, err := svc.ImportRoster(ctx, "roster.csv", strings.NewReader(rosterCSV))
	require.NoError(t, err)
	assert.Equal(t, roster.ImportResult{Rows: 2, Created: 2}, result)

	result, err = svc.ImportRoster(ctx, "roster.csv", strings.NewReader(rosterCSV+"E-3,Dawit Bekele,HR\n"))
	require.NoError(t, err)
	assert.Equal(t, roster.ImportResult{Rows: 3, Created: 1, Skipped: 2}, result)

	rec, err := store.Roster().GetByEmployeeID(ctx, "E-2")
	require.NoError(t, err)
	assert.Equal(t, "Sara Alemu", rec.FullName)
	assert.Equal(t, "IT", *rec.Department)
}

func TestImportEmployeesUpserts(t *testing.T) {
	ctx := context.Background()
	store, svc := newImportFixture(t)

	result, err := svc.ImportEmployees(ctx, "employees.csv", strings.NewReader(rosterCSV))
	require.NoError(t, err)
	assert.Equal(t, roster.ImportResult{Rows: 2, Created: 2}, result)

	emp, err := store.Employees().GetByEmployeeID(ctx, "E-1")
	require.NoError(t, err)
	emp.IsRegistered = true
	_, err = store.Employees().Update(ctx, emp)
	require.NoError(t, err)

	result, err = svc.ImportEmployees(ctx, "employees.csv", strings.NewReader("employee_id,full_name,department\nE-1,Abebe K. Tola,Audit\n"))
	require.NoError(t, err)
	assert.Equal(t, roster.ImportResult{Rows: 1, Updated: 1}, result)

	emp, err = store.Employees().GetByEmployeeID(ctx, "E-1")
	require.NoError(t, err)
	assert.Equal(t, "Abebe K. Tola", emp.FullName)
	assert.Equal(t, "Audit", *emp.Department)
	assert.True(t, emp.IsRegistered, "registration state is untouched")
}

func TestImportedEmployeeCanRegisterAgainAfterAccountDeletion(t *testing.T) {
	ctx := context.Background()
	store, svc := newImportFixture(t)
	employees := employeeservice.NewEmployeeService(store.Transactor(), store.Employees(), store.Roster(), store.Accounts(), &clock.Fixed{T: time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)})

	_, err := svc.ImportEmployees(ctx, "employees.csv", strings.NewReader(rosterCSV))
	require.NoError(t, err)

	rec, err := store.Roster().GetByEmployeeID(ctx, "E-1")
	require.NoError(t, err)
	assert.Equal(t, "Abebe Kebede", rec.FullName)

	_, err = employees.Register(ctx, employee.RegisterRequest{
		EmployeeID:      "E-1",
		Password:        "password123",
		ConfirmPassword: "password123",
		Position:        "Accountant",
		Phone:           "+251911000000",
	})
	require.NoError(t, err)
	acct, err := store.Accounts().GetByUsername(ctx, "E-1")
	require.NoError(t, err)

	staff := auth.Identity{AccountID: "staff-account", EmployeeID: "HR-1", IsAuthenticated: true, IsStaff: true}
	require.NoError(t, employees.DeleteAccount(ctx, staff, acct.ID))

	lookup, err := employees.LookupForRegistration(ctx, "E-1")
	require.NoError(t, err)
	assert.Equal(t, employee.LookupStatusAvailable, lookup.Status)
	assert.Equal(t, "Abebe Kebede", lookup.FullName)
}

func TestImportRejectsBadFileBeforeWriting(t *testing.T) {
	ctx := context.Background()
	store, svc := newImportFixture(t)

	_, err := svc.ImportRoster(ctx, "roster.csv", strings.NewReader("employee_id,full_name\nE-1,Abebe\nE-2,\n"))
	require.ErrorIs(t, err, roster.ErrInvalidRow)

	_, err = store.Roster().GetByEmployeeID(ctx, "E-1")
	assert.True(t, errors.Is(err, roster.ErrRecordNotFound))
}

package promotion

import (
	"context"
	"testing"
	"time"

	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/domain/employee"
	"github.com/awash-hr/job-portal/internal/domain/promotion"
	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/awash-hr/job-portal/internal/pkg/clock"
	"github.com/awash-hr/job-portal/internal/pkg/email"
	"github.com/awash-hr/job-portal/internal/repository/memory"
	employeeservice "github.com/awash-hr/job-portal/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staff = auth.Identity{AccountID: "staff-account", EmployeeID: "HR-1", IsAuthenticated: true, IsStaff: true}

func strPtr(s string) *string { return &s }

type sentNotice struct {
	to   string
	data email.PromotionRecorded
}

type recordingMailer struct {
	promotions []sentNotice
}

func (m *recordingMailer) SendApplicationReceived(string, email.ApplicationReceived) error {
	return nil
}

func (m *recordingMailer) SendPromotionRecorded(to string, data email.PromotionRecorded) error {
	m.promotions = append(m.promotions, sentNotice{to: to, data: data})
	return nil
}

type fixture struct {
	clock     *clock.Fixed
	mailer    *recordingMailer
	store     *memory.Store
	employees employee.EmployeeService
	svc       promotion.PromotionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := &clock.Fixed{T: time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)}
	store := memory.NewStore(c)
	employees := employeeservice.NewEmployeeService(store.Transactor(), store.Employees(), store.Roster(), store.Accounts(), c)
	mailer := &recordingMailer{}
	return &fixture{
		clock:     c,
		mailer:    mailer,
		store:     store,
		employees: employees,
		svc:       NewPromotionService(store.Transactor(), store.Promotions(), store.Employees(), employees, mailer, c),
	}
}

func (f *fixture) register(t *testing.T, employeeID string) auth.Identity {
	t.Helper()
	ctx := context.Background()
	_, err := f.store.Roster().CreateIfAbsent(ctx, roster.Record{EmployeeID: employeeID, FullName: "Hana Girma"})
	require.NoError(t, err)
	_, err = f.employees.Register(ctx, employee.RegisterRequest{
		EmployeeID: employeeID, Password: "password123", ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	acct, err := f.store.Accounts().GetByUsername(ctx, employeeID)
	require.NoError(t, err)
	return auth.Identity{AccountID: acct.ID, EmployeeID: employeeID, IsAuthenticated: true}
}

func (f *fixture) canApply(t *testing.T, identity auth.Identity) bool {
	t.Helper()
	profile, err := f.employees.GetMyProfile(context.Background(), identity)
	require.NoError(t, err)
	return profile.CanApply
}

func promoteReq(grade string, at time.Time) promotion.RecordPromotionRequest {
	return promotion.RecordPromotionRequest{NewGrade: grade, PromotedAt: at.Format("2006-01-02"), Remarks: "annual review"}
}

func TestPromotionCooldownScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	me := f.register(t, "E-7")

	assert.True(t, f.canApply(t, me), "never promoted")

	resp, err := f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VII", f.clock.Now()))
	require.NoError(t, err)
	assert.Nil(t, resp.OldGrade)
	assert.Equal(t, "Grade VII", resp.NewGrade)
	assert.Equal(t, "2026-10-14", resp.PromotedAt)
	assert.False(t, f.canApply(t, me), "promoted today")

	profile, err := f.employees.GetMyProfile(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, "Grade VII", *profile.Grade)
	assert.Equal(t, "2027-10-14", *profile.EligibleFrom)

	_, err = f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VIII", f.clock.Now()))
	assert.ErrorIs(t, err, promotion.ErrPromotionCooldown)

	f.clock.AdvanceDays(366)
	assert.True(t, f.canApply(t, me))

	resp, err = f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VIII", f.clock.Now()))
	require.NoError(t, err)
	require.NotNil(t, resp.OldGrade)
	assert.Equal(t, "Grade VII", *resp.OldGrade)

	history, err := f.svc.ListPromotions(ctx, me, "")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Grade VIII", history[0].NewGrade, "newest first")
	assert.Equal(t, "E-7", history[0].EmployeeNumber)
}

func TestRecordPromotionValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	me := f.register(t, "E-7")

	_, err := f.svc.RecordPromotion(ctx, me, "E-7", promoteReq("Grade VII", f.clock.Now()))
	assert.ErrorIs(t, err, auth.ErrStaffAccessRequired)

	_, err = f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VII", f.clock.Now().AddDate(0, 0, 1)))
	assert.ErrorIs(t, err, promotion.ErrPromotionInFuture)

	_, err = f.svc.RecordPromotion(ctx, staff, "E-7", promotion.RecordPromotionRequest{NewGrade: "Grade VII", PromotedAt: "14/10/2026"})
	assert.Error(t, err)

	_, err = f.svc.RecordPromotion(ctx, staff, "NOPE", promoteReq("Grade VII", f.clock.Now()))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.True(t, f.canApply(t, me), "failed attempts leave eligibility untouched")
}

func TestBackdatedPromotionShortensCooldown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	me := f.register(t, "E-7")

	_, err := f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade V", f.clock.Now().AddDate(0, 0, -365)))
	require.NoError(t, err)
	assert.True(t, f.canApply(t, me))
}

func TestPromotionBeforeLastPromotionRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "E-7")

	_, err := f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade V", f.clock.Now().AddDate(0, 0, -400)))
	require.NoError(t, err)

	_, err = f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VI", f.clock.Now().AddDate(0, 0, -500)))
	assert.ErrorIs(t, err, promotion.ErrPromotionBeforeLast)

	emp, err := f.store.Employees().GetByEmployeeID(ctx, "E-7")
	require.NoError(t, err)
	assert.Equal(t, "Grade V", *emp.Grade)
	assert.Equal(t, "2025-09-09", emp.LastPromotionDate.Format("2006-01-02"))

	history, err := f.svc.ListPromotions(ctx, staff, "E-7")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VI", f.clock.Now().AddDate(0, 0, -400)))
	assert.NoError(t, err, "same day as the last promotion is allowed")
}

func TestListPromotionsAccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "E-1")
	f.register(t, "E-2")

	emp, err := f.store.Employees().GetByEmployeeID(ctx, "E-2")
	require.NoError(t, err)
	emp.Grade = strPtr("Grade III")
	_, err = f.store.Employees().Update(ctx, emp)
	require.NoError(t, err)

	_, err = f.svc.RecordPromotion(ctx, staff, "E-1", promoteReq("Grade II", f.clock.Now()))
	require.NoError(t, err)
	_, err = f.svc.RecordPromotion(ctx, staff, "E-2", promoteReq("Grade IV", f.clock.Now().AddDate(0, 0, -3)))
	require.NoError(t, err)

	all, err := f.svc.ListPromotions(ctx, staff, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyE2, err := f.svc.ListPromotions(ctx, staff, "E-2")
	require.NoError(t, err)
	require.Len(t, onlyE2, 1)
	assert.Equal(t, "Grade III", *onlyE2[0].OldGrade)

	_, err = f.svc.ListPromotions(ctx, alice, "E-2")
	assert.ErrorIs(t, err, auth.ErrStaffAccessRequired)

	mine, err := f.svc.ListPromotions(ctx, alice, "E-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = f.svc.ListPromotions(ctx, auth.Anonymous, "")
	assert.ErrorIs(t, err, auth.ErrAuthenticationRequired)
}

func TestRecordPromotionNotifiesEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "E-7")

	_, err := f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VII", f.clock.Now()))
	require.NoError(t, err)
	assert.Empty(t, f.mailer.promotions, "no email on file")

	f.clock.AdvanceDays(400)
	emp, err := f.store.Employees().GetByEmployeeID(ctx, "E-7")
	require.NoError(t, err)
	emp.Email = strPtr("hana@example.com")
	_, err = f.store.Employees().Update(ctx, emp)
	require.NoError(t, err)

	_, err = f.svc.RecordPromotion(ctx, staff, "E-7", promoteReq("Grade VIII", f.clock.Now()))
	require.NoError(t, err)
	require.Len(t, f.mailer.promotions, 1)
	notice := f.mailer.promotions[0]
	assert.Equal(t, "hana@example.com", notice.to)
	assert.Equal(t, "Grade VII", notice.data.OldGrade)
	assert.Equal(t, "Grade VIII", notice.data.NewGrade)
	assert.Equal(t, "2028-11-17", notice.data.EligibleFrom)
}

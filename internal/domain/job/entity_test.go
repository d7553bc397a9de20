package job

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vacancyPattern = regexp.MustCompile(`^VAC-\d{4}-\d{6}$`)

func TestVacancyNumber(t *testing.T) {
	assert.Equal(t, "VAC-2026-000001", VacancyNumber(2026, 1))
	assert.Equal(t, "VAC-2026-000042", VacancyNumber(2026, 42))
	assert.Equal(t, "VAC-2025-123456", VacancyNumber(2025, 123456))

	for _, id := range []int64{1, 9, 10, 999, 100000, 999999} {
		assert.Regexp(t, vacancyPattern, VacancyNumber(2026, id))
	}
}

func TestEnforceDeadline(t *testing.T) {
	today := time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		active   bool
		want     bool
	}{
		{"past deadline overrides active flag", today.AddDate(0, 0, -1), true, false},
		{"deadline today stays active", time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC), true, true},
		{"future deadline keeps flag", today.AddDate(0, 0, 10), true, true},
		{"future deadline keeps inactive flag", today.AddDate(0, 0, 10), false, false},
		{"past deadline stays inactive", today.AddDate(-1, 0, 0), false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := Job{Deadline: tc.deadline, IsActive: tc.active}
			j.EnforceDeadline(today)
			assert.Equal(t, tc.want, j.IsActive)
		})
	}
}

func TestAcceptsApplications(t *testing.T) {
	today := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

	assert.True(t, Job{IsActive: true, Deadline: today}.AcceptsApplications(today))
	assert.False(t, Job{IsActive: false, Deadline: today}.AcceptsApplications(today))
	// an un-saved job whose deadline slipped by
	assert.False(t, Job{IsActive: true, Deadline: today.AddDate(0, 0, -1)}.AcceptsApplications(today))
}

func TestCreateJobRequestValidate(t *testing.T) {
	req := CreateJobRequest{JobFields{Title: "  Branch Manager ", Deadline: "2026-11-01"}}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Branch Manager", req.Title)
	assert.Equal(t, string(VacancyTypeExternal), req.VacancyType)
	assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), req.DeadlineDate())

	bad := CreateJobRequest{JobFields{Title: "Teller", Deadline: "01/11/2026", VacancyType: "contract"}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadline")
	assert.Contains(t, err.Error(), "vacancy_type")

	missing := CreateJobRequest{}
	err = missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "deadline is required")
}

func TestJobFieldsApply(t *testing.T) {
	req := UpdateJobRequest{JobFields{Title: "Auditor", Deadline: "2026-12-31", VacancyType: "internal"}}
	require.NoError(t, req.Validate())

	j := Job{ID: 7, VacancyNumber: "VAC-2026-000007", IsActive: true}
	req.Apply(&j)

	assert.Equal(t, "Auditor", j.Title)
	assert.True(t, j.IsActive, "nil is_active keeps the current flag")
	assert.Equal(t, VacancyTypeInternal, j.VacancyType)
	assert.Equal(t, "VAC-2026-000007", j.VacancyNumber)

	inactive := false
	req.IsActive = &inactive
	req.Apply(&j)
	assert.False(t, j.IsActive)
}

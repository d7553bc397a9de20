package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCanApply(t *testing.T) {
	promoted := date(2025, time.March, 1)

	cases := []struct {
		name  string
		last  *time.Time
		today time.Time
		want  bool
	}{
		{"never promoted", nil, date(2025, time.March, 1), true},
		{"promoted today", &promoted, date(2025, time.March, 1), false},
		{"one day short of the cooldown", &promoted, promoted.AddDate(0, 0, 364), false},
		{"exactly at the cooldown", &promoted, promoted.AddDate(0, 0, 365), true},
		{"a day after the cooldown", &promoted, promoted.AddDate(0, 0, 366), true},
		{"time of day is ignored", &promoted, promoted.AddDate(0, 0, 364).Add(23 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Employee{LastPromotionDate: tc.last}
			assert.Equal(t, tc.want, CanApply(e, tc.today))
		})
	}
}

func TestCanApplyMatchesCooldownArithmetic(t *testing.T) {
	promoted := date(2024, time.February, 29)
	e := Employee{LastPromotionDate: &promoted}

	for offset := -10; offset <= 400; offset++ {
		today := promoted.AddDate(0, 0, offset)
		want := !today.Before(promoted.AddDate(0, 0, EligibilityCooldownDays))
		assert.Equal(t, want, CanApply(e, today), "offset %d", offset)
	}
}

func TestEligibleFrom(t *testing.T) {
	assert.Nil(t, Employee{}.EligibleFrom())

	promoted := time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC)
	from := Employee{LastPromotionDate: &promoted}.EligibleFrom()
	require.NotNil(t, from)
	assert.Equal(t, date(2026, time.June, 10), *from)
}

func TestRegisterRequestValidate(t *testing.T) {
	req := RegisterRequest{
		EmployeeID:      " AIB/20821/2022 ",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
		Email:           "abebe@example.com",
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, "AIB/20821/2022", req.EmployeeID)

	req.ConfirmPassword = "different-horse"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")

	short := RegisterRequest{EmployeeID: "E1", Password: "short", ConfirmPassword: "short", Phone: "12"}
	err = short.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
	assert.Contains(t, err.Error(), "phone")
}

func TestEmployeeFilterNormalize(t *testing.T) {
	f := EmployeeFilter{Search: "  abebe ", Page: 0, Limit: 500}
	f.Normalize()
	assert.Equal(t, "abebe", f.Search)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 0, f.Offset())

	f = EmployeeFilter{Page: 3, Limit: 10}
	f.Normalize()
	assert.Equal(t, 20, f.Offset())
}

func TestToResponse(t *testing.T) {
	promoted := date(2026, time.January, 5)
	e := Employee{ID: "id-1", EmployeeID: "E-1", FullName: "Abebe Kebede", LastPromotionDate: &promoted}

	resp := ToResponse(e, date(2026, time.October, 14))
	assert.False(t, resp.CanApply)
	require.NotNil(t, resp.LastPromotionDate)
	assert.Equal(t, "2026-01-05", *resp.LastPromotionDate)
	require.NotNil(t, resp.EligibleFrom)
	assert.Equal(t, "2027-01-05", *resp.EligibleFrom)
}

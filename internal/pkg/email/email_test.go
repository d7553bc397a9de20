package email

import (
	"testing"

	"github.com/awash-hr/job-portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesRender(t *testing.T) {
	m, err := NewMailer(config.SMTPConfig{})
	require.NoError(t, err)
	impl := m.(*mailerImpl)

	body, err := impl.render("application_received.html", ApplicationReceived{
		EmployeeName:  "Sara Alemu",
		JobTitle:      "Branch Manager",
		VacancyNumber: "VAC-2026-000001",
		AppliedAt:     "2026-10-14",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Sara Alemu")
	assert.Contains(t, body, "VAC-2026-000001")

	body, err = impl.render("promotion_recorded.html", PromotionRecorded{
		EmployeeName: "Sara Alemu",
		NewGrade:     "VIII",
		PromotedAt:   "2026-10-14",
		EligibleFrom: "2027-10-14",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "VIII")
	assert.NotContains(t, body, "from grade")
	assert.Contains(t, body, "2027-10-14")
}

func TestSendWithoutSMTPIsSkipped(t *testing.T) {
	m, err := NewMailer(config.SMTPConfig{})
	require.NoError(t, err)

	assert.NoError(t, m.SendApplicationReceived("sara@example.com", ApplicationReceived{VacancyNumber: "VAC-2026-000001"}))
	assert.NoError(t, m.SendPromotionRecorded("sara@example.com", PromotionRecorded{NewGrade: "VIII"}))
}

package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/utils"
)

func TestBuildDatasetJanuary(t *testing.T) {
	january := utils.Period{Year: 2026, Month: time.January}

	data, err := BuildDataset(42, january)
	require.NoError(t, err)

	var committed float64
	for _, p := range data.Projects {
		assert.Equal(t, 42, p.UserID)
		committed += p.MonthlyCommitmentHours
	}
	assert.Equal(t, 112.0, committed)

	var logged int64
	for _, e := range data.TimeEntries {
		assert.False(t, e.Running())
		assert.Equal(t, january, utils.PeriodOf(e.Date.Time))
		logged += e.DurationSeconds
	}
	assert.Len(t, data.TimeEntries, 22)
	assert.Equal(t, 87.5, utils.HoursFromSeconds(logged))

	var earned, pending float64
	for _, inv := range data.Invoices {
		switch inv.Status {
		case domain.InvoiceStatusPaid:
			require.NotNil(t, inv.PaidAt)
			earned += inv.Amount
		case domain.InvoiceStatusSent:
			assert.Nil(t, inv.PaidAt)
			pending += inv.Amount
		}
		assert.False(t, inv.DueDate.Before(inv.IssueDate.Time))
	}
	assert.Equal(t, 8500.0, earned)
	assert.Equal(t, 2500.0, pending)

	assert.Equal(t, "01-2026", data.Target.Period)
	assert.Equal(t, 12000.0, data.Target.RevenueTarget)
}

func TestBuildDatasetKeepsDatesInsideShortMonths(t *testing.T) {
	february := utils.Period{Year: 2026, Month: time.February}

	data, err := BuildDataset(1, february)
	require.NoError(t, err)

	for _, inv := range data.Invoices {
		assert.Equal(t, february, utils.PeriodOf(inv.DueDate.Time))
	}
	for _, e := range data.TimeEntries {
		wd := e.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

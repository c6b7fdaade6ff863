package domain

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestInvoiceStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to InvoiceStatus
		allowed  bool
	}{
		{InvoiceStatusDraft, InvoiceStatusSent, true},
		{InvoiceStatusSent, InvoiceStatusPaid, true},
		{InvoiceStatusSent, InvoiceStatusOverdue, true},
		{InvoiceStatusOverdue, InvoiceStatusPaid, true},
		{InvoiceStatusDraft, InvoiceStatusPaid, false},
		{InvoiceStatusPaid, InvoiceStatusSent, false},
		{InvoiceStatusOverdue, InvoiceStatusSent, false},
		{InvoiceStatusSent, InvoiceStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestProjectComputeDerived(t *testing.T) {
	tests := []struct {
		name          string
		project       Project
		expectedValue float64
		expectedPct   float64
	}{
		{
			name:          "Hourly usa taxa vezes horas estimadas",
			project:       Project{BillingType: BillingHourly, Rate: 150, HoursEstimated: 80, HoursLogged: 42},
			expectedValue: 12000,
			expectedPct:   52.5,
		},
		{
			name:          "Fixed usa o orçamento",
			project:       Project{BillingType: BillingFixed, Budget: 18000, HoursEstimated: 120, HoursLogged: 28},
			expectedValue: 18000,
			expectedPct:   28.0 / 120 * 100,
		},
		{
			name:          "Retainer usa a taxa mensal",
			project:       Project{BillingType: BillingRetainer, Rate: 5000, HoursEstimated: 40, HoursLogged: 17.5},
			expectedValue: 5000,
			expectedPct:   43.75,
		},
		{
			name:          "Sem estimativa não divide por zero",
			project:       Project{BillingType: BillingHourly, Rate: 100, HoursLogged: 10},
			expectedValue: 0,
			expectedPct:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.project
			p.ComputeDerived()
			assert.Equal(t, tt.expectedValue, p.TotalValue)
			assert.InDelta(t, tt.expectedPct, p.ProgressPercentage, 1e-9)
		})
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Deadline *Date `json:"deadline"`
		Issue    Date  `json:"issue"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"deadline":"2026-02-15","issue":"2026-01-05"}`), &payload))
	require.NotNil(t, payload.Deadline)
	assert.Equal(t, "2026-02-15", payload.Deadline.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":"2026-02-15","issue":"2026-01-05"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"issue":"15/02/2026"}`), &payload))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 1, 31, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-31", d.String())

	require.NoError(t, d.Scan("2026-03-01T00:00:00Z"))
	assert.Equal(t, "2026-03-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestVerificationTokenExpired(t *testing.T) {
	now := time.Now()
	token := VerificationToken{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, token.Expired(now))
	assert.True(t, token.Expired(now.Add(time.Minute)))
}

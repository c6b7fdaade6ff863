package metrics

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeUtilization(t *testing.T) {
	tests := []struct {
		name              string
		input             PeriodInput
		expectedPct       float64
		expectedRemaining float64
	}{
		{
			name:              "Período padrão de janeiro",
			input:             PeriodInput{HoursAvailable: 160, HoursCommitted: 112, HoursLogged: 87.5},
			expectedPct:       78.125,
			expectedRemaining: 48,
		},
		{
			name:              "Sem horas comprometidas não divide por zero",
			input:             PeriodInput{HoursAvailable: 100, HoursCommitted: 0, HoursLogged: 0},
			expectedPct:       0,
			expectedRemaining: 100,
		},
		{
			name:              "Horas registradas sem compromisso continuam em zero",
			input:             PeriodInput{HoursAvailable: 40, HoursCommitted: 0, HoursLogged: 12},
			expectedPct:       0,
			expectedRemaining: 40,
		},
		{
			name:              "Sobrecarga mantém horas restantes negativas",
			input:             PeriodInput{HoursAvailable: 100, HoursCommitted: 130, HoursLogged: 65},
			expectedPct:       50,
			expectedRemaining: -30,
		},
		{
			name:              "Registro acima do comprometido não é limitado",
			input:             PeriodInput{HoursAvailable: 80, HoursCommitted: 20, HoursLogged: 30},
			expectedPct:       150,
			expectedRemaining: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeUtilization(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedPct, result.UtilizationPercentage, 1e-9)
			assert.Equal(t, tt.expectedRemaining, result.RemainingHours)
		})
	}
}

func TestComputeRevenueProgress(t *testing.T) {
	tests := []struct {
		name            string
		input           PeriodInput
		expectedPct     float64
		expectedOnTrack bool
	}{
		{
			name:            "Realizada mais pendente acima de 90% da meta",
			input:           PeriodInput{RevenueTarget: 12000, RevenueEarned: 8750, RevenuePending: 2100},
			expectedPct:     72.9167,
			expectedOnTrack: true,
		},
		{
			name:            "Abaixo de 90% da meta",
			input:           PeriodInput{RevenueTarget: 12000, RevenueEarned: 5000, RevenuePending: 0},
			expectedPct:     41.6667,
			expectedOnTrack: false,
		},
		{
			name:            "Exatamente 90% conta como no caminho",
			input:           PeriodInput{RevenueTarget: 12000, RevenueEarned: 9000, RevenuePending: 1800},
			expectedPct:     75,
			expectedOnTrack: true,
		},
		{
			name:            "Meta zero não divide por zero",
			input:           PeriodInput{RevenueTarget: 0, RevenueEarned: 500, RevenuePending: 0},
			expectedPct:     0,
			expectedOnTrack: true,
		},
		{
			name:            "Receita acima da meta não é limitada",
			input:           PeriodInput{RevenueTarget: 1000, RevenueEarned: 2500},
			expectedPct:     250,
			expectedOnTrack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeRevenueProgress(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedPct, result.RevenueProgressPercentage, 1e-4)
			assert.Equal(t, tt.expectedOnTrack, result.OnTrack)
		})
	}
}

func TestComputeHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		input    PeriodInput
		expected int
	}{
		{
			name: "Dados de janeiro",
			input: PeriodInput{
				HoursAvailable: 160, HoursCommitted: 112, HoursLogged: 87.5,
				RevenueTarget: 12000, RevenueEarned: 8750, RevenuePending: 2100,
			},
			expected: 76,
		},
		{
			name:     "Tudo zerado",
			input:    PeriodInput{},
			expected: 0,
		},
		{
			name: "Valores acima de 100% são limitados antes da média",
			input: PeriodInput{
				HoursCommitted: 10, HoursLogged: 40,
				RevenueTarget: 100, RevenueEarned: 400,
			},
			expected: 100,
		},
		{
			name: "Metade arredonda para cima",
			input: PeriodInput{
				HoursCommitted: 100, HoursLogged: 51,
				RevenueTarget: 100, RevenueEarned: 0,
			},
			expected: 26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ComputeHealthScore(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestHealthScoreAlwaysInRange(t *testing.T) {
	values := []float64{0, 0.5, 1, 10, 59.9, 100, 150, 1e6}

	for _, committed := range values {
		for _, logged := range values {
			for _, target := range values {
				for _, earned := range values {
					in := PeriodInput{
						HoursAvailable: 160,
						HoursCommitted: committed,
						HoursLogged:    logged,
						RevenueTarget:  target,
						RevenueEarned:  earned,
					}

					score, err := ComputeHealthScore(in)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, score, 0)
					assert.LessOrEqual(t, score, 100)
				}
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	in := PeriodInput{
		HoursAvailable: 160, HoursCommitted: 112, HoursLogged: 87.5,
		RevenueTarget: 12000, RevenueEarned: 8750, RevenuePending: 2100,
	}

	summary, err := Summarize(in)
	require.NoError(t, err)

	assert.InDelta(t, 78.125, summary.UtilizationPercentage, 1e-9)
	assert.Equal(t, 48.0, summary.RemainingHours)
	assert.InDelta(t, 72.9167, summary.RevenueProgressPercentage, 1e-4)
	assert.True(t, summary.OnTrack)
	assert.Equal(t, 76, summary.HealthScore)

	again, err := Summarize(in)
	require.NoError(t, err)
	assert.Equal(t, summary, again)
	assert.Equal(t, math.Float64bits(summary.UtilizationPercentage), math.Float64bits(again.UtilizationPercentage))
	assert.Equal(t, math.Float64bits(summary.RevenueProgressPercentage), math.Float64bits(again.RevenueProgressPercentage))
}

func TestSummarizeConcurrentCallers(t *testing.T) {
	in := PeriodInput{HoursAvailable: 120, HoursCommitted: 90, HoursLogged: 45, RevenueTarget: 8000, RevenueEarned: 4000}
	expected, err := Summarize(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]DashboardSummary, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Summarize(in)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name          string
		input         PeriodInput
		expectedField string
	}{
		{
			name:          "Horas registradas negativas",
			input:         PeriodInput{HoursAvailable: 160, HoursCommitted: 112, HoursLogged: -1},
			expectedField: "hoursLogged",
		},
		{
			name:          "Capacidade NaN",
			input:         PeriodInput{HoursAvailable: math.NaN()},
			expectedField: "hoursAvailable",
		},
		{
			name:          "Meta infinita",
			input:         PeriodInput{RevenueTarget: math.Inf(1)},
			expectedField: "revenueTarget",
		},
		{
			name:          "Pendente infinito negativo",
			input:         PeriodInput{RevenuePending: math.Inf(-1)},
			expectedField: "revenuePending",
		},
		{
			name:          "Utilização que estoura o float64",
			input:         PeriodInput{HoursAvailable: 160, HoursCommitted: 1e-300, HoursLogged: 1e300},
			expectedField: "hoursLogged",
		},
		{
			name:          "Progresso de receita que estoura o float64",
			input:         PeriodInput{RevenueTarget: 1e-10, RevenueEarned: math.MaxFloat64},
			expectedField: "revenueEarned",
		},
		{
			name:          "Primeiro campo inválido é o reportado",
			input:         PeriodInput{HoursCommitted: -5, RevenueEarned: -10},
			expectedField: "hoursCommitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := map[string]func(PeriodInput) error{
				"utilization": func(in PeriodInput) error { _, err := ComputeUtilization(in); return err },
				"revenue":     func(in PeriodInput) error { _, err := ComputeRevenueProgress(in); return err },
				"health":      func(in PeriodInput) error { _, err := ComputeHealthScore(in); return err },
				"summary":     func(in PeriodInput) error { _, err := Summarize(in); return err },
			}

			for name, call := range calls {
				err := call(tt.input)
				require.Error(t, err, name)
				assert.True(t, errors.Is(err, ErrInvalidMetricsInput), name)

				var invalid *InvalidInputError
				require.True(t, errors.As(err, &invalid), name)
				assert.Equal(t, tt.expectedField, invalid.Field, name)
			}
		})
	}
}

func TestInvalidInputErrorCarriesValue(t *testing.T) {
	_, err := Summarize(PeriodInput{HoursLogged: -1})

	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, -1.0, invalid.Value)
	assert.Contains(t, err.Error(), "hoursLogged")
}

func TestExtremeButFiniteRatios(t *testing.T) {
	summary, err := Summarize(PeriodInput{
		HoursAvailable: math.MaxFloat64,
		HoursCommitted: 1e-150,
		HoursLogged:    1e150,
		RevenueTarget:  math.SmallestNonzeroFloat64,
		RevenueEarned:  0,
	})
	require.NoError(t, err)

	assert.False(t, math.IsInf(summary.UtilizationPercentage, 0))
	assert.False(t, math.IsInf(summary.RemainingHours, 0))
	assert.Equal(t, 0.0, summary.RevenueProgressPercentage)
	assert.Equal(t, 50, summary.HealthScore)
}

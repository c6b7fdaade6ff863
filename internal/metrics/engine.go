// Package metrics calcula o resumo do dashboard (utilização, progresso de receita e health score)
// a partir dos números brutos de um período. Todas as funções são puras e podem ser chamadas concorrentemente.
package metrics

import "math"

// onTrackThreshold é a fração da meta que receita realizada + pendente precisa atingir
const onTrackThreshold = 0.9

// Pesos do health score. Devem somar 1.0.
const (
	weightUtilization = 0.5
	weightRevenue     = 0.5
)

// PeriodInput contém os números brutos de um período fornecidos pela camada de dados
type PeriodInput struct {
	HoursAvailable float64 `json:"hoursAvailable"`
	HoursCommitted float64 `json:"hoursCommitted"`
	HoursLogged    float64 `json:"hoursLogged"`
	RevenueTarget  float64 `json:"revenueTarget"`
	RevenueEarned  float64 `json:"revenueEarned"`
	RevenuePending float64 `json:"revenuePending"`
}

type Utilization struct {
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	RemainingHours        float64 `json:"remainingHours"`
}

type RevenueProgress struct {
	RevenueProgressPercentage float64 `json:"revenueProgressPercentage"`
	OnTrack                   bool    `json:"onTrack"`
}

// DashboardSummary é o resultado derivado de um PeriodInput. Não tem identidade nem ciclo de vida.
type DashboardSummary struct {
	UtilizationPercentage     float64 `json:"utilizationPercentage"`
	RemainingHours            float64 `json:"remainingHours"`
	RevenueProgressPercentage float64 `json:"revenueProgressPercentage"`
	OnTrack                   bool    `json:"onTrack"`
	HealthScore               int     `json:"healthScore"`
}

// Validate verifica se todos os campos são finitos e não negativos e se as porcentagens
// derivadas cabem num float64 finito. O primeiro campo inválido, na ordem de declaração, é reportado;
// numa razão que estoura, o campo reportado é o numerador.
func (in PeriodInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"hoursAvailable", in.HoursAvailable},
		{"hoursCommitted", in.HoursCommitted},
		{"hoursLogged", in.HoursLogged},
		{"revenueTarget", in.RevenueTarget},
		{"revenueEarned", in.RevenueEarned},
		{"revenuePending", in.RevenuePending},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return newInvalidInputError(f.name, f.value)
		}
	}

	if math.IsInf(percentage(in.HoursLogged, in.HoursCommitted), 0) {
		return newInvalidInputError("hoursLogged", in.HoursLogged)
	}
	if math.IsInf(percentage(in.RevenueEarned, in.RevenueTarget), 0) {
		return newInvalidInputError("revenueEarned", in.RevenueEarned)
	}

	return nil
}

// ComputeUtilization calcula a porcentagem de horas registradas sobre as horas comprometidas
// e as horas restantes da capacidade. RemainingHours pode ser negativo (sobrecarga).
func ComputeUtilization(in PeriodInput) (Utilization, error) {
	if err := in.Validate(); err != nil {
		return Utilization{}, err
	}

	return utilization(in), nil
}

// ComputeRevenueProgress calcula o progresso da receita realizada sobre a meta e se o período
// está no caminho certo (realizada + pendente >= 90% da meta).
func ComputeRevenueProgress(in PeriodInput) (RevenueProgress, error) {
	if err := in.Validate(); err != nil {
		return RevenueProgress{}, err
	}

	return revenueProgress(in), nil
}

// ComputeHealthScore combina utilização e progresso de receita num indicador inteiro de 0 a 100
func ComputeHealthScore(in PeriodInput) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	return healthScore(utilization(in), revenueProgress(in)), nil
}

// Summarize valida a entrada uma única vez e monta o DashboardSummary completo
func Summarize(in PeriodInput) (DashboardSummary, error) {
	if err := in.Validate(); err != nil {
		return DashboardSummary{}, err
	}

	u := utilization(in)
	r := revenueProgress(in)

	return DashboardSummary{
		UtilizationPercentage:     u.UtilizationPercentage,
		RemainingHours:            u.RemainingHours,
		RevenueProgressPercentage: r.RevenueProgressPercentage,
		OnTrack:                   r.OnTrack,
		HealthScore:               healthScore(u, r),
	}, nil
}

func utilization(in PeriodInput) Utilization {
	return Utilization{
		UtilizationPercentage: percentage(in.HoursLogged, in.HoursCommitted),
		RemainingHours:        in.HoursAvailable - in.HoursCommitted,
	}
}

func revenueProgress(in PeriodInput) RevenueProgress {
	return RevenueProgress{
		RevenueProgressPercentage: percentage(in.RevenueEarned, in.RevenueTarget),
		OnTrack:                   in.RevenueEarned+in.RevenuePending >= in.RevenueTarget*onTrackThreshold,
	}
}

// percentage devolve 0 quando whole é zero
func percentage(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return (part / whole) * 100
}

func healthScore(u Utilization, r RevenueProgress) int {
	blended := weightUtilization*math.Min(u.UtilizationPercentage, 100) +
		weightRevenue*math.Min(r.RevenueProgressPercentage, 100)

	return int(math.Round(clamp(blended, 0, 100)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

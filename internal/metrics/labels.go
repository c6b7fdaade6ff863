package metrics

import "math"

// Rótulos exibidos ao lado do health score
const (
	LabelExcellent      = "Excellent"
	LabelGood           = "Good"
	LabelNeedsAttention = "Needs Attention"
	LabelCritical       = "Critical"
)

// HealthLabel converte o score no rótulo usado pela camada de apresentação
func HealthLabel(score int) string {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelNeedsAttention
	default:
		return LabelCritical
	}
}

// ProgressBarWidth limita uma porcentagem ao intervalo [0,100] para largura de barras de progresso.
// Os valores do resumo nunca são limitados; isso é responsabilidade de quem desenha.
func ProgressBarWidth(pct float64) float64 {
	if math.IsNaN(pct) {
		return 0
	}
	return clamp(pct, 0, 100)
}

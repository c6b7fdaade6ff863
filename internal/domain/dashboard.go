package domain

import (
	"time"

	"github.com/vfg2006/orbit-api/internal/metrics"
)

type PeriodTarget struct {
	UserID         int       `json:"-"`
	Period         string    `json:"period"`
	RevenueTarget  float64   `json:"revenueTarget"`
	HoursAvailable *float64  `json:"hoursAvailable"`
	Currency       string    `json:"currency"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UpsertPeriodTargetRequest struct {
	RevenueTarget  float64  `json:"revenueTarget" validate:"gte=0"`
	HoursAvailable *float64 `json:"hoursAvailable" validate:"omitempty,gte=0,lte=744"`
	Currency       string   `json:"currency" validate:"omitempty,len=3"`
}

type RevenueSums struct {
	Earned  float64
	Pending float64
}

type WeeklyRevenue struct {
	WeekStart time.Time
	Earned    float64
	Projected float64
}

type RevenueDataPoint struct {
	Date      string  `json:"date"`
	WeekStart string  `json:"weekStart"`
	Earned    float64 `json:"earned"`
	Projected float64 `json:"projected"`
}

type PeriodRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type Bandwidth struct {
	HoursAvailable        float64 `json:"hoursAvailable"`
	HoursCommitted        float64 `json:"hoursCommitted"`
	HoursLogged           float64 `json:"hoursLogged"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	RemainingHours        float64 `json:"remainingHours"`
	BarWidth              float64 `json:"barWidth"`
}

type RevenueSummary struct {
	TargetAmount              float64 `json:"targetAmount"`
	EarnedAmount              float64 `json:"earnedAmount"`
	PendingAmount             float64 `json:"pendingAmount"`
	Currency                  string  `json:"currency"`
	RevenueProgressPercentage float64 `json:"revenueProgressPercentage"`
	OnTrack                   bool    `json:"onTrack"`
	EarnedBarWidth            float64 `json:"earnedBarWidth"`
	PendingBarWidth           float64 `json:"pendingBarWidth"`
}

// DashboardSummary é o formato entregue ao frontend
type DashboardSummary struct {
	Period      PeriodRange    `json:"period"`
	Bandwidth   Bandwidth      `json:"bandwidth"`
	Revenue     RevenueSummary `json:"revenue"`
	HealthScore int            `json:"healthScore"`
	HealthLabel string         `json:"healthLabel"`
}

type HealthSnapshot struct {
	ID     int64  `json:"id"`
	UserID int    `json:"-"`
	Period string `json:"period"`
	metrics.DashboardSummary
	HealthLabel string    `json:"healthLabel"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DashboardPreviewRequest recebe os números brutos direto do corpo da requisição
type DashboardPreviewRequest struct {
	Period   string `json:"period"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
	metrics.PeriodInput
}

package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

type BillingType string

const (
	BillingHourly   BillingType = "hourly"
	BillingFixed    BillingType = "fixed"
	BillingRetainer BillingType = "retainer"
)

type ProjectClient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project carrega os campos persistidos e os derivados (HoursLogged, TotalValue,
// InvoicedAmount, ProgressPercentage) preenchidos na leitura.
type Project struct {
	ID                     string         `json:"id"`
	UserID                 int            `json:"-"`
	ClientID               string         `json:"clientId"`
	Client                 *ProjectClient `json:"client,omitempty"`
	Name                   string         `json:"name"`
	Status                 ProjectStatus  `json:"status"`
	BillingType            BillingType    `json:"billingType"`
	Rate                   float64        `json:"rate"`
	Budget                 float64        `json:"budget"`
	Currency               string         `json:"currency"`
	HoursEstimated         float64        `json:"hoursEstimated"`
	MonthlyCommitmentHours float64        `json:"monthlyCommitmentHours"`
	Deadline               *Date          `json:"deadline"`
	Color                  *string        `json:"color"`
	HoursLogged            float64        `json:"hoursLogged"`
	TotalValue             float64        `json:"totalValue"`
	InvoicedAmount         float64        `json:"invoicedAmount"`
	ProgressPercentage     float64        `json:"progressPercentage"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

// ComputeDerived preenche TotalValue e ProgressPercentage a partir dos campos persistidos
func (p *Project) ComputeDerived() {
	switch p.BillingType {
	case BillingHourly:
		p.TotalValue = p.Rate * p.HoursEstimated
	case BillingFixed:
		p.TotalValue = p.Budget
	case BillingRetainer:
		p.TotalValue = p.Rate
	}

	p.ProgressPercentage = 0
	if p.HoursEstimated > 0 {
		p.ProgressPercentage = p.HoursLogged / p.HoursEstimated * 100
	}
}

type CreateProjectRequest struct {
	ClientID               string        `json:"clientId" validate:"required"`
	Name                   string        `json:"name" validate:"required,max=160"`
	Status                 ProjectStatus `json:"status" validate:"omitempty,oneof=active paused completed archived"`
	BillingType            BillingType   `json:"billingType" validate:"required,oneof=hourly fixed retainer"`
	Rate                   float64       `json:"rate" validate:"gte=0"`
	Budget                 float64       `json:"budget" validate:"gte=0"`
	Currency               string        `json:"currency" validate:"omitempty,len=3"`
	HoursEstimated         float64       `json:"hoursEstimated" validate:"gte=0"`
	MonthlyCommitmentHours float64       `json:"monthlyCommitmentHours" validate:"gte=0,lte=744"`
	Deadline               *Date         `json:"deadline"`
	Color                  *string       `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateProjectRequest struct {
	ClientID               *string        `json:"clientId" validate:"omitempty,min=1"`
	Name                   *string        `json:"name" validate:"omitempty,min=1,max=160"`
	Status                 *ProjectStatus `json:"status" validate:"omitempty,oneof=active paused completed archived"`
	BillingType            *BillingType   `json:"billingType" validate:"omitempty,oneof=hourly fixed retainer"`
	Rate                   *float64       `json:"rate" validate:"omitempty,gte=0"`
	Budget                 *float64       `json:"budget" validate:"omitempty,gte=0"`
	Currency               *string        `json:"currency" validate:"omitempty,len=3"`
	HoursEstimated         *float64       `json:"hoursEstimated" validate:"omitempty,gte=0"`
	MonthlyCommitmentHours *float64       `json:"monthlyCommitmentHours" validate:"omitempty,gte=0,lte=744"`
	Deadline               *Date          `json:"deadline"`
	Color                  *string        `json:"color" validate:"omitempty,hexcolor"`
}

type ProjectFilter struct {
	UserID   int
	Status   *ProjectStatus
	ClientID *string
}

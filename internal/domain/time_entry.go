package domain

import "time"

type TimeEntry struct {
	ID              string     `json:"id"`
	UserID          int        `json:"-"`
	ProjectID       string     `json:"projectId"`
	Description     *string    `json:"description"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationSeconds int64      `json:"durationSeconds"`
	Billable        bool       `json:"billable"`
	Date            Date       `json:"date"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Running indica um timer iniciado e ainda não parado
func (t *TimeEntry) Running() bool {
	return t.StartTime != nil && t.EndTime == nil
}

type StartTimerRequest struct {
	ProjectID   string  `json:"projectId" validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Billable    *bool   `json:"billable"`
}

type CreateTimeEntryRequest struct {
	ProjectID       string     `json:"projectId" validate:"required"`
	Description     *string    `json:"description" validate:"omitempty,max=500"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationSeconds int64      `json:"durationSeconds" validate:"gte=0"`
	Billable        *bool      `json:"billable"`
	Date            *Date      `json:"date"`
}

type UpdateTimeEntryRequest struct {
	ProjectID       *string    `json:"projectId" validate:"omitempty,min=1"`
	Description     *string    `json:"description" validate:"omitempty,max=500"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationSeconds *int64     `json:"durationSeconds" validate:"omitempty,gt=0"`
	Billable        *bool      `json:"billable"`
	Date            *Date      `json:"date"`
}

type TimeEntryFilter struct {
	UserID    int
	ProjectID *string
	From      *time.Time
	To        *time.Time
}

type TimeTotals struct {
	TodaySeconds int64   `json:"todaySeconds"`
	WeekSeconds  int64   `json:"weekSeconds"`
	TodayHours   float64 `json:"todayHours"`
	WeekHours    float64 `json:"weekHours"`
}

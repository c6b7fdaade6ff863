package utils

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout   = "2006-01-02"
	PeriodLayout = "01-2006"
)

var ErrInvalidPeriod = errors.New("período inválido, use o formato mm-yyyy")

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Period é um mês de calendário em UTC
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod interpreta "mm-yyyy". String vazia devolve o mês corrente.
func ParsePeriod(s string, now time.Time) (Period, error) {
	if s == "" {
		return PeriodOf(now), nil
	}

	t, err := time.Parse(PeriodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
	}

	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf devolve o período que contém t
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

// Start é o primeiro instante do mês
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End é o primeiro instante do mês seguinte (exclusivo)
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// LastDay é o último dia do mês, usado na apresentação
func (p Period) LastDay() time.Time {
	return p.End().AddDate(0, 0, -1)
}

func (p Period) Previous() Period {
	return PeriodOf(p.Start().AddDate(0, -1, 0))
}

// Label devolve "January 2026"
func (p Period) Label() string {
	return p.Start().Format("January 2006")
}

func (p Period) String() string {
	return p.Start().Format(PeriodLayout)
}

// StartOfDay trunca t para meia-noite UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfISOWeek devolve a segunda-feira da semana ISO de t
func StartOfISOWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

package entity

import (
	"fmt"
	"time"
)

const (
	minPeriodYear = 1900
	maxPeriodYear = 9999
)

// MonthNames holds the Portuguese month labels used in reports and export file names.
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Period is a month/year bucket used to partition payments and budgets.
type Period struct {
	Month int
	Year  int
}

// NewPeriod creates a Period without validating it.
func NewPeriod(month, year int) Period {
	return Period{Month: month, Year: year}
}

// Valid reports whether month is within 1..12 and the year has four digits.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= minPeriodYear && p.Year <= maxPeriodYear
}

// AddMonths returns the period n months later, carrying into following years.
func (p Period) AddMonths(n int) Period {
	index := (p.Month - 1) + n
	yearOffset := index / 12
	monthIndex := index % 12
	if monthIndex < 0 {
		monthIndex += 12
		yearOffset--
	}
	return Period{Month: monthIndex + 1, Year: p.Year + yearOffset}
}

// Date returns the given day of the period as a UTC calendar date.
func (p Period) Date(day int) time.Time {
	return time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC)
}

// MonthName returns the Portuguese label of the period's month.
func (p Period) MonthName() string {
	if p.Month < 1 || p.Month > 12 {
		return ""
	}
	return MonthNames[p.Month-1]
}

// String formats the period as MM/YYYY.
func (p Period) String() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

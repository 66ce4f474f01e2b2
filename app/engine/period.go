// Package engine implements the rent-period accounting calculations: which
// monthly periods a contract has accrued, what each one's due date is, how the
// payments recorded against it classify the period, and the financial metrics
// derived from that. Every function is pure and takes the reference date as an
// explicit parameter; the engine never reads the system clock and performs no I/O.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// UpcomingPeriod describes a rent period whose due date has not been reached.
type UpcomingPeriod struct {
	PeriodNumber int             `json:"period_number"`
	DueDate      time.Time       `json:"due_date"`
	Rent         decimal.Decimal `json:"rent"`
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month.
// Day zero of the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysBetween returns the whole days from a to b, negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// DueDate returns the due date of the given 1-based period of a contract.
// Period 1 is due in the contract's start month; each subsequent period is due
// one calendar month later, on the contract's expiration day. The day is
// clamped to the month length, which never fires for valid contracts since the
// expiration day is capped at 20.
func DueDate(c *models.Contract, periodNumber int) time.Time {
	start := dateOnly(c.StartDate)
	offset := periodNumber - 1

	monthIndex := int(start.Month()) - 1 + offset
	year := start.Year() + monthIndex/12
	month := time.Month(monthIndex%12 + 1)

	day := c.ExpirationDay
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CurrentPeriodNumber returns the 1-based number of the period that today falls
// in, or 0 when the contract has not started. The number advances on calendar
// month boundaries, independent of the expiration day: a period can be current
// before its due date has passed.
func CurrentPeriodNumber(c *models.Contract, today time.Time) int {
	start := dateOnly(c.StartDate)
	now := dateOnly(today)
	if now.Before(start) {
		return 0
	}
	return (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month()) + 1
}

// PastPeriodNumbers returns, in ascending order, the numbers of every period
// whose due date has been reached. All periods before the current one are due
// in earlier months, so a single boundary check on the current period decides
// whether it is included.
func PastPeriodNumbers(c *models.Contract, today time.Time) []int {
	current := CurrentPeriodNumber(c, today)
	if current == 0 {
		return nil
	}

	last := current
	if DueDate(c, current).After(dateOnly(today)) {
		last = current - 1
	}
	if last == 0 {
		return nil
	}

	periods := make([]int, last)
	for i := range periods {
		periods[i] = i + 1
	}
	return periods
}

// DurationMonths returns the total number of monthly periods a contract spans.
func DurationMonths(c *models.Contract) int {
	start := dateOnly(c.StartDate)
	end := dateOnly(c.EndDate)
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

// UpcomingPeriods returns the periods after the current one, through the end of
// the contract. The result is empty once the final period has been reached.
func UpcomingPeriods(c *models.Contract, today time.Time) []UpcomingPeriod {
	current := CurrentPeriodNumber(c, today)
	total := DurationMonths(c)

	var upcoming []UpcomingPeriod
	for n := current + 1; n <= total; n++ {
		upcoming = append(upcoming, UpcomingPeriod{
			PeriodNumber: n,
			DueDate:      DueDate(c, n),
			Rent:         c.Rent,
		})
	}
	return upcoming
}

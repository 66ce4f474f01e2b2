package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// Ledger bundles a contract with its payments grouped by period number. It is
// the unit of input the metrics functions consume; callers assemble it from
// storage, already filtered to the acting owner's scope.
type Ledger struct {
	Contract         models.Contract
	PaymentsByPeriod map[int][]models.Payment
}

// ContractMetrics is the point-in-time financial summary of one contract.
type ContractMetrics struct {
	State          models.ContractState `json:"state"`
	TotalExpected  decimal.Decimal      `json:"total_expected"`
	TotalIncome    decimal.Decimal      `json:"total_income"`
	CollectionRate float64              `json:"collection_rate"`
	AvgDelayDays   float64              `json:"avg_delay_days"`
	DaysUntilStart int                  `json:"days_until_start"`
	DaysUntilEnd   int                  `json:"days_until_end"`
}

// PropertySummary is the owner-dashboard row for a single property.
type PropertySummary struct {
	PropertyID     string                `json:"property_id"`
	Name           string                `json:"name"`
	State          models.OccupancyState `json:"state"`
	TotalExpected  decimal.Decimal       `json:"total_expected"`
	TotalIncome    decimal.Decimal       `json:"total_income"`
	CollectionRate float64               `json:"collection_rate"`
	AvgDelayDays   float64               `json:"avg_delay_days"`
	DaysUntilStart int                   `json:"days_until_start,omitempty"`
	DaysUntilEnd   int                   `json:"days_until_end,omitempty"`
}

// AgingBuckets classifies strictly positive outstanding balances by how many
// days overdue their periods are.
type AgingBuckets struct {
	Current    decimal.Decimal `json:"current"`
	Days0to7   decimal.Decimal `json:"days_0_7"`
	Days8to30  decimal.Decimal `json:"days_8_30"`
	Days31Plus decimal.Decimal `json:"days_31_plus"`
}

// TrendPoint is one month of the trailing income series.
type TrendPoint struct {
	Month    time.Time       `json:"month"`
	Label    string          `json:"label"`
	Expected decimal.Decimal `json:"expected"`
	Received decimal.Decimal `json:"received"`
}

// PeriodDetail is one row of a contract's per-period status table.
type PeriodDetail struct {
	PeriodNumber  int             `json:"period_number"`
	DueDate       time.Time       `json:"due_date"`
	Status        PeriodStatus    `json:"status"`
	AcceptedTotal decimal.Decimal `json:"accepted_total"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	DelayDays     int             `json:"delay_days"`
}

// ContractStatus derives where a contract sits relative to today. Both
// boundary dates are inclusive: a contract is active on its start and end days.
func ContractStatus(c *models.Contract, today time.Time) models.ContractState {
	now := dateOnly(today)
	switch {
	case now.Before(dateOnly(c.StartDate)):
		return models.ContractUpcoming
	case now.After(dateOnly(c.EndDate)):
		return models.ContractExpired
	default:
		return models.ContractActive
	}
}

// MetricsForContract computes the financial summary of one contract. Upcoming
// and expired contracts report zero figures; for expired ones this mirrors the
// dashboard behavior of not surfacing historical income on vacated properties.
func MetricsForContract(c *models.Contract, paymentsByPeriod map[int][]models.Payment, today time.Time) ContractMetrics {
	m := ContractMetrics{
		State:         ContractStatus(c, today),
		TotalExpected: decimal.Zero,
		TotalIncome:   decimal.Zero,
	}

	switch m.State {
	case models.ContractUpcoming:
		m.DaysUntilStart = daysBetween(today, c.StartDate)
		return m
	case models.ContractExpired:
		return m
	}

	past := PastPeriodNumbers(c, today)
	m.TotalExpected = c.Rent.Mul(decimal.NewFromInt(int64(len(past))))
	for _, n := range past {
		m.TotalIncome = m.TotalIncome.Add(AcceptedTotal(paymentsByPeriod[n]))
	}
	m.CollectionRate = collectionRate(m.TotalIncome, m.TotalExpected)
	m.AvgDelayDays = AverageDelay(c, paymentsByPeriod, today)
	m.DaysUntilEnd = daysBetween(today, c.EndDate)
	return m
}

// collectionRate returns accepted income over expected income as a percentage
// rounded to one decimal, and 0.0 when nothing was expected yet.
func collectionRate(income, expected decimal.Decimal) float64 {
	if !expected.IsPositive() {
		return 0.0
	}
	rate, _ := income.Mul(decimal.NewFromInt(100)).Div(expected).Round(1).Float64()
	return rate
}

// PropertySummaries builds the owner-dashboard rows: one entry per property,
// classified by the lifecycle stage of its current contract. ledgerByProperty
// holds each property's non-archived contract, when it has one.
func PropertySummaries(properties []models.Property, ledgerByProperty map[string]*Ledger, today time.Time) []PropertySummary {
	summaries := make([]PropertySummary, 0, len(properties))
	for _, prop := range properties {
		row := PropertySummary{
			PropertyID:    prop.ID,
			Name:          prop.Name,
			State:         models.PropertyVacant,
			TotalExpected: decimal.Zero,
			TotalIncome:   decimal.Zero,
		}

		ledger := ledgerByProperty[prop.ID]
		if ledger == nil {
			summaries = append(summaries, row)
			continue
		}

		metrics := MetricsForContract(&ledger.Contract, ledger.PaymentsByPeriod, today)
		switch metrics.State {
		case models.ContractUpcoming:
			row.State = models.PropertyUpcoming
			row.DaysUntilStart = metrics.DaysUntilStart
		case models.ContractExpired:
			// Vacant with zero figures, historical totals not surfaced.
		case models.ContractActive:
			row.State = models.PropertyOccupied
			row.TotalExpected = metrics.TotalExpected
			row.TotalIncome = metrics.TotalIncome
			row.CollectionRate = metrics.CollectionRate
			row.AvgDelayDays = metrics.AvgDelayDays
			row.DaysUntilEnd = metrics.DaysUntilEnd
		}
		summaries = append(summaries, row)
	}
	return summaries
}

// OutstandingAging buckets every strictly positive outstanding balance across
// the given contracts by days overdue. Periods that are covered or in credit
// contribute to no bucket.
func OutstandingAging(ledgers []Ledger, today time.Time) AgingBuckets {
	buckets := AgingBuckets{
		Current:    decimal.Zero,
		Days0to7:   decimal.Zero,
		Days8to30:  decimal.Zero,
		Days31Plus: decimal.Zero,
	}

	for _, ledger := range ledgers {
		c := ledger.Contract
		current := CurrentPeriodNumber(&c, today)
		for n := 1; n <= current; n++ {
			outstanding := Outstanding(c.Rent, AcceptedTotal(ledger.PaymentsByPeriod[n]))
			if !outstanding.IsPositive() {
				continue
			}
			overdue := daysBetween(DueDate(&c, n), today)
			switch {
			case overdue <= 0:
				buckets.Current = buckets.Current.Add(outstanding)
			case overdue <= 7:
				buckets.Days0to7 = buckets.Days0to7.Add(outstanding)
			case overdue <= 30:
				buckets.Days8to30 = buckets.Days8to30.Add(outstanding)
			default:
				buckets.Days31Plus = buckets.Days31Plus.Add(outstanding)
			}
		}
	}
	return buckets
}

// IncomeTrend returns the trailing nMonths of expected versus received income,
// oldest month first. Months are stepped by subtracting 30 days per step and
// normalizing to the month start, an approximation of calendar stepping.
// Received amounts are attributed to the month a payment's period was due in,
// derived from its period number, not from when it was submitted.
func IncomeTrend(ledgers []Ledger, today time.Time, nMonths int) []TrendPoint {
	points := make([]TrendPoint, 0, nMonths)
	for i := nMonths - 1; i >= 0; i-- {
		anchor := dateOnly(today).AddDate(0, 0, -30*i)
		month := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)

		expected := decimal.Zero
		received := decimal.Zero
		for _, ledger := range ledgers {
			c := ledger.Contract
			if contractCoversMonth(&c, month) {
				expected = expected.Add(c.Rent)
			}
			for n, payments := range ledger.PaymentsByPeriod {
				due := DueDate(&c, n)
				if due.Year() != month.Year() || due.Month() != month.Month() {
					continue
				}
				received = received.Add(AcceptedTotal(payments))
			}
		}

		points = append(points, TrendPoint{
			Month:    month,
			Label:    month.Format("2006-01"),
			Expected: expected,
			Received: received,
		})
	}
	return points
}

// contractCoversMonth reports whether a contract has a rent period falling in
// the given month, at month granularity.
func contractCoversMonth(c *models.Contract, month time.Time) bool {
	start := dateOnly(c.StartDate)
	end := dateOnly(c.EndDate)
	idx := month.Year()*12 + int(month.Month()) - 1
	startIdx := start.Year()*12 + int(start.Month()) - 1
	endIdx := end.Year()*12 + int(end.Month()) - 1
	return idx >= startIdx && idx <= endIdx
}

// PeriodTable returns the per-period status rows of a contract, covering every
// period from the first through the current one.
func PeriodTable(c *models.Contract, paymentsByPeriod map[int][]models.Payment, today time.Time) []PeriodDetail {
	current := CurrentPeriodNumber(c, today)
	rows := make([]PeriodDetail, 0, current)
	for n := 1; n <= current; n++ {
		accepted := AcceptedTotal(paymentsByPeriod[n])
		due := DueDate(c, n)
		rows = append(rows, PeriodDetail{
			PeriodNumber:  n,
			DueDate:       due,
			Status:        ClassifyPeriod(c.Rent, accepted),
			AcceptedTotal: accepted,
			Outstanding:   Outstanding(c.Rent, accepted),
			DelayDays:     CompletionDelay(paymentsByPeriod[n], c.Rent, due, today),
		})
	}
	return rows
}

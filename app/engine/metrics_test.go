package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

func TestContractStatus_InclusiveBounds(t *testing.T) {
	c := testContract(date(2026, time.March, 1), date(2026, time.August, 31), 10, "1000")

	tests := []struct {
		today time.Time
		want  models.ContractState
	}{
		{date(2026, time.February, 28), models.ContractUpcoming},
		{date(2026, time.March, 1), models.ContractActive},
		{date(2026, time.June, 15), models.ContractActive},
		{date(2026, time.August, 31), models.ContractActive},
		{date(2026, time.September, 1), models.ContractExpired},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContractStatus(c, tt.today), "today %s", tt.today)
	}
}

func TestMetricsForContract_FullLifecycleScenario(t *testing.T) {
	// Contract 2026-01-01..2026-12-31, due on the 1st, rent 1000. On March 15
	// three periods are past; only the first is paid.
	c := testContract(date(2026, time.January, 1), date(2026, time.December, 31), 1, "1000")
	today := date(2026, time.March, 15)

	require.Equal(t, 3, CurrentPeriodNumber(c, today))
	require.Equal(t, []int{1, 2, 3}, PastPeriodNumbers(c, today))

	byPeriod := map[int][]models.Payment{
		1: {payment("1000", models.PaymentAccepted, date(2026, time.January, 1))},
	}
	m := MetricsForContract(c, byPeriod, today)

	assert.Equal(t, models.ContractActive, m.State)
	assert.True(t, m.TotalExpected.Equal(decimal.RequireFromString("3000")))
	assert.True(t, m.TotalIncome.Equal(decimal.RequireFromString("1000")))
	assert.Equal(t, 33.3, m.CollectionRate)
	assert.Equal(t, 291, m.DaysUntilEnd)
}

func TestMetricsForContract_NoPastPeriodsNoDivisionByZero(t *testing.T) {
	// Active, but the first due date is still ahead: everything zero.
	c := testContract(date(2026, time.March, 10), date(2027, time.March, 9), 20, "1000")
	m := MetricsForContract(c, nil, date(2026, time.March, 12))

	assert.Equal(t, models.ContractActive, m.State)
	assert.True(t, m.TotalExpected.IsZero())
	assert.True(t, m.TotalIncome.IsZero())
	assert.Equal(t, 0.0, m.CollectionRate)
	assert.Equal(t, 0.0, m.AvgDelayDays)
}

func TestMetricsForContract_Upcoming(t *testing.T) {
	c := testContract(date(2026, time.May, 1), date(2027, time.April, 30), 5, "1000")
	m := MetricsForContract(c, nil, date(2026, time.April, 20))

	assert.Equal(t, models.ContractUpcoming, m.State)
	assert.Equal(t, 11, m.DaysUntilStart)
	assert.True(t, m.TotalExpected.IsZero())
}

func TestMetricsForContract_ExpiredReportsZeroFigures(t *testing.T) {
	// Historical totals are deliberately not surfaced for expired contracts.
	c := testContract(date(2025, time.January, 1), date(2025, time.December, 31), 1, "1000")
	byPeriod := map[int][]models.Payment{
		1: {payment("1000", models.PaymentAccepted, date(2025, time.January, 1))},
	}
	m := MetricsForContract(c, byPeriod, date(2026, time.March, 15))

	assert.Equal(t, models.ContractExpired, m.State)
	assert.True(t, m.TotalExpected.IsZero())
	assert.True(t, m.TotalIncome.IsZero())
	assert.Equal(t, 0.0, m.CollectionRate)
}

func TestPropertySummaries(t *testing.T) {
	today := date(2026, time.March, 15)
	properties := []models.Property{
		{ID: "p-vacant", OwnerID: "o-1", Name: "Unit A"},
		{ID: "p-upcoming", OwnerID: "o-1", Name: "Unit B"},
		{ID: "p-occupied", OwnerID: "o-1", Name: "Unit C"},
		{ID: "p-expired", OwnerID: "o-1", Name: "Unit D"},
	}

	occupied := testContract(date(2026, time.January, 1), date(2026, time.December, 31), 1, "1000")
	upcoming := testContract(date(2026, time.April, 1), date(2027, time.March, 31), 1, "800")
	expired := testContract(date(2025, time.January, 1), date(2025, time.December, 31), 1, "900")

	ledgers := map[string]*Ledger{
		"p-upcoming": {Contract: *upcoming},
		"p-occupied": {
			Contract: *occupied,
			PaymentsByPeriod: map[int][]models.Payment{
				1: {payment("1000", models.PaymentAccepted, date(2026, time.January, 1))},
			},
		},
		"p-expired": {Contract: *expired},
	}

	rows := PropertySummaries(properties, ledgers, today)
	require.Len(t, rows, 4)

	assert.Equal(t, models.PropertyVacant, rows[0].State)
	assert.True(t, rows[0].TotalExpected.IsZero())

	assert.Equal(t, models.PropertyUpcoming, rows[1].State)
	assert.Equal(t, 17, rows[1].DaysUntilStart)

	assert.Equal(t, models.PropertyOccupied, rows[2].State)
	assert.True(t, rows[2].TotalExpected.Equal(decimal.RequireFromString("3000")))
	assert.True(t, rows[2].TotalIncome.Equal(decimal.RequireFromString("1000")))
	assert.Equal(t, 33.3, rows[2].CollectionRate)

	// Expired contracts leave the property vacant with zero figures.
	assert.Equal(t, models.PropertyVacant, rows[3].State)
	assert.True(t, rows[3].TotalIncome.IsZero())
}

func TestOutstandingAging_BucketBoundaries(t *testing.T) {
	today := date(2026, time.August, 15)
	rent := "500"

	// Single-period contracts, each with a due date a controlled number of
	// days before (or on) the reference date.
	mk := func(expirationDay int) Ledger {
		return Ledger{Contract: *testContract(date(2026, time.August, 1), date(2027, time.July, 31), expirationDay, rent)}
	}

	tests := []struct {
		name    string
		ledger  Ledger
		overdue int
		bucket  func(AgingBuckets) decimal.Decimal
	}{
		{"due today is current", mk(15), 0, func(b AgingBuckets) decimal.Decimal { return b.Current }},
		{"due tomorrow is current", mk(16), -1, func(b AgingBuckets) decimal.Decimal { return b.Current }},
		{"one day overdue", mk(14), 1, func(b AgingBuckets) decimal.Decimal { return b.Days0to7 }},
		{"seven days overdue", mk(8), 7, func(b AgingBuckets) decimal.Decimal { return b.Days0to7 }},
		{"eight days overdue", mk(7), 8, func(b AgingBuckets) decimal.Decimal { return b.Days8to30 }},
		{"fourteen days overdue", mk(1), 14, func(b AgingBuckets) decimal.Decimal { return b.Days8to30 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := OutstandingAging([]Ledger{tt.ledger}, today)
			assert.True(t, tt.bucket(buckets).Equal(decimal.RequireFromString(rent)),
				"expected %s in the bucket for %d days overdue", rent, tt.overdue)
		})
	}
}

func TestOutstandingAging_OldPeriodsLandInDeepBuckets(t *testing.T) {
	today := date(2026, time.August, 31)
	c := testContract(date(2026, time.July, 1), date(2027, time.June, 30), 1, "500")

	// Period 1 due 2026-07-01 (61 days overdue), period 2 due 2026-08-01
	// (30 days overdue). Nothing collected.
	buckets := OutstandingAging([]Ledger{{Contract: *c}}, today)

	assert.True(t, buckets.Days31Plus.Equal(decimal.RequireFromString("500")))
	assert.True(t, buckets.Days8to30.Equal(decimal.RequireFromString("500")))
	assert.True(t, buckets.Current.IsZero())
	assert.True(t, buckets.Days0to7.IsZero())
}

func TestOutstandingAging_SkipsCoveredAndPartialAmounts(t *testing.T) {
	today := date(2026, time.August, 31)
	c := testContract(date(2026, time.July, 1), date(2027, time.June, 30), 1, "500")
	ledger := Ledger{
		Contract: *c,
		PaymentsByPeriod: map[int][]models.Payment{
			1: {payment("500", models.PaymentAccepted, date(2026, time.July, 1))},  // covered, skipped
			2: {payment("300", models.PaymentAccepted, date(2026, time.August, 2))}, // 200 remains
		},
	}

	buckets := OutstandingAging([]Ledger{ledger}, today)

	assert.True(t, buckets.Days31Plus.IsZero())
	assert.True(t, buckets.Days8to30.Equal(decimal.RequireFromString("200")))
}

func TestIncomeTrend_TargetMonthAttribution(t *testing.T) {
	// The payment for period 1 was submitted in March but targets January.
	today := date(2026, time.March, 15)
	c := testContract(date(2026, time.January, 1), date(2026, time.December, 31), 1, "1000")
	ledger := Ledger{
		Contract: *c,
		PaymentsByPeriod: map[int][]models.Payment{
			1: {payment("1000", models.PaymentAccepted, date(2026, time.March, 10))},
		},
	}

	points := IncomeTrend([]Ledger{ledger}, today, 3)
	require.Len(t, points, 3)

	assert.Equal(t, "2026-01", points[0].Label)
	assert.True(t, points[0].Expected.Equal(decimal.RequireFromString("1000")))
	assert.True(t, points[0].Received.Equal(decimal.RequireFromString("1000")))

	assert.Equal(t, "2026-02", points[1].Label)
	assert.True(t, points[1].Expected.Equal(decimal.RequireFromString("1000")))
	assert.True(t, points[1].Received.IsZero())

	assert.Equal(t, "2026-03", points[2].Label)
	assert.True(t, points[2].Received.IsZero())
}

func TestIncomeTrend_ContractsOutsideMonthExcluded(t *testing.T) {
	today := date(2026, time.March, 15)
	c := testContract(date(2026, time.March, 1), date(2026, time.December, 31), 1, "1000")

	points := IncomeTrend([]Ledger{{Contract: *c}}, today, 3)
	require.Len(t, points, 3)

	// January and February predate the contract.
	assert.True(t, points[0].Expected.IsZero())
	assert.True(t, points[1].Expected.IsZero())
	assert.True(t, points[2].Expected.Equal(decimal.RequireFromString("1000")))
}

func TestPeriodTable(t *testing.T) {
	today := date(2026, time.March, 15)
	c := testContract(date(2026, time.January, 1), date(2026, time.December, 31), 1, "1000")
	byPeriod := map[int][]models.Payment{
		1: {payment("1000", models.PaymentAccepted, date(2026, time.January, 3))},
		2: {payment("400", models.PaymentAccepted, date(2026, time.February, 1))},
	}

	rows := PeriodTable(c, byPeriod, today)
	require.Len(t, rows, 3)

	assert.Equal(t, PeriodPaid, rows[0].Status)
	assert.Equal(t, 2, rows[0].DelayDays)
	assert.True(t, rows[0].Outstanding.IsZero())

	assert.Equal(t, PeriodPartial, rows[1].Status)
	assert.True(t, rows[1].Outstanding.Equal(decimal.RequireFromString("600")))
	// Still open: late by the days since its due date.
	assert.Equal(t, 42, rows[1].DelayDays)

	assert.Equal(t, PeriodUnpaid, rows[2].Status)
	assert.Equal(t, date(2026, time.March, 1), rows[2].DueDate)
	assert.Equal(t, 14, rows[2].DelayDays)
}

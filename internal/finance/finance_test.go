package finance

import (
	"math"
	"testing"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

func txn(txnType, category, date string, amount float64) models.Transaction {
	return models.Transaction{
		Type:     txnType,
		Category: category,
		TxnDate:  date,
		Amount:   amount,
	}
}

func TestComputeBalance(t *testing.T) {
	records := []models.Transaction{
		txn(models.TypeIncome, "Salary", "2026-08-01", 150000),
		txn(models.TypeExpense, "Food & Drinks", "2026-08-02", 2500),
		txn(models.TypeExpense, "Transport", "2026-08-03", 1200),
		txn(models.TypeIncome, "Freelance", "2026-08-10", 40000),
	}

	if got := ComputeBalance(records, 10000); got != 196300 {
		t.Fatalf("balance = %v, want 196300", got)
	}
	if got := ComputeBalance(nil, 5000); got != 5000 {
		t.Fatalf("balance with no records = %v, want 5000", got)
	}
	if got := ComputeBalance(nil, -2000); got != -2000 {
		t.Fatalf("balance with debt start = %v, want -2000", got)
	}
}

func TestComputeBalanceOrderIndependent(t *testing.T) {
	records := []models.Transaction{
		txn(models.TypeIncome, "Salary", "2026-08-01", 80000),
		txn(models.TypeExpense, "Rent & Housing", "2026-08-02", 35000),
		txn(models.TypeExpense, "Food & Drinks", "2026-08-05", 1234.56),
		txn(models.TypeIncome, "Gift", "2026-08-07", 500.25),
	}
	reversed := make([]models.Transaction, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	a := ComputeBalance(records, 100)
	b := ComputeBalance(reversed, 100)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("balance depends on order: %v vs %v", a, b)
	}
}

func TestComputeDailyBurnRate(t *testing.T) {
	records := []models.Transaction{
		txn(models.TypeExpense, "Food & Drinks", "2026-08-01", 3000),
		txn(models.TypeExpense, "Transport", "2026-08-02", 1500),
		txn(models.TypeIncome, "Salary", "2026-08-03", 90000),
	}

	if got := ComputeDailyBurnRate(records, 30); got != 150 {
		t.Fatalf("burn rate = %v, want 150", got)
	}
	if got := ComputeDailyBurnRate(nil, 30); got != 0 {
		t.Fatalf("burn rate of empty list = %v, want 0", got)
	}
	if got := ComputeDailyBurnRate(records, 0); got != 0 {
		t.Fatalf("burn rate with zero window = %v, want 0", got)
	}
	if got := ComputeDailyBurnRate(records, 30); got < 0 {
		t.Fatalf("burn rate is negative: %v", got)
	}
}

func TestComputeDaysRemaining(t *testing.T) {
	if got := ComputeDaysRemaining(1000, 0); got != nil {
		t.Fatalf("days remaining with zero burn = %v, want nil", *got)
	}
	if got := ComputeDaysRemaining(-5, 10); got == nil || *got != 0 {
		t.Fatalf("days remaining with depleted balance = %v, want 0", got)
	}
	if got := ComputeDaysRemaining(100, 10); got == nil || *got != 10 {
		t.Fatalf("days remaining = %v, want 10", got)
	}
	// Floor, not round
	if got := ComputeDaysRemaining(109, 10); got == nil || *got != 10 {
		t.Fatalf("days remaining = %v, want 10", got)
	}
}

func TestClassifySurvivalBoundaries(t *testing.T) {
	cases := []struct {
		days     int
		expected SurvivalStatus
	}{
		{0, SurvivalCritical},
		{6, SurvivalCritical},
		{7, SurvivalWarning},
		{29, SurvivalWarning},
		{30, SurvivalBalanced},
		{365, SurvivalBalanced},
	}

	for _, tc := range cases {
		d := tc.days
		if got := ClassifySurvival(&d); got != tc.expected {
			t.Fatalf("ClassifySurvival(%d) = %q, want %q", tc.days, got, tc.expected)
		}
	}

	if got := ClassifySurvival(nil); got != SurvivalBalanced {
		t.Fatalf("ClassifySurvival(nil) = %q, want balanced", got)
	}
}

func TestComputeSurvivalStats(t *testing.T) {
	records := []models.Transaction{
		txn(models.TypeExpense, "Food & Drinks", "2026-08-01", 1500),
		txn(models.TypeExpense, "Transport", "2026-08-02", 1500),
	}

	stats := ComputeSurvivalStats(2000, records)
	if stats.Balance != 2000 {
		t.Fatalf("balance = %v, want 2000", stats.Balance)
	}
	if stats.DailyBurnRate != 100 {
		t.Fatalf("burn rate = %v, want 100", stats.DailyBurnRate)
	}
	if stats.DaysRemaining == nil || *stats.DaysRemaining != 20 {
		t.Fatalf("days remaining = %v, want 20", stats.DaysRemaining)
	}
	if stats.Status != SurvivalWarning {
		t.Fatalf("status = %q, want warning", stats.Status)
	}
}

func TestComputeSurvivalStatsNoBurn(t *testing.T) {
	stats := ComputeSurvivalStats(5000, nil)
	if stats.DailyBurnRate != 0 {
		t.Fatalf("burn rate = %v, want 0", stats.DailyBurnRate)
	}
	if stats.DaysRemaining != nil {
		t.Fatalf("days remaining = %v, want nil", *stats.DaysRemaining)
	}
	if stats.Status != SurvivalBalanced {
		t.Fatalf("status = %q, want balanced", stats.Status)
	}
}

func TestComputeSurvivalStatsIdempotent(t *testing.T) {
	records := []models.Transaction{
		txn(models.TypeExpense, "Shopping", "2026-08-05", 9000),
	}

	first := ComputeSurvivalStats(1200, records)
	second := ComputeSurvivalStats(1200, records)

	if first.Balance != second.Balance || first.DailyBurnRate != second.DailyBurnRate || first.Status != second.Status {
		t.Fatalf("repeated call diverged: %+v vs %+v", first, second)
	}
	if (first.DaysRemaining == nil) != (second.DaysRemaining == nil) {
		t.Fatal("repeated call diverged on days remaining nil-ness")
	}
	if first.DaysRemaining != nil && *first.DaysRemaining != *second.DaysRemaining {
		t.Fatalf("repeated call diverged: %d vs %d", *first.DaysRemaining, *second.DaysRemaining)
	}
}

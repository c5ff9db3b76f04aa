package finance

import (
	"testing"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

var summaryNow = time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

func TestWeeklySpendingByCategory(t *testing.T) {
	twoDaysAgo := summaryNow.AddDate(0, 0, -2).Format(DateLayout)
	tenDaysAgo := summaryNow.AddDate(0, 0, -10).Format(DateLayout)

	records := []models.Transaction{
		txn(models.TypeExpense, "Food & Drinks", twoDaysAgo, 500),
		txn(models.TypeExpense, "Food & Drinks", twoDaysAgo, 700),
		txn(models.TypeExpense, "Food & Drinks", tenDaysAgo, 1000),
		txn(models.TypeIncome, "Salary", twoDaysAgo, 90000),
	}

	weekly := WeeklySpendingByCategory(records, summaryNow)
	if len(weekly) != 1 {
		t.Fatalf("got %d categories, want 1: %v", len(weekly), weekly)
	}

	food := weekly["Food & Drinks"]
	if food.Amount != 1200 {
		t.Fatalf("food amount = %v, want 1200", food.Amount)
	}
	if food.Count != 2 {
		t.Fatalf("food count = %d, want 2", food.Count)
	}
}

func TestWeeklySpendingByCategoryEmpty(t *testing.T) {
	weekly := WeeklySpendingByCategory(nil, summaryNow)
	if len(weekly) != 0 {
		t.Fatalf("got %d categories, want empty map", len(weekly))
	}

	old := summaryNow.AddDate(0, 0, -30).Format(DateLayout)
	weekly = WeeklySpendingByCategory([]models.Transaction{
		txn(models.TypeExpense, "Transport", old, 800),
	}, summaryNow)
	if len(weekly) != 0 {
		t.Fatalf("got %d categories for stale records, want empty map", len(weekly))
	}
}

func TestWeeklySpendingWindowInclusive(t *testing.T) {
	edge := summaryNow.AddDate(0, 0, -7).Format(DateLayout)
	today := summaryNow.Format(DateLayout)

	weekly := WeeklySpendingByCategory([]models.Transaction{
		txn(models.TypeExpense, "Transport", edge, 300),
		txn(models.TypeExpense, "Transport", today, 200),
	}, summaryNow)

	if got := weekly["Transport"]; got.Amount != 500 || got.Count != 2 {
		t.Fatalf("window edges not inclusive: %+v", got)
	}
}

func TestMonthlySpendingTotal(t *testing.T) {
	first := time.Date(summaryNow.Year(), summaryNow.Month(), 1, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	fifteenth := time.Date(summaryNow.Year(), summaryNow.Month(), 15, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	lastOfPrev := time.Date(summaryNow.Year(), summaryNow.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Format(DateLayout)

	records := []models.Transaction{
		txn(models.TypeExpense, "Bills & Utilities", first, 2000),
		txn(models.TypeExpense, "Shopping", fifteenth, 3000),
		txn(models.TypeExpense, "Rent & Housing", lastOfPrev, 5000),
	}

	if got := MonthlySpendingTotal(records, summaryNow); got != 5000 {
		t.Fatalf("monthly total = %v, want 5000", got)
	}
	if got := MonthlySpendingTotal(nil, summaryNow); got != 0 {
		t.Fatalf("monthly total of empty list = %v, want 0", got)
	}
}

func TestMonthlySpendingExcludesFuture(t *testing.T) {
	// A record dated after now (e.g. a scheduled payment) stays out of the
	// month-to-date total.
	future := summaryNow.AddDate(0, 0, 5).Format(DateLayout)
	today := summaryNow.Format(DateLayout)

	records := []models.Transaction{
		txn(models.TypeExpense, "Bills & Utilities", today, 1000),
		txn(models.TypeExpense, "Bills & Utilities", future, 4000),
	}

	if got := MonthlySpendingTotal(records, summaryNow); got != 1000 {
		t.Fatalf("monthly total = %v, want 1000", got)
	}
}

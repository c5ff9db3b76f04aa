// Package finance holds the balance, burn-rate, survival and goal-progress
// calculations behind the dashboard. Every function is a pure computation over
// records the caller has already fetched: no clock reads (callers pass now),
// no database access, no writes. Degenerate inputs produce clamped or nil
// results, never errors.
package finance

import (
	"math"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

// DateLayout is the calendar-date format used on transaction and goal rows.
// Comparisons are date-only; ISO strings compare correctly byte-wise.
const DateLayout = "2006-01-02"

// DefaultBurnWindowDays is the divisor window for the daily burn rate.
const DefaultBurnWindowDays = 30

type SurvivalStatus string

const (
	SurvivalBalanced SurvivalStatus = "balanced"
	SurvivalWarning  SurvivalStatus = "warning"
	SurvivalCritical SurvivalStatus = "critical"
)

// SurvivalStats bundles the derived survival snapshot. DaysRemaining is nil
// when there is no active burn to project from.
type SurvivalStats struct {
	Balance       float64        `json:"balance"`
	DailyBurnRate float64        `json:"daily_burn_rate"`
	DaysRemaining *int           `json:"days_remaining"`
	Status        SurvivalStatus `json:"status"`
}

// ComputeBalance reduces a record list plus a starting balance (which may be
// negative, representing debt) into the current balance. Order of records is
// irrelevant; an empty list yields initialBalance unchanged.
func ComputeBalance(records []models.Transaction, initialBalance float64) float64 {
	balance := initialBalance
	for _, r := range records {
		switch r.Type {
		case models.TypeIncome:
			balance += r.Amount
		case models.TypeExpense:
			balance -= r.Amount
		}
	}
	return balance
}

// ComputeDailyBurnRate averages the total expense amount over windowDays.
// The window is purely a divisor, not a date filter: callers decide which
// records are in scope. Returns 0 for an empty list or a zero window.
func ComputeDailyBurnRate(records []models.Transaction, windowDays int) float64 {
	if len(records) == 0 || windowDays == 0 {
		return 0
	}
	var total float64
	for _, r := range records {
		if r.Type == models.TypeExpense {
			total += r.Amount
		}
	}
	return total / float64(windowDays)
}

// ComputeDaysRemaining projects how many whole days the balance lasts at the
// given burn rate. Returns nil when the rate is zero or negative (cannot run
// out at this rate) and 0 when the balance is already depleted.
func ComputeDaysRemaining(balance, dailyBurnRate float64) *int {
	if dailyBurnRate <= 0 {
		return nil
	}
	if balance <= 0 {
		zero := 0
		return &zero
	}
	days := int(math.Floor(balance / dailyBurnRate))
	return &days
}

// ClassifySurvival maps a days-remaining projection to a coarse status.
// Boundaries are half-open: exactly 7 is warning, exactly 30 is balanced.
// A nil projection means no active burn and is treated as safe.
func ClassifySurvival(daysRemaining *int) SurvivalStatus {
	if daysRemaining == nil {
		return SurvivalBalanced
	}
	switch {
	case *daysRemaining < 7:
		return SurvivalCritical
	case *daysRemaining < 30:
		return SurvivalWarning
	default:
		return SurvivalBalanced
	}
}

// ComputeSurvivalStats runs the burn-rate estimator with the default 30-day
// window and composes the full survival snapshot.
func ComputeSurvivalStats(balance float64, records []models.Transaction) SurvivalStats {
	rate := ComputeDailyBurnRate(records, DefaultBurnWindowDays)
	days := ComputeDaysRemaining(balance, rate)
	return SurvivalStats{
		Balance:       balance,
		DailyBurnRate: rate,
		DaysRemaining: days,
		Status:        ClassifySurvival(days),
	}
}

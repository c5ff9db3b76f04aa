package finance

import (
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

// CategorySpending is the per-category aggregate for a spending window.
type CategorySpending struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// WeeklySpendingByCategory groups expenses dated within [now-7d, now]
// inclusive by category. Records outside the window, income records and
// mismatched dates are skipped; no matches yields an empty map.
func WeeklySpendingByCategory(records []models.Transaction, now time.Time) map[string]CategorySpending {
	from := now.AddDate(0, 0, -7).Format(DateLayout)
	to := now.Format(DateLayout)

	out := make(map[string]CategorySpending)
	for _, r := range records {
		if r.Type != models.TypeExpense {
			continue
		}
		if r.TxnDate < from || r.TxnDate > to {
			continue
		}
		cs := out[r.Category]
		cs.Amount += r.Amount
		cs.Count++
		out[r.Category] = cs
	}
	return out
}

// MonthlySpendingTotal sums expenses dated within the current calendar month
// up to and including now.
func MonthlySpendingTotal(records []models.Transaction, now time.Time) float64 {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(DateLayout)
	to := now.Format(DateLayout)

	var total float64
	for _, r := range records {
		if r.Type != models.TypeExpense {
			continue
		}
		if r.TxnDate < from || r.TxnDate > to {
			continue
		}
		total += r.Amount
	}
	return total
}

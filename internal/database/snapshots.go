package database

import (
	"database/sql"

	"github.com/Olabomi/CashDey-sub001/internal/finance"
)

// SaveSurvivalSnapshot persists a computed survival snapshot. This is the
// caller-owned persistence step: the finance package only computes, and the
// dashboard handler decides when a snapshot is written back.
func (r *Repository) SaveSurvivalSnapshot(userID int64, stats finance.SurvivalStats) error {
	var days interface{}
	if stats.DaysRemaining != nil {
		days = *stats.DaysRemaining
	}
	_, err := r.db.Exec(`
		INSERT INTO survival_snapshots (user_id, balance, daily_burn_rate, days_remaining, status)
		VALUES (?, ?, ?, ?, ?)`,
		userID, stats.Balance, stats.DailyBurnRate, days, string(stats.Status))
	return err
}

// LatestSurvivalSnapshot returns the most recent stored snapshot, or
// sql.ErrNoRows when none has been written yet.
func (r *Repository) LatestSurvivalSnapshot(userID int64) (finance.SurvivalStats, string, error) {
	var (
		stats     finance.SurvivalStats
		days      sql.NullInt64
		status    string
		createdAt string
	)
	err := r.db.QueryRow(`
		SELECT balance, daily_burn_rate, days_remaining, status, created_at
		FROM survival_snapshots
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1`,
		userID).Scan(&stats.Balance, &stats.DailyBurnRate, &days, &status, &createdAt)
	if err != nil {
		return stats, "", err
	}
	if days.Valid {
		d := int(days.Int64)
		stats.DaysRemaining = &d
	}
	stats.Status = finance.SurvivalStatus(status)
	return stats, createdAt, nil
}

package handlers

import (
	"net/http"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/finance"
)

// DashboardSurvival handles GET /api/dashboard/survival. The snapshot is
// recomputed from scratch on every call; persisting a copy afterwards is an
// explicit step owned here, never by the finance package.
func (h *Handler) DashboardSurvival(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)

	user, err := h.repo.GetUser(userID)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	records, err := h.repo.ListConfirmedTransactions(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	balance := finance.ComputeBalance(records, user.InitialBalance)
	stats := finance.ComputeSurvivalStats(balance, records)

	if err := h.repo.SaveSurvivalSnapshot(userID, stats); err != nil {
		h.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to persist survival snapshot")
	}

	respondJSON(w, http.StatusOK, stats)
}

// DashboardSurvivalLast handles GET /api/dashboard/survival/last: the most
// recently persisted snapshot, without recomputing. Useful for widgets that
// only need a stale-tolerant read.
func (h *Handler) DashboardSurvivalLast(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)

	stats, createdAt, err := h.repo.LatestSurvivalSnapshot(userID)
	if err != nil {
		respondError(w, http.StatusNotFound, "No snapshot yet")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats":      stats,
		"created_at": createdAt,
	})
}

// DashboardWeekly handles GET /api/dashboard/weekly: expense totals per
// category over the trailing seven days.
func (h *Handler) DashboardWeekly(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)

	records, err := h.repo.ListConfirmedTransactions(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	weekly := finance.WeeklySpendingByCategory(records, time.Now())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"by_category": weekly,
	})
}

// DashboardMonthly handles GET /api/dashboard/monthly: total spend for the
// current calendar month to date.
func (h *Handler) DashboardMonthly(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)

	records, err := h.repo.ListConfirmedTransactions(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	now := time.Now()
	total := finance.MonthlySpendingTotal(records, now)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"month": now.Format("2006-01"),
		"total": total,
	})
}

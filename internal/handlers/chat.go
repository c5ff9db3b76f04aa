package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/ai"
	"github.com/Olabomi/CashDey-sub001/internal/finance"
	"github.com/Olabomi/CashDey-sub001/internal/models"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	ReplyText     string            `json:"reply_text"`
	Intent        string            `json:"intent"`
	TransactionID *int64            `json:"transaction_id,omitempty"`
	Goal          *ai.SuggestedGoal `json:"goal,omitempty"`
	Status        string            `json:"status,omitempty"`
}

// Chat handles POST /api/chat: one coach exchange. Transactions the coach
// extracts are written immediately (pending when incomplete); goal
// suggestions are returned for the user to accept separately.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	userID := h.currentUserID(w, r)
	fc, err := h.financialContext(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load financial context")
		return
	}

	result, err := h.ai.Coach(r.Context(), req.Message, fc)
	if err != nil {
		h.log.Warn().Err(err).Int64("user_id", userID).Msg("coach call failed, using fallback parser")
		result = ai.FallbackParse(req.Message, time.Now())
	}

	switch result.Intent {
	case "log_transaction":
		h.handleCoachTransaction(w, userID, result)
	case "suggest_goal":
		respondJSON(w, http.StatusOK, chatResponse{
			ReplyText: result.Reply,
			Intent:    result.Intent,
			Goal:      result.Goal,
		})
	default:
		respondJSON(w, http.StatusOK, chatResponse{
			ReplyText: result.Reply,
			Intent:    result.Intent,
		})
	}
}

func (h *Handler) handleCoachTransaction(w http.ResponseWriter, userID int64, result *ai.CoachResult) {
	tx := result.Transaction
	if tx == nil || tx.Amount <= 0 {
		respondJSON(w, http.StatusOK, chatResponse{
			ReplyText: "I couldn't find an amount in that. How much was it?",
			Intent:    "unknown",
		})
		return
	}

	if tx.Type != models.TypeExpense && tx.Type != models.TypeIncome {
		tx.Type = models.TypeExpense
	}
	if tx.TxnDate == "" || !validDate(tx.TxnDate) {
		tx.TxnDate = today()
	}

	// Closed-set enforcement for AI-proposed records happens here, the same
	// write boundary manual logging goes through.
	status := models.StatusConfirmed
	if !models.ValidCategory(tx.Type, tx.Category) {
		tx.Category = "Other"
		status = models.StatusPending
	}

	created, err := h.repo.CreateTransaction(
		userID, tx.TxnDate, tx.Amount, tx.Type, tx.Category, tx.Description,
		models.SourceCoach, status,
	)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create coach transaction")
		respondError(w, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{
		ReplyText:     result.Reply,
		Intent:        result.Intent,
		TransactionID: &created.ID,
		Status:        created.Status,
	})
}

type acceptGoalRequest struct {
	Goal ai.SuggestedGoal `json:"goal"`
}

// AcceptGoalSuggestion handles POST /api/chat/accept-goal: turns a coach goal
// suggestion into a real savings goal, with the same validation as manual
// creation.
func (h *Handler) AcceptGoalSuggestion(w http.ResponseWriter, r *http.Request) {
	var req acceptGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Goal.Name == "" || req.Goal.TargetAmount <= 0 {
		respondError(w, http.StatusBadRequest, "Goal needs a name and a positive target")
		return
	}
	if req.Goal.Deadline != "" && !validDate(req.Goal.Deadline) {
		respondError(w, http.StatusBadRequest, "Deadline must be YYYY-MM-DD")
		return
	}

	userID := h.currentUserID(w, r)
	goal, err := h.repo.CreateGoal(userID, req.Goal.Name, req.Goal.TargetAmount, 0, req.Goal.Deadline)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create suggested goal")
		respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	respondJSON(w, http.StatusCreated, h.goalResponse(goal))
}

// financialContext assembles the snapshot the coach grounds its replies in.
func (h *Handler) financialContext(userID int64) (ai.Context, error) {
	var fc ai.Context

	user, err := h.repo.GetUser(userID)
	if err != nil {
		return fc, err
	}
	records, err := h.repo.ListConfirmedTransactions(userID)
	if err != nil {
		return fc, err
	}
	goals, err := h.repo.ListGoals(userID)
	if err != nil {
		return fc, err
	}

	balance := finance.ComputeBalance(records, user.InitialBalance)
	stats := finance.ComputeSurvivalStats(balance, records)

	fc.Balance = stats.Balance
	fc.DailyBurnRate = stats.DailyBurnRate
	fc.DaysRemaining = stats.DaysRemaining
	fc.Status = string(stats.Status)

	// Most recent records only; the model does not need the full history.
	start := len(records) - 10
	if start < 0 {
		start = 0
	}
	for _, tx := range records[start:] {
		fc.Recent = append(fc.Recent, tx.ToView())
	}
	for i := range goals {
		fc.Goals = append(fc.Goals, goals[i].ToView())
	}

	return fc, nil
}

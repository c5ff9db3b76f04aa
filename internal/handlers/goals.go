package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Olabomi/CashDey-sub001/internal/finance"
	"github.com/Olabomi/CashDey-sub001/internal/models"
)

type createGoalRequest struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
}

type updateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Deadline     string  `json:"deadline"`
}

type depositRequest struct {
	Amount float64 `json:"amount"`
}

type goalResponse struct {
	Goal     models.SavingsGoalView `json:"goal"`
	Progress finance.GoalProgress   `json:"progress"`
}

func (h *Handler) goalResponse(g *models.SavingsGoal) goalResponse {
	progress := finance.EvaluateGoal(*g, time.Now())
	view := g.ToView()
	// Stored status is advisory only; always report the evaluated one.
	view.Status = progress.Status
	return goalResponse{Goal: view, Progress: progress}
}

// CreateGoal handles POST /api/goals. The positive-target precondition of the
// evaluator is enforced here, at the write boundary.
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.TargetAmount <= 0 {
		respondError(w, http.StatusBadRequest, "Target amount must be positive")
		return
	}
	if req.CurrentAmount < 0 {
		respondError(w, http.StatusBadRequest, "Current amount cannot be negative")
		return
	}
	if req.Deadline != "" && !validDate(req.Deadline) {
		respondError(w, http.StatusBadRequest, "Deadline must be YYYY-MM-DD")
		return
	}

	userID := h.currentUserID(w, r)
	goal, err := h.repo.CreateGoal(userID, req.Name, req.TargetAmount, req.CurrentAmount, req.Deadline)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create goal")
		respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	respondJSON(w, http.StatusCreated, h.goalResponse(goal))
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)
	goals, err := h.repo.ListGoals(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load goals")
		return
	}

	responses := make([]goalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, h.goalResponse(&goals[i]))
	}
	respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	userID := h.currentUserID(w, r)
	goal, err := h.repo.GetGoal(userID, id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}

	respondJSON(w, http.StatusOK, h.goalResponse(goal))
}

// DepositToGoal handles POST /api/goals/{id}/deposit. The freshly evaluated
// status is persisted alongside the new amount as advisory data.
func (h *Handler) DepositToGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Deposit amount must be positive")
		return
	}

	userID := h.currentUserID(w, r)
	goal, err := h.repo.GetGoal(userID, id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}

	deposited := *goal
	deposited.CurrentAmount += req.Amount
	progress := finance.EvaluateGoal(deposited, time.Now())

	updated, err := h.repo.DepositToGoal(userID, id, req.Amount, progress.Status)
	if err != nil {
		h.log.Error().Err(err).Int64("goal_id", id).Msg("failed to record deposit")
		respondError(w, http.StatusInternalServerError, "Failed to record deposit")
		return
	}

	respondJSON(w, http.StatusOK, h.goalResponse(updated))
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.TargetAmount <= 0 {
		respondError(w, http.StatusBadRequest, "Target amount must be positive")
		return
	}
	if req.Deadline != "" && !validDate(req.Deadline) {
		respondError(w, http.StatusBadRequest, "Deadline must be YYYY-MM-DD")
		return
	}

	userID := h.currentUserID(w, r)
	goal, err := h.repo.GetGoal(userID, id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}

	edited := *goal
	edited.Name = req.Name
	edited.TargetAmount = req.TargetAmount
	edited.Deadline.String = req.Deadline
	edited.Deadline.Valid = req.Deadline != ""
	progress := finance.EvaluateGoal(edited, time.Now())

	updated, err := h.repo.UpdateGoal(userID, id, req.Name, req.TargetAmount, req.Deadline, progress.Status)
	if err != nil {
		h.log.Error().Err(err).Int64("goal_id", id).Msg("failed to update goal")
		respondError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	respondJSON(w, http.StatusOK, h.goalResponse(updated))
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	userID := h.currentUserID(w, r)
	if err := h.repo.DeleteGoal(userID, id); err != nil {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type selectUserRequest struct {
	UserID int64 `json:"user_id"`
}

type updateBalanceRequest struct {
	InitialBalance float64 `json:"initial_balance"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.ListUsers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	currentUserID := h.currentUserID(w, r)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"current_user_id": currentUserID,
		"users":           users,
	})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		respondError(w, http.StatusBadRequest, "Name and a valid email are required")
		return
	}

	user, err := h.repo.CreateUser(name, email)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create user")
		return
	}

	h.setCurrentUserCookie(w, user.ID)
	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) SelectUser(w http.ResponseWriter, r *http.Request) {
	var req selectUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == 0 {
		respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if _, err := h.repo.GetUser(req.UserID); err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	h.setCurrentUserCookie(w, req.UserID)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdateInitialBalance sets the starting balance the ledger aggregation
// builds on. A negative value represents existing debt.
func (h *Handler) UpdateInitialBalance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req updateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.repo.UpdateInitialBalance(id, req.InitialBalance)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update balance")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

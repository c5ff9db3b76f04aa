package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

type createTransactionRequest struct {
	TxnDate     string  `json:"txn_date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CreateTransaction handles POST /api/transactions (manual logging).
// Category membership in the closed sets is enforced here, on the write path;
// the calculation core treats category as opaque.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if req.Type != models.TypeExpense && req.Type != models.TypeIncome {
		respondError(w, http.StatusBadRequest, "Type must be expense or income")
		return
	}
	if !models.ValidCategory(req.Type, req.Category) {
		respondError(w, http.StatusBadRequest, "Unknown category for "+req.Type)
		return
	}
	if req.TxnDate == "" {
		req.TxnDate = today()
	} else if !validDate(req.TxnDate) {
		respondError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	userID := h.currentUserID(w, r)
	tx, err := h.repo.CreateTransaction(
		userID, req.TxnDate, req.Amount, req.Type, req.Category, req.Description,
		models.SourceManual, models.StatusConfirmed,
	)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create transaction")
		respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	respondJSON(w, http.StatusCreated, tx.ToView())
}

func (h *Handler) GetRecentTransactions(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)
	limit := 20
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100
			}
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	transactions, err := h.repo.ListTransactions(userID, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	views := make([]models.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, tx.ToView())
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	userID := h.currentUserID(w, r)
	tx, err := h.repo.GetTransaction(userID, id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	respondJSON(w, http.StatusOK, tx.ToView())
}

// ConfirmTransaction handles PATCH /api/transactions/{id}/confirm: the user
// reviews a pending record (receipt analysis or coach suggestion) and locks
// it in.
func (h *Handler) ConfirmTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req models.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if req.Type != models.TypeExpense && req.Type != models.TypeIncome {
		respondError(w, http.StatusBadRequest, "Type must be expense or income")
		return
	}
	if !models.ValidCategory(req.Type, req.Category) {
		respondError(w, http.StatusBadRequest, "Unknown category for "+req.Type)
		return
	}
	if !validDate(req.TxnDate) {
		respondError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	userID := h.currentUserID(w, r)
	if err := h.repo.ConfirmTransaction(userID, id, req); err != nil {
		h.log.Error().Err(err).Int64("txn_id", id).Msg("failed to confirm transaction")
		respondError(w, http.StatusInternalServerError, "Failed to confirm transaction")
		return
	}

	tx, err := h.repo.GetTransaction(userID, id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	respondJSON(w, http.StatusOK, tx.ToView())
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	userID := h.currentUserID(w, r)
	tx, err := h.repo.GetTransaction(userID, id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	if err := h.repo.DeleteTransaction(userID, id); err != nil {
		h.log.Error().Err(err).Int64("txn_id", id).Msg("failed to delete transaction")
		respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	if tx.ReceiptImagePath.Valid && tx.ReceiptImagePath.String != "" {
		if err := h.storage.Delete(tx.ReceiptImagePath.String); err != nil {
			h.log.Warn().Err(err).Int64("txn_id", id).Msg("failed to delete receipt image")
		}
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

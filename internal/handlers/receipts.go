package handlers

import (
	"context"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

// UploadReceipt handles POST /api/receipts. The image is stored, a pending
// expense shell is created immediately, and AI analysis runs in the
// background — the client polls the transaction until the analysis lands.
func (h *Handler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "File too large")
		return
	}

	file, header, err := r.FormFile("receipt")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	filename, err := h.storage.Save(header.Filename, file)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to save receipt")
		respondError(w, http.StatusBadRequest, "Failed to save file")
		return
	}

	userID := h.currentUserID(w, r)
	tx, err := h.repo.CreateReceiptTransaction(userID, today(), filename)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to create receipt transaction")
		respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	go h.processReceipt(tx.ID, filename)

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"id":                 tx.ID,
		"receipt_image_path": filename,
		"status":             tx.Status,
	})
}

func (h *Handler) processReceipt(txID int64, filename string) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	image, err := h.storage.Read(filename)
	if err != nil {
		h.log.Error().Err(err).Int64("txn_id", txID).Msg("failed to read receipt image")
		return
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	analysis, err := h.ai.AnalyzeReceipt(ctx, image, mimeType)
	if err != nil {
		h.log.Error().Err(err).Int64("txn_id", txID).Msg("receipt analysis failed")
		return
	}

	category := analysis.Category
	if !models.ValidCategory(models.TypeExpense, category) {
		category = "Other"
	}

	description := analysis.Description
	if analysis.Merchant != "" && !strings.Contains(strings.ToLower(description), strings.ToLower(analysis.Merchant)) {
		description = strings.TrimSpace(analysis.Merchant + " " + description)
	}

	err = h.repo.UpdateReceiptAnalysis(txID, analysis.Amount, analysis.TxnDate, category, description)
	if err != nil {
		h.log.Error().Err(err).Int64("txn_id", txID).Msg("failed to store receipt analysis")
		return
	}

	h.log.Info().
		Int64("txn_id", txID).
		Float64("amount", analysis.Amount).
		Str("category", category).
		Float64("confidence", analysis.Confidence).
		Msg("receipt analyzed")
}

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Olabomi/CashDey-sub001/internal/finance"
	"github.com/Olabomi/CashDey-sub001/internal/models"
	"github.com/Olabomi/CashDey-sub001/internal/payments"
)

// Subscribe handles POST /api/subscribe: starts a Paystack checkout for the
// premium plan and records a pending subscription under a fresh reference.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)
	user, err := h.repo.GetUser(userID)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	reference := uuid.New().String()
	auth, err := h.payments.InitializeTransaction(r.Context(), user.Email, h.premium.PriceNGN, reference)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("paystack initialize failed")
		respondError(w, http.StatusBadGateway, "Payment provider unavailable")
		return
	}

	sub, err := h.repo.CreateSubscription(userID, h.premium.Plan, reference, payments.KoboAmount(h.premium.PriceNGN))
	if err != nil {
		h.log.Error().Err(err).Str("reference", reference).Msg("failed to record subscription")
		respondError(w, http.StatusInternalServerError, "Failed to record subscription")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authorization_url": auth.AuthorizationURL,
		"reference":         sub.PaystackReference,
		"plan":              sub.Plan,
	})
}

// VerifySubscription handles GET /api/subscribe/verify?reference=...: the
// return leg of the checkout redirect.
func (h *Handler) VerifySubscription(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		respondError(w, http.StatusBadRequest, "Reference is required")
		return
	}

	verified, err := h.payments.VerifyTransaction(r.Context(), reference)
	if err != nil {
		h.log.Error().Err(err).Str("reference", reference).Msg("paystack verify failed")
		respondError(w, http.StatusBadGateway, "Payment provider unavailable")
		return
	}

	if verified.Status != "success" {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"active": false,
			"status": verified.Status,
		})
		return
	}

	if err := h.activateSubscription(reference); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to activate subscription")
		return
	}

	sub, err := h.repo.GetSubscriptionByReference(reference)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load subscription")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"active":             true,
		"reference":          reference,
		"plan":               sub.Plan,
		"current_period_end": sub.CurrentPeriodEnd,
	})
}

// SubscriptionStatus handles GET /api/subscribe/status: reports the current
// plan and downgrades the premium flag when the paid period has lapsed.
func (h *Handler) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(w, r)
	user, err := h.repo.GetUser(userID)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	sub, err := h.repo.LatestSubscription(userID)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"premium": false,
			"plan":    nil,
		})
		return
	}

	premium := user.Premium
	if premium && sub.Status == models.SubActive && sub.CurrentPeriodEnd != "" && sub.CurrentPeriodEnd < today() {
		if err := h.repo.SetUserPremium(userID, false); err != nil {
			h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to downgrade expired premium")
		} else {
			premium = false
			h.log.Info().Int64("user_id", userID).Str("period_end", sub.CurrentPeriodEnd).Msg("premium period lapsed")
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"premium":            premium,
		"plan":               sub.Plan,
		"status":             sub.Status,
		"current_period_end": sub.CurrentPeriodEnd,
	})
}

// PaystackWebhook handles POST /webhooks/paystack. Signature verification
// happens before the body is trusted at all.
func (h *Handler) PaystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	if !h.payments.VerifyWebhookSignature(body, r.Header.Get("x-paystack-signature")) {
		h.log.Warn().Str("remote_addr", r.RemoteAddr).Msg("webhook with bad signature")
		respondError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var event payments.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if event.Event == "charge.success" {
		if err := h.activateSubscription(event.Data.Reference); err != nil {
			h.log.Error().Err(err).Str("reference", event.Data.Reference).Msg("webhook activation failed")
			respondError(w, http.StatusInternalServerError, "Failed to activate subscription")
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *Handler) activateSubscription(reference string) error {
	periodEnd := time.Now().AddDate(0, 0, h.premium.PeriodDays).Format(finance.DateLayout)
	if err := h.repo.ActivateSubscription(reference, periodEnd); err != nil {
		return err
	}
	h.log.Info().Str("reference", reference).Str("period_end", periodEnd).Msg("subscription activated")
	return nil
}

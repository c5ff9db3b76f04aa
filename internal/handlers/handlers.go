package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Olabomi/CashDey-sub001/internal/ai"
	"github.com/Olabomi/CashDey-sub001/internal/config"
	"github.com/Olabomi/CashDey-sub001/internal/database"
	"github.com/Olabomi/CashDey-sub001/internal/finance"
	"github.com/Olabomi/CashDey-sub001/internal/payments"
	"github.com/Olabomi/CashDey-sub001/internal/storage"
)

const userCookie = "cd_user_id"

type Handler struct {
	repo        *database.Repository
	storage     *storage.LocalStorage
	ai          *ai.Client
	payments    *payments.Client
	premium     config.PremiumConfig
	log         zerolog.Logger
	defaultUser int64
}

func New(repo *database.Repository, store *storage.LocalStorage, aiClient *ai.Client, payClient *payments.Client, premium config.PremiumConfig, log zerolog.Logger) (*Handler, error) {
	defaultUser, err := repo.EnsureDefaultUser()
	if err != nil {
		return nil, err
	}
	return &Handler{
		repo:        repo,
		storage:     store,
		ai:          aiClient,
		payments:    payClient,
		premium:     premium,
		log:         log,
		defaultUser: defaultUser,
	}, nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// currentUserID resolves the acting user from the session cookie, falling
// back to the default user. Authentication proper is handled by an external
// identity provider; this layer only scopes data access.
func (h *Handler) currentUserID(w http.ResponseWriter, r *http.Request) int64 {
	if cookie, err := r.Cookie(userCookie); err == nil {
		if id, err := strconv.ParseInt(cookie.Value, 10, 64); err == nil && id > 0 {
			if _, err := h.repo.GetUser(id); err == nil {
				return id
			}
		}
	}

	h.setCurrentUserCookie(w, h.defaultUser)
	return h.defaultUser
}

func (h *Handler) setCurrentUserCookie(w http.ResponseWriter, userID int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     userCookie,
		Value:    strconv.FormatInt(userID, 10),
		Path:     "/",
		HttpOnly: false,
	})
}

func validDate(s string) bool {
	_, err := time.Parse(finance.DateLayout, s)
	return err == nil
}

func today() string {
	return time.Now().Format(finance.DateLayout)
}

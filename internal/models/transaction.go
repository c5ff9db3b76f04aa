package models

import (
	"database/sql"
)

// Transaction types
const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Transaction sources
const (
	SourceManual  = "manual"
	SourceCoach   = "coach"
	SourceReceipt = "receipt"
)

// Transaction statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

type Transaction struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	TxnDate          string         `json:"txn_date"`
	Amount           float64        `json:"amount"`
	Type             string         `json:"type"`
	Category         string         `json:"category"`
	Description      string         `json:"description"`
	Source           string         `json:"source"`
	ReceiptImagePath sql.NullString `json:"-"`
	Status           string         `json:"status"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

type TransactionView struct {
	ID               int64   `json:"id"`
	TxnDate          string  `json:"txn_date"`
	Amount           float64 `json:"amount"`
	Type             string  `json:"type"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	Source           string  `json:"source"`
	ReceiptImagePath string  `json:"receipt_image_path,omitempty"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}

func (t *Transaction) ToView() TransactionView {
	view := TransactionView{
		ID:          t.ID,
		TxnDate:     t.TxnDate,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Source:      t.Source,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
	if t.ReceiptImagePath.Valid {
		view.ReceiptImagePath = t.ReceiptImagePath.String
	}
	return view
}

// ConfirmRequest carries the user-reviewed fields for a pending transaction.
type ConfirmRequest struct {
	Amount      float64 `json:"amount"`
	TxnDate     string  `json:"txn_date"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

package models

// Subscription statuses
const (
	SubPending   = "pending"
	SubActive    = "active"
	SubCancelled = "cancelled"
)

type Subscription struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	Plan              string `json:"plan"`
	PaystackReference string `json:"paystack_reference"`
	Status            string `json:"status"`
	AmountKobo        int64  `json:"amount_kobo"`
	CurrentPeriodEnd  string `json:"current_period_end,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

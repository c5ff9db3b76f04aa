package models

type User struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	InitialBalance float64 `json:"initial_balance"`
	Premium        bool    `json:"premium"`
	CreatedAt      string  `json:"created_at"`
}

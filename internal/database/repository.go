package database

import (
	"database/sql"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

// Repository wraps all SQL access. Every query is scoped to a single user;
// callers obtain the user id from the session layer.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) EnsureDefaultUser() (int64, error) {
	_, err := r.db.Exec(`INSERT OR IGNORE INTO users (name, email) VALUES ('default', 'default@cashdey.local')`)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(`SELECT id FROM users WHERE email = 'default@cashdey.local'`).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) ListUsers() ([]models.User, error) {
	rows, err := r.db.Query(`SELECT id, name, email, initial_balance, premium, created_at FROM users ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.InitialBalance, &u.Premium, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *Repository) CreateUser(name, email string) (*models.User, error) {
	result, err := r.db.Exec(`INSERT INTO users (name, email) VALUES (?, ?)`, name, email)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetUser(id)
}

func (r *Repository) GetUser(id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		`SELECT id, name, email, initial_balance, premium, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.InitialBalance, &u.Premium, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) UpdateInitialBalance(id int64, balance float64) (*models.User, error) {
	_, err := r.db.Exec(`UPDATE users SET initial_balance = ? WHERE id = ?`, balance, id)
	if err != nil {
		return nil, err
	}
	return r.GetUser(id)
}

func (r *Repository) SetUserPremium(id int64, premium bool) error {
	_, err := r.db.Exec(`UPDATE users SET premium = ? WHERE id = ?`, boolInt(premium), id)
	return err
}

// Helper functions for nullable fields
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

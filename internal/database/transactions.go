package database

import (
	"database/sql"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

const transactionColumns = `id, user_id, txn_date, amount, type, category, description,
	source, receipt_image_path, status, created_at, updated_at`

func scanTransaction(row interface{ Scan(...interface{}) error }) (*models.Transaction, error) {
	tx := &models.Transaction{}
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.TxnDate, &tx.Amount, &tx.Type, &tx.Category,
		&tx.Description, &tx.Source, &tx.ReceiptImagePath, &tx.Status,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// CreateTransaction inserts a fully specified transaction (manual logging or
// an accepted coach suggestion).
func (r *Repository) CreateTransaction(userID int64, txnDate string, amount float64, txnType, category, description, source, status string) (*models.Transaction, error) {
	result, err := r.db.Exec(`
		INSERT INTO transactions (user_id, txn_date, amount, type, category, description, source, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, txnDate, amount, txnType, category, description, source, status,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetTransaction(userID, id)
}

// CreateReceiptTransaction inserts a pending expense shell for an uploaded
// receipt image. Amount and category are filled in once analysis completes.
func (r *Repository) CreateReceiptTransaction(userID int64, txnDate, imagePath string) (*models.Transaction, error) {
	result, err := r.db.Exec(`
		INSERT INTO transactions (user_id, txn_date, type, source, receipt_image_path, status)
		VALUES (?, ?, 'expense', 'receipt', ?, 'pending')`,
		userID, txnDate, imagePath,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetTransaction(userID, id)
}

// UpdateReceiptAnalysis records the AI analysis result on a pending receipt
// transaction. The row stays pending until the user confirms it.
func (r *Repository) UpdateReceiptAnalysis(id int64, amount float64, txnDate, category, description string) error {
	_, err := r.db.Exec(`
		UPDATE transactions
		SET amount = ?, txn_date = COALESCE(?, txn_date), category = ?,
		    description = ?, updated_at = datetime('now')
		WHERE id = ?`,
		amount, nullString(txnDate), category, description, id)
	return err
}

func (r *Repository) GetTransaction(userID, id int64) (*models.Transaction, error) {
	row := r.db.QueryRow(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	return scanTransaction(row)
}

func (r *Repository) ConfirmTransaction(userID, id int64, req models.ConfirmRequest) error {
	_, err := r.db.Exec(`
		UPDATE transactions
		SET amount = ?, txn_date = ?, type = ?, category = ?, description = ?,
		    status = 'confirmed', updated_at = datetime('now')
		WHERE id = ? AND user_id = ?`,
		req.Amount, req.TxnDate, req.Type, req.Category, req.Description, id, userID)
	return err
}

func (r *Repository) DeleteTransaction(userID, id int64) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *Repository) ListTransactions(userID int64, limit, offset int) ([]models.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE user_id = ?
		ORDER BY txn_date DESC, id DESC
		LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListConfirmedTransactions returns every confirmed record for one user. The
// calculation core operates on this full snapshot in memory.
func (r *Repository) ListConfirmedTransactions(userID int64) ([]models.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE user_id = ? AND status = 'confirmed'
		ORDER BY txn_date ASC, id ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

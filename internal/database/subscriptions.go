package database

import (
	"database/sql"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

const subscriptionColumns = `id, user_id, plan, paystack_reference, status, amount_kobo,
	COALESCE(current_period_end, ''), created_at, updated_at`

func scanSubscription(row interface{ Scan(...interface{}) error }) (*models.Subscription, error) {
	s := &models.Subscription{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.Plan, &s.PaystackReference, &s.Status,
		&s.AmountKobo, &s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repository) CreateSubscription(userID int64, plan, reference string, amountKobo int64) (*models.Subscription, error) {
	result, err := r.db.Exec(`
		INSERT INTO subscriptions (user_id, plan, paystack_reference, amount_kobo)
		VALUES (?, ?, ?, ?)`,
		userID, plan, reference, amountKobo)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRow(`SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = ?`, id)
	return scanSubscription(row)
}

func (r *Repository) GetSubscriptionByReference(reference string) (*models.Subscription, error) {
	row := r.db.QueryRow(
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE paystack_reference = ?`, reference)
	return scanSubscription(row)
}

func (r *Repository) LatestSubscription(userID int64) (*models.Subscription, error) {
	row := r.db.QueryRow(`
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1`,
		userID)
	return scanSubscription(row)
}

// ActivateSubscription marks a subscription active through the given period
// end and flips the owner's premium flag in the same transaction.
func (r *Repository) ActivateSubscription(reference, periodEnd string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE subscriptions
		SET status = 'active', current_period_end = ?, updated_at = datetime('now')
		WHERE paystack_reference = ? AND status != 'active'`,
		periodEnd, reference)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Already active (webhook and verify can race); nothing to do.
		var status string
		if err := tx.QueryRow(`SELECT status FROM subscriptions WHERE paystack_reference = ?`, reference).Scan(&status); err != nil {
			return err
		}
		if status == "active" {
			return tx.Commit()
		}
		return sql.ErrNoRows
	}

	_, err = tx.Exec(`
		UPDATE users SET premium = 1
		WHERE id = (SELECT user_id FROM subscriptions WHERE paystack_reference = ?)`,
		reference)
	if err != nil {
		return err
	}

	return tx.Commit()
}

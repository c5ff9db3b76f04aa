package database

import (
	"database/sql"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

const goalColumns = `id, user_id, name, target_amount, current_amount, deadline, status, created_at, updated_at`

func scanGoal(row interface{ Scan(...interface{}) error }) (*models.SavingsGoal, error) {
	g := &models.SavingsGoal{}
	err := row.Scan(
		&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
		&g.Deadline, &g.Status, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *Repository) CreateGoal(userID int64, name string, targetAmount, currentAmount float64, deadline string) (*models.SavingsGoal, error) {
	result, err := r.db.Exec(`
		INSERT INTO savings_goals (user_id, name, target_amount, current_amount, deadline)
		VALUES (?, ?, ?, ?, ?)`,
		userID, name, targetAmount, currentAmount, nullString(deadline))
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetGoal(userID, id)
}

func (r *Repository) GetGoal(userID, id int64) (*models.SavingsGoal, error) {
	row := r.db.QueryRow(
		`SELECT `+goalColumns+` FROM savings_goals WHERE id = ? AND user_id = ?`, id, userID)
	return scanGoal(row)
}

func (r *Repository) ListGoals(userID int64) ([]models.SavingsGoal, error) {
	rows, err := r.db.Query(`
		SELECT `+goalColumns+`
		FROM savings_goals
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

// DepositToGoal adds amount to the goal's progress and stores the freshly
// evaluated advisory status alongside it.
func (r *Repository) DepositToGoal(userID, id int64, amount float64, status string) (*models.SavingsGoal, error) {
	_, err := r.db.Exec(`
		UPDATE savings_goals
		SET current_amount = current_amount + ?, status = ?, updated_at = datetime('now')
		WHERE id = ? AND user_id = ?`,
		amount, status, id, userID)
	if err != nil {
		return nil, err
	}
	return r.GetGoal(userID, id)
}

func (r *Repository) UpdateGoal(userID, id int64, name string, targetAmount float64, deadline, status string) (*models.SavingsGoal, error) {
	_, err := r.db.Exec(`
		UPDATE savings_goals
		SET name = ?, target_amount = ?, deadline = ?, status = ?, updated_at = datetime('now')
		WHERE id = ? AND user_id = ?`,
		name, targetAmount, nullString(deadline), status, id, userID)
	if err != nil {
		return nil, err
	}
	return r.GetGoal(userID, id)
}

func (r *Repository) DeleteGoal(userID, id int64) error {
	result, err := r.db.Exec(`DELETE FROM savings_goals WHERE id = ? AND user_id = ?`, id, userID)
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

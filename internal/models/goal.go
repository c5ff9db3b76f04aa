package models

import "database/sql"

// Goal statuses. Stored values are advisory; the evaluator recomputes them on
// every read.
const (
	GoalOnTrack   = "on_track"
	GoalUrgent    = "urgent"
	GoalCompleted = "completed"
)

type SavingsGoal struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	Name          string         `json:"name"`
	TargetAmount  float64        `json:"target_amount"`
	CurrentAmount float64        `json:"current_amount"`
	Deadline      sql.NullString `json:"-"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

type SavingsGoalView struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

func (g *SavingsGoal) ToView() SavingsGoalView {
	view := SavingsGoalView{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Status:        g.Status,
		CreatedAt:     g.CreatedAt,
	}
	if g.Deadline.Valid {
		view.Deadline = g.Deadline.String
	}
	return view
}

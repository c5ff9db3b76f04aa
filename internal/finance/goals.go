package finance

import (
	"math"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

// GoalProgress is the evaluated state of one savings goal.
type GoalProgress struct {
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
	Status     string  `json:"status"`
}

// EvaluateGoal computes percent-complete, remaining amount and urgency for a
// goal snapshot. Precondition: TargetAmount > 0, enforced at goal creation;
// the evaluator does not guard against a zero target.
//
// Status is decided in order: completed when progress reaches 100%, otherwise
// urgent when a deadline is near (under 30 days) and the daily saving required
// to hit it exceeds 1.5x the current pace, otherwise on_track. The current
// pace is CurrentAmount/30, a fixed lookback regardless of goal age. A
// past-due deadline floors the divisor at one day, which inflates the required
// pace and keeps the goal urgent until completed.
func EvaluateGoal(goal models.SavingsGoal, now time.Time) GoalProgress {
	percentage := goal.CurrentAmount / goal.TargetAmount * 100
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	remaining := goal.TargetAmount - goal.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	status := models.GoalOnTrack
	if percentage >= 100 {
		status = models.GoalCompleted
	} else if goal.Deadline.Valid {
		if deadline, err := time.Parse(DateLayout, goal.Deadline.String); err == nil {
			daysUntil := int(math.Ceil(deadline.Sub(now).Hours() / 24))
			divisor := daysUntil
			if divisor < 1 {
				divisor = 1
			}
			dailyRequired := remaining / float64(divisor)
			currentPace := goal.CurrentAmount / 30
			if daysUntil < 30 && dailyRequired > currentPace*1.5 {
				status = models.GoalUrgent
			}
		}
	}

	return GoalProgress{Percentage: percentage, Remaining: remaining, Status: status}
}

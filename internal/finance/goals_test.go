package finance

import (
	"database/sql"
	"testing"
	"time"

	"github.com/Olabomi/CashDey-sub001/internal/models"
)

var goalNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func goal(target, current float64, deadline string) models.SavingsGoal {
	g := models.SavingsGoal{TargetAmount: target, CurrentAmount: current}
	if deadline != "" {
		g.Deadline = sql.NullString{String: deadline, Valid: true}
	}
	return g
}

func TestEvaluateGoalClamp(t *testing.T) {
	progress := EvaluateGoal(goal(1000, 1500, ""), goalNow)

	if progress.Percentage != 100 {
		t.Fatalf("percentage = %v, want 100", progress.Percentage)
	}
	if progress.Remaining != 0 {
		t.Fatalf("remaining = %v, want 0", progress.Remaining)
	}
	if progress.Status != models.GoalCompleted {
		t.Fatalf("status = %q, want completed", progress.Status)
	}
}

func TestEvaluateGoalUrgent(t *testing.T) {
	deadline := goalNow.AddDate(0, 0, 10).Format(DateLayout)
	progress := EvaluateGoal(goal(100000, 10000, deadline), goalNow)

	// remaining 90000 over 10 days needs 9000/day against a 333.33/day pace
	if progress.Remaining != 90000 {
		t.Fatalf("remaining = %v, want 90000", progress.Remaining)
	}
	if progress.Percentage != 10 {
		t.Fatalf("percentage = %v, want 10", progress.Percentage)
	}
	if progress.Status != models.GoalUrgent {
		t.Fatalf("status = %q, want urgent", progress.Status)
	}
}

func TestEvaluateGoalOnTrack(t *testing.T) {
	// Far deadline: never urgent regardless of pace.
	deadline := goalNow.AddDate(0, 6, 0).Format(DateLayout)
	progress := EvaluateGoal(goal(100000, 10000, deadline), goalNow)
	if progress.Status != models.GoalOnTrack {
		t.Fatalf("status = %q, want on_track", progress.Status)
	}

	// No deadline means long-term, no urgency.
	progress = EvaluateGoal(goal(500000, 20000, ""), goalNow)
	if progress.Status != models.GoalOnTrack {
		t.Fatalf("status without deadline = %q, want on_track", progress.Status)
	}

	// Near deadline but pace is sufficient: 27000/30 = 900/day pace,
	// 3000 remaining over 20 days needs only 150/day.
	deadline = goalNow.AddDate(0, 0, 20).Format(DateLayout)
	progress = EvaluateGoal(goal(30000, 27000, deadline), goalNow)
	if progress.Status != models.GoalOnTrack {
		t.Fatalf("status with sufficient pace = %q, want on_track", progress.Status)
	}
}

func TestEvaluateGoalPastDueDeadline(t *testing.T) {
	deadline := goalNow.AddDate(0, 0, -5).Format(DateLayout)
	progress := EvaluateGoal(goal(50000, 5000, deadline), goalNow)

	// Divisor floors at 1 day; required pace dwarfs the current pace.
	if progress.Status != models.GoalUrgent {
		t.Fatalf("status = %q, want urgent", progress.Status)
	}
	if progress.Remaining != 45000 {
		t.Fatalf("remaining = %v, want 45000", progress.Remaining)
	}
}

func TestEvaluateGoalCompletedBeatsDeadline(t *testing.T) {
	// Completed wins even with a past-due deadline.
	deadline := goalNow.AddDate(0, 0, -1).Format(DateLayout)
	progress := EvaluateGoal(goal(1000, 1000, deadline), goalNow)
	if progress.Status != models.GoalCompleted {
		t.Fatalf("status = %q, want completed", progress.Status)
	}
}

func TestEvaluateGoalIdempotent(t *testing.T) {
	deadline := goalNow.AddDate(0, 0, 10).Format(DateLayout)
	g := goal(100000, 10000, deadline)

	first := EvaluateGoal(g, goalNow)
	second := EvaluateGoal(g, goalNow)
	if first != second {
		t.Fatalf("repeated call diverged: %+v vs %+v", first, second)
	}
}

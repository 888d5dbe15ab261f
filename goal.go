package gestor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Goal is a savings goal. Progress is not stored: it is derived from the
// expense transactions whose category mentions the goal's name.
type Goal struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target_amount"`
}

// NewGoal creates a goal with a freshly generated id.
func NewGoal(name string, target decimal.Decimal) Goal {
	return Goal{ID: NewID(), Name: strings.TrimSpace(name), Target: target}
}

// Validate checks the goal for correctness before it is persisted.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("goal name is required")
	}
	if !g.Target.IsPositive() {
		return fmt.Errorf("goal target amount must be positive, got %s", g.Target)
	}
	return nil
}

func (g Goal) recordID() string { return g.ID }

// GoalProgress is the derived progress of a goal toward its target.
type GoalProgress struct {
	Goal
	Progress decimal.Decimal // sum of matching expense amounts
	Fraction float64         // Progress / Target, 0 when Target <= 0
}

// ProgressOf computes the progress of each goal against the given
// transactions. A transaction contributes when it is an expense and its
// category contains the goal's name, case-insensitively. The match is
// deliberately permissive: a goal "Travel" matches "Travel - Japan".
func ProgressOf(goals []Goal, transactions []Transaction) []GoalProgress {
	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		name := strings.ToLower(strings.TrimSpace(g.Name))
		sum := decimal.Zero
		for _, t := range transactions {
			if t.Kind != Expense {
				continue
			}
			if name != "" && strings.Contains(strings.ToLower(t.Category), name) {
				sum = sum.Add(t.Amount)
			}
		}
		fraction := 0.0
		if g.Target.IsPositive() {
			fraction = sum.Div(g.Target).InexactFloat64()
		}
		progress = append(progress, GoalProgress{Goal: g, Progress: sum, Fraction: fraction})
	}
	return progress
}

// GoalProgress derives the progress of every goal from the current state
// of the goal and transaction collections.
func (s *Store) GoalProgress() []GoalProgress {
	return ProgressOf(s.Goals(), s.Transactions())
}

package renderer

import (
	"github.com/gfpro/gestor"
)

// Dashboard is the view model of a period summary.
type Dashboard struct {
	gestor.Summary
}

// NewDashboard builds the dashboard view for a summarized period.
func NewDashboard(s gestor.Summary) *Dashboard { return &Dashboard{Summary: s} }

// Portfolio is the view model of a valued portfolio with its allocation.
type Portfolio struct {
	gestor.PortfolioValuation
	Allocation []gestor.AllocationRow
	Warning    string // advisory allocation-target warning, possibly empty
}

// NewPortfolio builds the portfolio view from a valuation and the
// configured allocation targets.
func NewPortfolio(v gestor.PortfolioValuation, targets map[gestor.AssetClass]float64, warning string) *Portfolio {
	return &Portfolio{
		PortfolioValuation: v,
		Allocation:         gestor.Allocation(v, targets),
		Warning:            warning,
	}
}

// Goals is the view model of the goal progress list.
type Goals struct {
	Goals []gestor.GoalProgress
}

// NewGoals builds the goals view.
func NewGoals(progress []gestor.GoalProgress) *Goals { return &Goals{Goals: progress} }

// Transactions is the view model of a transaction listing.
type Transactions struct {
	Title        string
	Transactions []gestor.Transaction
}

// NewTransactions builds the transaction listing view.
func NewTransactions(title string, list []gestor.Transaction) *Transactions {
	return &Transactions{Title: title, Transactions: list}
}

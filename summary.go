package gestor

import (
	"fmt"
	"sort"

	"github.com/gfpro/gestor/date"
	"github.com/shopspring/decimal"
)

// Summary holds the income and expense totals of one dashboard period.
type Summary struct {
	Label      string // the period, "2025-08" or "2025"
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Balance    decimal.Decimal
	ByCategory []CategoryTotal // expenses per category, largest first
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// SummarizeMonth totals the transactions of one calendar month.
func SummarizeMonth(transactions []Transaction, month date.Month) Summary {
	return summarize(transactions, month.String(), month.Contains)
}

// SummarizeYear totals the transactions of one calendar year.
func SummarizeYear(transactions []Transaction, year int) Summary {
	return summarize(transactions, fmt.Sprint(year), func(d date.Date) bool {
		return d.Year() == year
	})
}

func summarize(transactions []Transaction, label string, in func(date.Date) bool) Summary {
	s := Summary{Label: label}
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !in(t.Date) {
			continue
		}
		switch t.Kind {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expense = s.Expense.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)

	for category, amount := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if !s.ByCategory[i].Amount.Equal(s.ByCategory[j].Amount) {
			return s.ByCategory[i].Amount.GreaterThan(s.ByCategory[j].Amount)
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})
	return s
}

// Months lists the distinct months with at least one transaction, most
// recent first.
func Months(transactions []Transaction) []date.Month {
	seen := make(map[date.Month]bool)
	var months []date.Month
	for _, t := range transactions {
		m := date.MonthOf(t.Date)
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[j].Before(months[i]) })
	return months
}

package gestor

import (
	"testing"
	"time"

	"github.com/gfpro/gestor/date"
)

func augustSample() []Transaction {
	return []Transaction{
		NewTransaction(date.MustParse("2025-08-01"), Income, "Salary", amount("7000")),
		NewTransaction(date.MustParse("2025-08-03"), Expense, "Rent", amount("1200")),
		NewTransaction(date.MustParse("2025-08-10"), Expense, "Groceries", amount("450.75")),
		NewTransaction(date.MustParse("2025-08-20"), Expense, "Groceries", amount("380.25")),
		// Outside the month.
		NewTransaction(date.MustParse("2025-07-15"), Expense, "Rent", amount("1200")),
		NewTransaction(date.MustParse("2024-08-15"), Income, "Bonus", amount("500")),
	}
}

func TestSummarizeMonth(t *testing.T) {
	s := SummarizeMonth(augustSample(), date.NewMonth(2025, time.August))

	if s.Label != "2025-08" {
		t.Errorf("label = %q, want 2025-08", s.Label)
	}
	if !s.Income.Equal(amount("7000")) {
		t.Errorf("income = %s, want 7000", s.Income)
	}
	if !s.Expense.Equal(amount("2031")) {
		t.Errorf("expense = %s, want 2031", s.Expense)
	}
	if !s.Balance.Equal(amount("4969")) {
		t.Errorf("balance = %s, want 4969", s.Balance)
	}

	// Categories come back largest expense first.
	if len(s.ByCategory) != 2 {
		t.Fatalf("categories = %+v, want 2", s.ByCategory)
	}
	if s.ByCategory[0].Category != "Rent" || !s.ByCategory[0].Amount.Equal(amount("1200")) {
		t.Errorf("top category = %+v, want Rent 1200", s.ByCategory[0])
	}
	if s.ByCategory[1].Category != "Groceries" || !s.ByCategory[1].Amount.Equal(amount("831")) {
		t.Errorf("second category = %+v, want Groceries 831", s.ByCategory[1])
	}
}

func TestSummarizeYear(t *testing.T) {
	s := SummarizeYear(augustSample(), 2025)

	if s.Label != "2025" {
		t.Errorf("label = %q, want 2025", s.Label)
	}
	if !s.Income.Equal(amount("7000")) {
		t.Errorf("income = %s, want 7000", s.Income)
	}
	if !s.Expense.Equal(amount("3231")) { // includes July's rent
		t.Errorf("expense = %s, want 3231", s.Expense)
	}
}

func TestSummarize_EmptyPeriod(t *testing.T) {
	s := SummarizeMonth(augustSample(), date.NewMonth(2023, time.January))
	if !s.Income.IsZero() || !s.Expense.IsZero() || !s.Balance.IsZero() {
		t.Errorf("empty period = %+v, want all zero", s)
	}
	if len(s.ByCategory) != 0 {
		t.Errorf("empty period categories = %+v", s.ByCategory)
	}
}

func TestMonths(t *testing.T) {
	got := Months(augustSample())
	want := []string{"2025-08", "2025-07", "2024-08"}
	if len(got) != len(want) {
		t.Fatalf("Months = %v, want %v", got, want)
	}
	for i, m := range got {
		if m.String() != want[i] {
			t.Errorf("Months[%d] = %s, want %s", i, m, want[i])
		}
	}
}

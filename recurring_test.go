package gestor

import (
	"strings"
	"testing"
	"time"

	"github.com/gfpro/gestor/date"
)

func TestMaterializeForCurrentMonth(t *testing.T) {
	s, clock := newTestStore(t)
	clock.set(2025, time.August, 15)

	if _, err := s.UpsertRecurring(NewRecurringTemplate(Expense, "Rent", amount("1200"), 5)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpsertRecurring(NewRecurringTemplate(Income, "Salary", amount("7000"), 1)); err != nil {
		t.Fatal(err)
	}

	n, err := s.MaterializeForCurrentMonth()
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if n != 2 {
		t.Fatalf("generated %d transactions, want 2", n)
	}

	byCategory := map[string]Transaction{}
	for _, tx := range s.Transactions() {
		byCategory[tx.Category] = tx
	}
	rent, ok := byCategory["Rent"]
	if !ok {
		t.Fatal("no Rent transaction generated")
	}
	if want := date.MustParse("2025-08-05"); rent.Date != want {
		t.Errorf("rent date = %s, want %s", rent.Date, want)
	}
	if rent.Kind != Expense || !rent.Amount.Equal(amount("1200")) {
		t.Errorf("rent = %+v", rent)
	}
	if !strings.HasPrefix(rent.Note, "(recurring)") {
		t.Errorf("rent note = %q, want a (recurring) marker", rent.Note)
	}

	if got := s.Config().LastRecurringMonth; got != "2025-08" {
		t.Errorf("month marker = %q, want 2025-08", got)
	}
}

func TestMaterializeForCurrentMonth_OncePerMonth(t *testing.T) {
	s, clock := newTestStore(t)
	clock.set(2025, time.August, 1)

	if _, err := s.UpsertRecurring(NewRecurringTemplate(Expense, "Rent", amount("1200"), 5)); err != nil {
		t.Fatal(err)
	}

	if n, _ := s.MaterializeForCurrentMonth(); n != 1 {
		t.Fatalf("first run generated %d, want 1", n)
	}
	// Later the same month: nothing to do.
	clock.set(2025, time.August, 28)
	if n, _ := s.MaterializeForCurrentMonth(); n != 0 {
		t.Errorf("second run in the same month generated %d, want 0", n)
	}
	if got := len(s.Transactions()); got != 1 {
		t.Errorf("transactions after second run = %d, want 1", got)
	}
	// The next month generates again.
	clock.set(2025, time.September, 1)
	if n, _ := s.MaterializeForCurrentMonth(); n != 1 {
		t.Errorf("run in the next month generated %d, want 1", n)
	}
}

func TestMaterializeForCurrentMonth_EmptyMonthStaysUnmarked(t *testing.T) {
	s, clock := newTestStore(t)
	clock.set(2025, time.August, 1)

	if n, err := s.MaterializeForCurrentMonth(); n != 0 || err != nil {
		t.Fatalf("run without templates = (%d, %v), want (0, nil)", n, err)
	}
	if got := s.Config().LastRecurringMonth; got != "" {
		t.Fatalf("month marked %q with nothing generated", got)
	}

	// A template added later in the month must still be picked up.
	if _, err := s.UpsertRecurring(NewRecurringTemplate(Expense, "Gym", amount("90"), 10)); err != nil {
		t.Fatal(err)
	}
	clock.set(2025, time.August, 20)
	if n, _ := s.MaterializeForCurrentMonth(); n != 1 {
		t.Errorf("run after adding a template generated %d, want 1", n)
	}
}

func TestMaterialize_ClampsAnchorDay(t *testing.T) {
	tpl := NewRecurringTemplate(Expense, "Rent", amount("1200"), 31)

	tests := []struct {
		month date.Month
		want  string
	}{
		{date.NewMonth(2025, time.January), "2025-01-31"},
		{date.NewMonth(2025, time.April), "2025-04-30"},
		{date.NewMonth(2023, time.February), "2023-02-28"},
		{date.NewMonth(2024, time.February), "2024-02-29"},
	}
	for _, tt := range tests {
		if got := tpl.Materialize(tt.month).Date.String(); got != tt.want {
			t.Errorf("Materialize(%s) dated %s, want %s", tt.month, got, tt.want)
		}
	}
}

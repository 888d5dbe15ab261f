package gestor

import (
	"fmt"
	"strings"

	"github.com/gfpro/gestor/date"
	"github.com/shopspring/decimal"
)

// RecurringTemplate describes a transaction that repeats every month on
// a target day. The anchor day may exceed the length of a month (e.g.
// 31); materialization clamps it to the last valid day.
type RecurringTemplate struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	AnchorDay int             `json:"anchor_day"`
}

// NewRecurringTemplate creates a template with a freshly generated id.
func NewRecurringTemplate(kind Kind, category string, amount decimal.Decimal, anchorDay int) RecurringTemplate {
	return RecurringTemplate{
		ID:        NewID(),
		Kind:      kind,
		Category:  strings.TrimSpace(category),
		Amount:    amount,
		AnchorDay: anchorDay,
	}
}

// Validate checks the template for correctness before it is persisted.
func (t RecurringTemplate) Validate() error {
	if t.Kind != Expense && t.Kind != Income {
		return fmt.Errorf("template kind must be %q or %q, got %q", Expense, Income, t.Kind)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("template category is required")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("template amount must be positive, got %s", t.Amount)
	}
	if t.AnchorDay < 1 || t.AnchorDay > 31 {
		return fmt.Errorf("template anchor day must be within [1,31], got %d", t.AnchorDay)
	}
	return nil
}

func (t RecurringTemplate) recordID() string { return t.ID }

// Materialize turns the template into a concrete transaction for the
// given month, dated on the anchor day clamped to the month's length and
// marked as system-generated in the note.
func (t RecurringTemplate) Materialize(month date.Month) Transaction {
	tx := NewTransaction(month.Date(t.AnchorDay), t.Kind, t.Category, t.Amount)
	tx.Note = fmt.Sprintf("(recurring) %s", t.Category)
	return tx
}

// MaterializeTemplates expands every template into a transaction for the
// given month.
func MaterializeTemplates(templates []RecurringTemplate, month date.Month) []Transaction {
	generated := make([]Transaction, 0, len(templates))
	for _, t := range templates {
		generated = append(generated, t.Materialize(month))
	}
	return generated
}

// MaterializeForCurrentMonth expands the recurring templates into
// concrete transactions for the current calendar month, at most once per
// month. It returns the number of transactions generated.
//
// A month with zero templates is left unmarked: "nothing to do" is
// distinct from "done", so templates created later in the same month are
// still materialized on the next invocation. If the transaction write or
// the month-marker write fails, the month stays unmarked and the whole
// unit of work is retried on the next invocation; the re-run is safe
// because nothing was marked processed.
func (s *Store) MaterializeForCurrentMonth() (int, error) {
	month := date.MonthOf(s.today())
	cfg := s.Config()
	if cfg.LastRecurringMonth == month.String() {
		return 0, nil
	}

	templates := s.Recurring()
	if len(templates) == 0 {
		return 0, nil
	}

	generated := MaterializeTemplates(templates, month)
	next := append(s.Transactions(), generated...)
	if err := s.SaveTransactions(next); err != nil {
		return 0, fmt.Errorf("could not append recurring transactions: %w", err)
	}

	cfg.LastRecurringMonth = month.String()
	if err := s.SaveConfig(cfg); err != nil {
		return len(generated), fmt.Errorf("recurring transactions written but month %s not marked processed: %w", month, err)
	}
	return len(generated), nil
}

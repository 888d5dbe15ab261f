package gestor

import (
	"fmt"
	"strings"

	"github.com/gfpro/gestor/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction takes money out or brings money in.
type Kind string

const (
	Expense Kind = "expense"
	Income  Kind = "income"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Expense:
		return Expense, nil
	case Income:
		return Income, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

func (k Kind) String() string { return string(k) }

// Transaction is a single dated expense or income record.
type Transaction struct {
	ID       string          `json:"id"`
	Date     date.Date       `json:"date"`
	Kind     Kind            `json:"kind"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

// NewTransaction creates a transaction with a freshly generated id.
func NewTransaction(on date.Date, kind Kind, category string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:       NewID(),
		Date:     on,
		Kind:     kind,
		Category: strings.TrimSpace(category),
		Amount:   amount,
	}
}

// Validate checks the transaction for correctness before it is persisted.
func (t Transaction) Validate() error {
	if t.Kind != Expense && t.Kind != Income {
		return fmt.Errorf("transaction kind must be %q or %q, got %q", Expense, Income, t.Kind)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("transaction category is required")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}

func (t Transaction) recordID() string { return t.ID }

// NewID generates a unique record id.
func NewID() string { return uuid.NewString() }

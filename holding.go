package gestor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetClass groups holdings for allocation reporting, and decides
// whether a holding is quoted on the market.
type AssetClass string

const (
	Equity        AssetClass = "equity"
	REIT          AssetClass = "reit"
	International AssetClass = "international"
	FixedIncome   AssetClass = "fixed_income"
	Crypto        AssetClass = "crypto"
	OtherAsset    AssetClass = "other"
)

// AssetClasses returns all asset classes in display order.
func AssetClasses() []AssetClass {
	return []AssetClass{Equity, REIT, International, FixedIncome, Crypto, OtherAsset}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	c := AssetClass(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AssetClasses() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown asset class: %q", s)
}

func (c AssetClass) String() string { return string(c) }

// Quoted reports whether holdings of this class have a market quote.
// Only listed equities and REITs do; everything else values at cost.
func (c AssetClass) Quoted() bool { return c == Equity || c == REIT }

// Holding is a position in the investment portfolio.
type Holding struct {
	ID          string          `json:"id"`
	Ticker      string          `json:"ticker"`
	Class       AssetClass      `json:"asset_class"`
	Quantity    decimal.Decimal `json:"quantity"`
	AverageCost decimal.Decimal `json:"average_cost"`
}

// NewHolding creates a holding with a freshly generated id. The ticker is
// normalized to upper case.
func NewHolding(ticker string, class AssetClass, quantity, averageCost decimal.Decimal) Holding {
	return Holding{
		ID:          NewID(),
		Ticker:      strings.ToUpper(strings.TrimSpace(ticker)),
		Class:       class,
		Quantity:    quantity,
		AverageCost: averageCost,
	}
}

// Validate checks the holding for correctness before it is persisted.
func (h Holding) Validate() error {
	if strings.TrimSpace(h.Ticker) == "" {
		return fmt.Errorf("holding ticker is required")
	}
	if _, err := ParseAssetClass(string(h.Class)); err != nil {
		return err
	}
	if h.Quantity.IsNegative() {
		return fmt.Errorf("holding quantity cannot be negative, got %s", h.Quantity)
	}
	if !h.AverageCost.IsPositive() {
		return fmt.Errorf("holding average cost must be positive, got %s", h.AverageCost)
	}
	return nil
}

// CostBasis returns quantity times average purchase price.
func (h Holding) CostBasis() decimal.Decimal { return h.Quantity.Mul(h.AverageCost) }

func (h Holding) recordID() string { return h.ID }

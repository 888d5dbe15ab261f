package gestor

import (
	"sort"

	"github.com/shopspring/decimal"
)

// HoldingValuation is the valued position of a single holding.
type HoldingValuation struct {
	Holding
	CostBasis   decimal.Decimal
	MarketValue decimal.Decimal
	Live        bool // true when a live quote was used, false when valued at cost
}

// PortfolioValuation aggregates the valued holdings of the portfolio.
type PortfolioValuation struct {
	Holdings    []HoldingValuation
	CostBasis   decimal.Decimal
	MarketValue decimal.Decimal
	GainLoss    decimal.Decimal
	GainLossPct float64 // 0 when the total cost basis is 0
}

// Valuate combines holdings with a price mapping. A holding values at
// quantity times its live price when its class is quoted and a price is
// present; otherwise it values at cost, which makes its gain exactly
// zero. Holdings are returned sorted by ticker.
func Valuate(holdings []Holding, prices map[string]float64) PortfolioValuation {
	valued := make([]HoldingValuation, 0, len(holdings))
	totalCost, totalMarket := decimal.Zero, decimal.Zero

	for _, h := range holdings {
		cost := h.CostBasis()
		market := cost
		live := false
		if h.Class.Quoted() {
			if price, ok := prices[h.Ticker]; ok {
				market = h.Quantity.Mul(decimal.NewFromFloat(price))
				live = true
			}
		}
		valued = append(valued, HoldingValuation{Holding: h, CostBasis: cost, MarketValue: market, Live: live})
		totalCost = totalCost.Add(cost)
		totalMarket = totalMarket.Add(market)
	}

	sort.Slice(valued, func(i, j int) bool { return valued[i].Ticker < valued[j].Ticker })

	gain := totalMarket.Sub(totalCost)
	pct := 0.0
	if totalCost.IsPositive() {
		pct = gain.Div(totalCost).InexactFloat64() * 100
	}
	return PortfolioValuation{
		Holdings:    valued,
		CostBasis:   totalCost,
		MarketValue: totalMarket,
		GainLoss:    gain,
		GainLossPct: pct,
	}
}

// QuotedTickers returns the tickers of the holdings that have a market
// quote, in input order.
func QuotedTickers(holdings []Holding) []string {
	tickers := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if h.Class.Quoted() {
			tickers = append(tickers, h.Ticker)
		}
	}
	return tickers
}

// ValuePortfolio values the holding collection with live quotes from the
// price service, falling back to cost basis per holding when a quote is
// unavailable.
func (s *Store) ValuePortfolio(prices *PriceService) PortfolioValuation {
	holdings := s.Holdings()
	return Valuate(holdings, prices.Prices(QuotedTickers(holdings)))
}

// AllocationRow compares the actual share of one asset class against its
// configured target.
type AllocationRow struct {
	Class  AssetClass
	Cost   decimal.Decimal
	Actual float64 // percent of the portfolio cost basis
	Target float64 // configured target percent
}

// Allocation breaks the portfolio cost basis down by asset class and
// lines it up with the configured targets. Classes with neither holdings
// nor a target are omitted.
func Allocation(v PortfolioValuation, targets map[AssetClass]float64) []AllocationRow {
	byClass := make(map[AssetClass]decimal.Decimal)
	for _, h := range v.Holdings {
		byClass[h.Class] = byClass[h.Class].Add(h.CostBasis)
	}

	rows := make([]AllocationRow, 0, len(byClass))
	for _, class := range AssetClasses() {
		cost, held := byClass[class]
		target, targeted := targets[class]
		if !held && !targeted {
			continue
		}
		actual := 0.0
		if v.CostBasis.IsPositive() {
			actual = cost.Div(v.CostBasis).InexactFloat64() * 100
		}
		rows = append(rows, AllocationRow{Class: class, Cost: cost, Actual: actual, Target: target})
	}
	return rows
}

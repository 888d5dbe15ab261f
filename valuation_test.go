package gestor

import (
	"math"
	"testing"
)

func TestValuate_LiveQuotes(t *testing.T) {
	holdings := []Holding{
		NewHolding("PETR4", Equity, amount("100"), amount("30")),
		NewHolding("HGLG11", REIT, amount("10"), amount("150")),
	}
	prices := map[string]float64{"PETR4": 38.10, "HGLG11": 160.50}

	v := Valuate(holdings, prices)
	if !v.CostBasis.Equal(amount("4500")) {
		t.Errorf("cost basis = %s, want 4500", v.CostBasis)
	}
	if !v.MarketValue.Equal(amount("5415")) { // 100*38.10 + 10*160.50
		t.Errorf("market value = %s, want 5415", v.MarketValue)
	}
	if !v.GainLoss.Equal(amount("915")) {
		t.Errorf("gain = %s, want 915", v.GainLoss)
	}
	if math.Abs(v.GainLossPct-20.333333) > 0.001 {
		t.Errorf("gain pct = %v, want ~20.33", v.GainLossPct)
	}
	for _, h := range v.Holdings {
		if !h.Live {
			t.Errorf("%s valued at cost despite a live quote", h.Ticker)
		}
	}
	// Sorted by ticker.
	if v.Holdings[0].Ticker != "HGLG11" || v.Holdings[1].Ticker != "PETR4" {
		t.Errorf("holdings not sorted by ticker: %s, %s", v.Holdings[0].Ticker, v.Holdings[1].Ticker)
	}
}

func TestValuate_FallsBackToCost(t *testing.T) {
	holdings := []Holding{NewHolding("PETR4", Equity, amount("100"), amount("30"))}

	v := Valuate(holdings, map[string]float64{})
	if v.Holdings[0].Live {
		t.Error("holding marked live without a quote")
	}
	if !v.MarketValue.Equal(v.CostBasis) {
		t.Errorf("market value = %s, want cost basis %s", v.MarketValue, v.CostBasis)
	}
	if !v.GainLoss.IsZero() {
		t.Errorf("gain without quotes = %s, want exactly 0", v.GainLoss)
	}
	if v.GainLossPct != 0 {
		t.Errorf("gain pct without quotes = %v, want 0", v.GainLossPct)
	}
}

func TestValuate_UnquotedClassesIgnorePrices(t *testing.T) {
	holdings := []Holding{
		NewHolding("BTC", Crypto, amount("0.5"), amount("200000")),
		NewHolding("TESOURO2030", FixedIncome, amount("10"), amount("1000")),
	}
	// A price for an unquoted class must not be applied.
	prices := map[string]float64{"BTC": 999999, "TESOURO2030": 5}

	v := Valuate(holdings, prices)
	for _, h := range v.Holdings {
		if h.Live {
			t.Errorf("%s (%s) took a live quote", h.Ticker, h.Class)
		}
		if !h.MarketValue.Equal(h.CostBasis) {
			t.Errorf("%s market = %s, want cost %s", h.Ticker, h.MarketValue, h.CostBasis)
		}
	}
}

func TestValuate_ZeroCostBasis(t *testing.T) {
	v := Valuate(nil, nil)
	if v.GainLossPct != 0 {
		t.Errorf("gain pct of empty portfolio = %v, want 0", v.GainLossPct)
	}
	if len(v.Holdings) != 0 {
		t.Errorf("holdings of empty portfolio = %v", v.Holdings)
	}
}

func TestQuotedTickers(t *testing.T) {
	holdings := []Holding{
		NewHolding("PETR4", Equity, amount("1"), amount("1")),
		NewHolding("BTC", Crypto, amount("1"), amount("1")),
		NewHolding("HGLG11", REIT, amount("1"), amount("1")),
		NewHolding("TESOURO2030", FixedIncome, amount("1"), amount("1")),
	}
	got := QuotedTickers(holdings)
	if len(got) != 2 || got[0] != "PETR4" || got[1] != "HGLG11" {
		t.Errorf("QuotedTickers = %v, want [PETR4 HGLG11]", got)
	}
}

func TestAllocation(t *testing.T) {
	holdings := []Holding{
		NewHolding("PETR4", Equity, amount("100"), amount("30")),   // 3000
		NewHolding("VALE3", Equity, amount("50"), amount("20")),    // 1000
		NewHolding("HGLG11", REIT, amount("10"), amount("100")),    // 1000
	}
	targets := map[AssetClass]float64{Equity: 60, FixedIncome: 20}

	rows := Allocation(Valuate(holdings, nil), targets)

	byClass := map[AssetClass]AllocationRow{}
	for _, r := range rows {
		byClass[r.Class] = r
	}
	eq, ok := byClass[Equity]
	if !ok {
		t.Fatal("no equity row")
	}
	if !eq.Cost.Equal(amount("4000")) || math.Abs(eq.Actual-80) > 0.001 || eq.Target != 60 {
		t.Errorf("equity row = %+v", eq)
	}
	// A targeted class without holdings still shows up.
	fi, ok := byClass[FixedIncome]
	if !ok {
		t.Fatal("no fixed income row despite a target")
	}
	if !fi.Cost.IsZero() || fi.Actual != 0 || fi.Target != 20 {
		t.Errorf("fixed income row = %+v", fi)
	}
	// A class with neither holdings nor target is omitted.
	if _, ok := byClass[Crypto]; ok {
		t.Error("crypto row present with neither holdings nor target")
	}
}

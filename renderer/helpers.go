package renderer

import (
	"fmt"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BRL formats a decimal amount as Brazilian reais.
func BRL(d decimal.Decimal) string {
	cur := money.GetCurrency(money.BRL)
	return money.New(d.Shift(int32(cur.Fraction)).Round(0).IntPart(), money.BRL).Display()
}

// SignedBRL formats a decimal amount as reais with an explicit sign, so
// gains and losses read at a glance.
func SignedBRL(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + BRL(d.Neg())
	}
	return "+" + BRL(d)
}

// Pct formats a percentage with two decimals.
func Pct(v float64) string { return fmt.Sprintf("%.2f%%", v) }

// FracPct formats a fraction (1.0 is 100%) as a percentage.
func FracPct(f float64) string { return fmt.Sprintf("%.1f%%", f*100) }

// Bar renders a ten-step progress bar for a fraction in [0,1]; overshoot
// is capped at a full bar.
func Bar(fraction float64) string {
	steps := int(fraction * 10)
	if steps > 10 {
		steps = 10
	}
	if steps < 0 {
		steps = 0
	}
	bar := ""
	for i := 0; i < 10; i++ {
		if i < steps {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"brl":     BRL,
		"signed":  SignedBRL,
		"pct":     Pct,
		"fracpct": FracPct,
		"bar":     Bar,
	}
}

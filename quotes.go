package gestor

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/gfpro/gestor/logging"
	"github.com/rs/zerolog"
)

// quoteTTL is how long a fetched set of quotes is served from cache.
const quoteTTL = 30 * time.Minute

// marketSuffix qualifies tickers for the B3 exchange on the quote provider.
const marketSuffix = ".SA"

// QuoteProvider fetches the most recent daily close for a set of
// symbols. Symbols without a usable quote are simply absent from the
// result; implementations only return an error when the whole lookup
// failed.
type QuoteProvider interface {
	LatestClose(symbols []string) (map[string]float64, error)
}

// PriceService caches quote lookups for a fixed time-to-live, keyed by
// the exact set of tickers requested. It never fails: provider errors
// degrade to an empty mapping so valuation can fall back to cost basis.
type PriceService struct {
	provider QuoteProvider
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger

	mu      sync.Mutex
	key     string
	prices  map[string]float64
	fetched time.Time
}

// NewPriceService returns a price service over the given provider.
func NewPriceService(provider QuoteProvider) *PriceService {
	return &PriceService{
		provider: provider,
		ttl:      quoteTTL,
		now:      time.Now,
		log:      logging.New(),
	}
}

// Prices returns the most recent daily close per ticker. Tickers the
// provider could not quote are absent from the result. The result of a
// lookup, including an empty one, is cached for the TTL as long as the
// same set of tickers is requested again.
func (p *PriceService) Prices(tickers []string) map[string]float64 {
	symbols := normalizeSet(tickers)
	if len(symbols) == 0 {
		return map[string]float64{}
	}
	key := strings.Join(symbols, ",")

	p.mu.Lock()
	defer p.mu.Unlock()
	if key == p.key && p.now().Sub(p.fetched) < p.ttl {
		return clonePrices(p.prices)
	}

	prices, err := p.provider.LatestClose(symbols)
	if err != nil {
		p.log.Warn().Err(err).Msg("quote lookup failed, valuing at cost")
		prices = nil
	}
	if prices == nil {
		prices = map[string]float64{}
	}

	p.key = key
	p.prices = prices
	p.fetched = p.now()
	return clonePrices(prices)
}

// normalizeSet upper-cases, trims, de-duplicates and sorts tickers so
// that the cache key identifies the requested set, not the call order.
func normalizeSet(tickers []string) []string {
	seen := make(map[string]bool, len(tickers))
	symbols := make([]string, 0, len(tickers))
	for _, t := range tickers {
		sym := strings.ToUpper(strings.TrimSpace(t))
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

func clonePrices(prices map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(prices))
	for k, v := range prices {
		out[k] = v
	}
	return out
}

// YahooProvider fetches daily closes from the Yahoo Finance chart API,
// qualifying each ticker with the B3 market suffix.
type YahooProvider struct {
	client *http.Client
	base   string
	log    zerolog.Logger
}

// NewYahooProvider returns a provider with a bounded HTTP client.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		client: newQuoteClient(),
		base:   "https://query1.finance.yahoo.com",
		log:    logging.New(),
	}
}

// LatestClose fetches the most recent daily close for each symbol. A
// symbol whose request or payload fails is skipped and logged, never
// fatal: a portfolio view must not break because one quote is down.
func (p *YahooProvider) LatestClose(symbols []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(symbols))
	for _, sym := range symbols {
		addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d",
			p.base, url.PathEscape(sym+marketSuffix))
		var payload any
		if err := jwget(p.client, addr, &payload); err != nil {
			p.log.Warn().Err(err).Str("ticker", sym).Msg("quote request failed")
			continue
		}
		close, err := latestChartClose(payload)
		if err != nil {
			p.log.Warn().Err(err).Str("ticker", sym).Msg("quote payload unusable")
			continue
		}
		prices[sym] = close
	}
	return prices, nil
}

// latestChartClose extracts the most recent daily close from a Yahoo
// chart payload.
func latestChartClose(payload any) (float64, error) {
	path := "$.chart.result[0].indicators.quote[0].close"
	jval, err := jsonpath.Get(path, payload)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing quote payload: %q %w", path, err)
	}
	closes, ok := jval.([]any)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing quote payload: %q is not a list", path)
	}
	// walk from the most recent entry back, skipping null and NaN fills
	for i := len(closes) - 1; i >= 0; i-- {
		val, ok := closes[i].(float64)
		if ok && !math.IsNaN(val) {
			return val, nil
		}
	}
	return math.NaN(), fmt.Errorf("no usable close in quote payload")
}

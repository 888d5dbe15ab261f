package gestor

import (
	"fmt"
	"math"
)

// Config is the single configuration record of the data directory. It
// carries the idempotency markers of the startup routines and the target
// allocation of the portfolio.
type Config struct {
	LastBackupDate     string                 `json:"last_backup_date,omitempty"`
	LastRecurringMonth string                 `json:"last_recurring_month,omitempty"`
	AllocationTargets  map[AssetClass]float64 `json:"allocation_targets,omitempty"`
}

// Validate checks the hard invariants of the configuration. Each
// allocation target must be a percentage within [0, 100].
func (c Config) Validate() error {
	for class, pct := range c.AllocationTargets {
		if _, err := ParseAssetClass(string(class)); err != nil {
			return err
		}
		if pct < 0 || pct > 100 || math.IsNaN(pct) {
			return fmt.Errorf("allocation target for %s must be within [0,100], got %v", class, pct)
		}
	}
	return nil
}

// AllocationWarning returns a human-readable warning when the allocation
// targets do not add up to 100%. The sum is advisory: it is surfaced to
// the user, never enforced.
func (c Config) AllocationWarning() string {
	if len(c.AllocationTargets) == 0 {
		return ""
	}
	sum := 0.0
	for _, pct := range c.AllocationTargets {
		sum += pct
	}
	if math.Abs(sum-100.0) > 0.1 {
		return fmt.Sprintf("allocation targets add up to %.1f%%, expected 100%%", sum)
	}
	return ""
}

// clone returns a deep copy so cached configs are never shared mutable state.
func (c Config) clone() Config {
	if c.AllocationTargets == nil {
		return c
	}
	targets := make(map[AssetClass]float64, len(c.AllocationTargets))
	for k, v := range c.AllocationTargets {
		targets[k] = v
	}
	c.AllocationTargets = targets
	return c
}

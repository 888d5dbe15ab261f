package gestor

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		targets map[AssetClass]float64
		ok      bool
	}{
		{"nil targets", nil, true},
		{"valid split", map[AssetClass]float64{Equity: 60, FixedIncome: 40}, true},
		{"boundary values", map[AssetClass]float64{Equity: 0, REIT: 100}, true},
		{"negative", map[AssetClass]float64{Equity: -5}, false},
		{"above 100", map[AssetClass]float64{Equity: 101}, false},
		{"unknown class", map[AssetClass]float64{AssetClass("bonds"): 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{AllocationTargets: tt.targets}.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestConfigAllocationWarning(t *testing.T) {
	if got := (Config{}).AllocationWarning(); got != "" {
		t.Errorf("warning without targets = %q, want none", got)
	}
	cfg := Config{AllocationTargets: map[AssetClass]float64{Equity: 60, FixedIncome: 40}}
	if got := cfg.AllocationWarning(); got != "" {
		t.Errorf("warning for a 100%% split = %q, want none", got)
	}
	cfg.AllocationTargets[FixedIncome] = 30
	got := cfg.AllocationWarning()
	if !strings.Contains(got, "90.0%") {
		t.Errorf("warning for a 90%% split = %q, want the sum named", got)
	}
}

func TestConfigCloneIsDeep(t *testing.T) {
	cfg := Config{AllocationTargets: map[AssetClass]float64{Equity: 60}}
	copied := cfg.clone()
	copied.AllocationTargets[Equity] = 10
	if cfg.AllocationTargets[Equity] != 60 {
		t.Error("clone shares the target map")
	}
}

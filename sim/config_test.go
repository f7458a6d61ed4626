package sim

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default is valid", func(c *Config) {}, ""},
		{"zero capacity", func(c *Config) { c.InventoryCapacity = 0 }, "inventory_capacity"},
		{"negative capacity", func(c *Config) { c.InventoryCapacity = -5 }, "inventory_capacity"},
		{"negative reorder point", func(c *Config) { c.ReorderPoint = -1 }, "reorder_point"},
		{"zero EOQ", func(c *Config) { c.EconomicOrderQuantity = 0 }, "economic_order_quantity"},
		{"negative lead time", func(c *Config) { c.LeadTime = -1 }, "lead_time"},
		{"zero check interval", func(c *Config) { c.PeriodicCheckInterval = 0 }, "periodic_checking_time"},
		{"zero max purchase", func(c *Config) { c.MaxPurchase = 0 }, "max_purchase_per_customer"},
		{"negative purchase delay", func(c *Config) { c.PurchaseDelay = -0.5 }, "purchase_delay"},
		{"negative arrival min", func(c *Config) { c.InterArrivalMin = -1 }, "inter_arrival"},
		{"inverted arrival range", func(c *Config) { c.InterArrivalMin = 10; c.InterArrivalMax = 5 }, "inverted"},
		{"zero horizon", func(c *Config) { c.Horizon = 0 }, "simulation_horizon"},
		{"negative sample interval", func(c *Config) { c.SampleInterval = -0.1 }, "sample_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidate_ReorderPointAboveCapacityAccepted(t *testing.T) {
	// Accepted as-is: the control loop will simply reorder at every
	// check it is awake for.
	cfg := DefaultConfig()
	cfg.ReorderPoint = cfg.InventoryCapacity + 10
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

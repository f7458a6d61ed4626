package sim

import "fmt"

// Config groups every knob of an inventory simulation run. All values
// are virtual time units or product quantities; none relate to wall
// clock. The yaml tags serve the scenario presets loaded by cmd.
type Config struct {
	// InventoryCapacity is the stock's maximum quantity. The stock is
	// created full.
	InventoryCapacity float64 `yaml:"inventory_capacity"`
	// ReorderPoint is the level at or below which the control loop
	// places a replenishment order.
	ReorderPoint float64 `yaml:"reorder_point"`
	// EconomicOrderQuantity is the fixed amount delivered per order,
	// independent of the current deficit.
	EconomicOrderQuantity float64 `yaml:"economic_order_quantity"`
	// LeadTime is the delay between order placement and delivery.
	LeadTime VirtualTime `yaml:"lead_time"`
	// PeriodicCheckInterval is the control loop's time between level
	// checks.
	PeriodicCheckInterval VirtualTime `yaml:"periodic_checking_time"`
	// MaxPurchase bounds a single customer's demand; demand is drawn
	// uniformly from 1..MaxPurchase inclusive.
	MaxPurchase int `yaml:"max_purchase_per_customer"`
	// PurchaseDelay is the fixed time a customer spends before the
	// purchase applies (may be zero).
	PurchaseDelay VirtualTime `yaml:"purchase_delay"`
	// InterArrivalMin/Max bound the uniform integer draw between
	// consecutive customer arrivals, inclusive of both ends.
	InterArrivalMin int `yaml:"inter_arrival_min"`
	InterArrivalMax int `yaml:"inter_arrival_max"`
	// Horizon is the virtual time at which the run stops.
	Horizon VirtualTime `yaml:"simulation_horizon"`
	// SampleInterval is the level sampler's period; zero disables the
	// sampler.
	SampleInterval VirtualTime `yaml:"sample_interval"`
}

// DefaultConfig returns the retail shop scenario the simulator was built
// around: a 20-unit inventory replenished in lots of 10 with a lead time
// of 8, checked every 2 time units, facing customers arriving up to 30
// time units apart.
func DefaultConfig() Config {
	return Config{
		InventoryCapacity:     20,
		ReorderPoint:          10,
		EconomicOrderQuantity: 10,
		LeadTime:              8,
		PeriodicCheckInterval: 2,
		MaxPurchase:           10,
		PurchaseDelay:         0,
		InterArrivalMin:       0,
		InterArrivalMax:       30,
		Horizon:               500,
		SampleInterval:        0.1,
	}
}

// Validate reports the first configuration fault found. Faults abort
// before any event is processed. Note reorder_point < inventory_capacity
// is deliberately not enforced; the engine accepts such a configuration
// as-is.
func (c Config) Validate() error {
	if c.InventoryCapacity <= 0 {
		return fmt.Errorf("inventory_capacity must be positive, got %v", c.InventoryCapacity)
	}
	if c.ReorderPoint < 0 {
		return fmt.Errorf("reorder_point must be non-negative, got %v", c.ReorderPoint)
	}
	if c.EconomicOrderQuantity <= 0 {
		return fmt.Errorf("economic_order_quantity must be positive, got %v", c.EconomicOrderQuantity)
	}
	if c.LeadTime < 0 {
		return fmt.Errorf("lead_time must be non-negative, got %v", c.LeadTime)
	}
	if c.PeriodicCheckInterval <= 0 {
		return fmt.Errorf("periodic_checking_time must be positive, got %v", c.PeriodicCheckInterval)
	}
	if c.MaxPurchase < 1 {
		return fmt.Errorf("max_purchase_per_customer must be at least 1, got %d", c.MaxPurchase)
	}
	if c.PurchaseDelay < 0 {
		return fmt.Errorf("purchase_delay must be non-negative, got %v", c.PurchaseDelay)
	}
	if c.InterArrivalMin < 0 {
		return fmt.Errorf("inter_arrival range must be non-negative, got min %d", c.InterArrivalMin)
	}
	if c.InterArrivalMin > c.InterArrivalMax {
		return fmt.Errorf("inter_arrival range inverted: min %d > max %d", c.InterArrivalMin, c.InterArrivalMax)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("simulation_horizon must be positive, got %v", c.Horizon)
	}
	if c.SampleInterval < 0 {
		return fmt.Errorf("sample_interval must be non-negative, got %v", c.SampleInterval)
	}
	return nil
}

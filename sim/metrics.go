// Tracks simulation-wide demand and replenishment statistics for final
// reporting.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final
// reporting. Useful for evaluating the replenishment policy and
// debugging behavior over time.
type Metrics struct {
	Customers          int     // Number of customers that arrived
	SatisfiedCustomers int     // Customers whose full demand was met
	PartialCustomers   int     // Customers who drained leftover stock
	TurnedAway         int     // Customers who found an empty shelf
	TotalDemand        float64 // Sum of drawn demands
	TotalPurchased     float64 // Sum of amounts actually bought
	UnsatisfiedDemand  float64 // TotalDemand - TotalPurchased
	OrdersPlaced       int     // Replenishment orders placed
	OrdersDelivered    int     // Replenishment orders delivered
	TotalReplenished   float64 // Sum of delivered amounts

	MeanLevel   float64 // Mean of sampled inventory levels
	MedianLevel float64 // Median of sampled inventory levels
	MinLevel    float64 // Lowest sampled level
	FinalLevel  float64 // Level when the run ended
}

// ComputeMetrics derives aggregate metrics from a completed trace.
func ComputeMetrics(tr *Trace, finalLevel float64) *Metrics {
	m := &Metrics{
		Customers:       len(tr.CustomerArrivals),
		OrdersPlaced:    len(tr.OrderPlacements),
		OrdersDelivered: len(tr.OrderArrivals),
		FinalLevel:      finalLevel,
	}
	for i, demand := range tr.CustomerDemands {
		m.TotalDemand += float64(demand)
		if i >= len(tr.CustomerPurchases) {
			// A customer mid-purchase at the horizon has a recorded
			// demand but no purchase yet.
			continue
		}
		purchased := tr.CustomerPurchases[i]
		m.TotalPurchased += purchased
		switch {
		case purchased == float64(demand):
			m.SatisfiedCustomers++
		case purchased > 0:
			m.PartialCustomers++
		default:
			m.TurnedAway++
		}
	}
	m.UnsatisfiedDemand = m.TotalDemand - m.TotalPurchased
	for _, amt := range tr.OrderAmounts {
		m.TotalReplenished += amt
	}
	if n := len(tr.LevelSamples); n > 0 {
		levels := make([]float64, n)
		m.MinLevel = tr.LevelSamples[0].Level
		for i, s := range tr.LevelSamples {
			levels[i] = s.Level
			if s.Level < m.MinLevel {
				m.MinLevel = s.Level
			}
		}
		m.MeanLevel = stat.Mean(levels, nil)
		sort.Float64s(levels)
		m.MedianLevel = stat.Quantile(0.5, stat.Empirical, levels, nil)
	}
	return m
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Customers            : %d\n", m.Customers)
	fmt.Printf("  fully satisfied    : %d\n", m.SatisfiedCustomers)
	fmt.Printf("  partly satisfied   : %d\n", m.PartialCustomers)
	fmt.Printf("  turned away        : %d\n", m.TurnedAway)
	fmt.Printf("Demand satisfied     : %.0f/%.0f\n", m.TotalPurchased, m.TotalDemand)
	fmt.Printf("Unsatisfied demand   : %.0f\n", m.UnsatisfiedDemand)
	fmt.Printf("Orders placed        : %d\n", m.OrdersPlaced)
	fmt.Printf("Orders delivered     : %d (total %.0f units)\n", m.OrdersDelivered, m.TotalReplenished)
	fmt.Printf("Mean inventory level : %.2f\n", m.MeanLevel)
	fmt.Printf("Median level         : %.2f\n", m.MedianLevel)
	fmt.Printf("Min sampled level    : %.2f\n", m.MinLevel)
	fmt.Printf("Final level          : %.2f\n", m.FinalLevel)
}

// Holds the append-only observation sequences processes record as they
// run. The trace is the engine's only output surface toward reporting:
// it owns no formatting or persistence.

package sim

// LevelSample is one (time, level) observation taken by the sampler.
type LevelSample struct {
	Time  VirtualTime
	Level float64
}

// Trace collects the observable history of a run. Every sequence is
// append-only and time-ordered; processes write, reporting reads.
// Keeping the trace on the simulator rather than in package-level
// variables lets tests run independent instances side by side.
type Trace struct {
	LevelSamples      []LevelSample
	CustomerArrivals  []VirtualTime
	CustomerDemands   []int
	CustomerPurchases []float64
	CheckTimes        []VirtualTime
	OrderPlacements   []VirtualTime
	OrderArrivals     []VirtualTime
	OrderAmounts      []float64
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// RecordSample appends one inventory level observation.
func (tr *Trace) RecordSample(t VirtualTime, level float64) {
	tr.LevelSamples = append(tr.LevelSamples, LevelSample{Time: t, Level: level})
}

// RecordArrival appends a customer's arrival time and drawn demand.
func (tr *Trace) RecordArrival(t VirtualTime, demand int) {
	tr.CustomerArrivals = append(tr.CustomerArrivals, t)
	tr.CustomerDemands = append(tr.CustomerDemands, demand)
}

// RecordPurchase appends the amount a customer actually bought, which is
// zero for a fully dissatisfied customer.
func (tr *Trace) RecordPurchase(amount float64) {
	tr.CustomerPurchases = append(tr.CustomerPurchases, amount)
}

// RecordCheck appends the time of one inventory-control check.
func (tr *Trace) RecordCheck(t VirtualTime) {
	tr.CheckTimes = append(tr.CheckTimes, t)
}

// RecordOrderPlaced appends the time an order was placed.
func (tr *Trace) RecordOrderPlaced(t VirtualTime) {
	tr.OrderPlacements = append(tr.OrderPlacements, t)
}

// RecordOrderArrived appends a delivery's time and amount.
func (tr *Trace) RecordOrderArrived(t VirtualTime, amount float64) {
	tr.OrderArrivals = append(tr.OrderArrivals, t)
	tr.OrderAmounts = append(tr.OrderAmounts, amount)
}

// Result is what a completed run exposes for inspection: the final
// stock level, the full trace, and aggregate metrics over it.
type Result struct {
	EndTime    VirtualTime
	FinalLevel float64
	Trace      *Trace
	Metrics    *Metrics
}

// LevelSampler records the inventory level on a fixed cadence so
// reporting can reconstruct the level curve between purchase events.

package sim

// LevelSampler is a standing instrumentation process: record
// (now, level), sleep one interval, repeat until the horizon.
type LevelSampler struct {
	stock    *Stock
	interval VirtualTime
}

// NewLevelSampler creates a sampler with the given period.
func NewLevelSampler(stock *Stock, interval VirtualTime) *LevelSampler {
	return &LevelSampler{stock: stock, interval: interval}
}

func (ls *LevelSampler) Name() string { return "level_sampler" }

func (ls *LevelSampler) Resume(sim *Simulator) Action {
	sim.Trace.RecordSample(sim.Clock, ls.stock.Level())
	return Wait(ls.interval)
}

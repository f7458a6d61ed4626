// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, the event
// loop, and the shared state processes communicate through: the stock
// and the observation trace.
//
// Concurrency model: a single logical thread of control. "Concurrent"
// processes are cooperative continuations interleaved only at their
// suspension points, so only one process ever runs at a time and no
// locking is needed.
type Simulator struct {
	Clock   VirtualTime
	Horizon VirtualTime

	// EventQueue holds all pending process resumptions.
	EventQueue *EventQueue
	Stock      *Stock
	Trace      *Trace
	Config     Config
	// RNG is injected, never constructed internally, so a fixed seed
	// replays an identical run.
	RNG *PartitionedRNG

	// awaiting maps a spawned child to the parent suspended on its
	// completion.
	awaiting map[Process]Process
	// finished guards against resuming a process that already yielded
	// Done, which would mean an event was delivered twice.
	finished map[Process]bool
}

// NewSimulator creates a simulator for cfg. The configuration must have
// been validated; the stock starts at full capacity.
func NewSimulator(cfg Config, rng *PartitionedRNG) *Simulator {
	return &Simulator{
		Clock:      0,
		Horizon:    cfg.Horizon,
		EventQueue: NewEventQueue(),
		Stock:      NewStock(cfg.InventoryCapacity),
		Trace:      NewTrace(),
		Config:     cfg,
		RNG:        rng,
		awaiting:   make(map[Process]Process),
		finished:   make(map[Process]bool),
	}
}

// Schedule enqueues a resumption of p at time t. Scheduling into the
// past would require time travel and is a programming error, not a
// recoverable condition.
func (sim *Simulator) Schedule(t VirtualTime, p Process) {
	if t < sim.Clock {
		panic(fmt.Sprintf("Schedule: process %s scheduled at %v, before now %v", p.Name(), t, sim.Clock))
	}
	sim.EventQueue.Schedule(t, p)
}

// Spawn starts p at the current time without suspending the caller.
func (sim *Simulator) Spawn(p Process) {
	sim.Schedule(sim.Clock, p)
}

// wake re-queues a process released by the stock so it continues at the
// current time, behind events already scheduled for this instant.
func (sim *Simulator) wake(p Process) {
	sim.EventQueue.Schedule(sim.Clock, p)
}

// Run executes the event loop: pop the earliest event, advance the
// clock, resume the owning process, dispatch whatever action it yields.
// The loop stops when the queue drains or the next event lies beyond the
// horizon; that event is never executed.
func (sim *Simulator) Run() *Result {
	for {
		next := sim.EventQueue.Peek()
		if next == nil || next.Time > sim.Horizon {
			break
		}
		ev := sim.EventQueue.PopEarliest()
		if ev.Time < sim.Clock {
			panic(fmt.Sprintf("Run: clock went backwards: %v < %v", ev.Time, sim.Clock))
		}
		sim.Clock = ev.Time
		logrus.Debugf("[t=%07.1f] resuming %s (seq %d)", sim.Clock, ev.Process.Name(), ev.Seq)
		sim.resume(ev.Process)
	}
	end := sim.Clock
	if sim.EventQueue.Len() > 0 {
		// Standing processes still had work past the horizon.
		end = sim.Horizon
	}
	logrus.Infof("[t=%07.1f] simulation ended", end)
	return &Result{
		EndTime:    end,
		FinalLevel: sim.Stock.Level(),
		Trace:      sim.Trace,
		Metrics:    ComputeMetrics(sim.Trace, sim.Stock.Level()),
	}
}

// resume runs p to its next suspension point and dispatches the action.
func (sim *Simulator) resume(p Process) {
	if sim.finished[p] {
		panic(fmt.Sprintf("resume: process %s resumed after finishing at t=%v", p.Name(), sim.Clock))
	}
	act := p.Resume(sim)
	switch act.Kind {
	case ActionWait:
		if act.Delay < 0 {
			panic(fmt.Sprintf("resume: process %s waited negative delay %v", p.Name(), act.Delay))
		}
		sim.Schedule(sim.Clock+act.Delay, p)
	case ActionGet:
		act.Resource.Get(sim, p, act.Amount)
	case ActionPut:
		act.Resource.Put(sim, p, act.Amount)
	case ActionAwait:
		sim.awaiting[act.Child] = p
		sim.Schedule(sim.Clock, act.Child)
	case ActionDone:
		sim.finished[p] = true
		if parent, ok := sim.awaiting[p]; ok {
			delete(sim.awaiting, p)
			sim.wake(parent)
		}
	default:
		panic(fmt.Sprintf("resume: process %s yielded unknown action %d", p.Name(), act.Kind))
	}
}

// Start installs the standing processes and seeds their first events at
// time zero: the inventory control loop, the customer generator, and,
// when a sampling interval is configured, the level sampler.
func (sim *Simulator) Start() {
	sim.Spawn(NewInventoryControl(sim.Stock, sim.Config))
	sim.Spawn(NewCustomerGenerator(sim.Stock, sim.Config))
	if sim.Config.SampleInterval > 0 {
		sim.Spawn(NewLevelSampler(sim.Stock, sim.Config.SampleInterval))
	}
}

// RunScenario validates cfg, builds a simulator over the injected RNG,
// installs the standing processes, and runs to the horizon. This is the
// engine's whole external surface: no CLI or file I/O lives here.
func RunScenario(cfg Config, rng *PartitionedRNG) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sim := NewSimulator(cfg, rng)
	sim.Start()
	return sim.Run(), nil
}

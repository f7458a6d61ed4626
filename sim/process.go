// Defines the Process abstraction and the actions a process may yield
// back to the simulator when it suspends.

package sim

// Process is a logical, independently suspendable unit of simulated
// behavior (one customer's lifecycle, the inventory control loop, ...).
// A process is an explicit state machine: each Resume call runs it up to
// its next suspension point and returns the Action it suspends on.
//
// Ownership: at any instant a process is referenced by exactly one of the
// event queue (waiting on a timer), a Stock wait list (waiting on
// quantity), or the simulator (currently running). The simulator enforces
// this by panicking on any resumption after ActionDone.
type Process interface {
	// Name identifies the process in logs and invariant-violation panics.
	Name() string
	// Resume runs the process until its next suspension point.
	// It must only be called by the simulator's event loop.
	Resume(sim *Simulator) Action
}

// ActionKind enumerates the suspension points a process may yield at.
type ActionKind int

const (
	// ActionWait re-schedules the process at Clock + Delay.
	ActionWait ActionKind = iota
	// ActionGet withdraws Amount from Resource, suspending until the
	// level covers it.
	ActionGet
	// ActionPut deposits Amount into Resource, suspending until free
	// capacity covers it.
	ActionPut
	// ActionAwait spawns Child at the current time and suspends the
	// parent until the child finishes.
	ActionAwait
	// ActionDone terminates the process; it is never resumed again.
	ActionDone
)

// Action is what a suspending process hands back to the event loop.
// Only the fields relevant to Kind are set.
type Action struct {
	Kind     ActionKind
	Delay    VirtualTime // ActionWait
	Resource *Stock      // ActionGet, ActionPut
	Amount   float64     // ActionGet, ActionPut
	Child    Process     // ActionAwait
}

// Wait suspends the caller for d time units.
func Wait(d VirtualTime) Action {
	return Action{Kind: ActionWait, Delay: d}
}

// Get suspends the caller until amount can be withdrawn from s.
func Get(s *Stock, amount float64) Action {
	return Action{Kind: ActionGet, Resource: s, Amount: amount}
}

// Put suspends the caller until amount can be deposited into s.
func Put(s *Stock, amount float64) Action {
	return Action{Kind: ActionPut, Resource: s, Amount: amount}
}

// Await spawns child at the current time and suspends the caller until
// the child finishes.
func Await(child Process) Action {
	return Action{Kind: ActionAwait, Child: child}
}

// Done terminates the caller.
func Done() Action {
	return Action{Kind: ActionDone}
}

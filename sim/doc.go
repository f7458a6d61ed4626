// Package sim provides a discrete-event simulation of a retail
// inventory under stochastic customer demand and periodic
// replenishment.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event_queue.go: the (time, sequence) ordered queue of pending resumptions
//   - process.go: the Process interface and the actions a process suspends on
//   - simulator.go: the event loop, action dispatch, and run entry point
//
// # Architecture
//
// State changes only at discrete events; the clock jumps between them.
// Processes are explicit state machines: each Resume call runs one to
// its next suspension point (a timed wait, a stock get/put, awaiting a
// spawned child) and yields an Action the simulator dispatches.
// Suspension points are first-class data rather than language-level
// control transfer, so the event loop alone decides who runs next.
//
// Ordering is deterministic by construction: events at equal time
// resolve in schedule order via sequence numbers, stock waiters resolve
// in strict FIFO arrival order, and all randomness flows through a
// seed-partitioned RNG injected at construction. The same seed and
// configuration therefore reproduce an identical trace.
//
// The domain layer on top is small: customer.go (arrival generator and
// purchase flow), replenishment.go (reorder-point control loop and
// order fulfillment), sampler.go (level instrumentation). All of them
// communicate only through the Stock and the append-only Trace.
package sim

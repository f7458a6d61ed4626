// Implements Stock, the blocking quantity resource that models the
// retail shop's inventory.

package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// waker is the scheduling surface Stock needs to hand a satisfied waiter
// back to the event loop at the current virtual time. *Simulator
// implements it; tests substitute a recorder.
type waker interface {
	wake(p Process)
}

// stockWaiter is one pending get or put: the requested amount and the
// suspended process that issued it.
type stockWaiter struct {
	amount  float64
	process Process
}

// Stock is a bounded container of a divisible numeric quantity.
// Withdrawals and deposits that cannot complete immediately suspend the
// requesting process on a FIFO wait list; waiters are released strictly
// in arrival order (no head-of-line overtaking).
//
// Invariant: 0 <= level <= capacity at every point between event
// resumptions.
type Stock struct {
	capacity float64
	level    float64

	pendingGets []stockWaiter
	pendingPuts []stockWaiter
}

// NewStock creates a stock with the given capacity, filled to capacity.
func NewStock(capacity float64) *Stock {
	if !validAmount(capacity) || capacity <= 0 {
		panic(fmt.Sprintf("NewStock: invalid capacity %v", capacity))
	}
	return &Stock{capacity: capacity, level: capacity}
}

// Level returns the current quantity held.
func (s *Stock) Level() float64 { return s.level }

// Capacity returns the maximum quantity the stock can hold.
func (s *Stock) Capacity() float64 { return s.capacity }

// PendingGets returns the number of processes waiting to withdraw.
func (s *Stock) PendingGets() int { return len(s.pendingGets) }

// PendingPuts returns the number of processes waiting to deposit.
func (s *Stock) PendingPuts() int { return len(s.pendingPuts) }

// Get withdraws amount on behalf of p. If the level covers the request it
// applies immediately and p is woken to continue at the current time;
// otherwise p joins the back of the get wait list.
func (s *Stock) Get(w waker, p Process, amount float64) {
	if !validAmount(amount) {
		panic(fmt.Sprintf("Stock.Get: process %s requested invalid amount %v", p.Name(), amount))
	}
	// A newcomer must not overtake waiters already in line, so the fast
	// path applies only when the wait list is empty.
	if len(s.pendingGets) == 0 && amount <= s.level {
		s.level -= amount
		w.wake(p)
		s.settle(w)
		return
	}
	s.pendingGets = append(s.pendingGets, stockWaiter{amount: amount, process: p})
	logrus.Debugf("stock: %s waiting for %v (level=%v)", p.Name(), amount, s.level)
}

// Put deposits amount on behalf of p. If free capacity covers the request
// it applies immediately, p is woken, and waiting getters are released in
// FIFO order; otherwise p joins the back of the put wait list. In this
// domain the ordering policy keeps deposits within free capacity, so puts
// resolve immediately in practice, but suspension is supported for
// generality.
func (s *Stock) Put(w waker, p Process, amount float64) {
	if !validAmount(amount) {
		panic(fmt.Sprintf("Stock.Put: process %s offered invalid amount %v", p.Name(), amount))
	}
	if len(s.pendingPuts) == 0 && s.level+amount <= s.capacity {
		s.level += amount
		w.wake(p)
		s.settle(w)
		return
	}
	s.pendingPuts = append(s.pendingPuts, stockWaiter{amount: amount, process: p})
	logrus.Debugf("stock: %s waiting to deposit %v (level=%v)", p.Name(), amount, s.level)
}

// TakeUpTo withdraws min(level, max) immediately and returns the amount
// actually taken, possibly zero. It never suspends and bypasses the FIFO
// get list entirely: a customer draining leftover stock leaves at once
// rather than queueing behind earlier, larger requests.
func (s *Stock) TakeUpTo(max float64) float64 {
	if !validAmount(max) {
		panic(fmt.Sprintf("Stock.TakeUpTo: invalid amount %v", max))
	}
	taken := math.Min(s.level, max)
	s.level -= taken
	return taken
}

// settle releases waiters made runnable by a level change. Pending gets
// are scanned in FIFO arrival order, stopping at the first that still
// cannot be satisfied, even if a later smaller one could be; pending puts
// are scanned the same way against free capacity. The scan repeats until
// a full pass releases nobody, since an applied put can unblock gets and
// vice versa.
func (s *Stock) settle(w waker) {
	for {
		released := false
		for len(s.pendingGets) > 0 {
			head := s.pendingGets[0]
			if head.amount > s.level {
				break
			}
			s.level -= head.amount
			s.pendingGets = s.pendingGets[1:]
			w.wake(head.process)
			released = true
		}
		for len(s.pendingPuts) > 0 {
			head := s.pendingPuts[0]
			if s.level+head.amount > s.capacity {
				break
			}
			s.level += head.amount
			s.pendingPuts = s.pendingPuts[1:]
			w.wake(head.process)
			released = true
		}
		if !released {
			return
		}
	}
}

// validAmount rejects negative and non-finite quantities, which are
// contract violations rather than wait conditions.
func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

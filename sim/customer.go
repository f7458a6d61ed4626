// Customer-side processes: the generator that feeds the shop and the
// per-customer purchase flow.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CustomerGenerator spawns a new Customer after every uniformly drawn
// inter-arrival gap. It is a standing process: it never finishes and is
// bounded only by the simulation horizon.
type CustomerGenerator struct {
	stock   *Stock
	cfg     Config
	started bool
	count   int
}

// NewCustomerGenerator creates the generator over the shared stock.
func NewCustomerGenerator(stock *Stock, cfg Config) *CustomerGenerator {
	return &CustomerGenerator{stock: stock, cfg: cfg}
}

func (g *CustomerGenerator) Name() string { return "customer_generator" }

// Resume spawns the next customer (except on the very first activation,
// which only starts the initial gap) and suspends until the following
// arrival.
func (g *CustomerGenerator) Resume(sim *Simulator) Action {
	if g.started {
		g.count++
		sim.Spawn(NewCustomer(fmt.Sprintf("Customer_%d", g.count), g.stock, g.cfg))
	} else {
		g.started = true
	}
	gap := sim.RNG.IntBetween(SubsystemArrivals, g.cfg.InterArrivalMin, g.cfg.InterArrivalMax)
	return Wait(VirtualTime(gap))
}

// Customer phases. A customer makes exactly one purchase attempt and
// never retries or re-queues.
const (
	customerArrive = iota
	customerBuy
	customerLeave
)

// Customer models one shopper: arrive, draw a demand, spend the
// purchasing delay, then apply the purchase policy against the stock.
type Customer struct {
	name   string
	stock  *Stock
	cfg    Config
	phase  int
	demand int
}

// NewCustomer creates a customer; the demand is drawn on activation.
func NewCustomer(name string, stock *Stock, cfg Config) *Customer {
	return &Customer{name: name, stock: stock, cfg: cfg}
}

// NewCustomerWithDemand creates a customer with a fixed demand instead
// of a drawn one. Used to stage exact purchase sequences.
func NewCustomerWithDemand(name string, stock *Stock, cfg Config, demand int) *Customer {
	return &Customer{name: name, stock: stock, cfg: cfg, demand: demand}
}

func (c *Customer) Name() string { return c.name }

func (c *Customer) Resume(sim *Simulator) Action {
	switch c.phase {
	case customerArrive:
		if c.demand == 0 {
			c.demand = sim.RNG.IntBetween(SubsystemDemand, 1, c.cfg.MaxPurchase)
		}
		logrus.Infof("%s arriving at retail shop at %.1f (demand %d)", c.name, sim.Clock, c.demand)
		sim.Trace.RecordArrival(sim.Clock, c.demand)
		c.phase = customerBuy
		return Wait(c.cfg.PurchaseDelay)

	case customerBuy:
		demand := float64(c.demand)
		level := c.stock.Level()
		switch {
		case level >= demand:
			// The check and the withdrawal happen without an
			// intervening suspension, so the get applies immediately.
			logrus.Infof("%s purchased %d products at %.1f", c.name, c.demand, sim.Clock)
			sim.Trace.RecordPurchase(demand)
			c.phase = customerLeave
			return Get(c.stock, demand)
		case level > 0:
			taken := c.stock.TakeUpTo(demand)
			logrus.Infof("%s purchased %.0f products at %.1f and leaves partly dissatisfied", c.name, taken, sim.Clock)
			sim.Trace.RecordPurchase(taken)
			return Done()
		default:
			logrus.Infof("%s purchased nothing and leaves dissatisfied", c.name)
			sim.Trace.RecordPurchase(0)
			return Done()
		}

	default:
		return Done()
	}
}

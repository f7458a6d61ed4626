// Replenishment-side processes: the periodic inventory control loop and
// the per-order fulfillment flow.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Inventory control phases.
const (
	controlCheck = iota
	controlAwaitDelivery
)

// InventoryControl periodically compares the stock level against the
// reorder point and places a replenishment order when it has fallen to
// or below it. The loop blocks on the order's full fulfillment before
// its next check, so no second order can be placed during a lead time.
// That mirrors the original shop's policy exactly; a real shop might
// well reorder again if stock keeps draining, so this is a known policy
// limitation rather than an engine constraint.
type InventoryControl struct {
	stock  *Stock
	cfg    Config
	phase  int
	orders int
}

// NewInventoryControl creates the control loop over the shared stock.
func NewInventoryControl(stock *Stock, cfg Config) *InventoryControl {
	return &InventoryControl{stock: stock, cfg: cfg}
}

func (ic *InventoryControl) Name() string { return "inventory_control" }

func (ic *InventoryControl) Resume(sim *Simulator) Action {
	if ic.phase == controlCheck && ic.stock.Level() <= ic.cfg.ReorderPoint {
		logrus.Infof("place order at %.1f (level %.0f <= ROP %.0f)", sim.Clock, ic.stock.Level(), ic.cfg.ReorderPoint)
		sim.Trace.RecordOrderPlaced(sim.Clock)
		ic.orders++
		ic.phase = controlAwaitDelivery
		return Await(NewOrderFulfillment(ic.orders, ic.stock, ic.cfg))
	}
	// Either the level is healthy or the awaited delivery just landed;
	// record this check and sleep until the next one.
	ic.phase = controlCheck
	sim.Trace.RecordCheck(sim.Clock)
	return Wait(ic.cfg.PeriodicCheckInterval)
}

// Order fulfillment phases.
const (
	orderInTransit = iota
	orderDelivered
)

// OrderFulfillment models one replenishment order: the supplier's lead
// time, then a deposit of the economic order quantity. It finishes once
// the deposit applies, waking the control loop that awaits it.
type OrderFulfillment struct {
	id    int
	stock *Stock
	cfg   Config
	phase int
}

// NewOrderFulfillment creates the fulfillment flow for one order.
func NewOrderFulfillment(id int, stock *Stock, cfg Config) *OrderFulfillment {
	return &OrderFulfillment{id: id, stock: stock, cfg: cfg}
}

func (o *OrderFulfillment) Name() string { return fmt.Sprintf("order_%d", o.id) }

func (o *OrderFulfillment) Resume(sim *Simulator) Action {
	switch o.phase {
	case orderInTransit:
		o.phase = orderDelivered
		return Wait(o.cfg.LeadTime)
	case orderDelivered:
		amount := o.cfg.EconomicOrderQuantity
		logrus.Infof("inventory refilled by %.0f products at %.1f", amount, sim.Clock)
		sim.Trace.RecordOrderArrived(sim.Clock, amount)
		o.phase = -1
		return Put(o.stock, amount)
	default:
		return Done()
	}
}

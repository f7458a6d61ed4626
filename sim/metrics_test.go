package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_ClassifiesCustomerOutcomes(t *testing.T) {
	tr := NewTrace()
	tr.RecordArrival(1, 5)
	tr.RecordPurchase(5) // fully satisfied
	tr.RecordArrival(2, 8)
	tr.RecordPurchase(3) // partial
	tr.RecordArrival(3, 2)
	tr.RecordPurchase(0) // turned away
	tr.RecordOrderPlaced(4)
	tr.RecordOrderArrived(12, 10)

	m := ComputeMetrics(tr, 14)

	require.Equal(t, 3, m.Customers)
	require.Equal(t, 1, m.SatisfiedCustomers)
	require.Equal(t, 1, m.PartialCustomers)
	require.Equal(t, 1, m.TurnedAway)
	require.Equal(t, 15.0, m.TotalDemand)
	require.Equal(t, 8.0, m.TotalPurchased)
	require.Equal(t, 7.0, m.UnsatisfiedDemand)
	require.Equal(t, 1, m.OrdersPlaced)
	require.Equal(t, 1, m.OrdersDelivered)
	require.Equal(t, 10.0, m.TotalReplenished)
	require.Equal(t, 14.0, m.FinalLevel)
}

func TestComputeMetrics_LevelSummary(t *testing.T) {
	tr := NewTrace()
	for i, level := range []float64{20, 10, 6, 12, 2} {
		tr.RecordSample(VirtualTime(i), level)
	}

	m := ComputeMetrics(tr, 2)

	require.Equal(t, 10.0, m.MeanLevel)
	require.Equal(t, 2.0, m.MinLevel)
	require.Equal(t, 10.0, m.MedianLevel)
}

func TestComputeMetrics_EmptyTrace(t *testing.T) {
	m := ComputeMetrics(NewTrace(), 20)

	require.Zero(t, m.Customers)
	require.Zero(t, m.TotalDemand)
	require.Zero(t, m.MeanLevel)
	require.Equal(t, 20.0, m.FinalLevel)
}

func TestComputeMetrics_DemandWithoutPurchaseAtHorizon(t *testing.T) {
	// A customer cut off mid-purchase by the horizon has a demand on
	// record but no purchase; the totals must not misclassify them.
	tr := NewTrace()
	tr.RecordArrival(1, 5)
	tr.RecordPurchase(5)
	tr.RecordArrival(499, 7) // no purchase recorded

	m := ComputeMetrics(tr, 15)

	require.Equal(t, 2, m.Customers)
	require.Equal(t, 1, m.SatisfiedCustomers)
	require.Equal(t, 12.0, m.TotalDemand)
	require.Equal(t, 5.0, m.TotalPurchased)
}

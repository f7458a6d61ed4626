package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const scenarioYAML = `scenarios:
  retail-shop:
    inventory_capacity: 20
    reorder_point: 10
    economic_order_quantity: 10
    lead_time: 8
    periodic_checking_time: 2
    max_purchase_per_customer: 10
    purchase_delay: 0
    inter_arrival_min: 0
    inter_arrival_max: 30
    simulation_horizon: 500
    sample_interval: 0.1
  slow-supplier:
    inventory_capacity: 50
    reorder_point: 25
    economic_order_quantity: 30
    lead_time: 40
    periodic_checking_time: 5
    max_purchase_per_customer: 5
    inter_arrival_min: 1
    inter_arrival_max: 10
    simulation_horizon: 1000
`

func writeScenarioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))
	return path
}

func TestLoadScenario_ReturnsNamedPreset(t *testing.T) {
	path := writeScenarioFile(t)

	cfg, err := LoadScenario(path, "retail-shop")
	require.NoError(t, err)

	require.Equal(t, 20.0, cfg.InventoryCapacity)
	require.Equal(t, 10.0, cfg.ReorderPoint)
	require.Equal(t, 8.0, cfg.LeadTime)
	require.Equal(t, 30, cfg.InterArrivalMax)
	require.Equal(t, 0.1, cfg.SampleInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoadScenario_SecondPreset(t *testing.T) {
	path := writeScenarioFile(t)

	cfg, err := LoadScenario(path, "slow-supplier")
	require.NoError(t, err)

	require.Equal(t, 50.0, cfg.InventoryCapacity)
	require.Equal(t, 40.0, cfg.LeadTime)
	// sample_interval omitted: sampler disabled, still a valid config
	require.Zero(t, cfg.SampleInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoadScenario_UnknownName(t *testing.T) {
	path := writeScenarioFile(t)

	_, err := LoadScenario(path, "no-such-scenario")
	require.ErrorContains(t, err, "no-such-scenario")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"), "retail-shop")
	require.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: ["), 0o644))

	_, err := LoadScenario(path, "retail-shop")
	require.Error(t, err)
}

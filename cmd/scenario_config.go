package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/retail-des/inventory-sim/sim"
)

// ScenarioFile is the YAML shape of a scenario preset file: a map of
// named scenarios, each a full simulation config.
type ScenarioFile struct {
	Scenarios map[string]sim.Config `yaml:"scenarios"`
}

// LoadScenario reads the preset file and returns the named scenario.
// Fields a preset omits keep their zero values and fail validation
// later, which keeps the file format honest.
func LoadScenario(path string, name string) (sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Config{}, err
	}

	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return sim.Config{}, err
	}

	cfg, ok := file.Scenarios[name]
	if !ok {
		return sim.Config{}, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	return cfg, nil
}

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	sim "github.com/retail-des/inventory-sim/sim"
)

var (
	// CLI flags for the simulation scenario
	seed              int64   // Seed for all random draws
	simulationHorizon float64 // Total simulation time (virtual units)
	logLevel          string  // Log verbosity level
	logFile           string  // Optional rotating log file

	inventoryCapacity     float64 // Stock capacity; the shop opens full
	reorderPoint          float64 // Level that triggers an order
	economicOrderQuantity float64 // Fixed amount per replenishment order
	leadTime              float64 // Supplier delay, order to delivery
	checkInterval         float64 // Inventory control loop period
	maxPurchase           int     // Max products one customer buys
	purchaseDelay         float64 // Fixed time a purchase takes
	interArrivalMin       int     // Min gap between customer arrivals
	interArrivalMax       int     // Max gap between customer arrivals
	sampleInterval        float64 // Level sampler period (0 disables)

	scenarioFile string // YAML file with scenario presets
	scenarioName string // Preset name within the scenario file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "inventory-sim",
	Short: "Discrete-event simulator for retail inventory replenishment",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the inventory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		if logFile != "" {
			logrus.SetOutput(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    20, // megabytes
				MaxBackups: 3,
			})
		}

		cfg := sim.Config{
			InventoryCapacity:     inventoryCapacity,
			ReorderPoint:          reorderPoint,
			EconomicOrderQuantity: economicOrderQuantity,
			LeadTime:              leadTime,
			PeriodicCheckInterval: checkInterval,
			MaxPurchase:           maxPurchase,
			PurchaseDelay:         purchaseDelay,
			InterArrivalMin:       interArrivalMin,
			InterArrivalMax:       interArrivalMax,
			Horizon:               simulationHorizon,
			SampleInterval:        sampleInterval,
		}
		if scenarioFile != "" {
			preset, err := LoadScenario(scenarioFile, scenarioName)
			if err != nil {
				logrus.Fatalf("unable to load scenario %q: %v", scenarioName, err)
			}
			cfg = preset
		}

		logrus.Infof("Starting simulation: capacity=%.0f ROP=%.0f EOQ=%.0f lead=%.0f horizon=%.0f seed=%d",
			cfg.InventoryCapacity, cfg.ReorderPoint, cfg.EconomicOrderQuantity, cfg.LeadTime, cfg.Horizon, seed)

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		result, err := sim.RunScenario(cfg, rng)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}
		result.Metrics.Print()

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	def := sim.DefaultConfig()

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random arrival and demand draws")
	runCmd.Flags().Float64Var(&simulationHorizon, "horizon", def.Horizon, "Total simulation horizon (virtual time units)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file with rotation instead of stderr")

	// Retail shop configs
	runCmd.Flags().Float64Var(&inventoryCapacity, "capacity", def.InventoryCapacity, "Inventory capacity; the stock starts full")
	runCmd.Flags().Float64Var(&reorderPoint, "reorder-point", def.ReorderPoint, "Stock level that triggers a replenishment order")
	runCmd.Flags().Float64Var(&economicOrderQuantity, "eoq", def.EconomicOrderQuantity, "Fixed amount delivered per order")
	runCmd.Flags().Float64Var(&leadTime, "lead-time", def.LeadTime, "Delay between order placement and delivery")
	runCmd.Flags().Float64Var(&checkInterval, "check-interval", def.PeriodicCheckInterval, "Period of the inventory control loop")
	runCmd.Flags().IntVar(&maxPurchase, "max-purchase", def.MaxPurchase, "Maximum products a single customer buys")
	runCmd.Flags().Float64Var(&purchaseDelay, "purchase-delay", def.PurchaseDelay, "Fixed time a customer spends purchasing")
	runCmd.Flags().IntVar(&interArrivalMin, "inter-arrival-min", def.InterArrivalMin, "Minimum gap between customer arrivals")
	runCmd.Flags().IntVar(&interArrivalMax, "inter-arrival-max", def.InterArrivalMax, "Maximum gap between customer arrivals")
	runCmd.Flags().Float64Var(&sampleInterval, "sample-interval", def.SampleInterval, "Level sampling period (0 disables the sampler)")

	// Scenario presets
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML file holding named scenario presets")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "retail-shop", "Preset name to load from the scenario file")

	rootCmd.AddCommand(runCmd)
}

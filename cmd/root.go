package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/hybrid-cache/cachesim/sim"
	"github.com/hybrid-cache/cachesim/sim/trace"
)

var (
	// CLI flags for a single simulation run
	seed      int64  // Seed for deterministic access-pattern generation
	logLevel  string // Log verbosity level
	capacity  int    // Cache capacity in blocks
	mode      string // Workload mode ("friendly" or "hostile")
	pattern   string // Access pattern name
	accesses  int    // Number of access events to generate
	baseline  bool   // Also replay the trace through a plain LRU cache
	modeFlips bool   // Flip the workload mode halfway through each run

	// CLI flags for suite runs and trace output
	workloadsFile string // YAML workload suite path (overrides single-run flags)
	traceLevel    string // Decision trace level (none, decisions)
	traceOut      string // Trace output path (.snappy suffix compresses)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Simulator for a hybrid ML/LRU cache replacement policy",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cache replacement simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		// Resolve the suite: either the YAML file or a single entry from flags.
		var suite *WorkloadSuite
		if workloadsFile != "" {
			suite, err = LoadWorkloadSuite(workloadsFile)
			if err != nil {
				logrus.Fatalf("Unable to load workload suite: %v", err)
			}
		} else {
			suite = &WorkloadSuite{Workloads: []WorkloadEntry{{
				Name:     pattern,
				Pattern:  pattern,
				Mode:     mode,
				Capacity: capacity,
				Accesses: accesses,
			}}}
			if err := suite.Validate(); err != nil {
				logrus.Fatalf("Invalid run configuration: %v", err)
			}
		}

		logrus.Infof("Starting simulation: %d workload(s), seed=%d, trace=%s",
			len(suite.Workloads), seed, traceLevel)

		metrics := sim.NewMetrics()
		st := trace.NewSimulationTrace(trace.TraceLevel(traceLevel))

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		workloadRNG := rng.ForSubsystem(sim.SubsystemWorkload)

		for _, entry := range suite.Workloads {
			if err := runEntry(entry, metrics, st, workloadRNG); err != nil {
				logrus.Fatalf("Workload %q failed: %v", entry.Name, err)
			}
		}

		metrics.Print()
		if traceOut != "" && st.Enabled() {
			if err := st.WriteFile(traceOut); err != nil {
				logrus.Fatalf("Unable to write trace: %v", err)
			}
			logrus.Infof("Decision trace written to %s", traceOut)
		}

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

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic access generation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Cache and workload configs
	runCmd.Flags().IntVar(&capacity, "capacity", 4, "Cache capacity in blocks")
	runCmd.Flags().StringVar(&mode, "mode", "hostile", "Workload mode (friendly, hostile)")
	runCmd.Flags().StringVar(&pattern, "pattern", "looping", "Access pattern (adversarial, looping, sequential, zipfian)")
	runCmd.Flags().IntVar(&accesses, "accesses", 1000, "Number of access events")
	runCmd.Flags().BoolVar(&baseline, "baseline", false, "Also replay the trace through a plain LRU cache")
	runCmd.Flags().BoolVar(&modeFlips, "mode-flip", false, "Flip the workload mode halfway through each run")
	runCmd.Flags().StringVar(&workloadsFile, "workloads", "", "YAML workload suite (overrides single-run flags)")

	// Decision tracing
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "Trace output path (.snappy suffix compresses)")

	rootCmd.AddCommand(runCmd)
}

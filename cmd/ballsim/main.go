package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/export"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dt         float64
	duration   float64
	seed       int64
	preset     string
	configFile string
	initial    int
	maxBodies  int
	// Export targets for the run command
	csvPath  string
	jsonPath string
	svgPath  string
	// Ensemble size
	runs int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballsim",
		Short: "bouncing ball sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addConfigFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		RunE:  runHeadless,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write per-body frames to a csv file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write the full run to a json file")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final scene to an svg file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addConfigFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run seeded replicas in parallel and compare metrics",
		RunE:  runEnsemble,
	}
	addConfigFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&runs, "runs", 4, "number of replicas")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping across dt and population",
		RunE:  runBench,
	}
	addConfigFlags(benchCmd)

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, ensembleCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in simulated seconds")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&initial, "bodies", config.DefaultInitial, "initial population")
	cmd.Flags().IntVar(&maxBodies, "max", config.DefaultMax, "population capacity")
}

// buildConfig resolves preset, config file, and flags in that order, with
// explicitly set flags winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("bodies") {
		cfg.Spawn.InitialBodies = initial
	}
	if cmd.Flags().Changed("max") {
		cfg.Spawn.MaxBodies = maxBodies
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runnerFactory(cfg *config.Config) sim.Factory {
	return sim.DefaultFactory(cfg.World, cfg.SpawnOptions(), cfg.Spawn.InitialBodies)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	r, err := runnerFactory(cfg)(cfg.Seed)
	if err != nil {
		return err
	}

	fmt.Printf("running %.1fs at dt=%.4fs...\n", cfg.Duration, cfg.Dt)
	start := time.Now()

	result, err := r.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("completed in %v (%d steps)\n\n", elapsed, result.StepsTaken)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	plotEnergy(result)

	if csvPath != "" {
		if err := export.CSV(csvPath, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := export.JSON(jsonPath, preset, cfg.Dt, cfg.Duration, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	if svgPath != "" {
		if err := export.SceneSVG(svgPath, r.World().Arena(), result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	return nil
}

func plotEnergy(result *sim.Result) {
	if len(result.Frames) < 2 {
		return
	}
	data := make([]float64, len(result.Frames))
	for i, f := range result.Frames {
		data[i] = metrics.Total(f.Bodies)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("kinetic energy"),
	)
	fmt.Println()
	fmt.Println(graph)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRAVITY\tRESTITUTION\tBODIES\tSPAWN INTERVAL")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%d/%d\t%.1f-%.1fs\n",
			name,
			p.Physics.Gravity,
			p.Physics.Restitution,
			p.Spawn.InitialBodies,
			p.Spawn.MaxBodies,
			p.Spawn.IntervalMin,
			p.Spawn.IntervalMax,
		)
	}
	return w.Flush()
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("running %d replicas of %.1fs at dt=%.4fs...\n\n", runs, cfg.Duration, cfg.Dt)

	e := sim.NewEnsemble(runnerFactory(cfg), runs, cfg.Seed)
	results, err := e.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tENERGY\tMAX OVERLAP\tPOPULATION")
	for i, res := range results {
		fmt.Fprintf(w, "%d\t%.2f\t%.4f\t%.1f\n",
			cfg.Seed+int64(i),
			res.Metrics["kinetic_energy"],
			res.Metrics["max_overlap"],
			res.Metrics["population"],
		)
	}
	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	dts := []float64{1.0 / 240, 1.0 / 120, 1.0 / 60}
	populations := []int{10, 50, 200}

	fmt.Println("benchmarking world stepping")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range populations {
		for _, stepDt := range dts {
			bench := *cfg
			bench.Spawn.InitialBodies = n
			bench.Spawn.MaxBodies = n
			// Scheduled drops off so the population stays fixed
			bench.Spawn.IntervalMin = bench.Duration * 10
			bench.Spawn.IntervalMax = bench.Duration * 20

			r, err := sim.DefaultFactory(bench.World, bench.SpawnOptions(), n)(bench.Seed)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := r.Run(context.Background(), sim.Config{Dt: stepDt, Duration: bench.Duration})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%.4fs\t%d\t%v\t%.0f\n",
				n, stepDt, result.StepsTaken, elapsed.Round(time.Millisecond), stepsPerSec)
		}
	}

	return w.Flush()
}

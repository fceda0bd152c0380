package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/dataset"
	"github.com/san-kum/kinelab/internal/explorer"
	"github.com/san-kum/kinelab/internal/formula"
	"github.com/san-kum/kinelab/internal/logging"
	"github.com/san-kum/kinelab/internal/plot"
	"github.com/san-kum/kinelab/internal/report"
	"github.com/san-kum/kinelab/internal/storage"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	cfg        *config.Config

	// basic
	distance  float64
	elapsed   float64
	v0        float64
	v1        float64
	accelTime float64
	mass      float64

	// projectile
	speed   float64
	angles  []float64
	gravity float64
	preset  string
	svgPath string

	// analyze
	save      bool
	noPlot    bool
	plotWidth int
)

// main wires the kinelab commands and exits with status 1 when a command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kinelab",
		Short:        "elementary kinematics lab",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := logging.Setup(logLevel); err != nil {
				return err
			}
			cfg = config.DefaultConfig()
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
				slog.Debug("config loaded", "file", configFile)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".kinelab", "run history directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	basicCmd := &cobra.Command{
		Use:   "basic",
		Short: "velocity, acceleration and force",
		Args:  cobra.NoArgs,
		RunE:  runBasic,
	}
	basicCmd.Flags().Float64Var(&distance, "distance", config.DefaultDistance, "distance travelled (m)")
	basicCmd.Flags().Float64Var(&elapsed, "time", config.DefaultTime, "time taken (s)")
	basicCmd.Flags().Float64Var(&v0, "v0", config.DefaultV0, "initial velocity (m/s)")
	basicCmd.Flags().Float64Var(&v1, "v1", config.DefaultV1, "final velocity (m/s)")
	basicCmd.Flags().Float64Var(&accelTime, "accel-time", config.DefaultAccelTime, "acceleration period (s)")
	basicCmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg)")

	projectileCmd := &cobra.Command{
		Use:   "projectile",
		Short: "projectile motion parameters",
		Args:  cobra.NoArgs,
		RunE:  runProjectile,
	}
	projectileCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "launch speed (m/s)")
	projectileCmd.Flags().Float64SliceVar(&angles, "angles", config.DefaultAngles, "launch angles (degrees)")
	projectileCmd.Flags().Float64Var(&gravity, "gravity", formula.StandardGravity, "gravitational acceleration (m/s²)")
	projectileCmd.Flags().StringVar(&preset, "preset", "", "gravity preset (see presets)")
	projectileCmd.Flags().StringVar(&svgPath, "svg", "", "write flight paths to an svg file")
	projectileCmd.MarkFlagsMutuallyExclusive("preset", "gravity")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "differentiate position data and summarise it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&svgPath, "svg", "", "write position/velocity plots to an svg file")
	analyzeCmd.Flags().BoolVar(&save, "save", false, "save the run to history")
	analyzeCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plots")
	analyzeCmd.Flags().IntVar(&plotWidth, "width", plot.DefaultWidth, "terminal plot width")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved analysis runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list gravity presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGRAVITY")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f m/s²\n", p.Name, p.Gravity)
			}
			return w.Flush()
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive projectile explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := cfg.Projectile.Speed
			if cmd.Flags().Changed("speed") {
				s = speed
			}
			a := 45.0
			if len(cfg.Projectile.Angles) > 0 {
				a = cfg.Projectile.Angles[0]
			}
			if preset != "" {
				if _, err := lookupPreset(preset); err != nil {
					return err
				}
			}
			return explorer.Run(s, a, preset)
		},
	}
	exploreCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "launch speed (m/s)")
	exploreCmd.Flags().StringVar(&preset, "preset", "", "gravity preset (default earth)")

	rootCmd.AddCommand(basicCmd, projectileCmd, analyzeCmd, runsCmd, showCmd, exportJSONCmd, presetsCmd, exploreCmd)
	return rootCmd
}

func lookupPreset(name string) (config.GravityPreset, error) {
	p, ok := config.GetPreset(name)
	if !ok {
		return config.GravityPreset{}, fmt.Errorf("unknown preset: %s (available: %s)", name, strings.Join(config.ListPresets(), ", "))
	}
	return p, nil
}

func runBasic(cmd *cobra.Command, args []string) error {
	// config values apply unless the flag was given
	flags := cmd.Flags()
	if !flags.Changed("distance") {
		distance = cfg.Basic.Distance
	}
	if !flags.Changed("time") {
		elapsed = cfg.Basic.Time
	}
	if !flags.Changed("v0") {
		v0 = cfg.Basic.V0
	}
	if !flags.Changed("v1") {
		v1 = cfg.Basic.V1
	}
	if !flags.Changed("accel-time") {
		accelTime = cfg.Basic.AccelTime
	}
	if !flags.Changed("mass") {
		mass = cfg.Basic.Mass
	}

	vel, err := formula.Velocity(distance, elapsed)
	if err != nil {
		return err
	}
	acc, err := formula.Acceleration(v0, v1, accelTime)
	if err != nil {
		return err
	}

	report.WriteBasic(cmd.OutOrStdout(), report.Basic{
		Distance: distance, Time: elapsed, Velocity: vel,
		V0: v0, V1: v1, AccelTime: accelTime, Accel: acc,
		Mass: mass, Force: formula.Force(mass, acc),
	})
	return nil
}

func runProjectile(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("speed") {
		speed = cfg.Projectile.Speed
	}
	if !flags.Changed("angles") {
		angles = cfg.Projectile.Angles
	}
	if !flags.Changed("gravity") {
		gravity = cfg.Projectile.Gravity
	}
	if preset != "" {
		p, err := lookupPreset(preset)
		if err != nil {
			return err
		}
		gravity = p.Gravity
	}

	trs := make([]formula.Trajectory, 0, len(angles))
	for _, a := range angles {
		tr, err := formula.ProjectileWithGravity(speed, a, gravity)
		if err != nil {
			return err
		}
		trs = append(trs, tr)
	}

	report.WriteProjectiles(cmd.OutOrStdout(), trs)
	fmt.Fprintln(cmd.OutOrStdout(), report.Hint.Render("Try changing --speed or --angles!"))

	if svgPath != "" {
		svg := plot.TrajectorySVG(trs, 100, cfg.Analysis.PlotWidth, cfg.Analysis.PlotHeight)
		if err := plot.WriteFile(svgPath, svg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nplot saved as '%s'\n", svgPath)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := cfg.Analysis.DataFile
	if len(args) > 0 {
		path = args[0]
	}

	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}

	vel, err := ds.Velocity()
	if err != nil {
		return fmt.Errorf("%s: %w", ds.Source, err)
	}
	posStats, err := formula.Describe(ds.Position)
	if err != nil {
		return err
	}
	velStats, err := formula.Describe(vel)
	if err != nil {
		return err
	}

	report.WriteAnalysis(out, report.Analysis{
		Source:    ds.Source,
		Synthetic: ds.Synthetic,
		Samples:   ds.Len(),
		Position:  posStats,
		Velocity:  velStats,
	})

	if !noPlot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot.ASCII(ds.Position, "position (m) vs sample", plotWidth, plot.DefaultHeight))
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot.ASCII(vel, "velocity (m/s) vs sample", plotWidth, plot.DefaultHeight))
	}

	if svgPath != "" {
		svg := plot.MotionSVG(ds.Time, ds.Position, vel, cfg.Analysis.PlotWidth, cfg.Analysis.PlotHeight)
		if err := plot.WriteFile(svgPath, svg); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nplot saved as '%s'\n", svgPath)
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(&storage.Run{
			Meta: storage.RunMetadata{
				Source:    ds.Source,
				Synthetic: ds.Synthetic,
				Position:  posStats,
				Velocity:  velStats,
			},
			Time:     ds.Time,
			Position: ds.Position,
			Velocity: vel,
		})
		if err != nil {
			return err
		}
		slog.Info("run saved", "id", runID, "dir", dataDir)
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tSAMPLES\tV_MEAN")

	for _, run := range runs {
		src := run.Source
		if run.Synthetic {
			src += "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\n",
			run.ID,
			src,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Velocity.Mean,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.WriteAnalysis(out, report.Analysis{
		Source:    run.Meta.Source,
		Synthetic: run.Meta.Synthetic,
		Samples:   run.Meta.Samples,
		Position:  run.Meta.Position,
		Velocity:  run.Meta.Velocity,
	})

	if len(run.Velocity) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot.ASCIIMany([][]float64{run.Position, run.Velocity},
			"position (blue), velocity (red) of run "+strconv.Quote(run.Meta.ID), plot.DefaultWidth, plot.DefaultHeight))
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), run)
}

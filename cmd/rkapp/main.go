package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/arletty-bit/rkapp/internal/config"
	"github.com/arletty-bit/rkapp/internal/driver"
	"github.com/arletty-bit/rkapp/internal/everhart"
	"github.com/arletty-bit/rkapp/internal/experiment"
	"github.com/arletty-bit/rkapp/internal/ivp"
	"github.com/arletty-bit/rkapp/internal/methods"
	"github.com/arletty-bit/rkapp/internal/optim"
	"github.com/arletty-bit/rkapp/internal/storage"
	"github.com/arletty-bit/rkapp/internal/tui"
	"github.com/arletty-bit/rkapp/internal/viz"
)

var (
	dataDir             string
	method              string
	problemName         string
	dt                  float64
	steps               int
	interpolationPoints int
	seed                int64
	everhartOrder       int
	configFile          string
	presetName          string
	frameRate           int
)

// main registers the command tree and executes it. Unlike the
// teacher's dynsim, the root command has no GUI default: with no
// subcommand it just prints usage, since this domain has no
// draggable-body visualization to fall back to (spec.md §1 excludes
// a GUI as an external collaborator).
func main() {
	rootCmd := &cobra.Command{
		Use:   "rkapp",
		Short: "ODE integrator library driver",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rkapp", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one trajectory and save it",
		RunE:  runTrajectory,
	}
	addRunFlags(runCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "grid-search the step count a method needs to hit a tolerance",
		RunE:  benchMethod,
	}
	benchCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "method name")
	benchCmd.Flags().StringVar(&problemName, "problem", "cos", "problem name")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "run every end-to-end scenario and report pass/fail",
		RunE:  runScenarios,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's state components",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a saved run's metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a trajectory with a live terminal trace",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, benchCmd, scenariosCmd, listCmd, plotCmd, exportCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", config.DefaultMethod, "method name")
	cmd.Flags().StringVar(&problemName, "problem", "cos", "problem name")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	cmd.Flags().IntVar(&interpolationPoints, "interpolation-points", 0, "interior interpolation points per step")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "seed (recorded in run metadata; the core is deterministic)")
	cmd.Flags().IntVar(&everhartOrder, "everhart-order", 15, "Everhart order, when --method starts with everhart")
	cmd.Flags().StringVar(&configFile, "config", "", "run document path (yaml); overrides flags not explicitly set")
	cmd.Flags().StringVar(&presetName, "preset", "", "named preset (see internal/config.ListPresets)")
}

// loadRunConfig merges CLI flags, a preset, and a config file into one
// config.Config, in the teacher's precedence order: preset first,
// config file next, explicit flags last.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		preset := config.GetPreset(presetName)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", presetName, config.ListPresets())
		}
		*cfg = *preset
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		*cfg = *fileCfg
	}

	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("problem") {
		cfg.Problem = problemName
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("interpolation-points") {
		cfg.InterpolationPoints = interpolationPoints
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("everhart-order") {
		cfg.Everhart.Order = everhartOrder
	}
	if cfg.Everhart.Order == 0 {
		cfg.Everhart.Order = 15
	}
	if cfg.Everhart.MaxIterations == 0 {
		cfg.Everhart.MaxIterations = 100
	}
	if cfg.Everhart.LocalError == 0 {
		cfg.Everhart.LocalError = 1e-11
	}

	return cfg, nil
}

// resolveMethod builds the ivp.Method this run document names. Everhart
// is special-cased so its configured order/tolerance/iteration-cap
// actually take effect, rather than falling back to methods.Catalog's
// fixed pre-set orders.
func resolveMethod(cfg *config.Config, rhs ivp.RHSFunc) (ivp.Method, string, error) {
	if strings.HasPrefix(cfg.Method, "everhart") {
		ev, err := everhart.New(everhart.Config{
			Order:             cfg.Everhart.Order,
			LocalError:        cfg.Everhart.LocalError,
			MaxIterations:     cfg.Everhart.MaxIterations,
			VerifyConvergence: cfg.Everhart.VerifyConvergence,
		}, rhs)
		if err != nil {
			return nil, "", err
		}
		return ev, fmt.Sprintf("everhart_%d", cfg.Everhart.Order), nil
	}

	handle, err := methods.Lookup(cfg.Method)
	if err != nil {
		return nil, "", err
	}
	return handle.New(rhs), handle.Name, nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	prob, err := resolveProblem(cfg.Problem)
	if err != nil {
		return err
	}

	stepper, methodName, err := resolveMethod(cfg, prob.RHS)
	if err != nil {
		return err
	}

	var states []ivp.State
	if cfg.InterpolationPoints > 0 {
		states, err = driver.SolveWithInterpolation(stepper, prob.T0, prob.Y0, cfg.Dt, cfg.Steps, cfg.InterpolationPoints, nil)
	} else {
		states, err = driver.Solve(stepper, prob.T0, prob.Y0, cfg.Dt, cfg.Steps, nil)
	}
	if err != nil {
		return err
	}

	times := make([]float64, len(states))
	stepH := cfg.Dt / float64(cfg.InterpolationPoints+1)
	if cfg.InterpolationPoints == 0 {
		stepH = cfg.Dt
	}
	t := prob.T0
	for i := range states {
		times[i] = t
		t += stepH
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	order := 0
	if strings.HasPrefix(cfg.Method, "everhart") {
		order = cfg.Everhart.Order
	}

	runID, err := st.Save(storage.RunMetadata{
		Method:              methodName,
		Problem:             cfg.Problem,
		Seed:                cfg.Seed,
		Dt:                  cfg.Dt,
		Steps:               cfg.Steps,
		InterpolationPoints: cfg.InterpolationPoints,
		Order:               order,
	}, states, times)
	if err != nil {
		return err
	}

	fmt.Printf("method: %s\n", methodName)
	fmt.Printf("problem: %s\n", cfg.Problem)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("states: %d\n", len(states))
	if prob.Reference != nil {
		worst := 0.0
		for i, s := range states {
			if d := math.Abs(s[0] - prob.Reference(times[i])); d > worst {
				worst = d
			}
		}
		fmt.Printf("max |error|: %.6e\n", worst)
	}
	return nil
}

func benchMethod(cmd *cobra.Command, args []string) error {
	handle, err := methods.Lookup(method)
	if err != nil {
		return err
	}
	prob, err := resolveProblem(problemName)
	if err != nil {
		return err
	}
	if prob.Reference == nil {
		return fmt.Errorf("rkapp: problem %q has no closed-form reference to grid-search against", problemName)
	}

	run := func(candidateSteps int) (float64, error) {
		m := handle.New(prob.RHS)
		h := 2 * math.Pi / float64(candidateSteps)
		states, err := driver.Solve(m, prob.T0, prob.Y0, h, candidateSteps, nil)
		if err != nil {
			return 0, err
		}
		return math.Abs(states[len(states)-1][0] - prob.Reference(prob.T0+h*float64(candidateSteps))), nil
	}

	search := optim.Geometric(10, 1<<20)
	found, measured, err := search.Search(run, 1e-6)
	if err != nil {
		return err
	}
	fmt.Printf("method %s reaches 1e-6 on %q at %d steps (error %.3e)\n", handle.Name, problemName, found, measured)
	return nil
}

func runScenarios(cmd *cobra.Command, args []string) error {
	results := experiment.RunAll()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTATUS\tERROR\tTOLERANCE")
	failed := 0
	for _, r := range results {
		status := "PASS"
		if r.Err != nil {
			status = "ERROR: " + r.Err.Error()
			failed++
		} else if !r.Pass {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%.3e\t%.3e\n", r.Name, status, r.MaxError, r.Tolerance)
	}
	w.Flush()
	if failed > 0 {
		return fmt.Errorf("rkapp: %d of %d scenarios did not pass", failed, len(results))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tPROBLEM\tTIME\tDT\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4g\t%d\n",
			run.ID, run.Method, run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"), run.Dt, run.Steps)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s  method: %s  problem: %s\n\n", meta.ID, meta.Method, meta.Problem)

	numVars := len(states[0])
	if numVars > 4 {
		numVars = 4
	}
	for i := 0; i < numVars; i++ {
		data := viz.Component(states, i)
		fmt.Println(viz.Sparkline(data, fmt.Sprintf("y%d", i)))
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	prob, err := resolveProblem(cfg.Problem)
	if err != nil {
		return err
	}
	stepper, methodName, err := resolveMethod(cfg, prob.RHS)
	if err != nil {
		return err
	}

	renderer := tui.NewLiveRenderer(fmt.Sprintf("%s / %s", methodName, cfg.Problem), frameRate)
	renderer.Start()
	defer renderer.Stop()

	stepper.Initialize()
	y := prob.Y0.Clone()
	next := make(ivp.State, len(y))
	t := prob.T0
	for i := 0; i < cfg.Steps; i++ {
		if !stepper.Step(t, y, cfg.Dt, next, nil) {
			return fmt.Errorf("rkapp: step %d failed", i)
		}
		y = next.Clone()
		t += cfg.Dt
		renderer.OnStep(y, t)
	}
	return nil
}

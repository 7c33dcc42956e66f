package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/spaceengine/internal/analysis"
	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/export"
	"github.com/san-kum/spaceengine/internal/gui"
	"github.com/san-kum/spaceengine/internal/metrics"
	"github.com/san-kum/spaceengine/internal/physics"
	"github.com/san-kum/spaceengine/internal/sim"
	"github.com/san-kum/spaceengine/internal/viz"
	"github.com/san-kum/spaceengine/internal/vmath"
	"github.com/spf13/cobra"
)

const logFile = "spaceengine.log"

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

func runGUI(cmd *cobra.Command, args []string) error {
	if menu {
		return gui.RunInteractive(cfg, logger)
	}
	return gui.Run(cfg, cfg.Scene, logger)
}

// runLive writes its log to a file so it does not tear the terminal UI.
func runLive(cmd *cobra.Command, args []string) error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	fileLogger := log.NewWithOptions(f, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: true,
		Prefix:          "live",
	})

	if len(args) == 0 {
		return viz.RunInteractive(cfg, fileLogger)
	}

	m, err := viz.NewSceneModel(cfg, cfg.Scene, fileLogger)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !cmd.Flags().Changed("dt") {
		dt = cfg.Physics.Dt
	}

	s, scene, err := sim.FromScene(cfg, cfg.Scene, sim.WithLogger(logger))
	if err != nil {
		return err
	}
	bodies := s.Bodies()
	if len(bodies) < 2 {
		return fmt.Errorf("scene %s needs at least two bodies", scene.Name)
	}
	first, second := bodies[0].Name(), bodies[1].Name()
	sep := addRunMetrics(s, cfg, first, second)

	var lambda float64
	if lyapunov {
		// Sampled before the run advances the bodies.
		lambda = analysis.LyapunovExponent(bodies, s.Solver(), dt, min(steps, 20000), 1e3)
	}

	runCfg := sim.RunConfig{Dt: dt, Steps: steps, SampleEvery: sampleEvery, ValidateState: true}

	fmt.Println(headerStyle.Render(fmt.Sprintf("running %s: %d bodies, %d steps of %gs", scene.Name, len(bodies), steps, dt)))
	fmt.Println()
	start := time.Now()
	result, err := s.Run(ctx, runCfg)
	if err != nil && result == nil {
		return err
	}
	elapsed := time.Since(start)
	if err != nil {
		logger.Warn("run interrupted", "err", err, "steps", result.StepsTaken)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "simulated\t%.2f days\n", s.Time()/86400)
	fmt.Fprintf(w, "wall time\t%v\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "mean energy\t%.4e J\n", result.Metrics["energy"])
	fmt.Fprintf(w, "energy drift\t%.3e\n", result.Metrics["energy_drift"])
	fmt.Fprintf(w, "momentum drift\t%.3e\n", result.Metrics["momentum_drift"])
	fmt.Fprintf(w, "stability\t%.3f\n", result.Metrics["stability"])
	fmt.Fprintf(w, "%s-%s min\t%.4f AU\n", first, second, sep.Value()/cfg.Physics.AU)
	fmt.Fprintf(w, "%s-%s max\t%.4f AU\n", first, second, sep.Max()/cfg.Physics.AU)

	a, b := result.Track(first), result.Track(second)
	dist := analysis.Distances(a, b)
	fmt.Fprintf(w, "eccentricity\t%.4f\n", analysis.Eccentricity(dist))

	rel := make([]float64, len(dist))
	for k := range rel {
		rel[k] = b[k].Sub(a[k]).X
	}
	if period, err := analysis.DominantPeriod(rel, dt*float64(max(sampleEvery, 1))); err == nil {
		fmt.Fprintf(w, "%s period\t%.2f days\n", second, period/86400)
	} else {
		fmt.Fprintf(w, "%s period\tn/a (%v)\n", second, err)
	}
	if lyapunov {
		fmt.Fprintf(w, "lyapunov\t%.3e 1/s\n", lambda)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "error\t%v\n", e)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(dist) > 1 {
		au := make([]float64, len(dist))
		for i, d := range dist {
			au[i] = d / cfg.Physics.AU
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(au,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("%s-%s distance (AU)", first, second))))
	}

	if svgPath != "" {
		if err := writeTracks(svgPath, s, result); err != nil {
			return err
		}
	}
	if snapPath != "" {
		if err := writeSnapshot(snapPath, s, scene); err != nil {
			return err
		}
	}
	return nil
}

func writeTracks(path string, s *sim.Simulator, result *sim.Result) error {
	tracks := make([]export.Track, 0, len(result.Names))
	for _, b := range s.Bodies() {
		tracks = append(tracks, export.Track{Name: b.Name(), Color: b.Color(), Points: result.Track(b.Name())})
	}
	if err := os.WriteFile(path, []byte(export.TracksToSVG(tracks, 800, 800)), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	logger.Info("saved orbits", "path", path, "bodies", len(tracks))
	return nil
}

func writeSnapshot(path string, s *sim.Simulator, scene config.Scene) error {
	scale := cfg.Physics.Scale
	cam, err := camera.ForScene(cfg, scene, s.LargestRenderRadius(scale))
	if err != nil {
		return err
	}
	c := viz.Snapshot(s.Bodies(), cam, scale, s.RenderExtent(scale), 80, 24)
	if err := os.WriteFile(path, []byte(export.CanvasToSVG(c, 4)), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	logger.Info("saved snapshot", "path", path)
	return nil
}

// addRunMetrics registers the metrics reported by run and returns the
// separation tracker for the first two bodies.
func addRunMetrics(s *sim.Simulator, c *config.Constants, first, second string) *metrics.Separation {
	g := c.Physics.G
	s.AddMetric(metrics.NewEnergy(g))
	s.AddMetric(metrics.NewEnergyDrift(g))
	s.AddMetric(metrics.NewMomentumDrift())
	s.AddMetric(metrics.NewStability(100 * c.Physics.AU))
	sep := metrics.NewSeparation(first, second)
	s.AddMetric(sep)
	return sep
}

// runBench times the solver on the scene and on synthetic rings of
// increasing size, sequentially and with every CPU.
func runBench(cmd *cobra.Command, args []string) error {
	scene, err := config.GetScene(cfg.Scene)
	if err != nil {
		return err
	}

	type workload struct {
		name   string
		bodies func() ([]*physics.Body, error)
	}
	loads := []workload{{scene.Name, func() ([]*physics.Body, error) { return physics.BuildScene(scene, cfg.Physics.AU) }}}
	for _, n := range []int{16, 64, 256, 1024} {
		loads = append(loads, workload{fmt.Sprintf("ring-%d", n), func() ([]*physics.Body, error) { return ring(n, cfg.Physics.AU) }})
	}

	const benchSteps = 50
	fmt.Println(headerStyle.Render(fmt.Sprintf("benchmarking %d steps per workload", benchSteps)))
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKLOAD\tBODIES\tWORKERS\tTIME\tSTEPS/SEC")

	for _, load := range loads {
		for _, nw := range []int{1, runtime.NumCPU()} {
			bodies, err := load.bodies()
			if err != nil {
				return err
			}
			solver := physics.NewGravitySolver(cfg.Physics.G, physics.WithWorkers(nw), physics.WithParallelThreshold(2))
			s := sim.New(bodies, solver, sim.WithLogger(logger))

			start := time.Now()
			for i := 0; i < benchSteps; i++ {
				_ = s.Step(cfg.Physics.Dt)
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\n",
				load.name, len(bodies), nw, elapsed.Round(time.Microsecond), benchSteps/elapsed.Seconds())
		}
	}
	return w.Flush()
}

// ring places n equal light bodies on a circle of radius au around a
// solar-mass centre.
func ring(n int, au float64) ([]*physics.Body, error) {
	sun, err := physics.NewBody(physics.BodyParams{Name: "centre", Mass: 1.9885e30, Radius: 6.96e8})
	if err != nil {
		return nil, err
	}
	bodies := []*physics.Body{sun}
	v := math.Sqrt(cfg.Physics.G * 1.9885e30 / au)
	for i := 0; i < n-1; i++ {
		th := 2 * math.Pi * float64(i) / float64(n-1)
		b, err := physics.NewBody(physics.BodyParams{
			Name:     fmt.Sprintf("p%d", i),
			Mass:     1e22,
			Radius:   1e6,
			Position: vmath.New(au*math.Cos(th), 0, au*math.Sin(th)),
			Velocity: vmath.New(-v*math.Sin(th), 0, v*math.Cos(th)),
		})
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tBODIES\tDESCRIPTION")
	for _, name := range config.ListScenes() {
		s := config.Scenes[name]
		marker := ""
		if name == cfg.Scene {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%d\t%s\n", name, marker, len(s.Bodies), s.Description)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	if writePath != "" {
		if err := config.Save(writePath, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		logger.Info("saved config", "path", writePath)
	}
	return nil
}

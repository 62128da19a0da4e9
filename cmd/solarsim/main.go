package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/solarsim/internal/app"
	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/export"
	"github.com/san-kum/solarsim/internal/scene"
	"github.com/spf13/cobra"
)

var (
	preset  string
	fps     int
	flatten float64
	width   int
	height  int
	fit     bool
	debug   bool

	// record
	frames int
	every  int
	output string
	// snapshot
	format        string
	snapshotTicks int
	scale         int
	// trace
	traceTicks int
	traceSVG   string
)

// main runs the terminal animation when no subcommand is given. It exits with
// status 1 if a command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command and flag. Registering resets each flag
// variable to its default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "solarsim",
		Short:        "flicker-free rotating solar system",
		SilenceUsage: true,
		RunE:         runTerminal,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&preset, "preset", config.DefaultPreset, "body table to animate")
	pf.IntVar(&fps, "fps", 0, "frame rate (default: preset delay)")
	pf.Float64Var(&flatten, "flatten", 0, fmt.Sprintf("vertical squash of orbits (default %v)", scene.DefaultFlatten))
	pf.IntVar(&width, "width", 0, "canvas width in pixels (default: preset)")
	pf.IntVar(&height, "height", 0, "canvas height in pixels (default: preset)")
	pf.BoolVar(&fit, "fit", false, "scale the system to the canvas")
	pf.BoolVar(&debug, "debug", false, "write a debug log to "+app.DebugLogPath)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "animate in the terminal with braille characters",
		Args:  cobra.NoArgs,
		RunE:  runTerminal,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate in a desktop window",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App) error {
			return a.Window(ctx)
		}),
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate in a raylib window (build with -tags raylib)",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App) error {
			return a.GUI(ctx)
		}),
	}

	fbCmd := &cobra.Command{
		Use:   "fb",
		Short: "animate on the Linux framebuffer",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App) error {
			return a.Framebuffer(ctx)
		}),
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render frames headless into a GIF",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App) error {
			path := outputPath("solarsim.gif")
			if err := a.Record(ctx, path, frames, every); err != nil {
				return err
			}
			fmt.Printf("wrote %d frames to %s\n", frames, path)
			return nil
		}),
	}
	recordCmd.Flags().IntVar(&frames, "frames", 120, "frames to keep")
	recordCmd.Flags().IntVar(&every, "every", 3, "keep one frame out of this many ticks")
	recordCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default solarsim.gif)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a single frame as png or svg",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app.App) error {
			path := outputPath("solarsim." + format)
			if err := a.Snapshot(path, format, snapshotTicks, scale); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		}),
	}
	snapshotCmd.Flags().StringVar(&format, "format", "png", "png or svg")
	snapshotCmd.Flags().IntVar(&snapshotTicks, "ticks", 1, "frames to render before capturing")
	snapshotCmd.Flags().IntVar(&scale, "scale", 1, "integer upscaling factor")
	snapshotCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default solarsim.<format>)")

	traceCmd := &cobra.Command{
		Use:   "trace [body]",
		Short: "plot a body's pixel coordinates over ticks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) error {
				return runTrace(os.Stdout, a, args[0])
			})(cmd, args)
		},
	}
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 360, "ticks to follow")
	traceCmd.Flags().StringVar(&traceSVG, "svg", "", "also write the path as svg")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or print one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printPreset(os.Stdout, args[0])
			}
			return listPresets(os.Stdout)
		},
	}

	rootCmd.AddCommand(runCmd, windowCmd, guiCmd, fbCmd, recordCmd, snapshotCmd, traceCmd, presetsCmd)
	return rootCmd
}

func runTerminal(cmd *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app.App) error {
		return a.Terminal(ctx)
	})(cmd, args)
}

// withApp loads the preset with flag overrides, opens the debug log and
// cancels the context on SIGINT or SIGTERM.
func withApp(fn func(ctx context.Context, a *app.App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := app.Load(app.Options{
			Preset:  preset,
			FPS:     fps,
			Flatten: flatten,
			Width:   width,
			Height:  height,
		})
		if err != nil {
			return err
		}

		var logger app.Logger = app.NoopLogger{}
		if debug {
			l, closer, err := app.OpenDebugLog(app.DebugLogPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "debug log open error:", err)
			} else {
				defer closer.Close()
				logger = l
				logger.Infof("main", "debug logging enabled, command %s", cmd.Name())
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = fn(ctx, app.New(cfg, fit, logger))
		if errors.Is(err, context.Canceled) {
			logger.Infof("main", "interrupted")
			return nil
		}
		if err != nil {
			logger.Errorf("main", "%s: %v", cmd.Name(), err)
		}
		return err
	}
}

func outputPath(def string) string {
	if output != "" {
		return output
	}
	return def
}

func runTrace(w io.Writer, a *app.App, body string) error {
	idx, err := a.BodyIndex(body)
	if err != nil {
		return err
	}
	points, err := a.Trace(body, traceTicks)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = float64(p.X), float64(p.Y)
	}
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{xs, body + " x (px)"},
		{ys, body + " y (px)"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Fprintln(w, graph)
		fmt.Fprintln(w)
	}

	if traceSVG != "" {
		cfg := a.Config
		svg := export.TraceToSVG(points, cfg.Width, cfg.Height, cfg.Background.RGBA(), "#"+hexRGB(cfg, idx))
		if err := export.SaveSVG(traceSVG, svg); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", traceSVG)
	}
	return nil
}

// hexRGB is the color of body idx for the trace stroke.
func hexRGB(cfg *config.Config, idx int) string {
	c := cfg.Bodies[idx].Color.RGBA()
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func listPresets(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBODIES\tSIZE\tDELAY\tFLATTEN\tTITLE")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%dx%d\t%dms\t%.2f\t%s\n",
			name, len(cfg.Bodies), cfg.Width, cfg.Height, cfg.DelayMS, cfg.Flatten, cfg.Title)
	}
	return tw.Flush()
}

func printPreset(w io.Writer, name string) error {
	cfg, err := config.GetPreset(name)
	if err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

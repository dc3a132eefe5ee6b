package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/raytracer/dbg"
	"github.com/osuushi/raytracer/projectile"
	"github.com/osuushi/raytracer/tuples"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of points and vectors: fire a projectile through gravity and wind and
// report where it lands. Optionally plot the flight as a PNG (and show it
// inline in terminals that support it) or as an SVG.
//
// The defaults are the classic setup: launched from one unit above the origin,
// up and to the right at 11.25 units per tick, with gravity of 0.1 and a
// slight headwind.

type options struct {
	Position *tuples.Tuple
	Velocity *tuples.Tuple
	Gravity  *tuples.Tuple
	Wind     *tuples.Tuple
	Speed    float64
	MaxTicks int

	Name    string
	Verbose bool
	Color   bool

	PNG   string
	SVG   string
	Scale float64
	Show  bool
}

func newApp() (*kingpin.Application, *options) {
	opts := &options{}
	app := kingpin.New("projectile", "Fire a projectile through gravity and wind, and report where it lands.")

	opts.Position = Tuple(app.Flag("position", "Launch point.").Default("point(0, 1, 0)"))
	opts.Velocity = Tuple(app.Flag("velocity", "Launch direction. Only the direction is used; see --speed.").Default("vector(1, 1.8, 0)"))
	opts.Gravity = Tuple(app.Flag("gravity", "Acceleration due to gravity, per tick.").Default("vector(0, -0.1, 0)"))
	opts.Wind = Tuple(app.Flag("wind", "Acceleration due to wind, per tick.").Default("vector(-0.01, 0, 0)"))
	app.Flag("speed", "Launch speed, in units per tick.").Default("11.25").Float64Var(&opts.Speed)
	app.Flag("max-ticks", "Give up after this many ticks.").Default("10000").IntVar(&opts.MaxTicks)

	app.Flag("name", "Label for this run. A random one is picked if omitted.").StringVar(&opts.Name)
	app.Flag("verbose", "Print every tick.").Short('v').BoolVar(&opts.Verbose)
	app.Flag("color", "Colorize output.").Default("true").BoolVar(&opts.Color)

	app.Flag("png", "Plot the trajectory to this PNG file.").StringVar(&opts.PNG)
	app.Flag("svg", "Plot the trajectory to this SVG file.").StringVar(&opts.SVG)
	app.Flag("scale", "Pixels per unit in plots.").Default("1").Float64Var(&opts.Scale)
	app.Flag("show", "Show the PNG plot in the terminal (iTerm only).").BoolVar(&opts.Show)

	return app, opts
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("projectile: ")

	app, opts := newApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(opts *options, out io.Writer) error {
	if !opts.Position.IsPoint() {
		return errors.Errorf("--position must be a point, got %s", opts.Position)
	}
	for _, flag := range []struct {
		name  string
		value *tuples.Tuple
	}{
		{"velocity", opts.Velocity},
		{"gravity", opts.Gravity},
		{"wind", opts.Wind},
	} {
		if !flag.value.IsVector() {
			return errors.Errorf("--%s must be a vector, got %s", flag.name, flag.value)
		}
	}
	if opts.Scale <= 0 {
		return errors.Errorf("--scale must be positive, got %g", opts.Scale)
	}

	launch, err := projectile.Launch(*opts.Position, *opts.Velocity, opts.Speed)
	if err != nil {
		return errors.Wrap(err, "invalid --velocity")
	}
	env := projectile.Environment{Gravity: *opts.Gravity, Wind: *opts.Wind}
	trajectory := projectile.Simulate(env, launch, opts.MaxTicks)

	name := opts.Name
	if name == "" {
		name = dbg.Name(&trajectory)
	}
	report(aurora.NewAurora(opts.Color), out, name, trajectory, opts.Verbose)

	if opts.SVG != "" {
		if err := writeSVG(opts.SVG, trajectory, opts.Scale); err != nil {
			return err
		}
	}

	pngPath := opts.PNG
	if pngPath == "" && opts.Show {
		pngPath = filepath.Join(os.TempDir(), "projectile.png")
	}
	if pngPath != "" {
		if err := trajectory.SavePNG(pngPath, opts.Scale); err != nil {
			return errors.Wrapf(err, "could not write %s", pngPath)
		}
	}
	if opts.Show {
		imgcat.CatFile(pngPath, out)
	}
	return nil
}

func report(au aurora.Aurora, out io.Writer, name string, trajectory projectile.Trajectory, verbose bool) {
	if verbose {
		for i, p := range trajectory {
			state := au.Green(p.String())
			if p.Position.Y <= 0 {
				state = au.Red(p.String())
			}
			fmt.Fprintf(out, "%s  %s\n", au.Faint(fmt.Sprintf("%5d", i)), state)
		}
	}

	if trajectory.Landed() {
		fmt.Fprintf(out, "%s: landed after %d ticks, %s units from launch\n",
			au.Cyan(name), trajectory.Ticks(), au.Bold(fmt.Sprintf("%.4g", trajectory.Distance())))
	} else {
		fmt.Fprintf(out, "%s: %s after %d ticks, %.4g units from launch\n",
			au.Cyan(name), au.Yellow("still flying"), trajectory.Ticks(), trajectory.Distance())
	}
	fmt.Fprintf(out, "  apex at %s\n", trajectory.Apex().Position)
}

func writeSVG(path string, trajectory projectile.Trajectory, scale float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "could not write %s", path)
		}
	}()
	if err := trajectory.WriteSVG(f, scale); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return nil
}

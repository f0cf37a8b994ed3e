package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/planar"
	"github.com/tdewolff/planar/fractures"
	"github.com/tdewolff/planar/renderers"
	"github.com/tdewolff/planar/renderers/eps"
	"github.com/tdewolff/planar/renderers/rasterizer"
	"github.com/tdewolff/planar/renderers/svg"
)

type Flags struct {
	Input            string
	Output           string
	Preview          string
	Config           string
	EPSG             int
	Tolerance        float64
	SnapTolerance    float64
	BoxX, BoxY       float64
	MaxPasses        int
	Workers          int
	RejectDegenerate bool
	Verbose          bool
}

func main() {
	flags := Flags{
		Tolerance:     planar.DefaultOptions.Tolerance,
		SnapTolerance: planar.DefaultOptions.SnapTolerance,
		MaxPasses:     planar.DefaultOptions.MaxPasses,
		Workers:       planar.DefaultOptions.Workers,
	}

	cmd := argp.New("Remove crossings from a network of fracture traces")
	cmd.AddOpt(&flags.Output, "o", "output", "Output file (.csv or .geojson), GeoJSON to stdout if empty")
	cmd.AddOpt(&flags.Preview, "p", "preview", "Preview image (.svg, .svgz, .eps, .png, .jpg, .gif, .tif)")
	cmd.AddOpt(&flags.Config, "c", "config", "YAML options file")
	cmd.AddOpt(&flags.EPSG, "", "epsg", "Project longitude/latitude input to this EPSG code, e.g. 32633 for UTM 33N")
	cmd.AddOpt(&flags.Tolerance, "t", "tolerance", "Relative tolerance for merging points")
	cmd.AddOpt(&flags.SnapTolerance, "", "snap-tolerance", "Grid spacing relative to the domain box")
	cmd.AddOpt(&flags.BoxX, "", "box-x", "Domain extent along x, enables snapping")
	cmd.AddOpt(&flags.BoxY, "", "box-y", "Domain extent along y, enables snapping")
	cmd.AddOpt(&flags.MaxPasses, "", "max-passes", "Maximum number of passes")
	cmd.AddOpt(&flags.Workers, "j", "workers", "Number of workers for intersection tests")
	cmd.AddOpt(&flags.RejectDegenerate, "", "reject-degenerate", "Fail on zero-length segments instead of dropping them")
	cmd.AddOpt(&flags.Verbose, "v", "verbose", "Log every pass")
	cmd.AddArg(&flags.Input, "input", "Input file (.csv, .geojson or .osm)")
	cmd.Parse()

	level := slog.LevelInfo
	if flags.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), flags, logger); err != nil {
		logger.Error("planarize failed", "error", err)
		os.Exit(1)
	}
}

// options builds the engine options: defaults, then the config file, then flags that differ from their default.
func options(flags Flags, logger *slog.Logger) (planar.Options, error) {
	opts := planar.DefaultOptions
	opts.Logger = logger
	if flags.Config != "" {
		cfg, err := loadConfig(flags.Config)
		if err != nil {
			return opts, err
		} else if err := cfg.Apply(&opts); err != nil {
			return opts, fmt.Errorf("%s: %w", flags.Config, err)
		}
	}

	if flags.Tolerance != planar.DefaultOptions.Tolerance {
		opts.Tolerance = flags.Tolerance
	}
	if flags.SnapTolerance != planar.DefaultOptions.SnapTolerance {
		opts.SnapTolerance = flags.SnapTolerance
	}
	if flags.BoxX != 0.0 || flags.BoxY != 0.0 {
		opts.Box = &planar.Point{X: flags.BoxX, Y: flags.BoxY}
	}
	if flags.MaxPasses != planar.DefaultOptions.MaxPasses {
		opts.MaxPasses = flags.MaxPasses
	}
	if flags.Workers != planar.DefaultOptions.Workers {
		opts.Workers = flags.Workers
	}
	if flags.RejectDegenerate {
		opts.Degenerate = planar.RejectDegenerate
	}
	return opts, nil
}

func run(ctx context.Context, flags Flags, logger *slog.Logger) error {
	if flags.Input == "" {
		return fmt.Errorf("must pass an input file")
	}
	opts, err := options(flags, logger)
	if err != nil {
		return err
	}

	net, err := readNetwork(flags.Input)
	if err != nil {
		return err
	}
	logger.Info("read network", "file", flags.Input, "points", len(net.Points), "segments", len(net.Segments))
	if flags.EPSG != 0 {
		if err := fractures.Project(net, fractures.LonLat, flags.EPSG); err != nil {
			return err
		}
		logger.Debug("projected network", "epsg", flags.EPSG, "bounds", net.Bounds())
	}

	res, err := planar.RemoveCrossings(ctx, net, &opts)
	if err != nil {
		return err
	}
	logger.Info("wrote network", "result", res)

	newFrom := len(net.Points)
	if err := writeNetwork(flags.Output, res.Network, newFrom); err != nil {
		return err
	}
	if flags.Preview != "" {
		svgOpts := svg.DefaultOptions
		svgOpts.NewFrom = newFrom
		rasterOpts := rasterizer.DefaultOptions
		rasterOpts.NewFrom = newFrom
		epsOpts := eps.DefaultOptions
		epsOpts.NewFrom = newFrom
		if err := renderers.Write(flags.Preview, res.Network, &svgOpts, &rasterOpts, &epsOpts); err != nil {
			return err
		}
	}
	return nil
}

func readNetwork(filename string) (*planar.Network, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv", ".txt":
		return fractures.ReadCSV(f)
	case ".geojson", ".json":
		return fractures.ReadGeoJSON(f)
	case ".osm", ".xml":
		return fractures.ReadOSM(f)
	default:
		return nil, fmt.Errorf("unknown file extension: %v", ext)
	}
}

func writeNetwork(filename string, net *planar.Network, newFrom int) error {
	var w io.Writer = os.Stdout
	ext := ".geojson"
	if filename != "" && filename != "-" {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
		ext = strings.ToLower(filepath.Ext(filename))
	}

	switch ext {
	case ".csv", ".txt":
		return fractures.WriteCSV(w, net)
	case ".geojson", ".json":
		return fractures.WriteGeoJSON(w, net, newFrom)
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
}

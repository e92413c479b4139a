package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"geoplot/internal/geom"
	"geoplot/internal/plot"
	"geoplot/internal/raster"
	"geoplot/internal/tui"
)

func main() {
	interactive := flag.Bool("i", false, "open the interactive terminal viewer")
	out := flag.String("o", "geoplot.png", "output image path (non-interactive mode)")
	width := flag.Int("w", 1024, "output image width in pixels")
	height := flag.Int("h", 768, "output image height in pixels")
	verbose := flag.Bool("v", false, "log plotting activity to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	var opts []plot.Option
	if *verbose {
		opts = append(opts, plot.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	if *interactive {
		backend := tui.NewBackend()
		p := plot.New(backend, opts...)
		if err := addLayers(p, flag.Args()); err != nil {
			log.Fatal(err)
		}
		if _, err := tea.NewProgram(tui.New(p, backend), tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	p := plot.New(raster.New(*width, *height), opts...)
	if err := addLayers(p, flag.Args()); err != nil {
		log.Fatal(err)
	}
	if err := p.Save(*out); err != nil {
		log.Fatal(err)
	}
}

// addLayers plots each argument as one layer. Arguments that start with
// a geometry keyword are parsed as WKT; everything else is treated as a
// GeoJSON file path and keeps its base name as the layer name.
func addLayers(p *plot.Plotter, args []string) error {
	for _, arg := range args {
		if isWKT(arg) {
			g, err := geom.ParseWKT(arg)
			if err != nil {
				return fmt.Errorf("parse %q: %w", arg, err)
			}
			if _, err := p.Plot(g, ""); err != nil {
				return err
			}
			continue
		}
		gs, err := geom.LoadGeoJSON(arg)
		if err != nil {
			return fmt.Errorf("load %s: %w", arg, err)
		}
		name := strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
		if _, err := p.PlotAll(gs, name); err != nil {
			return err
		}
	}
	return nil
}

var wktKeywords = []string{
	"POINT", "MULTIPOINT", "LINESTRING", "MULTILINESTRING", "POLYGON", "MULTIPOLYGON",
}

func isWKT(s string) bool {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, kw := range wktKeywords {
		if strings.HasPrefix(up, kw) {
			return true
		}
	}
	return false
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: geoplot [flags] <file.geojson | WKT string> ...

Plots each argument as a layer. By default the result is rasterized to
a PNG; with -i an interactive terminal viewer opens instead.

`)
	flag.PrintDefaults()
}

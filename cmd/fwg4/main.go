// Command fwg4 generates a polygonal fantasy map and renders it to
// SVG: a jittered mesh, blob terrain, land/water classification,
// feature flood fill and walked coastlines.
//
// Usage:
//
//	fwg4 [-config map.yaml] [-out map.svg] [-seed N] [-continental] [-simplify T]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ncuskey/FWG4/config"
	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/mapgen"
	"github.com/ncuskey/FWG4/mesh"
	"github.com/ncuskey/FWG4/render"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file (optional)")
	out := flag.String("out", "map.svg", "output SVG file")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	continental := flag.Bool("continental", false, "force the continental height regime")
	simplifyTol := flag.Float64("simplify", -1, "outline simplification tolerance in map units (negative = keep config)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fatal("load config", err)
		}
	}
	if *continental {
		cfg.Terrain.Continental = true
	}
	if *simplifyTol >= 0 {
		cfg.Coastline.Simplify = *simplifyTol
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m, err := mesh.BuildJitteredGrid(cfg.Map.Width, cfg.Map.Height, cfg.Map.Cols, cfg.Map.Rows, cfg.Map.Jitter, cfg.Seed)
	if err != nil {
		fatal("build mesh", err)
	}
	slog.Info("mesh built",
		"width", cfg.Map.Width,
		"height", cfg.Map.Height,
		"cells", m.Len(),
		"seed", cfg.Seed,
	)

	res, err := mapgen.Generate(m, cfg.Mapgen())
	if err != nil {
		fatal("generate", err)
	}

	if res.Waterline.Degenerate {
		slog.Warn("height field degenerate, map is all water")
	}
	slog.Info("terrain",
		"touched", res.Heights.Touched,
		"max_height", fmt.Sprintf("%.3f", res.Heights.Max),
		"sea_level", fmt.Sprintf("%.3f", res.Waterline.EffectiveSeaLevel),
		"land", res.Waterline.LandCells,
		"water", res.Waterline.WaterCells,
		"carved", res.Carved,
	)

	var oceans, lakes, islands int
	for _, f := range res.Features {
		switch f.Kind {
		case features.Ocean:
			oceans++
		case features.Lake:
			lakes++
		case features.Island:
			islands++
		}
	}
	slog.Info("features",
		"oceans", oceans,
		"lakes", lakes,
		"islands", islands,
		"edges", res.EdgeCount,
		"outlines", len(res.Outlines),
	)
	for _, o := range res.Outlines {
		for _, w := range o.Warnings {
			slog.Warn("outline", "feature", o.FeatureID, "code", w.Code, "detail", w.Detail)
		}
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, m, res.Features, res.Outlines, render.DefaultStyle()); err != nil {
		fatal("render", err)
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0644); err != nil {
		fatal("write svg", err)
	}
	slog.Info("wrote map", "path", *out, "bytes", buf.Len())
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

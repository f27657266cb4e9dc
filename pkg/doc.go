// Package pkg provides the libraries behind funnelchart.
//
// # Overview
//
// A funnel chart is a stack of horizontal sections whose widths narrow from
// the first stage to the last, optionally with a label column on the left and
// a percentage-change band between consecutive stages. The pkg directory is
// organised into:
//
//  1. [render] - Configuration, layout and drawing of funnel charts
//  2. [pipeline] - Orchestration (resolve → render → cache) for CLI and API
//  3. [cache] - Artifact caches (file, Redis, null)
//  4. [errors] - Structured error codes
//  5. [observability] - Hooks for metrics and tracing
//
// # Architecture
//
//	TOML/JSON settings
//	         ↓
//	    [render/funnel/config] (overlay settings onto defaults)
//	         ↓
//	    [render/funnel/layout] (derive dimensions and row geometry)
//	         ↓
//	    [render/funnel] (issue drawing calls against a surface)
//	         ↓
//	    [render/funnel/sink] SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	cfg, err := config.Resolve(config.Settings{
//	    Values: []float64{1200, 640, 210},
//	    Labels: []string{"Visits", "Carts", "Orders"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg, err := sink.RenderSVG(cfg, sink.WithSize(800, 400))
//
// The CLI lives in internal/cli and the HTTP API in internal/server; both go
// through [pipeline.Runner] so that they share defaults and cache keys.
package pkg

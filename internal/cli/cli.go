// Package cli implements the funnelchart command-line interface.
//
// # Commands
//
//   - render: Draw a chart file to SVG, PNG, PDF or JSON
//   - layout: Print the computed geometry of a chart as a table
//   - serve: Run the HTTP rendering API
//   - cache: Inspect or clear the local artifact cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels on the command's context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/funnelchart/pkg/cache"
	"github.com/matzehuels/funnelchart/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "funnelchart"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// newRunner creates a pipeline runner backed by the local file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache opens the file cache. Without a usable home directory caching is
// silently disabled.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

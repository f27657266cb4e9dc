package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/funnelchart/pkg/errors"
	"github.com/matzehuels/funnelchart/pkg/pipeline"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
)

// stdoutPath selects standard output as the render destination.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file, base path for several formats, or "-"
	formats    []string // svg, png, pdf, json
	width      float64  // canvas width in pixels
	height     float64  // canvas height in pixels
	scale      float64  // PNG scale factor
	background string   // canvas background colour
	embedFont  bool     // embed the Go font into SVG output
	noCache    bool     // skip the local artifact cache
	refresh    bool     // re-render even when cached
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [chart.toml|chart.json|dir]",
		Short: "Render a funnel chart file",
		Long: `Render a funnel chart described by a TOML or JSON settings file.

When the argument is a directory, an interactive list of the chart files it
contains is shown. Results are cached locally; use --no-cache to bypass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = pipeline.ParseFormats(formatsStr)
			if len(opts.formats) == 0 {
				opts.formats = []string{pipeline.FormatSVG}
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (several formats) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.background, "background", "", "background colour (default: transparent)")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the Go font into SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")

	return cmd
}

// runRender resolves input to a chart file, renders it and writes one file
// per format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	path, err := resolveChartPath(input)
	if err != nil {
		return err
	}
	if path == "" {
		printInfo("No chart selected")
		return nil
	}

	if opts.output == stdoutPath && len(opts.formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(opts.formats))
	}

	settings, err := config.Load(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Settings:   settings,
		Width:      opts.width,
		Height:     opts.height,
		Formats:    opts.formats,
		Scale:      opts.scale,
		Background: opts.background,
		EmbedFont:  opts.embedFont,
		Refresh:    opts.refresh,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	prog.done("Rendered " + filepath.Base(path))

	if opts.output == stdoutPath {
		_, err := os.Stdout.Write(result.Artifacts[opts.formats[0]])
		return err
	}

	var written []string
	for _, format := range opts.formats {
		out := outputPath(opts.output, path, format, len(opts.formats) > 1)
		if err := writeArtifact(out, result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", format, "path", out, "bytes", len(result.Artifacts[format]))
		written = append(written, out)
	}

	printSuccess("Rendered %s", filepath.Base(path))
	for _, f := range written {
		printFile(f)
	}
	fmt.Println(renderStatsLine(result))
	printNextStep("Inspect geometry", fmt.Sprintf("%s layout %s", appName, path))
	return nil
}

// resolveChartPath returns input unchanged when it is a file and asks the user
// to pick a chart when it is a directory.
func resolveChartPath(input string) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", input)
		}
		return "", err
	}
	if !info.IsDir() {
		return input, nil
	}
	return pickChart(input)
}

// outputPath derives the destination for format. An explicit output is used
// as is for a single format; with several formats its extension is replaced.
// Without an output the chart path's extension is replaced. The chart file
// itself is never the destination.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := basePath(output, input)
	if p := base + "." + format; p != input {
		return p
	}
	return base + ".render." + format
}

// basePath strips a known chart or artifact extension from output, falling
// back to input when output is empty.
func basePath(output, input string) string {
	p := output
	if p == "" {
		p = input
	}
	ext := strings.ToLower(filepath.Ext(p))
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] || ext == ".toml" {
		return strings.TrimSuffix(p, filepath.Ext(p))
	}
	return p
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

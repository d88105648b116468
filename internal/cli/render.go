package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/dataset"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple outputs)
	dataset    string   // dataset name within the input file
	kind       string   // chart type; empty uses the dataset's kind
	formats    []string // output formats: "svg", "json", "pdf", "png"
	size       float64  // pie canvas edge
	height     float64  // bar/line canvas height
	width      float64  // bar/line chart width
	padding    float64  // applied only when the flag is set
	colors     []string // palette override
	donut      bool     // cut a hole into pie charts
	labels     bool     // draw value and axis labels
	title      string   // title band text; defaults to the dataset title
	background string   // SVG background fill
	strict     bool     // fail on no-data results
	noCache    bool     // bypass the cache entirely
	refresh    bool     // recompute and overwrite cached entries
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a dataset to chart files",
		Long: `Render computes chart geometry for one dataset of a JSON, TOML or YAML
file and writes it in the requested formats.

Files with several datasets need --dataset, unless the terminal is
interactive, in which case a picker is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := errors.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output == "-" && len(opts.formats) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(opts.formats))
			}
			po, ds, err := c.chartOptions(cmd, args[0], &opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], ds, po, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	addChartFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title (default: dataset title)")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the dataset has nothing to draw")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")
	registerChartCompletions(cmd)

	return cmd
}

// addChartFlags registers the flags shared by render and inspect.
func addChartFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.dataset, "dataset", "d", "", "dataset name (required when the file has several)")
	cmd.Flags().StringVarP(&opts.kind, "type", "t", "", "chart type: pie, bar, line (default: dataset kind)")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "pie canvas size")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "bar/line canvas height")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "bar/line chart width")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "canvas padding")
	cmd.Flags().StringSliceVar(&opts.colors, "colors", nil, "palette colors (comma-separated)")
	cmd.Flags().BoolVar(&opts.donut, "donut", false, "render pie charts as donuts")
	cmd.Flags().BoolVar(&opts.labels, "labels", true, "draw value and axis labels")
}

// chartOptions loads the dataset named by opts and merges flags with the
// config file into pipeline options. Flags win over config values.
func (c *CLI) chartOptions(cmd *cobra.Command, input string, opts *renderOpts) (pipeline.Options, dataset.Dataset, error) {
	f, err := dataset.Load(input)
	if err != nil {
		return pipeline.Options{}, dataset.Dataset{}, err
	}
	ds, err := selectDataset(f, opts.dataset, isInteractive())
	if err != nil {
		return pipeline.Options{}, dataset.Dataset{}, err
	}

	kind, err := resolveKind(opts.kind, ds)
	if err != nil {
		return pipeline.Options{}, dataset.Dataset{}, err
	}

	po := pipeline.Options{
		Kind:       kind,
		Size:       opts.size,
		Height:     opts.height,
		Width:      opts.width,
		Colors:     opts.colors,
		Donut:      opts.donut,
		Formats:    opts.formats,
		Title:      opts.title,
		Background: opts.background,
		Strict:     opts.strict,
		Refresh:    opts.refresh,
	}
	if cmd.Flags().Changed("padding") {
		p := opts.padding
		po.Padding = &p
	}
	c.cfg.ApplyChartDefaults(&po)
	if cmd.Flags().Changed("labels") {
		po.Labels = opts.labels
	}
	if po.Title == "" {
		po.Title = ds.Title
	}
	return po, ds, nil
}

// resolveKind prefers the --type flag over the kind recorded in the file.
func resolveKind(flag string, ds dataset.Dataset) (chart.Kind, error) {
	if flag != "" {
		k, err := chart.ParseKind(flag)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidChartType, err, "--type")
		}
		return k, nil
	}
	if ds.Kind != "" {
		return ds.Kind, nil
	}
	return "", errors.New(errors.ErrCodeInvalidChartType, "dataset %q has no kind; pass --type pie, bar or line", ds.Name)
}

// selectDataset picks the dataset to draw: the named one, the only one, or
// one chosen interactively.
func selectDataset(f *dataset.File, name string, interactive bool) (dataset.Dataset, error) {
	if name != "" {
		return f.Find(name)
	}
	if ds, ok := f.Single(); ok {
		return ds, nil
	}
	if interactive {
		return pickDataset(f)
	}
	return dataset.Dataset{}, errors.New(errors.ErrCodeInvalidInput,
		"file has %d datasets; choose one with --dataset (available: %s)", len(f.Datasets), strings.Join(f.Names(), ", "))
}

// runRender computes the chart and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, ds dataset.Dataset, po pipeline.Options, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s chart of %q from %s", po.Kind, ds.Name, input)

	runner, err := c.newRunner(ctx, opts.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, ds.Data, po)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed %s chart", po.Kind))

	base := basePath(opts.output, input)
	if opts.output == "" && ds.Name != dataset.DefaultName {
		base += "_" + ds.Name
	}

	var written []string
	for _, format := range po.Formats {
		path := outputPath(opts.output, base, format, len(po.Formats))
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		if path != "-" {
			written = append(written, path)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(result.Artifacts[format]))
	}

	if len(written) > 0 {
		printSuccess("Rendered %s", ds.Name)
		for _, p := range written {
			printFile(p)
		}
		printStats(result.Stats.Elements, result.Stats.Records, result.CacheInfo.ComputeHit)
		if result.Geometry.Empty() {
			printWarning("%s: %s", ds.Name, result.Geometry.NoData())
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if errors.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where a single format is written. An explicit output
// is used verbatim when only one format is requested.
func outputPath(output, base, format string, n int) string {
	if output != "" && n == 1 {
		return output
	}
	return base + "." + format
}

// writeArtifact writes data to path, or to stdout when path is "-".
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return writeAndClose(out, path, data)
}

// writeAndClose reports a failed Close, which is where buffered file
// writes surface.
func writeAndClose(out io.WriteCloser, path string, data []byte) error {
	if _, err := out.Write(data); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

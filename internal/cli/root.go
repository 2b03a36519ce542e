package cli

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	werrors "github.com/matzehuels/wikimap/pkg/errors"
)

// Output formats.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
	formatPDF  = "pdf"
	formatPNG  = "png"
)

var formats = []string{formatDOT, formatSVG, formatJSON, formatPDF, formatPNG}

// mapOpts holds the command-line flags of the root command.
type mapOpts struct {
	format    string  // output format, one of formats
	output    string  // output file; empty writes to stdout
	root      string  // directory hrefs are relative to
	config    string  // config file; empty uses wikimap.toml when present
	input     string  // previously exported JSON graph to render instead of crawling
	wrapWidth int     // overrides render.wrap_width when set
	salience  float64 // overrides metadata.salience when set
	scale     float64 // PNG scale factor
	useCache  bool    // reuse person-detection results across runs
	verbose   bool
	quiet     bool
}

func (c *CLI) mapCommand() *cobra.Command {
	var opts mapOpts

	cmd := &cobra.Command{
		Use:   appName + " [flags] <seed-path>...",
		Short: "Map a markdown wiki as a Graphviz graph",
		Long: `wikimap follows the links between markdown documents, starting at one or
more seed files, and renders the network as a Graphviz graph.

Each document becomes a node labeled with its title, place and characters.
Characters come from the "characters" front-matter field, or are detected in
the prose. Anchor text shapes the edges: "Next" is the main path, "Later" is
an aside, "Prev..." links are hidden, and "(label)" names the edge.`,
		Example: `  # DOT on stdout
  wikimap story/start.md | dot -Tsvg > story.svg

  # SVG directly, format taken from the extension
  wikimap -o story.svg story/start.md

  # Save the crawl, then render it again later
  wikimap -f json -o story.json story/start.md
  wikimap --input story.json -f svg -o story.svg`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.input == "" {
				return werrors.New(werrors.ErrCodeUsage, "usage: %s", cmd.UseLine())
			}
			for _, a := range args {
				if err := werrors.ValidateSeedPath(a); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case opts.verbose:
				c.SetLogLevel(LogDebug)
			case opts.quiet:
				c.SetLogLevel(LogWarn)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = formatFromPath(opts.output, opts.format)
			}
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("wrap-width") {
				cfg.Render.WrapWidth = opts.wrapWidth
			}
			if cmd.Flags().Changed("salience") {
				if err := checkSalience(opts.salience); err != nil {
					return werrors.Wrap(werrors.ErrCodeInvalidConfig, err, "--salience")
				}
				cfg.Metadata.Salience = opts.salience
			}
			if err := cfg.validate(); err != nil {
				return werrors.Wrap(werrors.ErrCodeInvalidConfig, err, "flags")
			}
			return c.runMap(cmd.Context(), cfg, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", formatDOT, "output format: "+strings.Join(formats, ", "))
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	f.StringVar(&opts.root, "root", ".", "directory node links are relative to")
	f.StringVar(&opts.config, "config", "", "config file (default: ./"+defaultConfigFile+" if present)")
	f.StringVar(&opts.input, "input", "", "render a graph exported with --format json instead of crawling")
	f.IntVar(&opts.wrapWidth, "wrap-width", 0, "label wrap column (default 20)")
	f.Float64Var(&opts.salience, "salience", 0, "minimum share of mentions, in percent, for a detected character (default 20)")
	f.Float64Var(&opts.scale, "scale", 2, "PNG scale factor")
	f.BoolVar(&opts.useCache, "cache", false, "reuse person detection results from earlier runs (see: wikimap cache path)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// formatFromPath infers the output format from the file extension, falling
// back to def.
func formatFromPath(path, def string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "gv" {
		return formatDOT
	}
	if slices.Contains(formats, ext) {
		return ext
	}
	return def
}

func validateFormat(format string) error {
	if !slices.Contains(formats, format) {
		return werrors.New(werrors.ErrCodeInvalidFormat, "unknown format %q (want one of %s)", format, strings.Join(formats, ", "))
	}
	return nil
}

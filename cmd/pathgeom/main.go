// Command pathgeom flattens, samples and transforms path geometry written
// in the path mini-language.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/pathgeom"
	"honnef.co/go/pathgeom/internal/config"
)

type app struct {
	cfg *config.Config

	configPath string
	tolerance  float64
	precision  int
	fixed      bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "pathgeom",
		Short:        "Flatten, sample and transform path geometry",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML configuration `file`")
	flags.Float64Var(&a.tolerance, "tolerance", pathgeom.DefaultTolerance, "flattening tolerance")
	flags.IntVar(&a.precision, "precision", 0, "maximum number of fractional digits in output (0 for as many as needed)")
	flags.BoolVar(&a.fixed, "fixed", false, "print coordinates in 26.6 fixed point")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		a.flattenCmd(),
		a.sketchCmd(),
		a.marchCmd(),
		a.polygonCmd(),
		a.arcCmd(),
	)
	return root
}

// load reads the configuration and applies the flags that were set
// explicitly on top of it.
func (a *app) load(cmd *cobra.Command) error {
	if a.verbose {
		pathgeom.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Tolerance = a.tolerance
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// readGeometry parses the path given as the only argument, or read from
// standard input if there is none.
func (a *app) readGeometry(cmd *cobra.Command, args []string) (*pathgeom.Geometry, error) {
	var text string
	if len(args) > 0 && args[0] != "-" {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading path: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	g, err := pathgeom.Parse(text)
	if err != nil {
		pathgeom.Logger().Debug("pathgeom: parse failed", "input", text, "err", err)
		return nil, fmt.Errorf("parsing path: %w", err)
	}
	return g, nil
}

func (a *app) formatOptions() pathgeom.FormatOptions {
	return pathgeom.FormatOptions{MaxPrecision: a.cfg.Precision}
}

func (a *app) writePoint(w io.Writer, pt pathgeom.Point) error {
	var err error
	if a.fixed {
		fp := pathgeom.ToFixed(pt)
		_, err = fmt.Fprintf(w, "%d %d\n", int32(fp.X), int32(fp.Y))
	} else {
		_, err = fmt.Fprintf(w, "%s %s\n", pathgeom.FormatNumber(pt.X, a.formatOptions()), pathgeom.FormatNumber(pt.Y, a.formatOptions()))
	}
	return err
}

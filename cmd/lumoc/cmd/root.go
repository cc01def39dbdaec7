package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CrimsonDemon567/lumo/internal/config"
	"github.com/CrimsonDemon567/lumo/internal/diag"
	"github.com/CrimsonDemon567/lumo/internal/parser"
)

// ErrReported is returned when a diagnostic has already been printed.
var ErrReported = errors.New("errors reported")

// defaultConfigFiles are tried in order when --config is not given.
var defaultConfigFiles = []string{"lumoc.toml", "lumoc.yaml", "lumoc.yml"}

type app struct {
	cfgFile  string
	verbose  bool
	noColor  bool
	maxDepth int

	cfg    config.Config
	logger *slog.Logger
	parser *parser.Parser
	out    *diag.Printer
	errOut *diag.Printer
}

// NewRootCmd builds the lumoc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lumoc",
		Short: "lumo front end: scan and parse lumo source",
		Long: `lumoc runs the lumo scanner and parser over source files.

Commands:
  tokens  - print the token stream of a file
  parse   - print the syntax tree of a file
  check   - parse files and report the first error in each`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./lumoc.toml if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")
	flags.IntVar(&a.maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum expression nesting depth")

	rootCmd.AddCommand(newTokensCmd(a), newParseCmd(a), newCheckCmd(a), newVersionCmd())
	return rootCmd
}

// Execute runs lumoc with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		for _, name := range defaultConfigFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = a.maxDepth
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.parser = parser.New(cfg.ParserOptions(a.logger))
	a.out = diag.NewPrinter(cmd.OutOrStdout(), cfg.Color)
	a.errOut = diag.NewPrinter(cmd.ErrOrStderr(), cfg.Color)

	a.logger.Debug("config loaded", "file", path, "max_depth", cfg.MaxDepth, "jobs", cfg.Jobs)
	return nil
}

// readSource reads a file, or standard input for "-".
func readSource(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

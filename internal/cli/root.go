// Package cli wires the lvalgo commands: search, balanced, verify and
// catalog.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvalgo/internal/catalog"
	"github.com/katalvlaran/lvalgo/internal/config"
	"github.com/katalvlaran/lvalgo/internal/logger"
	"github.com/katalvlaran/lvalgo/internal/render"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string

	cfg *config.Config
	log *zap.Logger
	out *render.Printer
}

// NewRootCommand creates and returns the root cobra command for lvalgo
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:   "lvalgo",
		Short: "Binary search and bracket balance, step by step",
		Long: `lvalgo runs binary search over sorted integers and balanced-bracket
validation, optionally printing every probe or stack operation.

Settings come from defaults, an optional YAML file (--config),
LVALGO_* environment variables and flags, in that order.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.String("log-level", config.Default().LogLevel, "log level: debug, info, warn, error, off")
	flags.String("color", config.Default().Color, "color output: auto, always, never")
	flags.Bool("trace", false, "print every probe or bracket op")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyColor, flags.Lookup("color"))
	_ = a.v.BindPFlag(config.KeyTrace, flags.Lookup("trace"))

	cmd.AddCommand(newSearchCommand(a))
	cmd.AddCommand(newBalancedCommand(a))
	cmd.AddCommand(newVerifyCommand(a))
	cmd.AddCommand(newCatalogCommand(a))

	return cmd
}

// init resolves configuration and builds the logger and printer.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel).With(zap.String("command", cmd.Name()))
	a.out = render.NewPrinter(cmd.OutOrStdout(), cfg.Color)
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("color", cfg.Color),
		zap.Int("workers", cfg.Workers),
		zap.Bool("trace", cfg.Trace),
	)

	return nil
}

// loadCatalog returns the configured preset file or the embedded one.
func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.cfg.Catalog == "" {
		return catalog.Default()
	}

	return catalog.LoadFile(a.cfg.Catalog)
}

package main

import (
	"fmt"

	"github.com/katalvlaran/lvlchain/chain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all commands for one invocation.
type app struct {
	configPath string
	cfg        Config
	logger     *zap.Logger // preset loggers are kept (tests)
	owned      bool        // logger built here and synced on exit
	opts       []chain.Option
}

func newApp() *app {
	return &app{cfg: defaultConfig()}
}

// newRootCmd wires the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "chaindemo",
		Short: "Exercise lvlchain chains over stdin/stdout",
		Long: `chaindemo reads chains from standard input, one line per chain, and
prints what each operation produces.

Part 1 uses chains of int: empty chains, a single value, two read chains,
copy, copy-assignment, move and move-assignment.
Part 2 uses chains of string: two read chains, their sizes, concatenation,
appending a value, and indexed reads and writes.

Running without a subcommand runs both parts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.demo(cmd)
			if err := d.part1(); err != nil {
				return err
			}

			return d.part2()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.cfg.Bounds, flagBounds, a.cfg.Bounds, "index bounds mode: elements|legacy")
	flags.StringVar(&a.cfg.Parse, flagParse, a.cfg.Parse, "unparsable token policy: silent|skip|strict")
	flags.BoolVarP(&a.cfg.Verbose, flagVerbose, "v", a.cfg.Verbose, "debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "part1",
			Short: "Run the int chain walkthrough",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.demo(cmd).part1()
			},
		},
		&cobra.Command{
			Use:   "part2",
			Short: "Run the string chain walkthrough",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.demo(cmd).part2()
			},
		},
	)

	return root
}

// setup merges the config file under the flags, then builds logger and options.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		fileCfg, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = mergeFlags(fileCfg, a.cfg, cmd.Flags())
	}

	if a.logger == nil {
		config := zap.NewProductionConfig()
		if a.cfg.Verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger, a.owned = logger, true
	}

	opts, err := a.cfg.chainOptions(a.logger)
	if err != nil {
		return err
	}
	a.opts = opts
	a.logger.Debug("configuration resolved",
		zap.String("bounds", a.cfg.Bounds), zap.String("parse", a.cfg.Parse))

	return nil
}

// sync flushes a logger built by setup. It runs on every exit path,
// including failed commands, which skip cobra's post-run hooks.
func (a *app) sync() {
	if a.owned && a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) demo(cmd *cobra.Command) *demo {
	return newDemo(cmd.InOrStdin(), cmd.OutOrStdout(), a.logger, a.opts...)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-staff/config"
	"go-staff/staff"
)

type options struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "staffctl",
		Short:         "Explore the employee, developer and manager model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML settings file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newDemoCmd(opts),
		newParseCmd(opts),
		newWorkdayCmd(),
		newRosterCmd(opts),
		newConfigCmd(),
	)
	return root
}

// newRegistry builds a registry from the config file, with notifications
// going to the command's stdout.
func newRegistry(cmd *cobra.Command, opts *options) (*staff.Registry, func(), error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if opts.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	regOpts := append(cfg.Options(), staff.WithOutput(cmd.OutOrStdout()), staff.WithLogger(logger))
	return staff.NewRegistry(regOpts...), func() { _ = logger.Sync() }, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

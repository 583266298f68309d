package main

import (
	"fmt"

	"github.com/hairyhenderson/go-devfs/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
	log *logrus.Logger

	configPath    string
	logLevel      string
	enableTracing bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "devfs",
		Short: "Resolve request URLs against a build output filesystem",
		Long: `devfs maps request URLs to files in a build's output filesystem,
following the configured mount points in order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	flags.StringVar(&a.logLevel, "log-level", "", "override the configured log level")
	flags.BoolVar(&a.enableTracing, "tracing", false, "enable tracing with OTel")

	cmd.AddCommand(
		a.resolveCmd(),
		a.mountsCmd(),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	log, err := cfg.Logging.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	a.cfg = cfg
	a.log = log

	log.WithField("output", cfg.Output.URL).Debug("configuration loaded")

	return nil
}

package main

import (
	"io"

	"github.com/garethgeorge/rangecalc/internal/config"
	"github.com/garethgeorge/rangecalc/internal/logging"
	"github.com/garethgeorge/rangecalc/internal/rangefmt"
	"github.com/garethgeorge/rangecalc/internal/rangeset"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	stdout io.Writer
	stderr io.Writer

	v         *viper.Viper
	cfg       config.Config
	log       *logrus.Logger
	processor *rangeset.Processor

	configPath string
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		v:         config.New(),
		log:       logrus.New(),
		processor: rangeset.NewProcessor(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rangecalc",
		Short:         "Combine include and exclude integer ranges into a minimal range list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure()
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: rangecalc.yaml in the user config dir or working dir)")
	flags.String("log-level", logrus.InfoLevel.String(), "log level: trace, debug, info, warn, error")
	flags.String("log-format", logging.FormatText, "log format: text or json")
	flags.String("color", string(rangefmt.ColorAuto), "colorize output: auto, always or never")
	flags.String("separator", rangefmt.DefaultSeparator, "separator printed between ranges")
	a.bindFlag(cmd, config.KeyLogLevel, "log-level")
	a.bindFlag(cmd, config.KeyLogFormat, "log-format")
	a.bindFlag(cmd, config.KeyColor, "color")
	a.bindFlag(cmd, config.KeySeparator, "separator")

	cmd.AddCommand(a.calcCommand(), a.validateCommand(), a.batchCommand())
	return cmd
}

func (a *app) bindFlag(cmd *cobra.Command, key, name string) {
	flag := cmd.PersistentFlags().Lookup(name)
	if flag == nil {
		flag = cmd.Flags().Lookup(name)
	}
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func (a *app) configure() error {
	if err := config.ReadFile(a.v, a.configPath); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if err := logging.Setup(a.log, a.stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")
	return nil
}

func (a *app) formatter(out io.Writer) *rangefmt.Formatter {
	return rangefmt.NewFormatter(a.cfg.Color.Enabled(out), a.cfg.Separator)
}

func inputError(err error) error {
	return &exitError{code: exitInput, err: err}
}

// recoverInternal turns a panic from a broken invariant into an internal error.
func recoverInternal(log *logrus.Logger, err *error) {
	if rec := recover(); rec != nil {
		fault := errors.Errorf("internal error: %v", rec)
		log.WithError(fault).Error("range computation failed")
		*err = &exitError{code: exitInternal, err: fault}
	}
}

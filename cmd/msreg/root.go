package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sartorproj/goregime/internal/config"
	"github.com/sartorproj/goregime/internal/logger"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	out        io.Writer
	configPath string
	v          *viper.Viper
	cfg        *config.Config
	log        zerolog.Logger
	closeLog   io.Closer
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":          "log.level",
	"log-pretty":         "log.pretty",
	"log-file":           "log.file",
	"format":             "output.format",
	"regimes":            "model.regimes",
	"trend":              "model.trend",
	"switching-variance": "model.switching_variance",
	"em-iter":            "fit.em_iter",
	"maxiter":            "fit.maxiter",
	"method":             "fit.method",
	"search-reps":        "fit.search_reps",
	"search-iter":        "fit.search_iter",
	"search-scale":       "fit.search_scale",
	"seed":               "fit.seed",
	"disp":               "fit.disp",
	"em-maxiter":         "em.maxiter",
	"em-tol":             "em.tolerance",
	"min-regimes":        "select.min_regimes",
	"max-regimes":        "select.max_regimes",
	"variance":           "select.variance",
	"criterion":          "select.criterion",
	"concurrency":        "select.concurrency",
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "msreg",
		Short: "Estimate Markov switching regressions",
		Long: `msreg fits linear regressions whose coefficients and variance switch
with an unobserved Markov regime, by maximum likelihood or EM.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog.Close()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error, disabled")
	pf.Bool("log-pretty", false, "human-readable console logs")
	pf.String("log-file", "", "also write JSON logs to this file, rotated")
	pf.String("format", "json", "output format: json, yaml or msgpack")

	root.AddCommand(newFitCmd(a), newLoglikeCmd(a), newSelectCmd(a))
	return root
}

// setup loads the configuration with the flags of cmd bound on top and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.v = viper.New()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = a.v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, a.closeLog = logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Pretty:     cfg.Log.Pretty,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		Output:     cmd.ErrOrStderr(),
	})
	a.log.Debug().
		Str("command", cmd.Name()).
		Str("config", a.v.ConfigFileUsed()).
		Msg("configuration loaded")
	return nil
}

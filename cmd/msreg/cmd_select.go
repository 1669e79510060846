package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goregime/internal/report"
	"github.com/sartorproj/goregime/msregression"
	"github.com/sartorproj/goregime/selection"
)

func newSelectCmd(a *app) *cobra.Command {
	var (
		data           dataOptions
		diagnosticLags int
	)
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose the number of regimes by information criterion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := data.load()
			if err != nil {
				return err
			}
			trend, err := msregression.ParseTrend(a.cfg.Model.Trend)
			if err != nil {
				return err
			}

			sc := a.cfg.Select
			res, err := selection.Select(in.endog, in.exog, &selection.Config{
				MinRegimes:  sc.MinRegimes,
				MaxRegimes:  sc.MaxRegimes,
				Variance:    sc.Variance,
				Trend:       trend,
				Criterion:   sc.Criterion,
				EMIter:      a.cfg.Fit.EMIter,
				MaxIter:     a.cfg.Fit.MaxIter,
				Method:      a.cfg.Fit.Method,
				Concurrency: sc.Concurrency,
				ExogNames:   in.names,
				Trace:       true,
				Logger:      &a.log,
			})
			if err != nil {
				return fmt.Errorf("select: %w", err)
			}

			best, err := fitReport(res.Best.Model, res.Best.Fit, in.source, diagnosticLags)
			if err != nil {
				return err
			}
			doc := &report.Select{
				Source:    in.source,
				Criterion: res.Criterion,
				Best:      best,
			}
			for _, c := range res.Candidates {
				rc := report.Candidate{
					KRegimes:          c.KRegimes,
					SwitchingVariance: c.SwitchingVariance,
					Criterion:         report.Float(c.Criterion),
				}
				if c.Fit != nil {
					rc.LLF = report.Float(c.Fit.LLF)
				}
				if c.Err != nil {
					rc.Error = c.Err.Error()
				}
				doc.Candidates = append(doc.Candidates, rc)
			}
			return report.Write(a.out, a.cfg.Output.Format, doc)
		},
	}

	addDataFlags(cmd, &data)
	f := cmd.Flags()
	f.String("trend", "c", "deterministic terms: n, c, t or ct")
	f.Int("min-regimes", 2, "smallest number of regimes")
	f.Int("max-regimes", 3, "largest number of regimes")
	f.String("variance", "both", "variance options: shared, switching or both")
	f.String("criterion", "aic", "aic, aicc, bic or hqic")
	f.Int("concurrency", 0, "candidates fitted at once, 0 for GOMAXPROCS")
	f.Int("em-iter", 5, "EM iterations before the optimizer")
	f.Int("maxiter", 100, "optimizer iterations")
	f.String("method", "bfgs", "optimizer: bfgs, lbfgs or nm")
	f.IntVar(&diagnosticLags, "diagnostic-lags", 10, "Ljung-Box lags for the best model, 0 to skip")
	return cmd
}

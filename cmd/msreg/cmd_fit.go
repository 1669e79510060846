package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goregime/internal/report"
	"github.com/sartorproj/goregime/msregression"
	"github.com/sartorproj/goregime/stats"
	"github.com/sartorproj/goregime/timeseries"
)

type fitOptions struct {
	data             dataOptions
	em               bool
	probabilities    bool
	probabilitiesCSV string
	diagnosticLags   int
}

func newFitCmd(a *app) *cobra.Command {
	opts := &fitOptions{}
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Estimate a model by maximum likelihood or EM",
		Long: `fit estimates the model parameters. By default a few EM iterations
are followed by numerical maximization of the likelihood; --em runs EM to
convergence instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFit(opts)
		},
	}

	addDataFlags(cmd, &opts.data)
	addModelFlags(cmd)
	f := cmd.Flags()
	f.BoolVar(&opts.em, "em", false, "estimate with EM only")
	f.Int("em-iter", 5, "EM iterations before the optimizer")
	f.Int("maxiter", 100, "optimizer iterations")
	f.String("method", "bfgs", "optimizer: bfgs, lbfgs or nm")
	f.Int("search-reps", 0, "random starting points to try (0: 20 for more than two regimes, -1: none)")
	f.Int("search-iter", 5, "EM iterations per random starting point")
	f.Float64("search-scale", 1, "width of the random start perturbation")
	f.Uint64("seed", 0, "seed of the random start search")
	f.Bool("disp", false, "log every optimizer iteration")
	f.Int("em-maxiter", 50, "EM iterations with --em")
	f.Float64("em-tol", 1e-6, "EM relative tolerance with --em")
	f.BoolVar(&opts.probabilities, "probabilities", false, "include smoothed regime probabilities")
	f.StringVar(&opts.probabilitiesCSV, "probabilities-csv", "", "write smoothed regime probabilities to a CSV file")
	f.IntVar(&opts.diagnosticLags, "diagnostic-lags", 10, "Ljung-Box lags for the residual diagnostics, 0 to skip")
	return cmd
}

func (a *app) runFit(opts *fitOptions) error {
	in, err := opts.data.load()
	if err != nil {
		return err
	}
	model, err := a.newModel(in, a.cfg.Model.Regimes, a.cfg.Model.SwitchingVariance)
	if err != nil {
		return err
	}

	var res *msregression.FitResult
	if opts.em {
		res, err = model.FitEM(&msregression.EMConfig{
			MaxIter:   a.cfg.EM.MaxIter,
			Tolerance: a.cfg.EM.Tolerance,
		})
	} else {
		res, err = model.Fit(a.fitConfig())
	}
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	a.log.Info().
		Str("method", res.Method).
		Bool("converged", res.Converged).
		Float64("llf", res.LLF).
		Msg("model estimated")

	doc, err := fitReport(model, res, in.source, opts.diagnosticLags)
	if err != nil {
		return err
	}

	if opts.probabilities || opts.probabilitiesCSV != "" {
		sr, err := model.Smooth(res.Params)
		if err != nil {
			return fmt.Errorf("smoothed probabilities: %w", err)
		}
		if opts.probabilities {
			doc.Smoothed = make([][]report.Float, len(sr.Smoothed))
			for t, row := range sr.Smoothed {
				doc.Smoothed[t] = report.Floats(row)
			}
		}
		if opts.probabilitiesCSV != "" {
			if err := writeProbabilities(opts.probabilitiesCSV, in.frame, sr.Smoothed); err != nil {
				return err
			}
		}
	}

	return report.Write(a.out, a.cfg.Output.Format, doc)
}

func (a *app) fitConfig() *msregression.FitConfig {
	fc := a.cfg.Fit
	return &msregression.FitConfig{
		EMIter:      fc.EMIter,
		MaxIter:     fc.MaxIter,
		Method:      fc.Method,
		Disp:        fc.Disp,
		SearchReps:  fc.SearchReps,
		SearchIter:  fc.SearchIter,
		SearchScale: fc.SearchScale,
		Seed:        fc.Seed,
	}
}

// fitReport assembles the report of a fitted model. Residual diagnostics use
// the residuals under the smoothed regime probabilities.
func fitReport(model *msregression.Model, res *msregression.FitResult, source string, lags int) (*report.Fit, error) {
	names := model.ParamNames()
	params := make([]report.Param, len(res.Params))
	for i, v := range res.Params {
		params[i] = report.Param{Name: names[i], Value: report.Float(v)}
	}

	durations, err := model.ExpectedDurations(res.Params)
	if err != nil {
		return nil, err
	}

	doc := &report.Fit{
		Source:     source,
		Model:      modelSummary(model),
		Method:     res.Method,
		Converged:  res.Converged,
		Iterations: res.NIter,
		LLF:        report.Float(res.LLF),
		Criteria: report.Criteria{
			AIC:  report.Float(res.AIC),
			AICc: report.Float(res.AICc),
			BIC:  report.Float(res.BIC),
			HQIC: report.Float(res.HQIC),
		},
		Params:            params,
		ExpectedDurations: report.Floats(durations),
		LLFHistory:        report.Floats(res.LLFHistory),
	}

	if lags > 0 {
		resid, err := model.Residuals(res.Params, msregression.Smoothed)
		if err != nil {
			return nil, err
		}
		// One coefficient per regressor is estimated in each regime.
		lb := stats.LjungBox(resid, lags, len(model.Regressors()))
		dw := stats.DurbinWatson(resid)
		if lb != nil && dw != nil {
			doc.Diagnostics = &report.Diagnostics{
				LjungBoxQ:      report.Float(lb.Statistic),
				LjungBoxPValue: report.Float(lb.PValue),
				LjungBoxLags:   lb.Lags,
				LjungBoxDOF:    lb.DOF,
				DurbinWatson:   report.Float(dw.Statistic),
				Interpretation: dw.Interpretation,
			}
		}
	}
	return doc, nil
}

func modelSummary(model *msregression.Model) report.Model {
	return report.Model{
		KRegimes:          model.KRegimes(),
		Trend:             string(model.Trend()),
		SwitchingVariance: model.SwitchingVariance(),
		Regressors:        model.Regressors(),
		NObs:              model.NObs(),
	}
}

func writeProbabilities(path string, data *timeseries.Frame, smoothed [][]float64) error {
	k := 0
	if len(smoothed) > 0 {
		k = len(smoothed[0])
	}
	frame, err := timeseries.NewFrame(data.Index)
	if err != nil {
		return err
	}
	for s := 0; s < k; s++ {
		col := make([]float64, len(smoothed))
		for t, row := range smoothed {
			col[t] = row[s]
		}
		if err := frame.Add(timeseries.New(fmt.Sprintf("regime_%d", s), col)); err != nil {
			return err
		}
	}
	return timeseries.SaveCSV(frame, path)
}

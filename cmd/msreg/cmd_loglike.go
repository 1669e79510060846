package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goregime/internal/report"
)

func newLoglikeCmd(a *app) *cobra.Command {
	var (
		data   dataOptions
		params []float64
	)
	cmd := &cobra.Command{
		Use:   "loglike",
		Short: "Evaluate the log-likelihood of a parameter vector",
		Long: `loglike prints the log-likelihood of the given parameters. Parameters
follow the order of the names in the output: transition probabilities,
regime coefficients by regressor, then variances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(params) == 0 {
				return errors.New("--params is required")
			}
			in, err := data.load()
			if err != nil {
				return err
			}
			model, err := a.newModel(in, a.cfg.Model.Regimes, a.cfg.Model.SwitchingVariance)
			if err != nil {
				return err
			}
			if len(params) != model.KParams() {
				return fmt.Errorf("got %d parameters, the model has %d: %v", len(params), model.KParams(), model.ParamNames())
			}

			names := model.ParamNames()
			doc := &report.Loglike{
				Source: in.source,
				Model:  modelSummary(model),
				Params: make([]report.Param, len(params)),
				LLF:    report.Float(model.Loglike(params)),
			}
			for i, v := range params {
				doc.Params[i] = report.Param{Name: names[i], Value: report.Float(v)}
			}
			return report.Write(a.out, a.cfg.Output.Format, doc)
		},
	}

	addDataFlags(cmd, &data)
	addModelFlags(cmd)
	cmd.Flags().Float64SliceVar(&params, "params", nil, "comma separated parameter vector")
	return cmd
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goregime/datasets"
	"github.com/sartorproj/goregime/msregression"
	"github.com/sartorproj/goregime/timeseries"
)

// dataOptions selects the regression inputs.
type dataOptions struct {
	dataset    string
	file       string
	column     string
	dateColumn string
	exog       []string
	lags       int
}

// input is the data of one estimation.
type input struct {
	source string
	endog  []float64
	exog   [][]float64
	names  []string
	frame  *timeseries.Frame
}

func addDataFlags(cmd *cobra.Command, d *dataOptions) {
	f := cmd.Flags()
	f.StringVar(&d.dataset, "dataset", "", fmt.Sprintf("bundled series as endog, one of %v", datasets.Names()))
	f.StringVar(&d.file, "data", "", "CSV file with a header row")
	f.StringVar(&d.column, "column", "", "endog column of the CSV file")
	f.StringVar(&d.dateColumn, "date-column", "", "date column of the CSV file")
	f.StringSliceVar(&d.exog, "exog", nil, "exog columns (bundled series names with --dataset)")
	f.IntVar(&d.lags, "lags", 0, "number of endog lags added as regressors")
}

func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("regimes", 2, "number of regimes")
	f.String("trend", "c", "deterministic terms: n, c, t or ct")
	f.Bool("switching-variance", false, "let the error variance switch with the regime")
}

func (d *dataOptions) load() (*input, error) {
	if d.lags < 0 {
		return nil, fmt.Errorf("--lags must be non-negative, got %d", d.lags)
	}

	var (
		frame  *timeseries.Frame
		endog  string
		source string
		err    error
	)
	switch {
	case d.dataset != "" && d.file != "":
		return nil, errors.New("use either --dataset or --data, not both")
	case d.dataset != "":
		frame, err = datasetFrame(d.dataset, d.exog)
		endog, source = d.dataset, d.dataset
	case d.file != "":
		if d.column == "" {
			return nil, errors.New("--column is required with --data")
		}
		opts := timeseries.DefaultCSVOptions()
		opts.DateColumn = d.dateColumn
		frame, err = timeseries.LoadCSV(d.file, opts)
		endog, source = d.column, d.file
	default:
		return nil, errors.New("one of --dataset or --data is required")
	}
	if err != nil {
		return nil, err
	}

	y, x, names, err := frame.Design(endog, d.exog, d.lags)
	if err != nil {
		return nil, err
	}
	return &input{source: source, endog: y, exog: x, names: names, frame: frame}, nil
}

// datasetFrame collects bundled series of equal length into a frame.
func datasetFrame(endog string, exog []string) (*timeseries.Frame, error) {
	frame := &timeseries.Frame{}
	for _, name := range append([]string{endog}, exog...) {
		values, err := datasets.Lookup(name)
		if err != nil {
			return nil, err
		}
		if err := frame.Add(timeseries.New(name, values)); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func (a *app) newModel(in *input, k int, switching bool) (*msregression.Model, error) {
	trend, err := msregression.ParseTrend(a.cfg.Model.Trend)
	if err != nil {
		return nil, err
	}
	return msregression.New(in.endog, in.exog, &msregression.Config{
		KRegimes:          k,
		Trend:             trend,
		SwitchingVariance: switching,
		ExogNames:         in.names,
		Logger:            &a.log,
	})
}

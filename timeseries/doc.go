// Package timeseries provides the data containers used to feed Markov
// switching regressions.
//
// Missing observations are NaN throughout. Transformations keep the length
// of the input so that derived columns stay aligned with the original
// sample; the estimators drop incomplete rows themselves.
//
// # Creating a Series
//
//	series := timeseries.New("fedfunds", values)
//	lagged := series.Lag(1) // lagged.Values[0] is NaN
//
// # Loading from CSV
//
// ReadCSV and LoadCSV read every numeric column of a CSV file into a Frame.
// Empty cells and NA are missing values:
//
//	frame, err := timeseries.LoadCSV("usmacro.csv", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// fedfunds on ogap, inf and its own first lag
//	y, x, names, err := frame.Design("fedfunds", []string{"ogap", "inf"}, 1)
//
// WriteCSV writes a frame back out, for example smoothed regime
// probabilities.
package timeseries

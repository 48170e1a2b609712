// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing evenly-spaced time
// series data, along with functions for CSV loading and the summary
// statistics the trend and seasonal estimators rely on.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files. The first column is treated as the
// index; the value column may be selected by name or 0-based position and
// defaults to the rightmost column:
//
//	series, err := timeseries.LoadCSVColumn("data.csv", "passengers")
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.Column = "passengers"
//	opts.Split = 0.8 // keep the leading 80% of rows
//	series, err := timeseries.LoadCSV("data.csv", opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	variance := series.Variance() // population variance
//	std := series.Std()
//	median := series.Median()
//
// # Slicing and Detrending
//
// Work with subsets of the data and residuals:
//
//	subset := series.Slice(10, 50)
//	residual, err := series.Detrend(trendSeries)
package timeseries

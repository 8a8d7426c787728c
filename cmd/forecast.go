package cmd

import (
	"errors"

	"github.com/augur-cli/augur/core"
	"github.com/augur-cli/augur/internal/contract"
	"github.com/spf13/cobra"
)

// forecastCmd performs short-horizon numeric forecasting.
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast the next values of a numeric series.",
	Long: `Forecast future values of a short numeric series.

Runs three lightweight models over the series and blends them:
- Moving average of the last window
- Exponential smoothing over the full series
- Ordinary least squares linear regression

The ensemble weighs each model and renormalizes around models that fail,
so one bad fit never poisons the blended value. A trend summary
(direction, strength, volatility, confidence) accompanies every run.

Examples:
  # Blended forecast, three steps ahead
  augur forecast -d 10,12,11,13,15

  # Five steps from a single model
  augur forecast -d 10,12,11,13,15 -s 5 -a linear

  # Trend analysis only
  augur forecast -d 10,12,11,13,15 -a trend

  # Machine-readable output
  augur forecast -d 10,12,11,13,15 --output json --output-file out.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if len(cfg.Series) == 0 {
			contract.LogFatal("Cannot run forecast", errors.New("--data is required"))
		}
		if err := core.ExecuteForecast(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run forecast", err)
		}
	},
}

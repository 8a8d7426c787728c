// Package cmd defines the command-line interface for augur.
package cmd

import (
	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the template subcommands to the parent template command
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateDeleteCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Add the config subcommands to the parent config command
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or json or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("templates-dir", "", "Directory holding oracle templates (defaults to ~/.augur/templates)")
	rootCmd.PersistentFlags().String("api-key", "", "API key for the oracle backend (prefer AUGUR_API_KEY)")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL for the oracle backend")
	rootCmd.PersistentFlags().String("model", "", "Model name for the oracle backend")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of forecastCmd to Viper
	forecastCmd.Flags().StringP("data", "d", "", "Comma-separated numeric series (e.g. 10,12,11,13)")
	forecastCmd.Flags().IntP("steps", "s", contract.DefaultSteps, "Number of future steps to forecast")
	forecastCmd.Flags().StringP("algorithm", "a", string(schema.EnsembleAlgorithm), "Algorithm: ensemble or ma or ema or linear or trend")
	if err := viper.BindPFlags(forecastCmd.Flags()); err != nil {
		contract.LogFatal("Error binding forecast flags", err)
	}

	// Bind all flags of castCmd to Viper
	castCmd.Flags().StringP("method", "m", string(schema.TimeMethod), "Cast method: time or direction or random")
	castCmd.Flags().Int("year", 0, "Year for the time method (0 = current)")
	castCmd.Flags().Int("month", 0, "Month for the time method (0 = current)")
	castCmd.Flags().Int("day", 0, "Day for the time method (0 = current)")
	castCmd.Flags().Int("hour", -1, "Hour for the time method (-1 = current)")
	castCmd.Flags().String("direction", "", "Compass or trigram direction for the direction method")
	castCmd.Flags().String("seed", "", "Seed for the random source (deterministic casts)")
	if err := viper.BindPFlags(castCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cast flags", err)
	}

	// Bind all flags of oracleCmd to Viper
	oracleCmd.Flags().StringP("variables", "v", "", "Template variables as a JSON object (e.g. '{\"topic\":\"career\"}')")
	oracleCmd.Flags().IntP("times", "n", contract.DefaultTimes, "Number of oracle rounds to run")
	if err := viper.BindPFlags(oracleCmd.Flags()); err != nil {
		contract.LogFatal("Error binding oracle flags", err)
	}

	// Bind all flags of historyListCmd to Viper
	historyListCmd.Flags().IntP("limit", "l", contract.DefaultResultLimit, "Number of records to display")
	if err := viper.BindPFlags(historyListCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history list flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}

	// Bind all flags of templateCreateCmd to Viper
	templateCreateCmd.Flags().String("file", "", "Read template content from a file instead of the command line")
	templateCreateCmd.Flags().Bool("force", false, "Overwrite the template if it already exists")
	if err := viper.BindPFlags(templateCreateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding template create flags", err)
	}
}

package cmd

import (
	"errors"

	"github.com/augur-cli/augur/core"
	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/internal/glm"
	"github.com/spf13/cobra"
)

// oracleCmd sends a filled template to the configured LLM backend.
var oracleCmd = &cobra.Command{
	Use:   "oracle <template> [question]",
	Short: "Ask the LLM oracle using a prompt template.",
	Long: `Fill a prompt template and send it to the configured chat backend.

Templates are markdown files with {variable} placeholders. The question
argument fills the {question} placeholder; other placeholders come from
the --variables JSON object. Unfilled placeholders are an error.

Each reply is persisted to the history store, so past oracle runs can be
listed and exported alongside forecasts and casts.

Requires an API key (AUGUR_API_KEY or the api-key config entry).

Examples:
  # Ask with the built-in fortune template
  augur oracle fortune "Will this quarter go well?"

  # Fill extra placeholders
  augur oracle decision "Should I refactor?" -v '{"deadline":"next week"}'

  # Three independent rounds
  augur oracle fortune "What should I focus on?" -n 3`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: oracleSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.APIKey == "" {
			contract.LogFatal("Cannot run oracle", errors.New("api key is required (set AUGUR_API_KEY or run 'augur config set api-key ...')"))
		}
		client := glm.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model)
		if err := core.ExecuteOracle(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run oracle", err)
		}
	},
}

// oracleSetupWrapper captures the positional template and question before
// shared setup.
func oracleSetupWrapper(cmd *cobra.Command, args []string) error {
	input.TemplateStr = args[0]
	if len(args) == 2 {
		input.QuestionStr = args[1]
	}
	return sharedSetup(rootCtx, cmd, args)
}

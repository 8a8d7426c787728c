package cmd

import (
	"github.com/augur-cli/augur/core"
	"github.com/augur-cli/augur/internal/contract"
	"github.com/spf13/cobra"
)

// castCmd produces a trigram reading.
var castCmd = &cobra.Command{
	Use:   "cast [question]",
	Short: "Cast a trigram reading for a question.",
	Long: `Cast three trigrams (upper, lower, mutation) and compose a reading.

The casting basis depends on the method:
- time      derives trigrams from a calendar date and hour (the default)
- direction derives the lower trigram from a compass or trigram name
- random    draws every trigram from the random source

The reading classifies the relation between the upper and lower trigram
elements on the five-element cycles, picks a target spirit from keywords
in the question, and renders a verdict with advice. The mutation trigram
hints at how the situation develops.

Examples:
  # Cast from the current time
  augur cast "Will the launch go smoothly?"

  # Cast from an explicit moment
  augur cast "Will it rain?" --year 2026 --month 2 --day 27 --hour 10

  # Cast from a facing direction
  augur cast "Career outlook" -m direction --direction east

  # Reproducible random cast
  augur cast -m random --seed 42`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: castSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCast(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run cast", err)
		}
	},
}

// castSetupWrapper captures the optional question before shared setup.
func castSetupWrapper(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		input.QuestionStr = args[0]
	}
	return sharedSetup(rootCtx, cmd, args)
}

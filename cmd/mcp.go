package cmd

import (
	"github.com/augur-cli/augur/internal/histstore"
	"github.com/augur-cli/augur/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Augur MCP server",
	Long:  `Launch an MCP server that allows AI agents to run forecasts, casts, and history queries via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean; stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, histstore.Store())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

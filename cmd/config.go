package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/internal/tmplstore"
	"github.com/augur-cli/augur/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settableKeys are the config entries 'config set' accepts.
var settableKeys = map[string]bool{
	"api-key":            true,
	"base-url":           true,
	"model":              true,
	"history-backend":    true,
	"history-db-connect": true,
	"templates-dir":      true,
	"output":             true,
	"precision":          true,
}

// defaultConfigContent is the starter config written by 'augur init'.
const defaultConfigContent = `# augur configuration
# Every key can also come from flags or AUGUR_* environment variables.

# Oracle backend (ZhipuAI GLM by default)
# api-key: ""
# base-url: "https://open.bigmodel.cn/api/paas/v4"
# model: "glm-4-flash"

# Prediction history
history-backend: sqlite
# history-db-connect: ""

# Output
output: text
precision: 2
`

// configFilePath resolves the config file to read or write: the --config
// flag if given, otherwise ~/.augur.yaml.
func configFilePath() (string, error) {
	if configFile := viper.GetString("config"); configFile != "" {
		return configFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".augur.yaml"), nil
}

// initCmd bootstraps a fresh installation.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file and install built-in templates.",
	Long: `Prepare augur for first use.

Writes a commented starter config to ~/.augur.yaml (unless one already
exists) and installs the built-in oracle templates into the templates
directory.

Examples:
  # First-time setup
  augur init`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		path, err := configFilePath()
		if err != nil {
			contract.LogFatal("Failed to initialize", err)
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Config file already exists: %s\n", path)
		} else {
			if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
				contract.LogFatal("Failed to write config file", err)
			}
			fmt.Printf("Created config file: %s\n", path)
		}

		dir := viper.GetString("templates-dir")
		if dir == "" {
			dir = contract.GetTemplatesDirPath()
		}
		store, err := tmplstore.NewStore(dir)
		if err != nil {
			contract.LogFatal("Failed to open template store", err)
		}
		installed, err := store.EnsureDefaults()
		if err != nil {
			contract.LogFatal("Failed to install built-in templates", err)
		}
		if len(installed) > 0 {
			fmt.Printf("Installed templates in %s: %v\n", dir, installed)
		} else {
			fmt.Printf("Templates already installed in %s\n", dir)
		}
	},
}

// configCmd manages persisted configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted configuration",
	Long: `Inspect and edit the augur config file.

Settable keys: api-key, base-url, model, history-backend,
history-db-connect, templates-dir, output, precision.

Examples:
  # Show the resolved configuration
  augur config show

  # Point the oracle at a different model
  augur config set model glm-4-plus`,
}

// configShowCmd prints the resolved configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the resolved configuration values",
	Long: `Print every settable key with its resolved value.

Values merge the config file, AUGUR_* environment variables, and
defaults. The API key is masked.

Examples:
  # Show the resolved configuration
  augur config show`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		keys := make([]string, 0, len(settableKeys))
		for key := range settableKeys {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		if used := viper.ConfigFileUsed(); used != "" {
			cmd.Printf("Config file: %s\n", used)
		} else {
			cmd.Printf("Config file: (none)\n")
		}
		for _, key := range keys {
			value := viper.GetString(key)
			if key == "api-key" && value != "" {
				value = "(set)"
			}
			cmd.Printf("  %s: %s\n", key, value)
		}
	},
}

// configSetCmd persists one configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one configuration value",
	Long: `Write a key/value pair to the config file, creating it if needed.

Only the documented keys are accepted; history-backend values are
validated before writing.

Examples:
  # Store the API key (prefer AUGUR_API_KEY for shared machines)
  augur config set api-key sk-...

  # Switch history to the JSON backend
  augur config set history-backend json`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		key, value := args[0], args[1]
		if !settableKeys[key] {
			contract.LogFatal("Failed to set config", fmt.Errorf("unknown config key %q", key))
		}
		if key == "history-backend" {
			if _, ok := schema.ValidDatabaseBackends[schema.DatabaseBackend(value)]; !ok {
				contract.LogFatal("Failed to set config", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, json, none", value))
			}
		}

		path, err := configFilePath()
		if err != nil {
			contract.LogFatal("Failed to set config", err)
		}

		// A fresh viper keeps defaults and flag bindings out of the file.
		v := viper.New()
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			contract.LogFatal("Failed to read config file", err)
		}
		v.Set(key, value)
		if err := v.WriteConfigAs(path); err != nil {
			contract.LogFatal("Failed to write config file", err)
		}
		fmt.Printf("Set %s in %s\n", key, path)
	},
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/augur-cli/augur/internal/contract"
	"github.com/augur-cli/augur/internal/tmplstore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tmplStore is the template store opened by templateSetup.
var tmplStore *tmplstore.Store

// templateSetup loads minimal configuration needed for template operations.
// This is used by commands that need template access without full shared setup.
func templateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	dir := viper.GetString("templates-dir")
	if dir == "" {
		dir = contract.GetTemplatesDirPath()
	}

	store, err := tmplstore.NewStore(dir)
	if err != nil {
		return fmt.Errorf("failed to open template store: %w", err)
	}
	if _, err := store.EnsureDefaults(); err != nil {
		return fmt.Errorf("failed to install built-in templates: %w", err)
	}

	tmplStore = store
	cfg.TemplatesDir = dir

	return nil
}

// templateSetupWrapper wraps templateSetup to provide PreRunE for template commands.
func templateSetupWrapper(_ *cobra.Command, _ []string) error {
	return templateSetup()
}

// templateCmd focused on prompt template management.
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage oracle prompt templates",
	Long: `Manage the Markdown prompt templates used by the oracle command.

Templates live as .md files in a single directory (~/.augur/templates by
default, overridable with --templates-dir). Placeholders use {variable}
markers; the oracle command fills {question} from its argument and the
rest from --variables.

Built-in templates (fortune, decision) are installed on first use and
never overwritten.

Subcommands:
  create - Add a new template (inline or from a file)
  list   - Show all template names
  show   - Print a template and its placeholders
  delete - Remove a template

Examples:
  # See what is available
  augur template list

  # Inspect a template before using it
  augur template show fortune`,
}

// templateCreateCmd adds a new template to the store.
var templateCreateCmd = &cobra.Command{
	Use:   "create <name> [content]",
	Short: "Add a new prompt template",
	Long: `Create a template from inline content or from a file.

The name must match ^[a-zA-Z0-9_-]+$ and becomes <name>.md in the
templates directory. Content comes from the second argument or from
--file. Existing templates are only replaced with --force.

Examples:
  # Inline content
  augur template create greeting "Predict the mood of {name} today."

  # From a file
  augur template create tarot --file ./tarot-prompt.md

  # Replace an existing template
  augur template create fortune --file ./fortune-v2.md --force`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: templateSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		name := args[0]

		var content string
		if file := viper.GetString("file"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				contract.LogFatal("Failed to read template file", err)
			}
			content = string(data)
		} else if len(args) == 2 {
			content = args[1]
		} else {
			contract.LogFatal("Failed to create template", fmt.Errorf("provide template content inline or via --file"))
		}

		if err := tmplStore.Create(name, content, viper.GetBool("force")); err != nil {
			contract.LogFatal("Failed to create template", err)
		}
		fmt.Printf("Template %q created in %s\n", name, tmplStore.Dir())
	},
}

// templateListCmd lists all template names.
var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all template names",
	Long: `List every template in the templates directory, sorted by name.

Examples:
  # List templates in the default directory
  augur template list

  # List templates in a project-local directory
  augur template list --templates-dir ./prompts`,
	PreRunE: templateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		names, err := tmplStore.List()
		if err != nil {
			contract.LogFatal("Failed to list templates", err)
		}
		if len(names) == 0 {
			fmt.Println("No templates found.")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

// templateShowCmd prints one template.
var templateShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a template and its placeholders",
	Long: `Print the raw content of a template plus the placeholders it expects.

Examples:
  # Inspect the built-in fortune template
  augur template show fortune`,
	Args:    cobra.ExactArgs(1),
	PreRunE: templateSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		content, err := tmplStore.Load(args[0])
		if err != nil {
			contract.LogFatal("Failed to load template", err)
		}
		fmt.Print(content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Println()
		}
		if variables := tmplstore.Variables(content); len(variables) > 0 {
			fmt.Printf("\nPlaceholders: %s\n", strings.Join(variables, ", "))
		}
	},
}

// templateDeleteCmd removes a template.
var templateDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a template",
	Long: `Delete a template file from the templates directory.

Built-in templates are reinstalled on the next template or oracle run,
so deleting fortune or decision effectively resets them.

Examples:
  # Remove a custom template
  augur template delete greeting`,
	Args:    cobra.ExactArgs(1),
	PreRunE: templateSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := tmplStore.Delete(args[0]); err != nil {
			contract.LogFatal("Failed to delete template", err)
		}
		fmt.Printf("Template %q deleted.\n", args[0])
	},
}

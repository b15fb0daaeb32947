package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/carte/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card table file",
	Long: `Validate checks that a card table file is well formed: required header
fields, unique card IDs, known ranks and suits, and defeats relations that
point at other cards of the same table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tablePath := args[0]
		out := cmd.OutOrStdout()

		v := validator.NewValidator(tablePath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Table '%s' is valid.\n", tablePath)
		} else {
			fmt.Fprintf(out, "❌ Table '%s' has %d validation errors:\n", tablePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

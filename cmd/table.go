package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/carte/internal/config"
	"github.com/arcanaland/carte/internal/table"
)

// tableCmd represents the table command group
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage card tables in your table library",
	Long:  `Commands for managing card tables in your table library.`,
}

// tableListCmd represents the table list command
var tableListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available tables in your table library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetTableLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Table library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'carte table init' to create it.")
			return nil
		}

		defaultTable, err := config.GetDefaultTable()
		if err != nil {
			return fmt.Errorf("error getting default table: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading table library: %w", err)
		}

		listed := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			t, err := table.LoadTable(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid table, skip
				slog.Debug("skipping table", "file", entry.Name(), "error", err)
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".toml")
			if name == defaultTable {
				fmt.Fprintf(out, "* %s (%s, %d cards) [DEFAULT]\n", name, t.Name, len(t.Cards))
			} else {
				fmt.Fprintf(out, "  %s (%s, %d cards)\n", name, t.Name, len(t.Cards))
			}
			listed++
		}

		if listed == 0 {
			fmt.Fprintln(out, "No tables found in your table library.")
			fmt.Fprintln(out, "You can add tables by copying them to:", libraryPath)
		}
		return nil
	},
}

// tableSetDefaultCmd represents the table set-default command
var tableSetDefaultCmd = &cobra.Command{
	Use:   "set-default [table_name]",
	Short: "Set the default table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]

		tablePath, err := config.GetTablePath(tableName)
		if err != nil {
			return err
		}

		// Load the table to make sure it's valid
		if _, err := table.LoadTable(tablePath); err != nil {
			return fmt.Errorf("not a valid table: %w", err)
		}

		if err := config.SetDefaultTable(tableName); err != nil {
			return fmt.Errorf("error setting default table: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default table set to: %s\n", tableName)
		return nil
	},
}

// tableInitCmd represents the table init command
var tableInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the table library with the demo table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetTableLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating table library: %w", err)
		}
		fmt.Fprintln(out, "Table library initialized at:", libraryPath)

		demoPath := filepath.Join(libraryPath, "demo.toml")
		if _, err := os.Stat(demoPath); os.IsNotExist(err) {
			if err := os.WriteFile(demoPath, []byte(table.DemoTOML), 0644); err != nil {
				return fmt.Errorf("error writing demo table: %w", err)
			}
			fmt.Fprintln(out, "Demo table written to:", demoPath)
		}

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tableCmd)
	tableCmd.AddCommand(tableListCmd)
	tableCmd.AddCommand(tableSetDefaultCmd)
	tableCmd.AddCommand(tableInitCmd)
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/carte/internal/config"
)

var (
	flagDebug bool
	flagColor string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "carte",
	Short: "Query playing cards by attribute and by the cards they defeat",
	Long: `Carte loads tables of playing cards, each card carrying a rank, a suit,
an optional score and the list of cards it defeats, and answers queries
over them: cards of a rank, of a suit, with a score, or able to defeat a
given card.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)
		return setupColor(cmd)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging on stderr")
	RootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "colour output: auto, always or never (default from config)")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// setupColor resolves the colour mode from --color, falling back to the
// config file, and applies it to fatih/color.
func setupColor(cmd *cobra.Command) error {
	mode := flagColor
	if mode == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			slog.Warn("config unavailable, using auto colour", "error", err)
			mode = config.ColorAuto
		} else {
			mode = cfg.Color
		}
	}

	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	case config.ColorAuto:
		color.NoColor = !isTerminal(cmd)
	default:
		return fmt.Errorf("invalid --color %q (expected auto, always or never)", mode)
	}
	slog.Debug("colour mode", "mode", mode, "enabled", !color.NoColor)
	return nil
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

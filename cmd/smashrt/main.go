package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"smashrt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "smashrt",
	Short: "SmashLang runtime support library toolbox",
	Long:  `smashrt exposes the SmashLang runtime library from the command line: the regex engine, the mock fetch adapter and value snapshots`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, then executes the root command.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(regexCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		configureColor(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func configureColor(cmd *cobra.Command) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

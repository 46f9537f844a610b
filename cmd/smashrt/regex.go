package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smashrt/internal/regex"
)

var regexFlags string

func init() {
	regexCmd.PersistentFlags().StringVar(&regexFlags, "flags", "", "regex flags (i, g)")
	regexCmd.AddCommand(regexTestCmd)
	regexCmd.AddCommand(regexMatchCmd)
	regexCmd.AddCommand(regexReplaceCmd)
}

var regexCmd = &cobra.Command{
	Use:   "regex",
	Short: "Run the runtime's regex engine against a text",
}

var regexTestCmd = &cobra.Command{
	Use:   "test PATTERN TEXT",
	Short: "Report whether the pattern matches anywhere in the text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		re := regex.New(args[0], regexFlags)
		fmt.Fprintln(cmd.OutOrStdout(), re.Test(args[1]))
		return nil
	},
}

var regexMatchCmd = &cobra.Command{
	Use:   "match PATTERN TEXT",
	Short: "Print the matches as a bracketed list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		re := regex.New(args[0], regexFlags)
		fmt.Fprintln(cmd.OutOrStdout(), re.Match(args[1]))
		return nil
	},
}

var regexReplaceCmd = &cobra.Command{
	Use:   "replace PATTERN TEXT REPLACEMENT",
	Short: "Print the text with matches replaced",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		re := regex.New(args[0], regexFlags)
		fmt.Fprintln(cmd.OutOrStdout(), re.Replace(args[1], args[2]))
		return nil
	},
}

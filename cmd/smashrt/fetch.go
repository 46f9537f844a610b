package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"smashrt/internal/config"
	"smashrt/internal/rt"
)

var (
	fetchMethod string
	fetchBody   string
	fetchOut    string
)

func init() {
	fetchCmd.Flags().StringVar(&fetchMethod, "method", "GET", "request method")
	fetchCmd.Flags().StringVar(&fetchBody, "body", "", "request body")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "write the response value to a snapshot file")
}

var fetchCmd = &cobra.Command{
	Use:   "fetch URL",
	Short: "Run the runtime's mock fetch adapter against a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Discover(".")
		if err != nil {
			return err
		}
		runtime := rt.New(cfg)
		defer runtime.Close()

		options := rt.MakeObject()
		rt.ObjectSet(options, "method", rt.MakeString(fetchMethod))
		if fetchBody != "" {
			rt.ObjectSet(options, "body", rt.MakeString(fetchBody))
		}

		resp, state := runtime.Fetch(args[0], options).Wait()
		if state == rt.PromiseRejected {
			msg := rt.ObjectGet(resp, "message")
			return fmt.Errorf("fetch rejected: %s", rt.ToString(msg))
		}

		status := rt.ObjectGet(resp, "status")
		statusText := rt.ObjectGet(resp, "statusText")
		statusColor := color.New(color.FgGreen)
		if status.Kind == rt.VKNumber && status.Num >= 400 {
			statusColor = color.New(color.FgRed)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			statusColor.Sprint(rt.ToString(status)), rt.ToString(statusText))
		fmt.Fprintln(cmd.OutOrStdout(), rt.ToString(rt.ResponseText(resp)))

		if fetchOut != "" {
			data, err := rt.EncodeValue(resp)
			if err != nil {
				return fmt.Errorf("failed to snapshot response: %w", err)
			}
			if err := os.WriteFile(fetchOut, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %q: %w", fetchOut, err)
			}
		}
		return nil
	},
}

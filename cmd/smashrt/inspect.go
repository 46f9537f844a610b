package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smashrt/internal/rt"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Print a value snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", args[0], err)
		}
		v, err := rt.DecodeValue(data)
		if err != nil {
			return err
		}
		rt.Print(cmd.OutOrStdout(), v)
		if v.Kind == rt.VKObject {
			keys := rt.ObjectKeys(v)
			for i := 0; i < rt.ArrayLength(keys); i++ {
				key := rt.ArrayGet(keys, i)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n",
					rt.ToString(key), rt.ToString(rt.ObjectGet(v, key.Str)))
			}
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

// envCmd dumps the process environment, a debugging aid for checking what
// a spawned session actually inherited.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Dump the process environment.",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		env := os.Environ()
		sort.Strings(env)
		for _, kv := range env {
			fmt.Fprintln(cmd.OutOrStdout(), kv)
		}
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

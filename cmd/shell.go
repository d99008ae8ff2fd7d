package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ibis-os/userland/core/proc"
	"github.com/ibis-os/userland/core/shell"
)

// shellCmd runs one interpreter session on the process's stdio. Installing
// the binary as /ibish (multi-call dispatch in main) runs this directly.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the ibish command interpreter.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sh, err := shell.New(cfg, &proc.ExecSpawner{}, os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		return sh.Run()
	},
}

// ExecuteShell runs the shell command, for the ibish multi-call name.
func ExecuteShell() {
	rootCmd.SetArgs(append([]string{"shell"}, os.Args[1:]...))
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibis-os/userland/core/boot"
	"github.com/ibis-os/userland/core/proc"
	"github.com/ibis-os/userland/core/sys"
)

var bootReboot bool

// bootCmd runs the lifecycle supervisor. It is what the kernel should be
// pointed at as init.
var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Run the PID-1 lifecycle supervisor.",
	Long: `Run the lifecycle supervisor. It must be the first process the kernel
starts: it isolates itself from signals, prints the boot banner, keeps a
shell running and shuts the system down when the shell exits.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if bootReboot {
			cfg.RebootMode = "reboot"
		}

		supervisor := &boot.Supervisor{
			Sys:     sys.New(),
			Spawner: &proc.ExecSpawner{},
			Config:  cfg,
			Version: version,
			Stdin:   os.Stdin,
			Out:     cmd.OutOrStdout(),
			Log:     log.New(cmd.ErrOrStderr(), "init: ", 0),
		}
		return supervisor.Run()
	},
}

func init() {
	bootCmd.Flags().BoolVar(&bootReboot, "reboot", false, "restart instead of powering off after the shell exits")
	rootCmd.AddCommand(bootCmd)
}

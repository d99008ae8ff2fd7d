package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ibis-os/userland/core/banner"
)

// bannerCmd prints the boot banner without booting, to preview logo
// overrides.
var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Print the boot banner.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		banner.Fprint(cmd.OutOrStdout(), afero.NewOsFs(), cfg.LogoPath, version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bannerCmd)
}

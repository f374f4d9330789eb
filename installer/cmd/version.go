package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kraken-plugins/kraken-launcher/version"
)

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "prints the installer version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.Version())
		},
	}
)

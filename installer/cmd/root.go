package cmd

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envVarPrefix = "KRAKEN_"

var (
	logLevel   string
	logFile    string
	installDir string
	noGUI      bool

	rootCmd = &cobra.Command{
		Use:          "kraken-installer",
		Short:        "installs the Kraken launcher into a RuneLite installation",
		SilenceUsage: true,
		RunE:         runInstall,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "sets the installer log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "console", "sets the installer log path. If console is specified the log will be output to stdout")
	rootCmd.PersistentFlags().StringVar(&installDir, "install-dir", "", "overrides the resolved RuneLite directory (testing and unusual setups)")
	rootCmd.PersistentFlags().BoolVar(&noGUI, "no-gui", false, "report the outcome on the console instead of showing a dialog")

	rootCmd.AddCommand(versionCmd)
}

// SetFlagsFromEnvVars reads KRAKEN_-prefixed environment variables and applies
// them to any flag that was not set on the command line.
func SetFlagsFromEnvVars(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.VisitAll(func(f *pflag.Flag) {
		envVar := FlagNameToEnvVar(f.Name, envVarPrefix)

		if value, present := os.LookupEnv(envVar); present {
			err := flags.Set(f.Name, value)
			if err != nil {
				log.Infof("unable to configure flag %s using variable %s, err: %v", f.Name, envVar, err)
			}
		}
	})
}

// FlagNameToEnvVar converts flag name to environment var name adding a prefix,
// replacing dashes and making all uppercase (e.g. install-dir is converted to
// KRAKEN_INSTALL_DIR according to the input prefix)
func FlagNameToEnvVar(cmdFlag string, prefix string) string {
	parsed := strings.ReplaceAll(cmdFlag, "-", "_")
	upper := strings.ToUpper(parsed)
	return prefix + upper
}

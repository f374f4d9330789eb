package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraken-plugins/kraken-launcher/version"
)

func TestFlagNameToEnvVar(t *testing.T) {
	assert.Equal(t, "KRAKEN_INSTALL_DIR", FlagNameToEnvVar("install-dir", envVarPrefix))
	assert.Equal(t, "KRAKEN_LOG_LEVEL", FlagNameToEnvVar("log-level", envVarPrefix))
}

func TestSetFlagsFromEnvVars(t *testing.T) {
	var dir, level string
	var gui bool

	cmd := &cobra.Command{
		Use:          "kraken-installer",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			SetFlagsFromEnvVars(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&dir, "install-dir", "", "")
	cmd.PersistentFlags().StringVar(&level, "log-level", "info", "")
	cmd.PersistentFlags().BoolVar(&gui, "no-gui", false, "")

	t.Setenv("KRAKEN_INSTALL_DIR", "/tmp/RuneLite")
	t.Setenv("KRAKEN_NO_GUI", "true")

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "/tmp/RuneLite", dir)
	assert.Equal(t, "info", level)
	assert.True(t, gui)
}

func TestVersionCommand(t *testing.T) {
	out := new(bytes.Buffer)
	rootCmd.SetArgs([]string{"version"})
	rootCmd.SetOut(out)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), version.Version())
}

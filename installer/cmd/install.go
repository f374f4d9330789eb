package cmd

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kraken-plugins/kraken-launcher/installer/ui"
	"github.com/kraken-plugins/kraken-launcher/internal/install"
	"github.com/kraken-plugins/kraken-launcher/util"
	"github.com/kraken-plugins/kraken-launcher/version"
)

const successMessage = "Kraken Launcher installed successfully!\n\nYou can now launch RuneLite normally."

// runInstall is the whole installer: one synchronous pass through resolve,
// place-artifact and config rewrite, with every failure funneled into a single
// error dialog. Handled errors still exit the process with status 0; the
// dialog is the only error channel a double-clicking user sees.
func runInstall(cmd *cobra.Command, args []string) error {
	SetFlagsFromEnvVars(rootCmd)

	if err := util.InitLog(logLevel, logFile); err != nil {
		log.Errorf("failed initializing log %v", err)
		return err
	}

	go version.CheckLatest()

	executable, err := os.Executable()
	if err != nil {
		reportError(fmt.Errorf("locate running executable: %w", err))
		return nil
	}

	result, err := install.Run(cmd.Context(), install.Options{
		GOOS:       runtime.GOOS,
		Getenv:     os.Getenv,
		Executable: executable,
		InstallDir: installDir,
	})
	if err != nil {
		reportError(err)
		return nil
	}

	log.Infof("kraken launcher %s installed into %s, you may close this window", result.JarName, result.InstallDir)
	if noGUI {
		cmd.Println(successMessage)
		return nil
	}
	ui.ShowSuccess(successMessage)
	return nil
}

func reportError(err error) {
	log.Errorf("failed to install the kraken launcher: %v", err)
	if noGUI {
		fmt.Fprintf(os.Stderr, "Installation failed: %v\n", err)
		return
	}
	ui.ShowError(fmt.Sprintf("Installation failed: %v\nStack Trace:\n%s", err, debug.Stack()))
}

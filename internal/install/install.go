// Package install places the Kraken launcher jar into a RuneLite installation
// and rewrites RuneLite's config.json so its bootstrap loads the launcher on
// next start. The whole operation runs once, synchronously, with no retries
// and no rollback of partial side effects.
package install

import (
	"context"
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
)

// Options carries everything Run needs from the process environment, injected
// so OS/env combinations can be simulated in tests.
type Options struct {
	GOOS       string
	Getenv     func(string) string
	Executable string // path of the running installer binary

	// InstallDir overrides the resolved RuneLite directory when non-empty.
	InstallDir string

	// DownloadURL overrides the artifact endpoint when non-empty.
	DownloadURL string

	HTTPClient *http.Client
}

// Result describes a completed install.
type Result struct {
	InstallDir string
	JarName    string
	Mode       Mode
}

// Run performs the install: resolve the RuneLite directory, place the launcher
// artifact (download or self-copy depending on invocation mode), and rewrite
// config.json. Errors wrap the sentinel taxonomy in paths.go; the unsupported-OS
// and host-not-installed paths are guaranteed to touch nothing on disk.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log.Infof("starting kraken installation")

	installDir := opts.InstallDir
	if installDir == "" {
		dir, err := ResolveInstallDir(opts.GOOS, opts.Getenv)
		if err != nil {
			return nil, err
		}
		installDir = dir
	}

	if fi, err := os.Stat(installDir); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w at %s: please install RuneLite first", ErrHostNotInstalled, installDir)
	}

	mode := DetectMode(opts.Executable)
	log.Infof("resolved runelite directory %s, invocation mode %s", installDir, mode)

	downloadURL := opts.DownloadURL
	if downloadURL == "" {
		downloadURL = artifactURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = newArtifactClient()
	}

	jarName, err := placeArtifact(ctx, mode, opts.Executable, installDir, downloadURL, client)
	if err != nil {
		return nil, err
	}

	if err := rewriteConfig(installDir, jarName); err != nil {
		return nil, err
	}

	log.Infof("kraken launcher installation completed successfully")
	return &Result{InstallDir: installDir, JarName: jarName, Mode: mode}, nil
}

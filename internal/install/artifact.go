package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kraken-plugins/kraken-launcher/util"
)

const (
	setupArtifactName  = "KrakenSetup.jar"
	artifactURL        = "https://minio.kraken-plugins.com/kraken-bootstrap-static/" + setupArtifactName
	artifactHTTPTimeout = 2 * time.Minute
)

// Mode says how the installer was invoked, derived from the running
// executable's file extension.
type Mode int

const (
	// ModeDownload is the native-executable invocation: the launcher jar is
	// fetched from the object store.
	ModeDownload Mode = iota
	// ModeSelfCopy is the jar invocation: the running artifact copies itself
	// into the install directory.
	ModeSelfCopy
)

func (m Mode) String() string {
	if m == ModeSelfCopy {
		return "self-copy"
	}
	return "download"
}

// DetectMode inspects the running executable's file name. Only a ".jar"
// extension selects self-copy; everything else (.exe, extension-less) downloads.
func DetectMode(executable string) Mode {
	if strings.EqualFold(filepath.Ext(executable), ".jar") {
		return ModeSelfCopy
	}
	return ModeDownload
}

func newArtifactClient() *http.Client {
	return &http.Client{
		Timeout: artifactHTTPTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("too many redirects")
			}
			if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
				return fmt.Errorf("redirect to disallowed scheme: %s", req.URL.Scheme)
			}
			return nil
		},
	}
}

// placeArtifact puts the launcher jar into the install directory and returns
// its file name. Existing files are overwritten. There are no retries: any
// network or I/O failure aborts the install.
func placeArtifact(ctx context.Context, mode Mode, executable, installDir, downloadURL string, client *http.Client) (string, error) {
	switch mode {
	case ModeSelfCopy:
		jarName := filepath.Base(executable)
		targetJar := filepath.Join(installDir, jarName)

		if filepath.Clean(executable) == filepath.Clean(targetJar) {
			log.Infof("running from the runelite directory already, skipping copy of %s", jarName)
			return jarName, nil
		}

		log.Infof("running as jar file, copying self to runelite directory")
		if err := util.CopyFileContents(executable, targetJar); err != nil {
			return "", fmt.Errorf("copy %s to %s: %w", executable, targetJar, err)
		}
		return jarName, nil

	default:
		targetJar := filepath.Join(installDir, setupArtifactName)
		log.Infof("running as native executable, fetching jar from %s", downloadURL)

		if err := downloadArtifact(ctx, client, downloadURL, targetJar); err != nil {
			return "", err
		}

		log.Infof("successfully copied %s into %s", setupArtifactName, targetJar)
		return setupArtifactName, nil
	}
}

func downloadArtifact(ctx context.Context, client *http.Client, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	return out.Sync()
}

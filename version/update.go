package version

import (
	"io"
	"net/http"
	"time"

	goversion "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
)

const (
	versionURL   = "https://minio.kraken-plugins.com/kraken-bootstrap-static/version"
	fetchTimeout = 10 * time.Second
)

// CheckLatest fetches the latest published installer version and logs an
// advisory when this build is older. The check is best effort: any failure is
// logged and swallowed, and the result never affects the install itself.
func CheckLatest() {
	current, err := goversion.NewVersion(version)
	if err != nil {
		current, _ = goversion.NewVersion("0.0.0")
	}

	latest, ok := fetchVersion()
	if !ok {
		return
	}

	if latest.GreaterThan(current) {
		log.Warnf("a newer installer version %s is available (running %s)", latest, current)
	}
}

func fetchVersion() (*goversion.Version, bool) {
	client := &http.Client{Timeout: fetchTimeout}

	resp, err := client.Get(versionURL)
	if err != nil {
		log.Errorf("failed to fetch version info: %s", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("invalid status code: %d", resp.StatusCode)
		return nil, false
	}

	if resp.ContentLength > 100 {
		log.Errorf("too large response: %d", resp.ContentLength)
		return nil, false
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, 100))
	if err != nil {
		log.Errorf("failed to read content: %s", err)
		return nil, false
	}

	latest, err := goversion.NewVersion(string(content))
	if err != nil {
		log.Errorf("failed to parse the version string: %s", err)
		return nil, false
	}

	return latest, true
}

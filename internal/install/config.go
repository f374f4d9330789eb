package install

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/kraken-plugins/kraken-launcher/util"
)

const (
	configFileName = "config.json"

	// LauncherMainClass is the entry point RuneLite's bootstrap will load
	// instead of its own once the config rewrite lands.
	LauncherMainClass = "com.kraken.launcher.Launcher"

	// HostArtifactName is RuneLite's own jar, which must stay first on the
	// rewritten classpath.
	HostArtifactName = "RuneLite.jar"
)

// rewriteConfig points the host's config.json at the Kraken launcher: mainClass
// is overwritten and classPath is replaced wholesale with the host jar plus the
// freshly installed artifact. Every other top-level key round-trips untouched.
// The read-modify-write is not transactional; RuneLite owns the file and a
// concurrently running client races this rewrite unguarded.
func rewriteConfig(installDir, jarName string) error {
	configFile := filepath.Join(installDir, configFileName)
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigMissing, configFile)
		}
		return fmt.Errorf("stat %s: %w", configFile, err)
	}

	log.Infof("updating config.json to use the kraken launcher")

	tree, err := util.ReadJsonTree(configFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", configFile, err)
	}

	tree["mainClass"] = LauncherMainClass
	tree["classPath"] = []any{HostArtifactName, jarName}

	if err := util.WriteJsonTree(configFile, tree); err != nil {
		return fmt.Errorf("write %s: %w", configFile, err)
	}

	log.Infof("config.json updated successfully")
	return nil
}

package install

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	hostDirName      = "RuneLite"
	darwinInstallDir = "/Applications/RuneLite.app/Contents/Resources"
)

var (
	// ErrUnsupportedOS is returned on any platform other than Windows and macOS.
	ErrUnsupportedOS = errors.New("this installer is designed for Windows and macOS only")
	// ErrHostNotInstalled is returned when the resolved RuneLite directory does not exist.
	ErrHostNotInstalled = errors.New("runelite installation not found")
	// ErrConfigMissing is returned when the RuneLite directory exists but holds no config.json.
	ErrConfigMissing = errors.New("config.json not found in runelite directory")
)

// ResolveInstallDir resolves the RuneLite installation directory for the given
// platform. It is a pure function of the OS family and the environment so the
// supported combinations can be exercised in tests without build tags.
func ResolveInstallDir(goos string, getenv func(string) string) (string, error) {
	switch goos {
	case "windows":
		localAppData := getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", fmt.Errorf("%w: LOCALAPPDATA is not set", ErrHostNotInstalled)
		}
		return filepath.Join(localAppData, hostDirName), nil
	case "darwin":
		return darwinInstallDir, nil
	default:
		return "", ErrUnsupportedOS
	}
}

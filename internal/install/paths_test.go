package install

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInstallDir(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(key string) string { return vars[key] }
	}

	tests := []struct {
		name    string
		goos    string
		vars    map[string]string
		want    string
		wantErr error
	}{
		{
			name: "windows",
			goos: "windows",
			vars: map[string]string{"LOCALAPPDATA": filepath.Join("C:", "Users", "t", "AppData", "Local")},
			want: filepath.Join("C:", "Users", "t", "AppData", "Local", "RuneLite"),
		},
		{
			name:    "windows without LOCALAPPDATA",
			goos:    "windows",
			vars:    map[string]string{},
			wantErr: ErrHostNotInstalled,
		},
		{
			name: "darwin",
			goos: "darwin",
			vars: map[string]string{},
			want: "/Applications/RuneLite.app/Contents/Resources",
		},
		{
			name:    "linux is unsupported",
			goos:    "linux",
			vars:    map[string]string{},
			wantErr: ErrUnsupportedOS,
		},
		{
			name:    "unknown goos is unsupported",
			goos:    "plan9",
			vars:    map[string]string{},
			wantErr: ErrUnsupportedOS,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, err := ResolveInstallDir(tc.goos, env(tc.vars))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, dir)
		})
	}
}

func TestDetectMode(t *testing.T) {
	assert.Equal(t, ModeSelfCopy, DetectMode("/tmp/KrakenSetup.jar"))
	assert.Equal(t, ModeSelfCopy, DetectMode(`C:\Downloads\KrakenSetup.JAR`))
	assert.Equal(t, ModeDownload, DetectMode(`C:\Downloads\KrakenSetup.exe`))
	assert.Equal(t, ModeDownload, DetectMode("/usr/local/bin/kraken-installer"))
}

package version

// set through ldflags at release build time
var version = "development"

// Version returns the installer build version.
func Version() string {
	return version
}

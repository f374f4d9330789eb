package watcher

// Plugin is the host's opaque handle for a loaded plugin instance. The host
// owns it; this package only observes and toggles its active flag through the
// PluginManager.
type Plugin any

// PluginManager is the slice of the host's plugin-manager API this package
// drives. All calls must happen on the host's UI event thread; the Dispatcher
// is the only sanctioned way to get there.
type PluginManager interface {
	LoadPlugins(classes []string) ([]Plugin, error)
	IsPluginActive(p Plugin) bool
	StopPlugin(p Plugin) error
	SetPluginEnabled(p Plugin, enabled bool)
	StartPlugin(p Plugin) error
}

// SplashScreen reports whether the host's startup window is still showing.
type SplashScreen interface {
	IsOpen() bool
}

// EventBus is the host's subscriber registry. The watcher registers itself and
// nothing more.
type EventBus interface {
	Register(subscriber any)
}

// Dispatcher marshals a function onto the host's single UI event thread.
// Dispatch is fire-and-forget: the caller gets no completion signal, only logs.
type Dispatcher interface {
	InvokeLater(fn func())
}

// AssertionError is the distinct failure category raised when the host's own
// sanity checks trip, typically a sign of invalid profile state rather than a
// fault in the plugin being started.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return e.Msg
}

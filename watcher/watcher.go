// Package watcher defers Kraken plugin activation until the host client has
// finished starting up. It polls the host's splash screen from a background
// goroutine and, once the splash closes, drives the plugin lifecycle exactly
// once on the host's UI event thread.
package watcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// DefaultPollInterval is how often the splash screen is re-checked.
const DefaultPollInterval = 2 * time.Second

var errSplashStillOpen = errors.New("splash screen still open")

// Watcher waits for the host's splash screen to close and then loads, enables
// and starts a single plugin class through the host's plugin manager. One shot;
// it cannot be re-armed.
type Watcher struct {
	bus           EventBus
	pluginManager PluginManager
	splash        SplashScreen
	dispatcher    Dispatcher
	pollInterval  time.Duration

	startOnce sync.Once
}

// Option tweaks a Watcher.
type Option func(*Watcher)

// WithPollInterval overrides the splash poll interval.
func WithPollInterval(interval time.Duration) Option {
	return func(w *Watcher) {
		if interval > 0 {
			w.pollInterval = interval
		}
	}
}

// New builds a Watcher around the injected host surface.
func New(bus EventBus, pluginManager PluginManager, splash SplashScreen, dispatcher Dispatcher, opts ...Option) *Watcher {
	if bus == nil || pluginManager == nil {
		log.Errorf("event bus or plugin manager instance is nil, cannot load the kraken loader plugin")
	}

	w := &Watcher{
		bus:           bus,
		pluginManager: pluginManager,
		splash:        splash,
		dispatcher:    dispatcher,
		pollInterval:  DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start registers on the host event bus and spawns the splash poll loop for
// the given plugin class. The host exposes no shutdown hook for this wait, so
// ctx is the only cancellation lever; context.Background() reproduces the
// unbounded wait of the original flow. Calling Start again is a no-op.
func (w *Watcher) Start(ctx context.Context, pluginClass string) {
	w.startOnce.Do(func() {
		w.bus.Register(w)
		log.Infof("starting client watcher for %s", pluginClass)

		go func() {
			if err := w.waitForSplash(ctx); err != nil {
				log.Errorf("client watcher stopped before the splash screen closed: %v", err)
				return
			}

			w.dispatcher.InvokeLater(func() {
				w.activate(pluginClass)
			})
		}()
	})
}

// waitForSplash blocks until the splash screen reports closed. The poll is a
// constant-interval retry with no upper bound.
func (w *Watcher) waitForSplash(ctx context.Context) error {
	check := func() error {
		if w.splash.IsOpen() {
			return errSplashStillOpen
		}
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(w.pollInterval), ctx)
	return backoff.Retry(check, b)
}

// activate runs on the host's UI event thread. The host's config/profile
// subsystem is not thread-safe with respect to plugin lifecycle calls, so the
// whole load/reconcile/start sequence must stay on that thread.
func (w *Watcher) activate(pluginClass string) {
	log.Infof("initializing kraken loader plugin (UI thread): %s", pluginClass)

	if err := w.runLifecycle(pluginClass); err != nil {
		var assertErr *AssertionError
		if errors.As(err, &assertErr) {
			log.Errorf("assertion failure during kraken startup, host profile state may be invalid: %v", err)
			return
		}
		log.Errorf("failed to start kraken loader plugin: %v", err)
	}
}

func (w *Watcher) runLifecycle(pluginClass string) error {
	loaded, err := w.pluginManager.LoadPlugins([]string{pluginClass})
	if err != nil {
		return err
	}
	if len(loaded) == 0 {
		log.Errorf("plugin manager failed to load %s (returned empty list)", pluginClass)
		return nil
	}

	plugin := loaded[0]

	// The host may have auto-started the plugin from stale persisted config.
	// Drive it through an explicit stop so the start below is a clean one.
	if w.pluginManager.IsPluginActive(plugin) {
		log.Warnf("kraken loader was auto-started by the host (zombie state), restarting")
		if err := w.pluginManager.StopPlugin(plugin); err != nil {
			return err
		}
	}

	w.pluginManager.SetPluginEnabled(plugin, true)
	if err := w.pluginManager.StartPlugin(plugin); err != nil {
		return err
	}

	log.Infof("kraken plugin started successfully on the UI thread")
	return nil
}

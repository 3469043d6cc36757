// Package app wires the editor together and runs its event loop.
//
// The Application owns one document, one engine, the dispatcher that
// drives it, the renderer and the terminal backend. All editing happens
// on the goroutine that calls Run. Other goroutines (the config watcher,
// signal handlers) talk to the loop only by posting interrupt events to
// the backend.
package app

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/xi/internal/config"
	"github.com/dshills/xi/internal/config/watcher"
	"github.com/dshills/xi/internal/dispatcher"
	"github.com/dshills/xi/internal/engine"
	"github.com/dshills/xi/internal/engine/buffer"
	"github.com/dshills/xi/internal/renderer"
	"github.com/dshills/xi/internal/renderer/backend"
)

// Application is the central coordinator for the editor's components.
type Application struct {
	opts Options

	config     *config.Config
	configPath string
	logger     *Logger
	logCloser  io.Closer
	session    string

	backend    backend.Backend
	engine     *engine.Engine
	dispatcher *dispatcher.Dispatcher
	renderer   *renderer.Renderer
	watcher    *watcher.Watcher

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses config.DefaultPath.
	ConfigPath string

	// Files are the files named on the command line. The first is edited.
	Files []string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Backend replaces the terminal. Used by tests.
	Backend backend.Backend

	// Logger replaces the configured log file.
	Logger *Logger
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		session: uuid.NewString(),
	}
	if err := app.bootstrap(); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// bootstrap builds the components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config. A broken config file is reported but not fatal.
	app.configPath = app.opts.ConfigPath
	if app.configPath == "" {
		app.configPath = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(app.configPath)
	if cfgErr != nil {
		cfg = config.Default()
		cfg.Path = app.configPath
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	app.config = cfg

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	if cfgErr != nil {
		app.logger.WithComponent("config").Warn("using defaults: %v", cfgErr)
	}

	// 3. Document
	doc, err := app.openDocument()
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}

	// 4. Backend
	app.backend = app.opts.Backend
	if app.backend == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.backend = term
	}

	// 5. Engine and dispatcher
	app.engine = engine.New(doc, engine.WithSizer(app.backend))
	app.dispatcher = dispatcher.New(app.engine, dispatcher.DefaultConfig().WithMetrics())

	// 6. Renderer
	app.renderer = renderer.New(app.backend, app.themeFromConfig(cfg))

	return nil
}

func (app *Application) initLogger() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
	} else {
		logger, closer, err := OpenLogFile(app.config.Log)
		if err != nil {
			return err
		}
		app.logger, app.logCloser = logger, closer
	}
	app.logger = app.logger.WithField("session", app.session)
	return nil
}

func (app *Application) openDocument() (*buffer.Document, error) {
	if len(app.opts.Files) == 0 {
		return buffer.NewDocument(), nil
	}

	path := app.opts.Files[0]
	for _, extra := range app.opts.Files[1:] {
		app.logger.Warn("ignoring extra file %s", extra)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		app.logger.Info("new file %s", path)
	}
	return buffer.Open(path)
}

// themeFromConfig builds the renderer theme, falling back to the default
// theme when a color is invalid.
func (app *Application) themeFromConfig(cfg *config.Config) renderer.Theme {
	theme, err := renderer.NewTheme(renderer.ThemeColors{
		TextFg:      cfg.Theme.TextFg,
		TextBg:      cfg.Theme.TextBg,
		SelectionFg: cfg.Theme.SelectionFg,
		SelectionBg: cfg.Theme.SelectionBg,
	})
	if err != nil {
		app.logger.WithComponent("config").Warn("invalid theme, using default: %v", err)
		return renderer.DefaultTheme()
	}
	return theme
}

// Run initializes the backend and runs the event loop until the user
// quits or a fatal error occurs. A normal quit returns ErrQuit. The
// terminal is restored on every return path.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			perr := &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
			app.logger.Error("%v\n%s", perr, perr.Stack)
			err = perr
		}
	}()

	app.logger.Info("started editing %q", app.engine.Document().Path())
	app.startWatcher()
	defer app.stopWatcher()
	defer app.logMetrics()

	return app.eventLoop()
}

// Shutdown asks a running event loop to stop. It is safe to call from
// any goroutine, and a no-op when the loop is not running.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
}

// Close releases resources held after Run has returned.
func (app *Application) Close() error {
	return app.closeLog()
}

func (app *Application) closeLog() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}

func (app *Application) startWatcher() {
	if !app.config.Editor.WatchConfig {
		return
	}
	log := app.logger.WithComponent("watcher")

	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn("%v", err)
	}))
	if err != nil {
		log.Warn("config watching disabled: %v", err)
		return
	}
	if err := w.Watch(app.configPath); err != nil {
		log.Warn("cannot watch %s: %v", app.configPath, err)
		_ = w.Close()
		return
	}
	w.OnChange(func(ev watcher.Event) {
		log.Debug("%s %s", ev.Op, ev.Path)
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{}})
	})
	app.watcher = w
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.WithComponent("watcher").Warn("close: %v", err)
	}
	app.watcher = nil
}

func (app *Application) logMetrics() {
	m := app.dispatcher.Metrics()
	if m == nil {
		return
	}
	log := app.logger.WithComponent("dispatcher")
	log.Debug("%d dispatches, %d errors, average %v", m.TotalDispatches(), m.TotalErrors(), m.AverageDuration())
	for _, cm := range m.TopCommands(5) {
		log.Debug("%s: %d", cm.Name, cm.DispatchCount)
	}
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Renderer returns the renderer.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Session returns the unique id of this editing session.
func (app *Application) Session() string {
	return app.session
}

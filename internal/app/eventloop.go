package app

import (
	"errors"

	"github.com/dshills/xi/internal/config"
	"github.com/dshills/xi/internal/dispatcher"
	"github.com/dshills/xi/internal/input"
	"github.com/dshills/xi/internal/renderer/backend"
)

// Interrupt payloads posted to the backend from other goroutines.
type (
	quitRequest   struct{}
	reloadRequest struct{}
)

// eventLoop draws, waits for one event, handles it and repeats.
func (app *Application) eventLoop() error {
	for {
		app.renderer.Render(app.engine)

		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
		if !app.engine.Running() {
			return ErrQuit
		}
	}
}

// handleBackendEvent processes one backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.engine.Resize()
		return nil
	case backend.EventInterrupt:
		return app.handleInterrupt(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	default:
		return nil
	}
}

func (app *Application) handleInterrupt(ev backend.Event) error {
	switch ev.Data.(type) {
	case quitRequest:
		app.logger.Info("shutdown requested")
		return ErrQuit
	case reloadRequest:
		app.reloadConfig()
	}
	return nil
}

// handleKeyEvent converts a key event and dispatches it.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	in, ok := convertToInputEvent(ev)
	if !ok {
		app.logger.Debug("unmapped key %d rune %q mod %d", ev.Key, ev.Rune, ev.Mod)
		return nil
	}

	result := app.dispatcher.Dispatch(in)
	switch {
	case result.Fatal():
		err := &OperationError{Op: "dispatch", Target: result.Command.String(), Err: result.Err}
		var perr *dispatcher.PanicError
		if errors.As(result.Err, &perr) {
			app.logger.Error("%v\n%s", err, perr.Stack)
		} else {
			app.logger.Error("%v", err)
		}
		return err
	case result.Status == dispatcher.StatusError:
		app.logger.Warn("%v", &OperationError{Op: result.Command.Name(), Target: app.engine.Document().Path(), Err: result.Err})
	case result.Status == dispatcher.StatusQuit:
		return ErrQuit
	case result.Command.Kind == dispatcher.KindSave:
		app.logger.Info("saved %s", app.engine.Document().Path())
	}
	return nil
}

// reloadConfig re-reads the config file and applies the settings that
// can change at runtime: the theme and the log level.
func (app *Application) reloadConfig() {
	log := app.logger.WithComponent("config")

	cfg, err := config.Load(app.configPath)
	if err != nil {
		log.Warn("reload failed, keeping current settings: %v", &OperationError{Op: "reload", Target: app.configPath, Err: err})
		return
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}

	app.config = cfg
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.renderer.SetTheme(app.themeFromConfig(cfg))
	log.Info("reloaded %s", app.configPath)
}

// convertToInputEvent maps a backend key event onto the editor's input
// alphabet. The second result is false for keys the editor ignores.
func convertToInputEvent(ev backend.Event) (input.Event, bool) {
	mods := convertMod(ev.Mod)

	switch ev.Key {
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
			return input.Event{}, false
		}
		return input.CharEvent(ev.Rune), true
	case backend.KeyTab:
		return input.CharEvent('\t'), true
	case backend.KeyEnter:
		return input.KeyEvent(input.KeyEnter, mods), true
	case backend.KeyBackspace:
		return input.KeyEvent(input.KeyBackspace, mods), true
	case backend.KeyLeft:
		return input.KeyEvent(input.KeyLeft, mods), true
	case backend.KeyRight:
		return input.KeyEvent(input.KeyRight, mods), true
	case backend.KeyUp:
		return input.KeyEvent(input.KeyUp, mods), true
	case backend.KeyDown:
		return input.KeyEvent(input.KeyDown, mods), true
	case backend.KeyCtrlQ:
		return input.KeyEvent(input.KeyQuit, input.ModNone), true
	case backend.KeyCtrlS:
		return input.KeyEvent(input.KeySave, input.ModNone), true
	default:
		return input.Event{}, false
	}
}

func convertMod(m backend.ModMask) input.Modifier {
	mods := input.ModNone
	if m.Has(backend.ModShift) {
		mods = mods.With(input.ModShift)
	}
	if m.Has(backend.ModCtrl) {
		mods = mods.With(input.ModCtrl)
	}
	if m.Has(backend.ModAlt) || m.Has(backend.ModMeta) {
		mods = mods.With(input.ModAlt)
	}
	return mods
}

package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/xi/internal/dispatcher"
	"github.com/dshills/xi/internal/renderer"
	"github.com/dshills/xi/internal/renderer/backend"
	"github.com/dshills/xi/internal/renderer/core"
)

// syncBuffer is a bytes.Buffer safe for the watcher and test goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type testApp struct {
	*Application
	backend *backend.NullBackend
	log     *syncBuffer
}

func newTestApp(t *testing.T, opts Options) *testApp {
	t.Helper()
	nb, _ := opts.Backend.(*backend.NullBackend)
	if opts.Backend == nil {
		nb = backend.NewNullBackend(20, 5)
		opts.Backend = nb
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	}
	log := &syncBuffer{}
	if opts.Logger == nil {
		opts.Logger = NewLogger(LoggerConfig{Level: LogLevelDebug, Output: log, Prefix: "xi"})
	}

	app, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return &testApp{Application: app, backend: nb, log: log}
}

func keys(b backend.Backend, events ...backend.Event) {
	for _, ev := range events {
		b.PostEvent(ev)
	}
}

func key(k backend.Key, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k, Mod: mod}
}

func text(s string) []backend.Event {
	events := make([]backend.Event, 0, len(s))
	for _, r := range s {
		events = append(events, backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r})
	}
	return events
}

var ctrlQ = key(backend.KeyCtrlQ, backend.ModCtrl)

func TestRunTypingSession(t *testing.T) {
	a := newTestApp(t, Options{})

	keys(a.backend, text("hi")...)
	keys(a.backend, key(backend.KeyEnter, backend.ModNone))
	keys(a.backend, text("xyz")...)
	keys(a.backend, key(backend.KeyLeft, backend.ModShift), key(backend.KeyBackspace, backend.ModNone))
	keys(a.backend, ctrlQ)

	if err := a.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}

	if diff := cmp.Diff([]string{"hi", "xy"}, a.Engine().Document().Lines()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
	if got := a.backend.Row(0); !strings.HasPrefix(got, "hi ") {
		t.Errorf("expected first row to show %q, got %q", "hi", got)
	}
	if a.IsRunning() {
		t.Error("IsRunning should be false after Run returns")
	}
	if m := a.Dispatcher().Metrics(); m.TotalDispatches() != 9 {
		t.Errorf("expected 9 dispatches, got %d", m.TotalDispatches())
	}
}

func TestRunSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("abc\r\ndef"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, Options{Files: []string{path}})

	keys(a.backend, key(backend.KeyRight, backend.ModNone))
	keys(a.backend, text("X")...)
	keys(a.backend, key(backend.KeyCtrlS, backend.ModCtrl), ctrlQ)

	if err := a.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "aXbc\ndef\n" {
		t.Errorf("unexpected file content %q", data)
	}
	if !strings.Contains(a.log.String(), "saved "+path) {
		t.Errorf("expected save to be logged, log:\n%s", a.log)
	}
}

func TestRunSaveWithoutPath(t *testing.T) {
	a := newTestApp(t, Options{})

	keys(a.backend, text("a")...)
	keys(a.backend, key(backend.KeyCtrlS, backend.ModCtrl), ctrlQ)

	if err := a.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("save failure must not stop the editor, got %v", err)
	}
	if !strings.Contains(a.log.String(), "[WARN]") {
		t.Errorf("expected a warning for the failed save, log:\n%s", a.log)
	}
}

func TestNewMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	a := newTestApp(t, Options{Files: []string{path, "other.txt"}})

	doc := a.Engine().Document()
	if doc.Path() != path || doc.LineCount() != 1 || doc.LineLen(0) != 0 {
		t.Errorf("expected an empty document for %s, got %q", path, doc.Lines())
	}
	log := a.log.String()
	if !strings.Contains(log, "new file "+path) || !strings.Contains(log, "ignoring extra file other.txt") {
		t.Errorf("unexpected log:\n%s", log)
	}
	if !strings.Contains(log, "session="+a.Session()) {
		t.Errorf("log lines should carry the session id, log:\n%s", log)
	}
}

func TestRunResizeAndIgnoredKeys(t *testing.T) {
	a := newTestApp(t, Options{})

	keys(a.backend, text("abcdef")...)
	a.backend.Resize(3, 2)
	keys(a.backend,
		key(backend.KeyEscape, backend.ModNone),
		backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'z', Mod: backend.ModCtrl},
		ctrlQ,
	)

	if err := a.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if vp := a.Engine().Viewport(); vp.ScrollX != 4 {
		t.Errorf("expected horizontal scroll 4 after resize, got %d", vp.ScrollX)
	}
	if got := a.backend.Row(0); got != "ef " {
		t.Errorf("expected %q, got %q", "ef ", got)
	}
	if diff := cmp.Diff([]string{"abcdef"}, a.Engine().Document().Lines()); diff != "" {
		t.Errorf("ignored keys changed the document (-want +got):\n%s", diff)
	}
}

func TestShutdownFromAnotherGoroutine(t *testing.T) {
	a := newTestApp(t, Options{})

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	deadline := time.Now().Add(5 * time.Second)
	for !a.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("Run never started")
		}
		time.Sleep(time.Millisecond)
	}
	if err := a.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}

	a.Shutdown()
	select {
	case err := <-done:
		if !errors.Is(err, ErrQuit) {
			t.Errorf("expected ErrQuit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after Shutdown")
	}
}

// faultyBackend panics from Size once an event with the arming key has
// been polled.
type faultyBackend struct {
	*backend.NullBackend
	armOn     backend.Key
	armed     atomic.Bool
	shutdowns atomic.Int32
}

func (b *faultyBackend) Size() (int, int) {
	if b.armed.Load() {
		panic("size unavailable")
	}
	return b.NullBackend.Size()
}

func (b *faultyBackend) PollEvent() backend.Event {
	ev := b.NullBackend.PollEvent()
	if ev.Type == backend.EventKey && ev.Key == b.armOn {
		b.armed.Store(true)
	}
	return ev
}

func (b *faultyBackend) Shutdown() {
	b.shutdowns.Add(1)
}

func TestRunFatalDispatch(t *testing.T) {
	fb := &faultyBackend{NullBackend: backend.NewNullBackend(10, 3), armOn: backend.KeyRune}
	a := newTestApp(t, Options{Backend: fb})

	keys(fb, text("x")...)
	keys(fb, ctrlQ)

	err := a.Run()
	if !errors.Is(err, dispatcher.ErrPanic) {
		t.Fatalf("expected a dispatch panic, got %v", err)
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "dispatch" {
		t.Errorf("expected a dispatch OperationError, got %#v", err)
	}
	if fb.shutdowns.Load() != 1 {
		t.Errorf("terminal must be restored once, got %d shutdowns", fb.shutdowns.Load())
	}
	if !strings.Contains(a.log.String(), "[ERROR]") {
		t.Errorf("expected the failure to be logged, log:\n%s", a.log)
	}
}

func TestRunFatalRender(t *testing.T) {
	fb := &faultyBackend{NullBackend: backend.NewNullBackend(10, 3)}
	fb.armed.Store(true)
	a := newTestApp(t, Options{Backend: fb})

	err := a.Run()
	if !errors.Is(err, ErrFatal) {
		t.Fatalf("expected ErrFatal, got %v", err)
	}
	var perr *RecoveredPanicError
	if !errors.As(err, &perr) || perr.Value != "size unavailable" || perr.Stack == "" {
		t.Errorf("unexpected panic error %#v", err)
	}
	if fb.shutdowns.Load() != 1 {
		t.Errorf("terminal must be restored once, got %d shutdowns", fb.shutdowns.Load())
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConfigTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[theme]\ntextFg = \"#ff0000\"\n")
	a := newTestApp(t, Options{ConfigPath: path})

	keys(a.backend, text("a")...)
	keys(a.backend, ctrlQ)
	_ = a.Run()

	if got := a.backend.Cell(0, 0).Style.Foreground; got != core.ColorFromRGB(0xff, 0, 0) {
		t.Errorf("expected red text, got %+v", got)
	}
}

func TestConfigErrorsFallBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
		logged  string
	}{
		{"broken file", "[theme\n", "using defaults"},
		{"bad color", "[theme]\nselectionBg = \"chartreuse-ish\"\n", "invalid theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeConfig(t, path, tt.content)
			a := newTestApp(t, Options{ConfigPath: path})

			if a.Renderer().Theme() != renderer.DefaultTheme() {
				t.Errorf("expected the default theme, got %+v", a.Renderer().Theme())
			}
			if !strings.Contains(a.log.String(), tt.logged) {
				t.Errorf("expected %q in log:\n%s", tt.logged, a.log)
			}
		})
	}
}

func TestLogLevelOption(t *testing.T) {
	a := newTestApp(t, Options{LogLevel: "error"})
	if a.Config().Log.Level != "error" {
		t.Errorf("expected log level override, got %q", a.Config().Log.Level)
	}
}

func TestReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[log]\nlevel = \"debug\"\n")
	a := newTestApp(t, Options{ConfigPath: path})

	writeConfig(t, path, "[log]\nlevel = \"warn\"\n[theme]\nselectionBg = \"#00ff00\"\n")
	keys(a.backend, backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{}}, ctrlQ)
	if err := a.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}

	if got := a.Renderer().Theme().Selection.Background; got != core.ColorFromRGB(0, 0xff, 0) {
		t.Errorf("expected reloaded selection background, got %+v", got)
	}
	if a.Logger().Level() != LogLevelWarn {
		t.Errorf("expected log level warn after reload, got %v", a.Logger().Level())
	}
}

func TestReloadKeepsSettingsOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[theme]\ntextBg = \"#000080\"\n")
	a := newTestApp(t, Options{ConfigPath: path})
	before := a.Renderer().Theme()

	writeConfig(t, path, "[theme\n")
	a.reloadConfig()

	if a.Renderer().Theme() != before {
		t.Error("a failed reload must keep the current theme")
	}
	if !strings.Contains(a.log.String(), "reload failed") {
		t.Errorf("expected reload failure in log:\n%s", a.log)
	}
}

func TestWatchConfigReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[editor]\nwatchConfig = true\n")
	a := newTestApp(t, Options{ConfigPath: path})

	done := make(chan error, 1)
	go func() { done <- a.Run() }()
	defer func() {
		a.Shutdown()
		<-done
	}()

	deadline := time.Now().Add(5 * time.Second)
	for !a.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	// Give the watcher a moment to register before changing the file.
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, "[editor]\nwatchConfig = true\n[theme]\ntextFg = \"#0000ff\"\n")

	want := core.ColorFromRGB(0, 0, 0xff)
	for a.Renderer().Theme().Text.Foreground != want {
		if time.Now().After(deadline) {
			t.Fatalf("theme was not reloaded, log:\n%s", a.log)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestConvertToInputEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
		want string
		ok   bool
	}{
		{"rune", backend.Event{Key: backend.KeyRune, Rune: 'q'}, "q", true},
		{"shifted rune", backend.Event{Key: backend.KeyRune, Rune: 'Q', Mod: backend.ModShift}, "Q", true},
		{"ctrl rune", backend.Event{Key: backend.KeyRune, Rune: 'x', Mod: backend.ModCtrl}, "", false},
		{"alt rune", backend.Event{Key: backend.KeyRune, Rune: 'x', Mod: backend.ModAlt}, "", false},
		{"tab", backend.Event{Key: backend.KeyTab}, "\t", true},
		{"enter", backend.Event{Key: backend.KeyEnter}, "Enter", true},
		{"backspace", backend.Event{Key: backend.KeyBackspace}, "Backspace", true},
		{"shift left", backend.Event{Key: backend.KeyLeft, Mod: backend.ModShift}, "Shift+Left", true},
		{"ctrl right", backend.Event{Key: backend.KeyRight, Mod: backend.ModCtrl}, "Ctrl+Right", true},
		{"meta up", backend.Event{Key: backend.KeyUp, Mod: backend.ModMeta}, "Alt+Up", true},
		{"down", backend.Event{Key: backend.KeyDown}, "Down", true},
		{"ctrl-q", backend.Event{Key: backend.KeyCtrlQ, Mod: backend.ModCtrl}, "Quit", true},
		{"ctrl-s", backend.Event{Key: backend.KeyCtrlS, Mod: backend.ModCtrl}, "Save", true},
		{"escape", backend.Event{Key: backend.KeyEscape}, "", false},
		{"delete", backend.Event{Key: backend.KeyDelete}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertToInputEvent(tt.ev)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.String())
			}
		})
	}
}

package host

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/KJ-GM/responsive-csx/pkg/watcher"
)

// FontScaleEnv is the environment variable consulted for the terminal
// host's accessibility font scale. Terminals have no system font-scale
// API, so the value is user supplied.
const FontScaleEnv = "RSX_FONT_SCALE"

// CellSize maps one terminal cell to logical pixels. The defaults
// approximate a typical monospaced glyph box.
type CellSize struct {
	Width  float64
	Height float64
}

// DefaultCellSize is used when no cell size is configured.
var DefaultCellSize = CellSize{Width: 8, Height: 16}

// TerminalOption configures a Terminal host.
type TerminalOption func(*Terminal)

// WithCellSize sets the cell-to-logical-pixel mapping.
func WithCellSize(cs CellSize) TerminalOption {
	return func(t *Terminal) { t.cell = cs }
}

// WithTerminalFontScale overrides the font scale (otherwise taken from
// the RSX_FONT_SCALE environment variable, defaulting to 1).
func WithTerminalFontScale(fs float64) TerminalOption {
	return func(t *Terminal) { t.scale = fs }
}

// WithPollInterval sets the resize poll interval used on platforms
// without a window-change signal. Zero keeps the default (1s).
func WithPollInterval(d time.Duration) TerminalOption {
	return func(t *Terminal) { t.poll = d }
}

// Terminal is a Host backed by a real terminal. The cell grid reported by
// the tty is converted to logical pixels through a CellSize; pixel density
// is always 1. Resize detection is signal driven on unix and poll based
// elsewhere, debounced so continuous drags coalesce.
type Terminal struct {
	fd    int
	cell  CellSize
	scale float64
	poll  time.Duration

	mu   sync.Mutex
	last Size

	bus      watcher.Broadcast[Event]
	debounce *watcher.Debouncer
	stop     func()
	stopOnce sync.Once
}

// NewTerminal creates a Terminal host for stdout and starts resize
// detection. Close must be called to release it.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	t := &Terminal{
		fd:    int(os.Stdout.Fd()),
		cell:  DefaultCellSize,
		scale: envFontScale(),
		poll:  time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}

	if !term.IsTerminal(t.fd) {
		return nil, fmt.Errorf("stdout is not a terminal")
	}
	sz, err := t.read()
	if err != nil {
		return nil, err
	}
	t.last = sz

	t.debounce = watcher.NewDebouncer(0)
	t.stop = t.watchResize()
	return t, nil
}

// Close stops resize detection. Listeners are not notified after Close.
func (t *Terminal) Close() {
	t.stopOnce.Do(func() {
		t.stop()
		t.debounce.Cancel()
	})
}

// WindowSize implements Host.
func (t *Terminal) WindowSize() Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// ScreenSize implements Host. A terminal window is the whole "screen"
// this host can see.
func (t *Terminal) ScreenSize() Size {
	return t.WindowSize()
}

// PixelDensity implements Host.
func (t *Terminal) PixelDensity() float64 { return 1 }

// FontScale implements Host.
func (t *Terminal) FontScale() float64 { return t.scale }

// Platform implements Host.
func (t *Terminal) Platform() string { return "terminal" }

// Notify implements Host.
func (t *Terminal) Notify(fn func(Event)) (cancel func()) {
	return t.bus.Listen(fn)
}

// read queries the tty and converts cells to logical pixels.
func (t *Terminal) read() (Size, error) {
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return Size{}, fmt.Errorf("query terminal size: %w", err)
	}
	return Size{
		Width:  float64(cols) * t.cell.Width,
		Height: float64(rows) * t.cell.Height,
	}, nil
}

// refresh re-reads the tty and, if the size changed, schedules a debounced
// notification with the latest geometry.
func (t *Terminal) refresh() {
	sz, err := t.read()
	if err != nil {
		return
	}

	t.mu.Lock()
	changed := sz != t.last
	t.last = sz
	t.mu.Unlock()
	if !changed {
		return
	}

	t.debounce.Trigger(func() {
		cur := t.WindowSize()
		t.bus.Send(Event{Window: cur, Screen: cur})
	})
}

func envFontScale() float64 {
	v := os.Getenv(FontScaleEnv)
	if v == "" {
		return 1
	}
	fs, err := strconv.ParseFloat(v, 64)
	if err != nil || fs <= 0 {
		return 1
	}
	return fs
}

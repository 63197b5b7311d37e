package device

import (
	"log/slog"
	"sync"

	"github.com/KJ-GM/responsive-csx/pkg/host"
	"github.com/KJ-GM/responsive-csx/pkg/watcher"
)

// Dimensions is the reactive geometry view handed to UI code that only
// cares about sizes and orientation.
type Dimensions struct {
	Window      host.Size
	Screen      host.Size
	IsLandscape bool
	IsPortrait  bool
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithLogger enables update logging. Monitors log nothing by default.
func WithLogger(l *slog.Logger) MonitorOption {
	return func(m *Monitor) {
		if l != nil {
			m.log = l
		}
	}
}

// Monitor owns a live Metrics snapshot for one host. It recomputes the
// snapshot on every host dimension-change event and on explicit Update
// calls, and broadcasts the new snapshot to subscribers.
//
// A Monitor is an explicitly constructed, injectable object: consumers
// receive a *Monitor (or just its Metrics) rather than sharing module
// state, so tests and multi-window embedders can run several instances
// side by side.
type Monitor struct {
	host host.Host
	log  *slog.Logger

	mu  sync.Mutex
	cur Metrics

	bus       watcher.Broadcast[Metrics]
	stopHost  func()
	closeOnce sync.Once
}

// NewMonitor computes the initial snapshot from the host and subscribes to
// its dimension-change events. Close releases the subscription.
func NewMonitor(h host.Host, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		host: h,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.cur = Compute(h.WindowSize(), h.ScreenSize(), h.PixelDensity(), h.FontScale(), h.Platform())
	m.stopHost = h.Notify(func(ev host.Event) {
		m.Update(&ev.Window, &ev.Screen)
	})
	return m
}

// Close cancels the host subscription. Subscribers receive no further
// snapshots from host events; explicit Update calls still work.
func (m *Monitor) Close() {
	m.closeOnce.Do(m.stopHost)
}

// Metrics returns a copy of the current snapshot.
func (m *Monitor) Metrics() Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// Dimensions returns the current window/screen sizes and orientation.
func (m *Monitor) Dimensions() Dimensions {
	cur := m.Metrics()
	return Dimensions{
		Window:      cur.Window(),
		Screen:      cur.Screen(),
		IsLandscape: cur.IsLandscape,
		IsPortrait:  cur.IsPortrait,
	}
}

// Update recomputes the snapshot. Either size may be nil to keep the prior
// value; pixel density, font scale, and platform are always re-read from
// the host, whose live values are authoritative. Update is idempotent for
// identical inputs and cheap enough to call on every frame of a resize.
func (m *Monitor) Update(window, screen *host.Size) {
	m.mu.Lock()
	w := m.cur.Window()
	s := m.cur.Screen()
	if window != nil {
		w = *window
	}
	if screen != nil {
		s = *screen
	}
	next := Compute(w, s, m.host.PixelDensity(), m.host.FontScale(), m.host.Platform())
	changed := next != m.cur
	m.cur = next
	m.mu.Unlock()

	m.log.Debug("metrics updated",
		"width", next.Width,
		"height", next.Height,
		"category", next.Category(),
		"base_unit", next.BaseUnit,
		"changed", changed)

	m.bus.Send(next)
}

// Subscribe registers fn to receive every new snapshot and returns a
// cancel function. After cancel returns, fn is never invoked again; see
// watcher.Broadcast for the exact guarantee.
func (m *Monitor) Subscribe(fn func(Metrics)) (cancel func()) {
	return m.bus.Listen(fn)
}

// Fixed adapts a literal Metrics value into a provider, for tests and for
// code that scales against a snapshot frozen at a point in time.
type Fixed Metrics

// Metrics returns the fixed snapshot.
func (f Fixed) Metrics() Metrics { return Metrics(f) }

// Package platform defines the boundary to the windowing layer.
//
// The reconciliation core never talks to a native window system directly; it
// drives whatever implements WindowHandle. The package also ships a Headless
// window used by tests and by examples that render into a display list.
package platform

// IdleHandle schedules a callback on the thread that owns the widget tree.
// Asynchronous producers use it to request a wake-processing pass after
// appending to the wake queue; the platform guarantees the callback runs on
// the owner thread, never concurrently with a render cycle.
type IdleHandle interface {
	ScheduleIdle()
}

// WindowHandle is the minimal surface the driver needs from a window: an
// idle-wake primitive and a way to request a repaint.
type WindowHandle interface {
	IdleHandle() IdleHandle
	Invalidate()
}

// Headless is a window with no native backing. Idle scheduling invokes the
// configured callback directly and invalidations are counted, which is all a
// test or an offscreen renderer needs.
type Headless struct {
	// OnIdle is invoked for every scheduled idle. May be nil.
	OnIdle func()

	invalidations int
}

// NewHeadless creates a headless window. onIdle may be nil.
func NewHeadless(onIdle func()) *Headless {
	return &Headless{OnIdle: onIdle}
}

func (h *Headless) IdleHandle() IdleHandle {
	return headlessIdle{window: h}
}

func (h *Headless) Invalidate() {
	h.invalidations++
}

// Invalidations returns how many repaints have been requested.
func (h *Headless) Invalidations() int {
	return h.invalidations
}

type headlessIdle struct {
	window *Headless
}

func (i headlessIdle) ScheduleIdle() {
	if i.window.OnIdle != nil {
		i.window.OnIdle()
	}
}

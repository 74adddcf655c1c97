// Package tracked provides an element type that records where its instances
// live, for checking that a container constructs and destroys each slot
// exactly once. Copies can be made to fail on demand.
package tracked

import (
	"errors"
	"testing"
	"unsafe"
)

// ErrCopyFailed is returned (or panicked with) by the copy selected through
// SetThrowCountdown.
var ErrCopyFailed = errors.New("tracked: copy failed")

// Tracker holds the set of live instance addresses. Violations are reported
// to the testing.TB it was created with. Not goroutine-safe.
type Tracker struct {
	tb          testing.TB
	live        map[unsafe.Pointer]struct{}
	constructed []uintptr
	destroyed   []uintptr
	countdown   int
	panicOnCopy bool
}

// NewTracker returns an empty tracker reporting to tb.
func NewTracker(tb testing.TB) *Tracker {
	return &Tracker{tb: tb, live: make(map[unsafe.Pointer]struct{})}
}

// SetThrowCountdown makes the n-th copy from now fail. 0 disables failures.
func (tr *Tracker) SetThrowCountdown(n int) {
	tr.countdown = n
}

// SetPanicOnCopy makes the failing copy panic with ErrCopyFailed instead of
// returning it.
func (tr *Tracker) SetPanicOnCopy(on bool) {
	tr.panicOnCopy = on
}

// Live returns the number of constructed, not yet destroyed instances.
func (tr *Tracker) Live() int {
	return len(tr.live)
}

// Constructed returns the addresses of all successful copies, in order.
func (tr *Tracker) Constructed() []uintptr {
	return append([]uintptr(nil), tr.constructed...)
}

// Destroyed returns the addresses of all destructions, in order.
func (tr *Tracker) Destroyed() []uintptr {
	return append([]uintptr(nil), tr.destroyed...)
}

// ExpectNoInstances reports an error if any instance is still live and then
// forgets them, so one leak is reported once.
func (tr *Tracker) ExpectNoInstances() {
	tr.tb.Helper()
	if n := len(tr.live); n != 0 {
		tr.tb.Errorf("tracked: %d instances not destroyed", n)
		clear(tr.live)
	}
}

func (tr *Tracker) copy() error {
	if tr.countdown == 0 {
		return nil
	}
	tr.countdown--
	if tr.countdown != 0 {
		return nil
	}
	if tr.panicOnCopy {
		panic(ErrCopyFailed)
	}
	return ErrCopyFailed
}

func (tr *Tracker) add(p unsafe.Pointer) {
	if _, ok := tr.live[p]; ok {
		tr.tb.Errorf("tracked: new object created at %p while the previous object there was not destroyed", p)
		return
	}
	tr.live[p] = struct{}{}
	tr.constructed = append(tr.constructed, uintptr(p))
}

func (tr *Tracker) remove(p unsafe.Pointer) {
	if _, ok := tr.live[p]; !ok {
		tr.tb.Errorf("tracked: destroying non-existing object at %p", p)
		return
	}
	delete(tr.live, p)
	tr.destroyed = append(tr.destroyed, uintptr(p))
}

func (tr *Tracker) assertExists(p unsafe.Pointer) {
	if _, ok := tr.live[p]; !ok {
		tr.tb.Errorf("tracked: accessing non-existing object at %p", p)
	}
}

// Element is a value registered with a Tracker while it sits in a container
// slot. Values made by New are prototypes: they are not registered and only
// serve as copy sources.
type Element[V comparable] struct {
	val V
	tr  *Tracker
}

// New returns an unregistered prototype holding val.
func New[V comparable](tr *Tracker, val V) Element[V] {
	return Element[V]{val: val, tr: tr}
}

// CopyFrom constructs e as a copy of src and registers e's address.
func (e *Element[V]) CopyFrom(src *Element[V]) error {
	if err := src.tr.copy(); err != nil {
		return err
	}
	e.val, e.tr = src.val, src.tr
	e.tr.add(unsafe.Pointer(e))
	return nil
}

// Destroy unregisters e's address.
func (e *Element[V]) Destroy() {
	if e.tr == nil {
		panic("tracked: Destroy on an element that was never constructed")
	}
	e.tr.remove(unsafe.Pointer(e))
}

// SwapWith exchanges the values of two live elements.
func (e *Element[V]) SwapWith(other *Element[V]) {
	e.tr.assertExists(unsafe.Pointer(e))
	other.tr.assertExists(unsafe.Pointer(other))
	e.val, other.val = other.val, e.val
}

// Get returns the held value.
func (e Element[V]) Get() V {
	return e.val
}

// Equal reports whether e and other hold the same value.
func (e Element[V]) Equal(other Element[V]) bool {
	return e.val == other.val
}

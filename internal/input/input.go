// Package input models the page-wide input surface that components listen
// on while mounted. Components receive a Source, register listeners on mount
// and release them on teardown; nothing here is a package-level singleton.
package input

import "sync"

// PointerEvent is an "interaction started" event (mousedown, touchstart).
type PointerEvent struct {
	// Path lists element ids from the event target outward to the document.
	Path []string
}

// KeyEvent is a key-down event.
type KeyEvent struct {
	Key string

	prevented bool
}

// PreventDefault suppresses the browser's default action for the key.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// IsEscape reports whether the event is the Escape key.
func (e *KeyEvent) IsEscape() bool {
	return e.Key == "Escape" || e.Key == "Esc"
}

// Source is the global input surface shared by every mounted component.
// Each registration returns a release func that removes exactly that listener.
type Source interface {
	OnPointerDown(fn func(*PointerEvent)) (release func())
	OnKeyDown(fn func(*KeyEvent)) (release func())
}

type listener[E any] struct {
	id int
	fn func(E)
}

// Bus is an in-process Source. Dispatch is synchronous and runs listeners in
// registration order, so one event is fully handled before the next starts.
type Bus struct {
	mu      sync.Mutex
	nextID  int
	pointer []listener[*PointerEvent]
	key     []listener[*KeyEvent]
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnPointerDown registers fn for pointer-down events.
func (b *Bus) OnPointerDown(fn func(*PointerEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.id()
	b.pointer = append(b.pointer, listener[*PointerEvent]{id: id, fn: fn})
	return b.releaser(func() { b.pointer = remove(b.pointer, id) })
}

// OnKeyDown registers fn for key-down events.
func (b *Bus) OnKeyDown(fn func(*KeyEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.id()
	b.key = append(b.key, listener[*KeyEvent]{id: id, fn: fn})
	return b.releaser(func() { b.key = remove(b.key, id) })
}

// PointerDown dispatches ev to every pointer-down listener.
func (b *Bus) PointerDown(ev *PointerEvent) {
	b.mu.Lock()
	snapshot := append([]listener[*PointerEvent](nil), b.pointer...)
	b.mu.Unlock()

	for _, l := range snapshot {
		l.fn(ev)
	}
}

// KeyDown dispatches ev to every key-down listener.
func (b *Bus) KeyDown(ev *KeyEvent) {
	b.mu.Lock()
	snapshot := append([]listener[*KeyEvent](nil), b.key...)
	b.mu.Unlock()

	for _, l := range snapshot {
		l.fn(ev)
	}
}

// Listeners returns the number of registered listeners of both kinds.
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pointer) + len(b.key)
}

func (b *Bus) id() int {
	b.nextID++
	return b.nextID
}

// releaser wraps drop so it runs at most once, under the bus lock.
func (b *Bus) releaser(drop func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			drop()
		})
	}
}

func remove[E any](ls []listener[E], id int) []listener[E] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

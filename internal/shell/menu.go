package shell

import (
	"slices"

	"github.com/budjb/things-we-make/internal/input"
)

// PanelID is the element id of the off-canvas navigation panel.
const PanelID = "offcanvas-nav"

// Trigger names what caused a menu transition.
type Trigger string

const (
	TriggerOpen    Trigger = "open"
	TriggerClose   Trigger = "close"
	TriggerOutside Trigger = "outside"
	TriggerEscape  Trigger = "escape"
)

// PanelRef points at the rendered panel element. It is unattached until the
// page reports that the panel is mounted.
type PanelRef struct {
	id string
}

// Attach binds the reference to the element with the given id.
func (p *PanelRef) Attach(id string) { p.id = id }

// Detach unbinds the reference.
func (p *PanelRef) Detach() { p.id = "" }

// Attached reports whether the reference points at an element.
func (p *PanelRef) Attached() bool { return p.id != "" }

// Contains reports whether an event path passes through the panel.
// attached is false when the reference is unset; inside is then meaningless.
func (p *PanelRef) Contains(path []string) (inside, attached bool) {
	if !p.Attached() {
		return false, false
	}
	return slices.Contains(path, p.id), true
}

// MenuController owns the open/closed state of the off-canvas panel.
//
// While mounted it listens on an input.Source for outside pointer-downs and
// the Escape key. Listeners are re-registered after every state assignment so
// their closures always see the current state, and all of them are released
// on Unmount.
type MenuController struct {
	open     bool
	panel    PanelRef
	source   input.Source
	releases []func()
	onChange func(open bool, trigger Trigger)
}

// MenuOption configures a MenuController.
type MenuOption func(*MenuController)

// WithInitialState seeds the menu state, e.g. from a visitor cookie.
func WithInitialState(open bool) MenuOption {
	return func(c *MenuController) { c.open = open }
}

// WithOnChange registers an observer called after each actual state change.
func WithOnChange(fn func(open bool, trigger Trigger)) MenuOption {
	return func(c *MenuController) { c.onChange = fn }
}

// NewMenuController creates a closed, unmounted controller.
func NewMenuController(opts ...MenuOption) *MenuController {
	c := &MenuController{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsOpen reports the current menu state.
func (c *MenuController) IsOpen() bool { return c.open }

// Panel returns the panel reference the dismissal check uses.
func (c *MenuController) Panel() *PanelRef { return &c.panel }

// Open shows the panel.
func (c *MenuController) Open() { c.set(true, TriggerOpen) }

// Close hides the panel. Closing a closed menu is a no-op in effect.
func (c *MenuController) Close() { c.set(false, TriggerClose) }

// Toggle flips the state through Open or Close.
func (c *MenuController) Toggle() {
	if c.open {
		c.Close()
	} else {
		c.Open()
	}
}

// Mount starts listening on src. Mounting again first releases the
// listeners held on the previous source.
func (c *MenuController) Mount(src input.Source) {
	c.release()
	c.source = src
	c.bind()
}

// Unmount releases every listener. Events arriving afterwards have no effect.
func (c *MenuController) Unmount() {
	c.release()
	c.source = nil
}

// Mounted reports whether the controller is listening on a source.
func (c *MenuController) Mounted() bool { return c.source != nil }

func (c *MenuController) set(open bool, trigger Trigger) {
	changed := c.open != open
	c.open = open

	if c.source != nil {
		c.release()
		c.bind()
	}

	if changed && c.onChange != nil {
		c.onChange(open, trigger)
	}
}

// bind registers listeners capturing the state as of this call.
func (c *MenuController) bind() {
	open := c.open
	panel := &c.panel

	onPointer := func(ev *input.PointerEvent) {
		inside, attached := panel.Contains(ev.Path)
		if !attached || inside {
			return
		}
		c.set(false, TriggerOutside)
	}

	onKey := func(ev *input.KeyEvent) {
		if !ev.IsEscape() || !open {
			return
		}
		ev.PreventDefault()
		c.set(false, TriggerEscape)
	}

	c.releases = append(c.releases,
		c.source.OnPointerDown(onPointer),
		c.source.OnKeyDown(onKey),
	)
}

func (c *MenuController) release() {
	for _, release := range c.releases {
		release()
	}
	c.releases = c.releases[:0]
}

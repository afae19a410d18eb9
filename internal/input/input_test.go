package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budjb/things-we-make/internal/input"
)

func TestBus_DispatchInRegistrationOrder(t *testing.T) {
	bus := input.NewBus()

	var calls []string
	bus.OnKeyDown(func(*input.KeyEvent) { calls = append(calls, "first") })
	bus.OnKeyDown(func(*input.KeyEvent) { calls = append(calls, "second") })

	bus.KeyDown(&input.KeyEvent{Key: "a"})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBus_ReleaseRemovesOnlyThatListener(t *testing.T) {
	bus := input.NewBus()

	var first, second int
	release := bus.OnPointerDown(func(*input.PointerEvent) { first++ })
	bus.OnPointerDown(func(*input.PointerEvent) { second++ })
	assert.Equal(t, 2, bus.Listeners())

	release()
	release() // idempotent
	bus.PointerDown(&input.PointerEvent{})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, bus.Listeners())
}

func TestBus_ReleaseFromInsideListener(t *testing.T) {
	bus := input.NewBus()

	calls := 0
	var release func()
	release = bus.OnKeyDown(func(*input.KeyEvent) {
		calls++
		release()
	})

	bus.KeyDown(&input.KeyEvent{Key: "Escape"})
	bus.KeyDown(&input.KeyEvent{Key: "Escape"})

	assert.Equal(t, 1, calls)
	assert.Zero(t, bus.Listeners())
}

func TestBus_DispatchWithoutListeners(t *testing.T) {
	bus := input.NewBus()

	assert.NotPanics(t, func() {
		bus.PointerDown(&input.PointerEvent{Path: []string{"main"}})
		bus.KeyDown(&input.KeyEvent{Key: "Escape"})
	})
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key    string
		escape bool
	}{
		{"Escape", true},
		{"Esc", true},
		{"Enter", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ev := &input.KeyEvent{Key: tt.key}
			assert.Equal(t, tt.escape, ev.IsEscape())
			assert.False(t, ev.DefaultPrevented())

			ev.PreventDefault()
			assert.True(t, ev.DefaultPrevented())
		})
	}
}

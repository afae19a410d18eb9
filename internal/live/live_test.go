package live_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budjb/things-we-make/internal/live"
	"github.com/budjb/things-we-make/internal/shell"
)

// fakeConn feeds scripted client messages and records server replies.
// Reading past the script reports a normal close.
type fakeConn struct {
	in       []any
	out      []live.ServerMessage
	writeErr error
	closed   bool
}

func (c *fakeConn) ReadJSON(v any) error {
	if len(c.in) == 0 {
		return &websocket.CloseError{Code: websocket.CloseNormalClosure}
	}
	next := c.in[0]
	c.in = c.in[1:]

	if raw, ok := next.(string); ok {
		return json.Unmarshal([]byte(raw), v)
	}
	b, err := json.Marshal(next)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (c *fakeConn) WriteJSON(v any) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.out = append(c.out, v.(live.ServerMessage))
	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func run(t *testing.T, initialOpen bool, msgs ...any) ([]live.ServerMessage, *live.Session) {
	t.Helper()

	conn := &fakeConn{in: msgs}
	s := live.NewSession(conn, live.Config{InitialOpen: initialOpen})
	require.NoError(t, s.Run(context.Background()))
	return conn.out, s
}

func attach() live.ClientMessage {
	return live.ClientMessage{Type: live.TypeAttach, Panel: shell.PanelID}
}

func outsideClick() live.ClientMessage {
	return live.ClientMessage{Type: live.TypePointerDown, Path: []string{"main", "body"}}
}

func escape() live.ClientMessage {
	return live.ClientMessage{Type: live.TypeKeyDown, Key: "Escape"}
}

func TestSession_InitialState(t *testing.T) {
	out, _ := run(t, false)
	assert.Equal(t, []live.ServerMessage{{Type: live.TypeState, Open: false}}, out)

	out, _ = run(t, true)
	assert.Equal(t, []live.ServerMessage{{Type: live.TypeState, Open: true}}, out)
}

func TestSession_OpenThenOutsideClick(t *testing.T) {
	out, s := run(t, false,
		attach(),
		live.ClientMessage{Type: live.TypeOpen},
		outsideClick(),
	)

	assert.Equal(t, []live.ServerMessage{
		{Type: live.TypeState, Open: false},
		{Type: live.TypeState, Open: true},
		{Type: live.TypeState, Open: false},
	}, out)
	assert.False(t, s.Menu().IsOpen())
}

func TestSession_OutsideClickBeforeAttachIsIgnored(t *testing.T) {
	out, s := run(t, true, outsideClick())

	assert.Len(t, out, 1)
	assert.True(t, s.Menu().IsOpen())
}

func TestSession_InsideClickKeepsOpen(t *testing.T) {
	_, s := run(t, true,
		attach(),
		live.ClientMessage{Type: live.TypePointerDown, Path: []string{"search-form", shell.PanelID}},
	)

	assert.True(t, s.Menu().IsOpen())
}

func TestSession_Escape(t *testing.T) {
	out, _ := run(t, false,
		escape(),
		live.ClientMessage{Type: live.TypeOpen},
		escape(),
	)

	assert.Equal(t, []live.ServerMessage{
		{Type: live.TypeState, Open: false},
		{Type: live.TypeKey, Open: false, Key: "Escape", DefaultPrevented: false},
		{Type: live.TypeState, Open: true},
		{Type: live.TypeState, Open: false},
		{Type: live.TypeKey, Open: false, Key: "Escape", DefaultPrevented: true},
	}, out)
}

func TestSession_Toggle(t *testing.T) {
	_, s := run(t, false,
		live.ClientMessage{Type: live.TypeToggle},
		live.ClientMessage{Type: live.TypeToggle},
		live.ClientMessage{Type: live.TypeToggle},
	)
	assert.True(t, s.Menu().IsOpen())
}

func TestSession_Submit(t *testing.T) {
	out, _ := run(t, false,
		live.ClientMessage{Type: live.TypeSubmit, Value: "lasagna"},
		live.ClientMessage{Type: live.TypeSubmit, Value: ""},
	)

	require.Len(t, out, 3)
	assert.Equal(t, live.ServerMessage{Type: live.TypeNavigate, Path: "/search?q=lasagna"}, out[1])
	assert.Equal(t, live.ServerMessage{Type: live.TypeNavigate, Path: "/"}, out[2])
}

func TestSession_BadInput(t *testing.T) {
	out, _ := run(t, false,
		live.ClientMessage{Type: "dance"},
		`{"type":`,
		`{"type": 42}`,
	)

	require.Len(t, out, 4)
	assert.Equal(t, live.TypeError, out[1].Type)
	assert.Contains(t, out[1].Error, "dance")
	assert.Equal(t, "malformed message", out[2].Error)
	assert.Equal(t, "malformed message", out[3].Error)
}

func TestSession_UnmountsOnClose(t *testing.T) {
	_, s := run(t, false, attach(), live.ClientMessage{Type: live.TypeOpen})

	assert.Zero(t, s.Bus().Listeners())
	assert.False(t, s.Menu().Mounted())
}

func TestSession_WriteFailure(t *testing.T) {
	boom := errors.New("broken pipe")
	conn := &fakeConn{writeErr: boom}

	err := live.NewSession(conn, live.Config{}).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSession_WriteFailureInsideCallback(t *testing.T) {
	boom := errors.New("broken pipe")
	conn := &fakeConn{}
	s := live.NewSession(conn, live.Config{})
	s.Menu().Mount(s.Bus())
	defer s.Menu().Unmount()

	conn.writeErr = boom
	err := s.Handle(live.ClientMessage{Type: live.TypeOpen})
	assert.ErrorIs(t, err, boom)

	// The failure is reported once.
	conn.writeErr = nil
	assert.NoError(t, s.Handle(live.ClientMessage{Type: live.TypeClose}))
}

// blockingConn blocks reads until closed.
type blockingConn struct {
	closed chan struct{}
}

func (c *blockingConn) ReadJSON(any) error {
	<-c.closed
	return errors.New("use of closed network connection")
}

func (c *blockingConn) WriteJSON(any) error { return nil }

func (c *blockingConn) Close() error {
	close(c.closed)
	return nil
}

func TestSession_ContextCancelClosesConn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	conn := &blockingConn{closed: make(chan struct{})}
	s := live.NewSession(conn, live.Config{})

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop after cancel")
	}
}

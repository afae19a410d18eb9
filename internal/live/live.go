// Package live bridges browser input to the page shell over a websocket.
//
// shell.js forwards pointer-downs, key-downs, menu button clicks and search
// submits as JSON messages. Each connection gets its own MenuController
// mounted on its own input.Bus; the server answers with the menu state, the
// key handling verdict and navigation targets.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/budjb/things-we-make/internal/input"
	"github.com/budjb/things-we-make/internal/metrics"
	"github.com/budjb/things-we-make/internal/shell"
)

// Client message types.
const (
	TypeAttach      = "attach"
	TypeDetach      = "detach"
	TypeOpen        = "open"
	TypeClose       = "close"
	TypeToggle      = "toggle"
	TypePointerDown = "pointerdown"
	TypeKeyDown     = "keydown"
	TypeSubmit      = "submit"
)

// Server message types.
const (
	TypeState    = "state"
	TypeKey      = "key"
	TypeNavigate = "navigate"
	TypeError    = "error"
)

// ClientMessage is a browser event.
type ClientMessage struct {
	Type  string   `json:"type"`
	Panel string   `json:"panel,omitempty"`
	Path  []string `json:"path,omitempty"`
	Key   string   `json:"key,omitempty"`
	Value string   `json:"value,omitempty"`
}

// ServerMessage is a reply or state push. Open always carries the current
// menu state.
type ServerMessage struct {
	Type             string `json:"type"`
	Open             bool   `json:"open"`
	Key              string `json:"key,omitempty"`
	DefaultPrevented bool   `json:"defaultPrevented,omitempty"`
	Path             string `json:"path,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Conn is the message transport. *websocket.Conn satisfies it.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// Config configures a Session.
type Config struct {
	// InitialOpen seeds the menu with the state the page was rendered with.
	InitialOpen bool
	Logger      *slog.Logger
}

// Session serves one connection. All messages are handled on the goroutine
// that calls Run, one at a time.
type Session struct {
	conn   Conn
	bus    *input.Bus
	menu   *shell.MenuController
	search *shell.SearchForm
	logger *slog.Logger

	// writeErr holds the first failed write from a callback.
	writeErr error
}

// NewSession creates a session on conn.
func NewSession(conn Conn, cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		conn:   conn,
		bus:    input.NewBus(),
		logger: logger,
	}

	s.menu = shell.NewMenuController(
		shell.WithInitialState(cfg.InitialOpen),
		shell.WithOnChange(func(open bool, trigger shell.Trigger) {
			metrics.MenuTransitions.WithLabelValues(string(trigger)).Inc()
			s.send(ServerMessage{Type: TypeState, Open: open})
		}),
	)

	s.search = &shell.SearchForm{
		Navigator: shell.NavigatorFunc(func(path string) {
			s.send(ServerMessage{Type: TypeNavigate, Open: s.menu.IsOpen(), Path: path})
		}),
		OnSubmit: metrics.ObserveSearch,
	}

	return s
}

// Menu exposes the session's controller.
func (s *Session) Menu() *shell.MenuController { return s.menu }

// Bus exposes the session's input surface.
func (s *Session) Bus() *input.Bus { return s.bus }

// Run mounts the menu, pushes the initial state and handles messages until
// the connection closes or ctx is cancelled. The menu is unmounted on return.
func (s *Session) Run(ctx context.Context) error {
	metrics.LiveSessions.Inc()
	defer metrics.LiveSessions.Dec()

	s.menu.Mount(s.bus)
	defer s.menu.Unmount()

	stop := context.AfterFunc(ctx, func() { s.conn.Close() })
	defer stop()

	if err := s.write(ServerMessage{Type: TypeState, Open: s.menu.IsOpen()}); err != nil {
		return err
	}

	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			switch {
			case ctx.Err() != nil:
				return nil
			case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
				return nil
			case isDecodeError(err):
				s.logger.Debug("malformed live message", "error", err)
				if err := s.write(ServerMessage{Type: TypeError, Open: s.menu.IsOpen(), Error: "malformed message"}); err != nil {
					return err
				}
				continue
			default:
				return fmt.Errorf("read message: %w", err)
			}
		}

		if err := s.Handle(msg); err != nil {
			return err
		}
	}
}

// Handle applies one client message. The returned error is a transport
// failure; bad input is answered with an error message instead.
func (s *Session) Handle(msg ClientMessage) error {
	switch msg.Type {
	case TypeAttach:
		id := msg.Panel
		if id == "" {
			id = shell.PanelID
		}
		s.menu.Panel().Attach(id)
	case TypeDetach:
		s.menu.Panel().Detach()
	case TypeOpen:
		s.menu.Open()
	case TypeClose:
		s.menu.Close()
	case TypeToggle:
		s.menu.Toggle()
	case TypePointerDown:
		s.bus.PointerDown(&input.PointerEvent{Path: msg.Path})
	case TypeKeyDown:
		ev := &input.KeyEvent{Key: msg.Key}
		s.bus.KeyDown(ev)
		s.send(ServerMessage{
			Type:             TypeKey,
			Open:             s.menu.IsOpen(),
			Key:              msg.Key,
			DefaultPrevented: ev.DefaultPrevented(),
		})
	case TypeSubmit:
		s.search.Submit(&shell.SubmitEvent{Value: msg.Value})
	default:
		s.send(ServerMessage{
			Type:  TypeError,
			Open:  s.menu.IsOpen(),
			Error: fmt.Sprintf("unknown message type %q", msg.Type),
		})
	}

	err := s.writeErr
	s.writeErr = nil
	return err
}

// send writes from inside event callbacks, which cannot return errors.
func (s *Session) send(msg ServerMessage) {
	if s.writeErr != nil {
		return
	}
	s.writeErr = s.write(msg)
}

func (s *Session) write(msg ServerMessage) error {
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write %s message: %w", msg.Type, err)
	}
	return nil
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

// Keepalive settings for Serve.
const (
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
	writeWait    = 10 * time.Second
	maxMessage   = 4096
)

// closingConn sends a going-away close frame before closing the socket, so
// clients can tell a server shutdown from a dropped connection.
type closingConn struct {
	*websocket.Conn
}

func (c closingConn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	_ = c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	return c.Conn.Close()
}

// Serve runs a Session on an upgraded websocket with read limits and
// ping/pong keepalive, and closes the socket when done. Cancelling ctx ends
// the session with a going-away close frame.
func Serve(ctx context.Context, ws *websocket.Conn, cfg Config) error {
	defer ws.Close()

	ws.SetReadLimit(maxMessage)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// WriteControl may run concurrently with the session's writes.
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	return NewSession(closingConn{ws}, cfg).Run(ctx)
}

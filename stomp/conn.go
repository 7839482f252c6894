// Package stomp carries STOMP 1.2 frames over WebSocket messages, one frame per message.
// It is shared by the chat client and the bot server.
package stomp

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/gorilla/websocket"
)

const (
	EndpointPath      = "/ws"
	ApplicationPrefix = "/app"
	UserPrefix        = "/user"
	ReplyQueue        = "/user/queue/replies"
	InitDestination   = "/app/chat.init"
	UserDestination   = "/app/chat.user"

	ContentTypeJSON = "application/json"
)

// Subprotocols lists the STOMP versions negotiated during the WebSocket upgrade.
var Subprotocols = []string{"v12.stomp", "v11.stomp", "v10.stomp"}

// FrameConn is a bidirectional STOMP session.
// WriteFrame is safe for concurrent use, ReadFrame must be called from a single goroutine.
type FrameConn interface {
	WriteFrame(f *frame.Frame) error
	ReadFrame() (*frame.Frame, error)
	Close() error
}

// WSConn binds a FrameConn to a gorilla websocket connection.
type WSConn struct {
	ws           *websocket.Conn
	writeMu      sync.Mutex
	writeTimeout time.Duration
	closeOnce    sync.Once
}

func NewWSConn(ws *websocket.Conn, writeTimeout time.Duration) *WSConn {
	return &WSConn{ws: ws, writeTimeout: writeTimeout}
}

func (c *WSConn) WriteFrame(f *frame.Frame) error {
	data, err := Encode(f)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.writeTimeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// ReadFrame blocks until the next frame. Heart-beats are skipped.
func (c *WSConn) ReadFrame() (*frame.Frame, error) {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return nil, err
		}
		f, err := Decode(data)
		if err != nil {
			return nil, err
		}
		if f == nil {
			continue
		}
		return f, nil
	}
}

func (c *WSConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.ws.Close()
	})
	return err
}

// Encode serializes a single frame, NUL terminator included.
func Encode(f *frame.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := frame.NewWriter(&buf).Write(f); err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", f.Command, err)
	}
	return buf.Bytes(), nil
}

// Decode parses the first frame of a WebSocket message, skipping the heart-beat EOLs before it.
// A nil frame with a nil error means the message only held heart-beats.
func Decode(data []byte) (*frame.Frame, error) {
	data = bytes.TrimLeft(data, "\r\n")
	if len(data) == 0 {
		return nil, nil
	}
	f, err := frame.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}

package stomp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_SendFrame(t *testing.T) {
	req := require.New(t)

	data, err := Encode(Send(UserDestination, ContentTypeJSON, []byte(`{"text":"hello"}`)))
	req.NoError(err)
	req.True(strings.HasPrefix(string(data), "SEND\n"))
	req.Equal(byte(0), data[len(data)-1])

	f, err := Decode(data)
	req.NoError(err)
	req.Equal(frame.SEND, f.Command)
	req.Equal(UserDestination, f.Header.Get(frame.Destination))
	req.Equal(ContentTypeJSON, f.Header.Get(frame.ContentType))
	req.Equal(`{"text":"hello"}`, string(f.Body))
}

func TestEncodeDecode_EmptyBody(t *testing.T) {
	req := require.New(t)

	data, err := Encode(Send(InitDestination, "", nil))
	req.NoError(err)

	f, err := Decode(data)
	req.NoError(err)
	req.Equal(InitDestination, f.Header.Get(frame.Destination))
	req.Empty(f.Body)
	_, hasContentType := f.Header.Contains(frame.ContentType)
	req.False(hasContentType)
}

func TestDecode_Heartbeat(t *testing.T) {
	req := require.New(t)
	for _, data := range []string{"\n", "\r\n", "\n\n"} {
		f, err := Decode([]byte(data))
		req.NoError(err)
		req.Nil(f)
	}
}

func TestDecode_LeadingEOLs(t *testing.T) {
	req := require.New(t)
	data, err := Encode(Send(UserDestination, ContentTypeJSON, []byte(`{"text":"hi"}`)))
	req.NoError(err)

	for _, prefix := range []string{"\n", "\r\n", "\n\r\n\n"} {
		// Given heart-beats batched in front of a frame
		f, err := Decode(append([]byte(prefix), data...))

		// Then the frame is still decoded
		req.NoError(err)
		req.NotNil(f, "prefix=%q", prefix)
		req.Equal(frame.SEND, f.Command)
		req.Equal(`{"text":"hi"}`, string(f.Body))
	}
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("NOT A FRAME"))
	require.Error(t, err)
}

func TestPipe_DeliversInOrder(t *testing.T) {
	req := require.New(t)
	client, server := Pipe()

	req.NoError(client.WriteFrame(Connect("localhost")))
	req.NoError(client.WriteFrame(Subscribe("sub-0", ReplyQueue)))

	f, err := server.ReadFrame()
	req.NoError(err)
	req.Equal(frame.CONNECT, f.Command)
	req.Equal("localhost", f.Header.Get(frame.Host))

	f, err = server.ReadFrame()
	req.NoError(err)
	req.Equal(frame.SUBSCRIBE, f.Command)
	req.Equal("sub-0", f.Header.Get(frame.Id))
}

func TestPipe_FramesWrittenBeforeCloseAreDelivered(t *testing.T) {
	req := require.New(t)
	client, server := Pipe()

	// Given the server answers then hangs up
	req.NoError(server.WriteFrame(Error("bye", "")))
	req.NoError(server.Close())

	// Then the client still reads the frame, then EOF
	f, err := client.ReadFrame()
	req.NoError(err)
	req.Equal(frame.ERROR, f.Command)

	_, err = client.ReadFrame()
	req.ErrorIs(err, io.EOF)

	// And writing on a closed pipe fails
	req.ErrorIs(client.WriteFrame(Disconnect("")), io.ErrClosedPipe)
}

func TestWSConn_RoundTrip(t *testing.T) {
	req := require.New(t)

	upgrader := websocket.Upgrader{Subprotocols: Subprotocols}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewWSConn(ws, time.Second)
		defer conn.Close()
		// Echo one heart-beat followed by a CONNECTED frame
		_ = ws.WriteMessage(websocket.TextMessage, []byte("\n"))
		f, err := conn.ReadFrame()
		if err != nil || f.Command != frame.CONNECT {
			return
		}
		_ = conn.WriteFrame(Connected("session-1"))
		_, _ = conn.ReadFrame()
	}))
	defer srv.Close()

	endpoint := "ws" + strings.TrimPrefix(srv.URL, "http") + EndpointPath
	conn, err := Dialer{HandshakeTimeout: time.Second}.Dial(context.Background(), endpoint)
	req.NoError(err)
	defer conn.Close()

	req.NoError(conn.WriteFrame(Connect("localhost")))
	f, err := conn.ReadFrame()
	req.NoError(err)
	req.Equal(frame.CONNECTED, f.Command)
	req.Equal("session-1", f.Header.Get(frame.Session))
}

func TestWSConn_HeartbeatBatchedWithFrame(t *testing.T) {
	req := require.New(t)

	upgrader := websocket.Upgrader{Subprotocols: Subprotocols}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		data, err := Encode(Message(ReplyQueue, "sub-0", "m-1", ContentTypeJSON, []byte(`{"sender":"BOT","content":"hi"}`)))
		if err != nil {
			return
		}
		// One WebSocket message: a heart-beat then the frame
		_ = ws.WriteMessage(websocket.TextMessage, append([]byte("\n"), data...))
		_, _, _ = ws.ReadMessage()
	}))
	defer srv.Close()

	endpoint := "ws" + strings.TrimPrefix(srv.URL, "http") + EndpointPath
	conn, err := Dialer{HandshakeTimeout: time.Second}.Dial(context.Background(), endpoint)
	req.NoError(err)
	defer conn.Close()

	f, err := conn.ReadFrame()
	req.NoError(err)
	req.Equal(frame.MESSAGE, f.Command)
	req.Equal("sub-0", f.Header.Get(frame.Subscription))
	req.Equal(`{"sender":"BOT","content":"hi"}`, string(f.Body))
}

func TestDialer_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := Dialer{}.Dial(ctx, "ws://127.0.0.1:1/ws")
	require.Error(t, err)
}

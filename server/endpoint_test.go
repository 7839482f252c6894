package server

import (
	"bot-chat/domain/chat"
	"bot-chat/mocks"
	"bot-chat/moderation"
	"bot-chat/stomp"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type endpointFixture struct {
	client  stomp.FrameConn
	engine  *mocks.MockConversationEngine
	metrics *Metrics
	done    chan struct{}
}

func startEndpoint(t *testing.T, moderator *moderation.Moderator) *endpointFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	engine := mocks.NewMockConversationEngine(ctrl)
	metrics := NewMetrics()
	endpoint := NewEndpoint(log, NewBotController(log, engine, moderator, metrics), metrics, time.Second)

	client, server := stomp.Pipe()
	fixture := &endpointFixture{client: client, engine: engine, metrics: metrics, done: make(chan struct{})}
	go func() {
		defer close(fixture.done)
		endpoint.Serve(context.Background(), server)
	}()
	t.Cleanup(func() {
		_ = client.Close()
		<-fixture.done
	})
	return fixture
}

func (f *endpointFixture) write(t *testing.T, fr *frame.Frame) {
	t.Helper()
	require.NoError(t, f.client.WriteFrame(fr))
}

func (f *endpointFixture) read(t *testing.T) *frame.Frame {
	t.Helper()
	type result struct {
		f   *frame.Frame
		err error
	}
	ch := make(chan result, 1)
	go func() {
		fr, err := f.client.ReadFrame()
		ch <- result{fr, err}
	}()
	select {
	case r := <-ch:
		require.NoError(t, r.err)
		return r.f
	case <-time.After(time.Second):
		require.FailNow(t, "no frame received")
		return nil
	}
}

// handshake connects and returns the session id announced by the server.
func (f *endpointFixture) handshake(t *testing.T) string {
	t.Helper()
	f.write(t, stomp.Connect("localhost"))
	connected := f.read(t)
	require.Equal(t, frame.CONNECTED, connected.Command)
	id := connected.Header.Get(frame.Session)
	require.NotEmpty(t, id)
	return id
}

func (f *endpointFixture) waitClosed(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(time.Second):
		require.FailNow(t, "session still running")
	}
}

func replyOf(t *testing.T, fr *frame.Frame) chat.ReplyMessage {
	t.Helper()
	require.Equal(t, frame.MESSAGE, fr.Command)
	var reply chat.ReplyMessage
	require.NoError(t, json.Unmarshal(fr.Body, &reply))
	return reply
}

func TestEndpoint_Init_RepliesOnSubscription(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)

	// Given a flow greeting with two messages
	f.engine.EXPECT().Start(gomock.Any(), id).Return([]string{"Hello", "How can I help?"})
	f.engine.EXPECT().Forget(id)

	// When the client subscribes then sends the init signal
	f.write(t, stomp.Subscribe("sub-0", stomp.ReplyQueue))
	f.write(t, stomp.Send(stomp.InitDestination, "", nil))

	// Then both messages arrive in order, from the bot, on the subscription
	first := f.read(t)
	req.Equal("sub-0", first.Header.Get(frame.Subscription))
	req.Equal(stomp.ReplyQueue, first.Header.Get(frame.Destination))
	req.Equal(chat.ReplyMessage{Sender: chat.BotSender, Content: "Hello"}, replyOf(t, first))
	req.Equal(chat.ReplyMessage{Sender: chat.BotSender, Content: "How can I help?"}, replyOf(t, f.read(t)))

	// When the client disconnects with a receipt
	f.write(t, stomp.Disconnect("bye"))

	// Then the receipt is sent and the session ends
	receipt := f.read(t)
	req.Equal(frame.RECEIPT, receipt.Command)
	req.Equal("bye", receipt.Header.Get(frame.ReceiptId))
	f.waitClosed(t)
	req.Equal(float64(2), testutil.ToFloat64(f.metrics.Replies))
	req.Equal(float64(0), testutil.ToFloat64(f.metrics.Connections))
}

func TestEndpoint_UserMessage_IsAnswered(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)

	f.engine.EXPECT().OnUserMessage(gomock.Any(), id, "price").Return([]string{"It costs 10"})
	f.engine.EXPECT().Forget(id)

	// When a user message is sent on the user destination
	f.write(t, stomp.Subscribe("sub-0", stomp.ReplyQueue))
	f.write(t, stomp.Send(stomp.UserDestination, stomp.ContentTypeJSON, []byte(`{"text":"price"}`)))

	// Then the engine answer is pushed back
	req.Equal("It costs 10", replyOf(t, f.read(t)).Content)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.UserMessages))
}

func TestEndpoint_UserMessage_IsModerated(t *testing.T) {
	req := require.New(t)
	moderator, err := moderation.NewModerator([]string{"badger"}, '*', slog.Default())
	req.NoError(err)
	f := startEndpoint(t, moderator)
	id := f.handshake(t)

	// Then the engine only sees the censored text
	f.engine.EXPECT().OnUserMessage(gomock.Any(), id, "my ****** ate it").Return(nil)
	f.engine.EXPECT().Forget(id)

	f.write(t, stomp.Send(stomp.UserDestination, stomp.ContentTypeJSON, []byte(`{"text":"my badger ate it"}`)))
	f.write(t, stomp.Disconnect("r-1"))
	req.Equal(frame.RECEIPT, f.read(t).Command)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.Censored))
}

func TestEndpoint_WithoutSubscription_RepliesAreDropped(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)

	f.engine.EXPECT().Start(gomock.Any(), id).Return([]string{"Hello"})
	f.engine.EXPECT().Forget(id)

	// When init is sent without any subscription
	f.write(t, stomp.Send(stomp.InitDestination, "", nil))
	f.write(t, stomp.Disconnect("r-1"))

	// Then the first frame received is the receipt
	req.Equal(frame.RECEIPT, f.read(t).Command)
}

func TestEndpoint_Unsubscribe_StopsReplies(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)

	f.engine.EXPECT().Start(gomock.Any(), id).Return([]string{"Hello"})
	f.engine.EXPECT().Forget(id)

	f.write(t, stomp.Subscribe("sub-0", stomp.ReplyQueue))
	f.write(t, frame.New(frame.UNSUBSCRIBE, frame.Id, "sub-0"))
	f.write(t, stomp.Send(stomp.InitDestination, "", nil))
	f.write(t, stomp.Disconnect("r-1"))

	req.Equal(frame.RECEIPT, f.read(t).Command)
}

func TestEndpoint_UnknownDestination_IsIgnored(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)
	f.engine.EXPECT().Forget(id)

	f.write(t, stomp.Send("/app/unknown", "", []byte("x")))
	f.write(t, stomp.Disconnect("r-1"))

	req.Equal(frame.RECEIPT, f.read(t).Command)
}

func TestEndpoint_FirstFrameNotConnect_IsRejected(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)

	// When the client talks before connecting
	f.write(t, stomp.Send(stomp.InitDestination, "", nil))

	// Then an ERROR frame closes the session, no conversation is started
	errorFrame := f.read(t)
	req.Equal(frame.ERROR, errorFrame.Command)
	req.Contains(errorFrame.Header.Get(frame.Message), "expected CONNECT")
	f.waitClosed(t)
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.ProtocolErrors))
}

func TestEndpoint_InvalidUserMessage_IsProtocolError(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)
	f.engine.EXPECT().Forget(id)

	f.write(t, stomp.Send(stomp.UserDestination, stomp.ContentTypeJSON, []byte("not json")))

	req.Equal(frame.ERROR, f.read(t).Command)
	f.waitClosed(t)
}

func TestEndpoint_SubscribeWithoutID_IsProtocolError(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)
	f.engine.EXPECT().Forget(id)

	f.write(t, frame.New(frame.SUBSCRIBE, frame.Destination, stomp.ReplyQueue))

	req.Equal(frame.ERROR, f.read(t).Command)
	f.waitClosed(t)
}

func TestEndpoint_ServerCommandFromClient_CountedAsOther(t *testing.T) {
	req := require.New(t)
	f := startEndpoint(t, nil)
	id := f.handshake(t)
	f.engine.EXPECT().Forget(id)

	// When the client sends a frame only a server may send
	f.write(t, stomp.Message(stomp.ReplyQueue, "sub-0", "m-1", "", []byte("x")))

	// Then the session is rejected and the command is not used as a label
	req.Equal(frame.ERROR, f.read(t).Command)
	f.waitClosed(t)
	req.Equal(2, testutil.CollectAndCount(f.metrics.Frames))
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.Frames.WithLabelValues(frame.CONNECT)))
	req.Equal(float64(1), testutil.ToFloat64(f.metrics.Frames.WithLabelValues(otherCommand)))
}

func TestEndpoint_ClientGone_ForgetsSession(t *testing.T) {
	f := startEndpoint(t, nil)
	id := f.handshake(t)

	// Then the conversation state is released
	f.engine.EXPECT().Forget(id)

	// When the transport drops
	require.NoError(t, f.client.Close())
	f.waitClosed(t)
}

//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session.go -package=mocks
package client

import (
	"bot-chat/domain/chat"
	"bot-chat/errors"
	"bot-chat/stomp"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/google/uuid"
)

// Transport opens the underlying STOMP session.
type Transport interface {
	Dial(ctx context.Context, endpoint string) (stomp.FrameConn, error)
}

// Listener receives the connection lifecycle and the inbound replies.
// Calls come from the Session goroutines; implementations hand them over to the UI loop.
type Listener interface {
	OnReady()
	OnFailed(reason string)
	OnReply(reply chat.ReplyMessage)
	OnClosed(err error)
}

type Config struct {
	Endpoint         string
	Host             string
	SendQueueSize    int
	HandshakeTimeout time.Duration
}

// Session is the only owner of the connection.
// Disconnected -> Connecting -> Ready | Failed, Ready and Failed are terminal.
type Session struct {
	mu             sync.Mutex
	log            *slog.Logger
	transport      Transport
	listener       Listener
	config         Config
	state          State
	conn           stomp.FrameConn
	subscriptionID string
	pending        [][]byte
	closing        bool
	lost           bool
	malformed      atomic.Int64
	done           chan struct{}
}

func NewSession(log *slog.Logger, transport Transport, listener Listener, config Config) *Session {
	return &Session{
		log:       log,
		transport: transport,
		listener:  listener,
		config:    config,
		state:     Disconnected,
		done:      make(chan struct{}),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Malformed returns the number of reply payloads dropped because they could not be parsed.
func (s *Session) Malformed() int64 {
	return s.malformed.Load()
}

// Done is closed once the read loop has stopped. It never closes if the handshake failed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Connect runs the handshake and, on success, subscribes to the reply queue,
// announces the session with the init signal and starts reading replies.
// The outcome is also reported to the Listener.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return errors.ErrSessionClosed
	}
	if s.state != Disconnected {
		s.mu.Unlock()
		return errors.ErrAlreadyConnected
	}
	s.state = Connecting
	s.mu.Unlock()

	s.log.Info("Connecting", "endpoint", s.config.Endpoint)
	conn, err := s.handshake(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	subscriptionID := uuid.NewString()
	s.mu.Lock()
	if s.closing {
		// Closed while the handshake was running: never becomes Ready.
		s.state = Failed
		s.pending = nil
		s.mu.Unlock()
		_ = conn.WriteFrame(stomp.Disconnect(""))
		_ = conn.Close()
		s.log.Info("Closed while connecting", "endpoint", s.config.Endpoint)
		return errors.ErrSessionClosed
	}
	if err := s.announce(conn, subscriptionID); err != nil {
		s.mu.Unlock()
		_ = conn.Close()
		s.fail(err)
		return err
	}
	s.conn = conn
	s.subscriptionID = subscriptionID
	s.state = Ready
	pending := s.pending
	s.pending = nil
	for _, body := range pending {
		if err := conn.WriteFrame(stomp.Send(stomp.UserDestination, "", body)); err != nil {
			s.log.Warn("Buffered message lost", "error", err)
		}
	}
	s.mu.Unlock()

	s.log.Info("Connected", "subscription", subscriptionID, "flushed", len(pending))
	s.listener.OnReady()
	go s.readLoop(conn, subscriptionID)
	return nil
}

func (s *Session) handshake(ctx context.Context) (stomp.FrameConn, error) {
	if s.config.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.HandshakeTimeout)
		defer cancel()
	}

	conn, err := s.transport.Dial(ctx, s.config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}
	if err := conn.WriteFrame(stomp.Connect(s.host())); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}

	type result struct {
		f   *frame.Frame
		err error
	}
	answer := make(chan result, 1)
	go func() {
		f, err := conn.ReadFrame()
		answer <- result{f: f, err: err}
	}()

	select {
	case <-ctx.Done():
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", errors.ErrHandshake, ctx.Err())
	case r := <-answer:
		if r.err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%w: %v", errors.ErrHandshake, r.err)
		}
		switch r.f.Command {
		case frame.CONNECTED:
			return conn, nil
		case frame.ERROR:
			_ = conn.Close()
			return nil, fmt.Errorf("%w: server error %q", errors.ErrHandshake, r.f.Header.Get(frame.Message))
		default:
			_ = conn.Close()
			return nil, fmt.Errorf("%w: unexpected %s frame", errors.ErrHandshake, r.f.Command)
		}
	}
}

// announce subscribes to the private reply queue then sends the empty init signal.
func (s *Session) announce(conn stomp.FrameConn, subscriptionID string) error {
	if err := conn.WriteFrame(stomp.Subscribe(subscriptionID, stomp.ReplyQueue)); err != nil {
		return fmt.Errorf("subscribe %s: %w", stomp.ReplyQueue, err)
	}
	if err := conn.WriteFrame(stomp.Send(stomp.InitDestination, "", nil)); err != nil {
		return fmt.Errorf("send %s: %w", stomp.InitDestination, err)
	}
	return nil
}

func (s *Session) host() string {
	if s.config.Host != "" {
		return s.config.Host
	}
	u, err := url.Parse(s.config.Endpoint)
	if err != nil || u.Hostname() == "" {
		return "localhost"
	}
	return u.Hostname()
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	s.state = Failed
	s.mu.Unlock()
	s.log.Warn("Connection failed", "endpoint", s.config.Endpoint, "error", err)
	s.listener.OnFailed(FailureText)
}

// SendUserMessage trims the text and sends it to the user destination, with no extra header.
// Before Ready the body is buffered (bounded) and flushed once connected.
func (s *Session) SendUserMessage(text string) error {
	msg, ok := chat.NewChatMessage(text)
	if !ok {
		return errors.ErrEmptyMessage
	}
	body, err := msg.Encode()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case Ready:
		if s.lost || s.closing {
			return errors.ErrNotReady
		}
		return s.conn.WriteFrame(stomp.Send(stomp.UserDestination, "", body))
	case Disconnected, Connecting:
		if len(s.pending) >= s.config.SendQueueSize {
			return errors.ErrSendQueueFull
		}
		s.pending = append(s.pending, body)
		return nil
	default:
		return errors.ErrNotReady
	}
}

func (s *Session) readLoop(conn stomp.FrameConn, subscriptionID string) {
	defer close(s.done)
	for {
		f, err := conn.ReadFrame()
		if err != nil {
			s.connectionLost(err)
			return
		}
		switch f.Command {
		case frame.MESSAGE:
			s.onReply(f, subscriptionID)
		case frame.ERROR:
			_ = conn.Close()
			s.connectionLost(fmt.Errorf("%w: %s", errors.ErrProtocol, f.Header.Get(frame.Message)))
			return
		default:
			s.log.Debug("Frame ignored", "command", f.Command)
		}
	}
}

func (s *Session) onReply(f *frame.Frame, subscriptionID string) {
	if sub := f.Header.Get(frame.Subscription); sub != subscriptionID {
		s.log.Debug("Message for unknown subscription", "subscription", sub)
		return
	}
	reply, err := chat.ParseReply(f.Body)
	if err != nil {
		s.malformed.Add(1)
		s.log.Warn("Reply dropped", "error", err, "size", len(f.Body))
		return
	}
	s.listener.OnReply(reply)
}

func (s *Session) connectionLost(err error) {
	s.mu.Lock()
	closing := s.closing
	s.lost = true
	s.mu.Unlock()
	if closing {
		s.log.Debug("Read loop stopped after close")
		return
	}
	s.log.Warn("Connection lost", "error", err)
	s.listener.OnClosed(err)
}

// Close sends DISCONNECT and releases the transport.
// A handshake still running is abandoned once it completes.
func (s *Session) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.closing = true
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	_ = conn.WriteFrame(stomp.Disconnect(""))
	return conn.Close()
}

package server

import (
	"bot-chat/domain/chat"
	"bot-chat/errors"
	"bot-chat/stomp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Endpoint is the STOMP broker of the bot: one session per WebSocket connection,
// application destinations routed to the BotController, replies pushed on the user queue.
type Endpoint struct {
	log          *slog.Logger
	bot          *BotController
	metrics      *Metrics
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
}

func NewEndpoint(log *slog.Logger, bot *BotController, metrics *Metrics, writeTimeout time.Duration) *Endpoint {
	return &Endpoint{
		log:     log,
		bot:     bot,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			Subprotocols: stomp.Subprotocols,
			CheckOrigin:  func(r *http.Request) bool { return true },
		},
		writeTimeout: writeTimeout,
	}
}

func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := e.upgrader.Upgrade(w, r, nil)
	if err != nil {
		e.log.Debug("WebSocket upgrade refused", "remote", r.RemoteAddr, "error", err)
		return
	}
	e.Serve(r.Context(), stomp.NewWSConn(ws, e.writeTimeout))
}

// session is the server side of one client connection.
type session struct {
	id            string
	conn          stomp.FrameConn
	mu            sync.Mutex
	subscriptions map[string]string
}

func (s *session) SessionID() string {
	return s.id
}

// Reply pushes a MESSAGE to every subscription on the reply queue.
// Without such a subscription the reply is dropped, as a broker would.
func (s *session) Reply(reply chat.ReplyMessage) error {
	body, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	s.mu.Lock()
	var targets []string
	for id, destination := range s.subscriptions {
		if destination == stomp.ReplyQueue {
			targets = append(targets, id)
		}
	}
	s.mu.Unlock()

	for _, id := range targets {
		f := stomp.Message(stomp.ReplyQueue, id, uuid.NewString(), stomp.ContentTypeJSON, body)
		if err := s.conn.WriteFrame(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) subscribe(id, destination string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions[id] = destination
}

func (s *session) unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscriptions, id)
}

// Serve runs a STOMP session until the client disconnects, the transport fails
// or a protocol violation is answered with an ERROR frame.
func (e *Endpoint) Serve(ctx context.Context, conn stomp.FrameConn) {
	defer func() { _ = conn.Close() }()

	s := &session{id: uuid.NewString(), conn: conn, subscriptions: make(map[string]string)}
	if err := e.handshake(s); err != nil {
		e.log.Debug("Handshake rejected", "error", err)
		return
	}

	e.metrics.Connections.Inc()
	defer e.metrics.Connections.Dec()
	defer e.bot.SessionClosed(s.id)
	e.log.Info("Session opened", "session_id", s.id)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		f, err := conn.ReadFrame()
		if err != nil {
			e.log.Info("Session closed", "session_id", s.id, "reason", err)
			return
		}
		e.metrics.FrameReceived(f.Command)

		done, err := e.handle(ctx, s, f)
		if err != nil {
			e.protocolError(s, err)
			return
		}
		if receipt := f.Header.Get(frame.Receipt); receipt != "" {
			if err := conn.WriteFrame(stomp.Receipt(receipt)); err != nil {
				return
			}
		}
		if done {
			e.log.Info("Session disconnected", "session_id", s.id)
			return
		}
	}
}

func (e *Endpoint) handshake(s *session) error {
	f, err := s.conn.ReadFrame()
	if err != nil {
		return err
	}
	e.metrics.FrameReceived(f.Command)
	if f.Command != frame.CONNECT && f.Command != frame.STOMP {
		err := fmt.Errorf("%w: expected CONNECT, got %s", errors.ErrProtocol, f.Command)
		e.protocolError(s, err)
		return err
	}
	return s.conn.WriteFrame(stomp.Connected(s.id))
}

// handle processes one client frame. done is true once the client asked to disconnect.
func (e *Endpoint) handle(ctx context.Context, s *session, f *frame.Frame) (done bool, err error) {
	switch f.Command {
	case frame.SUBSCRIBE:
		id, destination := f.Header.Get(frame.Id), f.Header.Get(frame.Destination)
		if id == "" || destination == "" {
			return false, fmt.Errorf("%w: SUBSCRIBE needs id and destination", errors.ErrProtocol)
		}
		s.subscribe(id, destination)
		e.log.Debug("Subscribed", "session_id", s.id, "destination", destination)
	case frame.UNSUBSCRIBE:
		id := f.Header.Get(frame.Id)
		if id == "" {
			return false, fmt.Errorf("%w: UNSUBSCRIBE needs id", errors.ErrProtocol)
		}
		s.unsubscribe(id)
	case frame.SEND:
		return false, e.route(ctx, s, f)
	case frame.DISCONNECT:
		return true, nil
	case frame.ACK, frame.NACK:
		// Replies are sent with ack:auto, nothing to track.
	default:
		return false, fmt.Errorf("%w: unsupported command %s", errors.ErrProtocol, f.Command)
	}
	return false, nil
}

func (e *Endpoint) route(ctx context.Context, s *session, f *frame.Frame) error {
	destination := f.Header.Get(frame.Destination)
	switch destination {
	case "":
		return fmt.Errorf("%w: SEND needs a destination", errors.ErrProtocol)
	case stomp.InitDestination:
		e.bot.InitChat(ctx, s)
	case stomp.UserDestination:
		msg, err := chat.ParseChatMessage(f.Body)
		if err != nil {
			return fmt.Errorf("%w: invalid chat message: %v", errors.ErrProtocol, err)
		}
		e.bot.HandleUserMessage(ctx, s, msg)
	default:
		e.log.Debug("No handler for destination", "session_id", s.id, "destination", destination)
	}
	return nil
}

func (e *Endpoint) protocolError(s *session, err error) {
	e.metrics.ProtocolErrors.Inc()
	e.log.Warn("Protocol error", "session_id", s.id, "error", err)
	_ = s.conn.WriteFrame(stomp.Error(err.Error(), ""))
}

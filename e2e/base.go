package e2e

import (
	"bot-chat/ai"
	"bot-chat/client"
	"bot-chat/domain/chat"
	"bot-chat/engine"
	"bot-chat/flow"
	"bot-chat/repositories"
	"bot-chat/server"
	"bot-chat/stomp"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseChatSuite struct {
	suite.Suite
	Config  Config
	baseURL string
	cleanup []func()
}

// SetupSuite loads the environment configuration and, without SERVER_URL,
// boots the whole server stack seeded with the support flow.
func (s *BaseChatSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerURL != "" {
		s.baseURL = strings.TrimRight(s.Config.ServerURL, "/")
		return
	}

	dir, err := os.MkdirTemp("", "bot-chat-e2e")
	s.Require().NoError(err)
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	repo := repositories.NewFlowRepository(db, log)
	holder := flow.NewHolder(log)
	seed, err := os.ReadFile("../flow/testdata/support.json")
	s.Require().NoError(err)
	s.Require().NoError(server.LoadActiveFlow(log, repo, holder, seed))

	metrics := server.NewMetrics()
	health := server.NewHealth(log, holder, repo)
	bot := server.NewBotController(log, engine.NewEngine(log, holder, ai.NoopDetector{}), nil, metrics)
	httpServer := httptest.NewServer(server.NewRouter(
		server.NewEndpoint(log, bot, metrics, time.Second),
		server.NewConfigAPI(log, repo, holder, metrics),
		health,
		metrics,
	))
	s.baseURL = httpServer.URL
	s.cleanup = append(s.cleanup, httpServer.Close, func() { _ = db.Close() }, func() { _ = os.RemoveAll(dir) })
}

func (s *BaseChatSuite) TearDownSuite() {
	for _, fn := range s.cleanup {
		fn()
	}
}

// Step prints a header for a scenario step in the test log.
func (s *BaseChatSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Conversation is a connected chat client with its received events.
type Conversation struct {
	Session *client.Session
	events  *eventListener
	timeout time.Duration
}

// WithConversation opens a client session and waits for Ready before calling fn.
func (s *BaseChatSuite) WithConversation(name string, fn func(c *Conversation)) {
	s.Step(name)
	events := newEventListener()
	session := client.NewSession(
		logs.GetLoggerFromLevel(slog.LevelWarn),
		stomp.Dialer{HandshakeTimeout: s.Config.Timeout, WriteTimeout: s.Config.Timeout},
		events,
		client.Config{
			Endpoint:         "ws" + strings.TrimPrefix(s.baseURL, "http") + "/ws",
			SendQueueSize:    4,
			HandshakeTimeout: s.Config.Timeout,
		},
	)
	defer func() { _ = session.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Timeout)
	defer cancel()
	s.Require().NoError(session.Connect(ctx))
	s.Require().Equal(client.Ready, session.State())

	fn(&Conversation{Session: session, events: events, timeout: s.Config.Timeout})
}

// NextReply waits for the next pushed reply.
func (c *Conversation) NextReply() (chat.ReplyMessage, bool) {
	select {
	case reply := <-c.events.replies:
		return reply, true
	case <-time.After(c.timeout):
		return chat.ReplyMessage{}, false
	}
}

// UploadFlow posts a flow document to the admin API.
func (s *BaseChatSuite) UploadFlow(raw []byte) (int, map[string]string) {
	resp, err := http.Post(s.baseURL+"/api/config", "application/json", bytes.NewReader(raw))
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

type eventListener struct {
	replies chan chat.ReplyMessage
	failed  chan string
}

func newEventListener() *eventListener {
	return &eventListener{replies: make(chan chat.ReplyMessage, 32), failed: make(chan string, 1)}
}

func (l *eventListener) OnReady()                        {}
func (l *eventListener) OnFailed(reason string)          { l.failed <- reason }
func (l *eventListener) OnReply(reply chat.ReplyMessage) { l.replies <- reply }
func (l *eventListener) OnClosed(error)                  {}

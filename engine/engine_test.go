package engine

import (
	"bot-chat/flow"
	"bot-chat/mocks"
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEngine(t *testing.T, f *flow.Flow) (*Engine, *mocks.MockIntentDetector) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	holder := flow.NewHolder(log)
	holder.SetFlow(f)
	detector := mocks.NewMockIntentDetector(gomock.NewController(t))
	return NewEngine(log, holder, detector), detector
}

func write(id, message, next string) flow.Block {
	return flow.Block{ID: id, Type: flow.WriteMessage, Message: message, Next: next}
}

func keywordRoute(next string, keywords ...string) flow.Route {
	return flow.Route{Match: &flow.MatchSpec{Type: flow.Keyword, AnyOf: keywords}, Next: next}
}

func intentRoute(next string, intents ...string) flow.Route {
	return flow.Route{Match: &flow.MatchSpec{Type: flow.Intent, AnyOf: intents}, Next: next}
}

func fallbackRoute(next string) flow.Route {
	return flow.Route{Match: &flow.MatchSpec{Type: flow.Fallback}, Next: next}
}

func TestEngine_Start_WritesUntilWaitBlock(t *testing.T) {
	req := require.New(t)
	// Given a greeting followed by a wait block
	e, _ := newEngine(t, &flow.Flow{StartBlockID: "greeting", Blocks: []flow.Block{
		write("greeting", "Hello", "wait"),
		{ID: "wait", Type: flow.WaitForResponse},
	}})

	// When the session starts
	messages := e.Start(context.Background(), "session1")

	// Then the greeting is returned and the session waits
	req.Equal([]string{"Hello"}, messages)
	current, ok := e.CurrentBlock("session1")
	req.True(ok)
	req.Equal("wait", current)
}

func TestEngine_Start_WithoutFlow(t *testing.T) {
	req := require.New(t)
	e, _ := newEngine(t, nil)

	req.Empty(e.Start(context.Background(), "s"))
	req.Empty(e.OnUserMessage(context.Background(), "s", "hello"))
	req.Zero(e.Sessions())
}

func TestEngine_WaitForResponse_UsesKeywords(t *testing.T) {
	req := require.New(t)
	// Given greeting -> wait -> price
	e, _ := newEngine(t, &flow.Flow{StartBlockID: "greeting", Blocks: []flow.Block{
		write("greeting", "Hi", "wait"),
		{ID: "wait", Type: flow.WaitForResponse, On: []flow.Route{keywordRoute("price", "price")}},
		write("price", "Price is 49", ""),
	}})
	e.Start(context.Background(), "session2")

	// When the user asks for the price
	replies := e.OnUserMessage(context.Background(), "session2", "What is the PRICE?")

	// Then the price is written and the session keeps waiting on the same block
	req.Equal([]string{"Price is 49"}, replies)
	current, _ := e.CurrentBlock("session2")
	req.Equal("wait", current)
}

func TestEngine_UnknownSession_StartsOver(t *testing.T) {
	req := require.New(t)
	e, _ := newEngine(t, &flow.Flow{StartBlockID: "greeting", Blocks: []flow.Block{
		write("greeting", "Hi", "wait"),
		{ID: "wait", Type: flow.WaitForResponse},
	}})

	replies := e.OnUserMessage(context.Background(), "fresh", "anything")

	req.Equal([]string{"Hi"}, replies)
}

func TestEngine_CurrentBlockGone_StartsOver(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	holder := flow.NewHolder(log)
	holder.SetFlow(&flow.Flow{StartBlockID: "a", Blocks: []flow.Block{
		write("a", "first flow", "wait-a"),
		{ID: "wait-a", Type: flow.WaitForResponse},
	}})
	e := NewEngine(log, holder, nil)
	e.Start(context.Background(), "s")

	// Given the active flow is replaced
	holder.SetFlow(&flow.Flow{StartBlockID: "b", Blocks: []flow.Block{
		write("b", "second flow", "wait-b"),
		{ID: "wait-b", Type: flow.WaitForResponse},
	}})

	// Then the session starts the new flow
	req.Equal([]string{"second flow"}, e.OnUserMessage(context.Background(), "s", "hello"))
}

func TestEngine_DetectIntent_UsesDetector(t *testing.T) {
	req := require.New(t)
	e, detector := newEngine(t, &flow.Flow{StartBlockID: "detect", Blocks: []flow.Block{
		{ID: "detect", Type: flow.DetectResponseIntent, Fallback: "fallbackBlock", Intents: []flow.IntentOption{
			{Name: "price", Keywords: []string{"price"}, Next: "priceBlock"},
		}},
		write("priceBlock", "Price is 49", ""),
		write("fallbackBlock", "Fallback", ""),
	}})
	e.Start(context.Background(), "sess3")

	// Given the detector recognises the intent in another case
	detector.EXPECT().DetectIntent(gomock.Any(), "How much?", []string{"price"}).Return("PRICE", nil)

	replies := e.OnUserMessage(context.Background(), "sess3", "How much?")

	req.Equal([]string{"Price is 49"}, replies)
}

func TestEngine_DetectIntent_FallsBackToKeywordsThenFallback(t *testing.T) {
	req := require.New(t)
	e, detector := newEngine(t, &flow.Flow{StartBlockID: "detect", Blocks: []flow.Block{
		{ID: "detect", Type: flow.DetectResponseIntent, Fallback: "fallbackBlock", Intents: []flow.IntentOption{
			{Name: "price", Keywords: []string{"price"}, Next: "priceBlock"},
			{Name: "hours", Keywords: []string{"hours"}, Next: "hoursBlock"},
		}},
		write("priceBlock", "Price", ""),
		write("hoursBlock", "9 to 5", ""),
		write("fallbackBlock", "Sorry, I didn't understand.", ""),
	}})
	e.Start(context.Background(), "sess4")

	// Given the detector finds nothing or fails
	detector.EXPECT().DetectIntent(gomock.Any(), gomock.Any(), []string{"price", "hours"}).Return("", nil)
	detector.EXPECT().DetectIntent(gomock.Any(), gomock.Any(), gomock.Any()).Return("", fmt.Errorf("timeout"))

	// Then keywords decide when they match
	req.Equal([]string{"9 to 5"}, e.OnUserMessage(context.Background(), "sess4", "What are your HOURS?"))
	// And the fallback answers otherwise
	req.Equal([]string{"Sorry, I didn't understand."}, e.OnUserMessage(context.Background(), "sess4", "Hello there"))
}

func TestEngine_DetectIntent_LegacyRoutes(t *testing.T) {
	detect := flow.Block{ID: "detect", Type: flow.DetectResponseIntent, On: []flow.Route{
		intentRoute("priceBlock", "price", "cost"),
		keywordRoute("hoursBlock", "open"),
		fallbackRoute("fallbackBlock"),
	}}
	f := &flow.Flow{StartBlockID: "detect", Blocks: []flow.Block{
		detect,
		write("priceBlock", "Price", ""),
		write("hoursBlock", "Hours", ""),
		write("fallbackBlock", "Fallback", ""),
	}}

	tests := []struct {
		name     string
		text     string
		detected string
		err      error
		expected []string
	}{
		{"detected intent routes", "how much is it", "cost", nil, []string{"Price"}},
		{"nothing detected uses keywords", "are you open", "", nil, []string{"Hours"}},
		{"detector error uses keywords", "are you open", "", fmt.Errorf("boom"), []string{"Hours"}},
		{"nothing matches uses fallback route", "hello", "", nil, []string{"Fallback"}},
		{"detected intent without route uses keywords", "are you open", "refund", nil, []string{"Hours"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			e, detector := newEngine(t, f)
			e.Start(context.Background(), "s")
			detector.EXPECT().DetectIntent(gomock.Any(), tt.text, []string{"price", "cost"}).Return(tt.detected, tt.err)

			req.Equal(tt.expected, e.OnUserMessage(context.Background(), "s", tt.text))
		})
	}
}

func TestEngine_LoopWithoutWait_Stops(t *testing.T) {
	req := require.New(t)
	e, _ := newEngine(t, &flow.Flow{StartBlockID: "a", Blocks: []flow.Block{
		write("a", "ping", "b"),
		write("b", "pong", "a"),
	}})

	messages := e.Start(context.Background(), "s")

	req.NotEmpty(messages)
	req.LessOrEqual(len(messages), 3)
	_, ok := e.CurrentBlock("s")
	req.False(ok)
}

func TestEngine_DanglingNext_Stops(t *testing.T) {
	req := require.New(t)
	e, _ := newEngine(t, &flow.Flow{StartBlockID: "a", Blocks: []flow.Block{
		write("a", "only", "missing"),
	}})

	req.Equal([]string{"only"}, e.Start(context.Background(), "s"))
}

func TestEngine_Forget(t *testing.T) {
	req := require.New(t)
	e, _ := newEngine(t, &flow.Flow{StartBlockID: "wait", Blocks: []flow.Block{
		{ID: "wait", Type: flow.WaitForResponse},
	}})
	e.Start(context.Background(), "s")
	req.Equal(1, e.Sessions())

	e.Forget("s")

	req.Zero(e.Sessions())
}

func TestEngine_SupportFlow(t *testing.T) {
	req := require.New(t)
	data, err := os.ReadFile("../flow/testdata/support.json")
	req.NoError(err)
	f, err := flow.Decode(data)
	req.NoError(err)
	log := slog.Default()
	holder := flow.NewHolder(log)
	holder.SetFlow(&f)
	e := NewEngine(log, holder, nil)
	ctx := context.Background()

	req.Equal([]string{
		"Hello! I am the support bot.",
		"Do you want to know our prices or our opening hours?",
	}, e.Start(ctx, "s"))
	req.Equal([]string{"The price is 49 EUR per month."}, e.OnUserMessage(ctx, "s", "what does it cost"))

	// The fallback route leads to the intent block
	req.Empty(e.OnUserMessage(ctx, "s", "something else"))
	current, _ := e.CurrentBlock("s")
	req.Equal("detect", current)

	// Without a detector, intent keywords apply
	req.Equal([]string{"Refunds are processed within 14 days."}, e.OnUserMessage(ctx, "s", "I want my money back"))
	current, _ = e.CurrentBlock("s")
	req.Equal("wait", current)
}

package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

const apiURL = "http://openai.test/v1/chat/completions"

type fakeCompletions struct {
	status  int
	answer  string
	calls   atomic.Int32
	lastReq atomic.Pointer[completionRequest]
	auth    atomic.Value
}

func (f *fakeCompletions) handle(ctx *fasthttp.RequestCtx) {
	f.calls.Add(1)
	f.auth.Store(string(ctx.Request.Header.Peek("Authorization")))
	var req completionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err == nil {
		f.lastReq.Store(&req)
	}
	ctx.SetStatusCode(f.status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": f.answer}}},
	})
	_, _ = ctx.Write(body)
}

func newDetector(t *testing.T, fake *fakeCompletions, apiKey string) *OpenAIDetector {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	t.Cleanup(func() { _ = ln.Close() })
	go func() { _ = fasthttp.Serve(ln, fake.handle) }()

	client := &fasthttp.Client{Dial: func(string) (net.Conn, error) { return ln.Dial() }}
	return NewOpenAIDetector(slog.Default(), client, OpenAIConfig{
		APIKey:  apiKey,
		APIURL:  apiURL,
		Timeout: time.Second,
	})
}

func TestOpenAIDetector_MatchesCandidateIgnoringCase(t *testing.T) {
	req := require.New(t)
	fake := &fakeCompletions{status: fasthttp.StatusOK, answer: "  PRICE \n"}
	detector := newDetector(t, fake, "secret")

	// When the model answers with a candidate in another case
	intent, err := detector.DetectIntent(context.Background(), "How much?", []string{"hours", "price"})

	// Then the candidate spelling is returned
	req.NoError(err)
	req.Equal("price", intent)

	// And the request follows the classifier contract
	req.Equal("Bearer secret", fake.auth.Load())
	sent := fake.lastReq.Load()
	req.NotNil(sent)
	req.Equal(DefaultModel, sent.Model)
	req.Equal(maxTokens, sent.MaxTokens)
	req.Zero(sent.Temperature)
	req.Len(sent.Messages, 2)
	req.Equal("system", sent.Messages[0].Role)
	req.Equal("Possible intents: hours, price\nUser message: How much?\nIntent:", sent.Messages[1].Content)
}

func TestOpenAIDetector_NoneAnswer(t *testing.T) {
	req := require.New(t)
	fake := &fakeCompletions{status: fasthttp.StatusOK, answer: "NONE"}
	detector := newDetector(t, fake, "secret")

	intent, err := detector.DetectIntent(context.Background(), "Hello there", []string{"price"})

	req.NoError(err)
	req.Empty(intent)
}

func TestOpenAIDetector_ErrorStatus(t *testing.T) {
	req := require.New(t)
	fake := &fakeCompletions{status: fasthttp.StatusTooManyRequests, answer: "price"}
	detector := newDetector(t, fake, "secret")

	intent, err := detector.DetectIntent(context.Background(), "How much?", []string{"price"})

	req.Error(err)
	req.Contains(err.Error(), "429")
	req.Empty(intent)
}

func TestOpenAIDetector_WithoutKey_SendsNothing(t *testing.T) {
	req := require.New(t)
	fake := &fakeCompletions{status: fasthttp.StatusOK, answer: "price"}
	detector := newDetector(t, fake, "")

	intent, err := detector.DetectIntent(context.Background(), "How much?", []string{"price"})

	req.NoError(err)
	req.Empty(intent)
	req.Zero(fake.calls.Load())
}

func TestOpenAIDetector_NoCandidates(t *testing.T) {
	req := require.New(t)
	fake := &fakeCompletions{status: fasthttp.StatusOK, answer: "price"}
	detector := newDetector(t, fake, "secret")

	intent, err := detector.DetectIntent(context.Background(), "How much?", nil)

	req.NoError(err)
	req.Empty(intent)
	req.Zero(fake.calls.Load())
}

func TestNoopDetector(t *testing.T) {
	intent, err := NoopDetector{}.DetectIntent(context.Background(), "anything", []string{"price"})
	require.NoError(t, err)
	require.Empty(t, intent)
}

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/valyala/fasthttp"
)

const (
	DefaultModel  = "gpt-3.5-turbo"
	DefaultAPIURL = "https://api.openai.com/v1/chat/completions"

	systemPrompt = "You are an intent classifier. You will be provided with a set of possible intents and a user message. " +
		"Return the name of the intent that best matches the user message. If none of the intents apply, return NONE."
	maxTokens = 10
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

// OpenAIDetector asks a chat completions endpoint to pick the intent.
// Without an API key it detects nothing and sends no request.
type OpenAIDetector struct {
	log    *slog.Logger
	client *fasthttp.Client
	config OpenAIConfig
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message *chatMessage `json:"message"`
		Text    string       `json:"text"`
	} `json:"choices"`
}

func NewOpenAIDetector(log *slog.Logger, client *fasthttp.Client, config OpenAIConfig) *OpenAIDetector {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if client == nil {
		client = &fasthttp.Client{Name: "bot-chat"}
	}
	return &OpenAIDetector{log: log, client: client, config: config}
}

func (d *OpenAIDetector) DetectIntent(ctx context.Context, text string, intents []string) (string, error) {
	if strings.TrimSpace(d.config.APIKey) == "" || len(intents) == 0 {
		return "", nil
	}

	body, err := json.Marshal(completionRequest{
		Model: d.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(text, intents)},
		},
		MaxTokens:   maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(d.config.APIURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+d.config.APIKey)
	req.SetBody(body)

	deadline := time.Now().Add(d.config.Timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := d.client.DoDeadline(req, resp, deadline); err != nil {
		return "", fmt.Errorf("intent request: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("intent request: status %d: %s", status, truncate(string(resp.Body()), 200))
	}

	var completion completionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("intent response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	first := completion.Choices[0]
	content := first.Text
	if first.Message != nil {
		content = first.Message.Content
	}
	answer := strings.TrimSpace(content)

	intent, found := lo.Find(intents, func(candidate string) bool {
		return strings.EqualFold(candidate, answer)
	})
	if !found {
		d.log.Debug("No intent recognised", "answer", answer)
		return "", nil
	}
	return intent, nil
}

func userPrompt(text string, intents []string) string {
	return "Possible intents: " + strings.Join(intents, ", ") + "\n" +
		"User message: " + text + "\n" +
		"Intent:"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package llm

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/prompt"
	openai "github.com/sashabaranov/go-openai"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// newOpenAIClient is a seam for tests.
var newOpenAIClient = func(cfg openai.ClientConfig) chatCompleter {
	return openai.NewClientWithConfig(cfg)
}

type OpenAIClient struct {
	api chatCompleter
}

// NewOpenAIClient builds a client for apiKey. An empty baseURL keeps the
// public endpoint; otherwise any OpenAI-compatible server can be used.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIClient{api: newOpenAIClient(cfg)}
}

func (c *OpenAIClient) Invoke(ctx context.Context, p prompt.Bundle, cfg InvokeConfig) (string, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		// zero is omitted from the request body and the server would
		// apply its own default.
		Temperature: cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if req.Temperature == 0 {
		req.Temperature = math.SmallestNonzeroFloat32
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(ctx, err)
	}
	if len(resp.Choices) == 0 {
		return "", errs.New(errs.TransportError, "model returned no choices")
	}

	choice := resp.Choices[0]
	switch choice.FinishReason {
	case openai.FinishReasonContentFilter:
		return "", errs.New(errs.ContentRejected, "response blocked by content filter")
	case openai.FinishReasonLength:
		// Retrying with the same max_tokens truncates again.
		return "", errs.New(errs.InvalidRequest, "response truncated at max tokens")
	}
	return choice.Message.Content, nil
}

// classify maps a transport or API failure to an invocation kind.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errs.Wrap(errs.Timeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code == "content_filter" {
			return errs.Wrap(errs.ContentRejected, err)
		}
		return errs.Wrap(kindForStatus(apiErr.HTTPStatusCode), err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return errs.Wrap(kindForStatus(reqErr.HTTPStatusCode), err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.Wrap(errs.Timeout, err)
	}
	return errs.Wrap(errs.TransportError, err)
}

func kindForStatus(code int) errs.Kind {
	switch {
	case code == http.StatusTooManyRequests:
		return errs.RateLimited
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return errs.Timeout
	case code >= 500 || code == 0:
		return errs.TransportError
	default:
		return errs.InvalidRequest
	}
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"expense-bot/internal/config"
	"expense-bot/internal/dto"
)

var (
	ErrTelegramAPI = errors.New("telegram api error")
)

// TelegramAPIError is a Bot API reply with ok=false
type TelegramAPIError struct {
	Method      string
	StatusCode  int
	Description string
	RetryAfter  int
}

func (e *TelegramAPIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.StatusCode, e.Description)
}

func (e *TelegramAPIError) Unwrap() error {
	return ErrTelegramAPI
}

// Temporary reports whether the failure is on Telegram's side or a flood wait
func (e *TelegramAPIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// BotTokenTransport prefixes every request path with /bot<token>. Callers and
// logs only ever see the bare method path.
type BotTokenTransport struct {
	token string
	base  http.RoundTripper
}

func (t *BotTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.URL.Path = "/bot" + t.token + req.URL.Path
	req.URL.RawPath = ""
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

// TelegramClient calls the Telegram Bot API
type TelegramClient struct {
	config         *config.TelegramConfig
	client         *http.Client
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

func NewTelegramClient(
	cfg *config.TelegramConfig,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TelegramClientInterface {
	return newTelegramClient(cfg, http.DefaultTransport, circuitBreaker, metrics, logger)
}

func newTelegramClient(
	cfg *config.TelegramConfig,
	base http.RoundTripper,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *TelegramClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := &http.Client{
		Transport: &BotTokenTransport{
			token: cfg.BotToken,
			base:  base,
		},
		Timeout: timeout,
	}

	return &TelegramClient{
		config:         cfg,
		client:         client,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		logger:         logger,
	}
}

func (c *TelegramClient) buildRequest(ctx context.Context, method string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIBaseURL+"/"+method, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *TelegramClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error(
			"telegram request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

// call posts body to the Bot API method and decodes the result field into out
func (c *TelegramClient) call(ctx context.Context, method string, body any, out any) error {
	if c.circuitBreaker.IsOpen() {
		c.recordCall(method, "circuit_open")
		return fmt.Errorf("telegram %s: %w", method, ErrCircuitBreakerOpen)
	}

	start := time.Now()
	defer func() {
		c.metrics.RecordProcessingTime("telegram.call", time.Since(start))
	}()

	req, err := c.buildRequest(ctx, method, body)
	if err != nil {
		return err
	}

	resp, respBody, err := c.do(req)
	if err != nil {
		c.circuitBreaker.RecordFailure()
		c.recordCall(method, "network_error")
		return fmt.Errorf("telegram %s: %w", method, err)
	}

	var envelope dto.APIResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		c.circuitBreaker.RecordFailure()
		c.recordCall(method, "invalid_response")
		return fmt.Errorf("decode telegram %s response (%d): %w", method, resp.StatusCode, err)
	}

	if !envelope.OK {
		apiErr := &TelegramAPIError{
			Method:      method,
			StatusCode:  envelope.ErrorCode,
			Description: envelope.Description,
		}
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		if envelope.Parameters != nil {
			apiErr.RetryAfter = envelope.Parameters.RetryAfter
		}

		if apiErr.Temporary() {
			c.circuitBreaker.RecordFailure()
		} else {
			c.circuitBreaker.RecordSuccess()
		}
		c.recordCall(method, "api_error")

		c.logger.Warn(
			"telegram api error",
			"method", method,
			"status", apiErr.StatusCode,
			"description", apiErr.Description,
			"retry_after", apiErr.RetryAfter,
		)
		return apiErr
	}

	c.circuitBreaker.RecordSuccess()
	c.recordCall(method, "ok")

	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decode telegram %s result: %w", method, err)
		}
	}

	return nil
}

func (c *TelegramClient) recordCall(method, status string) {
	c.metrics.IncrementCounter("telegram.call", map[string]string{
		"method": method,
		"status": status,
	})
}

func (c *TelegramClient) GetMe(ctx context.Context) (*dto.User, error) {
	var user dto.User
	if err := c.call(ctx, "getMe", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *TelegramClient) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.Message, error) {
	var msg dto.Message
	if err := c.call(ctx, "sendMessage", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *TelegramClient) EditMessageText(ctx context.Context, req *dto.EditMessageTextRequest) error {
	return c.call(ctx, "editMessageText", req, nil)
}

func (c *TelegramClient) AnswerCallbackQuery(ctx context.Context, req *dto.AnswerCallbackQueryRequest) error {
	return c.call(ctx, "answerCallbackQuery", req, nil)
}

func (c *TelegramClient) SetWebhook(ctx context.Context, req *dto.SetWebhookRequest) error {
	return c.call(ctx, "setWebhook", req, nil)
}

func (c *TelegramClient) DeleteWebhook(ctx context.Context, dropPendingUpdates bool) error {
	return c.call(ctx, "deleteWebhook", &dto.DeleteWebhookRequest{DropPendingUpdates: dropPendingUpdates}, nil)
}

func (c *TelegramClient) GetWebhookInfo(ctx context.Context) (*dto.WebhookInfo, error) {
	var info dto.WebhookInfo
	if err := c.call(ctx, "getWebhookInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Package mailer клиент HTTP API транзакционной почты.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"freight/internal/entities"
	retrierconfig "freight/pkg/retrier"
	"freight/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "mailer"
	methodSend  = "Send"

	maxErrorBody = 512
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// StatusError ответ API с не-2xx кодом.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mailer responded %d: %s", e.Code, e.Body)
}

type Gateway struct {
	client  httpClient
	retrier retrier
	url     string
	apiKey  string
	sender  string
}

func New(client httpClient, url, apiKey, sender string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		url:     url,
		apiKey:  apiKey,
		sender:  sender,
	}
}

// Send одно письмо одному получателю.
func (g *Gateway) Send(ctx context.Context, mail entities.Mail) error {
	body, err := json.Marshal(toRequest(g.sender, mail))
	if err != nil {
		return fmt.Errorf("gateway mailer, encode request: %w", err)
	}

	err = g.executeWithMetrics(ctx, methodSend, func(ctx context.Context) error {
		return g.post(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("gateway mailer, send to %s: %w", mail.To, err)
	}
	return nil
}

func (g *Gateway) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Code: resp.StatusCode, Body: string(snippet)}
}

// isRetryable 429 и 5xx повторяются, остальные коды окончательные.
// Сетевые ошибки повторяются, отмена контекста нет.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= http.StatusInternalServerError
	}
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Add(float64(attempt - 1))
	}

	return err
}

func statusCode(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "UNKNOWN"
}

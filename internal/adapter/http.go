package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/models"
)

const (
	pushPath = "/api/sync/push"

	pushRetryCount   = 2
	pushRetryWait    = 200 * time.Millisecond
	pushRetryMaxWait = 2 * time.Second
)

type httpTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP/REST implementation of [Transport].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and a short retry budget for transient failures.
func NewHTTPTransport(cfg config.Adapter, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient().WithRetry(pushRetryCount, pushRetryWait, pushRetryMaxWait)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpTransport{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Push implements [Transport]. It POSTs the batch to POST /api/sync/push and
// decodes the acknowledgement. An empty batch is not sent.
func (h *httpTransport) Push(ctx context.Context, items []models.SyncItem) (models.PushResult, error) {
	if len(items) == 0 {
		return models.PushResult{}, nil
	}

	req := models.PushRequest{Items: items, Length: len(items)}

	request := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)
	if traceID := utils.TraceIDFromContext(ctx); traceID != "" {
		request.SetHeader(utils.TraceIDHeader, traceID)
	}

	resp, err := request.Post(pushPath)
	if err != nil {
		return models.PushResult{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResult{}, err
	}

	var result models.PushResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.PushResult{}, fmt.Errorf("decode push response: %w", err)
	}

	h.logger.Debug().
		Str("func", "httpTransport.Push").
		Int("sent", len(items)).
		Int("synced", len(result.Synced)).
		Int("failed", len(result.Failed)).
		Msg("batch pushed")

	return result, nil
}

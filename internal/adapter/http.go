package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-paste-decrypt/internal/config"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/internal/utils"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

const (
	headerRequestedWith = "X-Requested-With"
	headerRequestID     = "X-Request-ID"
	requestedWithJSON   = "JSONHttpRequest"
)

type httpFetcher struct {
	client  *utils.HTTPClient
	baseURL string
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPFetcher constructs the HTTP implementation of [Fetcher]. It
// validates adapterCfg.BaseURL, which is used for links that carry no base
// URL of their own, and configures the underlying client with the request
// timeout and retry policy.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPFetcher(adapterCfg config.Adapter, logger *logger.Logger) (Fetcher, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:       adapterCfg.RequestTimeout,
		RetryCount:    adapterCfg.RetryCount,
		RetryWaitTime: adapterCfg.RetryWaitTime,
	})

	return &httpFetcher{
		client:  client,
		baseURL: baseURL,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("address must not include a query or fragment")
	}

	return u.String(), nil
}

// pasteStatus is the part of the paste service reply that reports errors.
type pasteStatus struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Fetch implements [Fetcher]. It first requests the paste page so that the
// service sets its cookies, then requests the JSON document with
// ?pasteid={id}. A reply with a non-zero status is reported as
// [ErrPasteUnavailable] carrying the server message.
func (h *httpFetcher) Fetch(ctx context.Context, link models.Link) (models.Envelope, error) {
	if link.PasteID == "" {
		return models.Envelope{}, ErrInvalidPasteID
	}

	base := h.baseURL
	if link.BaseURL != "" {
		normalized, err := normalizeBaseURL(link.BaseURL)
		if err != nil {
			return models.Envelope{}, fmt.Errorf("invalid paste base url: %w", err)
		}
		base = normalized
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}
	log := h.logger.With().
		Str("paste_id", link.PasteID).
		Str("request_id", requestID).
		Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID).
		Get(base + "?" + link.PasteID)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("paste page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpFetcher.Fetch").Msg("paste page request failed")
		return models.Envelope{}, err
	}

	resp, err = h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(headerRequestedWith, requestedWithJSON).
		SetHeader(headerRequestID, requestID).
		SetQueryParam("pasteid", link.PasteID).
		Get(base)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("paste data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpFetcher.Fetch").Msg("paste data request failed")
		return models.Envelope{}, err
	}

	body := resp.Body()

	var status pasteStatus
	if err = json.Unmarshal(body, &status); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: paste reply: %v", models.ErrMetadataParse, err)
	}
	if status.Status != 0 {
		log.Warn().Str("func", "httpFetcher.Fetch").Int("status", status.Status).Msg(status.Message)
		return models.Envelope{}, fmt.Errorf("%w: %s", ErrPasteUnavailable, status.Message)
	}

	env, err := models.ParseEnvelope(body)
	if err != nil {
		return models.Envelope{}, err
	}

	log.Debug().Str("func", "httpFetcher.Fetch").Int("bytes", len(body)).Msg("envelope fetched")
	return env, nil
}

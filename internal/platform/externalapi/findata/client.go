package findata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"market_backend/internal/apperrors"
	"market_backend/internal/domain/repository"
	"market_backend/internal/logger"
)

// Findata issues authenticated GET calls to the Findata API and reshapes its
// payloads into canonical records.
type Findata struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Findata implements MarketRepository.
var _ repository.MarketRepository = (*Findata)(nil)

// New creates a Findata adapter with the given configuration and HTTP client.
func New(cfg Config, client *http.Client) *Findata {
	return &Findata{cfg: cfg, client: client}
}

// get performs one provider call and returns the normalized envelope.
// The API key is appended to every outgoing parameter set. Non-2xx statuses
// are classified here; no retries are performed.
func (f *Findata) get(ctx context.Context, endpoint string, params url.Values) (envelope, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", f.cfg.APIKey)

	u := fmt.Sprintf("%s/%s?%s", f.cfg.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return envelope{}, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		// Transport failure, timeout, or cancellation.
		return envelope{}, apperrors.Wrap(apperrors.ErrUnavailable, err)
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			logger.Get().Warnw("failed to close response body", "error", cerr)
		}
	}()

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return envelope{}, apperrors.Wrap(apperrors.ErrRateLimited, fmt.Errorf("findata http %d", res.StatusCode))
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return envelope{}, apperrors.Wrap(apperrors.ErrUpstreamUnauthorized, fmt.Errorf("findata http %d", res.StatusCode))
	case res.StatusCode < 200 || res.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return envelope{}, apperrors.Wrap(apperrors.ErrProvider,
			fmt.Errorf("findata http %d: %s", res.StatusCode, string(body)))
	}

	var raw rawEnvelope
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return envelope{}, f.badData("envelope", endpoint, err)
	}
	return normalize(raw), nil
}

// badData logs a malformed-payload failure and wraps it in the dedicated
// error class, so provider misbehavior stays distinguishable from a missing
// resource.
func (f *Findata) badData(what, endpoint string, err error) error {
	logger.Get().Warnw("malformed upstream payload",
		"provider", "findata",
		"endpoint", endpoint,
		"section", what,
		"error", err,
	)
	return apperrors.Wrap(apperrors.ErrBadUpstreamData, fmt.Errorf("%s: %w", what, err))
}

// decodePayload unmarshals an envelope payload into v, classifying failures
// as bad upstream data.
func (f *Findata) decodePayload(env envelope, endpoint string, v any) error {
	if err := json.Unmarshal(env.payload, v); err != nil {
		return f.badData("payload", endpoint, err)
	}
	return nil
}

// notFound builds the descriptive not-found error handlers surface as 404.
func notFound(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf(format, args...))
}

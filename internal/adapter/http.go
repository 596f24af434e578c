package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/config"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/session"
	"github.com/jander15/BathroomPass-sub000/internal/utils"
	"github.com/jander15/BathroomPass-sub000/models"
	"golang.org/x/sync/singleflight"
)

// refreshKey is the only key used in the refresh group: at most one refresh
// is outstanding for the whole process.
const refreshKey = "session-refresh"

type httpBackendAdapter struct {
	client   *utils.HTTPClient
	endpoint string

	session        *session.Session
	refreshGroup   singleflight.Group
	refreshTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP implementation of
// [BackendAdapter] bound to sess.
//
// The endpoint is adapterCfg.ProxyURL followed by adapterCfg.Endpoint; a CORS
// proxy takes the target URL as a plain suffix. Returns an error if the
// endpoint is empty or not an absolute URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, sess *session.Session, logger *logger.Logger) (BackendAdapter, error) {
	endpoint, err := normalizeEndpoint(adapterCfg.ProxyURL, adapterCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter endpoint: %w", err)
	}

	client := utils.NewHTTPClient()
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	refreshTimeout := adapterCfg.RefreshTimeout
	if refreshTimeout <= 0 {
		refreshTimeout = config.DefaultRefreshTimeout
	}

	return &httpBackendAdapter{
		client:         client,
		endpoint:       endpoint,
		session:        sess,
		refreshTimeout: refreshTimeout,
		logger:         logger,
	}, nil
}

func normalizeEndpoint(proxy, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty endpoint")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint must include host and scheme")
	}

	proxy = strings.TrimSpace(proxy)
	if proxy == "" {
		return u.String(), nil
	}

	p, err := url.Parse(proxy)
	if err != nil {
		return "", fmt.Errorf("invalid proxy: %w", err)
	}
	if p.Scheme == "" || p.Host == "" {
		return "", fmt.Errorf("proxy must include host and scheme")
	}

	return proxy + u.String(), nil
}

// Send implements [BackendAdapter].
func (h *httpBackendAdapter) Send(ctx context.Context, req models.Request) (models.Response, error) {
	stamped := h.session.Snapshot()
	if !stamped.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	resp, err := h.post(ctx, req.WithSession(stamped))
	if !errors.Is(err, ErrSessionExpired) {
		return resp, err
	}

	h.logger.Info().Str("action", req.Action()).Msg("session expired, waiting for refresh")
	if err = h.awaitRefresh(ctx, stamped); err != nil {
		return nil, err
	}

	current := h.session.Snapshot()
	if !current.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	// one retry only: a second expiry is surfaced to the caller
	resp, err = h.post(ctx, req.WithSession(current))
	if errors.Is(err, ErrSessionExpired) {
		h.logger.Warn().Str("action", req.Action()).Msg("session expired again after refresh")
	}
	return resp, err
}

// Exchange implements [BackendAdapter].
func (h *httpBackendAdapter) Exchange(ctx context.Context, req models.Request) (models.Response, error) {
	return h.post(ctx, req.Clone())
}

// awaitRefresh blocks until the credential stamped into a failed request has
// been replaced. It joins the in-flight refresh or starts one. The refresh
// itself runs under its own deadline and survives cancellation of ctx; only
// this caller's wait is abandoned when ctx ends.
func (h *httpBackendAdapter) awaitRefresh(ctx context.Context, stamped models.Session) error {
	if h.session.Snapshot().IDToken != stamped.IDToken {
		// a refresh completed after this request was stamped
		return nil
	}

	ch := h.refreshGroup.DoChan(refreshKey, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.refreshTimeout)
		defer cancel()
		return nil, h.refresh(refreshCtx, stamped)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return fmt.Errorf("%w: %w", ErrSessionExpired, res.Err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("await session refresh: %w", ctx.Err())
	}
}

// refresh exchanges the current credential for a new one. It is the only
// code path that rotates the session credential, and it posts directly so
// that its own failures never re-enter expiry handling.
func (h *httpBackendAdapter) refresh(ctx context.Context, stamped models.Session) error {
	current := h.session.Snapshot()
	if current.IDToken != stamped.IDToken {
		return nil
	}
	if !current.Authenticated() {
		return ErrNotAuthenticated
	}

	start := time.Now()
	resp, err := h.post(ctx, models.NewRequest(models.ActionRefreshToken, nil).WithSession(current))
	if err != nil {
		h.logger.Err(err).Dur("duration", time.Since(start)).Msg("session refresh failed")
		return fmt.Errorf("refresh request: %w", err)
	}

	fresh := strings.TrimSpace(resp.String(models.FieldIDToken))
	if !resp.IsSuccess() || fresh == "" {
		h.logger.Warn().Str("error", resp.ErrorMessage()).Msg("session refresh rejected")
		return fmt.Errorf("%w: %s", ErrRefreshRejected, resp.ErrorMessage())
	}

	if !h.session.Rotate(current.IDToken, fresh) {
		// signed out or signed in again meanwhile; the newer state stands
		h.logger.Info().Msg("session changed during refresh, new credential discarded")
		return nil
	}

	h.logger.Info().Dur("duration", time.Since(start)).Msg("session refreshed")
	return nil
}

func (h *httpBackendAdapter) post(ctx context.Context, payload models.Request) (models.Response, error) {
	traceID := utils.NewTraceID()
	log := h.logger.WithTraceID(traceID)
	action := payload.Action()

	start := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(utils.TraceIDHeader, traceID).
		SetBody(payload).
		Post(h.endpoint)
	if err != nil {
		log.Err(err).Str("action", action).Msg("backend request failed")
		return nil, fmt.Errorf("%s request: %w", action, err)
	}

	log.Debug().
		Str("action", action).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("backend responded")

	return mapResponse(resp)
}

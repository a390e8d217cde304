// Package warcraftlogs scrapes public Warcraft Logs pages: the guild roster
// table, per-character ranking summaries and the guild progress banner. There
// is no public JSON API for these views so the client parses HTML.
package warcraftlogs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
	"github.com/eclipsedgg/raidboard/internal/platform/resilience"
	"github.com/eclipsedgg/raidboard/internal/usecase"
)

const defaultBaseURL = "https://www.warcraftlogs.com"

var errLogsTransient = crerr.New("warcraftlogs transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	GuildID        string
	GuildRegion    string
	GuildRealm     string
	GuildName      string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	guildID        string
	guildRegion    string
	guildRealm     string
	guildName      string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := cfg.CircuitBreaker.WithDefaults()

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		guildID:        strings.TrimSpace(cfg.GuildID),
		guildRegion:    strings.ToLower(strings.TrimSpace(cfg.GuildRegion)),
		guildRealm:     strings.TrimSpace(cfg.GuildRealm),
		guildName:      strings.TrimSpace(cfg.GuildName),
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchGuildRoster scrapes the guild characters page and returns one player
// per roster row with the fields the page exposes.
func (c *Client) FetchGuildRoster(ctx context.Context) ([]roster.Player, error) {
	if c.guildID == "" {
		return nil, fmt.Errorf("%w: guild id is not configured", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf("/guild/id/%s/characters", url.PathEscape(c.guildID))
	raw, err := c.fetchHTML(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch guild roster: %w", err)
	}

	players, err := parseGuildRoster(bytes.NewReader(raw), c.guildRegion, c.guildRealm)
	if err != nil {
		return nil, fmt.Errorf("parse guild roster: %w", err)
	}
	return players, nil
}

// FetchCharacterRanking scrapes one character page. The second return value
// is false when the character has no logged parses.
func (c *Client) FetchCharacterRanking(ctx context.Context, name, realm, region string) (roster.Player, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return roster.Player{}, false, fmt.Errorf("%w: character name is required", usecase.ErrInvalidInput)
	}
	if realm = strings.TrimSpace(realm); realm == "" {
		realm = c.guildRealm
	}
	if region = strings.ToLower(strings.TrimSpace(region)); region == "" {
		region = c.guildRegion
	}

	path := fmt.Sprintf("/character/%s/%s/%s",
		url.PathEscape(region),
		url.PathEscape(realmSlug(realm)),
		url.PathEscape(strings.ToLower(name)),
	)
	raw, err := c.fetchHTML(ctx, path)
	if err != nil {
		return roster.Player{}, false, fmt.Errorf("fetch character ranking: %w", err)
	}

	player, ok, err := parseCharacterPage(bytes.NewReader(raw))
	if err != nil {
		return roster.Player{}, false, fmt.Errorf("parse character page: %w", err)
	}
	if ok {
		player.WarcraftLogsURL = c.baseURL + path
		player.WarcraftLogsAvailable = true
	}
	return player, ok, nil
}

// FetchGuildProgress scrapes the guild landing page progress banner.
func (c *Client) FetchGuildProgress(ctx context.Context) (team.Progress, bool, error) {
	if c.guildID == "" {
		return team.Progress{}, false, fmt.Errorf("%w: guild id is not configured", usecase.ErrInvalidInput)
	}

	raw, err := c.fetchHTML(ctx, fmt.Sprintf("/guild/id/%s", url.PathEscape(c.guildID)))
	if err != nil {
		return team.Progress{}, false, fmt.Errorf("fetch guild progress: %w", err)
	}

	progress, ok, err := parseGuildProgress(bytes.NewReader(raw))
	if err != nil {
		return team.Progress{}, false, fmt.Errorf("parse guild progress: %w", err)
	}
	return progress, ok, nil
}

func (c *Client) fetchHTML(ctx context.Context, path string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "warcraftlogs circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: combat log provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errLogsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/html")
		req.Header.Set("user-agent", "raidboard-sync/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errLogsTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errLogsTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errLogsTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "warcraftlogs request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func realmSlug(realm string) string {
	realm = strings.ToLower(strings.TrimSpace(realm))
	realm = strings.ReplaceAll(realm, "'", "")
	return strings.ReplaceAll(realm, " ", "-")
}

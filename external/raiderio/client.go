// Package raiderio reads the public raider.io JSON API for the guild
// directory shown on the dashboard.
package raiderio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
	"github.com/eclipsedgg/raidboard/internal/usecase"
)

const (
	defaultBaseURL  = "https://raider.io/api/v1"
	defaultRaidSlug = "manaforge-omega"
	defaultLimit    = 20
)

type ClientConfig struct {
	BaseURL  string
	RaidSlug string
	Limit    int
	Timeout  time.Duration
	Logger   *logging.Logger
}

type Client struct {
	http     *fasthttp.Client
	baseURL  string
	raidSlug string
	limit    int
	timeout  time.Duration
	logger   *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	raidSlug := strings.TrimSpace(cfg.RaidSlug)
	if raidSlug == "" {
		raidSlug = defaultRaidSlug
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		http:     &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		baseURL:  baseURL,
		raidSlug: raidSlug,
		limit:    limit,
		timeout:  timeout,
		logger:   logger,
	}
}

// SearchRecruitingGuilds returns the top raiding guilds for the region from
// the raid rankings feed.
func (c *Client) SearchRecruitingGuilds(ctx context.Context, region string) ([]snapshot.GuildListing, error) {
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		region = "us"
	}

	query := url.Values{}
	query.Set("raid", c.raidSlug)
	query.Set("difficulty", "mythic")
	query.Set("region", region)
	query.Set("limit", fmt.Sprintf("%d", c.limit))
	fullURL := c.baseURL + "/raiding/raid-rankings?" + query.Encode()

	raw, err := c.getJSON(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("fetch raid rankings: %w", err)
	}

	var payload raidRankingsResponse
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode raid rankings: %w", err)
	}

	out := make([]snapshot.GuildListing, 0, len(payload.RaidRankings))
	for _, row := range payload.RaidRankings {
		name := strings.TrimSpace(row.Guild.Name)
		if name == "" {
			continue
		}
		out = append(out, snapshot.GuildListing{
			Name:        name,
			Realm:       row.Guild.Realm.Name,
			Region:      strings.ToUpper(row.Guild.Region.Slug),
			Progression: fmt.Sprintf("%d/%d M", row.EncountersDefeated, row.EncountersTotal),
			IOScore:     row.Rank,
			Source:      "raider.io",
			URL:         guildURL(row.Guild.Region.Slug, row.Guild.Realm.Name, name),
		})
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.WarnContext(ctx, "raiderio request failed", "url", fullURL, "error", err)
		return nil, fmt.Errorf("%w: guild directory request: %v", usecase.ErrDependencyUnavailable, err)
	}
	if status := resp.StatusCode(); status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: guild directory status=%d", usecase.ErrDependencyUnavailable, status)
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		body = resp.Body()
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func guildURL(region, realm, name string) string {
	realmSlug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(realm)), " ", "-")
	return fmt.Sprintf("https://raider.io/guilds/%s/%s/%s",
		strings.ToLower(strings.TrimSpace(region)),
		realmSlug,
		url.PathEscape(name),
	)
}

type raidRankingsResponse struct {
	RaidRankings []struct {
		Rank               int `json:"rank"`
		EncountersDefeated int `json:"encountersDefeated"`
		EncountersTotal    int `json:"encountersTotal"`
		Guild              struct {
			Name  string `json:"name"`
			Realm struct {
				Name string `json:"name"`
			} `json:"realm"`
			Region struct {
				Slug string `json:"slug"`
			} `json:"region"`
		} `json:"guild"`
	} `json:"raidRankings"`
}

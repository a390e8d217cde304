// Package blizzard wraps the official Battle.net profile API: character
// summaries, render media, active specialization and the guild roster.
// Tokens come from the OAuth client-credentials flow and are cached.
package blizzard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/platform/cache"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
	"github.com/eclipsedgg/raidboard/internal/usecase"
)

const (
	defaultRegion   = "us"
	defaultLocale   = "en_US"
	tokenCacheKey   = "blizzard:oauth-token"
	defaultTokenTTL = time.Hour
)

type ClientConfig struct {
	ClientID     string
	ClientSecret string
	Region       string
	Locale       string
	Timeout      time.Duration
	Logger       *logging.Logger

	// BaseURL and OAuthBaseURL override the regional API hosts in tests.
	BaseURL      string
	OAuthBaseURL string
}

type Client struct {
	rest   *resty.Client
	oauth  *resty.Client
	tokens *cache.Store
	region string
	locale string
	logger *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	region := strings.ToLower(strings.TrimSpace(cfg.Region))
	if region == "" {
		region = defaultRegion
	}
	locale := strings.TrimSpace(cfg.Locale)
	if locale == "" {
		locale = defaultLocale
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.api.blizzard.com", region)
	}
	oauthBaseURL := strings.TrimSpace(cfg.OAuthBaseURL)
	if oauthBaseURL == "" {
		oauthBaseURL = "https://oauth.battle.net"
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second)
	oauth := resty.New().
		SetBaseURL(oauthBaseURL).
		SetTimeout(timeout).
		SetBasicAuth(strings.TrimSpace(cfg.ClientID), strings.TrimSpace(cfg.ClientSecret))

	return &Client{
		rest:   rest,
		oauth:  oauth,
		tokens: cache.NewStore(defaultTokenTTL),
		region: region,
		locale: locale,
		logger: logger,
	}
}

// FetchCharacter returns the profile fields for one character. The second
// return value is false when the character does not exist.
func (c *Client) FetchCharacter(ctx context.Context, name, realm, region string) (roster.Player, bool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	realmSlug := slug(realm)
	if name == "" || realmSlug == "" {
		return roster.Player{}, false, fmt.Errorf("%w: character name and realm are required", usecase.ErrInvalidInput)
	}

	var summary characterSummary
	found, err := c.getProfile(ctx, fmt.Sprintf("/profile/wow/character/%s/%s", realmSlug, name), &summary)
	if err != nil || !found {
		return roster.Player{}, false, err
	}

	p := roster.Player{
		CharacterName: summary.Name,
		Name:          summary.Name,
		Class:         summary.CharacterClass.Name,
		Race:          summary.Race.Name,
		Level:         strconv.Itoa(summary.Level),
		Realm:         summary.Realm.Name,
		Region:        c.region,
	}

	if avatar, ok, err := c.fetchAvatar(ctx, realmSlug, name); err == nil && ok {
		p.Avatar = avatar
	} else if err != nil {
		c.logger.WarnContext(ctx, "fetch character media failed", "character", name, "error", err)
	}

	if summary.ActiveSpec.ID > 0 {
		if role, ok, err := c.fetchSpecRole(ctx, summary.ActiveSpec.ID); err == nil && ok {
			p.Role = role
		} else if err != nil {
			c.logger.WarnContext(ctx, "fetch specialization failed", "spec_id", summary.ActiveSpec.ID, "error", err)
		}
	}

	return p, true, nil
}

// FetchGuildMembers lists the guild roster up to and including maxRank.
// A negative maxRank returns every member.
func (c *Client) FetchGuildMembers(ctx context.Context, realm, guild string, maxRank int) ([]usecase.ExternalGuildMember, error) {
	realmSlug, guildSlug := slug(realm), slug(guild)
	if realmSlug == "" || guildSlug == "" {
		return nil, fmt.Errorf("%w: guild realm and name are required", usecase.ErrInvalidInput)
	}

	var payload guildRoster
	found, err := c.getProfile(ctx, fmt.Sprintf("/data/wow/guild/%s/%s/roster", realmSlug, guildSlug), &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: guild %s/%s", usecase.ErrNotFound, realm, guild)
	}

	out := make([]usecase.ExternalGuildMember, 0, len(payload.Members))
	for _, m := range payload.Members {
		if maxRank >= 0 && m.Rank > maxRank {
			continue
		}
		out = append(out, usecase.ExternalGuildMember{
			Player: roster.Player{
				CharacterName: m.Character.Name,
				Name:          m.Character.Name,
				Level:         strconv.Itoa(m.Character.Level),
				Class:         classNames[m.Character.PlayableClass.ID],
				Realm:         unslug(m.Character.Realm.Slug),
				Region:        c.region,
			},
			Rank: m.Rank,
		})
	}
	return out, nil
}

func (c *Client) fetchAvatar(ctx context.Context, realmSlug, name string) (string, bool, error) {
	var media characterMedia
	found, err := c.getProfile(ctx, fmt.Sprintf("/profile/wow/character/%s/%s/character-media", realmSlug, name), &media)
	if err != nil || !found {
		return "", false, err
	}
	for _, asset := range media.Assets {
		if asset.Key == "avatar" {
			return asset.Value, true, nil
		}
	}
	return "", false, nil
}

func (c *Client) fetchSpecRole(ctx context.Context, specID int) (roster.Role, bool, error) {
	var spec playableSpecialization
	found, err := c.getStatic(ctx, fmt.Sprintf("/data/wow/playable-specialization/%d", specID), &spec)
	if err != nil || !found {
		return "", false, err
	}
	return roster.RoleFromSpecType(spec.Role.Type), true, nil
}

func (c *Client) getProfile(ctx context.Context, path string, out any) (bool, error) {
	return c.get(ctx, path, "profile-"+c.region, out)
}

func (c *Client) getStatic(ctx context.Context, path string, out any) (bool, error) {
	return c.get(ctx, path, "static-"+c.region, out)
}

func (c *Client) get(ctx context.Context, path, namespace string, out any) (bool, error) {
	token, err := c.token(ctx)
	if err != nil {
		return false, err
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"namespace": namespace,
			"locale":    c.locale,
		}).
		SetResult(out).
		Get(path)
	if err != nil {
		return false, fmt.Errorf("%w: profile api request: %v", usecase.ErrDependencyUnavailable, err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return false, nil
	case resp.StatusCode() == http.StatusUnauthorized:
		// Token may have been revoked before its cache TTL elapsed.
		c.tokens.Delete(ctx, tokenCacheKey)
		return false, fmt.Errorf("%w: profile api rejected token", usecase.ErrDependencyUnavailable)
	case resp.IsError():
		return false, fmt.Errorf("%w: profile api status=%d", usecase.ErrDependencyUnavailable, resp.StatusCode())
	}
	return true, nil
}

// token returns a cached OAuth access token, requesting a fresh one through
// the client-credentials grant when the cache is cold.
func (c *Client) token(ctx context.Context) (string, error) {
	value, err := c.tokens.GetOrLoad(ctx, tokenCacheKey, func(ctx context.Context) (any, error) {
		var payload tokenResponse
		resp, err := c.oauth.R().
			SetContext(ctx).
			SetFormData(map[string]string{"grant_type": "client_credentials"}).
			SetResult(&payload).
			Post("/token")
		if err != nil {
			return nil, fmt.Errorf("%w: oauth request: %v", usecase.ErrDependencyUnavailable, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("%w: oauth status=%d", usecase.ErrDependencyUnavailable, resp.StatusCode())
		}
		if payload.AccessToken == "" {
			return nil, fmt.Errorf("%w: oauth response missing token", usecase.ErrDependencyUnavailable)
		}
		return payload.AccessToken, nil
	})
	if err != nil {
		return "", err
	}

	token, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token cache payload type %T", value)
	}
	return token, nil
}

func slug(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	raw = strings.ReplaceAll(raw, "'", "")
	return strings.ReplaceAll(raw, " ", "-")
}

func unslug(raw string) string {
	words := strings.Split(strings.TrimSpace(raw), "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
)

// Config controls how the client reaches the player API.
type Config struct {
	BaseURL    string
	Cookie     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches players from the roster application's REST API.
type Client struct {
	baseURL    string
	cookie     string
	httpClient httpDoer
}

// NewClient constructs an API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		cookie:     cfg.Cookie,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

func (c *Client) Name() string { return providerName }

// FetchByPosition calls GET /api/jugadores_por_posicion/{position}.
func (c *Client) FetchByPosition(ctx context.Context, pos players.Position) ([]players.Player, error) {
	var payload []playerResponse
	if err := c.get(ctx, byPositionPath+url.PathEscape(pos.String()), &payload); err != nil {
		return nil, err
	}
	return mapPlayers(payload), nil
}

// FetchPlayer calls GET /api/jugadores/{id}.
func (c *Client) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	var payload playerResponse
	if err := c.get(ctx, playerPath+strconv.Itoa(id), &payload); err != nil {
		var upErr *providers.UpstreamError
		if errors.As(err, &upErr) && upErr.StatusCode == http.StatusNotFound {
			return players.Player{}, fmt.Errorf("%w: %d", providers.ErrPlayerNotFound, id)
		}
		return players.Player{}, err
	}
	return mapPlayer(payload), nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return upstreamError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}

func upstreamError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	msg := strings.TrimSpace(string(body))

	var parsed errorResponse
	if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
		msg = parsed.Error
	}
	return &providers.UpstreamError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}

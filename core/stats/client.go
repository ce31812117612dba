package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"

	"github.com/cenkalti/backoff/v4"
)

const (
	rosterEndpoint  = "commonteamroster"
	playersEndpoint = "commonallplayers"

	rosterSet  = "CommonTeamRoster"
	playersSet = "CommonAllPlayers"
)

// ErrNoExternalID is returned when a team has no stats API id to query.
var ErrNoExternalID = errors.New("team has no external id")

// StatusError is a non-2xx response from the stats API.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Code)
}

// Client queries the stats API. It implements reconcile.RosterFetcher.
type Client struct {
	cfg  Config
	http *http.Client
}

// New returns a client with its own http.Client.
func New(cfg Config) *Client {
	return NewWithHTTPClient(cfg, &http.Client{Timeout: cfg.timeout()})
}

// NewWithHTTPClient returns a client using hc for transport.
func NewWithHTTPClient(cfg Config, hc *http.Client) *Client {
	return &Client{cfg: cfg, http: hc}
}

// FetchRoster returns the current roster of team for season. An empty season
// uses the configured default.
func (c *Client) FetchRoster(ctx context.Context, team roster.TeamInfo, season string) ([]reconcile.RemotePlayer, error) {
	if team.ExternalID == 0 {
		return nil, fmt.Errorf("%s: %w", team.Code, ErrNoExternalID)
	}

	query := url.Values{}
	query.Set("TeamID", strconv.Itoa(team.ExternalID))
	query.Set("Season", c.season(season))
	query.Set("LeagueID", c.cfg.LeagueID)

	set, err := c.get(ctx, rosterEndpoint, query, rosterSet)
	if err != nil {
		return nil, err
	}

	players := make([]reconcile.RemotePlayer, 0, len(set.RowSet))
	for _, row := range set.Rows() {
		id, err := row.Int("PLAYER_ID")
		if err != nil {
			return nil, fmt.Errorf("%s: invalid PLAYER_ID: %w", team.Code, err)
		}
		players = append(players, reconcile.RemotePlayer{
			ID:       id,
			Name:     strings.TrimSpace(row.String("PLAYER")),
			Number:   strings.TrimSpace(row.String("NUM")),
			Position: strings.TrimSpace(row.String("POSITION")),
		})
	}
	return players, nil
}

// AllPlayers returns every player known to the API for season, in API order.
func (c *Client) AllPlayers(ctx context.Context, season string, currentOnly bool) ([]reconcile.Identity, error) {
	query := url.Values{}
	query.Set("LeagueID", c.cfg.LeagueID)
	query.Set("Season", c.season(season))
	if currentOnly {
		query.Set("IsOnlyCurrentSeason", "1")
	} else {
		query.Set("IsOnlyCurrentSeason", "0")
	}

	set, err := c.get(ctx, playersEndpoint, query, playersSet)
	if err != nil {
		return nil, err
	}

	out := make([]reconcile.Identity, 0, len(set.RowSet))
	for _, row := range set.Rows() {
		id, err := row.Int("PERSON_ID")
		if err != nil {
			return nil, fmt.Errorf("invalid PERSON_ID: %w", err)
		}
		name := strings.TrimSpace(row.String("DISPLAY_FIRST_LAST"))
		if name == "" {
			continue
		}
		out = append(out, reconcile.Identity{ID: id, Name: name})
	}
	return out, nil
}

func (c *Client) season(season string) string {
	if season == "" {
		return c.cfg.Season
	}
	return season
}

// get performs a GET with retries on transport errors, 429 and 5xx.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, set string) (ResultSet, error) {
	target := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + endpoint + "?" + query.Encode()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		c.setHeaders(req)

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	if err := backoff.Retry(operation, c.newBackOff(ctx)); err != nil {
		return ResultSet{}, fmt.Errorf("stats request failed: %w", err)
	}
	return decodeResultSet(body, set)
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.cfg.retryWait()
	exp.MaxElapsedTime = 0

	retries := c.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(retries)), ctx)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Origin", "https://www.nba.com")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")
}

var _ reconcile.RosterFetcher = (*Client)(nil)

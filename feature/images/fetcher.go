package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"roster-manager/core/roster"
)

// Minimum body sizes below which a response is treated as a placeholder.
const (
	minHeadshotBytes = 5000
	minLogoBytes     = 1024

	// anySize accepts any 200 response, even an empty one.
	anySize = -1
)

// ErrNotAvailable is returned when no candidate URL served a usable image.
var ErrNotAvailable = errors.New("image not available")

// Candidate URL templates. {player_id}, {team_id} and {team_code} are replaced.
var (
	DefaultPlayerURLs = []string{
		"https://cdn.nba.com/headshots/nba/latest/260x190/{player_id}.png",
		"https://ak-static.cms.nba.com/wp-content/uploads/headshots/nba/latest/260x190/{player_id}.png",
	}
	DefaultLogoURLs = []string{
		"https://cdn.nba.com/logos/nba/{team_id}/primary/D/logo.png",
		"https://a.espncdn.com/i/teamlogos/nba/500/{team_code}.png",
		"https://cdn.nba.com/logos/nba/{team_id}/global/D/logo.png",
		"https://cdn.nba.com/logos/nba/{team_id}/global/L/logo.svg",
	}
	// SpecialLogoURLs are tried first, with no size floor, for teams whose
	// regular logos are unusable.
	SpecialLogoURLs = map[string]string{
		"NOP": "https://cdn.nba.com/logos/nba/1610612740/global/L/logo.svg",
	}
)

// Image is a downloaded image.
type Image struct {
	Data []byte
	// Ext is the file extension taken from the source URL, without the dot.
	Ext string
	URL string
}

// Fetcher downloads headshots and logos from the first candidate URL that
// answers 200 with a plausible body.
type Fetcher struct {
	client     *http.Client
	playerURLs []string
	logoURLs   []string
	special    map[string]string
}

// NewFetcher returns a fetcher over the default URL lists.
func NewFetcher(timeout time.Duration) *Fetcher {
	return NewFetcherWithURLs(timeout, DefaultPlayerURLs, DefaultLogoURLs, SpecialLogoURLs)
}

// NewFetcherWithURLs returns a fetcher over custom URL templates.
func NewFetcherWithURLs(timeout time.Duration, playerURLs, logoURLs []string, special map[string]string) *Fetcher {
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		playerURLs: playerURLs,
		logoURLs:   logoURLs,
		special:    special,
	}
}

// PlayerImage returns the headshot of a player.
func (f *Fetcher) PlayerImage(ctx context.Context, playerID int) (*Image, error) {
	replacer := strings.NewReplacer("{player_id}", strconv.Itoa(playerID))
	for _, tmpl := range f.playerURLs {
		if img, ok := f.try(ctx, replacer.Replace(tmpl), minHeadshotBytes); ok {
			return img, nil
		}
	}
	return nil, fmt.Errorf("player %d: %w", playerID, ErrNotAvailable)
}

// TeamLogo returns the logo of a team.
func (f *Fetcher) TeamLogo(ctx context.Context, team roster.TeamInfo) (*Image, error) {
	if url, ok := f.special[team.Code]; ok {
		if img, ok := f.try(ctx, url, anySize); ok {
			return img, nil
		}
	}

	replacer := strings.NewReplacer(
		"{team_id}", strconv.Itoa(team.ExternalID),
		"{team_code}", team.Code,
	)
	for _, tmpl := range f.logoURLs {
		if img, ok := f.try(ctx, replacer.Replace(tmpl), minLogoBytes); ok {
			return img, nil
		}
	}
	return nil, fmt.Errorf("team %s: %w", team.Code, ErrNotAvailable)
}

// try downloads url and accepts it when the body is larger than minBytes.
// Request errors move on to the next candidate.
func (f *Fetcher) try(ctx context.Context, url string, minBytes int) (*Image, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")
	req.Header.Set("Referer", "https://www.nba.com/")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) <= minBytes {
		return nil, false
	}

	ext := strings.TrimPrefix(path.Ext(req.URL.Path), ".")
	if ext == "" {
		ext = "png"
	}
	return &Image{Data: data, Ext: ext, URL: url}, true
}

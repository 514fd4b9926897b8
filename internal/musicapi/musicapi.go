// internal/musicapi/musicapi.go
package musicapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"lyricsapi/internal/lib/logger/utils"
	"lyricsapi/internal/models"
)

//go:generate mockgen -source=musicapi.go -destination=mocks/mock_musicapi.go

// MusicAPI is the external content capability. Results keep provider order.
type MusicAPI interface {
	SearchSongs(ctx context.Context, query string) ([]models.Song, error)
	FetchLyrics(ctx context.Context, song models.Song) (string, error)
	SearchArtists(ctx context.Context, query string) ([]models.Artist, error)
	FetchArtist(ctx context.Context, id int) (*models.Artist, error)
}

var ErrLyricsNotFound = errors.New("lyrics container not found on song page")

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type GeniusClient struct {
	baseURL     string
	accessToken string
	client      *http.Client
	limiter     *rate.Limiter
}

// NewGeniusClient builds a client for the Genius web API rooted at baseURL.
// requestsPerSecond <= 0 disables outbound throttling.
func NewGeniusClient(baseURL, accessToken string, timeout time.Duration, requestsPerSecond float64) *GeniusClient {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &GeniusClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(limit, 1),
	}
}

type envelope struct {
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"meta"`
	Response json.RawMessage `json:"response"`
}

// searchResponse covers both the sectioned web search and the flat
// hits list of the authenticated API.
type searchResponse struct {
	Sections []struct {
		Type string      `json:"type"`
		Hits []searchHit `json:"hits"`
	} `json:"sections"`
	Hits []searchHit `json:"hits"`
}

type searchHit struct {
	Type   string          `json:"type"`
	Result json.RawMessage `json:"result"`
}

type geniusSong struct {
	ID                    int          `json:"id"`
	Title                 string       `json:"title"`
	URL                   string       `json:"url"`
	HeaderImageURL        string       `json:"header_image_url"`
	SongArtImageURL       string       `json:"song_art_image_url"`
	ReleaseDateForDisplay string       `json:"release_date_for_display"`
	PrimaryArtist         geniusArtist `json:"primary_artist"`
	Album                 *struct {
		Name string `json:"name"`
	} `json:"album"`
}

type geniusArtist struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Description    *struct {
		Plain string `json:"plain"`
	} `json:"description"`
	FacebookName  string `json:"facebook_name"`
	InstagramName string `json:"instagram_name"`
	TwitterName   string `json:"twitter_name"`
}

func (api *GeniusClient) SearchSongs(ctx context.Context, query string) ([]models.Song, error) {
	hits, err := api.search(ctx, "song", query)
	if err != nil {
		return nil, err
	}

	songs := make([]models.Song, 0, len(hits))
	for _, raw := range hits {
		var s geniusSong
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("failed to decode song hit: %w", err)
		}
		songs = append(songs, s.toModel())
	}

	utils.Logger.Debug("Genius song search", zap.String("query", query), zap.Int("count", len(songs)))
	return songs, nil
}

func (api *GeniusClient) SearchArtists(ctx context.Context, query string) ([]models.Artist, error) {
	hits, err := api.search(ctx, "artist", query)
	if err != nil {
		return nil, err
	}

	artists := make([]models.Artist, 0, len(hits))
	for _, raw := range hits {
		var a geniusArtist
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("failed to decode artist hit: %w", err)
		}
		artists = append(artists, a.toModel())
	}

	utils.Logger.Debug("Genius artist search", zap.String("query", query), zap.Int("count", len(artists)))
	return artists, nil
}

func (api *GeniusClient) FetchArtist(ctx context.Context, id int) (*models.Artist, error) {
	params := url.Values{}
	params.Set("text_format", "plain")

	var body struct {
		Artist geniusArtist `json:"artist"`
	}
	if err := api.getJSON(ctx, "/artists/"+strconv.Itoa(id), params, &body); err != nil {
		return nil, err
	}

	artist := body.Artist.toModel()
	return &artist, nil
}

func (api *GeniusClient) FetchLyrics(ctx context.Context, song models.Song) (string, error) {
	if song.URL == "" {
		return "", fmt.Errorf("song %d has no page URL", song.ID)
	}

	resp, err := api.do(ctx, song.URL, "text/html")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	text, err := extractLyrics(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to extract lyrics for song %d: %w", song.ID, err)
	}
	return text, nil
}

func (api *GeniusClient) search(ctx context.Context, kind, query string) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("q", query)

	var body searchResponse
	if err := api.getJSON(ctx, "/search/"+kind, params, &body); err != nil {
		return nil, err
	}

	var hits []json.RawMessage
	for _, section := range body.Sections {
		if section.Type != kind {
			continue
		}
		for _, h := range section.Hits {
			hits = append(hits, h.Result)
		}
	}
	for _, h := range body.Hits {
		if h.Type == "" || h.Type == kind {
			hits = append(hits, h.Result)
		}
	}
	return hits, nil
}

func (api *GeniusClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	u, err := url.Parse(api.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse genius URL: %w", err)
	}
	u.RawQuery = params.Encode()

	resp, err := api.do(ctx, u.String(), "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode genius response: %w", err)
	}
	if env.Meta.Status != 0 && env.Meta.Status != http.StatusOK {
		return fmt.Errorf("genius API returned status %d: %s", env.Meta.Status, env.Meta.Message)
	}
	if len(env.Response) == 0 {
		return errors.New("genius response has no payload")
	}
	if err := json.Unmarshal(env.Response, out); err != nil {
		return fmt.Errorf("failed to decode genius payload: %w", err)
	}
	return nil
}

func (api *GeniusClient) do(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	if err := api.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("outbound rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build genius request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	if api.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+api.accessToken)
	}

	utils.Logger.Debug("Calling Genius", zap.String("url", rawURL))

	resp, err := api.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call genius: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("genius returned error: %s", resp.Status)
	}
	return resp, nil
}

func (s geniusSong) toModel() models.Song {
	song := models.Song{
		ID:          s.ID,
		Title:       s.Title,
		URL:         s.URL,
		ArtistName:  s.PrimaryArtist.Name,
		ReleaseDate: s.ReleaseDateForDisplay,
		ImageURL:    s.HeaderImageURL,
	}
	if song.ImageURL == "" {
		song.ImageURL = s.SongArtImageURL
	}
	if s.Album != nil {
		song.AlbumName = s.Album.Name
	}
	return song
}

func (a geniusArtist) toModel() models.Artist {
	artist := models.Artist{
		ID:       a.ID,
		Name:     a.Name,
		URL:      a.URL,
		ImageURL: a.ImageURL,
	}
	if artist.ImageURL == "" {
		artist.ImageURL = a.HeaderImageURL
	}
	if a.Description != nil {
		artist.Description = strings.TrimSpace(a.Description.Plain)
	}

	social := map[string]string{}
	if a.FacebookName != "" {
		social["facebook"] = "https://www.facebook.com/" + a.FacebookName
	}
	if a.InstagramName != "" {
		social["instagram"] = "https://www.instagram.com/" + a.InstagramName
	}
	if a.TwitterName != "" {
		social["twitter"] = "https://twitter.com/" + a.TwitterName
	}
	if len(social) > 0 {
		artist.SocialMedia = social
	}
	return artist
}

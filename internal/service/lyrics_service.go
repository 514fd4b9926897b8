package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"lyricsapi/internal/lib/logger/utils"
	"lyricsapi/internal/lyrics"
	"lyricsapi/internal/models"
	"lyricsapi/internal/musicapi"
)

// Handlers branch on exactly these; anything else is a programming error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrExternalAPI  = errors.New("external API error")
)

type LyricsService struct {
	musicAPIClient musicapi.MusicAPI
}

func NewLyricsService(musicAPIClient musicapi.MusicAPI) *LyricsService {
	return &LyricsService{
		musicAPIClient: musicAPIClient,
	}
}

// GetLyrics returns the formatted lyrics of the provider's first hit for query.
func (s *LyricsService) GetLyrics(ctx context.Context, query string) (*models.LyricsResult, error) {
	utils.Logger.Debug("LyricsService.GetLyrics", zap.String("song", query))

	if query == "" {
		return nil, fmt.Errorf("LyricsService.GetLyrics - empty song query: %w", ErrInvalidInput)
	}

	songs, err := s.musicAPIClient.SearchSongs(ctx, query)
	if err != nil {
		utils.Logger.Error("LyricsService.GetLyrics - SearchSongs failed", zap.Error(err), zap.String("song", query))
		return nil, fmt.Errorf("LyricsService.GetLyrics - SearchSongs failed: %v: %w", err, ErrExternalAPI)
	}
	if len(songs) == 0 {
		return nil, fmt.Errorf("LyricsService.GetLyrics - no songs for %q: %w", query, ErrNotFound)
	}

	first := songs[0]
	raw, err := s.musicAPIClient.FetchLyrics(ctx, first)
	if err != nil {
		utils.Logger.Error("LyricsService.GetLyrics - FetchLyrics failed", zap.Error(err), zap.Int("song_id", first.ID))
		return nil, fmt.Errorf("LyricsService.GetLyrics - FetchLyrics failed: %v: %w", err, ErrExternalAPI)
	}

	result := models.NewLyricsResult(first, lyrics.Format(raw))
	utils.Logger.Info("LyricsService.GetLyrics - lyrics fetched", zap.Int("song_id", first.ID), zap.String("title", first.Title))
	return &result, nil
}

// GetArtist returns the provider's first artist hit for name, hydrated with
// its description and social links.
func (s *LyricsService) GetArtist(ctx context.Context, name string) (*models.ArtistResult, error) {
	utils.Logger.Debug("LyricsService.GetArtist", zap.String("name", name))

	if name == "" {
		return nil, fmt.Errorf("LyricsService.GetArtist - empty artist name: %w", ErrInvalidInput)
	}

	artists, err := s.musicAPIClient.SearchArtists(ctx, name)
	if err != nil {
		utils.Logger.Error("LyricsService.GetArtist - SearchArtists failed", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("LyricsService.GetArtist - SearchArtists failed: %v: %w", err, ErrExternalAPI)
	}
	if len(artists) == 0 {
		return nil, fmt.Errorf("LyricsService.GetArtist - no artists for %q: %w", name, ErrNotFound)
	}

	first := artists[0]
	detail, err := s.musicAPIClient.FetchArtist(ctx, first.ID)
	if err != nil {
		utils.Logger.Error("LyricsService.GetArtist - FetchArtist failed", zap.Error(err), zap.Int("artist_id", first.ID))
		return nil, fmt.Errorf("LyricsService.GetArtist - FetchArtist failed: %v: %w", err, ErrExternalAPI)
	}
	if detail == nil {
		return nil, fmt.Errorf("LyricsService.GetArtist - FetchArtist returned no artist %d: %w", first.ID, ErrExternalAPI)
	}

	if detail.Name == "" {
		detail.Name = first.Name
	}
	if detail.ImageURL == "" {
		detail.ImageURL = first.ImageURL
	}

	result := models.NewArtistResult(*detail)
	return &result, nil
}

// SearchSongs maps every hit; an empty slice is a valid result.
func (s *LyricsService) SearchSongs(ctx context.Context, query string) ([]models.SongResult, error) {
	utils.Logger.Debug("LyricsService.SearchSongs", zap.String("q", query))

	if query == "" {
		return nil, fmt.Errorf("LyricsService.SearchSongs - empty query: %w", ErrInvalidInput)
	}

	songs, err := s.musicAPIClient.SearchSongs(ctx, query)
	if err != nil {
		utils.Logger.Error("LyricsService.SearchSongs - SearchSongs failed", zap.Error(err), zap.String("q", query))
		return nil, fmt.Errorf("LyricsService.SearchSongs - SearchSongs failed: %v: %w", err, ErrExternalAPI)
	}

	results := make([]models.SongResult, 0, len(songs))
	for _, song := range songs {
		results = append(results, models.NewSongResult(song))
	}
	return results, nil
}

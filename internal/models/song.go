// internal/models/song.go
package models

// Unknown fills album and release date when the provider has none.
const Unknown = "Unknown"

// Song is a provider search hit.
type Song struct {
	ID          int
	Title       string
	URL         string
	ArtistName  string
	AlbumName   string
	ReleaseDate string
	ImageURL    string
}

type SongResult struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	ReleaseDate string `json:"releaseDate"`
	Image       string `json:"image,omitempty"`
}

type LyricsResult struct {
	Song        string `json:"song"`
	Artist      string `json:"artist"`
	Lyrics      string `json:"lyrics"`
	Album       string `json:"album"`
	ReleaseDate string `json:"releaseDate"`
	Image       string `json:"image,omitempty"`
}

func NewSongResult(s Song) SongResult {
	return SongResult{
		Title:       s.Title,
		Artist:      s.ArtistName,
		Album:       orUnknown(s.AlbumName),
		ReleaseDate: orUnknown(s.ReleaseDate),
		Image:       s.ImageURL,
	}
}

func NewLyricsResult(s Song, lyrics string) LyricsResult {
	return LyricsResult{
		Song:        s.Title,
		Artist:      s.ArtistName,
		Lyrics:      lyrics,
		Album:       orUnknown(s.AlbumName),
		ReleaseDate: orUnknown(s.ReleaseDate),
		Image:       s.ImageURL,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

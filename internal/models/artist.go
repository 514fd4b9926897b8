// internal/models/artist.go
package models

type Artist struct {
	ID          int
	Name        string
	URL         string
	ImageURL    string
	Description string
	// SocialMedia maps a platform name to a profile URL.
	SocialMedia map[string]string
}

type ArtistResult struct {
	Name        string            `json:"name"`
	Image       string            `json:"image,omitempty"`
	Description string            `json:"description,omitempty"`
	SocialMedia map[string]string `json:"socialMedia,omitempty"`
}

func NewArtistResult(a Artist) ArtistResult {
	return ArtistResult{
		Name:        a.Name,
		Image:       a.ImageURL,
		Description: a.Description,
		SocialMedia: a.SocialMedia,
	}
}

type RootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

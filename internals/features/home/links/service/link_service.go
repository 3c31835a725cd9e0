package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	MediaTypeYouTube = "youtube"
	MediaTypeSpotify = "spotify"

	defaultOEmbedEndpoint = "https://www.youtube.com/oembed"
)

// ErrUnsupportedURL rejects URLs outside the two hosted media families.
var ErrUnsupportedURL = errors.New("unsupported link URL")

var youtubePrefixes = []string{
	"https://youtu.be",
	"https://www.youtube.com",
}

var spotifyPrefixes = []string{
	"https://spotifyanchor-web.app",
	"https://open.spotify.com",
}

// Metadata is what a link resolver learns about a URL before it is stored.
type Metadata struct {
	MediaType   string
	Title       *string
	Description *string
}

// Classify maps a URL onto a media type without touching the network.
func Classify(raw string) (string, error) {
	for _, p := range youtubePrefixes {
		if strings.HasPrefix(raw, p) {
			return MediaTypeYouTube, nil
		}
	}
	for _, p := range spotifyPrefixes {
		if strings.HasPrefix(raw, p) {
			return MediaTypeSpotify, nil
		}
	}
	return "", ErrUnsupportedURL
}

// Resolver fetches link metadata. YouTube titles come from the public
// oEmbed endpoint; Spotify URLs are accepted as-is since there is no
// anonymous metadata API for them.
type Resolver struct {
	Client   *http.Client
	Endpoint string
}

func NewResolver() *Resolver {
	return &Resolver{
		Client:   &http.Client{Timeout: 10 * time.Second},
		Endpoint: defaultOEmbedEndpoint,
	}
}

func (r *Resolver) Resolve(raw string) (Metadata, error) {
	mediaType, err := Classify(raw)
	if err != nil {
		return Metadata{}, err
	}
	if mediaType != MediaTypeYouTube {
		return Metadata{MediaType: mediaType}, nil
	}

	title, description, err := r.fetchOEmbed(raw)
	if err != nil {
		return Metadata{}, fmt.Errorf("fetch video details: %w", err)
	}
	return Metadata{MediaType: mediaType, Title: title, Description: description}, nil
}

// oEmbed carries no description field, so AuthorName stands in as the
// secondary line shown under the title.
func (r *Resolver) fetchOEmbed(videoURL string) (*string, *string, error) {
	req := r.Endpoint + "?format=json&url=" + url.QueryEscape(videoURL)
	resp, err := r.Client.Get(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("oembed endpoint answered %d", resp.StatusCode)
	}

	var payload struct {
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, err
	}

	var title, description *string
	if payload.Title != "" {
		title = &payload.Title
	}
	if payload.AuthorName != "" {
		description = &payload.AuthorName
	}
	return title, description, nil
}

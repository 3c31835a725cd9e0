package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := map[string]string{
		"https://youtu.be/dQw4w9WgXcQ":                  MediaTypeYouTube,
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":   MediaTypeYouTube,
		"https://spotifyanchor-web.app.link/e/abc":      MediaTypeSpotify,
		"https://open.spotify.com/episode/4rOoJ6Egrf8K": MediaTypeSpotify,
	}
	for raw, want := range cases {
		got, err := Classify(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestClassify_RejectsOtherHosts(t *testing.T) {
	_, err := Classify("https://example.com/video")
	assert.ErrorIs(t, err, ErrUnsupportedURL)
}

func TestResolve_YouTubeFetchesTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("url"), "youtu.be")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"Harvest Report","author_name":"Hasken Rayuwa"}`))
	}))
	defer srv.Close()

	r := &Resolver{Client: srv.Client(), Endpoint: srv.URL}
	meta, err := r.Resolve("https://youtu.be/abc123")
	require.NoError(t, err)

	assert.Equal(t, MediaTypeYouTube, meta.MediaType)
	require.NotNil(t, meta.Title)
	assert.Equal(t, "Harvest Report", *meta.Title)
	require.NotNil(t, meta.Description)
	assert.Equal(t, "Hasken Rayuwa", *meta.Description)
}

func TestResolve_YouTubeEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := &Resolver{Client: srv.Client(), Endpoint: srv.URL}
	_, err := r.Resolve("https://youtu.be/missing")
	require.Error(t, err)
}

func TestResolve_SpotifySkipsNetwork(t *testing.T) {
	r := &Resolver{} // nil client: any network call would panic
	meta, err := r.Resolve("https://open.spotify.com/episode/abc")
	require.NoError(t, err)

	assert.Equal(t, MediaTypeSpotify, meta.MediaType)
	assert.Nil(t, meta.Title)
	assert.Nil(t, meta.Description)
}

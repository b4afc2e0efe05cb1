package sources_test

import (
	"context"
	"testing"

	twittermocks "github.com/Cyber-Creek/danbooru/internal/http/twitter/mocks"
	"github.com/Cyber-Creek/danbooru/internal/http/twitter"
	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func resolveTwitter(t *testing.T, client twitter.Client, url string, referer string) sources.Strategy {
	t.Helper()
	registry := sources.NewRegistry(client, nil)
	strategy := registry.Resolve(url, referer)
	assert.Equal(t, "Twitter", strategy.Site())

	return strategy
}

func Test_Twitter_Matching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		matches bool
	}{
		{"status permalink", "https://twitter.com/alice/status/1234", true},
		{"mobile permalink", "https://mobile.twitter.com/alice/status/1234", true},
		{"insecure permalink", "http://twitter.com/alice/status/1234", true},
		{"direct media", "https://pbs.twimg.com/media/abc123.jpg", true},
		{"profile page", "https://twitter.com/alice", false},
		{"unrelated host", "https://example.com/alice/status/1234", false},
	}

	registry := sources.NewRegistry(twittermocks.NewMockClient(t), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := registry.Resolve(tt.url, "")
			if tt.matches {
				assert.Equal(t, "Twitter", strategy.Site())
			} else {
				assert.NotEqual(t, "Twitter", strategy.Site())
			}
		})
	}
}

func Test_Twitter_RefererPolicy(t *testing.T) {
	t.Parallel()

	permalink := "https://twitter.com/alice/status/1234"
	media := "https://pbs.twimg.com/media/abc123.jpg"

	t.Run("media URL with permalink referer prefers referer", func(t *testing.T) {
		strategy := resolveTwitter(t, twittermocks.NewMockClient(t), media, permalink)
		assert.Equal(t, permalink, strategy.RefererURL())
		assert.Equal(t, "https://twitter.com/alice/status/1234", strategy.CanonicalURL())
	})

	t.Run("permalink URL ignores referer", func(t *testing.T) {
		strategy := resolveTwitter(t, twittermocks.NewMockClient(t), permalink, "https://twitter.com/bob/status/9999")
		assert.Equal(t, permalink, strategy.RefererURL())
	})

	t.Run("unrelated referer rejected", func(t *testing.T) {
		strategy := resolveTwitter(t, twittermocks.NewMockClient(t), media, "https://example.com/gallery")
		assert.Equal(t, media, strategy.RefererURL())
		assert.Equal(t, "", strategy.CanonicalURL(), "bare media URL has no canonical form")
	})

	t.Run("mobile permalink normalized to desktop", func(t *testing.T) {
		strategy := resolveTwitter(t, twittermocks.NewMockClient(t), "https://mobile.twitter.com/alice/status/1234", "")
		assert.Equal(t, "https://twitter.com/alice/status/1234", strategy.CanonicalURL())
	})
}

func Test_Twitter_Extract(t *testing.T) {
	t.Parallel()

	permalink := "https://twitter.com/witnesscat/status/1234"
	client := twittermocks.NewMockClient(t)
	client.EXPECT().Status(mock.Anything, int64(1234)).Return(&twitter.Status{
		ID:   1234,
		Text: "hello world",
		User: twitter.StatusUser{Name: "Alice", ScreenName: "alice"},
	}, nil).Once()
	client.EXPECT().ImageURLs(mock.Anything, permalink).Return([]string{"https://pbs.twimg.com/media/abc.jpg:orig"}, nil).Once()

	strategy := resolveTwitter(t, client, permalink, "")
	metadata, err := strategy.Extract(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "Alice", metadata.ArtistName)
	assert.Equal(t, "https://twitter.com/alice", metadata.ProfileURL)
	assert.Equal(t, []string{"https://pbs.twimg.com/media/abc.jpg:orig"}, metadata.ImageURLs)
	assert.Equal(t, "", metadata.CommentaryTitle, "statuses have no title concept")
	assert.Equal(t, "hello world", metadata.CommentaryDesc)
	assert.Empty(t, metadata.Tags)
	assert.NotNil(t, metadata.Tags, "absence of native tags is an empty list, not nil")
}

func Test_Twitter_Extract_MediaURLWithReferer_KeepsSubmittedMedia(t *testing.T) {
	t.Parallel()

	media := "https://pbs.twimg.com/media/second-photo.jpg"
	permalink := "https://twitter.com/alice/status/1234"
	client := twittermocks.NewMockClient(t)
	client.EXPECT().Status(mock.Anything, int64(1234)).Return(&twitter.Status{
		ID:   1234,
		Text: "two photos attached",
		User: twitter.StatusUser{Name: "Alice", ScreenName: "alice"},
	}, nil).Once()

	// The status lookup follows the referer, but media resolution is
	// keyed by the submitted media URL. A multi-photo status submitted
	// through one specific photo must not fall back to the status's
	// first photo.
	client.EXPECT().ImageURLs(mock.Anything, media).Return([]string{media + ":orig"}, nil).Once()

	strategy := resolveTwitter(t, client, media, permalink)
	metadata, err := strategy.Extract(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, []string{media + ":orig"}, metadata.ImageURLs)
	assert.Equal(t, "two photos attached", metadata.CommentaryDesc)
}

func Test_Twitter_Extract_Memoized(t *testing.T) {
	t.Parallel()

	permalink := "https://twitter.com/alice/status/1234"
	client := twittermocks.NewMockClient(t)

	// .Once() on both: a second Extract on the same instance must be
	// served from memory.
	client.EXPECT().Status(mock.Anything, int64(1234)).Return(&twitter.Status{
		ID:   1234,
		User: twitter.StatusUser{Name: "Alice", ScreenName: "alice"},
	}, nil).Once()
	client.EXPECT().ImageURLs(mock.Anything, permalink).Return([]string{"https://pbs.twimg.com/media/a.jpg:orig"}, nil).Once()

	strategy := resolveTwitter(t, client, permalink, "")

	first, err := strategy.Extract(context.Background())
	assert.Nil(t, err)
	second, err := strategy.Extract(context.Background())
	assert.Nil(t, err)
	assert.Same(t, first, second)
}

func Test_Twitter_Extract_MalformedURL_IsHardFailure(t *testing.T) {
	t.Parallel()

	// A bare media URL with no permalink referer can never yield a
	// status ID.
	strategy := resolveTwitter(t, twittermocks.NewMockClient(t), "https://pbs.twimg.com/media/abc.jpg", "")
	metadata, err := strategy.Extract(context.Background())

	assert.Nil(t, metadata)
	var resolutionErr *sources.ResolutionError
	assert.ErrorAs(t, err, &resolutionErr)
	assert.Contains(t, err.Error(), "couldn't get status ID from URL")
}

func Test_Twitter_NormalizeForArtistLookup(t *testing.T) {
	t.Parallel()

	strategy := resolveTwitter(t, twittermocks.NewMockClient(t), "https://twitter.com/Alice/status/1234", "")
	normalized, ok := strategy.NormalizeForArtistLookup()
	assert.True(t, ok)
	assert.Equal(t, "https://twitter.com/alice/status/1234", normalized)
}

package sources_test

import (
	"context"
	"testing"

	pixivmocks "github.com/Cyber-Creek/danbooru/internal/http/pixiv/mocks"
	twittermocks "github.com/Cyber-Creek/danbooru/internal/http/twitter/mocks"
	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/stretchr/testify/assert"
)

func Test_Registry_ResolvesFirstMatch(t *testing.T) {
	t.Parallel()
	registry := sources.NewRegistry(twittermocks.NewMockClient(t), pixivmocks.NewMockClient(t))

	assert.Equal(t, "Twitter", registry.Resolve("https://twitter.com/alice/status/1234", "").Site())
	assert.Equal(t, "Pixiv", registry.Resolve("https://www.pixiv.net/artworks/1234", "").Site())
}

func Test_Registry_UnrecognisedURL_FallsThroughToRaw(t *testing.T) {
	t.Parallel()
	registry := sources.NewRegistry(twittermocks.NewMockClient(t), pixivmocks.NewMockClient(t))

	url := "https://example.com/images/file.png"
	strategy := registry.Resolve(url, "")

	assert.NotNil(t, strategy, "resolution must never return nil")
	assert.Equal(t, "", strategy.Site())
	assert.Equal(t, url, strategy.CanonicalURL(), "the raw URL is its own canonical form")
	assert.Equal(t, url, strategy.RefererURL())

	metadata, err := strategy.Extract(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, []string{url}, metadata.ImageURLs)
	assert.Empty(t, metadata.Tags)

	_, applicable := strategy.NormalizeForArtistLookup()
	assert.False(t, applicable, "pass-through sources do not participate in artist lookup")
}

func Test_Registry_ConstructsFreshStrategyPerResolution(t *testing.T) {
	t.Parallel()
	registry := sources.NewRegistry(twittermocks.NewMockClient(t), pixivmocks.NewMockClient(t))

	url := "https://twitter.com/alice/status/1234"
	first := registry.Resolve(url, "")
	second := registry.Resolve(url, "")

	assert.NotSame(t, first, second, "extraction memoization must not leak between resolutions")
}

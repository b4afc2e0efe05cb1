package sources

import (
	"github.com/Cyber-Creek/danbooru/internal/http/pixiv"
	"github.com/Cyber-Creek/danbooru/internal/http/twitter"
)

type (
	// registryEntry pairs a cheap URL predicate with the constructor for
	// the strategy that handles it. Entries are consulted in declaration
	// order; the first whose matcher succeeds wins.
	registryEntry struct {
		matches   func(url string) bool
		construct func(url string, referer string) Strategy
	}

	// Registry resolves arbitrary input URLs to the source strategy
	// responsible for them. It is stateless and safe to share across
	// concurrent resolutions; the strategy instances it hands out are not
	// shared and live only for a single resolution.
	Registry struct {
		entries []registryEntry
	}
)

// NewRegistry builds the ordered strategy table. The table is fixed at
// process startup; resolution never consults dynamic lookup.
func NewRegistry(twitterClient twitter.Client, pixivClient pixiv.Client) *Registry {
	return &Registry{
		entries: []registryEntry{
			{
				matches: matchesTwitter,
				construct: func(url string, referer string) Strategy {
					return newTwitterStrategy(url, referer, twitterClient)
				},
			},
			{
				matches: matchesPixiv,
				construct: func(url string, referer string) Strategy {
					return newPixivStrategy(url, referer, pixivClient)
				},
			},
		},
	}
}

// Resolve returns a freshly constructed strategy for the first entry whose
// matcher accepts the URL. URLs no entry recognises fall through to the
// generic pass-through strategy, which treats the raw URL as its own
// canonical form and performs no extraction. Resolve never returns nil.
func (registry *Registry) Resolve(url string, referer string) Strategy {
	for _, entry := range registry.entries {
		if entry.matches(url) {
			return entry.construct(url, referer)
		}
	}

	return newRawStrategy(url, referer)
}

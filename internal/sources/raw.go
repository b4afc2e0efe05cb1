package sources

import "context"

// rawStrategy is the generic pass-through fallback used when no
// registered entry recognises a URL. The raw URL is its own canonical
// form, no extraction is performed, and artist lookup does not apply.
type rawStrategy struct {
	url     string
	referer string
}

func newRawStrategy(url string, referer string) *rawStrategy {
	return &rawStrategy{url: url, referer: referer}
}

func (strategy *rawStrategy) Matches(string) bool { return true }

func (strategy *rawStrategy) Site() string { return "" }

func (strategy *rawStrategy) CanonicalURL() string { return strategy.url }

func (strategy *rawStrategy) RefererURL() string { return strategy.url }

func (strategy *rawStrategy) Extract(context.Context) (*Metadata, error) {
	return &Metadata{ImageURLs: []string{strategy.url}, Tags: []string{}}, nil
}

func (strategy *rawStrategy) NormalizeForArtistLookup() (string, bool) {
	return "", false
}

package sources

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Cyber-Creek/danbooru/internal/http/twitter"
)

var (
	twitterStatusPattern = regexp.MustCompile(`^https?://(?:mobile\.)?twitter\.com/(\w+)/status/(\d+)`)
	twitterMediaPattern  = regexp.MustCompile(`^https?://pbs\.twimg\.com/media/`)
)

// twitterStrategy handles status permalinks (optionally under the mobile
// subdomain) and direct pbs.twimg.com media URLs. The Twitter family of
// sources has no separate title concept and contributes no source-native
// tags.
type twitterStrategy struct {
	url     string
	referer string
	client  twitter.Client

	// extraction result, populated at most once per instance
	extracted *Metadata
}

func newTwitterStrategy(url string, referer string, client twitter.Client) *twitterStrategy {
	return &twitterStrategy{url: url, referer: referer, client: client}
}

func matchesTwitter(url string) bool {
	return twitterStatusPattern.MatchString(url) || twitterMediaPattern.MatchString(url)
}

func (strategy *twitterStrategy) Matches(url string) bool { return matchesTwitter(url) }

func (strategy *twitterStrategy) Site() string { return "Twitter" }

// RefererURL prefers the supplied referer over the raw URL only when the
// raw URL is a bare CDN-media URL and the referer has the status permalink
// shape. An unrelated referer is never accepted; extraction falls back to
// the raw URL in that case.
func (strategy *twitterStrategy) RefererURL() string {
	if twitterStatusPattern.MatchString(strategy.referer) && twitterMediaPattern.MatchString(strategy.url) {
		return strategy.referer
	}

	return strategy.url
}

// CanonicalURL normalizes the effective page URL to the desktop permalink
// form. A bare media URL with no usable referer has no meaningful
// canonical form, so empty is returned.
func (strategy *twitterStrategy) CanonicalURL() string {
	match := twitterStatusPattern.FindStringSubmatch(strategy.RefererURL())
	if match == nil {
		return ""
	}

	return fmt.Sprintf("https://twitter.com/%s/status/%s", match[1], match[2])
}

// Extract memoizes the underlying status lookup: repeated calls on the
// same instance never re-issue the API request.
func (strategy *twitterStrategy) Extract(ctx context.Context) (*Metadata, error) {
	if strategy.extracted != nil {
		return strategy.extracted, nil
	}

	statusID, err := strategy.statusIDFromURL(strategy.RefererURL())
	if err != nil {
		return nil, err
	}

	status, err := strategy.client.Status(ctx, statusID)
	if err != nil {
		return nil, err
	}

	// Media resolution is keyed by the originally-submitted URL, not the
	// effective page URL: a specific CDN photo out of a multi-photo
	// status must stay the image source.
	imageURLs, err := strategy.client.ImageURLs(ctx, strategy.url)
	if err != nil {
		return nil, err
	}

	strategy.extracted = &Metadata{
		ArtistName:      status.User.Name,
		ProfileURL:      "https://twitter.com/" + status.User.ScreenName,
		ImageURLs:       imageURLs,
		Tags:            []string{},
		CommentaryTitle: "",
		CommentaryDesc:  status.Text,
	}

	return strategy.extracted, nil
}

func (strategy *twitterStrategy) NormalizeForArtistLookup() (string, bool) {
	return strings.ToLower(strategy.url), true
}

// statusIDFromURL parses the numeric status identifier out of a permalink.
// A URL without the expected permalink shape is a hard failure, not a
// silent empty result.
func (strategy *twitterStrategy) statusIDFromURL(url string) (int64, error) {
	match := twitterStatusPattern.FindStringSubmatch(url)
	if match == nil {
		return 0, newResolutionError("couldn't get status ID from URL: %s", url)
	}

	id, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return 0, newResolutionError("couldn't get status ID from URL: %s", url)
	}

	return id, nil
}

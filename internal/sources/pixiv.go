package sources

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Cyber-Creek/danbooru/internal/http/pixiv"
)

var (
	pixivArtworkPattern = regexp.MustCompile(`^https?://(?:www\.)?pixiv\.net/(?:en/)?artworks/(\d+)`)
	pixivLegacyPattern  = regexp.MustCompile(`^https?://(?:www\.)?pixiv\.net/member_illust\.php\?.*illust_id=(\d+)`)
	pixivMediaPattern   = regexp.MustCompile(`^https?://i\.pximg\.net/`)
)

// pixivStrategy handles artwork pages (modern and legacy member_illust
// forms) and direct i.pximg.net media URLs. Unlike the Twitter family,
// pixiv carries a source-native tag taxonomy and a real title, and its
// ugoira works surface animation frame data for the pipeline to persist.
type pixivStrategy struct {
	url     string
	referer string
	client  pixiv.Client

	extracted *Metadata
}

func newPixivStrategy(url string, referer string, client pixiv.Client) *pixivStrategy {
	return &pixivStrategy{url: url, referer: referer, client: client}
}

func matchesPixiv(url string) bool {
	return pixivArtworkPattern.MatchString(url) ||
		pixivLegacyPattern.MatchString(url) ||
		pixivMediaPattern.MatchString(url)
}

func (strategy *pixivStrategy) Matches(url string) bool { return matchesPixiv(url) }

func (strategy *pixivStrategy) Site() string { return "Pixiv" }

// RefererURL applies the same shape-checked preference as the Twitter
// strategy: a CDN-media URL paired with an artwork-page referer resolves
// to the referer, anything else falls back to the raw URL.
func (strategy *pixivStrategy) RefererURL() string {
	refererIsPage := pixivArtworkPattern.MatchString(strategy.referer) || pixivLegacyPattern.MatchString(strategy.referer)
	if refererIsPage && pixivMediaPattern.MatchString(strategy.url) {
		return strategy.referer
	}

	return strategy.url
}

func (strategy *pixivStrategy) CanonicalURL() string {
	id, err := strategy.illustIDFromURL(strategy.RefererURL())
	if err != nil {
		return ""
	}

	return fmt.Sprintf("https://www.pixiv.net/artworks/%d", id)
}

func (strategy *pixivStrategy) Extract(ctx context.Context) (*Metadata, error) {
	if strategy.extracted != nil {
		return strategy.extracted, nil
	}

	illustID, err := strategy.illustIDFromURL(strategy.RefererURL())
	if err != nil {
		return nil, err
	}

	illust, err := strategy.client.Illust(ctx, illustID)
	if err != nil {
		return nil, err
	}

	metadata := &Metadata{
		ArtistName:      illust.UserName,
		ProfileURL:      "https://www.pixiv.net/users/" + illust.UserID.String(),
		ImageURLs:       []string{illust.URLs.Original},
		Tags:            illust.Tags,
		CommentaryTitle: illust.Title,
		CommentaryDesc:  illust.Caption,
	}

	if illust.IsUgoira() {
		ugoira, err := strategy.client.UgoiraMetadata(ctx, illustID)
		if err != nil {
			return nil, err
		}

		frames := make([]UgoiraFrame, len(ugoira.Frames))
		for k, v := range ugoira.Frames {
			frames[k] = UgoiraFrame{File: v.File, DelayMsec: v.Delay}
		}

		metadata.ImageURLs = []string{ugoira.OriginalSrc}
		metadata.Ugoira = &UgoiraData{ContentType: ugoira.MimeType, Frames: frames}
	}

	strategy.extracted = metadata
	return strategy.extracted, nil
}

func (strategy *pixivStrategy) NormalizeForArtistLookup() (string, bool) {
	return strings.ToLower(strategy.url), true
}

func (strategy *pixivStrategy) illustIDFromURL(url string) (int64, error) {
	match := pixivArtworkPattern.FindStringSubmatch(url)
	if match == nil {
		match = pixivLegacyPattern.FindStringSubmatch(url)
	}
	if match == nil {
		return 0, newResolutionError("couldn't get illust ID from URL: %s", url)
	}

	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, newResolutionError("couldn't get illust ID from URL: %s", url)
	}

	return id, nil
}

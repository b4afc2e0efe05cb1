package sources

import (
	"context"
	"fmt"
)

type (
	// UgoiraFrame carries the timing for a single cell of an
	// animated ugoira work.
	UgoiraFrame struct {
		File      string `json:"file"`
		DelayMsec int    `json:"delay"`
	}

	// UgoiraData is the animation payload a strategy surfaces for
	// multi-frame works. The upload pipeline stashes it on the upload
	// records context so the materializer can persist it alongside
	// the post.
	UgoiraData struct {
		ContentType string        `json:"content_type"`
		Frames      []UgoiraFrame `json:"frame_data"`
	}

	// Metadata is the result of asking a strategy to extract the
	// richer information behind a source URL.
	Metadata struct {
		ArtistName      string
		ProfileURL      string
		ImageURLs       []string
		Tags            []string
		CommentaryTitle string
		CommentaryDesc  string
		Ugoira          *UgoiraData
	}

	// Strategy is the capability set every source variant implements.
	// Instances are cheap and short-lived: the registry constructs a fresh
	// one per resolution, and Extract memoizes its underlying API response
	// for the lifetime of that instance only.
	Strategy interface {
		// Matches reports whether the given URL belongs to this
		// strategy's origin service. Pure and side-effect free.
		Matches(url string) bool

		// Site is the human-readable name of the origin service.
		Site() string

		// CanonicalURL returns the normalized public URL for the media,
		// or empty when normalization is not meaningful for this source.
		CanonicalURL() string

		// RefererURL returns the URL that should be treated as the "page"
		// context for the media. This is the original URL unless the
		// strategy recognises a direct CDN-media URL paired with a referer
		// of the origin's canonical page shape.
		RefererURL() string

		// Extract performs whatever network calls are needed to recover
		// the artist, commentary and image candidates behind the URL.
		// At most one upstream call is issued per strategy instance.
		Extract(ctx context.Context) (*Metadata, error)

		// NormalizeForArtistLookup returns a normalized form of the URL
		// usable for cross-referencing artist records, or false when the
		// source declares non-applicability.
		NormalizeForArtistLookup() (string, bool)
	}
)

// ResolutionError indicates a URL did not match the shape its strategy
// mandates (e.g. a permalink missing its numeric identifier). These are
// hard failures, never silently-empty metadata.
type ResolutionError struct {
	reason string
}

func newResolutionError(format string, interpolations ...any) *ResolutionError {
	return &ResolutionError{reason: fmt.Sprintf(format, interpolations...)}
}

func (err *ResolutionError) Error() string {
	return err.reason
}

package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	twitterBaseUrl = "https://api.twitter.com/1.1"

	twitterShowStatusTemplate = "%s/statuses/show/%d.json?tweet_mode=extended"
)

type (
	Config struct {
		BearerToken    string
		RequestTimeout time.Duration
	}

	// StatusUser is the embedded author object returned as part of
	// a status lookup.
	StatusUser struct {
		Name       string `json:"name"`
		ScreenName string `json:"screen_name"`
	}

	statusEntities struct {
		Media []struct {
			MediaURLHTTPS string `json:"media_url_https"`
			Type          string `json:"type"`
		} `json:"media"`
	}

	Status struct {
		ID               int64          `json:"id"`
		Text             string         `json:"full_text"`
		User             StatusUser     `json:"user"`
		ExtendedEntities statusEntities `json:"extended_entities"`
	}

	// Client is the media-extraction collaborator for the Twitter family
	// of sources. It exposes a status lookup keyed by the numeric status ID,
	// and a media-variant resolution keyed by the original URL.
	// See https://developer.twitter.com/en/docs/api-reference-index for
	// information on the underlying API.
	Client interface {
		Status(ctx context.Context, statusID int64) (*Status, error)
		ImageURLs(ctx context.Context, rawURL string) ([]string, error)
	}

	client struct {
		config Config
		http   *http.Client
	}
)

func NewClient(config Config) *client {
	timeout := config.RequestTimeout
	if timeout == 0 {
		timeout = time.Second * 10
	}

	return &client{config: config, http: &http.Client{Timeout: timeout}}
}

// Status fetches the full status object for the given ID. Deleted or
// protected statuses surface as a NotFoundError; rate limiting surfaces
// as a RateLimitError. Either way the failure is a catchable error,
// never a hang (the underlying HTTP client enforces the timeout).
func (client *client) Status(ctx context.Context, statusID int64) (*Status, error) {
	path := fmt.Sprintf(twitterShowStatusTemplate, twitterBaseUrl, statusID)
	var status Status
	if err := client.getJsonResponse(ctx, path, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// ImageURLs resolves the media variants for the given URL. A direct
// pbs.twimg.com media URL already identifies one specific photo, so it
// resolves to its own full-resolution variant without an API request.
// A status permalink resolves to the photos attached to that status;
// callers treat the first as authoritative for single-image use.
func (client *client) ImageURLs(ctx context.Context, rawURL string) ([]string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, &IllegalRequestError{fmt.Sprintf("url %q is not parseable", rawURL)}
	}
	if parsed.Host == "pbs.twimg.com" {
		return []string{origVariant(rawURL)}, nil
	}

	statusID, err := statusIDFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	status, err := client.Status(ctx, statusID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(status.ExtendedEntities.Media))
	for _, media := range status.ExtendedEntities.Media {
		if media.Type == "photo" {
			urls = append(urls, media.MediaURLHTTPS+":orig")
		}
	}

	return urls, nil
}

// origVariant rewrites a media URL to its :orig (full resolution)
// variant, replacing any variant suffix already present.
func origVariant(mediaURL string) string {
	if idx := strings.LastIndex(mediaURL, ":"); idx > strings.LastIndex(mediaURL, "/") {
		mediaURL = mediaURL[:idx]
	}

	return mediaURL + ":orig"
}

func statusIDFromURL(rawURL string) (int64, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0, &IllegalRequestError{fmt.Sprintf("url %q is not parseable", rawURL)}
	}

	var id int64
	if _, err := fmt.Sscanf(parsed.Path, "/%*[^/]/status/%d", &id); err != nil {
		return 0, &IllegalRequestError{fmt.Sprintf("url %q does not contain a status ID", rawURL)}
	}

	return id, nil
}

func (client *client) getJsonResponse(ctx context.Context, urlPath string, targetInterface interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlPath, nil)
	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to construct GET(%s) to Twitter: %s", urlPath, err.Error())}
	}
	req.Header.Set("Authorization", "Bearer "+client.config.BearerToken)

	resp, err := client.http.Do(req)
	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to perform GET(%s) to Twitter: %s", urlPath, err.Error())}
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to unmarshalling below
	case http.StatusNotFound, http.StatusForbidden:
		return &NotFoundError{urlPath}
	case http.StatusTooManyRequests:
		return &RateLimitError{retryAfter: resp.Header.Get("Retry-After")}
	default:
		var twitterErr twitterErrorResponse
		if err := json.Unmarshal(respBody, &twitterErr); err != nil || len(twitterErr.Errors) == 0 {
			return &FailedRequestError{httpCode: resp.StatusCode, message: "non-OK response could not be unmarshalled", twitterCode: -1}
		}

		return &FailedRequestError{httpCode: resp.StatusCode, message: twitterErr.Errors[0].Message, twitterCode: twitterErr.Errors[0].Code}
	}

	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to read response body: %s", err.Error())}
	}

	if err := json.Unmarshal(respBody, targetInterface); err != nil {
		return &UnknownRequestError{fmt.Sprintf("response JSON could not be unmarshalled: %s", err.Error())}
	}

	return nil
}

type (
	twitterErrorResponse struct {
		Errors []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	}

	FailedRequestError struct {
		httpCode    int
		twitterCode int
		message     string
	}
	NotFoundError       struct{ target string }
	RateLimitError      struct{ retryAfter string }
	UnknownRequestError struct{ reason string }
	IllegalRequestError struct{ reason string }
)

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("status at %s does not exist, or is protected", err.target)
}
func (err *RateLimitError) Error() string {
	if err.retryAfter == "" {
		return "Twitter API rate limit exhausted"
	}
	return fmt.Sprintf("Twitter API rate limit exhausted (retry after %s)", err.retryAfter)
}
func (err *UnknownRequestError) Error() string {
	return fmt.Sprintf("unknown error occurred while communicating with Twitter: %s", err.reason)
}
func (err *IllegalRequestError) Error() string {
	return fmt.Sprintf("illegal request because %s", err.reason)
}
func (err *FailedRequestError) Error() string {
	return fmt.Sprintf("Request failure (HTTP %d): %s", err.httpCode, err.message)
}

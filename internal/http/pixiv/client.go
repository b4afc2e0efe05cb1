package pixiv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	pixivBaseUrl = "https://www.pixiv.net/ajax"

	pixivIllustTemplate = "%s/illust/%d"
	pixivUgoiraTemplate = "%s/illust/%d/ugoira_meta"
)

type (
	Config struct {
		SessionCookie  string
		RequestTimeout time.Duration
	}

	IllustURLs struct {
		Original string `json:"original"`
	}

	Illust struct {
		ID          json.Number `json:"id"`
		Title       string      `json:"title"`
		Caption     string      `json:"description"`
		IllustType  int         `json:"illustType"`
		UserID      json.Number `json:"userId"`
		UserName    string      `json:"userName"`
		UserAccount string      `json:"userAccount"`
		URLs        IllustURLs  `json:"urls"`
		Tags        []string    `json:"-"`
	}

	UgoiraFrame struct {
		File  string `json:"file"`
		Delay int    `json:"delay"`
	}

	// UgoiraMetadata describes the animation cells of a ugoira work: the
	// zip holding the frames, its content type, and per-frame delays.
	UgoiraMetadata struct {
		OriginalSrc string        `json:"originalSrc"`
		MimeType    string        `json:"mime_type"`
		Frames      []UgoiraFrame `json:"frames"`
	}

	Client interface {
		Illust(ctx context.Context, illustID int64) (*Illust, error)
		UgoiraMetadata(ctx context.Context, illustID int64) (*UgoiraMetadata, error)
	}

	client struct {
		config Config
		http   *http.Client
	}

	// pixiv's ajax endpoints wrap every payload in this envelope
	envelope struct {
		Error   bool            `json:"error"`
		Message string          `json:"message"`
		Body    json.RawMessage `json:"body"`
	}

	rawIllust struct {
		Illust
		RawTags struct {
			Tags []struct {
				Tag string `json:"tag"`
			} `json:"tags"`
		} `json:"tags"`
	}
)

// An illustType of 2 marks the work as a multi-frame ugoira animation.
const illustTypeUgoira = 2

func NewClient(config Config) *client {
	timeout := config.RequestTimeout
	if timeout == 0 {
		timeout = time.Second * 10
	}

	return &client{config: config, http: &http.Client{Timeout: timeout}}
}

func (illust *Illust) IsUgoira() bool {
	return illust.IllustType == illustTypeUgoira
}

// Illust fetches the metadata for a single pixiv work, including its
// source-native tag taxonomy.
func (client *client) Illust(ctx context.Context, illustID int64) (*Illust, error) {
	path := fmt.Sprintf(pixivIllustTemplate, pixivBaseUrl, illustID)

	var raw rawIllust
	if err := client.getJsonResponse(ctx, path, &raw); err != nil {
		return nil, err
	}

	illust := raw.Illust
	illust.Tags = make([]string, len(raw.RawTags.Tags))
	for k, v := range raw.RawTags.Tags {
		illust.Tags[k] = v.Tag
	}

	return &illust, nil
}

// UgoiraMetadata fetches the frame timing data for a ugoira work. Calling
// this for a non-ugoira work yields a NotFoundError from the API.
func (client *client) UgoiraMetadata(ctx context.Context, illustID int64) (*UgoiraMetadata, error) {
	path := fmt.Sprintf(pixivUgoiraTemplate, pixivBaseUrl, illustID)

	var meta UgoiraMetadata
	if err := client.getJsonResponse(ctx, path, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (client *client) getJsonResponse(ctx context.Context, urlPath string, targetInterface interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlPath, nil)
	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to construct GET(%s) to pixiv: %s", urlPath, err.Error())}
	}
	if client.config.SessionCookie != "" {
		req.Header.Set("Cookie", "PHPSESSID="+client.config.SessionCookie)
	}
	req.Header.Set("Referer", "https://www.pixiv.net")

	resp, err := client.http.Do(req)
	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to perform GET(%s) to pixiv: %s", urlPath, err.Error())}
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to read response body: %s", err.Error())}
	}

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{urlPath}
	} else if resp.StatusCode != http.StatusOK {
		return &FailedRequestError{httpCode: resp.StatusCode, message: string(respBody)}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return &UnknownRequestError{fmt.Sprintf("response JSON could not be unmarshalled: %s", err.Error())}
	}

	if env.Error {
		return &FailedRequestError{httpCode: resp.StatusCode, message: env.Message}
	}

	if err := json.Unmarshal(env.Body, targetInterface); err != nil {
		return &UnknownRequestError{fmt.Sprintf("response body JSON could not be unmarshalled: %s", err.Error())}
	}

	return nil
}

type (
	FailedRequestError struct {
		httpCode int
		message  string
	}
	NotFoundError       struct{ target string }
	UnknownRequestError struct{ reason string }
)

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("work at %s does not exist, or requires authentication", err.target)
}
func (err *UnknownRequestError) Error() string {
	return fmt.Sprintf("unknown error occurred while communicating with pixiv: %s", err.reason)
}
func (err *FailedRequestError) Error() string {
	return fmt.Sprintf("Request failure (HTTP %d): %s", err.httpCode, err.message)
}

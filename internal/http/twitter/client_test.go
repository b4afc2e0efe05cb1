package twitter_test

import (
	"context"
	"testing"

	"github.com/Cyber-Creek/danbooru/internal/http/twitter"
	"github.com/stretchr/testify/assert"
)

func Test_ImageURLs_DirectMediaURL_ResolvesToOrigVariant(t *testing.T) {
	t.Parallel()
	client := twitter.NewClient(twitter.Config{})

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"bare media URL", "https://pbs.twimg.com/media/abc123.jpg", "https://pbs.twimg.com/media/abc123.jpg:orig"},
		{"already the orig variant", "https://pbs.twimg.com/media/abc123.jpg:orig", "https://pbs.twimg.com/media/abc123.jpg:orig"},
		{"lower-resolution variant replaced", "https://pbs.twimg.com/media/abc123.jpg:large", "https://pbs.twimg.com/media/abc123.jpg:orig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No API request is issued for a URL that already identifies
			// one specific photo.
			urls, err := client.ImageURLs(context.Background(), tt.url)

			assert.Nil(t, err)
			assert.Equal(t, []string{tt.expected}, urls)
		})
	}
}

func Test_ImageURLs_UnparseableURL_Rejected(t *testing.T) {
	t.Parallel()
	client := twitter.NewClient(twitter.Config{})

	urls, err := client.ImageURLs(context.Background(), "https://twitter.com/alice/no-status-here")

	assert.Nil(t, urls)
	var illegalErr *twitter.IllegalRequestError
	assert.ErrorAs(t, err, &illegalErr)
}

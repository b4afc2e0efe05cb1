package post_test

import (
	"encoding/json"
	"testing"

	"github.com/Cyber-Creek/danbooru/internal/database"
	"github.com/Cyber-Creek/danbooru/internal/post"
	"github.com/Cyber-Creek/danbooru/internal/post/mocks"
	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/Cyber-Creek/danbooru/internal/upload"
	"github.com/Cyber-Creek/danbooru/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var freeUploader = user.Uploader{ID: 1, Name: "uploader", IPAddr: "127.0.0.1", CanUploadFree: true}

// The registry performs no network traffic for canonicalization, so the
// real one (with no API clients behind it) is used directly.
var registry = sources.NewRegistry(nil, nil)

// expectCreate wires the store mocks Create to assign an ID the way the
// real insert would, capturing the post for inspection.
func expectCreate(store *mocks.MockPostStore, id int64, captured **post.Post) {
	store.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ database.Queryable, p *post.Post) error {
		p.ID = id
		*captured = p
		return nil
	}).Once()
}

func Test_Materialize_MapsFileAttributes(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockPostStore(t)

	var created *post.Post
	expectCreate(store, 42, &created)

	up := &upload.Upload{
		MD5:         "abc123",
		FileExt:     "png",
		ImageWidth:  640,
		ImageHeight: 480,
		FileSize:    1234,
		Rating:      "s",
		TagString:   "original landscape",
		UploaderID:  1,
	}

	materializer := post.NewMaterializer(registry, store)
	postID, warnings, err := materializer.Materialize(nil, up, freeUploader)

	assert.Nil(t, err)
	assert.Equal(t, int64(42), postID)
	assert.Empty(t, warnings)
	assert.Equal(t, "abc123", created.MD5)
	assert.Equal(t, "png", created.FileExt)
	assert.Equal(t, 640, created.ImageWidth)
	assert.Equal(t, 480, created.ImageHeight)
	assert.Equal(t, int64(1234), created.FileSize)
	assert.Equal(t, "s", created.Rating)
	assert.True(t, created.HasCropped)
	assert.False(t, created.IsPending)
}

func Test_Materialize_TagDirectives_AppendedWithoutDuplicates(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockPostStore(t)

	var created *post.Post
	expectCreate(store, 1, &created)

	up := &upload.Upload{
		TagString:               "commentary scenery",
		AddCommentaryTag:        true,
		AddCommentaryRequestTag: true,
		AddCommentaryCheckTag:   true,
		AddPartialCommentaryTag: true,
	}

	materializer := post.NewMaterializer(registry, store)
	_, _, err := materializer.Materialize(nil, up, freeUploader)

	assert.Nil(t, err)
	assert.Equal(t, "commentary scenery commentary_request commentary_check partial_commentary", created.TagString)
}

func Test_Materialize_PlaceholderTagString_Warns(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockPostStore(t)

	var created *post.Post
	expectCreate(store, 1, &created)

	up := &upload.Upload{TagString: "tagme"}

	materializer := post.NewMaterializer(registry, store)
	_, warnings, err := materializer.Materialize(nil, up, freeUploader)

	assert.Nil(t, err)
	assert.Len(t, warnings, 1)
}

func Test_Materialize_PendingFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		canUploadFree bool
		asPending     bool
		expectPending bool
	}{
		{"privileged uploader", true, false, false},
		{"privileged uploader opting in to pending", true, true, true},
		{"unprivileged uploader", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockPostStore(t)
			var created *post.Post
			expectCreate(store, 1, &created)

			uploader := user.Uploader{ID: 1, CanUploadFree: tt.canUploadFree}
			up := &upload.Upload{AsPending: tt.asPending}

			materializer := post.NewMaterializer(registry, store)
			_, _, err := materializer.Materialize(nil, up, uploader)

			assert.Nil(t, err)
			assert.Equal(t, tt.expectPending, created.IsPending)
		})
	}
}

func Test_Materialize_SourceCanonicalized(t *testing.T) {
	t.Parallel()

	t.Run("recognised source normalized", func(t *testing.T) {
		store := mocks.NewMockPostStore(t)
		var created *post.Post
		expectCreate(store, 1, &created)

		up := &upload.Upload{Source: "https://mobile.twitter.com/alice/status/1234"}

		materializer := post.NewMaterializer(registry, store)
		_, _, err := materializer.Materialize(nil, up, freeUploader)

		assert.Nil(t, err)
		assert.Equal(t, "https://twitter.com/alice/status/1234", created.Source)
	})

	t.Run("file-only upload performs no resolution", func(t *testing.T) {
		store := mocks.NewMockPostStore(t)
		var created *post.Post
		expectCreate(store, 1, &created)

		// A resolver with no expectations fails the test if touched.
		resolver := mocks.NewMockSourceResolver(t)

		materializer := post.NewMaterializer(resolver, store)
		_, _, err := materializer.Materialize(nil, &upload.Upload{FilePath: "/tmp/file.png"}, freeUploader)

		assert.Nil(t, err)
		assert.Empty(t, created.Source)
	})

	t.Run("unrecognised source kept verbatim", func(t *testing.T) {
		store := mocks.NewMockPostStore(t)
		var created *post.Post
		expectCreate(store, 1, &created)

		up := &upload.Upload{Source: "https://example.com/images/file.png"}

		materializer := post.NewMaterializer(registry, store)
		_, _, err := materializer.Materialize(nil, up, freeUploader)

		assert.Nil(t, err)
		assert.Equal(t, "https://example.com/images/file.png", created.Source)
	})
}

func Test_Materialize_Commentary_CreatedWithPost(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockPostStore(t)

	var created *post.Post
	expectCreate(store, 77, &created)

	var commentary *post.ArtistCommentary
	store.EXPECT().CreateCommentary(mock.Anything, mock.Anything).RunAndReturn(func(_ database.Queryable, c *post.ArtistCommentary) error {
		commentary = c
		return nil
	}).Once()

	up := &upload.Upload{
		IncludeArtistCommentary:   true,
		ArtistCommentaryTitle:     "tituleh",
		ArtistCommentaryDesc:      "captioneh",
		TranslatedCommentaryTitle: "title",
		TranslatedCommentaryDesc:  "caption",
	}

	materializer := post.NewMaterializer(registry, store)
	postID, _, err := materializer.Materialize(nil, up, freeUploader)

	assert.Nil(t, err)
	assert.Equal(t, int64(77), postID)
	assert.Equal(t, int64(77), commentary.PostID)
	assert.Equal(t, "tituleh", commentary.OriginalTitle)
	assert.Equal(t, "captioneh", commentary.OriginalDescription)
	assert.Equal(t, "title", commentary.TranslatedTitle)
	assert.Equal(t, "caption", commentary.TranslatedDescription)
}

func Test_Materialize_Ugoira_FrameDataCreatedWithPost(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockPostStore(t)

	var created *post.Post
	expectCreate(store, 5, &created)

	var frameData *post.UgoiraFrameData
	store.EXPECT().CreateUgoiraFrameData(mock.Anything, mock.Anything).RunAndReturn(func(_ database.Queryable, fd *post.UgoiraFrameData) error {
		frameData = fd
		return nil
	}).Once()

	frames := []sources.UgoiraFrame{
		{File: "000000.jpg", DelayMsec: 125},
		{File: "000001.jpg", DelayMsec: 125},
	}
	up := &upload.Upload{
		Context: &upload.Context{
			Ugoira: &sources.UgoiraData{ContentType: "image/jpeg", Frames: frames},
		},
	}

	materializer := post.NewMaterializer(registry, store)
	_, _, err := materializer.Materialize(nil, up, freeUploader)

	assert.Nil(t, err)
	assert.Equal(t, int64(5), frameData.PostID)
	assert.Equal(t, "image/jpeg", frameData.ContentType)

	var roundTripped []sources.UgoiraFrame
	assert.Nil(t, json.Unmarshal(frameData.Data, &roundTripped))
	assert.Equal(t, frames, roundTripped)
}

func Test_Materialize_CreateFailure_Propagates(t *testing.T) {
	t.Parallel()
	store := mocks.NewMockPostStore(t)
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	materializer := post.NewMaterializer(registry, store)
	postID, warnings, err := materializer.Materialize(nil, &upload.Upload{}, freeUploader)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, postID)
	assert.Nil(t, warnings)
}

func Test_AddTag(t *testing.T) {
	t.Parallel()

	p := &post.Post{TagString: ""}
	p.AddTag("commentary")
	assert.Equal(t, "commentary", p.TagString)

	p.AddTag("scenery")
	assert.Equal(t, "commentary scenery", p.TagString)

	p.AddTag("commentary")
	assert.Equal(t, "commentary scenery", p.TagString, "duplicate tags must not be appended")
}

package post

import (
	"strings"
	"time"
)

type (
	// Post is the persisted record materialized from a completed upload.
	// This core only constructs posts; the wider domain logic around them
	// (moderation, parent/child relations, tag rules) lives elsewhere.
	Post struct {
		ID          int64  `db:"id"`
		MD5         string `db:"md5"`
		FileExt     string `db:"file_ext"`
		ImageWidth  int    `db:"image_width"`
		ImageHeight int    `db:"image_height"`
		FileSize    int64  `db:"file_size"`

		Rating    string `db:"rating"`
		TagString string `db:"tag_string"`
		Source    string `db:"source"`

		UploaderID     int64  `db:"uploader_id"`
		UploaderIPAddr string `db:"uploader_ip_addr"`
		ParentID       *int64 `db:"parent_id"`

		IsPending  bool `db:"is_pending"`
		HasCropped bool `db:"has_cropped"`

		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}

	// ArtistCommentary is the optional commentary record created
	// atomically with its post.
	ArtistCommentary struct {
		ID                    int64     `db:"id"`
		PostID                int64     `db:"post_id"`
		OriginalTitle         string    `db:"original_title"`
		OriginalDescription   string    `db:"original_description"`
		TranslatedTitle       string    `db:"translated_title"`
		TranslatedDescription string    `db:"translated_description"`
		CreatedAt             time.Time `db:"created_at"`
	}

	// UgoiraFrameData is the optional animation-frame record created
	// atomically with its post. The frame payload is carried verbatim
	// from the upload's context blob.
	UgoiraFrameData struct {
		ID          int64     `db:"id"`
		PostID      int64     `db:"post_id"`
		Data        []byte    `db:"data"`
		ContentType string    `db:"content_type"`
		CreatedAt   time.Time `db:"created_at"`
	}
)

// AddTag appends the given tag to the post's tag string unless it is
// already present.
func (post *Post) AddTag(tag string) {
	for _, existing := range strings.Fields(post.TagString) {
		if existing == tag {
			return
		}
	}

	if post.TagString == "" {
		post.TagString = tag
		return
	}

	post.TagString = post.TagString + " " + tag
}

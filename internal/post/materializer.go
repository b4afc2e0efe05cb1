package post

import (
	"encoding/json"
	"fmt"

	"github.com/Cyber-Creek/danbooru/internal/database"
	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/Cyber-Creek/danbooru/internal/upload"
	"github.com/Cyber-Creek/danbooru/internal/user"
	"github.com/Cyber-Creek/danbooru/pkg/logger"
)

var log = logger.Get("Materializer")

type (
	// sourceResolver is the part of the strategy registry the
	// materializer needs: resolving a source URL so the persisted post
	// records the canonical form rather than whatever the caller pasted.
	sourceResolver interface {
		Resolve(url string, referer string) sources.Strategy
	}

	postStore interface {
		Create(db database.Queryable, post *Post) error
		CreateCommentary(db database.Queryable, commentary *ArtistCommentary) error
		CreateUgoiraFrameData(db database.Queryable, frameData *UgoiraFrameData) error
	}

	// Materializer converts a processed upload record in to a persisted
	// post plus its dependent records. All rows are written against the
	// Queryable handed in; callers supply an open transaction so the
	// whole unit applies atomically. Status transitions on the upload
	// itself stay with the pipeline, never here.
	Materializer struct {
		registry sourceResolver
		store    postStore
	}
)

func NewMaterializer(registry sourceResolver, store postStore) *Materializer {
	return &Materializer{registry: registry, store: store}
}

// Materialize builds and persists the post for the given upload,
// creating the dependent commentary and frame-data rows when the record
// calls for them. The returned warnings are advisory notes for the
// caller; they never block creation.
func (materializer *Materializer) Materialize(db database.Queryable, up *upload.Upload, uploader user.Uploader) (int64, []string, error) {
	post, warnings := materializer.convertToPost(up, uploader)

	if err := materializer.store.Create(db, post); err != nil {
		return 0, nil, err
	}

	if up.Context != nil && up.Context.Ugoira != nil {
		frames, err := json.Marshal(up.Context.Ugoira.Frames)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to serialize ugoira frames: %w", err)
		}

		frameData := &UgoiraFrameData{
			PostID:      post.ID,
			Data:        frames,
			ContentType: up.Context.Ugoira.ContentType,
		}
		if err := materializer.store.CreateUgoiraFrameData(db, frameData); err != nil {
			return 0, nil, err
		}
	}

	if up.IncludeArtistCommentary {
		commentary := &ArtistCommentary{
			PostID:                post.ID,
			OriginalTitle:         up.ArtistCommentaryTitle,
			OriginalDescription:   up.ArtistCommentaryDesc,
			TranslatedTitle:       up.TranslatedCommentaryTitle,
			TranslatedDescription: up.TranslatedCommentaryDesc,
		}
		if err := materializer.store.CreateCommentary(db, commentary); err != nil {
			return 0, nil, err
		}
	}

	log.Emit(logger.SUCCESS, "Materialized post %d from upload %s\n", post.ID, up.ID)
	return post.ID, warnings, nil
}

// convertToPost maps the upload record's fields on to a fresh post and
// applies the programmatic tag additions its boolean directives call for.
func (materializer *Materializer) convertToPost(up *upload.Upload, uploader user.Uploader) (*Post, []string) {
	warnings := []string{}

	post := &Post{
		MD5:         up.MD5,
		FileExt:     up.FileExt,
		ImageWidth:  up.ImageWidth,
		ImageHeight: up.ImageHeight,
		FileSize:    up.FileSize,

		Rating:    up.Rating,
		TagString: up.TagString,

		UploaderID:     up.UploaderID,
		UploaderIPAddr: up.UploaderIPAddr,
		ParentID:       up.ParentID,

		HasCropped: true,
	}

	if up.Source != "" {
		strategy := materializer.registry.Resolve(up.Source, up.RefererURL)
		if canonical := strategy.CanonicalURL(); canonical != "" {
			post.Source = canonical
		} else {
			post.Source = up.Source
		}
	}

	if !uploader.CanUploadFree || up.AsPending {
		post.IsPending = true
	}

	if up.AddCommentaryTag {
		post.AddTag("commentary")
	}
	if up.AddCommentaryRequestTag {
		post.AddTag("commentary_request")
	}
	if up.AddCommentaryCheckTag {
		post.AddTag("commentary_check")
	}
	if up.AddPartialCommentaryTag {
		post.AddTag("partial_commentary")
	}

	if post.TagString == "tagme" {
		warnings = append(warnings, "post has no tags beyond the placeholder")
	}

	return post, warnings
}

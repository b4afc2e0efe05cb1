package post

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Cyber-Creek/danbooru/internal/database"
	"github.com/Masterminds/squirrel"
)

var ErrPostNotFound = errors.New("post does not exist")

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Create inserts the post and writes the generated identifier back on to
// the model. Callers wanting the post and its dependent records applied
// as one unit must invoke this (and the dependent creates) inside a
// single transaction.
func (store *Store) Create(db database.Queryable, post *Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := db.Rebind(`
		INSERT INTO posts(md5, file_ext, image_width, image_height, file_size, rating, tag_string, source,
			uploader_id, uploader_ip_addr, parent_id, is_pending, has_cropped, created_at, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	if err := db.Get(&post.ID, query,
		post.MD5, post.FileExt, post.ImageWidth, post.ImageHeight, post.FileSize,
		post.Rating, post.TagString, post.Source,
		post.UploaderID, post.UploaderIPAddr, post.ParentID,
		post.IsPending, post.HasCropped, post.CreatedAt, post.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

func (store *Store) Get(db database.Queryable, id int64) (*Post, error) {
	return store.getWhere(db, squirrel.Eq{"id": id})
}

// GetByMD5 looks up a post by its content checksum; used to detect
// whether a submission's media has already been posted.
func (store *Store) GetByMD5(db database.Queryable, md5 string) (*Post, error) {
	return store.getWhere(db, squirrel.Eq{"md5": md5})
}

func (store *Store) getWhere(db database.Queryable, pred any) (*Post, error) {
	query, args, err := squirrel.Select("*").From("posts").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct get post query: %w", err)
	}

	var post Post
	if err := db.Get(&post, db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}

		return nil, err
	}

	return &post, nil
}

// CreateCommentary inserts the dependent commentary record for a post.
func (store *Store) CreateCommentary(db database.Queryable, commentary *ArtistCommentary) error {
	commentary.CreatedAt = time.Now().UTC()

	query := db.Rebind(`
		INSERT INTO artist_commentaries(post_id, original_title, original_description,
			translated_title, translated_description, created_at)
		VALUES(?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	if err := db.Get(&commentary.ID, query,
		commentary.PostID, commentary.OriginalTitle, commentary.OriginalDescription,
		commentary.TranslatedTitle, commentary.TranslatedDescription, commentary.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert artist commentary for post %d: %w", commentary.PostID, err)
	}

	return nil
}

// CreateUgoiraFrameData inserts the dependent animation-frame record for
// a post.
func (store *Store) CreateUgoiraFrameData(db database.Queryable, frameData *UgoiraFrameData) error {
	frameData.CreatedAt = time.Now().UTC()

	query := db.Rebind(`
		INSERT INTO pixiv_ugoira_frame_data(post_id, data, content_type, created_at)
		VALUES(?, ?, ?, ?)
		RETURNING id
	`)

	if err := db.Get(&frameData.ID, query,
		frameData.PostID, frameData.Data, frameData.ContentType, frameData.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert ugoira frame data for post %d: %w", frameData.PostID, err)
	}

	return nil
}

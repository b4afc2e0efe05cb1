package upload

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Cyber-Creek/danbooru/internal/database"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrUploadNotFound = errors.New("upload does not exist")

	// ErrFingerprintOwned signals the creation race: another execution
	// inserted a record for the same fingerprint first. This is not a
	// caller-facing error; the owning execution will complete the work.
	ErrFingerprintOwned = errors.New("submission fingerprint is owned by another upload")

	// ErrUploadOwned signals the processing race: another execution
	// claimed the record between our lookup and our claim. Like the
	// creation race, the owning execution will complete the work.
	ErrUploadOwned = errors.New("upload is claimed by another execution")
)

// pq error code raised on unique constraint violations
const pqUniqueViolation = "23505"

type (
	// uploadRow mirrors the uploads table; the tagged Status variant and
	// the opaque context blob are flattened in to their own columns. It is
	// internal to the store so the rest of the pipeline only ever sees the
	// public Upload model.
	uploadRow struct {
		ID           uuid.UUID                    `db:"id"`
		Fingerprint  string                       `db:"fingerprint"`
		Source       string                       `db:"source"`
		RefererURL   string                       `db:"referer_url"`
		Status       string                       `db:"status"`
		ErrorKind    sql.NullString               `db:"error_kind"`
		ErrorMessage sql.NullString               `db:"error_message"`
		ErrorTrace   sql.NullString               `db:"error_trace"`
		Context      database.JsonColumn[Context] `db:"context"`
		FilePath     string                       `db:"file_path"`
		MD5          sql.NullString               `db:"md5"`
		FileExt      sql.NullString               `db:"file_ext"`
		ImageWidth   sql.NullInt32                `db:"image_width"`
		ImageHeight  sql.NullInt32                `db:"image_height"`
		FileSize     sql.NullInt64                `db:"file_size"`
		Rating       string                       `db:"rating"`
		TagString    string                       `db:"tag_string"`
		ParentID     *int64                       `db:"parent_id"`

		UploaderID     int64  `db:"uploader_id"`
		UploaderIPAddr string `db:"uploader_ip_addr"`
		AsPending      bool   `db:"as_pending"`

		IncludeArtistCommentary   bool   `db:"include_artist_commentary"`
		ArtistCommentaryTitle     string `db:"artist_commentary_title"`
		ArtistCommentaryDesc      string `db:"artist_commentary_desc"`
		TranslatedCommentaryTitle string `db:"translated_commentary_title"`
		TranslatedCommentaryDesc  string `db:"translated_commentary_desc"`

		AddCommentaryTag        bool `db:"add_commentary_tag"`
		AddCommentaryRequestTag bool `db:"add_commentary_request_tag"`
		AddCommentaryCheckTag   bool `db:"add_commentary_check_tag"`
		AddPartialCommentaryTag bool `db:"add_partial_commentary_tag"`

		PostID *int64 `db:"post_id"`

		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}

	Store struct{}
)

func NewStore() *Store {
	return &Store{}
}

// Create persists a fresh upload record. A unique violation on the
// fingerprint index - two executions racing to create the same
// submission - is surfaced as ErrFingerprintOwned.
func (store *Store) Create(db database.Queryable, upload *Upload) error {
	row := rowFromUpload(upload)
	_, err := db.NamedExec(`
		INSERT INTO uploads(id, fingerprint, source, referer_url, status, error_kind, error_message, error_trace,
			context, file_path, md5, file_ext, image_width, image_height, file_size, rating, tag_string, parent_id,
			uploader_id, uploader_ip_addr, as_pending,
			include_artist_commentary, artist_commentary_title, artist_commentary_desc,
			translated_commentary_title, translated_commentary_desc,
			add_commentary_tag, add_commentary_request_tag, add_commentary_check_tag, add_partial_commentary_tag,
			post_id, created_at, updated_at)
		VALUES(:id, :fingerprint, :source, :referer_url, :status, :error_kind, :error_message, :error_trace,
			:context, :file_path, :md5, :file_ext, :image_width, :image_height, :file_size, :rating, :tag_string, :parent_id,
			:uploader_id, :uploader_ip_addr, :as_pending,
			:include_artist_commentary, :artist_commentary_title, :artist_commentary_desc,
			:translated_commentary_title, :translated_commentary_desc,
			:add_commentary_tag, :add_commentary_request_tag, :add_commentary_check_tag, :add_partial_commentary_tag,
			:post_id, :created_at, :updated_at)
	`, row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrFingerprintOwned
		}

		return fmt.Errorf("failed to insert upload: %w", err)
	}

	return nil
}

// ClaimProcessing flips the record to processing, but only if it is
// still claimable: pending and errored records always are, processing
// records only when their last write predates staleBefore (the owning
// execution is presumed dead). The predicate and the transition are a
// single statement, so of any number of executions racing to re-enter
// the same record exactly one wins; the rest receive ErrUploadOwned.
func (store *Store) ClaimProcessing(db database.Queryable, upload *Upload, staleBefore time.Time) error {
	now := time.Now().UTC()
	result, err := db.Exec(db.Rebind(`
		UPDATE uploads
		SET status=?, error_kind=NULL, error_message=NULL, error_trace=NULL, updated_at=?
		WHERE id=? AND (status IN (?, ?) OR (status=? AND updated_at < ?))
	`), string(StatusProcessing), now, upload.ID,
		string(StatusPending), string(StatusErrored),
		string(StatusProcessing), staleBefore)
	if err != nil {
		return fmt.Errorf("failed to claim upload %s for processing: %w", upload.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to claim upload %s for processing: %w", upload.ID, err)
	}
	if affected == 0 {
		return ErrUploadOwned
	}

	upload.Status = Processing()
	upload.UpdatedAt = now
	return nil
}

// Update persists the mutable fields of the record (everything the
// pipeline writes as it advances: status, error payload, context, file
// descriptors and the post reference).
func (store *Store) Update(db database.Queryable, upload *Upload) error {
	upload.UpdatedAt = time.Now().UTC()
	row := rowFromUpload(upload)
	_, err := db.NamedExec(`
		UPDATE uploads
		SET status=:status, error_kind=:error_kind, error_message=:error_message, error_trace=:error_trace,
			context=:context, file_path=:file_path, md5=:md5, file_ext=:file_ext,
			image_width=:image_width, image_height=:image_height, file_size=:file_size,
			artist_commentary_title=:artist_commentary_title, artist_commentary_desc=:artist_commentary_desc,
			translated_commentary_title=:translated_commentary_title, translated_commentary_desc=:translated_commentary_desc,
			post_id=:post_id, updated_at=:updated_at
		WHERE id=:id
	`, row)
	if err != nil {
		return fmt.Errorf("failed to update upload %s: %w", upload.ID, err)
	}

	return nil
}

func (store *Store) Get(db database.Queryable, id uuid.UUID) (*Upload, error) {
	return store.getWhere(db, squirrel.Eq{"id": id})
}

// GetByFingerprint performs the duplicate/in-flight lookup at the top of
// every pipeline entry.
func (store *Store) GetByFingerprint(db database.Queryable, fingerprint string) (*Upload, error) {
	return store.getWhere(db, squirrel.Eq{"fingerprint": fingerprint})
}

func (store *Store) List(db database.Queryable) ([]*Upload, error) {
	query, args, err := selectUploadBuilder().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct list uploads query: %w", err)
	}

	var rows []uploadRow
	if err := db.Select(&rows, db.Rebind(query), args...); err != nil {
		return nil, err
	}

	uploads := make([]*Upload, len(rows))
	for k := range rows {
		uploads[k] = rows[k].toUpload()
	}

	return uploads, nil
}

func (store *Store) getWhere(db database.Queryable, pred any) (*Upload, error) {
	query, args, err := selectUploadBuilder().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to construct get upload query: %w", err)
	}

	var row uploadRow
	if err := db.Get(&row, db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUploadNotFound
		}

		return nil, err
	}

	return row.toUpload(), nil
}

func selectUploadBuilder() squirrel.SelectBuilder {
	return squirrel.Select("*").From("uploads")
}

func rowFromUpload(upload *Upload) *uploadRow {
	row := &uploadRow{
		ID:          upload.ID,
		Fingerprint: upload.Fingerprint,
		Source:      upload.Source,
		RefererURL:  upload.RefererURL,
		Status:      string(upload.Status.Code),
		Context:     database.NewJsonColumn(upload.Context),
		FilePath:    upload.FilePath,
		Rating:      upload.Rating,
		TagString:   upload.TagString,
		ParentID:    upload.ParentID,

		UploaderID:     upload.UploaderID,
		UploaderIPAddr: upload.UploaderIPAddr,
		AsPending:      upload.AsPending,

		IncludeArtistCommentary:   upload.IncludeArtistCommentary,
		ArtistCommentaryTitle:     upload.ArtistCommentaryTitle,
		ArtistCommentaryDesc:      upload.ArtistCommentaryDesc,
		TranslatedCommentaryTitle: upload.TranslatedCommentaryTitle,
		TranslatedCommentaryDesc:  upload.TranslatedCommentaryDesc,

		AddCommentaryTag:        upload.AddCommentaryTag,
		AddCommentaryRequestTag: upload.AddCommentaryRequestTag,
		AddCommentaryCheckTag:   upload.AddCommentaryCheckTag,
		AddPartialCommentaryTag: upload.AddPartialCommentaryTag,

		PostID: upload.PostID,

		CreatedAt: upload.CreatedAt,
		UpdatedAt: upload.UpdatedAt,
	}

	if upload.Status.Err != nil {
		row.ErrorKind = sql.NullString{String: string(upload.Status.Err.Kind), Valid: true}
		row.ErrorMessage = sql.NullString{String: upload.Status.Err.Message, Valid: true}
		row.ErrorTrace = sql.NullString{String: upload.Status.Err.Trace, Valid: true}
	}

	if upload.MD5 != "" {
		row.MD5 = sql.NullString{String: upload.MD5, Valid: true}
		row.FileExt = sql.NullString{String: upload.FileExt, Valid: true}
		row.ImageWidth = sql.NullInt32{Int32: int32(upload.ImageWidth), Valid: true}
		row.ImageHeight = sql.NullInt32{Int32: int32(upload.ImageHeight), Valid: true}
		row.FileSize = sql.NullInt64{Int64: upload.FileSize, Valid: true}
	}

	return row
}

func (row *uploadRow) toUpload() *Upload {
	status := Status{Code: StatusCode(row.Status)}
	if status.Code == StatusErrored {
		status.Err = &StatusError{
			Kind:    ErrorKind(row.ErrorKind.String),
			Message: row.ErrorMessage.String,
			Trace:   row.ErrorTrace.String,
		}
	}

	return &Upload{
		ID:          row.ID,
		Fingerprint: row.Fingerprint,
		Source:      row.Source,
		RefererURL:  row.RefererURL,
		Status:      status,
		Context:     row.Context.Get(),
		FilePath:    row.FilePath,
		MD5:         row.MD5.String,
		FileExt:     row.FileExt.String,
		ImageWidth:  int(row.ImageWidth.Int32),
		ImageHeight: int(row.ImageHeight.Int32),
		FileSize:    row.FileSize.Int64,
		Rating:      row.Rating,
		TagString:   row.TagString,
		ParentID:    row.ParentID,

		UploaderID:     row.UploaderID,
		UploaderIPAddr: row.UploaderIPAddr,
		AsPending:      row.AsPending,

		IncludeArtistCommentary:   row.IncludeArtistCommentary,
		ArtistCommentaryTitle:     row.ArtistCommentaryTitle,
		ArtistCommentaryDesc:      row.ArtistCommentaryDesc,
		TranslatedCommentaryTitle: row.TranslatedCommentaryTitle,
		TranslatedCommentaryDesc:  row.TranslatedCommentaryDesc,

		AddCommentaryTag:        row.AddCommentaryTag,
		AddCommentaryRequestTag: row.AddCommentaryRequestTag,
		AddCommentaryCheckTag:   row.AddCommentaryCheckTag,
		AddPartialCommentaryTag: row.AddPartialCommentaryTag,

		PostID: row.PostID,

		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

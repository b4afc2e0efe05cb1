package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/Cyber-Creek/danbooru/internal/user"
	"github.com/google/uuid"
)

type (
	StatusCode string

	// StatusError is the classified failure payload attached to an upload
	// whose pipeline execution terminated abnormally. A record carries one
	// if and only if its status code is StatusError.
	StatusError struct {
		Kind    ErrorKind
		Message string
		Trace   string
	}

	// Status is the tagged lifecycle state of an upload record. The Err
	// arm is only populated for StatusError; rendering via String gives
	// the operator-facing "error: <kind> - <message>" form.
	Status struct {
		Code StatusCode
		Err  *StatusError
	}

	// Context is the opaque structured blob carried between pipeline
	// stages. It currently holds animation frame data for ugoira works.
	Context struct {
		Ugoira *sources.UgoiraData `json:"ugoira,omitempty"`
	}

	// Upload is the durable representation of a submission's progress and
	// the unit of idempotency for the whole pipeline. Only the pipeline
	// service mutates it; once completed (with its post reference set) or
	// errored it is terminal, except that errored records may be retried.
	Upload struct {
		ID          uuid.UUID
		Fingerprint string
		Source      string
		RefererURL  string
		Status      Status
		Context     *Context

		FilePath    string
		MD5         string
		FileExt     string
		ImageWidth  int
		ImageHeight int
		FileSize    int64

		Rating    string
		TagString string
		ParentID  *int64

		UploaderID     int64
		UploaderIPAddr string
		AsPending      bool

		IncludeArtistCommentary   bool
		ArtistCommentaryTitle     string
		ArtistCommentaryDesc      string
		TranslatedCommentaryTitle string
		TranslatedCommentaryDesc  string

		AddCommentaryTag        bool
		AddCommentaryRequestTag bool
		AddCommentaryCheckTag   bool
		AddPartialCommentaryTag bool

		PostID *int64

		CreatedAt time.Time
		UpdatedAt time.Time

		// Warnings is transient advice gathered during materialization;
		// it is surfaced to the caller but never persisted.
		Warnings []string
	}
)

const (
	StatusPending    StatusCode = "pending"
	StatusProcessing StatusCode = "processing"
	StatusCompleted  StatusCode = "completed"
	StatusErrored    StatusCode = "error"
)

const (
	defaultRating    = "q"
	defaultTagString = "tagme"
)

func Pending() Status    { return Status{Code: StatusPending} }
func Processing() Status { return Status{Code: StatusProcessing} }
func Completed() Status  { return Status{Code: StatusCompleted} }

func Errored(kind ErrorKind, message string, trace string) Status {
	return Status{Code: StatusErrored, Err: &StatusError{Kind: kind, Message: message, Trace: trace}}
}

func (s Status) IsTerminal() bool {
	return s.Code == StatusCompleted || s.Code == StatusErrored
}

func (s Status) String() string {
	if s.Code == StatusErrored && s.Err != nil {
		return fmt.Sprintf("error: %s - %s", s.Err.Kind, s.Err.Message)
	}

	return string(s.Code)
}

// newUpload materializes a fresh pending record from an accepted
// submission. Submission defaults are expected to have been applied.
func newUpload(uploader user.Uploader, submission Submission, fingerprint string) *Upload {
	now := time.Now().UTC()
	return &Upload{
		ID:          uuid.New(),
		Fingerprint: fingerprint,
		Source:      submission.Source,
		RefererURL:  submission.RefererURL,
		Status:      Pending(),
		FilePath:    submission.FileRef,

		Rating:    submission.Rating,
		TagString: submission.TagString,
		ParentID:  submission.ParentID,

		UploaderID:     uploader.ID,
		UploaderIPAddr: uploader.IPAddr,
		AsPending:      submission.AsPending,

		IncludeArtistCommentary:   submission.IncludeArtistCommentary,
		ArtistCommentaryTitle:     submission.ArtistCommentaryTitle,
		ArtistCommentaryDesc:      submission.ArtistCommentaryDesc,
		TranslatedCommentaryTitle: submission.TranslatedCommentaryTitle,
		TranslatedCommentaryDesc:  submission.TranslatedCommentaryDesc,

		AddCommentaryTag:        submission.AddCommentaryTag,
		AddCommentaryRequestTag: submission.AddCommentaryRequestTag,
		AddCommentaryCheckTag:   submission.AddCommentaryCheckTag,
		AddPartialCommentaryTag: submission.AddPartialCommentaryTag,

		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (upload *Upload) String() string {
	return fmt.Sprintf("Upload{ID=%s status=%s}", upload.ID, upload.Status)
}

// Fingerprint derives the deterministic identity used to detect duplicate
// submissions: two submissions referring to the same source URL (or the
// same uploaded file) collide, regardless of their other fields.
func (submission *Submission) Fingerprint() string {
	var seed string
	if submission.Source != "" {
		seed = "source:" + submission.Source
	} else {
		seed = "file:" + submission.FileRef
	}

	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

package upload

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Submission is the inbound shape consumed by the pipeline entry point.
// It carries everything a caller may specify about a piece of media;
// unspecified rating/tags receive defaults at record creation.
type Submission struct {
	Source     string `validate:"omitempty,url"`
	RefererURL string `validate:"omitempty,url"`

	// FileRef is an opaque reference to an already-uploaded file. It is
	// optional when Source points at fetchable media.
	FileRef string

	Rating    string `validate:"omitempty,oneof=s q e"`
	TagString string
	ParentID  *int64

	AsPending bool

	IncludeArtistCommentary   bool
	ArtistCommentaryTitle     string
	ArtistCommentaryDesc      string
	TranslatedCommentaryTitle string
	TranslatedCommentaryDesc  string

	AddCommentaryTag        bool
	AddCommentaryRequestTag bool
	AddCommentaryCheckTag   bool
	AddPartialCommentaryTag bool
}

// ValidationError indicates a structurally invalid submission. It is the
// one failure category returned synchronously to the caller without being
// persisted, since no upload record exists yet to hold it.
type ValidationError struct {
	reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("submission is invalid: %s", err.reason)
}

var validate = validator.New()

// Validate checks the submission's structural validity. Either a source
// URL or a file reference must be supplied; when present, URLs and the
// rating must be well-formed.
func (submission *Submission) Validate() error {
	if submission.Source == "" && submission.FileRef == "" {
		return &ValidationError{reason: "either a source URL or an uploaded file must be provided"}
	}

	if err := validate.Struct(submission); err != nil {
		return &ValidationError{reason: err.Error()}
	}

	return nil
}

// applyDefaults fills the content rating and placeholder tag the way
// unattended submissions have always been defaulted.
func (submission *Submission) applyDefaults() {
	if submission.Rating == "" {
		submission.Rating = defaultRating
	}
	if submission.TagString == "" {
		submission.TagString = defaultTagString
	}
}

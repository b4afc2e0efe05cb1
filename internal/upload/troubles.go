package upload

import (
	"runtime/debug"

	"github.com/Cyber-Creek/danbooru/internal/http/pixiv"
	"github.com/Cyber-Creek/danbooru/internal/http/twitter"
	"github.com/Cyber-Creek/danbooru/internal/sources"
)

type (
	ErrorKind string

	// Trouble wraps a pipeline failure with its classified kind and the
	// stack captured at classification time. Nothing escapes the pipeline
	// entry point uncaught; every Trouble ends up persisted on the upload
	// record for operator inspection.
	Trouble struct {
		error
		kind  ErrorKind
		trace string
	}
)

const (
	ResolutionFailure      ErrorKind = "SourceResolutionError"
	ExtractionFailure      ErrorKind = "SourceExtractionError"
	AcquisitionFailure     ErrorKind = "FileAcquisitionError"
	ProcessingFailure      ErrorKind = "FileProcessingError"
	MaterializationFailure ErrorKind = "PostMaterializationError"
	GenericFailure         ErrorKind = "Error"
)

// newTrouble classifies an error by its originating type, falling back to
// the kind of the pipeline stage that raised it when the type alone is
// not conclusive.
func newTrouble(err error, fallback ErrorKind) Trouble {
	trace := string(debug.Stack())

	switch err.(type) {
	case *sources.ResolutionError:
		return Trouble{error: err, kind: ResolutionFailure, trace: trace}
	case *twitter.NotFoundError, *twitter.RateLimitError, *twitter.FailedRequestError,
		*twitter.UnknownRequestError, *twitter.IllegalRequestError:
		return Trouble{error: err, kind: ExtractionFailure, trace: trace}
	case *pixiv.NotFoundError, *pixiv.FailedRequestError, *pixiv.UnknownRequestError:
		return Trouble{error: err, kind: ExtractionFailure, trace: trace}
	}

	return Trouble{error: err, kind: fallback, trace: trace}
}

func (t Trouble) Kind() ErrorKind { return t.kind }

func (t Trouble) Status() Status {
	return Errored(t.kind, t.error.Error(), t.trace)
}

// service_test is responsible for ensuring that submissions are
// validated, deduplicated by fingerprint, driven through the pipeline
// stages, and that every failure is classified and persisted rather
// than escaping to the caller. The store, acquirer, materializer and
// source resolution are mocked.
package upload_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cyber-Creek/danbooru/internal/database"
	dbmocks "github.com/Cyber-Creek/danbooru/internal/database/mocks"
	"github.com/Cyber-Creek/danbooru/internal/event"
	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/Cyber-Creek/danbooru/internal/upload"
	mocks "github.com/Cyber-Creek/danbooru/internal/upload/mocks"
	"github.com/Cyber-Creek/danbooru/internal/user"
	"github.com/Cyber-Creek/danbooru/pkg/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	defaultEventBus = event.New()
	errExpected     = errors.New("test: expected error")

	testUploader = user.Uploader{ID: 7, Name: "tester", IPAddr: "127.0.0.1", CanUploadFree: true}
)

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

type serviceMocks struct {
	db           *dbmocks.MockManager
	store        *mocks.MockDataStore
	acquirer     *mocks.MockAcquirer
	materializer *mocks.MockMaterializer
	resolver     *mocks.MockResolver
	scheduler    *mocks.MockScheduler
}

func newServiceMocks(t *testing.T) serviceMocks {
	return serviceMocks{
		db:           dbmocks.NewMockManager(t),
		store:        mocks.NewMockDataStore(t),
		acquirer:     mocks.NewMockAcquirer(t),
		materializer: mocks.NewMockMaterializer(t),
		resolver:     mocks.NewMockResolver(t),
		scheduler:    mocks.NewMockScheduler(t),
	}
}

func testConfig(t *testing.T) upload.Config {
	return upload.Config{
		DownloadDir:              t.TempDir(),
		Parallelism:              1,
		RecheckDelaySeconds:      5,
		MaxRechecks:              3,
		ProcessingTimeoutSeconds: 1800,
		DownloadTimeoutSeconds:   5,
	}
}

func newService(t *testing.T, m serviceMocks) upload.Service {
	return newServiceWithConfig(t, testConfig(t), m)
}

func newServiceWithConfig(t *testing.T, config upload.Config, m serviceMocks) upload.Service {
	srv, err := upload.New(config, m.db, m.store, m.acquirer, m.materializer, m.resolver, m.scheduler, defaultEventBus)
	assert.Nil(t, err)

	return srv
}

// allowDirectDbAccess permits the service to hand the managers plain
// connection to the store. The mocks never dereference it.
func allowDirectDbAccess(m serviceMocks) {
	m.db.EXPECT().GetSqlxDb().Return(nil).Maybe()
}

// allowTransactions makes the managers WrapTx run the wrapped function
// immediately, committing unconditionally.
func allowTransactions(m serviceMocks) {
	m.db.EXPECT().WrapTx(mock.Anything).RunAndReturn(func(f func(*sqlx.Tx) error) error {
		return f(nil)
	})
}

// waitForSleepingWorkers gives a freshly-started worker pool time to
// drain the empty queue and reach its sleep state, so that a
// subsequent enqueue's wakeup signal is not dropped.
func waitForSleepingWorkers(t *testing.T) {
	t.Helper()
	time.Sleep(50 * time.Millisecond)
}

// allowClaims lets the service win every processing claim, mirroring
// the transition the real store applies to the record.
func allowClaims(m serviceMocks) {
	m.store.EXPECT().ClaimProcessing(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(func(_ database.Queryable, u *upload.Upload, _ time.Time) error {
		u.Status = upload.Processing()
		return nil
	})
}

func Test_Start_InvalidSubmission_ReturnsValidationError(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	srv := newService(t, m)

	result, err := srv.Start(context.Background(), testUploader, upload.Submission{})

	assert.Nil(t, result)
	var validationErr *upload.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func Test_Start_FileSubmission_CompletesAndMaterializes(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)
	allowTransactions(m)
	allowClaims(m)

	submission := upload.Submission{FileRef: "/tmp/already-uploaded.png", Rating: "s"}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(nil, upload.ErrUploadNotFound).Once()
	m.store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	m.store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	handle := &upload.FileHandle{Path: "/tmp/already-uploaded.png", Data: []byte("png bytes")}
	attributes := &upload.FileAttributes{MD5: "abc123", FileExt: "png", ImageWidth: 640, ImageHeight: 480, FileSize: 9}
	m.acquirer.EXPECT().Fetch(mock.Anything, mock.Anything, "").Return(handle, nil).Once()
	m.acquirer.EXPECT().Process(mock.Anything, mock.Anything, handle).Return(attributes, nil).Once()

	m.materializer.EXPECT().Materialize(mock.Anything, mock.Anything, testUploader).Return(int64(42), []string{"tagme means this post is untagged"}, nil).Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, upload.StatusCompleted, result.Status.Code)
	assert.NotNil(t, result.PostID)
	assert.Equal(t, int64(42), *result.PostID)
	assert.Equal(t, "abc123", result.MD5)
	assert.Equal(t, "png", result.FileExt)
	assert.Equal(t, 640, result.ImageWidth)
	assert.Equal(t, 480, result.ImageHeight)
	assert.Equal(t, []string{"tagme means this post is untagged"}, result.Warnings)
	assert.Equal(t, "s", result.Rating)
}

func Test_Start_SourceSubmission_UsesStrategyMetadata(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)
	allowTransactions(m)
	allowClaims(m)

	source := "https://twitter.com/alice/status/1234"
	submission := upload.Submission{Source: source, IncludeArtistCommentary: true}

	metadata := &sources.Metadata{
		ArtistName:      "Alice",
		ProfileURL:      "https://twitter.com/alice",
		ImageURLs:       []string{"https://pbs.twimg.com/media/abc.jpg:orig"},
		Tags:            []string{},
		CommentaryTitle: "",
		CommentaryDesc:  "hello world",
	}
	m.resolver.EXPECT().Resolve(source, "").Return(&stubStrategy{site: "Twitter", metadata: metadata}).Once()

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(nil, upload.ErrUploadNotFound).Once()
	m.store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	m.store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	handle := &upload.FileHandle{Path: "/spool/file", Data: []byte("jpg bytes")}
	attributes := &upload.FileAttributes{MD5: "def456", FileExt: "jpg", ImageWidth: 1200, ImageHeight: 900, FileSize: 9}

	// The media URL the acquirer receives must be the one surfaced by the
	// strategy, not the submissions page URL.
	m.acquirer.EXPECT().Fetch(mock.Anything, mock.Anything, "https://pbs.twimg.com/media/abc.jpg:orig").Return(handle, nil).Once()
	m.acquirer.EXPECT().Process(mock.Anything, mock.Anything, handle).Return(attributes, nil).Once()
	m.materializer.EXPECT().Materialize(mock.Anything, mock.Anything, testUploader).Return(int64(7), nil, nil).Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.Equal(t, upload.StatusCompleted, result.Status.Code)
	assert.Equal(t, "", result.ArtistCommentaryTitle)
	assert.Equal(t, "hello world", result.ArtistCommentaryDesc)
	assert.Equal(t, "q", result.Rating, "unspecified rating must be defaulted")
	assert.Equal(t, "tagme", result.TagString, "unspecified tags must be defaulted")
}

func Test_Start_DuplicateOfCompleted_ReturnsExistingRecord(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	submission := upload.Submission{Source: "https://example.com/art.png"}
	postID := int64(99)
	existing := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		Source:      submission.Source,
		Status:      upload.Completed(),
		PostID:      &postID,
	}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(existing, nil).Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.Same(t, existing, result)
	m.store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func Test_Start_CreationRace_DefersToOwner(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	submission := upload.Submission{Source: "https://example.com/art.png"}
	postID := int64(12)
	owner := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		Status:      upload.Completed(),
		PostID:      &postID,
	}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(nil, upload.ErrUploadNotFound).Once()
	m.store.EXPECT().Create(mock.Anything, mock.Anything).Return(upload.ErrFingerprintOwned).Once()
	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(owner, nil).Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err, "losing the creation race must not surface an error")
	assert.Same(t, owner, result)
}

func Test_Start_InFlightDuplicate_SchedulesRecheck(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	submission := upload.Submission{Source: "https://example.com/art.png"}
	existing := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		Status:      upload.Processing(),
		UpdatedAt:   time.Now().UTC(),
	}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(existing, nil).Once()
	m.scheduler.EXPECT().Schedule(5*time.Second, mock.Anything).Return().Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.Same(t, existing, result)
	assert.Equal(t, upload.StatusProcessing, result.Status.Code)
}

func Test_Start_AbandonedProcessing_Restarted(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)
	allowTransactions(m)
	allowClaims(m)

	submission := upload.Submission{FileRef: "/tmp/stale.png"}
	existing := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		FilePath:    "/tmp/stale.png",
		Status:      upload.Processing(),
		UpdatedAt:   time.Now().UTC().Add(-2 * time.Hour),
	}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(existing, nil).Once()
	m.store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	handle := &upload.FileHandle{Path: existing.FilePath, Data: []byte("bytes")}
	m.acquirer.EXPECT().Fetch(mock.Anything, existing, "").Return(handle, nil).Once()
	m.acquirer.EXPECT().Process(mock.Anything, existing, handle).Return(&upload.FileAttributes{MD5: "aa", FileExt: "png"}, nil).Once()
	m.materializer.EXPECT().Materialize(mock.Anything, existing, testUploader).Return(int64(5), nil, nil).Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.Equal(t, upload.StatusCompleted, result.Status.Code)
	m.scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func Test_Start_AcquisitionFailure_ClassifiedAndPersisted(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)
	allowClaims(m)

	submission := upload.Submission{FileRef: "/tmp/missing.png"}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(nil, upload.ErrUploadNotFound).Once()
	m.store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	m.store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	m.acquirer.EXPECT().Fetch(mock.Anything, mock.Anything, "").Return(nil, errExpected).Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err, "pipeline failures must be reported via the record, not the error value")
	assert.Equal(t, upload.StatusErrored, result.Status.Code)
	assert.NotNil(t, result.Status.Err)
	assert.Equal(t, upload.AcquisitionFailure, result.Status.Err.Kind)
	assert.Equal(t, errExpected.Error(), result.Status.Err.Message)
	assert.Nil(t, result.PostID)
	assert.Equal(t, "error: FileAcquisitionError - "+errExpected.Error(), result.Status.String())
}

func Test_Start_MaterializationFailure_LeavesNoPostReference(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)
	allowTransactions(m)
	allowClaims(m)

	submission := upload.Submission{FileRef: "/tmp/file.png"}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(nil, upload.ErrUploadNotFound).Once()
	m.store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	m.store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	handle := &upload.FileHandle{Path: "/tmp/file.png", Data: []byte("bytes")}
	m.acquirer.EXPECT().Fetch(mock.Anything, mock.Anything, "").Return(handle, nil).Once()
	m.acquirer.EXPECT().Process(mock.Anything, mock.Anything, handle).Return(&upload.FileAttributes{MD5: "bb", FileExt: "png"}, nil).Once()
	m.materializer.EXPECT().Materialize(mock.Anything, mock.Anything, testUploader).Return(int64(0), nil, errExpected).Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.Equal(t, upload.StatusErrored, result.Status.Code)
	assert.Equal(t, upload.MaterializationFailure, result.Status.Err.Kind)
	assert.Nil(t, result.PostID, "a failed materialization must not leave a dangling post reference")
}

func Test_Retry_NonErroredRecord_Rejected(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	id := uuid.New()
	postID := int64(3)
	m.store.EXPECT().Get(mock.Anything, id).Return(&upload.Upload{ID: id, Status: upload.Completed(), PostID: &postID}, nil).Once()

	srv := newService(t, m)
	result, err := srv.Retry(context.Background(), testUploader, id)

	assert.Nil(t, result)
	assert.NotNil(t, err)
}

func Test_Retry_ErroredRecord_Reprocessed(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)
	allowTransactions(m)
	allowClaims(m)

	id := uuid.New()
	errored := &upload.Upload{
		ID:       id,
		FilePath: "/tmp/file.png",
		Status:   upload.Errored(upload.AcquisitionFailure, "boom", ""),
	}

	m.store.EXPECT().Get(mock.Anything, id).Return(errored, nil).Once()
	m.store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	handle := &upload.FileHandle{Path: errored.FilePath, Data: []byte("bytes")}
	m.acquirer.EXPECT().Fetch(mock.Anything, errored, "").Return(handle, nil).Once()
	m.acquirer.EXPECT().Process(mock.Anything, errored, handle).Return(&upload.FileAttributes{MD5: "cc", FileExt: "png"}, nil).Once()
	m.materializer.EXPECT().Materialize(mock.Anything, errored, testUploader).Return(int64(8), nil, nil).Once()

	srv := newService(t, m)
	result, err := srv.Retry(context.Background(), testUploader, id)

	assert.Nil(t, err)
	assert.Equal(t, upload.StatusCompleted, result.Status.Code)
	assert.Nil(t, result.Status.Err, "a successful retry must clear the previous error payload")
	assert.Equal(t, int64(8), *result.PostID)
}

func Test_Start_ErroredDuplicate_ClaimRace_DefersToOwner(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	submission := upload.Submission{Source: "https://example.com/art.png"}
	existing := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		Status:      upload.Errored(upload.AcquisitionFailure, "boom", ""),
	}

	// Another execution takes the record between our lookup and our
	// claim; this one must back off and wait, not drive the pipeline a
	// second time.
	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(existing, nil).Once()
	m.store.EXPECT().ClaimProcessing(mock.Anything, existing, mock.Anything).Return(upload.ErrUploadOwned).Once()
	m.scheduler.EXPECT().Schedule(5*time.Second, mock.Anything).Return().Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err, "losing the processing claim must not surface an error")
	assert.Same(t, existing, result)
	m.acquirer.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	m.materializer.AssertNotCalled(t, "Materialize", mock.Anything, mock.Anything, mock.Anything)
}

func Test_Start_AbandonedProcessing_ClaimRace_DefersToOwner(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	submission := upload.Submission{FileRef: "/tmp/stale.png"}
	existing := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		Status:      upload.Processing(),
		UpdatedAt:   time.Now().UTC().Add(-2 * time.Hour),
	}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(existing, nil).Once()
	m.store.EXPECT().ClaimProcessing(mock.Anything, existing, mock.Anything).Return(upload.ErrUploadOwned).Once()
	m.scheduler.EXPECT().Schedule(5*time.Second, mock.Anything).Return().Once()

	srv := newService(t, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.Same(t, existing, result)
	m.materializer.AssertNotCalled(t, "Materialize", mock.Anything, mock.Anything, mock.Anything)
}

func Test_Retry_ClaimRace_Rejected(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	id := uuid.New()
	errored := &upload.Upload{ID: id, Status: upload.Errored(upload.AcquisitionFailure, "boom", "")}

	m.store.EXPECT().Get(mock.Anything, id).Return(errored, nil).Once()
	m.store.EXPECT().ClaimProcessing(mock.Anything, errored, mock.Anything).Return(upload.ErrUploadOwned).Once()

	srv := newService(t, m)
	result, err := srv.Retry(context.Background(), testUploader, id)

	assert.Nil(t, result)
	assert.NotNil(t, err)
	m.materializer.AssertNotCalled(t, "Materialize", mock.Anything, mock.Anything, mock.Anything)
}

func Test_Start_InFlightDuplicate_RecheckCeilingExhausted_GivesUp(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	config := testConfig(t)
	config.MaxRechecks = 0

	submission := upload.Submission{Source: "https://example.com/art.png"}
	existing := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		Status:      upload.Processing(),
		UpdatedAt:   time.Now().UTC(),
	}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(existing, nil).Once()

	srv := newServiceWithConfig(t, config, m)
	result, err := srv.Start(context.Background(), testUploader, submission)

	assert.Nil(t, err)
	assert.Same(t, existing, result)
	m.scheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func Test_Start_InFlightDuplicate_RecheckAttemptsBounded(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)

	config := testConfig(t)
	config.MaxRechecks = 1

	submission := upload.Submission{Source: "https://example.com/art.png"}
	existing := &upload.Upload{
		ID:          uuid.New(),
		Fingerprint: submission.Fingerprint(),
		Status:      upload.Processing(),
		UpdatedAt:   time.Now().UTC(),
	}

	secondLookup := make(chan struct{})
	lookups := 0
	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).RunAndReturn(func(database.Queryable, string) (*upload.Upload, error) {
		lookups++
		if lookups == 2 {
			defer close(secondLookup)
		}
		return existing, nil
	}).Times(2)

	// Exactly one reschedule: attempt zero may wait, attempt one is at
	// the ceiling and must be dropped.
	var recheck func()
	m.scheduler.EXPECT().Schedule(5*time.Second, mock.Anything).Run(func(delay time.Duration, fn func()) {
		recheck = fn
	}).Return().Once()

	srv := newServiceWithConfig(t, config, m)

	runCtx, cancelRun := context.WithCancel(context.Background())
	runDone := make(chan struct{})
	go func() {
		_ = srv.Run(runCtx)
		close(runDone)
	}()
	defer func() {
		cancelRun()
		<-runDone
	}()

	result, err := srv.Start(context.Background(), testUploader, submission)
	assert.Nil(t, err)
	assert.Same(t, existing, result)
	assert.NotNil(t, recheck, "the first duplicate observation must schedule a re-check")

	// The workers must be asleep before the re-check enqueues, or its
	// wakeup signal is dropped.
	waitForSleepingWorkers(t)
	recheck()

	select {
	case <-secondLookup:
	case <-time.After(2 * time.Second):
		t.Fatal("queued re-check was never picked up by a worker")
	}

	// Let the worker finish the re-entered attempt before the mock
	// expectations are asserted at cleanup.
	time.Sleep(100 * time.Millisecond)
}

func Test_Enqueue_InvalidSubmission_Rejected(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	srv := newService(t, m)

	err := srv.Enqueue(testUploader, upload.Submission{})

	var validationErr *upload.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func Test_Enqueue_Submission_ProcessedByWorker(t *testing.T) {
	t.Parallel()
	m := newServiceMocks(t)
	allowDirectDbAccess(m)
	allowTransactions(m)
	allowClaims(m)

	submission := upload.Submission{FileRef: "/tmp/queued.png"}

	m.store.EXPECT().GetByFingerprint(mock.Anything, submission.Fingerprint()).Return(nil, upload.ErrUploadNotFound).Once()
	m.store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	m.store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	handle := &upload.FileHandle{Path: "/tmp/queued.png", Data: []byte("bytes")}
	m.acquirer.EXPECT().Fetch(mock.Anything, mock.Anything, "").Return(handle, nil).Once()
	m.acquirer.EXPECT().Process(mock.Anything, mock.Anything, handle).Return(&upload.FileAttributes{MD5: "dd", FileExt: "png"}, nil).Once()

	materialized := make(chan struct{})
	m.materializer.EXPECT().Materialize(mock.Anything, mock.Anything, testUploader).RunAndReturn(func(database.Queryable, *upload.Upload, user.Uploader) (int64, []string, error) {
		defer close(materialized)
		return 21, nil, nil
	}).Once()

	srv := newService(t, m)

	runCtx, cancelRun := context.WithCancel(context.Background())
	runDone := make(chan struct{})
	go func() {
		_ = srv.Run(runCtx)
		close(runDone)
	}()
	defer func() {
		cancelRun()
		<-runDone
	}()

	waitForSleepingWorkers(t)
	assert.Nil(t, srv.Enqueue(testUploader, submission))

	select {
	case <-materialized:
	case <-time.After(2 * time.Second):
		t.Fatal("queued submission was never picked up by a worker")
	}

	// Let the worker finish finalization before cleanup asserts the
	// mock expectations.
	time.Sleep(100 * time.Millisecond)
}

// stubStrategy is a minimal in-test strategy used when the resolver
// mock needs to hand something back.
type stubStrategy struct {
	site     string
	metadata *sources.Metadata
	err      error
}

func (s *stubStrategy) Matches(string) bool                      { return true }
func (s *stubStrategy) Site() string                             { return s.site }
func (s *stubStrategy) CanonicalURL() string                     { return "" }
func (s *stubStrategy) RefererURL() string                       { return "" }
func (s *stubStrategy) NormalizeForArtistLookup() (string, bool) { return "", false }

func (s *stubStrategy) Extract(context.Context) (*sources.Metadata, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.metadata, nil
}

package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Cyber-Creek/danbooru/internal/database"
	"github.com/Cyber-Creek/danbooru/internal/event"
	"github.com/Cyber-Creek/danbooru/internal/sources"
	"github.com/Cyber-Creek/danbooru/internal/user"
	"github.com/Cyber-Creek/danbooru/pkg/logger"
	"github.com/Cyber-Creek/danbooru/pkg/worker"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var log = logger.Get("UploadService")

type (
	// dataStore is the persistence surface the pipeline drives. Every
	// method accepts a Queryable so calls compose with transactions.
	dataStore interface {
		Create(db database.Queryable, upload *Upload) error
		ClaimProcessing(db database.Queryable, upload *Upload, staleBefore time.Time) error
		Update(db database.Queryable, upload *Upload) error
		Get(db database.Queryable, id uuid.UUID) (*Upload, error)
		GetByFingerprint(db database.Queryable, fingerprint string) (*Upload, error)
		List(db database.Queryable) ([]*Upload, error)
	}

	acquirer interface {
		Fetch(ctx context.Context, upload *Upload, imageURL string) (*FileHandle, error)
		Process(ctx context.Context, upload *Upload, handle *FileHandle) (*FileAttributes, error)
	}

	// materializer converts a fully-processed upload record in to a post.
	// It returns the new posts ID and any advisory warnings gathered
	// during conversion.
	materializer interface {
		Materialize(db database.Queryable, upload *Upload, uploader user.Uploader) (int64, []string, error)
	}

	resolver interface {
		Resolve(url string, referer string) sources.Strategy
	}

	// queuedSubmission is an accepted-but-unprocessed pipeline entry
	// waiting for a worker to claim it.
	queuedSubmission struct {
		uploader   user.Uploader
		submission Submission
		attempt    int
	}

	// Service owns the upload lifecycle: it accepts submissions, drives
	// each through resolution, extraction, acquisition, processing and
	// materialization, and guarantees that a given submission fingerprint
	// only ever produces one post no matter how many times it arrives.
	Service interface {
		Run(ctx context.Context) error
		Start(ctx context.Context, uploader user.Uploader, submission Submission) (*Upload, error)
		Enqueue(uploader user.Uploader, submission Submission) error
		Retry(ctx context.Context, uploader user.Uploader, id uuid.UUID) (*Upload, error)
		GetUpload(id uuid.UUID) (*Upload, error)
		AllUploads() ([]*Upload, error)
	}

	service struct {
		*sync.Mutex

		config       Config
		db           database.Manager
		store        dataStore
		acquirer     acquirer
		materializer materializer
		registry     resolver
		scheduler    Scheduler
		eventBus     event.EventDispatcher

		queue      []*queuedSubmission
		workerPool *worker.WorkerPool
	}
)

// New constructs the pipeline service. The configured download
// directory is created if missing; failure to do so is fatal as no
// source-backed submission could ever complete without it.
func New(config Config, db database.Manager, store dataStore, acquirer acquirer, materializer materializer, registry resolver, scheduler Scheduler, eventBus event.EventDispatcher) (*service, error) {
	if err := os.MkdirAll(config.DownloadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create download directory %s: %w", config.DownloadDir, err)
	}

	return &service{
		Mutex:        &sync.Mutex{},
		config:       config,
		db:           db,
		store:        store,
		acquirer:     acquirer,
		materializer: materializer,
		registry:     registry,
		scheduler:    scheduler,
		eventBus:     eventBus,
		queue:        make([]*queuedSubmission, 0),
		workerPool:   worker.NewWorkerPool(),
	}, nil
}

// Run starts the services worker pool, which drains the queued
// submission backlog, and blocks until the provided context is
// cancelled.
func (service *service) Run(ctx context.Context) error {
	for i := 0; i < service.config.Parallelism; i++ {
		service.workerPool.PushWorker(worker.NewWorker(fmt.Sprintf("upload-worker-%d", i), func(w worker.Worker) (bool, error) {
			return service.performQueuedUpload(ctx)
		}))
	}

	if err := service.workerPool.Start(); err != nil {
		return fmt.Errorf("failed to start upload worker pool: %w", err)
	}
	defer service.workerPool.Close()

	<-ctx.Done()
	return nil
}

// Enqueue validates the submission and places it on the backlog for a
// worker to pick up. Unlike Start, the caller does not wait for the
// outcome; progress is observable via the event bus and the stored
// record.
func (service *service) Enqueue(uploader user.Uploader, submission Submission) error {
	if err := submission.Validate(); err != nil {
		return err
	}

	service.enqueue(&queuedSubmission{uploader: uploader, submission: submission})
	return nil
}

func (service *service) enqueue(item *queuedSubmission) {
	service.Lock()
	service.queue = append(service.queue, item)
	service.Unlock()

	service.workerPool.WakeupWorkers()
}

// performQueuedUpload claims the oldest queued submission, if any, and
// runs it through the pipeline. The boolean return tells the worker
// whether there was work to claim.
func (service *service) performQueuedUpload(ctx context.Context) (bool, error) {
	item := service.claimQueuedSubmission()
	if item == nil {
		return false, nil
	}

	if _, err := service.startAttempt(ctx, item.uploader, item.submission, item.attempt); err != nil {
		return true, fmt.Errorf("queued submission failed: %w", err)
	}

	return true, nil
}

func (service *service) claimQueuedSubmission() *queuedSubmission {
	service.Lock()
	defer service.Unlock()

	if len(service.queue) == 0 {
		return nil
	}

	item := service.queue[0]
	service.queue = service.queue[1:]
	return item
}

// Start runs a submission through the pipeline synchronously on behalf
// of the given uploader. Structural invalidity is the only failure
// returned as an error without a persisted record; every downstream
// failure is captured on the returned uploads status instead.
func (service *service) Start(ctx context.Context, uploader user.Uploader, submission Submission) (*Upload, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	return service.startAttempt(ctx, uploader, submission, 0)
}

func (service *service) startAttempt(ctx context.Context, uploader user.Uploader, submission Submission, attempt int) (*Upload, error) {
	fingerprint := submission.Fingerprint()

	existing, err := service.store.GetByFingerprint(service.db.GetSqlxDb(), fingerprint)
	if err != nil && !errors.Is(err, ErrUploadNotFound) {
		return nil, fmt.Errorf("failed to look up submission fingerprint: %w", err)
	}
	if existing != nil {
		return service.resume(ctx, uploader, submission, existing, attempt)
	}

	submission.applyDefaults()
	upload := newUpload(uploader, submission, fingerprint)
	if err := service.store.Create(service.db.GetSqlxDb(), upload); err != nil {
		if errors.Is(err, ErrFingerprintOwned) {
			// Lost the creation race; the winning execution will carry the
			// submission through. Surface their record silently.
			log.Emit(logger.INFO, "Submission fingerprint %s claimed by concurrent execution, deferring\n", fingerprint)
			owner, ownerErr := service.store.GetByFingerprint(service.db.GetSqlxDb(), fingerprint)
			if ownerErr != nil {
				return nil, fmt.Errorf("failed to fetch owning upload after creation race: %w", ownerErr)
			}

			return owner, nil
		}

		return nil, err
	}

	log.Emit(logger.NEW, "Accepted submission %s as upload %s\n", fingerprint, upload.ID)
	return service.claimAndProcess(ctx, uploader, submission, upload, attempt)
}

// resume decides what to do with a submission whose fingerprint already
// has a record: hand back completed work, wait out an in-flight owner,
// restart abandoned or failed executions.
func (service *service) resume(ctx context.Context, uploader user.Uploader, submission Submission, existing *Upload, attempt int) (*Upload, error) {
	switch existing.Status.Code {
	case StatusProcessing:
		if time.Since(existing.UpdatedAt) <= service.config.ProcessingTimeoutDuration() {
			service.scheduleRecheck(uploader, submission, attempt)
			return existing, nil
		}

		log.Emit(logger.WARNING, "Upload %s stuck in processing since %s, restarting\n", existing.ID, existing.UpdatedAt)
	case StatusCompleted:
		return service.finishCompleted(uploader, existing)
	}

	// Pending records were accepted but never driven to completion (a
	// crash between creation and processing); errored and abandoned
	// records are re-entered the same way a retry would be. Whoever
	// wins the claim carries the record; everyone else waits.
	return service.claimAndProcess(ctx, uploader, submission, existing, attempt)
}

// claim takes the processing claim on the record. A processing record
// whose last write is older than the configured timeout counts as
// abandoned and is claimable like a pending or errored one.
func (service *service) claim(upload *Upload) error {
	staleBefore := time.Now().UTC().Add(-service.config.ProcessingTimeoutDuration())
	return service.store.ClaimProcessing(service.db.GetSqlxDb(), upload, staleBefore)
}

// claimAndProcess drives the pipeline only after winning the record's
// processing claim. Losing the claim is handled exactly like losing
// the creation race: the submission defers to the owning execution and
// re-checks later.
func (service *service) claimAndProcess(ctx context.Context, uploader user.Uploader, submission Submission, upload *Upload, attempt int) (*Upload, error) {
	if err := service.claim(upload); err != nil {
		if errors.Is(err, ErrUploadOwned) {
			log.Emit(logger.INFO, "Upload %s claimed by concurrent execution, deferring\n", upload.ID)
			service.scheduleRecheck(uploader, submission, attempt)
			return upload, nil
		}

		return nil, err
	}

	return service.process(ctx, uploader, upload)
}

// scheduleRecheck re-enqueues the submission after the configured delay
// so the caller-side duplicate eventually observes the owners outcome.
// Re-checks are bounded; a perpetually-stuck owner does not reschedule
// waiters forever.
func (service *service) scheduleRecheck(uploader user.Uploader, submission Submission, attempt int) {
	if attempt >= service.config.MaxRechecks {
		log.Emit(logger.WARNING, "Submission %s exhausted its %d re-checks, giving up\n", submission.Fingerprint(), service.config.MaxRechecks)
		return
	}

	log.Emit(logger.DEBUG, "Submission %s is owned by an in-flight execution, re-checking in %s\n", submission.Fingerprint(), service.config.RecheckDelayDuration())
	service.scheduler.Schedule(service.config.RecheckDelayDuration(), func() {
		service.enqueue(&queuedSubmission{uploader: uploader, submission: submission, attempt: attempt + 1})
	})
}

// finishCompleted handles the resubmission of an already-completed
// upload. A record with its post reference set is simply returned; one
// without (a crash between processing and finalization) is finalized
// now, in the same transaction shape the pipeline uses.
func (service *service) finishCompleted(uploader user.Uploader, upload *Upload) (*Upload, error) {
	if upload.PostID != nil {
		log.Emit(logger.DEBUG, "Upload %s already materialized as post %d\n", upload.ID, *upload.PostID)
		return upload, nil
	}

	if err := service.finalize(upload, uploader); err != nil {
		return service.fail(upload, newTrouble(err, MaterializationFailure))
	}

	service.eventBus.Dispatch(event.UPLOAD_COMPLETE, upload.ID)
	return upload, nil
}

// process drives the upload through the pipeline stages. Failures are
// classified, persisted on the record, and reported via the returned
// uploads status rather than the error value; only infrastructure
// faults while persisting the failure itself escape as errors.
func (service *service) process(ctx context.Context, uploader user.Uploader, upload *Upload) (*Upload, error) {
	if err := service.runPipeline(ctx, uploader, upload); err != nil {
		trouble, isTrouble := err.(Trouble)
		if !isTrouble {
			trouble = newTrouble(err, GenericFailure)
		}

		return service.fail(upload, trouble)
	}

	log.Emit(logger.SUCCESS, "Upload %s completed as post %d\n", upload.ID, *upload.PostID)
	service.eventBus.Dispatch(event.UPLOAD_COMPLETE, upload.ID)
	return upload, nil
}

func (service *service) fail(upload *Upload, trouble Trouble) (*Upload, error) {
	log.Emit(logger.ERROR, "Upload %s failed (%s): %v\n", upload.ID, trouble.Kind(), trouble)

	upload.Status = trouble.Status()
	upload.PostID = nil
	if err := service.store.Update(service.db.GetSqlxDb(), upload); err != nil {
		return nil, fmt.Errorf("failed to persist failure of upload %s: %w", upload.ID, err)
	}

	service.eventBus.Dispatch(event.UPLOAD_UPDATE, upload.ID)
	return upload, nil
}

func (service *service) runPipeline(ctx context.Context, uploader user.Uploader, upload *Upload) error {
	// The transition to processing was already persisted by the claim.
	service.eventBus.Dispatch(event.UPLOAD_UPDATE, upload.ID)

	imageURL := upload.Source
	if upload.Source != "" {
		strategy := service.registry.Resolve(upload.Source, upload.RefererURL)
		log.Emit(logger.DEBUG, "Upload %s source resolved to %s strategy\n", upload.ID, strategy.Site())

		// Extraction is only needed to find the fetchable media, or to
		// fill in commentary the caller asked for but did not supply.
		if upload.FilePath == "" || upload.IncludeArtistCommentary {
			metadata, err := strategy.Extract(ctx)
			if err != nil {
				return newTrouble(err, ExtractionFailure)
			}

			service.applyMetadata(upload, metadata)
			if len(metadata.ImageURLs) > 0 {
				imageURL = metadata.ImageURLs[0]
			}
		}
	}

	handle, err := service.acquirer.Fetch(ctx, upload, imageURL)
	if err != nil {
		return newTrouble(err, AcquisitionFailure)
	}

	attributes, err := service.acquirer.Process(ctx, upload, handle)
	if err != nil {
		return newTrouble(err, ProcessingFailure)
	}

	upload.FilePath = handle.Path
	upload.MD5 = attributes.MD5
	upload.FileExt = attributes.FileExt
	upload.ImageWidth = attributes.ImageWidth
	upload.ImageHeight = attributes.ImageHeight
	upload.FileSize = attributes.FileSize
	if err := service.store.Update(service.db.GetSqlxDb(), upload); err != nil {
		return fmt.Errorf("failed to persist file attributes for upload %s: %w", upload.ID, err)
	}
	service.eventBus.Dispatch(event.UPLOAD_UPDATE, upload.ID)

	if err := service.finalize(upload, uploader); err != nil {
		return newTrouble(err, MaterializationFailure)
	}

	return nil
}

// applyMetadata folds extracted source metadata on to the record.
// Caller-supplied commentary always wins over extracted commentary.
func (service *service) applyMetadata(upload *Upload, metadata *sources.Metadata) {
	if upload.IncludeArtistCommentary {
		if upload.ArtistCommentaryTitle == "" {
			upload.ArtistCommentaryTitle = metadata.CommentaryTitle
		}
		if upload.ArtistCommentaryDesc == "" {
			upload.ArtistCommentaryDesc = metadata.CommentaryDesc
		}
	}

	if metadata.Ugoira != nil {
		upload.Context = &Context{Ugoira: metadata.Ugoira}
	}
}

// finalize materializes the post and flips the upload to completed in
// a single transaction, so the record can never claim completion
// without its post existing (nor the reverse). A failure resets the
// post reference before the error is classified.
func (service *service) finalize(upload *Upload, uploader user.Uploader) error {
	err := service.db.WrapTx(func(tx *sqlx.Tx) error {
		postID, warnings, err := service.materializer.Materialize(tx, upload, uploader)
		if err != nil {
			return err
		}

		upload.PostID = &postID
		upload.Status = Completed()
		upload.Warnings = warnings
		return service.store.Update(tx, upload)
	})
	if err != nil {
		upload.PostID = nil
		return err
	}

	service.eventBus.Dispatch(event.POST_CREATED, *upload.PostID)
	return nil
}

// Retry re-enters the pipeline for an errored upload. Records in any
// other state are rejected; completed work is immutable and in-flight
// work must not be raced.
func (service *service) Retry(ctx context.Context, uploader user.Uploader, id uuid.UUID) (*Upload, error) {
	upload, err := service.store.Get(service.db.GetSqlxDb(), id)
	if err != nil {
		return nil, err
	}

	if upload.Status.Code != StatusErrored {
		return nil, fmt.Errorf("cannot retry upload %s with status %s, only errored uploads are retryable", id, upload.Status)
	}

	if err := service.claim(upload); err != nil {
		if errors.Is(err, ErrUploadOwned) {
			return nil, fmt.Errorf("cannot retry upload %s, a concurrent execution already claimed it", id)
		}

		return nil, err
	}

	log.Emit(logger.INFO, "Retrying errored upload %s\n", id)
	return service.process(ctx, uploader, upload)
}

func (service *service) GetUpload(id uuid.UUID) (*Upload, error) {
	return service.store.Get(service.db.GetSqlxDb(), id)
}

func (service *service) AllUploads() ([]*Upload, error) {
	return service.store.List(service.db.GetSqlxDb())
}
